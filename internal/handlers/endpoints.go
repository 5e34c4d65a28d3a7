package handlers

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-edu/utxo-merkle-index/internal/merkle"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// GetRoot implements GET /getroot.
func GetRoot(s *State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.RLock()
		defer s.mu.RUnlock()

		root, idx := s.Forest.TopRoot()
		writeJSON(w, http.StatusOK, map[string]any{"root": wireDigestIdx(root, idx)})
	}
}

type getOutRequest struct {
	Idx uint64 `json:"idx"`
}

// GetOut implements GET /getout.
func GetOut(s *State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req getOutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, failure())
			return
		}

		s.mu.RLock()
		defer s.mu.RUnlock()

		out, outIdx, proofs, err := s.Forest.Query(req.Idx)
		if errors.Is(err, merkle.ErrIndexOutOfRange) {
			writeJSON(w, http.StatusOK, failure())
			return
		}
		if err != nil {
			s.Logger.Error().Err(err).Msg("getout failed")
			writeJSON(w, http.StatusInternalServerError, failure())
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"found": []any{hex.EncodeToString(out), outIdx},
			"proof": wireProofTriple(proofs),
		})
	}
}

type getOutsRequest struct {
	Idx []uint64 `json:"idx"`
}

// GetOuts implements GET /getouts.
func GetOuts(s *State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req getOutsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, failure())
			return
		}

		s.mu.RLock()
		defer s.mu.RUnlock()

		results := make([]any, 0, len(req.Idx))
		for _, q := range req.Idx {
			out, outIdx, proofs, err := s.Forest.Query(q)
			if err != nil {
				writeJSON(w, http.StatusOK, failure())
				return
			}
			results = append(results, map[string]any{
				"found": []any{hex.EncodeToString(out), outIdx},
				"proof": wireProofTriple(proofs),
			})
		}
		writeJSON(w, http.StatusOK, map[string]any{"results": results})
	}
}

type getChildrenRequest struct {
	Root *string  `json:"root"`
	Path []string `json:"path"`
}

// GetChildren implements GET /getchildren.
func GetChildren(s *State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req getChildrenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, failure())
			return
		}

		s.mu.RLock()
		defer s.mu.RUnlock()

		tree := s.Forest.TopTree()
		if req.Root != nil {
			t, ok := s.Forest.Tree(*req.Root)
			if !ok {
				writeJSON(w, http.StatusOK, failure())
				return
			}
			tree = t
		}

		path := make([]merkle.Side, 0, len(req.Path))
		for _, tok := range req.Path {
			if tok == "r" || tok == "R" {
				path = append(path, merkle.SideRight)
			} else {
				path = append(path, merkle.SideLeft)
			}
		}

		lHash, rHash, lData, rData := tree.Children(path)
		writeJSON(w, http.StatusOK, map[string]any{
			"data": []any{
				hexOrNil(lHash), hexOrNil(rHash),
				hexDataOrNil(lData), hexDataOrNil(rData),
			},
		})
	}
}

func hexOrNil(d *merkle.Digest) any {
	if d == nil {
		return nil
	}
	return d.Hex()
}

func hexDataOrNil(b []byte) any {
	if b == nil {
		return nil
	}
	return hex.EncodeToString(b)
}

type getNumLeavesRequest struct {
	Root string `json:"root"`
}

// GetNumLeaves implements GET /getnumleaves.
func GetNumLeaves(s *State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req getNumLeavesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, failure())
			return
		}

		s.mu.RLock()
		defer s.mu.RUnlock()

		tree, ok := s.Forest.Tree(req.Root)
		if !ok {
			writeJSON(w, http.StatusOK, failure())
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"data": tree.NumLeaves()})
	}
}

// Update implements POST /update: it consumes up to the configured batch
// size's worth of buffered records (always at least one whole block) and
// performs the incremental forest update.
func Update(s *State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()

		batch, ok := s.Store.NextBatch()
		if !ok {
			writeJSON(w, http.StatusOK, failure())
			return
		}

		root, idx, err := s.Forest.AppendBlock(batch)
		if err != nil {
			s.Logger.Error().Err(err).Msg("update failed")
			writeJSON(w, http.StatusInternalServerError, failure())
			return
		}

		s.reportGauges()
		s.Logger.Info().Str("root", root.Hex()).Uint64("idx", idx).Msg("update applied")
		writeJSON(w, http.StatusOK, map[string]any{"root": wireDigestIdx(root, idx)})
	}
}

// Command utxo-index-verify checks a hierarchical proof returned by
// /getout against a trusted top root, entirely client-side: it never
// contacts the server it is checking.
package main

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/go-edu/utxo-merkle-index/internal/merkle"
	"github.com/go-edu/utxo-merkle-index/internal/verify"
)

// wireProofElem decodes one chain hop: [[hex_digest, idx], side_tag].
type wireProofElem struct {
	Val  string
	Idx  uint64
	Side string
}

func (e *wireProofElem) UnmarshalJSON(data []byte) error {
	var tuple [2]json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return fmt.Errorf("proof element: %w", err)
	}
	var pair [2]json.RawMessage
	if err := json.Unmarshal(tuple[0], &pair); err != nil {
		return fmt.Errorf("proof element digest pair: %w", err)
	}
	if err := json.Unmarshal(pair[0], &e.Val); err != nil {
		return err
	}
	if err := json.Unmarshal(pair[1], &e.Idx); err != nil {
		return err
	}
	return json.Unmarshal(tuple[1], &e.Side)
}

func (e wireProofElem) toElem() (merkle.ProofElem, error) {
	d, err := merkle.DigestFromHex(e.Val)
	if err != nil {
		return merkle.ProofElem{}, err
	}
	return merkle.ProofElem{Val: d, Idx: e.Idx, Side: merkle.Side(e.Side)}, nil
}

func toProof(elems []wireProofElem) (merkle.Proof, error) {
	out := make(merkle.Proof, len(elems))
	for i, e := range elems {
		elem, err := e.toElem()
		if err != nil {
			return nil, err
		}
		out[i] = elem
	}
	return out, nil
}

// input is the document this command reads: the claimed output's hex
// outkey and idx as separate fields, the proof triple in the encoding
// /getout uses, and the caller's independently trusted top root as
// [hex_digest, idx].
type input struct {
	OutKey string             `json:"outkey"`
	Idx    uint64             `json:"idx"`
	Proof  [3][]wireProofElem `json:"proof"`
	Root   [2]json.RawMessage `json:"root"`
}

func main() {
	path := flag.String("in", "", "path to a proof document (defaults to stdin)")
	flag.Parse()

	r := os.Stdin
	if *path != "" {
		f, err := os.Open(*path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "utxo-index-verify:", err)
			os.Exit(2)
		}
		defer f.Close()
		r = f
	}

	var in input
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		fmt.Fprintln(os.Stderr, "utxo-index-verify: decode input:", err)
		os.Exit(2)
	}

	outKey, err := hex.DecodeString(in.OutKey)
	if err != nil {
		fmt.Fprintln(os.Stderr, "utxo-index-verify: decode outkey:", err)
		os.Exit(2)
	}

	var rootHex string
	var rootIdx uint64
	if err := json.Unmarshal(in.Root[0], &rootHex); err != nil {
		fmt.Fprintln(os.Stderr, "utxo-index-verify: decode root digest:", err)
		os.Exit(2)
	}
	if err := json.Unmarshal(in.Root[1], &rootIdx); err != nil {
		fmt.Fprintln(os.Stderr, "utxo-index-verify: decode root idx:", err)
		os.Exit(2)
	}
	topRoot, err := merkle.DigestFromHex(rootHex)
	if err != nil {
		fmt.Fprintln(os.Stderr, "utxo-index-verify: decode root digest:", err)
		os.Exit(2)
	}

	var proofs [3]merkle.Proof
	for i := range in.Proof {
		p, err := toProof(in.Proof[i])
		if err != nil {
			fmt.Fprintln(os.Stderr, "utxo-index-verify: decode proof:", err)
			os.Exit(2)
		}
		proofs[i] = p
	}

	if err := verify.Hierarchical(outKey, in.Idx, proofs, topRoot, rootIdx); err != nil {
		fmt.Fprintln(os.Stderr, "INVALID:", err)
		os.Exit(1)
	}
	fmt.Println("VALID")
}

package handlers

import "github.com/go-edu/utxo-merkle-index/internal/merkle"

// wireDigestIdx renders a (digest, idx) pair as the two-element array used
// throughout the wire protocol: [hex_digest, idx].
func wireDigestIdx(d merkle.Digest, idx uint64) []any {
	return []any{d.Hex(), idx}
}

// wireProofElem renders one chain hop as [[hex_digest, idx], side_tag].
func wireProofElem(e merkle.ProofElem) []any {
	return []any{wireDigestIdx(e.Val, e.Idx), string(e.Side)}
}

// wireChain renders a full proof chain as a JSON array of wireProofElem.
func wireChain(p merkle.Proof) []any {
	out := make([]any, len(p))
	for i, e := range p {
		out[i] = wireProofElem(e)
	}
	return out
}

// wireProofTriple renders the (out, tx, block) proof triple returned by a
// successor query.
func wireProofTriple(proofs [3]merkle.Proof) []any {
	return []any{wireChain(proofs[0]), wireChain(proofs[1]), wireChain(proofs[2])}
}

// failure is the uniform out-of-range / lookup-miss response body.
func failure() map[string]any {
	return map[string]any{"Failure": 0}
}

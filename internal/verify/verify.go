// Package verify implements the client-side hierarchical proof check from
// spec §4.5: given a claimed output and a three-chain proof, confirm it
// binds to a known top root without trusting the server that produced it.
package verify

import (
	"crypto/sha256"
	"errors"

	"github.com/go-edu/utxo-merkle-index/internal/merkle"
)

// ErrSelfMismatch is returned when a chain's SELF entry does not match the
// digest the caller expects to find there.
var ErrSelfMismatch = errors.New("verify: chain SELF entry does not match expected leaf digest")

// ErrRootMismatch is returned when the recomputed top-level root does not
// match the root the caller asserts as trusted.
var ErrRootMismatch = errors.New("verify: recomputed root does not match trusted top root")

// Hierarchical verifies that (outKey, idx) is a member of the tree whose
// top root is topRoot, given the three-level proof chain produced by
// forest.Query. It does not consult the forest or the server: every check
// is a pure function of the supplied digests.
func Hierarchical(outKey []byte, idx uint64, proofs [3]merkle.Proof, topRoot merkle.Digest, topIdx uint64) error {
	outProof, txProof, blkProof := proofs[0], proofs[1], proofs[2]

	leafDigest := sha256.Sum256(outKey)
	if err := checkSelf(outProof, merkle.Digest(leafDigest), idx); err != nil {
		return err
	}
	r1, err := merkle.CheckProof(outProof)
	if err != nil {
		return err
	}
	i1 := outProof[len(outProof)-1].Idx

	r1Digest := sha256.Sum256(r1[:])
	if err := checkSelf(txProof, merkle.Digest(r1Digest), i1); err != nil {
		return err
	}
	r2, err := merkle.CheckProof(txProof)
	if err != nil {
		return err
	}
	i2 := txProof[len(txProof)-1].Idx

	r2Digest := sha256.Sum256(r2[:])
	if err := checkSelf(blkProof, merkle.Digest(r2Digest), i2); err != nil {
		return err
	}
	r3, err := merkle.CheckProof(blkProof)
	if err != nil {
		return err
	}
	i3 := blkProof[len(blkProof)-1].Idx

	if r3 != topRoot || i3 != topIdx {
		return ErrRootMismatch
	}
	return nil
}

func checkSelf(chain merkle.Proof, want merkle.Digest, idx uint64) error {
	if len(chain) == 0 || chain[0].Side != merkle.SideSelf || chain[0].Val != want || chain[0].Idx != idx {
		return ErrSelfMismatch
	}
	return nil
}

// Package merkle implements the Indexed Merkle Tree (IMT): a binary Merkle
// tree whose internal nodes carry both a SHA-256 digest and the maximum
// leaf index in their subtree. It supports proof extraction, incremental
// append without rebuilding, and single-chain proof verification.
package merkle

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Digest is a 32-byte SHA-256 digest.
type Digest [32]byte

// Hex returns the lowercase hex encoding used on the wire throughout this
// service.
func (d Digest) Hex() string {
	return hex.EncodeToString(d[:])
}

// DigestFromHex decodes a lowercase hex digest as produced by Hex.
func DigestFromHex(s string) (Digest, error) {
	var d Digest
	b, err := hex.DecodeString(s)
	if err != nil {
		return d, err
	}
	if len(b) != len(d) {
		return d, fmt.Errorf("merkle: digest must be 32 bytes, got %d", len(b))
	}
	copy(d[:], b)
	return d, nil
}

// hashLeaf hashes a raw leaf payload. There is no domain separation between
// leaf and interior hashing: the output level hashes the raw output key the
// same way every other level hashes its own payload.
func hashLeaf(payload []byte) Digest {
	return sha256.Sum256(payload)
}

// hashChildren hashes two child digests concatenated left-then-right.
func hashChildren(left, right Digest) Digest {
	var buf [64]byte
	copy(buf[:32], left[:])
	copy(buf[32:], right[:])
	return sha256.Sum256(buf[:])
}

func maxIdx(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}

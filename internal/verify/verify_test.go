package verify

import (
	"testing"

	"github.com/go-edu/utxo-merkle-index/internal/forest"
)

func TestHierarchicalVerifyAcceptsValidProof(t *testing.T) {
	records := []forest.Record{
		{BlockHash: "A", TxHash: "A0", OutKey: []byte("a0"), Idx: 0},
		{BlockHash: "A", TxHash: "A0", OutKey: []byte("a1"), Idx: 1},
	}
	f, err := forest.Build(records)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	topRoot, topIdx := f.TopRoot()

	outKey, idx, proofs, err := f.Query(0)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if err := Hierarchical(outKey, idx, proofs, topRoot, topIdx); err != nil {
		t.Fatalf("Hierarchical: %v", err)
	}
}

func TestHierarchicalVerifyRejectsWrongTopRoot(t *testing.T) {
	records := []forest.Record{
		{BlockHash: "A", TxHash: "A0", OutKey: []byte("a0"), Idx: 0},
		{BlockHash: "A", TxHash: "A0", OutKey: []byte("a1"), Idx: 1},
	}
	f, err := forest.Build(records)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	_, topIdx := f.TopRoot()

	outKey, idx, proofs, err := f.Query(0)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}

	var wrongRoot [32]byte
	wrongRoot[0] = 0xAA
	if err := Hierarchical(outKey, idx, proofs, wrongRoot, topIdx); err != ErrRootMismatch {
		t.Fatalf("expected ErrRootMismatch, got %v", err)
	}
}

func TestHierarchicalVerifyRejectsWrongOutKey(t *testing.T) {
	records := []forest.Record{
		{BlockHash: "A", TxHash: "A0", OutKey: []byte("a0"), Idx: 0},
		{BlockHash: "A", TxHash: "A0", OutKey: []byte("a1"), Idx: 1},
	}
	f, err := forest.Build(records)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	topRoot, topIdx := f.TopRoot()

	_, idx, proofs, err := f.Query(0)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if err := Hierarchical([]byte("not-the-real-outkey"), idx, proofs, topRoot, topIdx); err != ErrSelfMismatch {
		t.Fatalf("expected ErrSelfMismatch, got %v", err)
	}
}

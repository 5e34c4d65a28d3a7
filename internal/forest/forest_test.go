package forest

import (
	"testing"

	"github.com/go-edu/utxo-merkle-index/internal/merkle"
	"github.com/go-edu/utxo-merkle-index/internal/verify"
)

// twoByTwoByTwo builds 2 blocks x 2 tx x 2 outputs, indices 0..7, matching
// the three-level query scenario.
func twoByTwoByTwo() []Record {
	var records []Record
	idx := uint64(0)
	for b := 0; b < 2; b++ {
		for tx := 0; tx < 2; tx++ {
			for o := 0; o < 2; o++ {
				records = append(records, Record{
					BlockHash: blockName(b),
					TxHash:    txName(b, tx),
					OutKey:    []byte(outName(b, tx, o)),
					Idx:       idx,
				})
				idx++
			}
		}
	}
	return records
}

func blockName(b int) string  { return string(rune('A' + b)) }
func txName(b, tx int) string { return blockName(b) + string(rune('0'+tx)) }
func outName(b, tx, o int) string {
	return txName(b, tx) + string(rune('a'+o))
}

func TestBuildThreeLevel(t *testing.T) {
	f, err := Build(twoByTwoByTwo())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	root, idx := f.TopRoot()
	if idx != 7 {
		t.Fatalf("top root idx = %d, want 7", idx)
	}
	if _, ok := f.Tree(root.Hex()); !ok {
		t.Fatalf("forest does not contain its own top root")
	}
}

func TestQueryFindsSuccessorAndVerifies(t *testing.T) {
	f, err := Build(twoByTwoByTwo())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	topRoot, topIdx := f.TopRoot()

	outKey, idx, proofs, err := f.Query(5)
	if err != nil {
		t.Fatalf("Query(5): %v", err)
	}
	if idx != 5 {
		t.Fatalf("found idx = %d, want 5", idx)
	}
	if string(outKey) != outName(1, 0, 1) {
		t.Fatalf("found outkey = %q, want %q", outKey, outName(1, 0, 1))
	}

	if err := verify.Hierarchical(outKey, idx, proofs, topRoot, topIdx); err != nil {
		t.Fatalf("hierarchical verify failed: %v", err)
	}
}

func TestQueryOutOfRange(t *testing.T) {
	f, err := Build(twoByTwoByTwo())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	_, topIdx := f.TopRoot()
	if _, _, _, err := f.Query(topIdx + 1); err != merkle.ErrIndexOutOfRange {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestAppendBlockIncreasesTopIdxAndVerifies(t *testing.T) {
	f, err := Build(twoByTwoByTwo())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	oldRoot, oldIdx := f.TopRoot()

	newBlock := []Record{
		{BlockHash: "C", TxHash: "C0", OutKey: []byte("C0a"), Idx: 8},
		{BlockHash: "C", TxHash: "C0", OutKey: []byte("C0b"), Idx: 9},
	}
	newRoot, newIdx, err := f.AppendBlock(newBlock)
	if err != nil {
		t.Fatalf("AppendBlock: %v", err)
	}
	if newIdx <= oldIdx {
		t.Fatalf("top root idx did not increase: old=%d new=%d", oldIdx, newIdx)
	}
	if _, ok := f.Tree(oldRoot.Hex()); ok {
		t.Fatalf("superseded top root was not removed from the forest")
	}

	outKey, idx, proofs, err := f.Query(9)
	if err != nil {
		t.Fatalf("Query(9) after append: %v", err)
	}
	if err := verify.Hierarchical(outKey, idx, proofs, newRoot, newIdx); err != nil {
		t.Fatalf("hierarchical verify failed after append: %v", err)
	}
}

func TestTamperedProofFailsHierarchicalVerify(t *testing.T) {
	f, err := Build(twoByTwoByTwo())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	topRoot, topIdx := f.TopRoot()
	outKey, idx, proofs, err := f.Query(2)
	if err != nil {
		t.Fatalf("Query(2): %v", err)
	}
	proofs[0][1].Val[0] ^= 0xFF
	if err := verify.Hierarchical(outKey, idx, proofs, topRoot, topIdx); err == nil {
		t.Fatalf("expected tampered proof to fail verification")
	}
}

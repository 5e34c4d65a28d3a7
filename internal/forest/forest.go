// Package forest composes Indexed Merkle Trees into the three-level
// structure (output within transaction, transaction within block, block
// within chain) that backs the UTXO index: it builds one IMT per group,
// keeps every IMT reachable from the current top root, and answers
// successor queries by assembling the three-chain proof along the way.
package forest

import (
	"errors"

	"github.com/go-edu/utxo-merkle-index/internal/merkle"
)

// ErrUnknownRoot is returned when a lookup by root hash misses the forest.
var ErrUnknownRoot = errors.New("forest: root not found")

// Record is one output row: the block and transaction it belongs to, its
// output key, and its global index. Records must arrive pre-sorted by Idx,
// which implies contiguous runs by TxHash within contiguous runs by
// BlockHash.
type Record struct {
	BlockHash string
	TxHash    string
	OutKey    []byte
	Idx       uint64
}

// Forest maps every IMT currently reachable from the top root, keyed by its
// hex-encoded root digest, and tracks the top IMT itself.
type Forest struct {
	trees map[string]*merkle.Tree
	top   *merkle.Tree
}

// Build partitions records into blocks, then transactions, builds one IMT
// per transaction and per block, and finally a top IMT over the block
// roots. It fails with merkle.ErrEmptyTree if records is empty; non-empty
// input always partitions into non-empty groups.
func Build(records []Record) (*Forest, error) {
	if len(records) == 0 {
		return nil, merkle.ErrEmptyTree
	}
	f := &Forest{trees: make(map[string]*merkle.Tree)}

	var blockLeaves []merkle.Leaf
	for _, blockRecords := range partitionBy(records, func(r Record) string { return r.BlockHash }) {
		root, idx, err := f.buildBlockTree(blockRecords)
		if err != nil {
			return nil, err
		}
		blockLeaves = append(blockLeaves, merkle.Leaf{Payload: root[:], Idx: idx})
	}

	top, err := merkle.Build(blockLeaves, false, false)
	if err != nil {
		return nil, err
	}
	f.top = top
	root, _ := top.Root()
	f.trees[root.Hex()] = top
	return f, nil
}

// buildBlockTree builds one IMT per transaction in records (all of which
// share a block hash), inserts each into the forest, then builds and
// inserts the block-level IMT over their roots.
//
// Upper-level leaves are the raw digest bytes of the level below, hashed
// again like any other leaf payload (§4.5's "rehashing between levels"):
// this is why every Build call here passes prehashed=false.
func (f *Forest) buildBlockTree(records []Record) (merkle.Digest, uint64, error) {
	var txLeaves []merkle.Leaf
	for _, txRecords := range partitionBy(records, func(r Record) string { return r.TxHash }) {
		var outLeaves []merkle.Leaf
		for _, rec := range txRecords {
			outLeaves = append(outLeaves, merkle.Leaf{Payload: rec.OutKey, Idx: rec.Idx})
		}
		txTree, err := merkle.Build(outLeaves, false, false)
		if err != nil {
			return merkle.Digest{}, 0, err
		}
		root, idx := txTree.Root()
		f.trees[root.Hex()] = txTree
		txLeaves = append(txLeaves, merkle.Leaf{Payload: root[:], Idx: idx})
	}

	blockTree, err := merkle.Build(txLeaves, false, false)
	if err != nil {
		return merkle.Digest{}, 0, err
	}
	root, idx := blockTree.Root()
	f.trees[root.Hex()] = blockTree
	return root, idx, nil
}

// partitionBy splits records into contiguous runs sharing the same key,
// preserving order. Records are assumed pre-sorted so that equal keys are
// already adjacent.
func partitionBy(records []Record, key func(Record) string) [][]Record {
	var groups [][]Record
	start := 0
	for i := 1; i <= len(records); i++ {
		if i == len(records) || key(records[i]) != key(records[start]) {
			groups = append(groups, records[start:i])
			start = i
		}
	}
	return groups
}

// TopRoot returns the current top root's digest and max index.
func (f *Forest) TopRoot() (merkle.Digest, uint64) {
	return f.top.Root()
}

// TopTree returns the current top-level IMT itself.
func (f *Forest) TopTree() *merkle.Tree {
	return f.top
}

// Tree looks up an IMT by its hex-encoded root digest.
func (f *Forest) Tree(rootHex string) (*merkle.Tree, bool) {
	t, ok := f.trees[rootHex]
	return t, ok
}

// Size returns the number of IMTs currently retained in the forest.
func (f *Forest) Size() int {
	return len(f.trees)
}

// Query finds the smallest-indexed output leaf with idx >= q, descending
// top -> block -> tx, and returns it along with the three-chain proof
// (output, tx, block) that binds it to the current top root.
func (f *Forest) Query(q uint64) (outKey []byte, idx uint64, proofs [3]merkle.Proof, err error) {
	_, topIdx := f.top.Root()
	if q > topIdx {
		return nil, 0, proofs, merkle.ErrIndexOutOfRange
	}

	blkPos, err := f.top.FindSuccessor(q)
	if err != nil {
		return nil, 0, proofs, err
	}
	blkProof, err := f.top.GetProof(blkPos)
	if err != nil {
		return nil, 0, proofs, err
	}
	blockTree, ok := f.lookupChild(f.top, blkPos)
	if !ok {
		return nil, 0, proofs, ErrUnknownRoot
	}

	txPos, err := blockTree.FindSuccessor(q)
	if err != nil {
		return nil, 0, proofs, err
	}
	txProof, err := blockTree.GetProof(txPos)
	if err != nil {
		return nil, 0, proofs, err
	}
	txTree, ok := f.lookupChild(blockTree, txPos)
	if !ok {
		return nil, 0, proofs, ErrUnknownRoot
	}

	outPos, err := txTree.FindSuccessor(q)
	if err != nil {
		return nil, 0, proofs, err
	}
	outProof, err := txTree.GetProof(outPos)
	if err != nil {
		return nil, 0, proofs, err
	}

	return txTree.LeafPayload(outPos), txTree.LeafIdx(outPos), [3]merkle.Proof{outProof, txProof, blkProof}, nil
}

// lookupChild resolves the IMT referenced by the leaf at pos in parent: the
// leaf's payload is the raw 32-byte root digest of the child tree.
func (f *Forest) lookupChild(parent *merkle.Tree, pos int) (*merkle.Tree, bool) {
	payload := parent.LeafPayload(pos)
	if len(payload) != 32 {
		return nil, false
	}
	var d merkle.Digest
	copy(d[:], payload)
	return f.Tree(d.Hex())
}

// AppendBlock partitions newRecords into blocks (each sharing a block
// hash), builds a tx- and block-level IMT for each, and append-adjusts the
// top IMT with each new block root in turn. The forest entry for the
// superseded top root is replaced by one for the new top root.
func (f *Forest) AppendBlock(newRecords []Record) (merkle.Digest, uint64, error) {
	if len(newRecords) == 0 {
		return merkle.Digest{}, 0, errors.New("forest: AppendBlock called with no records")
	}
	oldRoot, _ := f.top.Root()
	delete(f.trees, oldRoot.Hex())

	for _, blockRecords := range partitionBy(newRecords, func(r Record) string { return r.BlockHash }) {
		root, idx, err := f.buildBlockTree(blockRecords)
		if err != nil {
			return merkle.Digest{}, 0, err
		}
		if err := f.top.AppendAdjust(merkle.Leaf{Payload: root[:], Idx: idx}, false, false); err != nil {
			return merkle.Digest{}, 0, err
		}
	}

	newRoot, newIdx := f.top.Root()
	f.trees[newRoot.Hex()] = f.top
	return newRoot, newIdx, nil
}

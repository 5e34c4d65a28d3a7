package store

import (
	"path/filepath"
	"testing"
)

func TestCacheRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := &Store{cachePath: filepath.Join(dir, "cache.gob")}

	rows := []Row{
		{BlockHash: "b1", TxHash: "t1", OutKey: []byte("k1"), Idx: 0},
		{BlockHash: "b1", TxHash: "t1", OutKey: []byte("k2"), Idx: 1},
	}
	if err := s.saveCache(rows); err != nil {
		t.Fatalf("saveCache: %v", err)
	}

	got, err := s.loadCache()
	if err != nil {
		t.Fatalf("loadCache: %v", err)
	}
	if len(got) != len(rows) {
		t.Fatalf("loadCache returned %d rows, want %d", len(got), len(rows))
	}
	for i := range rows {
		if got[i].BlockHash != rows[i].BlockHash || got[i].Idx != rows[i].Idx || string(got[i].OutKey) != string(rows[i].OutKey) {
			t.Fatalf("row %d mismatch: got %+v want %+v", i, got[i], rows[i])
		}
	}
}

func TestLoadCacheMissingFile(t *testing.T) {
	s := &Store{cachePath: filepath.Join(t.TempDir(), "missing.gob")}
	if _, err := s.loadCache(); err == nil {
		t.Fatalf("expected error reading a nonexistent cache file")
	}
}

func TestNextBatchConsumesOneBlockAtATime(t *testing.T) {
	s := &Store{pending: []Row{
		{BlockHash: "A", TxHash: "A0", OutKey: []byte("a0"), Idx: 0},
		{BlockHash: "A", TxHash: "A0", OutKey: []byte("a1"), Idx: 1},
		{BlockHash: "B", TxHash: "B0", OutKey: []byte("b0"), Idx: 2},
	}}

	batch, ok := s.NextBatch()
	if !ok || len(batch) != 2 {
		t.Fatalf("first batch = %v (ok=%v), want 2 rows from block A", batch, ok)
	}
	for _, r := range batch {
		if r.BlockHash != "A" {
			t.Fatalf("batch contains row from block %q, want only A", r.BlockHash)
		}
	}

	batch, ok = s.NextBatch()
	if !ok || len(batch) != 1 || batch[0].BlockHash != "B" {
		t.Fatalf("second batch = %v (ok=%v), want 1 row from block B", batch, ok)
	}

	if _, ok := s.NextBatch(); ok {
		t.Fatalf("expected no more batches once pending is drained")
	}
}

func TestHasPending(t *testing.T) {
	s := &Store{}
	if s.HasPending() {
		t.Fatalf("empty store should have no pending rows")
	}
	s.pending = []Row{{BlockHash: "A", Idx: 0}}
	if !s.HasPending() {
		t.Fatalf("store with buffered rows should report pending")
	}
}

// Package store loads UTXO output records from SQLite, the authoritative
// source described in spec §6, and caches the fetched rows on disk so a
// restart does not require re-reading the whole table.
package store

import (
	"context"
	"database/sql"
	"encoding/gob"
	"fmt"
	"os"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/go-edu/utxo-merkle-index/internal/config"
	"github.com/go-edu/utxo-merkle-index/internal/forest"
)

// Row is one record as read from out_table, before it is handed to the
// forest as a forest.Record.
type Row struct {
	BlockHash string
	TxHash    string
	OutKey    []byte
	Idx       uint64
}

// Store owns the SQLite connection and the in-memory buffer of rows not
// yet consumed by /update.
type Store struct {
	db        *sql.DB
	cachePath string
	batchSize int

	mu      sync.Mutex
	pending []Row
}

// Open opens the SQLite database named by cfg.DatabasePath. The
// connection is not used until LoadInitial is called.
func Open(cfg config.DataConfig) (*Store, error) {
	db, err := sql.Open("sqlite", cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", cfg.DatabasePath, err)
	}
	return &Store{db: db, cachePath: cfg.CachePath, batchSize: cfg.BlockBatchSize}, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// LoadInitial reads every row available at startup (cache-first, falling
// back to SQLite) and buffers all of it in pending. Only the first
// batchSize rows' worth (by whole block) are handed back for the initial
// forest build; the remainder stays buffered for NextBatch to drain via
// /update, so the incremental-append path has something to do.
func (s *Store) LoadInitial(ctx context.Context) ([]forest.Record, error) {
	rows, err := s.loadCache()
	if err != nil {
		rows, err = s.fetch(ctx)
		if err != nil {
			return nil, err
		}
		if err := s.saveCache(rows); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	s.pending = rows
	s.mu.Unlock()

	initial, ok := s.nextBatchUpTo(s.batchSize)
	if !ok {
		return nil, nil
	}
	return toRecords(initial), nil
}

// fetch reads every row from out_table, ordered by idx, as spec §6
// requires.
func (s *Store) fetch(ctx context.Context) ([]Row, error) {
	q, err := s.db.QueryContext(ctx, `SELECT block_hash, tx_hash, outkey, idx FROM out_table ORDER BY idx`)
	if err != nil {
		return nil, fmt.Errorf("store: query out_table: %w", err)
	}
	defer q.Close()

	var rows []Row
	for q.Next() {
		var r Row
		if err := q.Scan(&r.BlockHash, &r.TxHash, &r.OutKey, &r.Idx); err != nil {
			return nil, fmt.Errorf("store: scan row: %w", err)
		}
		rows = append(rows, r)
	}
	if err := q.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate out_table: %w", err)
	}
	return rows, nil
}

func (s *Store) loadCache() ([]Row, error) {
	if s.cachePath == "" {
		return nil, fmt.Errorf("store: no cache path configured")
	}
	f, err := os.Open(s.cachePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows []Row
	if err := gob.NewDecoder(f).Decode(&rows); err != nil {
		return nil, fmt.Errorf("store: decode cache: %w", err)
	}
	return rows, nil
}

func (s *Store) saveCache(rows []Row) error {
	if s.cachePath == "" {
		return nil
	}
	f, err := os.Create(s.cachePath)
	if err != nil {
		return fmt.Errorf("store: create cache: %w", err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(rows); err != nil {
		return fmt.Errorf("store: encode cache: %w", err)
	}
	return nil
}

// nextBlockLocked removes and returns the next contiguous block_hash run
// from pending. Caller must hold mu.
func (s *Store) nextBlockLocked() []Row {
	end := 1
	blockHash := s.pending[0].BlockHash
	for end < len(s.pending) && s.pending[end].BlockHash == blockHash {
		end++
	}
	block := s.pending[:end]
	s.pending = s.pending[end:]
	return block
}

// nextBatchUpTo drains whole blocks from pending while the batch stays
// within maxRows rows, or until pending is exhausted. The first block is
// always taken, even when it alone exceeds maxRows, so a single oversized
// block cannot stall the buffer. It reports false when pending was already
// empty.
func (s *Store) nextBatchUpTo(maxRows int) ([]Row, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.pending) == 0 {
		return nil, false
	}

	var batch []Row
	for len(s.pending) > 0 {
		next := 1
		for next < len(s.pending) && s.pending[next].BlockHash == s.pending[0].BlockHash {
			next++
		}
		if len(batch) > 0 && len(batch)+next > maxRows {
			break
		}
		batch = append(batch, s.nextBlockLocked()...)
	}
	return batch, true
}

// NextBatch consumes up to batchSize rows' worth of buffered blocks (at
// least one full block) and returns them as forest.Records for /update.
// It reports false when nothing is pending.
func (s *Store) NextBatch() ([]forest.Record, bool) {
	batch, ok := s.nextBatchUpTo(s.batchSize)
	if !ok {
		return nil, false
	}
	return toRecords(batch), true
}

// HasPending reports whether any buffered rows remain for NextBatch.
func (s *Store) HasPending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending) > 0
}

func toRecords(rows []Row) []forest.Record {
	out := make([]forest.Record, len(rows))
	for i, r := range rows {
		out[i] = forest.Record{BlockHash: r.BlockHash, TxHash: r.TxHash, OutKey: r.OutKey, Idx: r.Idx}
	}
	return out
}

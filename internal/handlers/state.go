package handlers

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/go-edu/utxo-merkle-index/internal/forest"
	m "github.com/go-edu/utxo-merkle-index/internal/metrics"
	"github.com/go-edu/utxo-merkle-index/internal/store"
)

// State is the single shared value every handler closes over: the
// explicit analogue of the source's module-level top_root / top_merkle /
// merkle_forest / utxos globals. Every handler takes mu.RLock() for the
// duration of a read; Update takes mu.Lock() for the whole swap so no
// reader ever observes a partially updated top root.
type State struct {
	mu      sync.RWMutex
	Forest  *forest.Forest
	Store   *store.Store
	Logger  zerolog.Logger
	Metrics *m.Metrics
}

// NewState builds the shared server state around an already-constructed
// forest and store.
func NewState(f *forest.Forest, s *store.Store, logger zerolog.Logger, metrics *m.Metrics) *State {
	return &State{Forest: f, Store: s, Logger: logger, Metrics: metrics}
}

func (s *State) reportGauges() {
	if s.Metrics == nil {
		return
	}
	s.Metrics.ForestSize.Set(float64(s.Forest.Size()))
	_, idx := s.Forest.TopRoot()
	s.Metrics.TopRootIdx.Set(float64(idx))
}

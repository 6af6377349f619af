// Package lifecycle tracks the bootstrap readiness of the search service.
//
// The gate is an explicit lifecycle object shared by handle: it starts
// not-ready, transitions to ready exactly once when bootstrap hands over
// the built index and store, and never reverts. Queries resolve their
// index and store through the gate, so index writes strictly precede all
// index reads.
package lifecycle

import (
	"sync"

	"github.com/lineseek/lineseek/internal/corpus"
	apperrors "github.com/lineseek/lineseek/internal/errors"
	"github.com/lineseek/lineseek/internal/index"
)

// Gate gates query availability until bootstrap completes.
type Gate struct {
	mu    sync.RWMutex
	ready bool
	idx   *index.Index
	docs  *corpus.Store
}

// NewGate creates a gate in the not-ready state.
func NewGate() *Gate {
	return &Gate{}
}

// MarkReady publishes the built index and store and flips the gate.
// A second call is an internal error; there is no re-indexing path.
func (g *Gate) MarkReady(idx *index.Index, docs *corpus.Store) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.ready {
		return apperrors.New(apperrors.ErrCodeInternal, "readiness gate already flipped", nil)
	}
	g.idx = idx
	g.docs = docs
	g.ready = true
	return nil
}

// Resolve returns the index and store once ready. Before that it fails
// with the retryable not-ready error; no partial index is ever exposed.
func (g *Gate) Resolve() (*index.Index, *corpus.Store, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.ready {
		return nil, nil, apperrors.NotReady()
	}
	return g.idx, g.docs, nil
}

// Ready reports whether bootstrap has completed.
func (g *Gate) Ready() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.ready
}

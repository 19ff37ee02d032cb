package ai

import (
	"sync/atomic"
	"time"

	"github.com/LuisKeys/isolation-adversarial-search/isolation"
)

// Observer is told about the shape of a search as it runs. It is
// passed into each search call; implementations must be safe for
// concurrent use when the root is searched in parallel.
type Observer interface {
	VisitRoot(m isolation.Move)
	Expand()
	Evaluate(terminal bool)
	Cut()
}

type Stats struct {
	RootActions uint64
	Visited     uint64
	Evaluated   uint64
	Terminal    uint64
	CutNodes    uint64

	Depth   int
	Elapsed time.Duration
}

func (st *Stats) VisitRoot(isolation.Move) { atomic.AddUint64(&st.RootActions, 1) }
func (st *Stats) Expand()                  { atomic.AddUint64(&st.Visited, 1) }
func (st *Stats) Cut()                     { atomic.AddUint64(&st.CutNodes, 1) }

func (st *Stats) Evaluate(terminal bool) {
	atomic.AddUint64(&st.Evaluated, 1)
	if terminal {
		atomic.AddUint64(&st.Terminal, 1)
	}
}

// Resolved reports whether every leaf of the search was a finished
// game, so deeper searches cannot change the result.
func (st *Stats) Resolved() bool {
	return st.Evaluated == st.Terminal
}

type nopObserver struct{}

func (nopObserver) VisitRoot(isolation.Move) {}
func (nopObserver) Expand()                  {}
func (nopObserver) Evaluate(bool)            {}
func (nopObserver) Cut()                     {}

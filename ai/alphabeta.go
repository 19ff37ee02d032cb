package ai

import (
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/LuisKeys/isolation-adversarial-search/isolation"
)

// Evaluator runs a single depth-bounded alpha-beta search.
type Evaluator struct {
	Evaluate EvaluationFunc
	// Parallel searches the root's children on separate goroutines.
	Parallel bool
}

// search carries what every node of one search needs.
type search struct {
	player   isolation.Player
	evaluate EvaluationFunc
	obs      Observer
	// cancel, when set and nonzero, abandons the search.
	cancel *int32
}

func (sc *search) canceled() bool {
	return sc.cancel != nil && atomic.LoadInt32(sc.cancel) != 0
}

// Search returns the best action for the player to move in s and its
// value from that player's point of view, looking depth plies ahead.
// Every root action is examined; on equal values the one examined last
// wins.
func (e *Evaluator) Search(s StateView, depth int, obs Observer) (isolation.Move, Score, error) {
	return e.search(s, depth, obs, nil)
}

func (e *Evaluator) search(s StateView, depth int, obs Observer, cancel *int32) (isolation.Move, Score, error) {
	if obs == nil {
		obs = nopObserver{}
	}
	sc := &search{
		player:   s.ToMove(),
		evaluate: e.Evaluate,
		obs:      obs,
		cancel:   cancel,
	}
	if sc.evaluate == nil {
		sc.evaluate = EvaluateMobilityDistance
	}
	if s.IsTerminal() {
		obs.Evaluate(true)
		return NoMove, s.Utility(sc.player), nil
	}
	if depth <= 0 {
		obs.Evaluate(false)
		return NoMove, sc.evaluate(s, sc.player), nil
	}
	actions := s.Actions()
	if len(actions) == 0 {
		return NoMove, 0, ErrNoActions
	}
	obs.Expand()

	if e.Parallel {
		return searchParallel(sc, s, actions, depth)
	}

	best := NoMove
	bestV := MinScore - 1
	α := MinScore - 1
	for _, a := range actions {
		obs.VisitRoot(a)
		child, err := s.Result(a)
		if err != nil {
			return NoMove, 0, fmt.Errorf("apply %d: %w", a, err)
		}
		// Searching with α-1 keeps a child equal to α exact, so the
		// tie-break below compares real values.
		v, err := minValue(sc, child, α-1, MaxScore+1, depth-1)
		if err != nil {
			return NoMove, 0, err
		}
		if v >= bestV {
			best, bestV = a, v
		}
		if v > α {
			α = v
		}
	}
	return best, bestV, nil
}

func searchParallel(sc *search, s StateView, actions []isolation.Move, depth int) (isolation.Move, Score, error) {
	values := make([]Score, len(actions))
	var g errgroup.Group
	for i, a := range actions {
		i, a := i, a
		sc.obs.VisitRoot(a)
		g.Go(func() error {
			child, err := s.Result(a)
			if err != nil {
				return fmt.Errorf("apply %d: %w", a, err)
			}
			v, err := minValue(sc, child, MinScore-1, MaxScore+1, depth-1)
			values[i] = v
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return NoMove, 0, err
	}
	best := NoMove
	bestV := MinScore - 1
	for i, v := range values {
		if v >= bestV {
			best, bestV = actions[i], v
		}
	}
	return best, bestV, nil
}

// maxValue scores a node where sc.player is to move.
func maxValue(sc *search, s StateView, α, β Score, depth int) (Score, error) {
	if s.IsTerminal() {
		sc.obs.Evaluate(true)
		return s.Utility(sc.player), nil
	}
	if depth <= 0 {
		sc.obs.Evaluate(false)
		return sc.evaluate(s, sc.player), nil
	}
	if sc.canceled() {
		return 0, errCanceled
	}
	actions := s.Actions()
	if len(actions) == 0 {
		return MinScore, nil
	}
	sc.obs.Expand()
	v := MinScore - 1
	for _, a := range actions {
		child, err := s.Result(a)
		if err != nil {
			return 0, fmt.Errorf("apply %d: %w", a, err)
		}
		cv, err := minValue(sc, child, α, β, depth-1)
		if err != nil {
			return 0, err
		}
		if cv > v {
			v = cv
		}
		if v >= β {
			sc.obs.Cut()
			return v, nil
		}
		if v > α {
			α = v
		}
	}
	return v, nil
}

// minValue scores a node where the opponent of sc.player is to move.
func minValue(sc *search, s StateView, α, β Score, depth int) (Score, error) {
	if s.IsTerminal() {
		sc.obs.Evaluate(true)
		return s.Utility(sc.player), nil
	}
	if depth <= 0 {
		sc.obs.Evaluate(false)
		return sc.evaluate(s, sc.player), nil
	}
	if sc.canceled() {
		return 0, errCanceled
	}
	actions := s.Actions()
	if len(actions) == 0 {
		return MaxScore, nil
	}
	sc.obs.Expand()
	v := MaxScore + 1
	for _, a := range actions {
		child, err := s.Result(a)
		if err != nil {
			return 0, fmt.Errorf("apply %d: %w", a, err)
		}
		cv, err := maxValue(sc, child, α, β, depth-1)
		if err != nil {
			return 0, err
		}
		if cv < v {
			v = cv
		}
		if v <= α {
			sc.obs.Cut()
			return v, nil
		}
		if v < β {
			β = v
		}
	}
	return v, nil
}

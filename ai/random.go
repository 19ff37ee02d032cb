package ai

import (
	"golang.org/x/exp/rand"
	"golang.org/x/net/context"

	"github.com/LuisKeys/isolation-adversarial-search/isolation"
)

// RandomAI plays a uniformly random legal move.
type RandomAI struct {
	r *rand.Rand
}

func NewRandom(seed int64) *RandomAI {
	return &RandomAI{
		r: rand.New(rand.NewSource(uint64(seed))),
	}
}

func (r *RandomAI) GetMove(ctx context.Context, p *isolation.Position) (isolation.Move, error) {
	moves := p.Actions()
	if len(moves) == 0 {
		return NoMove, ErrGameOver
	}
	return moves[r.r.Intn(len(moves))], nil
}

// GreedyAI plays the move whose resulting position scores best for it,
// without looking further ahead.
type GreedyAI struct {
	Evaluate EvaluationFunc
}

func (g *GreedyAI) GetMove(ctx context.Context, p *isolation.Position) (isolation.Move, error) {
	eval := g.Evaluate
	if eval == nil {
		eval = EvaluateMobility
	}
	me := p.ToMove()
	best := NoMove
	bestV := MinScore - 1
	for _, m := range p.Actions() {
		child, err := View(p).Result(m)
		if err != nil {
			return NoMove, err
		}
		var v Score
		if child.IsTerminal() {
			v = child.Utility(me)
		} else {
			v = eval(child, me)
		}
		if v > bestV {
			best, bestV = m, v
		}
	}
	if best == NoMove {
		return NoMove, ErrGameOver
	}
	return best, nil
}

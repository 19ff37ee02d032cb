package ai

import (
	"errors"

	"golang.org/x/net/context"

	"github.com/LuisKeys/isolation-adversarial-search/isolation"
)

// NoMove is returned alongside an error, or when a search is asked
// about a position with nothing to play.
const NoMove = isolation.Move(isolation.NoCell)

var (
	// ErrGameOver is returned when asked to move in a finished game.
	ErrGameOver = errors.New("game is over")
	// ErrNoActions means the rule engine reported a live position with
	// no legal actions.
	ErrNoActions = errors.New("no legal actions in a non-terminal state")

	errCanceled = errors.New("search canceled")
)

type IsolationPlayer interface {
	GetMove(ctx context.Context, p *isolation.Position) (isolation.Move, error)
}

// StateView is everything the search needs from the rule engine.
// Implementations must be immutable: Result returns a fresh state.
type StateView interface {
	Geometry() isolation.Geometry
	PlyCount() int
	ToMove() isolation.Player
	Actions() []isolation.Move
	Result(m isolation.Move) (StateView, error)
	IsTerminal() bool
	// Utility is MaxScore for a win and MinScore for a loss of pl;
	// only meaningful on terminal states.
	Utility(pl isolation.Player) Score
	Locations() [2]isolation.Cell
	Liberties(c isolation.Cell) []isolation.Cell
}

type positionView struct {
	*isolation.Position
}

// View adapts an isolation position to a StateView.
func View(p *isolation.Position) StateView {
	return positionView{p}
}

func (v positionView) Result(m isolation.Move) (StateView, error) {
	next, err := v.Position.Result(m)
	if err != nil {
		return nil, err
	}
	return positionView{next}, nil
}

func (v positionView) Utility(pl isolation.Player) Score {
	switch v.Position.Utility(pl) {
	case 1:
		return MaxScore
	case -1:
		return MinScore
	}
	return 0
}

package ai

import (
	"fmt"

	"github.com/LuisKeys/isolation-adversarial-search/isolation"
)

// EvaluationFunc scores a non-terminal state from pl's point of view.
// It must not keep state between calls.
type EvaluationFunc func(s StateView, pl isolation.Player) Score

type Strategy int

const (
	MobilityDistance Strategy = iota
	Mobility
	MobilityPartition
)

var strategyNames = map[Strategy]string{
	MobilityDistance:  "mobility-distance",
	Mobility:          "mobility",
	MobilityPartition: "mobility-partition",
}

func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown strategy: %q", name)
}

func (s Strategy) String() string {
	if n, ok := strategyNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

func (s Strategy) MarshalText() ([]byte, error) {
	if _, ok := strategyNames[s]; !ok {
		return nil, fmt.Errorf("unknown strategy: %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *Strategy) UnmarshalText(b []byte) error {
	v, err := ParseStrategy(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s Strategy) Evaluator() EvaluationFunc {
	switch s {
	case Mobility:
		return EvaluateMobility
	case MobilityPartition:
		return EvaluateMobilityPartition
	default:
		return EvaluateMobilityDistance
	}
}

const (
	// distanceBase minus the distance to the center weights the
	// mobility term, favoring central squares.
	distanceBase = 7

	// PartitionBand is how close to an edge the opponent must be for
	// the partition check to consider that edge.
	PartitionBand = 2
)

func liberties(s StateView, pl isolation.Player) (own, opp []isolation.Cell) {
	locs := s.Locations()
	return s.Liberties(locs[pl]), s.Liberties(locs[pl.Other()])
}

// EvaluateMobility is the difference in liberties. Swapping the
// players negates it.
func EvaluateMobility(s StateView, pl isolation.Player) Score {
	own, opp := liberties(s, pl)
	return FromFloat(float64(len(own) - len(opp)))
}

// EvaluateMobilityDistance weights (own - 2*opponent) liberties by how
// close pl stands to the center of the board.
func EvaluateMobilityDistance(s StateView, pl isolation.Player) Score {
	own, opp := liberties(s, pl)
	weight := float64(distanceBase)
	if loc := s.Locations()[pl]; loc != isolation.NoCell {
		g := s.Geometry()
		weight -= g.Distance(loc, g.Center())
	}
	return FromFloat(weight * float64(len(own)-2*len(opp)))
}

// EvaluateMobilityPartition is the liberty difference multiplied by 1
// plus the number of board edges the opponent is boxed against.
func EvaluateMobilityPartition(s StateView, pl isolation.Player) Score {
	own, opp := liberties(s, pl)
	locs := s.Locations()
	blocked := 1 + PartitionedEdges(s.Geometry(), locs[pl], locs[pl.Other()], opp)
	return FromFloat(float64((len(own) - len(opp)) * blocked))
}

// PartitionedEdges counts the edges (left, right, bottom, top) for
// which the opponent sits between us and that edge, within
// PartitionBand of it, and every one of oppLibs lies strictly past the
// line through our own coordinate on that side.
func PartitionedEdges(g isolation.Geometry, own, opp isolation.Cell, oppLibs []isolation.Cell) int {
	if own == isolation.NoCell || opp == isolation.NoCell {
		return 0
	}
	px, py := g.IndexToXY(own)
	ox, oy := g.IndexToXY(opp)

	edges := []struct {
		near   bool
		beyond func(x, y int) bool
	}{
		{ox < px && ox <= PartitionBand, func(x, _ int) bool { return x < px }},
		{ox > px && ox >= g.Width-1-PartitionBand, func(x, _ int) bool { return x > px }},
		{oy < py && oy <= PartitionBand, func(_, y int) bool { return y < py }},
		{oy > py && oy >= g.Height-1-PartitionBand, func(_, y int) bool { return y > py }},
	}

	n := 0
	for _, e := range edges {
		if !e.near {
			continue
		}
		all := true
		for _, c := range oppLibs {
			if !e.beyond(g.IndexToXY(c)) {
				all = false
				break
			}
		}
		if all {
			n++
		}
	}
	return n
}

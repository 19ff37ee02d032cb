package selfplay

import (
	"fmt"

	"golang.org/x/net/context"

	"github.com/LuisKeys/isolation-adversarial-search/ai"
	"github.com/LuisKeys/isolation-adversarial-search/cmd/internal/players"
)

// Rung is the record of one engine depth against the reference.
type Rung struct {
	Depth   int
	Player  string
	WinRate float64
	Stats   Stats
}

// Ladder plays minimax at each of depths against ref, as P1, with every
// other setting taken from c. The engine starts from base.
func Ladder(ctx context.Context, c Config, base ai.Config, ref players.Factory, depths []int) ([]Rung, error) {
	var out []Rung
	for _, d := range depths {
		f, err := players.Parse(fmt.Sprintf("minimax@%d", d), base)
		if err != nil {
			return nil, err
		}
		cfg := c
		cfg.P1, cfg.P2 = f, ref
		st, err := Simulate(ctx, &cfg)
		if err != nil {
			return nil, fmt.Errorf("depth %d: %w", d, err)
		}
		out = append(out, Rung{
			Depth:   d,
			Player:  f.String(),
			WinRate: st.WinRate(0),
			Stats:   st,
		})
	}
	return out, nil
}

// NonDecreasing reports whether win rates never drop as depth grows.
func NonDecreasing(rungs []Rung) bool {
	for i := 1; i < len(rungs); i++ {
		if rungs[i].WinRate < rungs[i-1].WinRate {
			return false
		}
	}
	return true
}

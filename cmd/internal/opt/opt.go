package opt

import (
	"encoding/json"
	"flag"
	"fmt"

	"github.com/LuisKeys/isolation-adversarial-search/ai"
)

type Minimax struct {
	Seed     int64
	Debug    int
	Depth    int
	Strategy string
	Parallel bool
	Config   string
}

func (o *Minimax) AddFlags(flags *flag.FlagSet) {
	flags.IntVar(&o.Debug, "debug", 1, "debug level")
	flags.Int64Var(&o.Seed, "seed", 0, "specify a seed")
	flags.IntVar(&o.Depth, "depth", 0, "maximum search depth (0: until the time limit)")
	flags.StringVar(&o.Strategy, "strategy", ai.MobilityDistance.String(), "evaluation strategy")
	flags.BoolVar(&o.Parallel, "parallel", false, "search root moves in parallel")
	flags.StringVar(&o.Config, "config", "", "JSON-encoded engine config, applied over the other flags")
}

// BuildConfig turns the flags into an engine config.
func (o *Minimax) BuildConfig() (ai.Config, error) {
	strat, err := ai.ParseStrategy(o.Strategy)
	if err != nil {
		return ai.Config{}, fmt.Errorf("-strategy: %w", err)
	}
	cfg := ai.Config{
		Strategy: strat,
		MaxDepth: o.Depth,
		Seed:     o.Seed,
		Parallel: o.Parallel,
		Debug:    o.Debug,
	}
	if o.Config != "" {
		if err := json.Unmarshal([]byte(o.Config), &cfg); err != nil {
			return ai.Config{}, fmt.Errorf("-config: %w", err)
		}
	}
	return cfg, nil
}

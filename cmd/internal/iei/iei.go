package iei

import (
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/context"

	"github.com/LuisKeys/isolation-adversarial-search/ai"
	"github.com/LuisKeys/isolation-adversarial-search/cmd/internal/opt"
	"github.com/LuisKeys/isolation-adversarial-search/iei"
	"github.com/LuisKeys/isolation-adversarial-search/isolation"
)

type Command struct {
	opt opt.Minimax
}

func (*Command) Name() string     { return "iei" }
func (*Command) Synopsis() string { return "Launch the engine in IEI mode" }
func (*Command) Usage() string {
	return `iei

Launch the engine in IEI mode, a UCI-like protocol suitable for being
driven by an external GUI or controller.

`
}

func (c *Command) SetFlags(fs *flag.FlagSet) {
	c.opt.AddFlags(fs)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := c.opt.BuildConfig()
	if err != nil {
		log.Error().Err(err).Msg("config")
		return subcommands.ExitUsageError
	}
	engine := iei.NewEngine(os.Stdin, os.Stdout)
	engine.ConfigFactory = func(isolation.Geometry) ai.Config { return cfg }
	if err := engine.Run(ctx); err != nil {
		log.Error().Err(err).Msg("iei")
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}

package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/LuisKeys/isolation-adversarial-search/cmd/internal/analyze"
	"github.com/LuisKeys/isolation-adversarial-search/cmd/internal/iei"
	"github.com/LuisKeys/isolation-adversarial-search/cmd/internal/play"
	"github.com/LuisKeys/isolation-adversarial-search/cmd/internal/report"
	"github.com/LuisKeys/isolation-adversarial-search/cmd/internal/selfplay"
	"github.com/LuisKeys/isolation-adversarial-search/cmd/internal/serve"
)

var (
	verbose = flag.Bool("v", false, "log debug output")
	quiet   = flag.Bool("q", false, "only log warnings and errors")
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&play.Command{}, "")
	subcommands.Register(&analyze.Command{}, "")
	subcommands.Register(&iei.Command{}, "")
	subcommands.Register(&serve.Command{}, "")
	subcommands.Register(&selfplay.Command{}, "tools")
	subcommands.Register(&report.Command{}, "tools")

	flag.Parse()

	// iei owns stdout, so logs always go to stderr
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()
	switch {
	case *verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case *quiet:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	code := subcommands.Execute(ctx)
	stop()
	os.Exit(int(code))
}

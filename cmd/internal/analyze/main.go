package analyze

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/context"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/LuisKeys/isolation-adversarial-search/ai"
	"github.com/LuisKeys/isolation-adversarial-search/cli"
	"github.com/LuisKeys/isolation-adversarial-search/cmd/internal/opt"
	"github.com/LuisKeys/isolation-adversarial-search/isolation"
	"github.com/LuisKeys/isolation-adversarial-search/notation"
)

type Command struct {
	ipn       bool
	quiet     bool
	eval      bool
	variation string
	width     int
	height    int

	timeLimit time.Duration
	mmopt     opt.Minimax
}

func (*Command) Name() string     { return "analyze" }
func (*Command) Synopsis() string { return "Evaluate a position" }
func (*Command) Usage() string {
	return `analyze [options] [ROWS PLY]

Evaluate a position given in IPN, or the empty board if none is given,
with the iterative deepening engine. Use -variation to play additional
moves prior to analysis.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.BoolVar(&c.ipn, "ipn", false, "print the analyzed position in IPN")
	flags.BoolVar(&c.quiet, "quiet", false, "don't print board diagrams")
	flags.BoolVar(&c.eval, "evaluate", false, "only show static evaluation")
	flags.StringVar(&c.variation, "variation", "", "apply the listed moves before analysis")
	flags.IntVar(&c.width, "width", isolation.DefaultWidth, "board width for the empty board")
	flags.IntVar(&c.height, "height", isolation.DefaultHeight, "board height for the empty board")
	flags.DurationVar(&c.timeLimit, "limit", 10*time.Second, "limit of how much time to use")

	c.mmopt.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := c.mmopt.BuildConfig()
	if err != nil {
		log.Error().Err(err).Msg("config")
		return subcommands.ExitUsageError
	}
	var p *isolation.Position
	switch flag.NArg() {
	case 0:
		p = isolation.New(isolation.Config{Width: c.width, Height: c.height})
	case 2:
		p, err = notation.ParseIPN(strings.Join(flag.Args(), " "))
		if err != nil {
			log.Error().Err(err).Msg("parse")
			return subcommands.ExitUsageError
		}
	default:
		log.Error().Msg("expected an IPN position: ROWS PLY")
		return subcommands.ExitUsageError
	}
	if c.variation != "" {
		p, err = applyVariation(p, c.variation)
		if err != nil {
			log.Error().Err(err).Msg("-variation")
			return subcommands.ExitUsageError
		}
	}

	if c.timeLimit != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeLimit)
		defer cancel()
	}
	if err := c.analyze(ctx, ai.NewEngine(cfg), cfg, p); err != nil {
		log.Error().Err(err).Msg("analyze")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func applyVariation(p *isolation.Position, variant string) (*isolation.Position, error) {
	for _, moveStr := range strings.Fields(variant) {
		m, e := notation.ParseMove(p.Geometry(), moveStr)
		if e != nil {
			return nil, e
		}
		p, e = p.Result(m)
		if e != nil {
			return nil, fmt.Errorf("bad move `%s': %w", moveStr, e)
		}
	}
	return p, nil
}

func (c *Command) analyze(ctx context.Context, e *ai.Engine, cfg ai.Config, p *isolation.Position) error {
	out := message.NewPrinter(language.English)
	g := p.Geometry()
	if !c.quiet {
		cli.RenderBoard(nil, os.Stdout, p)
	}
	if c.ipn {
		out.Printf("[IPN \"%s\"]\n", notation.FormatIPN(p))
	}
	if c.eval {
		eval := cfg.Strategy.Evaluator()
		out.Printf(" %s=%s\n", cfg.Strategy, eval(ai.View(p), p.ToMove()))
		return nil
	}
	if p.IsTerminal() {
		w, _ := p.Winner()
		out.Printf("game over: %s wins\n", w)
		return nil
	}
	r, err := e.Analyze(ctx, ai.View(p))
	if err != nil {
		return err
	}
	out.Printf("AI analysis:\n")
	out.Printf(" move=%s value=%s depth=%d\n", notation.FormatMove(g, r.Move), r.Value, r.Stats.Depth)
	out.Printf(" visited=%d evaluated=%d terminal=%d cut=%d time=%s\n",
		r.Stats.Visited, r.Stats.Evaluated, r.Stats.Terminal, r.Stats.CutNodes, r.Stats.Elapsed)
	if c.quiet {
		return nil
	}
	next, err := p.Result(r.Move)
	if err != nil {
		return fmt.Errorf("engine chose an illegal move: %w", err)
	}
	fmt.Println("Resulting position:")
	cli.RenderBoard(nil, os.Stdout, next)
	fmt.Println()
	return nil
}

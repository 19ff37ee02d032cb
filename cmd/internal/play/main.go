package play

import (
	"bufio"
	"flag"
	"os"
	"strings"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/context"

	"github.com/LuisKeys/isolation-adversarial-search/ai"
	"github.com/LuisKeys/isolation-adversarial-search/cli"
	"github.com/LuisKeys/isolation-adversarial-search/cmd/internal/opt"
	"github.com/LuisKeys/isolation-adversarial-search/cmd/internal/players"
	"github.com/LuisKeys/isolation-adversarial-search/isolation"
	"github.com/LuisKeys/isolation-adversarial-search/notation"
)

type Command struct {
	p1     string
	p2     string
	width  int
	height int
	limit  time.Duration
	seed   int64

	unicode bool
	opt     opt.Minimax
}

func (*Command) Name() string     { return "play" }
func (*Command) Synopsis() string { return "Play Isolation from the command line" }
func (*Command) Usage() string {
	return `play [flags]

Play knight's Isolation on the command-line, against a human or AI.
Players are "human", "random", "greedy", "minimax[@DEPTH]" or
"iei:COMMAND".
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.p1, "p1", "human", "first player")
	flags.StringVar(&c.p2, "p2", "minimax", "second player")
	flags.IntVar(&c.width, "width", isolation.DefaultWidth, "board width")
	flags.IntVar(&c.height, "height", isolation.DefaultHeight, "board height")
	flags.DurationVar(&c.limit, "limit", time.Second, "ai time limit")
	flags.Int64Var(&c.seed, "game-seed", 0, "seed for AI players")
	flags.BoolVar(&c.unicode, "unicode", false, "render board with utf8 glyphs")
	c.opt.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := c.opt.BuildConfig()
	if err != nil {
		log.Error().Err(err).Msg("config")
		return subcommands.ExitUsageError
	}
	g := isolation.Geometry{Width: c.width, Height: c.height}
	in := bufio.NewReader(os.Stdin)
	p1, close1, err := c.parsePlayer(in, c.p1, cfg, g)
	if err != nil {
		log.Error().Err(err).Msg("-p1")
		return subcommands.ExitUsageError
	}
	defer close1()
	p2, close2, err := c.parsePlayer(in, c.p2, cfg, g)
	if err != nil {
		log.Error().Err(err).Msg("-p2")
		return subcommands.ExitUsageError
	}
	defer close2()

	st := &cli.CLI{
		Config:  isolation.Config{Width: c.width, Height: c.height},
		Out:     os.Stdout,
		Player1: p1,
		Player2: p2,
		Glyphs:  glyphs(c.unicode),
	}
	if _, err := st.Play(); err != nil {
		log.Error().Err(err).Msg("play")
		return subcommands.ExitFailure
	}
	log.Info().
		Str("moves", strings.Join(notation.FormatMoves(g, st.Moves()), " ")).
		Msg("game over")
	return subcommands.ExitSuccess
}

func glyphs(unicode bool) *cli.Glyphs {
	if unicode {
		return &cli.UnicodeGlyphs
	}
	return &cli.DefaultGlyphs
}

type aiWrapper struct {
	ctx   context.Context
	limit time.Duration
	p     ai.IsolationPlayer
}

func (a *aiWrapper) GetMove(p *isolation.Position) (isolation.Move, error) {
	ctx, cancel := context.WithTimeout(a.ctx, a.limit)
	defer cancel()
	return a.p.GetMove(ctx, p)
}

func (c *Command) parsePlayer(in *bufio.Reader, s string, cfg ai.Config, g isolation.Geometry) (cli.Player, func(), error) {
	if s == "human" {
		return cli.NewCLIPlayer(os.Stdout, in), func() {}, nil
	}
	f, err := players.Parse(s, cfg)
	if err != nil {
		return nil, nil, err
	}
	seat, err := f.Start()
	if err != nil {
		return nil, nil, err
	}
	seed := c.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	pl, err := seat.NewGame(g, seed)
	if err != nil {
		seat.Close()
		return nil, nil, err
	}
	return &aiWrapper{context.Background(), c.limit, pl}, seat.Close, nil
}

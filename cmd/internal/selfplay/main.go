package selfplay

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/context"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/LuisKeys/isolation-adversarial-search/cmd/internal/opt"
	"github.com/LuisKeys/isolation-adversarial-search/cmd/internal/players"
	"github.com/LuisKeys/isolation-adversarial-search/isolation"
	"github.com/LuisKeys/isolation-adversarial-search/logs"
	"github.com/LuisKeys/isolation-adversarial-search/notation"
)

type Command struct {
	width  int
	height int
	p1     string
	p2     string
	seed   int64

	games  int
	cutoff int
	swap   bool

	openings string
	ladder   string

	limit   time.Duration
	threads int

	summary string
	db      string
	verbose bool

	opt opt.Minimax
}

func (*Command) Name() string     { return "selfplay" }
func (*Command) Synopsis() string { return "Play two AIs against each other and report results" }
func (*Command) Usage() string {
	return `selfplay [flags]

Players are "random", "greedy", "minimax[@DEPTH]" or "iei:COMMAND".
With -ladder D1,D2,... minimax at each depth plays -p2 in turn, and the
win rates are checked to be non-decreasing.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.width, "width", isolation.DefaultWidth, "board width")
	flags.IntVar(&c.height, "height", isolation.DefaultHeight, "board height")
	flags.StringVar(&c.p1, "p1", "minimax@3", "first player")
	flags.StringVar(&c.p2, "p2", "random", "second player")

	flags.Int64Var(&c.seed, "game-seed", 0, "starting random seed")
	flags.IntVar(&c.games, "games", 10, "number of games to play per opening/color")
	flags.IntVar(&c.cutoff, "cutoff", 0, "cut games off after how many plies")
	flags.BoolVar(&c.swap, "swap", true, "swap colors each game")
	flags.StringVar(&c.openings, "openings", "", "File of openings, 1/line in IPN")
	flags.StringVar(&c.ladder, "ladder", "", "comma-separated minimax depths to play against -p2")
	flags.DurationVar(&c.limit, "limit", 0, "amount of time to search each move")
	flags.IntVar(&c.threads, "threads", 4, "number of parallel threads")
	flags.StringVar(&c.summary, "summary", "", "write summary JSON file")
	flags.StringVar(&c.db, "db", "", "store games in this sqlite database")
	flags.BoolVar(&c.verbose, "v", false, "verbose output")
	c.opt.AddFlags(flags)
}

func readOpenings(path string) ([]*isolation.Position, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []*isolation.Position
	r := bufio.NewScanner(f)
	for r.Scan() {
		line := strings.TrimSpace(r.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		pos, err := notation.ParseIPN(line)
		if err != nil {
			return nil, fmt.Errorf("parse IPN: %q: %w", line, err)
		}
		out = append(out, pos)
	}
	return out, r.Err()
}

func parseDepths(s string) ([]int, error) {
	var out []int
	for _, w := range strings.Split(s, ",") {
		d, err := strconv.Atoi(strings.TrimSpace(w))
		if err != nil || d < 1 {
			return nil, fmt.Errorf("bad depth: %q", w)
		}
		out = append(out, d)
	}
	return out, nil
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.seed == 0 {
		c.seed = time.Now().Unix()
	}
	base, err := c.opt.BuildConfig()
	if err != nil {
		log.Error().Err(err).Msg("config")
		return subcommands.ExitUsageError
	}
	p1, err := players.Parse(c.p1, base)
	if err != nil {
		log.Error().Err(err).Msg("-p1")
		return subcommands.ExitUsageError
	}
	p2, err := players.Parse(c.p2, base)
	if err != nil {
		log.Error().Err(err).Msg("-p2")
		return subcommands.ExitUsageError
	}

	var openings []*isolation.Position
	if c.openings != "" {
		openings, err = readOpenings(c.openings)
		if err != nil {
			log.Error().Err(err).Msg("-openings")
			return subcommands.ExitUsageError
		}
	}
	if len(openings) == 0 {
		openings = []*isolation.Position{isolation.New(isolation.Config{Width: c.width, Height: c.height})}
	}

	cfg := Config{
		Swap:    c.swap,
		Games:   c.games,
		Threads: c.threads,
		Seed:    c.seed,
		Cutoff:  c.cutoff,
		Limit:   c.limit,
		Initial: openings,
		Verbose: c.verbose,
		P1:      p1,
		P2:      p2,
	}

	var repo *logs.Repository
	if c.db != "" {
		repo, err = logs.Open(c.db)
		if err != nil {
			log.Error().Err(err).Msg("-db")
			return subcommands.ExitFailure
		}
		defer repo.Close()
	}

	if c.ladder != "" {
		return c.runLadder(ctx, cfg, repo)
	}

	st, err := Simulate(ctx, &cfg)
	if err != nil {
		log.Error().Err(err).Msg("simulate")
		return subcommands.ExitFailure
	}
	if err := c.store(repo, [2]string{p1.String(), p2.String()}, &st); err != nil {
		log.Error().Err(err).Msg("store games")
	}
	if c.summary != "" {
		if err := c.writeSummary(c.summary, &st); err != nil {
			log.Error().Err(err).Msg("writing summary")
		}
	}

	log.Info().
		Int("games", st.Count()).
		Int64("seed", c.seed).
		Int("cutoff", st.Cutoff).
		Int("first", st.First).
		Int("second", st.Second).
		Dur("limit", c.limit).
		Msg("done")
	report(os.Stderr, p1.String(), p2.String(), &st)

	a, b := int64(st.Players[0].Wins), int64(st.Players[1].Wins)
	if a < b {
		a, b = b, a
	}
	log.Info().Float64("p", binomTest(a, b, 0.5)).Msg("one-sided binomial test")

	return subcommands.ExitSuccess
}

func (c *Command) runLadder(ctx context.Context, cfg Config, repo *logs.Repository) subcommands.ExitStatus {
	depths, err := parseDepths(c.ladder)
	if err != nil {
		log.Error().Err(err).Msg("-ladder")
		return subcommands.ExitUsageError
	}
	base, _ := c.opt.BuildConfig()
	rungs, err := Ladder(ctx, cfg, base, cfg.P2, depths)
	if err != nil {
		log.Error().Err(err).Msg("ladder")
		return subcommands.ExitFailure
	}
	pr := message.NewPrinter(language.English)
	tw := tabwriter.NewWriter(os.Stderr, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "depth\tgames\twins\twin rate\n")
	for i := range rungs {
		r := &rungs[i]
		pr.Fprintf(tw, "%d\t%d\t%d\t%.3f\n", r.Depth, r.Stats.Count(), r.Stats.Players[0].Wins, r.WinRate)
		if err := c.store(repo, [2]string{r.Player, cfg.P2.String()}, &r.Stats); err != nil {
			log.Error().Err(err).Msg("store games")
		}
	}
	tw.Flush()
	if c.summary != "" {
		if err := writeJSON(c.summary, rungs); err != nil {
			log.Error().Err(err).Msg("writing summary")
		}
	}
	if !NonDecreasing(rungs) {
		log.Warn().Str("reference", cfg.P2.String()).Msg("win rate dropped with depth")
		return subcommands.ExitFailure
	}
	log.Info().Str("reference", cfg.P2.String()).Msg("win rate non-decreasing with depth")
	return subcommands.ExitSuccess
}

func report(w io.Writer, p1, p2 string, st *Stats) {
	pr := message.NewPrinter(language.English)
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "\tfirst\tsecond\tsum\n")
	pr.Fprintf(tw, "p1 %s\t%d\t%d\t%d\n", p1, st.Players[0].FirstWins, st.Players[0].SecondWins, st.Players[0].Wins)
	pr.Fprintf(tw, "p2 %s\t%d\t%d\t%d\n", p2, st.Players[1].FirstWins, st.Players[1].SecondWins, st.Players[1].Wins)
	pr.Fprintf(tw, "sum\t%d\t%d\t%d\n",
		st.First, st.Second,
		st.Players[0].Wins+st.Players[1].Wins,
	)
	tw.Flush()
	if n := st.Count(); n > 0 {
		pr.Fprintf(w, "plies/game: %.1f\n", float64(st.Plies)/float64(n))
	}
}

// Games converts finished games into log records, naming each side
// after the configured player that took it.
func Games(names [2]string, st *Stats, now time.Time) []*logs.Game {
	var out []*logs.Game
	for i := range st.Games {
		r := &st.Games[i]
		if !r.Over {
			continue
		}
		g := r.Position.Geometry()
		out = append(out, &logs.Game{
			Timestamp: now,
			Width:     g.Width,
			Height:    g.Height,
			Player1:   names[r.Seat(isolation.Player1)],
			Player2:   names[r.Seat(isolation.Player2)],
			Winner:    r.Winner.String(),
			Plies:     r.Position.PlyCount(),
			Moves:     strings.Join(notation.FormatMoves(g, r.Moves), " "),
		})
	}
	return out
}

func (c *Command) store(repo *logs.Repository, names [2]string, st *Stats) error {
	if repo == nil {
		return nil
	}
	return repo.InsertGames(Games(names, st, time.Now()))
}

type Summary struct {
	Cmdline []string
	Player1 string
	Player2 string
	Limit   time.Duration
	Stats   *Stats
}

func (c *Command) writeSummary(path string, stats *Stats) error {
	return writeJSON(path, Summary{
		Cmdline: os.Args,
		Player1: c.p1,
		Player2: c.p2,
		Limit:   c.limit,
		Stats:   stats,
	})
}

func writeJSON(path string, v interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	bs, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = f.Write(bs)
	return err
}

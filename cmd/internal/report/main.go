package report

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/context"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/LuisKeys/isolation-adversarial-search/logs"
)

type Command struct {
	db     string
	player string
}

func (*Command) Name() string     { return "report" }
func (*Command) Synopsis() string { return "Summarize games stored by selfplay -db" }
func (*Command) Usage() string {
	return `report -db FILE [-player NAME]

Print wins per player across every stored game, or with -player, that
player's games.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.db, "db", "", "sqlite database written by selfplay")
	flags.StringVar(&c.player, "player", "", "list the games of this player")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.db == "" {
		log.Error().Msg("-db is required")
		return subcommands.ExitUsageError
	}
	if _, err := os.Stat(c.db); err != nil {
		log.Error().Err(err).Msg("-db")
		return subcommands.ExitUsageError
	}
	repo, err := logs.Open(c.db)
	if err != nil {
		log.Error().Err(err).Msg("open")
		return subcommands.ExitFailure
	}
	defer repo.Close()

	if c.player != "" {
		gs, err := repo.Games(c.player)
		if err != nil {
			log.Error().Err(err).Msg("games")
			return subcommands.ExitFailure
		}
		writeGames(os.Stdout, c.player, gs)
		return subcommands.ExitSuccess
	}
	sums, err := repo.Summary()
	if err != nil {
		log.Error().Err(err).Msg("summary")
		return subcommands.ExitFailure
	}
	writeSummary(os.Stdout, sums)
	return subcommands.ExitSuccess
}

func writeSummary(w io.Writer, sums []logs.PlayerSummary) {
	pr := message.NewPrinter(language.English)
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "player\tgames\twins\tas first\twin rate\tplies/game\n")
	for i := range sums {
		s := &sums[i]
		pr.Fprintf(tw, "%s\t%d\t%d\t%d\t%.3f\t%.1f\n",
			s.Player, s.Games, s.Wins, s.WinsFirst, s.WinRate(), s.AvgPlies)
	}
	tw.Flush()
}

func writeGames(w io.Writer, player string, gs []logs.Game) {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "id\ttime\tboard\topponent\tresult\tplies\n")
	for i := range gs {
		g := &gs[i]
		opp, side := g.Player2, "player1"
		if g.Player1 != player {
			opp, side = g.Player1, "player2"
		}
		result := "loss"
		if g.Winner == side {
			result = "win"
		}
		fmt.Fprintf(tw, "%d\t%s\t%dx%d\t%s\t%s\t%d\n",
			g.ID, g.Timestamp.Format("2006-01-02 15:04"), g.Width, g.Height, opp, result, g.Plies)
	}
	tw.Flush()
}

package selfplay

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"

	"github.com/LuisKeys/isolation-adversarial-search/cmd/internal/players"
	"github.com/LuisKeys/isolation-adversarial-search/isolation"
	"github.com/LuisKeys/isolation-adversarial-search/notation"
)

type Config struct {
	// Games is the number of games per opening, doubled when Swap is
	// set.
	Games int

	Verbose bool

	Initial []*isolation.Position

	P1, P2 players.Factory

	Swap    bool
	Threads int
	Seed    int64
	// Cutoff ends a game unfinished after that many plies; zero plays
	// every game out.
	Cutoff int
	Limit  time.Duration
}

type PlayerStats struct {
	Wins int
	// FirstWins and SecondWins split Wins by whether the player moved
	// first.
	FirstWins  int
	SecondWins int
}

type Stats struct {
	Players       [2]PlayerStats
	First, Second int
	Cutoff        int
	Plies         int

	Games []Result `json:"-"`
}

func (s *Stats) Count() int {
	return s.First + s.Second + s.Cutoff
}

func (s *Stats) Merge(other *Stats) Stats {
	out := *s
	for i := range out.Players {
		out.Players[i].Wins += other.Players[i].Wins
		out.Players[i].FirstWins += other.Players[i].FirstWins
		out.Players[i].SecondWins += other.Players[i].SecondWins
	}
	out.First += other.First
	out.Second += other.Second
	out.Cutoff += other.Cutoff
	out.Plies += other.Plies
	out.Games = append(append([]Result(nil), s.Games...), other.Games...)
	return out
}

// WinRate is the share of games won by configured player i.
func (s *Stats) WinRate(i int) float64 {
	n := s.Count()
	if n == 0 {
		return 0
	}
	return float64(s.Players[i].Wins) / float64(n)
}

func (s *Stats) add(r *Result) {
	s.Plies += len(r.Moves)
	if !r.Over {
		s.Cutoff++
		return
	}
	if r.Winner == isolation.Player1 {
		s.First++
	} else {
		s.Second++
	}
	pst := &s.Players[r.Seat(r.Winner)]
	pst.Wins++
	if r.Winner == isolation.Player1 {
		pst.FirstWins++
	} else {
		pst.SecondWins++
	}
}

type gameSpec struct {
	opening *isolation.Position
	oi      int
	i       int
	seed    int64
	swapped bool
}

type Result struct {
	spec     gameSpec
	Initial  *isolation.Position
	Position *isolation.Position
	Moves    []isolation.Move
	Over     bool
	Winner   isolation.Player
}

// Seat reports which configured player (0 for P1, 1 for P2) played
// side pl.
func (r *Result) Seat(pl isolation.Player) int {
	if r.spec.swapped {
		return 1 - int(pl)
	}
	return int(pl)
}

// Simulate plays every configured game across c.Threads workers.
func Simulate(ctx context.Context, c *Config) (Stats, error) {
	var st Stats
	specs := make(chan gameSpec)
	results := make(chan Result)

	grp, ctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		defer close(specs)
		return enqueue(ctx, c, specs)
	})
	var wg sync.WaitGroup
	threads := c.Threads
	if threads < 1 {
		threads = 1
	}
	wg.Add(threads)
	for i := 0; i < threads; i++ {
		grp.Go(func() error {
			defer wg.Done()
			return worker(ctx, c, specs, results)
		})
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	for r := range results {
		r := r
		if c.Verbose {
			log.Info().
				Int("opening", r.spec.oi).
				Int("game", r.spec.i).
				Int("plies", r.Position.PlyCount()).
				Bool("swapped", r.spec.swapped).
				Bool("over", r.Over).
				Str("winner", r.Winner.String()).
				Msg("game")
		}
		st.add(&r)
		st.Games = append(st.Games, r)
	}
	if err := grp.Wait(); err != nil {
		return st, err
	}
	return st, nil
}

func enqueue(ctx context.Context, c *Config, specs chan<- gameSpec) error {
	r := rand.New(rand.NewSource(uint64(c.Seed)))
	for oi, pos := range c.Initial {
		n := c.Games
		if c.Swap {
			n *= 2
		}
		for g := 0; g < n; g++ {
			spec := gameSpec{
				opening: pos,
				oi:      oi,
				i:       g,
				seed:    r.Int63(),
				swapped: c.Swap && g%2 == 1,
			}
			select {
			case specs <- spec:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return nil
}

func worker(ctx context.Context, c *Config, specs <-chan gameSpec, out chan<- Result) error {
	s1, err := c.P1.Start()
	if err != nil {
		return err
	}
	defer s1.Close()
	s2, err := c.P2.Start()
	if err != nil {
		return err
	}
	defer s2.Close()
	seats := [2]players.Seat{s1, s2}

	for g := range specs {
		r, err := play(ctx, c, g, seats)
		if err != nil {
			return fmt.Errorf("opening %d game %d: %w", g.oi, g.i, err)
		}
		select {
		case out <- r:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func play(ctx context.Context, c *Config, g gameSpec, seats [2]players.Seat) (Result, error) {
	geom := g.opening.Geometry()
	first, second := seats[0], seats[1]
	if g.swapped {
		first, second = second, first
	}
	p1, err := first.NewGame(geom, g.seed)
	if err != nil {
		return Result{}, err
	}
	p2, err := second.NewGame(geom, g.seed+1)
	if err != nil {
		return Result{}, err
	}

	var ms []isolation.Move
	p := g.opening
	for c.Cutoff <= 0 || len(ms) < c.Cutoff {
		if p.IsTerminal() {
			break
		}
		mctx, cancel := ctx, context.CancelFunc(func() {})
		if c.Limit != 0 {
			mctx, cancel = context.WithTimeout(ctx, c.Limit)
		}
		var m isolation.Move
		if p.ToMove() == isolation.Player1 {
			m, err = p1.GetMove(mctx, p)
		} else {
			m, err = p2.GetMove(mctx, p)
		}
		cancel()
		if err != nil {
			return Result{}, fmt.Errorf("get move at ply %d: %w", p.PlyCount(), err)
		}
		next, err := p.Result(m)
		if err != nil {
			return Result{}, fmt.Errorf("illegal move %s at ply %d: %w",
				notation.FormatMove(geom, m), p.PlyCount(), err)
		}
		p = next
		ms = append(ms, m)
	}
	w, over := p.Winner()
	return Result{
		spec:     g,
		Initial:  g.opening,
		Position: p,
		Moves:    ms,
		Over:     over,
		Winner:   w,
	}, nil
}

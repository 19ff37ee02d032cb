package ai

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
	"golang.org/x/net/context"

	"github.com/LuisKeys/isolation-adversarial-search/isolation"
	"github.com/LuisKeys/isolation-adversarial-search/notation"
)

type Config struct {
	Strategy Strategy
	// MaxDepth stops deepening after that many plies; zero deepens
	// until the caller cancels.
	MaxDepth int
	Seed     int64
	Parallel bool
	Debug    int

	Evaluate EvaluationFunc `json:"-"`
}

// Engine picks moves by iterative deepening. It keeps no state
// between calls; the same Engine may serve any number of positions.
type Engine struct {
	cfg  Config
	eval Evaluator
}

func NewEngine(cfg Config) *Engine {
	e := &Engine{cfg: cfg}
	e.eval.Evaluate = cfg.Evaluate
	if e.eval.Evaluate == nil {
		e.eval.Evaluate = cfg.Strategy.Evaluator()
	}
	e.eval.Parallel = cfg.Parallel
	return e
}

func (e *Engine) Config() Config {
	return e.cfg
}

// Emitter receives successive best-move estimates. The last one
// received is the engine's answer.
type Emitter interface {
	Emit(m isolation.Move)
}

type EmitterFunc func(m isolation.Move)

func (f EmitterFunc) Emit(m isolation.Move) { f(m) }

// Result is the outcome of one completed depth.
type Result struct {
	Move  isolation.Move
	Value Score
	Stats Stats
}

// SelectMove emits at least one legal move for s before returning.
// During the first two plies it plays the center of the board when it
// can, or a random move. Otherwise it searches depth 1, 2, 3, ... and
// emits each completed depth's move until ctx is done or MaxDepth is
// reached. A depth interrupted by ctx is discarded. Depth 1 is never
// interrupted.
func (e *Engine) SelectMove(ctx context.Context, s StateView, out Emitter) error {
	if s.IsTerminal() {
		return ErrGameOver
	}
	actions := s.Actions()
	if len(actions) == 0 {
		return ErrNoActions
	}
	if s.PlyCount() < 2 {
		out.Emit(e.opening(s, actions))
		return nil
	}
	return e.deepen(ctx, s, func(r Result) {
		out.Emit(r.Move)
	})
}

// Analyze searches s like SelectMove without the opening shortcut and
// returns the last completed depth. It needs either MaxDepth or a
// deadline on ctx.
func (e *Engine) Analyze(ctx context.Context, s StateView) (Result, error) {
	if s.IsTerminal() {
		return Result{Move: NoMove, Value: s.Utility(s.ToMove())}, ErrGameOver
	}
	var last Result
	err := e.deepen(ctx, s, func(r Result) {
		last = r
	})
	return last, err
}

func (e *Engine) opening(s StateView, actions []isolation.Move) isolation.Move {
	center := isolation.Move(s.Geometry().Center())
	if slices.Contains(actions, center) {
		return center
	}
	seed := e.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(uint64(seed)))
	return actions[r.Intn(len(actions))]
}

func (e *Engine) deepen(ctx context.Context, s StateView, report func(Result)) error {
	var cancel int32
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			atomic.StoreInt32(&cancel, 1)
		case <-done:
		}
	}()

	g := s.Geometry()
	top := time.Now()
	for depth := 1; e.cfg.MaxDepth <= 0 || depth <= e.cfg.MaxDepth; depth++ {
		st := Stats{Depth: depth}
		start := time.Now()
		flag := &cancel
		if depth == 1 {
			flag = nil
		}
		m, v, err := e.eval.search(s, depth, &st, flag)
		if errors.Is(err, errCanceled) {
			if e.cfg.Debug > 0 {
				log.Info().Int("depth", depth).Dur("total", time.Since(top)).Msg("[minimax] time cutoff")
			}
			return nil
		}
		if err != nil {
			return err
		}
		st.Elapsed = time.Since(start)
		report(Result{Move: m, Value: v, Stats: st})

		if e.cfg.Debug > 0 {
			log.Info().
				Int("depth", depth).
				Str("val", v.String()).
				Str("move", notation.FormatMove(g, m)).
				Dur("time", st.Elapsed).
				Dur("total", time.Since(top)).
				Uint64("evaluated", st.Evaluated).
				Msg("[minimax] deepen")
		}
		if e.cfg.Debug > 1 {
			log.Debug().
				Uint64("root", st.RootActions).
				Uint64("visited", st.Visited).
				Uint64("terminal", st.Terminal).
				Uint64("cut", st.CutNodes).
				Msg("[minimax]  stats")
		}

		if st.Resolved() {
			// Every line ends the game before the horizon; deeper
			// searches would repeat this answer.
			if e.cfg.MaxDepth > 0 {
				return nil
			}
			<-ctx.Done()
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}
	}
	return nil
}

// Drive runs SelectMove until it returns or ctx is done and returns the
// last move it emitted. If ctx ends before anything was emitted, Drive
// waits for the first emission, which SelectMove always makes.
func Drive(ctx context.Context, e *Engine, s StateView) (isolation.Move, error) {
	var (
		mu    sync.Mutex
		last  = NoMove
		first = make(chan struct{})
		once  sync.Once
	)
	done := make(chan error, 1)
	go func() {
		done <- e.SelectMove(ctx, s, EmitterFunc(func(m isolation.Move) {
			mu.Lock()
			last = m
			mu.Unlock()
			once.Do(func() { close(first) })
		}))
	}()

	select {
	case err := <-done:
		if err != nil {
			return NoMove, err
		}
	case <-ctx.Done():
		select {
		case <-first:
		case err := <-done:
			if err != nil {
				return NoMove, err
			}
		}
	}
	mu.Lock()
	defer mu.Unlock()
	return last, nil
}

// GetMove drives the engine on p. Without MaxDepth, ctx must carry a
// deadline.
func (e *Engine) GetMove(ctx context.Context, p *isolation.Position) (isolation.Move, error) {
	return Drive(ctx, e, View(p))
}

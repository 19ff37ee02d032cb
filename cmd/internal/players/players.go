// Package players builds game participants from short text specs such
// as "random", "greedy", "minimax@4" or "iei:isolation iei -depth 3".
package players

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/LuisKeys/isolation-adversarial-search/ai"
	"github.com/LuisKeys/isolation-adversarial-search/iei"
	"github.com/LuisKeys/isolation-adversarial-search/isolation"
)

// DefaultDepth is used by a bare "minimax" when the base config sets
// no depth, so that games without a time limit still finish.
const DefaultDepth = 3

// Seat is one participant as seen by one worker. Seats are not safe
// for concurrent use.
type Seat interface {
	NewGame(g isolation.Geometry, seed int64) (ai.IsolationPlayer, error)
	Close()
}

type Factory interface {
	String() string
	Start() (Seat, error)
}

// Parse reads a player spec. Engine players start from base.
func Parse(spec string, base ai.Config) (Factory, error) {
	switch {
	case spec == "random":
		return &local{name: spec, build: func(_ isolation.Geometry, seed int64) ai.IsolationPlayer {
			return ai.NewRandom(seed)
		}}, nil
	case spec == "greedy":
		eval := base.Strategy.Evaluator()
		return &local{name: spec, build: func(isolation.Geometry, int64) ai.IsolationPlayer {
			return &ai.GreedyAI{Evaluate: eval}
		}}, nil
	case spec == "minimax" || strings.HasPrefix(spec, "minimax@"):
		cfg := base
		if spec != "minimax" {
			d, err := strconv.Atoi(spec[len("minimax@"):])
			if err != nil || d < 1 {
				return nil, fmt.Errorf("bad depth in %q", spec)
			}
			cfg.MaxDepth = d
		}
		if cfg.MaxDepth <= 0 {
			cfg.MaxDepth = DefaultDepth
		}
		return &local{
			name: fmt.Sprintf("minimax@%d", cfg.MaxDepth),
			build: func(_ isolation.Geometry, seed int64) ai.IsolationPlayer {
				c := cfg
				if c.Seed == 0 {
					c.Seed = seed
				}
				return ai.NewEngine(c)
			},
		}, nil
	case strings.HasPrefix(spec, "iei:"):
		argv := strings.Fields(spec[len("iei:"):])
		if len(argv) == 0 {
			return nil, fmt.Errorf("no command in %q", spec)
		}
		return &remote{argv: argv}, nil
	}
	return nil, fmt.Errorf("unparseable player: %q", spec)
}

type local struct {
	name  string
	build func(g isolation.Geometry, seed int64) ai.IsolationPlayer
}

func (l *local) String() string       { return l.name }
func (l *local) Start() (Seat, error) { return l, nil }
func (l *local) Close()               {}

func (l *local) NewGame(g isolation.Geometry, seed int64) (ai.IsolationPlayer, error) {
	return l.build(g, seed), nil
}

type remote struct {
	argv []string
}

func (r *remote) String() string {
	return "iei:" + strings.Join(r.argv, " ")
}

func (r *remote) Start() (Seat, error) {
	cl, err := iei.NewClient(r.argv)
	if err != nil {
		return nil, fmt.Errorf("starting client%v: %w", r.argv, err)
	}
	return &remoteSeat{cl}, nil
}

type remoteSeat struct {
	cl *iei.Client
}

func (s *remoteSeat) NewGame(g isolation.Geometry, _ int64) (ai.IsolationPlayer, error) {
	return s.cl.NewGame(g)
}

func (s *remoteSeat) Close() {
	s.cl.Close()
}

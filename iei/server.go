package iei

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/net/context"

	"github.com/LuisKeys/isolation-adversarial-search/ai"
	"github.com/LuisKeys/isolation-adversarial-search/isolation"
	"github.com/LuisKeys/isolation-adversarial-search/notation"
)

// DefaultMoveTime bounds a bare `go` when the engine has no depth
// limit either.
const DefaultMoveTime = time.Second

type Engine struct {
	ConfigFactory func(g isolation.Geometry) ai.Config

	in  *bufio.Reader
	out io.Writer

	engine *ai.Engine
	pos    *isolation.Position
	geom   isolation.Geometry
}

func NewEngine(in io.Reader, out io.Writer) *Engine {
	return &Engine{
		in:   bufio.NewReader(in),
		out:  out,
		geom: isolation.DefaultGeometry,
	}
}

func (e *Engine) Run(ctx context.Context) error {
	for {
		line, err := e.in.ReadString('\n')
		if err == io.EOF && line == "" {
			return nil
		}
		if err != nil && err != io.EOF {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		words := strings.Fields(line)
		switch words[0] {
		case "iei":
			fmt.Fprintln(e.out, "id name isolation")
			fmt.Fprintln(e.out, "id author LuisKeys")
			fmt.Fprintln(e.out, "ieiok")
		case "quit":
			return nil
		case "ieinewgame":
			e.engine = nil
			e.pos = nil
			e.geom, err = parseGeometry(words[1:])
			if err != nil {
				return err
			}
		case "position":
			e.pos, err = parsePosition(e.geom, words)
			if err != nil {
				return fmt.Errorf("error parsing position: %w", err)
			}
		case "go":
			if err := e.analyze(ctx, words); err != nil {
				log.Error().Err(err).Msg("go")
			}
		case "stop":
		case "isready":
			fmt.Fprintln(e.out, "readyok")
		default:
			return fmt.Errorf("unknown command: %q", line)
		}
	}
}

func parseGeometry(words []string) (isolation.Geometry, error) {
	switch len(words) {
	case 0:
		return isolation.DefaultGeometry, nil
	case 2:
	default:
		return isolation.Geometry{}, errors.New("ieinewgame: expected <width> <height>")
	}
	w, err := strconv.Atoi(words[0])
	if err != nil {
		return isolation.Geometry{}, fmt.Errorf("bad width: %q", words[0])
	}
	h, err := strconv.Atoi(words[1])
	if err != nil {
		return isolation.Geometry{}, fmt.Errorf("bad height: %q", words[1])
	}
	if w < 3 || w > 26 || h < 3 || w*h > 128 {
		return isolation.Geometry{}, fmt.Errorf("bad board size: %dx%d", w, h)
	}
	return isolation.Geometry{Width: w, Height: h}, nil
}

func parsePosition(g isolation.Geometry, words []string) (*isolation.Position, error) {
	var pos *isolation.Position
	words = words[1:]
	if len(words) == 0 {
		return nil, errors.New("not enough arguments")
	}
	switch words[0] {
	case "startpos":
		words = words[1:]
		pos = isolation.New(isolation.Config{Width: g.Width, Height: g.Height})
	case "ipn":
		// ipn ROWS PLY
		if len(words) < 3 {
			return nil, errors.New("position ipn: not enough arguments")
		}
		var err error
		pos, err = notation.ParseIPN(strings.Join(words[1:3], " "))
		if err != nil {
			return nil, fmt.Errorf("parse IPN: %w", err)
		}
		words = words[3:]
		if pos.Geometry() != g {
			return nil, fmt.Errorf("ipn is %dx%d, configured for %dx%d",
				pos.Geometry().Width, pos.Geometry().Height, g.Width, g.Height)
		}
	default:
		return nil, fmt.Errorf("unknown initial position: %q", words[0])
	}
	if len(words) == 0 {
		return pos, nil
	}
	if words[0] != "moves" {
		return nil, errors.New("position: expected `moves'")
	}
	for _, w := range words[1:] {
		move, err := notation.ParseMove(g, w)
		if err != nil {
			return nil, fmt.Errorf("parse move %q: %w", w, err)
		}
		pos, err = pos.Result(move)
		if err != nil {
			return nil, fmt.Errorf("move %q: %w", w, err)
		}
	}
	return pos, nil
}

func (e *Engine) analyze(ctx context.Context, words []string) error {
	if e.pos == nil {
		return errors.New("no position provided")
	}
	if e.engine == nil {
		cfg := ai.Config{}
		if e.ConfigFactory != nil {
			cfg = e.ConfigFactory(e.geom)
		}
		e.engine = ai.NewEngine(cfg)
	}
	words = words[1:]
	budget := time.Duration(0)
	if len(words) > 0 {
		if len(words) != 2 || words[0] != "movetime" {
			return errors.New("expected movetime <N>")
		}
		ms, err := strconv.ParseUint(words[1], 10, 64)
		if err != nil {
			return fmt.Errorf("bad ms: %v", words[1])
		}
		budget = time.Duration(ms) * time.Millisecond
	} else if e.engine.Config().MaxDepth <= 0 {
		budget = DefaultMoveTime
	}
	if budget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, budget)
		defer cancel()
	}

	g := e.pos.Geometry()
	depth := 0
	best := ai.NoMove
	err := e.engine.SelectMove(ctx, ai.View(e.pos), ai.EmitterFunc(func(m isolation.Move) {
		depth++
		best = m
		fmt.Fprintf(e.out, "info depth %d move %s\n", depth, notation.FormatMove(g, m))
	}))
	if err != nil {
		fmt.Fprintln(e.out, "bestmove -")
		return err
	}
	fmt.Fprintf(e.out, "bestmove %s\n", notation.FormatMove(g, best))
	return nil
}

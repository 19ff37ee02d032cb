package iei

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/context"

	"github.com/LuisKeys/isolation-adversarial-search/ai"
	"github.com/LuisKeys/isolation-adversarial-search/isolation"
	"github.com/LuisKeys/isolation-adversarial-search/notation"
)

// Client drives an engine speaking IEI in a subprocess. Name and
// Author are what the engine announced during the handshake.
type Client struct {
	Name   string
	Author string

	cmd  *exec.Cmd
	in   io.WriteCloser
	out  *bufio.Scanner
	game int
}

// Search is the engine's answer to one go command: every move it
// reported on an info line, the last info depth, and its bestmove.
type Search struct {
	Move  isolation.Move
	Depth int
	Info  []isolation.Move
}

var errDeadPlayer = errors.New("player belongs to a finished game")

func NewClient(argv []string) (*Client, error) {
	if len(argv) == 0 {
		return nil, errors.New("empty command line")
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	in, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	out, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", argv[0], err)
	}
	c := &Client{cmd: cmd, in: in, out: bufio.NewScanner(out)}
	if err := c.handshake(); err != nil {
		c.Close()
		return nil, fmt.Errorf("handshake: %w", err)
	}
	return c, nil
}

func (c *Client) send(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(c.in, format+"\n", args...)
	return err
}

// expect reads lines up to the first one starting with keyword and
// returns its words. Other lines go to each, when set.
func (c *Client) expect(keyword string, each func(words []string) error) ([]string, error) {
	for c.out.Scan() {
		words := strings.Fields(c.out.Text())
		if len(words) == 0 {
			continue
		}
		if words[0] == keyword {
			return words, nil
		}
		if each != nil {
			if err := each(words); err != nil {
				return nil, err
			}
		}
	}
	if err := c.out.Err(); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("waiting for %s: %w", keyword, io.ErrUnexpectedEOF)
}

func (c *Client) handshake() error {
	if err := c.send("iei"); err != nil {
		return err
	}
	_, err := c.expect("ieiok", func(words []string) error {
		if len(words) < 3 || words[0] != "id" {
			return nil
		}
		switch v := strings.Join(words[2:], " "); words[1] {
		case "name":
			c.Name = v
		case "author":
			c.Author = v
		}
		return nil
	})
	return err
}

// NewGame sizes the engine's board to g and waits until it is ready.
// Players from earlier games stop working.
func (c *Client) NewGame(g isolation.Geometry) (ai.IsolationPlayer, error) {
	c.game++
	if err := c.send("ieinewgame %d %d", g.Width, g.Height); err != nil {
		return nil, err
	}
	if err := c.send("isready"); err != nil {
		return nil, err
	}
	if _, err := c.expect("readyok", nil); err != nil {
		return nil, err
	}
	return &player{client: c, game: c.game}, nil
}

// Go asks the engine to search pos, for at most movetime when it is
// positive. A bestmove of "-" is reported as ai.ErrGameOver.
func (c *Client) Go(pos *isolation.Position, movetime time.Duration) (Search, error) {
	g := pos.Geometry()
	s := Search{Move: ai.NoMove}
	if err := c.send("position ipn %s", notation.FormatIPN(pos)); err != nil {
		return s, fmt.Errorf("send position: %w", err)
	}
	cmd := "go"
	if movetime > 0 {
		cmd += " movetime " + formatTime(movetime)
	}
	if err := c.send(cmd); err != nil {
		return s, fmt.Errorf("send go: %w", err)
	}

	best, err := c.expect("bestmove", func(words []string) error {
		if len(words) != 5 || words[0] != "info" || words[1] != "depth" || words[3] != "move" {
			return nil
		}
		d, err := strconv.Atoi(words[2])
		if err != nil {
			return fmt.Errorf("bad info depth %q", words[2])
		}
		m, err := notation.ParseMove(g, words[4])
		if err != nil {
			return fmt.Errorf("bad info move %q: %w", words[4], err)
		}
		s.Depth = d
		s.Info = append(s.Info, m)
		return nil
	})
	if err != nil {
		return s, err
	}
	if len(best) != 2 {
		return s, fmt.Errorf("bad bestmove: %q", strings.Join(best, " "))
	}
	if best[1] == "-" {
		return s, ai.ErrGameOver
	}
	if s.Move, err = notation.ParseMove(g, best[1]); err != nil {
		return s, fmt.Errorf("unable to parse move %q: %w", best[1], err)
	}
	return s, nil
}

// Close asks the engine to quit and waits for it to exit.
func (c *Client) Close() error {
	c.send("quit")
	c.in.Close()
	return c.cmd.Wait()
}

type player struct {
	client *Client
	game   int
}

// GetMove searches until the deadline of ctx, or without a move time
// when ctx has none.
func (p *player) GetMove(ctx context.Context, pos *isolation.Position) (isolation.Move, error) {
	if p.game != p.client.game {
		return ai.NoMove, errDeadPlayer
	}
	var movetime time.Duration
	if deadline, ok := ctx.Deadline(); ok {
		movetime = time.Until(deadline)
		if movetime <= 0 {
			movetime = time.Millisecond
		}
	}
	s, err := p.client.Go(pos, movetime)
	return s.Move, err
}

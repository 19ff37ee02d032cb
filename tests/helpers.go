package tests

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/LuisKeys/isolation-adversarial-search/isolation"
	"github.com/LuisKeys/isolation-adversarial-search/notation"
)

type zooCase struct {
	name      string
	p         *isolation.Position
	goodMoves []isolation.Move
	badMoves  []isolation.Move
}

func parseMoves(g isolation.Geometry, s string) ([]isolation.Move, error) {
	var out []isolation.Move
	for _, w := range strings.Fields(s) {
		m, err := notation.ParseMove(g, w)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// readZoo reads "name ; IPN ; good moves ; bad moves" lines.
func readZoo(path string) ([]*zooCase, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []*zooCase
	s := bufio.NewScanner(f)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		bits := strings.Split(line, ";")
		if len(bits) != 4 {
			return nil, fmt.Errorf("bad zoo line: %q", line)
		}
		tc := &zooCase{name: strings.TrimSpace(bits[0])}
		if tc.p, err = notation.ParseIPN(strings.TrimSpace(bits[1])); err != nil {
			return nil, fmt.Errorf("%s: %w", tc.name, err)
		}
		g := tc.p.Geometry()
		if tc.goodMoves, err = parseMoves(g, bits[2]); err != nil {
			return nil, fmt.Errorf("%s: %w", tc.name, err)
		}
		if tc.badMoves, err = parseMoves(g, bits[3]); err != nil {
			return nil, fmt.Errorf("%s: %w", tc.name, err)
		}
		out = append(out, tc)
	}
	return out, s.Err()
}

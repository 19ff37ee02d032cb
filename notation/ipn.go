package notation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/LuisKeys/isolation-adversarial-search/isolation"
)

// ParseIPN reads a position in Isolation Position Notation:
//
//	<row>/<row>/... <ply>
//
// Rows run from the top of the board (highest y) down and hold
// comma-separated cells: `#` is a visited cell, `1` and `2` are the
// tokens and `x<n>` is a run of n open cells (a bare `x` is one).
func ParseIPN(ipn string) (*isolation.Position, error) {
	words := strings.Split(ipn, " ")
	if len(words) != 2 {
		return nil, errors.New("bad IPN: wrong number of words")
	}
	ply, err := strconv.Atoi(words[1])
	if err != nil || ply < 0 {
		return nil, fmt.Errorf("bad ply: %s", words[1])
	}

	rows := strings.Split(words[0], "/")
	var parsed [][]byte
	for _, r := range rows {
		row, err := parseRow(r)
		if err != nil {
			return nil, err
		}
		parsed = append([][]byte{row}, parsed...)
	}
	height := len(parsed)
	width := len(parsed[0])
	if height < 3 || width < 3 || width > 26 || width*height > 128 {
		return nil, fmt.Errorf("bad board dimensions: %dx%d", width, height)
	}
	for i, r := range parsed {
		if len(r) != width {
			return nil, fmt.Errorf("row %d bad length: %d", i, len(r))
		}
	}

	g := isolation.Geometry{Width: width, Height: height}
	var blocked []isolation.Cell
	locs := [2]isolation.Cell{isolation.NoCell, isolation.NoCell}
	for y, row := range parsed {
		for x, b := range row {
			c := g.XYToIndex(x, y)
			switch b {
			case '#':
				blocked = append(blocked, c)
			case '1', '2':
				pl := b - '1'
				if locs[pl] != isolation.NoCell {
					return nil, fmt.Errorf("duplicate token %c", b)
				}
				locs[pl] = c
			}
		}
	}
	return isolation.FromCells(isolation.Config{Width: width, Height: height}, blocked, locs, ply)
}

func FormatIPN(p *isolation.Position) string {
	g := p.Geometry()
	locs := p.Locations()
	var rows []string
	for y := g.Height - 1; y >= 0; y-- {
		var bits []string
		run := 0
		for x := 0; x < g.Width; x++ {
			c := g.XYToIndex(x, y)
			var b string
			switch {
			case c == locs[isolation.Player1]:
				b = "1"
			case c == locs[isolation.Player2]:
				b = "2"
			case p.Blocked(c):
				b = "#"
			default:
				run++
				continue
			}
			if run > 0 {
				bits = append(bits, formatRun(run))
				run = 0
			}
			bits = append(bits, b)
		}
		if run > 0 {
			bits = append(bits, formatRun(run))
		}
		rows = append(rows, strings.Join(bits, ","))
	}
	return fmt.Sprintf("%s %d", strings.Join(rows, "/"), p.PlyCount())
}

func parseRow(row string) ([]byte, error) {
	var out []byte
	for _, bit := range strings.Split(row, ",") {
		switch {
		case bit == "#" || bit == "1" || bit == "2":
			out = append(out, bit[0])
		case bit == "x":
			out = append(out, '.')
		case strings.HasPrefix(bit, "x"):
			n, err := strconv.Atoi(bit[1:])
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("malformed row: %s", row)
			}
			for k := 0; k < n; k++ {
				out = append(out, '.')
			}
		default:
			return nil, fmt.Errorf("malformed row: %s", row)
		}
	}
	return out, nil
}

func formatRun(n int) string {
	switch n {
	case 1:
		return "x"
	default:
		return "x" + strconv.Itoa(n)
	}
}

package isolation

import "math"

// Cell is a board index, y*Width + x.
type Cell int16

// NoCell is the location of a token that has not been placed yet.
const NoCell Cell = -1

type Geometry struct {
	Width  int
	Height int
}

var DefaultGeometry = Geometry{Width: DefaultWidth, Height: DefaultHeight}

func (g Geometry) Cells() int {
	return g.Width * g.Height
}

func (g Geometry) XYToIndex(x, y int) Cell {
	return Cell(y*g.Width + x)
}

func (g Geometry) IndexToXY(c Cell) (x, y int) {
	return int(c) % g.Width, int(c) / g.Width
}

func (g Geometry) Contains(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

func (g Geometry) Valid(c Cell) bool {
	return c >= 0 && int(c) < g.Cells()
}

// Center is the middle cell of the board, rounding down on even
// dimensions.
func (g Geometry) Center() Cell {
	return g.XYToIndex(g.Width/2, g.Height/2)
}

func (g Geometry) MirrorX(c Cell) Cell {
	x, y := g.IndexToXY(c)
	return g.XYToIndex(g.Width-1-x, y)
}

// Distance is the straight-line distance between two cells.
func (g Geometry) Distance(a, b Cell) float64 {
	ax, ay := g.IndexToXY(a)
	bx, by := g.IndexToXY(b)
	return math.Hypot(float64(ax-bx), float64(ay-by))
}

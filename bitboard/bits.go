package bitboard

import "math/bits"

// MaxCells is the largest board a Set can describe.
const MaxCells = 128

// Set is a set of board cells, indexed y*Width+x, packed into two
// words.
type Set [2]uint64

type Constants struct {
	Width, Height uint
	Mask          Set
}

func Precompute(width, height uint) Constants {
	if width*height > MaxCells {
		panic("Precompute: board too large")
	}
	c := Constants{Width: width, Height: height}
	for i := uint(0); i < width*height; i++ {
		c.Mask = c.Mask.With(int(i))
	}
	return c
}

func (s Set) Has(i int) bool {
	return s[i>>6]&(1<<uint(i&63)) != 0
}

func (s Set) With(i int) Set {
	s[i>>6] |= 1 << uint(i&63)
	return s
}

func (s Set) AndNot(o Set) Set {
	return Set{s[0] &^ o[0], s[1] &^ o[1]}
}

// Cells appends the members of s to out in increasing order.
func (s Set) Cells(out []int) []int {
	for w, word := range s {
		for word != 0 {
			next := word & (word - 1)
			out = append(out, w*64+int(TrailingZeros(word&^next)))
			word = next
		}
	}
	return out
}

func TrailingZeros(x uint64) uint {
	return uint(bits.TrailingZeros64(x))
}

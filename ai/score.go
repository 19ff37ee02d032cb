package ai

import (
	"fmt"
	"math"
)

// Score is a search value from one player's point of view. Terminal
// payoffs are exactly MaxScore or MinScore; heuristic values are
// fixed-point with ScoreUnit per unit and always lie strictly between
// -WinThreshold and WinThreshold.
type Score int64

const (
	MaxScore     Score = 1 << 40
	MinScore           = -MaxScore
	WinThreshold Score = 1 << 39

	ScoreUnit = 1000
)

// FromFloat converts a heuristic value, saturating inside the
// heuristic range.
func FromFloat(v float64) Score {
	if math.IsNaN(v) {
		return 0
	}
	v = math.Round(v * ScoreUnit)
	if v >= float64(WinThreshold) {
		return WinThreshold - 1
	}
	if v <= -float64(WinThreshold) {
		return -WinThreshold + 1
	}
	return Score(v)
}

func (s Score) Float() float64 {
	return float64(s) / ScoreUnit
}

func (s Score) IsWin() bool {
	return s >= WinThreshold
}

func (s Score) IsLoss() bool {
	return s <= -WinThreshold
}

func (s Score) String() string {
	switch {
	case s.IsWin():
		return "win"
	case s.IsLoss():
		return "loss"
	}
	return fmt.Sprintf("%.3f", s.Float())
}

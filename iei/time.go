package iei

import (
	"strconv"
	"time"
)

// formatTime renders d as whole milliseconds, never negative and never
// zero, since `movetime 0` would leave the engine no time for depth 1.
func formatTime(d time.Duration) string {
	ms := d / time.Millisecond
	if ms < 1 {
		ms = 1
	}
	return strconv.FormatUint(uint64(ms), 10)
}

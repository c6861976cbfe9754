package audio

import (
	"math"
	"time"
)

// Progress is reported to the progress callback on every time update.
type Progress struct {
	Percent  float64
	Current  time.Duration
	Duration time.Duration
}

// Percent returns current as a percentage of duration. The result is always
// finite and within [0, 100]; an unknown or zero duration gives 0.
func Percent(current, duration time.Duration) float64 {
	if duration <= 0 {
		return 0
	}
	p := float64(current) / float64(duration) * 100
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0
	}
	return max(0, min(100, p))
}

func clampVolume(level float64) float64 {
	if math.IsNaN(level) || level < 0 {
		return 0
	}
	return min(level, 1)
}

func clampPosition(pos, duration time.Duration) time.Duration {
	return max(0, min(pos, duration))
}

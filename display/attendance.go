package display

import "math"

// Bar colours for the attendance progress bar.
const (
	LevelLow    = "blue"
	LevelMedium = "yellow"
	LevelHigh   = "red"
)

// AttendancePercentage is current/max as a percentage, capped at 100. It is 0
// when no capacity is set.
func AttendancePercentage(current int, max *int) float64 {
	if max == nil || *max <= 0 || current <= 0 {
		return 0
	}
	return math.Min(float64(current)/float64(*max)*100, 100)
}

// IsFull reports whether registration should be closed.
func IsFull(pct float64) bool {
	return pct >= 100
}

// AttendanceLevel buckets pct for the bar colour. Both bounds are exclusive,
// so an event at exactly 90% is still yellow.
func AttendanceLevel(pct float64) string {
	switch {
	case pct > 90:
		return LevelHigh
	case pct > 70:
		return LevelMedium
	default:
		return LevelLow
	}
}

// RoundedPercent is the whole-number label shown next to the bar.
func RoundedPercent(pct float64) int {
	return int(math.Round(pct))
}

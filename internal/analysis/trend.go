package analysis

import (
	"math"

	"daylog/internal/record"
)

// PearsonCorrelation computes the correlation coefficient between two
// equally sized series. Returns false when either series is constant
// or too short for the statistic to mean anything.
func PearsonCorrelation(xs, ys []float64) (float64, bool) {
	n := len(xs)
	if n != len(ys) || n < 2 {
		return 0, false
	}

	var sumX, sumY float64
	for i := 0; i < n; i++ {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var cov, varX, varY float64
	for i := 0; i < n; i++ {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0, false
	}
	return cov / math.Sqrt(varX*varY), true
}

// ActivityEnergyCorrelation correlates activity level against
// energy/focus across days. Requires at least minDays days.
func ActivityEnergyCorrelation(days []record.EnrichedRecord, minDays int) (float64, bool) {
	if len(days) < minDays {
		return 0, false
	}
	xs := make([]float64, len(days))
	ys := make([]float64, len(days))
	for i, d := range days {
		xs[i] = float64(d.ActivityLevel)
		ys[i] = float64(d.EnergyFocus)
	}
	return PearsonCorrelation(xs, ys)
}

// SedentaryStreak counts the consecutive sedentary days at the end of
// a date-ascending slice.
func SedentaryStreak(days []record.EnrichedRecord) int {
	streak := 0
	for i := len(days) - 1; i >= 0; i-- {
		if days[i].LifestyleStatus != record.StatusSedentary {
			break
		}
		streak++
	}
	return streak
}

// Downtrend reports whether the last n activity levels of a
// date-ascending slice fall strictly.
func Downtrend(days []record.EnrichedRecord, n int) bool {
	if n < 2 || len(days) < n {
		return false
	}
	tail := days[len(days)-n:]
	for i := 1; i < len(tail); i++ {
		if tail[i].ActivityLevel >= tail[i-1].ActivityLevel {
			return false
		}
	}
	return true
}

// ActivityLevels extracts the activity-level series from a slice of
// days, in the given order.
func ActivityLevels(days []record.EnrichedRecord) []float64 {
	levels := make([]float64, len(days))
	for i, d := range days {
		levels[i] = float64(d.ActivityLevel)
	}
	return levels
}

package scoring

import "daylog/internal/record"

// StepPoints awards points for a day's step count.
func StepPoints(cfg Config, steps int) int {
	return bandPoints(cfg.StepBands, steps)
}

// DurationPoints awards points for exercise minutes, before the zone
// multiplier is applied.
func DurationPoints(cfg Config, minutes int) int {
	return bandPoints(cfg.DurationBands, minutes)
}

// Score computes the step and exercise point contributions for a day.
// It is total over its domain: a missing exercise duration scores as
// the lowest band and a missing or unknown zone multiplies by 1.0.
// On a rest day the exercise fields are ignored entirely, whatever
// they contain.
func Score(cfg Config, steps int, didExercise bool, exerciseMinutes *int, zone *record.Zone) (stepPoints, exercisePoints int) {
	stepPoints = StepPoints(cfg, steps)

	if !didExercise {
		return stepPoints, 0
	}

	minutes := 0
	if exerciseMinutes != nil {
		minutes = *exerciseMinutes
	}

	base := DurationPoints(cfg, minutes)

	// Truncation is deliberate: 35 * 1.5 scores 52, not 53, before
	// the clamp. Boundary tests depend on it.
	exercisePoints = int(float64(base) * cfg.multiplierFor(zone))
	if exercisePoints > cfg.MaxExercisePoints {
		exercisePoints = cfg.MaxExercisePoints
	}
	return stepPoints, exercisePoints
}

// bandPoints returns the points of the last band whose Min is <= v.
// Negative values fall into the first band.
func bandPoints(bands []PointBand, v int) int {
	points := bands[0].Points
	for _, b := range bands {
		if v >= b.Min {
			points = b.Points
		}
	}
	return points
}

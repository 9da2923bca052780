package record

import "time"

// DailyRecord is one day of logged activity as produced by ingestion.
// Optional fields use pointers so that "absent" stays distinguishable
// from a zero value.
type DailyRecord struct {
	Date            time.Time
	Steps           int
	EnergyFocus     int // 1-5 self-reported
	DidExercise     bool
	ExerciseType    *ExerciseType
	ExerciseMinutes *int
	HeartRateZone   *Zone
	AvgHRBPM        *float64     // auxiliary tracker signal
	ZoneMinutes     *ZoneMinutes // auxiliary tracker signal
	Notes           *string
}

// ZoneMinutes holds per-zone minute accumulators from a tracker export.
type ZoneMinutes struct {
	Light    float64
	Moderate float64
	Intense  float64
	Peak     float64
}

// EnrichedRecord is a DailyRecord plus all computed fields.
type EnrichedRecord struct {
	DailyRecord

	StepPoints      int // 0-50
	ExercisePoints  int // 0-50
	ActivityLevel   int // StepPoints + ExercisePoints, 0-100
	LifestyleStatus Status
	Recommendation  string
}

// DateKey returns the date formatted as the store's primary key.
func (r DailyRecord) DateKey() string {
	return r.Date.Format("2006-01-02")
}

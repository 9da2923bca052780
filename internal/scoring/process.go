package scoring

import (
	"fmt"

	"daylog/internal/record"
)

// Process enriches one daily record with the baseline recommendation
// policy. The input is consumed read-only; the enriched record is a
// new value. Calls are independent and safe to run in parallel.
func Process(cfg Config, day record.DailyRecord) (record.EnrichedRecord, error) {
	return ProcessWithPolicy(cfg, day, BaselinePolicy, nil)
}

// ProcessWithPolicy runs the full per-day pipeline in fixed order:
// zone inference, scoring, classification, recommendation. Each step
// depends on the previous one's output.
func ProcessWithPolicy(cfg Config, day record.DailyRecord, policy RecommendationPolicy, trend *TrendContext) (record.EnrichedRecord, error) {
	enriched := record.EnrichedRecord{DailyRecord: day}
	enriched.HeartRateZone = InferZone(cfg, day)

	stepPoints, exercisePoints := Score(cfg, day.Steps, day.DidExercise, day.ExerciseMinutes, enriched.HeartRateZone)
	enriched.StepPoints = stepPoints
	enriched.ExercisePoints = exercisePoints
	enriched.ActivityLevel = stepPoints + exercisePoints

	status, err := Classify(cfg, enriched.ActivityLevel)
	if err != nil {
		return record.EnrichedRecord{}, fmt.Errorf("classifying %s: %w", day.DateKey(), err)
	}
	enriched.LifestyleStatus = status

	enriched.Recommendation = policy(cfg, day, enriched.ActivityLevel, status, trend)
	if enriched.Recommendation == "" {
		return record.EnrichedRecord{}, fmt.Errorf("%w: empty recommendation for status %q", ErrInvariantViolation, status)
	}
	return enriched, nil
}

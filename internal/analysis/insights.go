package analysis

import (
	"fmt"

	"daylog/internal/record"
)

// InsightSeverity grades how interesting an insight is.
type InsightSeverity string

const (
	SeverityInfo      InsightSeverity = "info"
	SeverityHighlight InsightSeverity = "highlight"
	SeverityWarn      InsightSeverity = "warn"
)

// Insight is an aggregate-only statement about a window of days.
// Insights never quote notes or individual dates, so they are safe to
// paste into a shared report.
type Insight struct {
	Key      string
	Title    string
	Message  string
	Severity InsightSeverity
}

const (
	// insightMinDays is the smallest window that yields statements
	// stronger than "keep logging".
	insightMinDays = 5

	// strongCorrelation marks the |r| threshold worth highlighting.
	strongCorrelation = 0.5

	// notableEnergyDelta marks an exercise-vs-rest energy difference
	// worth highlighting, in energy points.
	notableEnergyDelta = 0.5
)

// GenerateInsights produces aggregate insights from a date-ascending
// window of enriched days.
func GenerateInsights(days []record.EnrichedRecord) []Insight {
	if len(days) == 0 {
		return []Insight{{
			Key:      "no_data",
			Title:    "No data available",
			Message:  "No days were found to generate insights.",
			Severity: SeverityWarn,
		}}
	}

	var insights []Insight

	if len(days) < insightMinDays {
		insights = append(insights, Insight{
			Key:      "low_coverage",
			Title:    "Not enough days for strong insights",
			Message:  fmt.Sprintf("Only %d day(s) available. Add more logs to unlock trends and correlations.", len(days)),
			Severity: SeverityWarn,
		})
	}

	var activitySum int
	for _, d := range days {
		activitySum += d.ActivityLevel
	}
	avg := float64(activitySum) / float64(len(days))
	insights = append(insights, Insight{
		Key:      "avg_activity",
		Title:    "Average activity",
		Message:  fmt.Sprintf("Your average Activity Level over these %d days is %.1f.", len(days), avg),
		Severity: SeverityInfo,
	})

	if corr, ok := ActivityEnergyCorrelation(days, insightMinDays); ok {
		severity := SeverityInfo
		if corr >= strongCorrelation || corr <= -strongCorrelation {
			severity = SeverityHighlight
		}
		insights = append(insights, Insight{
			Key:      "activity_energy_corr",
			Title:    "Activity vs Energy relationship",
			Message:  fmt.Sprintf("Activity Level and Energy/Focus show a correlation of %+.2f (higher means they move together).", corr),
			Severity: severity,
		})
	}

	if delta, ok := exerciseEnergyDelta(days); ok {
		severity := SeverityInfo
		if delta >= notableEnergyDelta || delta <= -notableEnergyDelta {
			severity = SeverityHighlight
		}
		insights = append(insights, Insight{
			Key:      "exercise_energy_delta",
			Title:    "Energy difference on exercise days",
			Message:  fmt.Sprintf("On exercise days, your Energy/Focus averages %+.2f points vs rest days.", delta),
			Severity: severity,
		})
	}

	return insights
}

// exerciseEnergyDelta compares mean energy on exercise days against
// rest days. Needs at least two of each to say anything.
func exerciseEnergyDelta(days []record.EnrichedRecord) (float64, bool) {
	var exSum, restSum float64
	var exN, restN int
	for _, d := range days {
		if d.DidExercise {
			exSum += float64(d.EnergyFocus)
			exN++
		} else {
			restSum += float64(d.EnergyFocus)
			restN++
		}
	}
	if exN < 2 || restN < 2 {
		return 0, false
	}
	return exSum/float64(exN) - restSum/float64(restN), true
}

package analysis

import (
	"time"

	"daylog/internal/record"
)

// BestDay is the highest-scoring day within a period.
type BestDay struct {
	Date  time.Time
	Level int
}

// PeriodSummary aggregates enriched days over a date window.
type PeriodSummary struct {
	Start       time.Time
	End         time.Time
	DaysLogged  int
	AvgActivity float64
	AvgEnergy   float64

	SedentaryDays  int
	ActivePlusDays int // days at Active status or above (level >= active band)

	BestDay *BestDay

	// Correlation between activity and energy, nil when the window is
	// too short or the series is constant.
	Correlation *float64
}

// Summarize aggregates days (assumed within [start, end], ascending)
// into a period summary. minCorrDays gates the correlation statistic;
// short windows produce noise, not trends.
func Summarize(days []record.EnrichedRecord, start, end time.Time, minCorrDays int) PeriodSummary {
	s := PeriodSummary{Start: start, End: end, DaysLogged: len(days)}
	if len(days) == 0 {
		return s
	}

	var activitySum, energySum int
	for _, d := range days {
		activitySum += d.ActivityLevel
		energySum += d.EnergyFocus

		if d.LifestyleStatus == record.StatusSedentary {
			s.SedentaryDays++
		}
		if d.LifestyleStatus == record.StatusActive || d.LifestyleStatus == record.StatusVeryActive {
			s.ActivePlusDays++
		}
		if s.BestDay == nil || d.ActivityLevel > s.BestDay.Level {
			s.BestDay = &BestDay{Date: d.Date, Level: d.ActivityLevel}
		}
	}
	s.AvgActivity = float64(activitySum) / float64(len(days))
	s.AvgEnergy = float64(energySum) / float64(len(days))

	if corr, ok := ActivityEnergyCorrelation(days, minCorrDays); ok {
		s.Correlation = &corr
	}
	return s
}

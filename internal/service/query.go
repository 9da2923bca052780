package service

import (
	"time"

	"daylog/internal/analysis"
	"daylog/internal/record"
	"daylog/internal/scoring"
	"daylog/internal/store"
)

// QueryService provides read-only queries for the TUI and reports.
type QueryService struct {
	db  *store.DB
	cfg scoring.Config
}

// NewQueryService creates a new query service.
func NewQueryService(db *store.DB, cfg scoring.Config) *QueryService {
	return &QueryService{db: db, cfg: cfg}
}

// DashboardData contains all data needed for the dashboard.
type DashboardData struct {
	// Latest logged day
	Latest *record.EnrichedRecord

	// This week (last 7 calendar days ending at the latest day)
	Week analysis.PeriodSummary

	// Trailing sedentary streak across all history
	SedentaryStreak int

	// For the chart: last ChartDays logged days, ascending
	ActivityHistory []float64
	HistoryLabels   []string

	// Recent days, newest first
	RecentDays []record.EnrichedRecord
}

// GetDashboardData fetches everything the dashboard screen shows.
func (q *QueryService) GetDashboardData() (*DashboardData, error) {
	data := &DashboardData{}

	recent, err := q.db.ListDays(RecentDaysLimit, 0)
	if err != nil {
		return nil, err
	}
	data.RecentDays = recent
	if len(recent) == 0 {
		return data, nil
	}
	data.Latest = &recent[0]

	end := data.Latest.Date
	start := end.AddDate(0, 0, -6)
	week, err := q.db.GetDaysInRange(start, end)
	if err != nil {
		return nil, err
	}
	data.Week = analysis.Summarize(week, start, end, WeeklyMinCorrDays)

	chartDays, err := q.db.ListDays(ChartDays, 0)
	if err != nil {
		return nil, err
	}
	// ListDays is newest-first; the chart reads left to right.
	for i := len(chartDays) - 1; i >= 0; i-- {
		d := chartDays[i]
		data.ActivityHistory = append(data.ActivityHistory, float64(d.ActivityLevel))
		data.HistoryLabels = append(data.HistoryLabels, d.Date.Format("Jan 02"))
	}

	streakWindow, err := q.db.GetDaysInRange(end.AddDate(0, 0, -30), end)
	if err != nil {
		return nil, err
	}
	data.SedentaryStreak = analysis.SedentaryStreak(streakWindow)

	return data, nil
}

// PeriodStats is one week or month bucket of aggregated days.
type PeriodStats struct {
	PeriodLabel string
	Summary     analysis.PeriodSummary
}

// GetPeriodStats returns aggregated stats by week or month, oldest
// first. Weeks start on Monday.
func (q *QueryService) GetPeriodStats(periodType string, numPeriods int) ([]PeriodStats, error) {
	latest, err := q.latestDate()
	if err != nil {
		return nil, err
	}
	if latest.IsZero() {
		return nil, nil
	}

	stats := make([]PeriodStats, 0, numPeriods)
	for i := numPeriods - 1; i >= 0; i-- {
		var start, end time.Time
		var label string
		var minCorr int

		if periodType == "monthly" {
			first := time.Date(latest.Year(), latest.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
			start = first
			end = first.AddDate(0, 1, -1)
			label = first.Format("Jan 2006")
			minCorr = MonthlyMinCorrDays
		} else {
			monday := mondayOf(latest).AddDate(0, 0, -7*i)
			start = monday
			end = monday.AddDate(0, 0, 6)
			label = monday.Format("Jan 02")
			minCorr = WeeklyMinCorrDays
		}

		days, err := q.db.GetDaysInRange(start, end)
		if err != nil {
			return nil, err
		}
		stats = append(stats, PeriodStats{
			PeriodLabel: label,
			Summary:     analysis.Summarize(days, start, end, minCorr),
		})
	}
	return stats, nil
}

// GetDay returns one stored day by date.
func (q *QueryService) GetDay(date time.Time) (*record.EnrichedRecord, error) {
	return q.db.GetDay(date)
}

// GetDays pages through stored days, newest first.
func (q *QueryService) GetDays(limit, offset int) ([]record.EnrichedRecord, error) {
	return q.db.ListDays(limit, offset)
}

// CountDays returns the total number of stored days.
func (q *QueryService) CountDays() (int, error) {
	return q.db.CountDays()
}

// WindowEnding returns the days in the window of length windowDays
// ending at end, ascending.
func (q *QueryService) WindowEnding(end time.Time, windowDays int) ([]record.EnrichedRecord, error) {
	return q.db.GetDaysInRange(end.AddDate(0, 0, -(windowDays-1)), end)
}

// LatestDate returns the most recent logged date, or zero when the
// store is empty.
func (q *QueryService) LatestDate() (time.Time, error) {
	return q.latestDate()
}

func (q *QueryService) latestDate() (time.Time, error) {
	days, err := q.db.ListDays(1, 0)
	if err != nil {
		return time.Time{}, err
	}
	if len(days) == 0 {
		return time.Time{}, nil
	}
	return days[0].Date, nil
}

// mondayOf truncates a date to the Monday of its week.
func mondayOf(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday belongs to the preceding Monday
	}
	return t.AddDate(0, 0, -(weekday - 1))
}

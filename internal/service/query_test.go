package service

import (
	"testing"
	"time"

	"daylog/internal/record"
	"daylog/internal/scoring"
	"daylog/internal/store"
)

func seedDay(t *testing.T, db *store.DB, date string, steps int, energy int, didExercise bool) record.EnrichedRecord {
	t.Helper()
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		t.Fatalf("bad test date %q: %v", date, err)
	}

	raw := record.DailyRecord{
		Date:        d,
		Steps:       steps,
		EnergyFocus: energy,
		DidExercise: didExercise,
	}
	enriched, err := scoring.Process(scoring.DefaultConfig(), raw)
	if err != nil {
		t.Fatalf("Process(%s) error: %v", date, err)
	}
	if err := db.UpsertDay(&enriched); err != nil {
		t.Fatalf("UpsertDay(%s) error: %v", date, err)
	}
	return enriched
}

func TestGetDashboardDataEmpty(t *testing.T) {
	db := store.NewTestDB(t)
	q := NewQueryService(db, scoring.DefaultConfig())

	data, err := q.GetDashboardData()
	if err != nil {
		t.Fatalf("GetDashboardData() error: %v", err)
	}
	if data.Latest != nil || len(data.RecentDays) != 0 {
		t.Errorf("empty store produced data: %+v", data)
	}
}

func TestGetDashboardData(t *testing.T) {
	db := store.NewTestDB(t)
	q := NewQueryService(db, scoring.DefaultConfig())

	// Mon 2026-08-10 through Fri 2026-08-14
	seedDay(t, db, "2026-08-10", 11000, 4, false) // 50, Lightly Active
	seedDay(t, db, "2026-08-11", 8200, 4, false)  // 35
	seedDay(t, db, "2026-08-12", 6500, 3, false)  // 25, Sedentary
	seedDay(t, db, "2026-08-13", 3000, 2, false)  // 10, Sedentary
	seedDay(t, db, "2026-08-14", 2000, 2, false)  // 10, Sedentary

	data, err := q.GetDashboardData()
	if err != nil {
		t.Fatalf("GetDashboardData() error: %v", err)
	}

	if data.Latest == nil || data.Latest.DateKey() != "2026-08-14" {
		t.Fatalf("Latest = %+v, want 2026-08-14", data.Latest)
	}
	if data.Week.DaysLogged != 5 {
		t.Errorf("Week.DaysLogged = %d, want 5", data.Week.DaysLogged)
	}
	if data.Week.SedentaryDays != 3 {
		t.Errorf("Week.SedentaryDays = %d, want 3", data.Week.SedentaryDays)
	}
	if data.SedentaryStreak != 3 {
		t.Errorf("SedentaryStreak = %d, want 3", data.SedentaryStreak)
	}
	if len(data.ActivityHistory) != 5 {
		t.Fatalf("ActivityHistory has %d points, want 5", len(data.ActivityHistory))
	}
	// Ascending by date: latest day last.
	if data.ActivityHistory[0] != 50 || data.ActivityHistory[4] != 10 {
		t.Errorf("ActivityHistory = %v, want [50 ... 10]", data.ActivityHistory)
	}
	if data.HistoryLabels[0] != "Aug 10" {
		t.Errorf("HistoryLabels[0] = %q, want \"Aug 10\"", data.HistoryLabels[0])
	}
}

func TestGetPeriodStatsWeekly(t *testing.T) {
	db := store.NewTestDB(t)
	q := NewQueryService(db, scoring.DefaultConfig())

	// Two Mondays apart: 2026-08-03 and 2026-08-10 both fall on Monday.
	seedDay(t, db, "2026-08-03", 11000, 4, false)
	seedDay(t, db, "2026-08-04", 8200, 4, false)
	seedDay(t, db, "2026-08-10", 3000, 2, false)

	stats, err := q.GetPeriodStats("weekly", 2)
	if err != nil {
		t.Fatalf("GetPeriodStats() error: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("GetPeriodStats() returned %d buckets, want 2", len(stats))
	}

	if stats[0].PeriodLabel != "Aug 03" {
		t.Errorf("first bucket label = %q, want \"Aug 03\"", stats[0].PeriodLabel)
	}
	if stats[0].Summary.DaysLogged != 2 {
		t.Errorf("first bucket days = %d, want 2", stats[0].Summary.DaysLogged)
	}
	if stats[1].PeriodLabel != "Aug 10" {
		t.Errorf("second bucket label = %q, want \"Aug 10\"", stats[1].PeriodLabel)
	}
	if stats[1].Summary.DaysLogged != 1 {
		t.Errorf("second bucket days = %d, want 1", stats[1].Summary.DaysLogged)
	}
}

func TestGetPeriodStatsMonthly(t *testing.T) {
	db := store.NewTestDB(t)
	q := NewQueryService(db, scoring.DefaultConfig())

	seedDay(t, db, "2026-07-15", 11000, 4, false)
	seedDay(t, db, "2026-08-02", 8200, 4, false)
	seedDay(t, db, "2026-08-20", 3000, 2, false)

	stats, err := q.GetPeriodStats("monthly", 2)
	if err != nil {
		t.Fatalf("GetPeriodStats() error: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("GetPeriodStats() returned %d buckets, want 2", len(stats))
	}
	if stats[0].PeriodLabel != "Jul 2026" || stats[0].Summary.DaysLogged != 1 {
		t.Errorf("July bucket = %q with %d days", stats[0].PeriodLabel, stats[0].Summary.DaysLogged)
	}
	if stats[1].PeriodLabel != "Aug 2026" || stats[1].Summary.DaysLogged != 2 {
		t.Errorf("August bucket = %q with %d days", stats[1].PeriodLabel, stats[1].Summary.DaysLogged)
	}
}

func TestMondayOf(t *testing.T) {
	tests := []struct {
		name string
		date string
		want string
	}{
		{"monday maps to itself", "2026-08-10", "2026-08-10"},
		{"midweek", "2026-08-12", "2026-08-10"},
		{"sunday belongs to preceding monday", "2026-08-16", "2026-08-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _ := time.Parse("2006-01-02", tt.date)
			if got := mondayOf(d).Format("2006-01-02"); got != tt.want {
				t.Errorf("mondayOf(%s) = %s, want %s", tt.date, got, tt.want)
			}
		})
	}
}

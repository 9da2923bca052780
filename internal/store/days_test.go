package store

import (
	"errors"
	"testing"
	"time"

	"daylog/internal/record"
)

func testDay(t *testing.T, date string) record.EnrichedRecord {
	t.Helper()
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		t.Fatalf("bad test date %q: %v", date, err)
	}
	return record.EnrichedRecord{
		DailyRecord: record.DailyRecord{
			Date:        d,
			Steps:       8200,
			EnergyFocus: 4,
			DidExercise: false,
		},
		StepPoints:      35,
		ExercisePoints:  0,
		ActivityLevel:   35,
		LifestyleStatus: record.StatusLightlyActive,
		Recommendation:  "Include a moderate session to reach Active status.",
	}
}

func TestUpsertAndGetDay(t *testing.T) {
	db := NewTestDB(t)

	rec := testDay(t, "2026-08-10")
	zone := record.ZoneIntense
	minutes := 45
	avgHR := 151.5
	notes := "tempo run"
	exType := record.ExerciseCardio
	rec.DidExercise = true
	rec.ExerciseType = &exType
	rec.ExerciseMinutes = &minutes
	rec.HeartRateZone = &zone
	rec.AvgHRBPM = &avgHR
	rec.ZoneMinutes = &record.ZoneMinutes{Moderate: 10, Intense: 35}
	rec.Notes = &notes
	rec.ExercisePoints = 50
	rec.ActivityLevel = 85
	rec.LifestyleStatus = record.StatusVeryActive

	if err := db.UpsertDay(&rec); err != nil {
		t.Fatalf("UpsertDay() error: %v", err)
	}

	got, err := db.GetDay(rec.Date)
	if err != nil {
		t.Fatalf("GetDay() error: %v", err)
	}

	if got.DateKey() != "2026-08-10" {
		t.Errorf("date = %s, want 2026-08-10", got.DateKey())
	}
	if got.Steps != rec.Steps || got.EnergyFocus != rec.EnergyFocus || !got.DidExercise {
		t.Errorf("required fields wrong: %+v", got)
	}
	if got.ExerciseType == nil || *got.ExerciseType != record.ExerciseCardio {
		t.Errorf("exercise type = %v", got.ExerciseType)
	}
	if got.ExerciseMinutes == nil || *got.ExerciseMinutes != 45 {
		t.Errorf("exercise minutes = %v", got.ExerciseMinutes)
	}
	if got.HeartRateZone == nil || *got.HeartRateZone != record.ZoneIntense {
		t.Errorf("zone = %v", got.HeartRateZone)
	}
	if got.AvgHRBPM == nil || *got.AvgHRBPM != 151.5 {
		t.Errorf("avg HR = %v", got.AvgHRBPM)
	}
	if got.ZoneMinutes == nil || got.ZoneMinutes.Intense != 35 {
		t.Errorf("zone minutes = %+v", got.ZoneMinutes)
	}
	if got.Notes == nil || *got.Notes != "tempo run" {
		t.Errorf("notes = %v", got.Notes)
	}
	if got.ActivityLevel != 85 || got.LifestyleStatus != record.StatusVeryActive {
		t.Errorf("enriched fields wrong: level=%d status=%q", got.ActivityLevel, got.LifestyleStatus)
	}
}

func TestUpsertDayLaterWins(t *testing.T) {
	db := NewTestDB(t)

	first := testDay(t, "2026-08-10")
	first.Steps = 1000
	if err := db.UpsertDay(&first); err != nil {
		t.Fatalf("UpsertDay() error: %v", err)
	}

	second := testDay(t, "2026-08-10")
	second.Steps = 12000
	second.StepPoints = 50
	second.ActivityLevel = 50
	if err := db.UpsertDay(&second); err != nil {
		t.Fatalf("UpsertDay() error: %v", err)
	}

	n, err := db.CountDays()
	if err != nil {
		t.Fatalf("CountDays() error: %v", err)
	}
	if n != 1 {
		t.Fatalf("CountDays() = %d, want 1", n)
	}

	got, err := db.GetDay(first.Date)
	if err != nil {
		t.Fatalf("GetDay() error: %v", err)
	}
	if got.Steps != 12000 {
		t.Errorf("steps = %d, want the later row's 12000", got.Steps)
	}
}

func TestGetDayNotFound(t *testing.T) {
	db := NewTestDB(t)

	_, err := db.GetDay(time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC))
	if !errors.Is(err, ErrDayNotFound) {
		t.Errorf("GetDay() error = %v, want ErrDayNotFound", err)
	}
}

func TestGetDaysInRange(t *testing.T) {
	db := NewTestDB(t)

	for _, date := range []string{"2026-08-08", "2026-08-10", "2026-08-12", "2026-08-20"} {
		rec := testDay(t, date)
		if err := db.UpsertDay(&rec); err != nil {
			t.Fatalf("UpsertDay(%s) error: %v", date, err)
		}
	}

	start, _ := time.Parse("2006-01-02", "2026-08-09")
	end, _ := time.Parse("2006-01-02", "2026-08-15")
	days, err := db.GetDaysInRange(start, end)
	if err != nil {
		t.Fatalf("GetDaysInRange() error: %v", err)
	}
	if len(days) != 2 {
		t.Fatalf("GetDaysInRange() returned %d days, want 2", len(days))
	}
	if days[0].DateKey() != "2026-08-10" || days[1].DateKey() != "2026-08-12" {
		t.Errorf("range results wrong: %s, %s", days[0].DateKey(), days[1].DateKey())
	}
}

func TestGetDaysBefore(t *testing.T) {
	db := NewTestDB(t)

	for _, date := range []string{"2026-08-05", "2026-08-06", "2026-08-07", "2026-08-08"} {
		rec := testDay(t, date)
		if err := db.UpsertDay(&rec); err != nil {
			t.Fatalf("UpsertDay(%s) error: %v", date, err)
		}
	}

	cutoff, _ := time.Parse("2006-01-02", "2026-08-08")
	days, err := db.GetDaysBefore(cutoff, 2)
	if err != nil {
		t.Fatalf("GetDaysBefore() error: %v", err)
	}
	if len(days) != 2 {
		t.Fatalf("GetDaysBefore() returned %d days, want 2", len(days))
	}
	// The two most recent days before the cutoff, ascending.
	if days[0].DateKey() != "2026-08-06" || days[1].DateKey() != "2026-08-07" {
		t.Errorf("results wrong: %s, %s", days[0].DateKey(), days[1].DateKey())
	}
}

func TestListDays(t *testing.T) {
	db := NewTestDB(t)

	for _, date := range []string{"2026-08-05", "2026-08-07", "2026-08-06"} {
		rec := testDay(t, date)
		if err := db.UpsertDay(&rec); err != nil {
			t.Fatalf("UpsertDay(%s) error: %v", date, err)
		}
	}

	days, err := db.ListDays(2, 0)
	if err != nil {
		t.Fatalf("ListDays() error: %v", err)
	}
	if len(days) != 2 {
		t.Fatalf("ListDays() returned %d days, want 2", len(days))
	}
	if days[0].DateKey() != "2026-08-07" || days[1].DateKey() != "2026-08-06" {
		t.Errorf("order wrong: %s, %s", days[0].DateKey(), days[1].DateKey())
	}
}

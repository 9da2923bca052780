package ingest

import (
	"errors"
	"strings"
	"testing"

	"daylog/internal/record"
)

func TestReadNormalizesAndCoerces(t *testing.T) {
	csv := ` Date , STEPS ,energy_focus,Did_Exercise,exercise_type,exercise_minutes,heart_rate_zone,notes
2026-08-10,8200,4,Yes,cardio,30,Moderate,easy run
2026-08-11,6500,3,No,,,,
`
	records, err := Read(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Read() returned %d records, want 2", len(records))
	}

	first := records[0]
	if first.DateKey() != "2026-08-10" {
		t.Errorf("date = %s, want 2026-08-10", first.DateKey())
	}
	if first.Steps != 8200 || first.EnergyFocus != 4 || !first.DidExercise {
		t.Errorf("required fields wrong: %+v", first)
	}
	if first.ExerciseType == nil || *first.ExerciseType != record.ExerciseCardio {
		t.Errorf("exercise type = %v, want cardio", first.ExerciseType)
	}
	if first.ExerciseMinutes == nil || *first.ExerciseMinutes != 30 {
		t.Errorf("exercise minutes = %v, want 30", first.ExerciseMinutes)
	}
	if first.HeartRateZone == nil || *first.HeartRateZone != record.ZoneModerate {
		t.Errorf("zone = %v, want moderate", first.HeartRateZone)
	}
	if first.Notes == nil || *first.Notes != "easy run" {
		t.Errorf("notes = %v, want \"easy run\"", first.Notes)
	}

	second := records[1]
	if second.DidExercise {
		t.Error("second day should be a rest day")
	}
	if second.ExerciseType != nil || second.ExerciseMinutes != nil || second.HeartRateZone != nil || second.Notes != nil {
		t.Errorf("blank optionals should be absent: %+v", second)
	}
}

func TestReadDedupesByDateKeepLast(t *testing.T) {
	csv := `date,steps,energy_focus,did_exercise
2026-08-10,1000,3,no
2026-08-11,2000,3,no
2026-08-10,9000,5,yes
`
	records, err := Read(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Read() returned %d records, want 2", len(records))
	}
	// Sorted ascending, and the later row for 08-10 won.
	if records[0].DateKey() != "2026-08-10" || records[1].DateKey() != "2026-08-11" {
		t.Errorf("records out of order: %s, %s", records[0].DateKey(), records[1].DateKey())
	}
	if records[0].Steps != 9000 || !records[0].DidExercise {
		t.Errorf("dedup kept the wrong row: %+v", records[0])
	}
}

func TestReadHRSignals(t *testing.T) {
	csv := `date,steps,energy_focus,did_exercise,avg_hr_bpm,minutes_light,minutes_intense
2026-08-10,4000,3,yes,148.5,10,35
`
	records, err := Read(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}

	rec := records[0]
	if rec.AvgHRBPM == nil || *rec.AvgHRBPM != 148.5 {
		t.Errorf("avg HR = %v, want 148.5", rec.AvgHRBPM)
	}
	if rec.ZoneMinutes == nil {
		t.Fatal("zone minutes missing")
	}
	if rec.ZoneMinutes.Light != 10 || rec.ZoneMinutes.Intense != 35 || rec.ZoneMinutes.Moderate != 0 {
		t.Errorf("zone minutes = %+v", rec.ZoneMinutes)
	}
}

func TestReadInvalidZoneLabelBecomesAbsent(t *testing.T) {
	csv := `date,steps,energy_focus,did_exercise,heart_rate_zone
2026-08-10,4000,3,yes,blazing
`
	records, err := Read(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if records[0].HeartRateZone != nil {
		t.Errorf("stray zone label should be absent, got %v", *records[0].HeartRateZone)
	}
}

func TestReadValidationErrors(t *testing.T) {
	tests := []struct {
		name      string
		csv       string
		wantField string
	}{
		{
			name:      "blank date",
			csv:       "date,steps,energy_focus,did_exercise\n,1000,3,no\n",
			wantField: "date",
		},
		{
			name:      "bad date",
			csv:       "date,steps,energy_focus,did_exercise\nyesterday,1000,3,no\n",
			wantField: "date",
		},
		{
			name:      "negative steps",
			csv:       "date,steps,energy_focus,did_exercise\n2026-08-10,-5,3,no\n",
			wantField: "steps",
		},
		{
			name:      "non-integer steps",
			csv:       "date,steps,energy_focus,did_exercise\n2026-08-10,many,3,no\n",
			wantField: "steps",
		},
		{
			name:      "energy out of range",
			csv:       "date,steps,energy_focus,did_exercise\n2026-08-10,1000,6,no\n",
			wantField: "energy_focus",
		},
		{
			name:      "bad exercise flag",
			csv:       "date,steps,energy_focus,did_exercise\n2026-08-10,1000,3,maybe\n",
			wantField: "did_exercise",
		},
		{
			name:      "unknown exercise type",
			csv:       "date,steps,energy_focus,did_exercise,exercise_type\n2026-08-10,1000,3,yes,juggling\n",
			wantField: "exercise_type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.csv))
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Read() error = %v, want ValidationError", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("error field = %q, want %q", verr.Field, tt.wantField)
			}
		})
	}
}

func TestReadMissingRequiredColumn(t *testing.T) {
	csv := "date,steps,did_exercise\n2026-08-10,1000,no\n"
	if _, err := Read(strings.NewReader(csv)); err == nil {
		t.Error("Read() = nil error, want missing column error")
	}
}

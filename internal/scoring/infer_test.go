package scoring

import (
	"testing"
	"time"

	"daylog/internal/record"
)

func exerciseDay() record.DailyRecord {
	return record.DailyRecord{
		Date:        time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
		Steps:       8000,
		EnergyFocus: 3,
		DidExercise: true,
	}
}

func TestInferZoneNeverOverwrites(t *testing.T) {
	cfg := DefaultConfig()

	day := exerciseDay()
	day.HeartRateZone = zonePtr(record.ZoneLight)
	// Signals that would otherwise infer peak.
	day.AvgHRBPM = floatPtr(0.90 * cfg.Inference.MaxHR)
	day.ZoneMinutes = minutesPtr(record.ZoneMinutes{Peak: 60})

	got := InferZone(cfg, day)
	if got == nil || *got != record.ZoneLight {
		t.Errorf("InferZone() = %v, want existing zone light kept", got)
	}
}

func TestInferZoneRestDay(t *testing.T) {
	cfg := DefaultConfig()

	day := exerciseDay()
	day.DidExercise = false
	day.AvgHRBPM = floatPtr(150)

	if got := InferZone(cfg, day); got != nil {
		t.Errorf("InferZone() on rest day = %v, want nil", got)
	}
}

func TestInferZoneFromAvgHR(t *testing.T) {
	cfg := DefaultConfig() // max HR 198

	tests := []struct {
		name string
		pct  float64
		want *record.Zone
	}{
		{"below sanity window", 0.30, nil},
		{"above sanity window", 1.15, nil},
		{"valid but below light band", 0.45, zonePtr(record.ZoneUnknown)},
		{"light band", 0.55, zonePtr(record.ZoneLight)},
		{"moderate band", 0.65, zonePtr(record.ZoneModerate)},
		{"intense band", 0.75, zonePtr(record.ZoneIntense)},
		{"intense band upper interior", 0.84, zonePtr(record.ZoneIntense)},
		{"peak band", 0.90, zonePtr(record.ZonePeak)},
		{"peak band upper edge", 0.95, zonePtr(record.ZonePeak)},
		{"valid but above peak band", 1.00, zonePtr(record.ZoneUnknown)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day := exerciseDay()
			day.AvgHRBPM = floatPtr(tt.pct * cfg.Inference.MaxHR)

			got := InferZone(cfg, day)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("InferZone() = %v, want %v", got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("InferZone() = %q, want %q", *got, *tt.want)
			}
		})
	}
}

func TestInferZoneFromMinutes(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name    string
		minutes record.ZoneMinutes
		want    *record.Zone
	}{
		{"all zero infers nothing", record.ZoneMinutes{}, nil},
		{"clear winner", record.ZoneMinutes{Light: 10, Moderate: 35, Intense: 5}, zonePtr(record.ZoneModerate)},
		{"tie breaks to higher intensity", record.ZoneMinutes{Moderate: 20, Intense: 20}, zonePtr(record.ZoneIntense)},
		{"three-way tie breaks to peak", record.ZoneMinutes{Moderate: 15, Intense: 15, Peak: 15}, zonePtr(record.ZonePeak)},
		{"single zone", record.ZoneMinutes{Peak: 3}, zonePtr(record.ZonePeak)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day := exerciseDay()
			day.ZoneMinutes = minutesPtr(tt.minutes)

			got := InferZone(cfg, day)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("InferZone() = %v, want %v", got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("InferZone() = %q, want %q", *got, *tt.want)
			}
		})
	}
}

func TestInferZonePrefersAvgHR(t *testing.T) {
	cfg := DefaultConfig()

	day := exerciseDay()
	day.AvgHRBPM = floatPtr(0.75 * cfg.Inference.MaxHR) // intense
	day.ZoneMinutes = minutesPtr(record.ZoneMinutes{Light: 45})

	got := InferZone(cfg, day)
	if got == nil || *got != record.ZoneIntense {
		t.Errorf("InferZone() = %v, want intense from avg HR", got)
	}
}

func TestInferZoneFallsBackToMinutes(t *testing.T) {
	cfg := DefaultConfig()

	day := exerciseDay()
	day.AvgHRBPM = floatPtr(20) // below sanity window, unusable
	day.ZoneMinutes = minutesPtr(record.ZoneMinutes{Moderate: 30})

	got := InferZone(cfg, day)
	if got == nil || *got != record.ZoneModerate {
		t.Errorf("InferZone() = %v, want moderate from minutes fallback", got)
	}
}

func TestInferZoneNoSignals(t *testing.T) {
	cfg := DefaultConfig()

	if got := InferZone(cfg, exerciseDay()); got != nil {
		t.Errorf("InferZone() with no signals = %v, want nil", got)
	}
}

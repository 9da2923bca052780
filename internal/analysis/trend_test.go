package analysis

import (
	"math"
	"testing"
	"time"

	"daylog/internal/record"
)

func enrichedDay(date string, level int, energy int, status record.Status) record.EnrichedRecord {
	d, _ := time.Parse("2006-01-02", date)
	return record.EnrichedRecord{
		DailyRecord: record.DailyRecord{
			Date:        d,
			EnergyFocus: energy,
		},
		ActivityLevel:   level,
		LifestyleStatus: status,
	}
}

func TestPearsonCorrelation(t *testing.T) {
	tests := []struct {
		name   string
		xs     []float64
		ys     []float64
		want   float64
		wantOK bool
		delta  float64
	}{
		{
			name:   "perfect positive",
			xs:     []float64{1, 2, 3, 4},
			ys:     []float64{10, 20, 30, 40},
			want:   1.0,
			wantOK: true,
			delta:  1e-9,
		},
		{
			name:   "perfect negative",
			xs:     []float64{1, 2, 3, 4},
			ys:     []float64{8, 6, 4, 2},
			want:   -1.0,
			wantOK: true,
			delta:  1e-9,
		},
		{
			name:   "constant series has no correlation",
			xs:     []float64{5, 5, 5},
			ys:     []float64{1, 2, 3},
			wantOK: false,
		},
		{
			name:   "too short",
			xs:     []float64{1},
			ys:     []float64{2},
			wantOK: false,
		},
		{
			name:   "mismatched lengths",
			xs:     []float64{1, 2, 3},
			ys:     []float64{1, 2},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PearsonCorrelation(tt.xs, tt.ys)
			if ok != tt.wantOK {
				t.Fatalf("PearsonCorrelation() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && math.Abs(got-tt.want) > tt.delta {
				t.Errorf("PearsonCorrelation() = %v, want %v (±%v)", got, tt.want, tt.delta)
			}
		})
	}
}

func TestSedentaryStreak(t *testing.T) {
	tests := []struct {
		name string
		days []record.EnrichedRecord
		want int
	}{
		{"empty", nil, 0},
		{
			"no sedentary days",
			[]record.EnrichedRecord{
				enrichedDay("2026-08-10", 60, 3, record.StatusActive),
			},
			0,
		},
		{
			"trailing streak",
			[]record.EnrichedRecord{
				enrichedDay("2026-08-10", 60, 3, record.StatusActive),
				enrichedDay("2026-08-11", 20, 3, record.StatusSedentary),
				enrichedDay("2026-08-12", 15, 3, record.StatusSedentary),
			},
			2,
		},
		{
			"streak broken by an active day",
			[]record.EnrichedRecord{
				enrichedDay("2026-08-10", 20, 3, record.StatusSedentary),
				enrichedDay("2026-08-11", 60, 3, record.StatusActive),
				enrichedDay("2026-08-12", 15, 3, record.StatusSedentary),
			},
			1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SedentaryStreak(tt.days); got != tt.want {
				t.Errorf("SedentaryStreak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDowntrend(t *testing.T) {
	tests := []struct {
		name   string
		levels []int
		n      int
		want   bool
	}{
		{"strictly falling", []int{80, 60, 40}, 3, true},
		{"falling tail of longer series", []int{20, 90, 70, 50}, 3, true},
		{"plateau breaks the trend", []int{80, 60, 60}, 3, false},
		{"rising", []int{40, 60, 80}, 3, false},
		{"too few days", []int{60, 40}, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := make([]record.EnrichedRecord, len(tt.levels))
			for i, level := range tt.levels {
				days[i] = enrichedDay(time.Date(2026, 8, 1+i, 0, 0, 0, 0, time.UTC).Format("2006-01-02"), level, 3, record.StatusActive)
			}
			if got := Downtrend(days, tt.n); got != tt.want {
				t.Errorf("Downtrend(%v, %d) = %v, want %v", tt.levels, tt.n, got, tt.want)
			}
		})
	}
}

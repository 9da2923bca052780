package store

import (
	"database/sql"
	"fmt"
	"time"

	"daylog/internal/record"
)

const dayColumns = `date, steps, energy_focus, did_exercise, exercise_type,
	exercise_minutes, heart_rate_zone, avg_hr_bpm,
	minutes_light, minutes_moderate, minutes_intense, minutes_peak,
	notes, step_points, exercise_points, activity_level,
	lifestyle_status, recommendation`

// UpsertDay inserts or replaces the record for its date. The most
// recently ingested row for a date always wins.
func (db *DB) UpsertDay(r *record.EnrichedRecord) error {
	var (
		exerciseType *string
		zone         *string
		light        *float64
		moderate     *float64
		intense      *float64
		peak         *float64
	)
	if r.ExerciseType != nil {
		s := string(*r.ExerciseType)
		exerciseType = &s
	}
	if r.HeartRateZone != nil {
		s := string(*r.HeartRateZone)
		zone = &s
	}
	if r.ZoneMinutes != nil {
		light = &r.ZoneMinutes.Light
		moderate = &r.ZoneMinutes.Moderate
		intense = &r.ZoneMinutes.Intense
		peak = &r.ZoneMinutes.Peak
	}

	_, err := db.Exec(`
		INSERT INTO days (
			date, steps, energy_focus, did_exercise, exercise_type,
			exercise_minutes, heart_rate_zone, avg_hr_bpm,
			minutes_light, minutes_moderate, minutes_intense, minutes_peak,
			notes, step_points, exercise_points, activity_level,
			lifestyle_status, recommendation, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(date) DO UPDATE SET
			steps = excluded.steps,
			energy_focus = excluded.energy_focus,
			did_exercise = excluded.did_exercise,
			exercise_type = excluded.exercise_type,
			exercise_minutes = excluded.exercise_minutes,
			heart_rate_zone = excluded.heart_rate_zone,
			avg_hr_bpm = excluded.avg_hr_bpm,
			minutes_light = excluded.minutes_light,
			minutes_moderate = excluded.minutes_moderate,
			minutes_intense = excluded.minutes_intense,
			minutes_peak = excluded.minutes_peak,
			notes = excluded.notes,
			step_points = excluded.step_points,
			exercise_points = excluded.exercise_points,
			activity_level = excluded.activity_level,
			lifestyle_status = excluded.lifestyle_status,
			recommendation = excluded.recommendation,
			updated_at = CURRENT_TIMESTAMP
	`,
		r.DateKey(), r.Steps, r.EnergyFocus, boolToInt(r.DidExercise), exerciseType,
		r.ExerciseMinutes, zone, r.AvgHRBPM,
		light, moderate, intense, peak,
		r.Notes, r.StepPoints, r.ExercisePoints, r.ActivityLevel,
		string(r.LifestyleStatus), r.Recommendation,
	)
	return err
}

// GetDay retrieves the record for a calendar date.
func (db *DB) GetDay(date time.Time) (*record.EnrichedRecord, error) {
	row := db.QueryRow(`SELECT `+dayColumns+` FROM days WHERE date = ?`,
		date.Format("2006-01-02"))

	rec, err := scanDay(row)
	if err == sql.ErrNoRows {
		return nil, ErrDayNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// ListDays returns days ordered by date descending.
func (db *DB) ListDays(limit, offset int) ([]record.EnrichedRecord, error) {
	rows, err := db.Query(`SELECT `+dayColumns+` FROM days
		ORDER BY date DESC LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDays(rows)
}

// GetDaysInRange returns days within [start, end] ordered ascending.
func (db *DB) GetDaysInRange(start, end time.Time) ([]record.EnrichedRecord, error) {
	rows, err := db.Query(`SELECT `+dayColumns+` FROM days
		WHERE date >= ? AND date <= ?
		ORDER BY date ASC`,
		start.Format("2006-01-02"), end.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDays(rows)
}

// GetDaysBefore returns up to limit days strictly before date, ordered
// ascending. Used to build trend context for a new record.
func (db *DB) GetDaysBefore(date time.Time, limit int) ([]record.EnrichedRecord, error) {
	rows, err := db.Query(`SELECT `+dayColumns+` FROM (
			SELECT `+dayColumns+` FROM days
			WHERE date < ?
			ORDER BY date DESC LIMIT ?
		) ORDER BY date ASC`,
		date.Format("2006-01-02"), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDays(rows)
}

// CountDays returns the total number of stored days.
func (db *DB) CountDays() (int, error) {
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM days`).Scan(&n)
	return n, err
}

type scannable interface {
	Scan(dest ...any) error
}

func scanDay(row scannable) (*record.EnrichedRecord, error) {
	var (
		rec          record.EnrichedRecord
		dateStr      string
		didExercise  int
		exerciseType *string
		zone         *string
		light        *float64
		moderate     *float64
		intense      *float64
		peak         *float64
		status       string
	)

	err := row.Scan(
		&dateStr, &rec.Steps, &rec.EnergyFocus, &didExercise, &exerciseType,
		&rec.ExerciseMinutes, &zone, &rec.AvgHRBPM,
		&light, &moderate, &intense, &peak,
		&rec.Notes, &rec.StepPoints, &rec.ExercisePoints, &rec.ActivityLevel,
		&status, &rec.Recommendation,
	)
	if err != nil {
		return nil, err
	}

	rec.Date, err = time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, fmt.Errorf("parsing stored date %q: %w", dateStr, err)
	}
	rec.DidExercise = didExercise != 0
	if exerciseType != nil {
		t := record.ExerciseType(*exerciseType)
		rec.ExerciseType = &t
	}
	if zone != nil {
		z := record.Zone(*zone)
		rec.HeartRateZone = &z
	}
	if light != nil || moderate != nil || intense != nil || peak != nil {
		zm := record.ZoneMinutes{}
		if light != nil {
			zm.Light = *light
		}
		if moderate != nil {
			zm.Moderate = *moderate
		}
		if intense != nil {
			zm.Intense = *intense
		}
		if peak != nil {
			zm.Peak = *peak
		}
		rec.ZoneMinutes = &zm
	}
	rec.LifestyleStatus = record.Status(status)

	return &rec, nil
}

func scanDays(rows *sql.Rows) ([]record.EnrichedRecord, error) {
	var days []record.EnrichedRecord
	for rows.Next() {
		rec, err := scanDay(rows)
		if err != nil {
			return nil, err
		}
		days = append(days, *rec)
	}
	return days, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

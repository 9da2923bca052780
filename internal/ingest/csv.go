package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"daylog/internal/record"
)

// ValidationError reports a row that fails the required-field contract.
// The scoring core assumes validated records; this is where that
// contract is enforced.
type ValidationError struct {
	Line  int
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("line %d: %s: %s", e.Line, e.Field, e.Msg)
}

var dateLayouts = []string{"2006-01-02", "2006/01/02", "01/02/2006"}

// File reads and normalizes a daily-log CSV.
func File(path string) ([]record.DailyRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	defer f.Close()

	records, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return records, nil
}

// Read parses daily records from CSV data. Headers are matched
// case-insensitively with surrounding whitespace ignored. Rows are
// deduplicated by date with the last occurrence winning, then sorted
// ascending by date.
func Read(r io.Reader) ([]record.DailyRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty file")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"date", "steps", "energy_focus", "did_exercise"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	byDate := make(map[string]record.DailyRecord)
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line+1, err)
		}
		line++

		rec, err := parseRow(cols, row, line)
		if err != nil {
			return nil, err
		}
		// Later rows override earlier ones for the same date.
		byDate[rec.DateKey()] = rec
	}

	records := make([]record.DailyRecord, 0, len(byDate))
	for _, rec := range byDate {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})
	return records, nil
}

func parseRow(cols map[string]int, row []string, line int) (record.DailyRecord, error) {
	var rec record.DailyRecord

	date, ok := field(cols, row, "date")
	if !ok || date == "" {
		return rec, &ValidationError{Line: line, Field: "date", Msg: "required field is blank"}
	}
	parsed, err := parseDate(date)
	if err != nil {
		return rec, &ValidationError{Line: line, Field: "date", Msg: fmt.Sprintf("unparseable date %q", date)}
	}
	rec.Date = parsed

	steps, ok := field(cols, row, "steps")
	if !ok || steps == "" {
		return rec, &ValidationError{Line: line, Field: "steps", Msg: "required field is blank"}
	}
	rec.Steps, err = strconv.Atoi(steps)
	if err != nil || rec.Steps < 0 {
		return rec, &ValidationError{Line: line, Field: "steps", Msg: fmt.Sprintf("want a non-negative integer, got %q", steps)}
	}

	energy, ok := field(cols, row, "energy_focus")
	if !ok || energy == "" {
		return rec, &ValidationError{Line: line, Field: "energy_focus", Msg: "required field is blank"}
	}
	rec.EnergyFocus, err = strconv.Atoi(energy)
	if err != nil || rec.EnergyFocus < 1 || rec.EnergyFocus > 5 {
		return rec, &ValidationError{Line: line, Field: "energy_focus", Msg: fmt.Sprintf("want an integer in [1,5], got %q", energy)}
	}

	flag, ok := field(cols, row, "did_exercise")
	if !ok || flag == "" {
		return rec, &ValidationError{Line: line, Field: "did_exercise", Msg: "required field is blank"}
	}
	rec.DidExercise, err = parseBool(flag)
	if err != nil {
		return rec, &ValidationError{Line: line, Field: "did_exercise", Msg: fmt.Sprintf("want yes/no, got %q", flag)}
	}

	// Optional fields: blank means absent, never zero.
	if v, ok := field(cols, row, "exercise_type"); ok && v != "" {
		t, ok := record.ParseExerciseType(v)
		if !ok {
			return rec, &ValidationError{Line: line, Field: "exercise_type", Msg: fmt.Sprintf("unknown type %q", v)}
		}
		rec.ExerciseType = &t
	}
	if v, ok := field(cols, row, "exercise_minutes"); ok && v != "" {
		minutes, err := strconv.Atoi(v)
		if err != nil || minutes < 0 {
			return rec, &ValidationError{Line: line, Field: "exercise_minutes", Msg: fmt.Sprintf("want a non-negative integer, got %q", v)}
		}
		rec.ExerciseMinutes = &minutes
	}
	if v, ok := field(cols, row, "heart_rate_zone"); ok && v != "" {
		// A stray label in this optional column degrades to absent;
		// inference may still fill it from the HR signals.
		if z, ok := record.ParseZone(v); ok {
			rec.HeartRateZone = &z
		}
	}
	if v, ok := field(cols, row, "avg_hr_bpm"); ok && v != "" {
		bpm, err := strconv.ParseFloat(v, 64)
		if err == nil && bpm > 0 {
			rec.AvgHRBPM = &bpm
		}
	}
	if zm := parseZoneMinutes(cols, row); zm != nil {
		rec.ZoneMinutes = zm
	}
	if v, ok := field(cols, row, "notes"); ok && v != "" {
		rec.Notes = &v
	}

	return rec, nil
}

func parseZoneMinutes(cols map[string]int, row []string) *record.ZoneMinutes {
	var zm record.ZoneMinutes
	any := false
	for name, target := range map[string]*float64{
		"minutes_light":    &zm.Light,
		"minutes_moderate": &zm.Moderate,
		"minutes_intense":  &zm.Intense,
		"minutes_peak":     &zm.Peak,
	} {
		v, ok := field(cols, row, name)
		if !ok || v == "" {
			continue
		}
		minutes, err := strconv.ParseFloat(v, 64)
		if err != nil || minutes < 0 {
			continue
		}
		*target = minutes
		any = true
	}
	if !any {
		return nil
	}
	return &zm
}

func field(cols map[string]int, row []string, name string) (string, bool) {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return "", false
	}
	return strings.TrimSpace(row[i]), true
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1", "y":
		return true, nil
	case "no", "false", "0", "n":
		return false, nil
	}
	return false, fmt.Errorf("not a boolean: %q", s)
}

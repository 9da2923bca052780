package record

import "strings"

// Zone is a heart-rate effort zone label.
type Zone string

const (
	ZoneLight    Zone = "light"
	ZoneModerate Zone = "moderate"
	ZoneIntense  Zone = "intense"
	ZonePeak     Zone = "peak"
	ZoneUnknown  Zone = "unknown"
)

// Zones lists all zone labels in ascending intensity order,
// with unknown last.
func Zones() []Zone {
	return []Zone{ZoneLight, ZoneModerate, ZoneIntense, ZonePeak, ZoneUnknown}
}

// Intensity ranks zones for tie-breaking. Higher is more intense.
// Unknown ranks below everything.
func (z Zone) Intensity() int {
	switch z {
	case ZoneLight:
		return 1
	case ZoneModerate:
		return 2
	case ZoneIntense:
		return 3
	case ZonePeak:
		return 4
	}
	return 0
}

// ParseZone normalizes a logged zone value. Unrecognized labels are
// reported as not-ok rather than an error: a stray value in an optional
// column means "absent", not "invalid record".
func ParseZone(s string) (Zone, bool) {
	z := Zone(strings.ToLower(strings.TrimSpace(s)))
	switch z {
	case ZoneLight, ZoneModerate, ZoneIntense, ZonePeak, ZoneUnknown:
		return z, true
	}
	return "", false
}

// ExerciseType categorizes a logged exercise session.
type ExerciseType string

const (
	ExerciseCardio   ExerciseType = "cardio"
	ExerciseStrength ExerciseType = "strength"
	ExerciseMobility ExerciseType = "mobility"
	ExerciseSports   ExerciseType = "sports"
)

// ParseExerciseType normalizes a logged exercise type value.
func ParseExerciseType(s string) (ExerciseType, bool) {
	t := ExerciseType(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case ExerciseCardio, ExerciseStrength, ExerciseMobility, ExerciseSports:
		return t, true
	}
	return "", false
}

// Status is a lifestyle classification band over the activity level.
type Status string

const (
	StatusSedentary     Status = "Sedentary"
	StatusLightlyActive Status = "Lightly Active"
	StatusActive        Status = "Active"
	StatusVeryActive    Status = "Very Active"
)

// Statuses lists all statuses in ascending activity order.
func Statuses() []Status {
	return []Status{StatusSedentary, StatusLightlyActive, StatusActive, StatusVeryActive}
}

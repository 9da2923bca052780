package scoring

import (
	"errors"
	"fmt"

	"daylog/internal/record"
)

// ErrInvariantViolation marks an internal defect: a value that the
// scorer guarantees can never reach the classifier did anyway.
var ErrInvariantViolation = errors.New("scoring invariant violation")

// Classify maps an activity level to its lifestyle status. The level
// must be in [0,100]; anything else is a bug upstream, not bad input.
func Classify(cfg Config, level int) (record.Status, error) {
	if level < 0 || level > 100 {
		return "", fmt.Errorf("%w: activity level %d outside [0,100]", ErrInvariantViolation, level)
	}
	for _, b := range cfg.StatusBands {
		if level >= b.Min {
			return b.Status, nil
		}
	}
	// Unreachable with a validated config (last band starts at 0).
	return "", fmt.Errorf("%w: no status band for level %d", ErrInvariantViolation, level)
}

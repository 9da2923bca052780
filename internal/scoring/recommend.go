package scoring

import "daylog/internal/record"

// Trend thresholds for the trend-aware recommendation policy.
const (
	HighActivityLevel  = 70 // at or above, combined with low energy, nudges recovery
	LowEnergyFocus     = 2  // at or below counts as a low-energy day
	SedentaryStreakMin = 3  // consecutive sedentary days before the streak nudge
	DowntrendDays      = 3  // strictly falling days before the downtrend nudge
)

// TrendContext carries optional cross-day signals into a
// recommendation policy. The core never computes these itself; a
// caller that has batch history supplies them.
type TrendContext struct {
	// ConsecutiveSedentaryDays counts the sedentary run ending the
	// day before this record.
	ConsecutiveSedentaryDays int
	// Downtrend is true when activity levels have fallen strictly
	// over the preceding DowntrendDays days.
	Downtrend bool
}

// RecommendationPolicy turns a classified day into advice text.
// Policies must be pure and must return non-empty text for every
// status in the config table.
type RecommendationPolicy func(cfg Config, day record.DailyRecord, level int, status record.Status, trend *TrendContext) string

// BaselinePolicy is the fixed status-to-text table from the config.
func BaselinePolicy(cfg Config, _ record.DailyRecord, _ int, status record.Status, _ *TrendContext) string {
	return cfg.Recommendations[status]
}

// TrendAwarePolicy layers cross-day nudges on the baseline text.
func TrendAwarePolicy(cfg Config, day record.DailyRecord, level int, status record.Status, trend *TrendContext) string {
	msg := BaselinePolicy(cfg, day, level, status, nil)
	if trend == nil {
		return msg
	}

	if level >= HighActivityLevel && day.EnergyFocus <= LowEnergyFocus {
		msg += " High effort + low energy: prioritize recovery (sleep, hydration, lighter training)."
	}
	if status == record.StatusSedentary && trend.ConsecutiveSedentaryDays >= SedentaryStreakMin {
		msg += " You've had several sedentary days in a row; even a short walk breaks the streak."
	}
	if trend.Downtrend {
		msg += " Activity has been trending down the last few days; plan one session to turn it around."
	}
	return msg
}

package scoring

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"daylog/internal/record"
)

// PointBand maps a half-open value range to a point award. Bands are
// ordered by ascending Min; a band runs from its Min up to the next
// band's Min, and the last band is unbounded.
type PointBand struct {
	Min    int `yaml:"min"`
	Points int `yaml:"points"`
}

// StatusBand maps activity levels at or above Min to a status.
// Bands are ordered by descending Min and the last band starts at 0.
type StatusBand struct {
	Min    int           `yaml:"min"`
	Status record.Status `yaml:"status"`
}

// ZoneInferenceConfig holds the percentage-of-max-HR bands used to
// infer an effort zone from an average heart rate. The edges are
// tunable because max HR comes from an age-based estimate.
type ZoneInferenceConfig struct {
	MaxHR float64 `yaml:"max_hr"`

	// Band lower edges as fractions of max HR, ascending.
	LightMinPct    float64 `yaml:"light_min_pct"`
	ModerateMinPct float64 `yaml:"moderate_min_pct"`
	IntenseMinPct  float64 `yaml:"intense_min_pct"`
	PeakMinPct     float64 `yaml:"peak_min_pct"`
	PeakMaxPct     float64 `yaml:"peak_max_pct"`

	// Sanity bounds. Readings outside this window are ignored entirely.
	MinValidPct float64 `yaml:"min_valid_pct"`
	MaxValidPct float64 `yaml:"max_valid_pct"`
}

// Config bundles every tunable threshold in the scoring pipeline.
// It is passed by value and never modified by the engine, so callers
// can reuse one Config across records and goroutines.
type Config struct {
	StepBands         []PointBand
	DurationBands     []PointBand
	MaxExercisePoints int
	ZoneMultipliers   map[record.Zone]float64
	StatusBands       []StatusBand
	Recommendations   map[record.Status]string
	Inference         ZoneInferenceConfig
}

// DefaultConfig returns the stock scoring thresholds.
func DefaultConfig() Config {
	return Config{
		StepBands: []PointBand{
			{Min: 0, Points: 10},
			{Min: 5000, Points: 25},
			{Min: 7000, Points: 35},
			{Min: 10000, Points: 50},
		},
		DurationBands: []PointBand{
			{Min: 0, Points: 10},
			{Min: 20, Points: 25},
			{Min: 40, Points: 35},
			{Min: 61, Points: 45},
		},
		MaxExercisePoints: 50,
		ZoneMultipliers: map[record.Zone]float64{
			record.ZoneLight:    0.5,
			record.ZoneModerate: 1.0,
			record.ZoneIntense:  1.5,
			record.ZonePeak:     2.0,
			record.ZoneUnknown:  1.0,
		},
		StatusBands: []StatusBand{
			{Min: 76, Status: record.StatusVeryActive},
			{Min: 51, Status: record.StatusActive},
			{Min: 26, Status: record.StatusLightlyActive},
			{Min: 0, Status: record.StatusSedentary},
		},
		Recommendations: map[record.Status]string{
			record.StatusSedentary:     "Add a 20-30 min walk to increase activity and energy.",
			record.StatusLightlyActive: "Include a moderate session to reach Active status.",
			record.StatusActive:        "Maintain routine; add variety (strength/mobility) to avoid plateaus.",
			record.StatusVeryActive:    "Excellent, prioritize recovery (sleep, hydration).",
		},
		Inference: ZoneInferenceConfig{
			MaxHR:          198,
			LightMinPct:    0.50,
			ModerateMinPct: 0.60,
			IntenseMinPct:  0.70,
			PeakMinPct:     0.85,
			PeakMaxPct:     0.95,
			MinValidPct:    0.40,
			MaxValidPct:    1.10,
		},
	}
}

// fileConfig is the YAML shape of a scoring override file. Only the
// sections that are present override the base config.
type fileConfig struct {
	StepBands         []PointBand        `yaml:"step_bands"`
	DurationBands     []PointBand        `yaml:"duration_bands"`
	MaxExercisePoints *int               `yaml:"max_exercise_points"`
	ZoneMultipliers   map[string]float64 `yaml:"zone_multipliers"`
	StatusBands       []StatusBand       `yaml:"status_bands"`
	Recommendations   map[string]string  `yaml:"recommendations"`
	Inference         *ZoneInferenceConfig `yaml:"inference"`
}

// LoadConfigFile layers YAML overrides from path onto base. A missing
// file is not an error; the base config is returned unchanged.
func LoadConfigFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return base, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading scoring config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("parsing scoring config: %w", err)
	}

	cfg := base
	if len(fc.StepBands) > 0 {
		cfg.StepBands = fc.StepBands
	}
	if len(fc.DurationBands) > 0 {
		cfg.DurationBands = fc.DurationBands
	}
	if fc.MaxExercisePoints != nil {
		cfg.MaxExercisePoints = *fc.MaxExercisePoints
	}
	if len(fc.ZoneMultipliers) > 0 {
		multipliers := make(map[record.Zone]float64, len(cfg.ZoneMultipliers))
		for z, m := range cfg.ZoneMultipliers {
			multipliers[z] = m
		}
		for label, m := range fc.ZoneMultipliers {
			z, ok := record.ParseZone(label)
			if !ok {
				return Config{}, fmt.Errorf("scoring config: unknown zone %q", label)
			}
			multipliers[z] = m
		}
		cfg.ZoneMultipliers = multipliers
	}
	if len(fc.StatusBands) > 0 {
		cfg.StatusBands = fc.StatusBands
	}
	if len(fc.Recommendations) > 0 {
		recs := make(map[record.Status]string, len(cfg.Recommendations))
		for s, text := range cfg.Recommendations {
			recs[s] = text
		}
		for label, text := range fc.Recommendations {
			recs[record.Status(label)] = text
		}
		cfg.Recommendations = recs
	}
	if fc.Inference != nil {
		inf := cfg.Inference
		if fc.Inference.MaxHR > 0 {
			inf.MaxHR = fc.Inference.MaxHR
		}
		if fc.Inference.LightMinPct > 0 {
			inf.LightMinPct = fc.Inference.LightMinPct
		}
		if fc.Inference.ModerateMinPct > 0 {
			inf.ModerateMinPct = fc.Inference.ModerateMinPct
		}
		if fc.Inference.IntenseMinPct > 0 {
			inf.IntenseMinPct = fc.Inference.IntenseMinPct
		}
		if fc.Inference.PeakMinPct > 0 {
			inf.PeakMinPct = fc.Inference.PeakMinPct
		}
		if fc.Inference.PeakMaxPct > 0 {
			inf.PeakMaxPct = fc.Inference.PeakMaxPct
		}
		if fc.Inference.MinValidPct > 0 {
			inf.MinValidPct = fc.Inference.MinValidPct
		}
		if fc.Inference.MaxValidPct > 0 {
			inf.MaxValidPct = fc.Inference.MaxValidPct
		}
		cfg.Inference = inf
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("scoring config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the structural assumptions the engine relies on.
func (c Config) Validate() error {
	if err := validateBands("step_bands", c.StepBands); err != nil {
		return err
	}
	if err := validateBands("duration_bands", c.DurationBands); err != nil {
		return err
	}
	if c.MaxExercisePoints <= 0 {
		return fmt.Errorf("max_exercise_points must be positive")
	}
	if _, ok := c.ZoneMultipliers[record.ZoneUnknown]; !ok {
		return fmt.Errorf("zone_multipliers must define %q", record.ZoneUnknown)
	}
	if len(c.StatusBands) == 0 {
		return fmt.Errorf("status_bands must not be empty")
	}
	last := c.StatusBands[len(c.StatusBands)-1]
	if last.Min != 0 {
		return fmt.Errorf("status_bands must end with a band starting at 0, got %d", last.Min)
	}
	for i := 1; i < len(c.StatusBands); i++ {
		if c.StatusBands[i].Min >= c.StatusBands[i-1].Min {
			return fmt.Errorf("status_bands must be ordered by descending min")
		}
	}
	for _, s := range record.Statuses() {
		if c.Recommendations[s] == "" {
			return fmt.Errorf("recommendations missing text for status %q", s)
		}
	}
	inf := c.Inference
	if inf.MaxHR <= 0 {
		return fmt.Errorf("inference.max_hr must be positive")
	}
	edges := []float64{inf.MinValidPct, inf.LightMinPct, inf.ModerateMinPct, inf.IntenseMinPct, inf.PeakMinPct, inf.PeakMaxPct, inf.MaxValidPct}
	for i := 1; i < len(edges); i++ {
		if edges[i] <= edges[i-1] {
			return fmt.Errorf("inference percentage edges must be strictly ascending")
		}
	}
	return nil
}

func validateBands(name string, bands []PointBand) error {
	if len(bands) == 0 {
		return fmt.Errorf("%s must not be empty", name)
	}
	if bands[0].Min != 0 {
		return fmt.Errorf("%s must start at 0, got %d", name, bands[0].Min)
	}
	for i := 1; i < len(bands); i++ {
		if bands[i].Min <= bands[i-1].Min {
			return fmt.Errorf("%s must be ordered by ascending min", name)
		}
	}
	return nil
}

// multiplierFor resolves a zone pointer to its multiplier. Both an
// absent zone and an explicit unknown fall back to the unknown
// multiplier; the distinction is preserved on the record itself.
func (c Config) multiplierFor(zone *record.Zone) float64 {
	if zone != nil {
		if m, ok := c.ZoneMultipliers[*zone]; ok {
			return m
		}
	}
	return c.ZoneMultipliers[record.ZoneUnknown]
}

package scoring

import "daylog/internal/record"

// InferZone returns the effort zone to score a day with. A zone that
// is already logged is returned as-is, never overwritten. On an
// exercise day with no logged zone it tries the auxiliary heart-rate
// signals: first an average-HR reading mapped through the configured
// %-of-max bands, then per-zone minute accumulators. If neither yields
// anything the zone stays absent and scoring treats it as unknown.
func InferZone(cfg Config, day record.DailyRecord) *record.Zone {
	if day.HeartRateZone != nil {
		return day.HeartRateZone
	}
	if !day.DidExercise {
		return nil
	}

	if day.AvgHRBPM != nil {
		if z := zoneFromAvgHR(cfg.Inference, *day.AvgHRBPM); z != nil {
			return z
		}
	}
	if day.ZoneMinutes != nil {
		if z := zoneFromMinutes(*day.ZoneMinutes); z != nil {
			return z
		}
	}
	return nil
}

// zoneFromAvgHR maps an average heart rate into a zone via percentage
// of max HR. Readings outside the sanity window are discarded; readings
// inside the window but outside the four bands come back as an explicit
// unknown rather than nothing, since the tracker did report effort.
func zoneFromAvgHR(inf ZoneInferenceConfig, bpm float64) *record.Zone {
	if bpm <= 0 || inf.MaxHR <= 0 {
		return nil
	}

	pct := bpm / inf.MaxHR
	if pct < inf.MinValidPct || pct > inf.MaxValidPct {
		return nil
	}

	var z record.Zone
	switch {
	case pct < inf.LightMinPct:
		z = record.ZoneUnknown
	case pct < inf.ModerateMinPct:
		z = record.ZoneLight
	case pct < inf.IntenseMinPct:
		z = record.ZoneModerate
	case pct < inf.PeakMinPct:
		z = record.ZoneIntense
	case pct <= inf.PeakMaxPct:
		z = record.ZonePeak
	default:
		z = record.ZoneUnknown
	}
	return &z
}

// zoneFromMinutes picks the zone with the most accumulated minutes.
// Ties go to the higher intensity: under-reporting peak effort is more
// costly than over-reporting it. All-zero accumulators infer nothing.
func zoneFromMinutes(zm record.ZoneMinutes) *record.Zone {
	candidates := []struct {
		zone    record.Zone
		minutes float64
	}{
		{record.ZoneLight, zm.Light},
		{record.ZoneModerate, zm.Moderate},
		{record.ZoneIntense, zm.Intense},
		{record.ZonePeak, zm.Peak},
	}

	var best *record.Zone
	bestMinutes := 0.0
	for i := range candidates {
		c := candidates[i]
		if c.minutes <= 0 {
			continue
		}
		if best == nil || c.minutes > bestMinutes ||
			(c.minutes == bestMinutes && c.zone.Intensity() > best.Intensity()) {
			best = &candidates[i].zone
			bestMinutes = c.minutes
		}
	}
	return best
}

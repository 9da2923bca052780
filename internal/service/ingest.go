package service

import (
	"fmt"

	"daylog/internal/analysis"
	"daylog/internal/ingest"
	"daylog/internal/record"
	"daylog/internal/scoring"
	"daylog/internal/store"
)

// IngestService reads raw logs, enriches them, and persists the
// result. It is the only writer to the store.
type IngestService struct {
	db  *store.DB
	cfg scoring.Config
}

// NewIngestService creates a new ingest service.
func NewIngestService(db *store.DB, cfg scoring.Config) *IngestService {
	return &IngestService{db: db, cfg: cfg}
}

// IngestResult summarizes one ingest run.
type IngestResult struct {
	Ingested int
	First    string
	Last     string
}

// IngestFile reads a CSV log, enriches each day with the trend-aware
// recommendation policy, and upserts everything. Re-ingesting a date
// replaces the stored row, so the latest submission wins.
func (s *IngestService) IngestFile(path string) (*IngestResult, error) {
	records, err := ingest.File(path)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return &IngestResult{}, nil
	}

	// Trend context needs history: stored days before the batch plus
	// the batch's own earlier days, in date order.
	prior, err := s.db.GetDaysBefore(records[0].Date, TrendLookbackDays)
	if err != nil {
		return nil, fmt.Errorf("loading trend history: %w", err)
	}

	for _, raw := range records {
		trend := trendContext(prior)
		enriched, err := scoring.ProcessWithPolicy(s.cfg, raw, scoring.TrendAwarePolicy, trend)
		if err != nil {
			return nil, fmt.Errorf("enriching %s: %w", raw.DateKey(), err)
		}
		if err := s.db.UpsertDay(&enriched); err != nil {
			return nil, fmt.Errorf("storing %s: %w", raw.DateKey(), err)
		}
		prior = append(prior, enriched)
		if len(prior) > TrendLookbackDays {
			prior = prior[len(prior)-TrendLookbackDays:]
		}
	}

	return &IngestResult{
		Ingested: len(records),
		First:    records[0].DateKey(),
		Last:     records[len(records)-1].DateKey(),
	}, nil
}

// trendContext derives the cross-day signals from the days preceding
// the record being processed, ascending.
func trendContext(prior []record.EnrichedRecord) *scoring.TrendContext {
	if len(prior) == 0 {
		return nil
	}
	return &scoring.TrendContext{
		ConsecutiveSedentaryDays: analysis.SedentaryStreak(prior),
		Downtrend:                analysis.Downtrend(prior, scoring.DowntrendDays),
	}
}

package usecase

import (
	"fmt"
	"time"

	"GridPulse/internal/catalog"
	"GridPulse/internal/domain/models"
	"GridPulse/internal/domain/repository"
	"GridPulse/internal/generator"
)

// Overviews derive from a fixed 24h/15m window so all markets compare on the
// same footing.
const (
	overviewHistoryRange    = 24 * time.Hour
	overviewHistoryInterval = 15 * time.Minute
)

// MarketData orchestrates synthetic data generation for API consumers. It
// validates request parameters, resolves markets against the catalog, and
// reads the injected clock exactly once per call so series, insights,
// overview and forecast all share one consistent "now".
type MarketData struct {
	clock   repository.Clock
	catalog *catalog.Catalog
	metrics repository.Metrics
}

func NewMarketData(clock repository.Clock, cat *catalog.Catalog, metrics repository.Metrics) *MarketData {
	return &MarketData{clock: clock, catalog: cat, metrics: metrics}
}

// Catalog returns metadata for the supported markets, sorted
// case-insensitively by display name.
func (s *MarketData) Catalog() []models.MarketMetadata {
	defs := s.catalog.All()
	out := make([]models.MarketMetadata, 0, len(defs))
	for _, d := range defs {
		out = append(out, d.Metadata())
	}
	return out
}

// Overviews returns high-level overviews for every market, all generated from
// a single clock reading.
func (s *MarketData) Overviews() ([]models.MarketOverview, error) {
	now := s.clock.Now()
	defs := s.catalog.All()
	out := make([]models.MarketOverview, 0, len(defs))
	for _, d := range defs {
		ov, err := generator.Overview(d, now, overviewHistoryRange, overviewHistoryInterval)
		if err != nil {
			return nil, fmt.Errorf("overview %s: %w", d.Code, err)
		}
		if s.metrics != nil {
			s.metrics.RecordLastPrice(d.Code, ov.CurrentPrice)
		}
		out = append(out, ov)
	}
	return out, nil
}

// Snapshot builds the detailed snapshot for one market. All parameters are
// validated before any generation work runs, so no partial snapshot is ever
// produced.
func (s *MarketData) Snapshot(marketCode string, historyHours, historyResolutionMinutes, forecastHours, forecastResolutionMinutes int) (models.MarketSnapshot, error) {
	market, err := s.catalog.Lookup(marketCode)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordError("market_not_found")
		}
		return models.MarketSnapshot{}, err
	}

	historyRange, err := hoursIn(historyHours, 1, 168, "historyHours")
	if err != nil {
		return models.MarketSnapshot{}, err
	}
	historyInterval, err := minutesIn(historyResolutionMinutes, 5, 180, "historyResolutionMinutes")
	if err != nil {
		return models.MarketSnapshot{}, err
	}
	if err := ensureDivisible(historyRange, historyInterval, "historyHours", "historyResolutionMinutes"); err != nil {
		return models.MarketSnapshot{}, err
	}

	forecastHorizon, err := hoursIn(forecastHours, 1, 72, "forecastHours")
	if err != nil {
		return models.MarketSnapshot{}, err
	}
	forecastInterval, err := minutesIn(forecastResolutionMinutes, 15, 240, "forecastResolutionMinutes")
	if err != nil {
		return models.MarketSnapshot{}, err
	}
	if err := ensureDivisible(forecastHorizon, forecastInterval, "forecastHours", "forecastResolutionMinutes"); err != nil {
		return models.MarketSnapshot{}, err
	}

	started := time.Now()
	now := s.clock.Now()
	snap, err := generator.Snapshot(market, now, historyRange, historyInterval, forecastHorizon, forecastInterval)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordError("generation")
		}
		return models.MarketSnapshot{}, err
	}
	if s.metrics != nil {
		s.metrics.RecordSnapshot(market.Code)
		s.metrics.RecordLatency("snapshot", time.Since(started).Seconds())
		s.metrics.RecordLastPrice(market.Code, snap.Overview.CurrentPrice)
	}
	return snap, nil
}

func hoursIn(value, lo, hi int, field string) (time.Duration, error) {
	if value < lo || value > hi {
		return 0, models.NewInvalidParameter(field, fmt.Sprintf("must be between %d and %d hours", lo, hi))
	}
	return time.Duration(value) * time.Hour, nil
}

func minutesIn(value, lo, hi int, field string) (time.Duration, error) {
	if value < lo || value > hi {
		return 0, models.NewInvalidParameter(field, fmt.Sprintf("must be between %d and %d minutes", lo, hi))
	}
	return time.Duration(value) * time.Minute, nil
}

func ensureDivisible(rng, interval time.Duration, rangeField, intervalField string) error {
	if int64(rng.Minutes())%int64(interval.Minutes()) != 0 {
		return models.NewInvalidParameter(intervalField, fmt.Sprintf("must evenly divide %s", rangeField))
	}
	return nil
}

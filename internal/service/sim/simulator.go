// Package sim carries the legacy demo variant: a stateful random-walk price
// simulator for broad energy commodities. Unlike the deterministic market
// generator it keeps mutable per-type prices and genuinely random steps; it
// only feeds the WebSocket stream, never the REST snapshots.
package sim

import (
	"math/rand"
	"sync"
	"time"

	"GridPulse/internal/domain/models"
	"GridPulse/internal/domain/repository"
	"GridPulse/pkg/util"
)

// Config tunes the random walk.
type Config struct {
	PriceVolatility float64
	BasePrices      map[models.EnergyType]float64
}

// DefaultConfig mirrors the demo defaults.
func DefaultConfig() Config {
	return Config{
		PriceVolatility: 0.05,
		BasePrices: map[models.EnergyType]float64{
			models.Electricity: 50.0,
			models.Gas:         30.0,
			models.Coal:        40.0,
			models.Solar:       20.0,
			models.Wind:        25.0,
			models.Nuclear:     35.0,
			models.Hydro:       22.0,
		},
	}
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithRand injects a seeded source, for reproducible tests.
func WithRand(rng *rand.Rand) Option {
	return func(s *Simulator) { s.rng = rng }
}

// WithClock injects the time source used for tick timestamps.
func WithClock(clock repository.Clock) Option {
	return func(s *Simulator) { s.clock = clock }
}

// Simulator holds the walk state. Safe for concurrent use.
type Simulator struct {
	mu         sync.Mutex
	rng        *rand.Rand
	clock      repository.Clock
	volatility float64
	prices     map[models.EnergyType]float64
}

func New(cfg Config, opts ...Option) *Simulator {
	defaults := DefaultConfig()
	if cfg.PriceVolatility <= 0 {
		cfg.PriceVolatility = defaults.PriceVolatility
	}
	prices := make(map[models.EnergyType]float64, len(defaults.BasePrices))
	for t, base := range defaults.BasePrices {
		prices[t] = base
	}
	for t, base := range cfg.BasePrices {
		if base > 0 {
			prices[t] = base
		}
	}

	s := &Simulator{
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		clock:      repository.SystemClock{},
		volatility: cfg.PriceVolatility,
		prices:     prices,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NextPrice advances the walk for one energy type and returns the tick.
func (s *Simulator) NextPrice(t models.EnergyType) models.EnergyPrice {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.prices[t]
	changePercent := (s.rng.Float64() - 0.5) * 2 * s.volatility
	price := prev * (1 + changePercent)
	s.prices[t] = price

	return models.EnergyPrice{
		Type:          t,
		Price:         util.Round(price, 2),
		Unit:          t.Unit(),
		Timestamp:     s.clock.Now(),
		ChangePercent: util.Round(changePercent*100, 2),
	}
}

// NextPrices advances the walk for every energy type.
func (s *Simulator) NextPrices() []models.EnergyPrice {
	types := models.EnergyTypes()
	out := make([]models.EnergyPrice, 0, len(types))
	for _, t := range types {
		out = append(out, s.NextPrice(t))
	}
	return out
}

// Stats builds market statistics from current prices and simulated volumes.
func (s *Simulator) Stats() models.MarketStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	volumeByType := make(map[models.EnergyType]float64)
	priceByType := make(map[models.EnergyType]float64)
	var totalVolume, weightedPriceSum float64

	for _, t := range models.EnergyTypes() {
		volume := 1000 + s.rng.Float64()*4000
		price := s.prices[t]

		volumeByType[t] = util.Round(volume, 2)
		priceByType[t] = util.Round(price, 2)
		totalVolume += volume
		weightedPriceSum += price * volume
	}

	return models.MarketStats{
		TotalVolume:  util.Round(totalVolume, 2),
		AveragePrice: util.Round(weightedPriceSum/totalVolume, 2),
		VolumeByType: volumeByType,
		PriceByType:  priceByType,
		Timestamp:    s.clock.Now(),
	}
}

// CurrentPrice returns the current walk position for one energy type.
func (s *Simulator) CurrentPrice(t models.EnergyType) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prices[t]
}

package generator

import (
	"sort"
	"time"

	"GridPulse/internal/domain/models"
	"GridPulse/pkg/util"
)

// BuildSeries generates the ordered historical series for a market, stepping
// from now-rng to now inclusive at interval spacing. Values are rounded at
// emission: price 2 decimals, demand 0, carbon and renewables 1.
func BuildSeries(market models.MarketDefinition, now time.Time, rng, interval time.Duration) ([]models.PricePoint, error) {
	if err := validateDurations(rng, interval, "history"); err != nil {
		return nil, err
	}
	intervalMinutes := int64(interval.Minutes())
	steps := int(int64(rng.Minutes()) / intervalMinutes)

	start := now.Add(-rng)
	p := market.Params
	series := make([]models.PricePoint, 0, steps+1)

	for i := 0; i <= steps; i++ {
		ts := start.Add(time.Duration(i) * interval)
		ph := phaseAt(ts, market.Location)
		hoursFromStart := float64(intervalMinutes*int64(i)) / 60.0
		noise := noiseAt(ts, market.Ordinal)

		price := priceAt(p, hoursFromStart, ph, noise)
		demand := demandAt(p, hoursFromStart, ph, price, noise)
		renewables := renewablesAt(p, hoursFromStart, ph, noise)
		carbon := carbonAt(p, demand, renewables)

		series = append(series, models.PricePoint{
			Timestamp:       ts,
			PriceMwh:        util.Round(price, 2),
			DemandMw:        util.Round(demand, 0),
			CarbonIntensity: util.Round(carbon, 1),
			RenewablesShare: util.Round(renewables, 1),
		})
	}

	// Construction is already chronological; re-sort as an invariant check.
	sort.SliceStable(series, func(i, j int) bool {
		return series[i].Timestamp.Before(series[j].Timestamp)
	})
	return series, nil
}

func validateDurations(rng, interval time.Duration, label string) error {
	if rng <= 0 {
		return models.NewInvalidParameter(label+" range", "must be positive")
	}
	if interval <= 0 {
		return models.NewInvalidParameter(label+" interval", "must be positive")
	}
	if int64(rng.Minutes())%int64(interval.Minutes()) != 0 {
		return models.NewInvalidParameter(label+" range", "must be divisible by its interval")
	}
	return nil
}

package generator

import (
	"math"
	"time"

	"GridPulse/internal/domain/models"
	"GridPulse/pkg/util"
)

// slopeLookback bounds how many trailing points feed the slope estimate.
const slopeLookback = 8

// BuildForecast extrapolates beyond the last historical point. The baseline
// follows a trailing slope, damped daily/weekly seasonal terms are layered on
// top, and the confidence band widens with the square root of the step index.
// A horizon shorter than one interval yields an empty forecast, not an error.
func BuildForecast(market models.MarketDefinition, history []models.PricePoint, horizon, interval time.Duration, observedStdDev float64) ([]models.ForecastPoint, error) {
	if err := validateDurations(horizon, interval, "forecast"); err != nil {
		return nil, err
	}
	intervalMinutes := int64(interval.Minutes())
	steps := int(int64(horizon.Minutes()) / intervalMinutes)
	if steps == 0 || len(history) == 0 {
		return []models.ForecastPoint{}, nil
	}

	last := history[len(history)-1]
	start := last.Timestamp
	slopePerHour := priceSlope(history)
	p := market.Params
	baseVolatility := observedStdDev
	if baseVolatility <= 0 {
		baseVolatility = p.Volatility
	}

	forecast := make([]models.ForecastPoint, 0, steps)
	for i := 1; i <= steps; i++ {
		ts := start.Add(time.Duration(i) * interval)
		ph := phaseAt(ts, market.Location)
		hoursAhead := float64(intervalMinutes*int64(i)) / 60.0

		baseline := last.PriceMwh + slopePerHour*hoursAhead
		seasonalDaily := p.DailySwing * 0.35 * math.Sin(2*math.Pi*ph.day)
		seasonalWeekly := p.WeeklySwing * 0.2 * math.Sin(2*math.Pi*ph.week)
		projected := baseline + seasonalDaily + seasonalWeekly

		confidence := math.Max(p.Volatility, baseVolatility) * math.Sqrt(float64(i))
		lower := math.Max(minPrice, projected-confidence)
		upper := projected + confidence

		forecast = append(forecast, models.ForecastPoint{
			Timestamp:         ts,
			ProjectedPriceMwh: util.Round(projected, 2),
			LowerBound:        util.Round(lower, 2),
			UpperBound:        util.Round(upper, 2),
		})
	}
	return forecast, nil
}

// priceSlope estimates the recent price trend in $/h from the last up to
// slopeLookback points. The denominator is floored at one hour so short
// windows cannot blow the slope up.
func priceSlope(history []models.PricePoint) float64 {
	if len(history) < 2 {
		return 0
	}
	from := history[max(0, len(history)-slopeLookback)]
	to := history[len(history)-1]
	hours := math.Max(1.0, to.Timestamp.Sub(from.Timestamp).Minutes()/60.0)
	return (to.PriceMwh - from.PriceMwh) / hours
}

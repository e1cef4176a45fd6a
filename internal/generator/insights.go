package generator

import (
	"errors"
	"fmt"
	"math"

	"GridPulse/internal/domain/models"
	"GridPulse/pkg/util"
)

// ErrEmptySeries signals a caller bug: insights cannot be computed without at
// least one historical point.
var ErrEmptySeries = errors.New("history must contain at least one point")

// Analyze reduces a historical series to aggregate statistics and derives
// alerts from the fixed threshold rules. Alert order is evaluation order.
func Analyze(history []models.PricePoint) (models.MarketInsights, error) {
	if len(history) == 0 {
		return models.MarketInsights{}, ErrEmptySeries
	}

	first := history[0]
	last := history[len(history)-1]

	var priceSum, priceSquareSum, demandSum, renewableSum float64
	minPriceSeen := math.MaxFloat64
	maxPriceSeen := -math.MaxFloat64
	peakDemand := -math.MaxFloat64

	for _, pt := range history {
		priceSum += pt.PriceMwh
		priceSquareSum += pt.PriceMwh * pt.PriceMwh
		minPriceSeen = math.Min(minPriceSeen, pt.PriceMwh)
		maxPriceSeen = math.Max(maxPriceSeen, pt.PriceMwh)
		demandSum += pt.DemandMw
		peakDemand = math.Max(peakDemand, pt.DemandMw)
		renewableSum += pt.RenewablesShare
	}

	count := float64(len(history))
	averagePrice := priceSum / count
	// Population variance; floored at 0 against floating-point cancellation.
	variance := math.Max(0, priceSquareSum/count-averagePrice*averagePrice)
	priceStdDev := math.Sqrt(variance)
	averageDemand := demandSum / count
	averageRenewables := renewableSum / count
	hoursBetween := math.Max(1.0, last.Timestamp.Sub(first.Timestamp).Minutes()/60.0)
	carbonTrend := (last.CarbonIntensity - first.CarbonIntensity) / hoursBetween

	alerts := make([]string, 0, 4)
	if last.PriceMwh > averagePrice+1.5*priceStdDev {
		spikePercent := (last.PriceMwh - averagePrice) / averagePrice * 100.0
		alerts = append(alerts, fmt.Sprintf("Price spike detected: +%.1f%% vs average", spikePercent))
	}
	if last.DemandMw > peakDemand*0.98 {
		alerts = append(alerts, "Demand is approaching the observed peak load")
	}
	if last.RenewablesShare < averageRenewables-8.0 {
		alerts = append(alerts, "Renewable output is significantly below typical levels")
	}
	if carbonTrend > 1.0 {
		alerts = append(alerts, "Carbon intensity trending upward")
	}

	return models.MarketInsights{
		WindowStart:                 first.Timestamp,
		WindowEnd:                   last.Timestamp,
		AveragePrice:                util.Round(averagePrice, 2),
		PriceStandardDeviation:      util.Round(priceStdDev, 2),
		MinPrice:                    util.Round(minPriceSeen, 2),
		MaxPrice:                    util.Round(maxPriceSeen, 2),
		AverageDemand:               util.Round(averageDemand, 0),
		PeakDemand:                  util.Round(peakDemand, 0),
		AverageRenewablesShare:      util.Round(averageRenewables, 1),
		CarbonIntensityTrendPerHour: util.Round(carbonTrend, 2),
		Alerts:                      alerts,
	}, nil
}

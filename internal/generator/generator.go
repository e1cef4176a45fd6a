// Package generator synthesizes deterministic electricity-market telemetry.
// Every output is a pure function of (market definition, clock reading,
// requested durations); there is no shared mutable state.
package generator

import (
	"time"

	"GridPulse/internal/domain/models"
	"GridPulse/pkg/util"
)

// snapshotContext groups the intermediate products shared by Snapshot and
// Overview so the series is only generated once per call.
type snapshotContext struct {
	overview models.MarketOverview
	history  []models.PricePoint
	insights models.MarketInsights
}

// Snapshot builds the full dashboard snapshot: historical series, insights,
// overview and forecast, all derived from a single clock reading.
func Snapshot(market models.MarketDefinition, now time.Time, historyRange, historyInterval, forecastHorizon, forecastInterval time.Duration) (models.MarketSnapshot, error) {
	ctx, err := buildContext(market, now, historyRange, historyInterval)
	if err != nil {
		return models.MarketSnapshot{}, err
	}
	forecast, err := BuildForecast(market, ctx.history, forecastHorizon, forecastInterval, ctx.insights.PriceStandardDeviation)
	if err != nil {
		return models.MarketSnapshot{}, err
	}
	return models.MarketSnapshot{
		Overview:    ctx.overview,
		PriceSeries: ctx.history,
		Forecast:    forecast,
		Insights:    ctx.insights,
	}, nil
}

// Overview returns the top-level overview used for quick market comparisons.
func Overview(market models.MarketDefinition, now time.Time, historyRange, historyInterval time.Duration) (models.MarketOverview, error) {
	ctx, err := buildContext(market, now, historyRange, historyInterval)
	if err != nil {
		return models.MarketOverview{}, err
	}
	return ctx.overview, nil
}

func buildContext(market models.MarketDefinition, now time.Time, historyRange, historyInterval time.Duration) (snapshotContext, error) {
	history, err := BuildSeries(market, now, historyRange, historyInterval)
	if err != nil {
		return snapshotContext{}, err
	}
	insights, err := Analyze(history)
	if err != nil {
		return snapshotContext{}, err
	}
	return snapshotContext{
		overview: buildOverview(market, history, insights),
		history:  history,
		insights: insights,
	}, nil
}

func buildOverview(market models.MarketDefinition, history []models.PricePoint, insights models.MarketInsights) models.MarketOverview {
	first := history[0]
	last := history[len(history)-1]
	changePercent := 0.0
	if first.PriceMwh != 0 {
		changePercent = (last.PriceMwh - first.PriceMwh) / first.PriceMwh * 100.0
	}
	return models.MarketOverview{
		Code:               market.Code,
		Name:               market.Name,
		Region:             market.Region,
		Timezone:           market.Timezone,
		Description:        market.Description,
		CurrentPrice:       last.PriceMwh,
		PriceChangePercent: util.Round(changePercent, 2),
		AveragePrice:       insights.AveragePrice,
		DemandMw:           last.DemandMw,
		RenewablesShare:    last.RenewablesShare,
		CarbonIntensity:    last.CarbonIntensity,
		TypicalPrice:       util.Round(market.Params.BasePrice, 2),
		LastUpdated:        last.Timestamp,
	}
}

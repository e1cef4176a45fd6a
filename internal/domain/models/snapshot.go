package models

import "time"

// PricePoint is one historical sample of the four coupled signals.
type PricePoint struct {
	Timestamp       time.Time `json:"timestamp"`
	PriceMwh        float64   `json:"priceMwh"`
	DemandMw        float64   `json:"demandMw"`
	CarbonIntensity float64   `json:"carbonIntensity"`
	RenewablesShare float64   `json:"renewablesShare"`
}

// ForecastPoint is one projected price with its confidence band.
// LowerBound <= ProjectedPriceMwh <= UpperBound always holds.
type ForecastPoint struct {
	Timestamp         time.Time `json:"timestamp"`
	ProjectedPriceMwh float64   `json:"projectedPriceMwh"`
	LowerBound        float64   `json:"lowerBound"`
	UpperBound        float64   `json:"upperBound"`
}

// MarketInsights summarises a historical series and carries derived alerts.
// Alerts keep evaluation order; the slice may be empty but is never nil.
type MarketInsights struct {
	WindowStart                 time.Time `json:"windowStart"`
	WindowEnd                   time.Time `json:"windowEnd"`
	AveragePrice                float64   `json:"averagePrice"`
	PriceStandardDeviation      float64   `json:"priceStandardDeviation"`
	MinPrice                    float64   `json:"minPrice"`
	MaxPrice                    float64   `json:"maxPrice"`
	AverageDemand               float64   `json:"averageDemand"`
	PeakDemand                  float64   `json:"peakDemand"`
	AverageRenewablesShare      float64   `json:"averageRenewablesShare"`
	CarbonIntensityTrendPerHour float64   `json:"carbonIntensityTrendPerHour"`
	Alerts                      []string  `json:"alerts"`
}

// MarketOverview is the denormalised latest-state summary for one market.
type MarketOverview struct {
	Code               string    `json:"code"`
	Name               string    `json:"name"`
	Region             string    `json:"region"`
	Timezone           string    `json:"timezone"`
	Description        string    `json:"description"`
	CurrentPrice       float64   `json:"currentPrice"`
	PriceChangePercent float64   `json:"priceChangePercent"`
	AveragePrice       float64   `json:"averagePrice"`
	DemandMw           float64   `json:"demandMw"`
	RenewablesShare    float64   `json:"renewablesShare"`
	CarbonIntensity    float64   `json:"carbonIntensity"`
	TypicalPrice       float64   `json:"typicalPrice"`
	LastUpdated        time.Time `json:"lastUpdated"`
}

// MarketSnapshot bundles everything the dashboard needs for one market.
type MarketSnapshot struct {
	Overview    MarketOverview  `json:"overview"`
	PriceSeries []PricePoint    `json:"priceSeries"`
	Forecast    []ForecastPoint `json:"forecast"`
	Insights    MarketInsights  `json:"insights"`
}

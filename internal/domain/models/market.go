package models

import "time"

// MarketParameters are the tuning constants that drive the synthetic dataset
// for one market. All values are immutable after catalog construction.
type MarketParameters struct {
	BasePrice      float64
	DailySwing     float64
	WeeklySwing    float64
	Volatility     float64
	TrendSlope     float64
	DemandBase     float64
	DemandSwing    float64
	CarbonBase     float64
	CarbonSwing    float64
	RenewableBase  float64
	RenewableSwing float64
}

// MarketDefinition describes one synthetic wholesale electricity market.
// Definitions are built once at process start and never mutated.
type MarketDefinition struct {
	Code        string
	Name        string
	Region      string
	Timezone    string
	Description string
	// Ordinal is the stable per-market index used to decorrelate the
	// deterministic noise term across markets.
	Ordinal  int
	Location *time.Location
	Params   MarketParameters
}

// Metadata returns the lightweight catalog view clients use to render
// selectors and contextual text.
func (m MarketDefinition) Metadata() MarketMetadata {
	return MarketMetadata{
		Code:         m.Code,
		Name:         m.Name,
		Region:       m.Region,
		Timezone:     m.Timezone,
		Description:  m.Description,
		TypicalPrice: m.Params.BasePrice,
	}
}

// MarketMetadata is the catalog listing entry.
type MarketMetadata struct {
	Code         string  `json:"code"`
	Name         string  `json:"name"`
	Region       string  `json:"region"`
	Timezone     string  `json:"timezone"`
	Description  string  `json:"description"`
	TypicalPrice float64 `json:"typicalPrice"`
}

package models

import "time"

// EnergyType identifies one commodity in the legacy random-walk simulator.
type EnergyType string

const (
	Electricity EnergyType = "ELECTRICITY"
	Gas         EnergyType = "GAS"
	Coal        EnergyType = "COAL"
	Solar       EnergyType = "SOLAR"
	Wind        EnergyType = "WIND"
	Nuclear     EnergyType = "NUCLEAR"
	Hydro       EnergyType = "HYDRO"
)

// EnergyTypes lists all simulated commodities in declaration order.
func EnergyTypes() []EnergyType {
	return []EnergyType{Electricity, Gas, Coal, Solar, Wind, Nuclear, Hydro}
}

// Unit returns the pricing unit for the energy type.
func (t EnergyType) Unit() string {
	switch t {
	case Gas:
		return "USD/MMBtu"
	case Coal:
		return "USD/ton"
	default:
		return "USD/MWh"
	}
}

// EnergyPrice is one simulated price tick from the legacy demo variant.
type EnergyPrice struct {
	Type          EnergyType `json:"type"`
	Price         float64    `json:"price"`
	Unit          string     `json:"unit"`
	Timestamp     time.Time  `json:"timestamp"`
	ChangePercent float64    `json:"changePercent"`
}

// MarketStats aggregates simulated volumes and prices across energy types.
type MarketStats struct {
	TotalVolume  float64                `json:"totalVolume"`
	AveragePrice float64                `json:"averagePrice"`
	VolumeByType map[EnergyType]float64 `json:"volumeByType"`
	PriceByType  map[EnergyType]float64 `json:"priceByType"`
	Timestamp    time.Time              `json:"timestamp"`
}

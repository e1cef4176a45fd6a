package models

// SnapshotRequest carries the HTTP query parameters for a snapshot call.
// Defaults mirror the dashboard's initial view; bounds mirror the service
// layer's own validation so bad input is rejected at the edge too.
type SnapshotRequest struct {
	MarketCode                string `param:"marketCode"`
	HistoryHours              int    `query:"historyHours" default:"24" validate:"min=1,max=168"`
	HistoryResolutionMinutes  int    `query:"historyResolutionMinutes" default:"15" validate:"min=5,max=180"`
	ForecastHours             int    `query:"forecastHours" default:"12" validate:"min=1,max=72"`
	ForecastResolutionMinutes int    `query:"forecastResolutionMinutes" default:"60" validate:"min=15,max=240"`
}

package usecase

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"GridPulse/internal/catalog"
	"GridPulse/internal/domain/models"
	"GridPulse/internal/domain/repository"
)

func newService(t *testing.T) *MarketData {
	t.Helper()
	cat, err := catalog.New()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	clock := repository.FixedClock{Instant: time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)}
	return NewMarketData(clock, cat, repository.NoopMetrics{})
}

func TestCatalog(t *testing.T) {
	svc := newService(t)
	rows := svc.Catalog()
	if len(rows) != 5 {
		t.Fatalf("expected 5 markets, got %d", len(rows))
	}
	if rows[0].Code != "CAISO" {
		t.Fatalf("expected CAISO first by name, got %s", rows[0].Code)
	}
	for _, r := range rows {
		if r.Code == "" || r.Name == "" || r.Timezone == "" {
			t.Fatalf("incomplete metadata %+v", r)
		}
	}
}

func TestOverviewsDeterministic(t *testing.T) {
	svc := newService(t)
	a, err := svc.Overviews()
	if err != nil {
		t.Fatalf("overviews: %v", err)
	}
	if len(a) != 5 {
		t.Fatalf("expected 5 overviews, got %d", len(a))
	}
	b, err := svc.Overviews()
	if err != nil {
		t.Fatalf("overviews: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("fixed clock must yield identical overviews")
	}
	for _, ov := range a {
		if ov.CurrentPrice < 20.0 {
			t.Fatalf("%s: current price %v below floor", ov.Code, ov.CurrentPrice)
		}
	}
}

func TestSnapshotScenario(t *testing.T) {
	svc := newService(t)
	snap, err := svc.Snapshot("NEISO", 24, 15, 12, 60)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snap.Overview.Code != "NEISO" {
		t.Fatalf("expected NEISO, got %s", snap.Overview.Code)
	}
	if len(snap.PriceSeries) != 97 {
		t.Fatalf("expected 97 history points, got %d", len(snap.PriceSeries))
	}
	if len(snap.Forecast) != 12 {
		t.Fatalf("expected 12 forecast points, got %d", len(snap.Forecast))
	}
	if snap.Insights.Alerts == nil {
		t.Fatalf("alerts must never be nil")
	}
	if !snap.PriceSeries[len(snap.PriceSeries)-1].Timestamp.Equal(time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("last history point must land on the clock reading")
	}
}

func TestSnapshotNormalizesCode(t *testing.T) {
	svc := newService(t)
	snap, err := svc.Snapshot(" neiso ", 24, 15, 12, 60)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snap.Overview.Code != "NEISO" {
		t.Fatalf("expected NEISO, got %s", snap.Overview.Code)
	}
}

func TestSnapshotUnknownMarket(t *testing.T) {
	svc := newService(t)
	_, err := svc.Snapshot("UNKNOWN", 24, 15, 12, 60)
	var nf *models.MarketNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected MarketNotFoundError, got %v", err)
	}
}

func TestSnapshotValidationErrors(t *testing.T) {
	svc := newService(t)
	cases := []struct {
		name           string
		historyHours   int
		historyRes     int
		forecastHours  int
		forecastRes    int
		wantField      string
		wantConstraint string
	}{
		{"history hours low", 0, 15, 12, 60, "historyHours", "must be between 1 and 168 hours"},
		{"history hours high", 169, 15, 12, 60, "historyHours", "must be between 1 and 168 hours"},
		{"history resolution low", 24, 4, 12, 60, "historyResolutionMinutes", "must be between 5 and 180 minutes"},
		{"history resolution high", 24, 181, 12, 60, "historyResolutionMinutes", "must be between 5 and 180 minutes"},
		{"history not divisible", 24, 35, 12, 60, "historyResolutionMinutes", "must evenly divide historyHours"},
		{"forecast hours low", 24, 15, 0, 60, "forecastHours", "must be between 1 and 72 hours"},
		{"forecast hours high", 24, 15, 73, 60, "forecastHours", "must be between 1 and 72 hours"},
		{"forecast resolution low", 24, 15, 12, 14, "forecastResolutionMinutes", "must be between 15 and 240 minutes"},
		{"forecast resolution high", 24, 15, 12, 241, "forecastResolutionMinutes", "must be between 15 and 240 minutes"},
		{"forecast not divisible", 24, 15, 5, 120, "forecastResolutionMinutes", "must evenly divide forecastHours"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Snapshot("NEISO", tc.historyHours, tc.historyRes, tc.forecastHours, tc.forecastRes)
			var ip *models.InvalidParameterError
			if !errors.As(err, &ip) {
				t.Fatalf("expected InvalidParameterError, got %v", err)
			}
			if ip.Field != tc.wantField {
				t.Fatalf("expected field %s, got %s", tc.wantField, ip.Field)
			}
			if ip.Constraint != tc.wantConstraint {
				t.Fatalf("expected constraint %q, got %q", tc.wantConstraint, ip.Constraint)
			}
		})
	}
}

func TestSnapshotValidatesMarketFirst(t *testing.T) {
	svc := newService(t)
	// Unknown market wins over invalid durations.
	_, err := svc.Snapshot("UNKNOWN", 0, 0, 0, 0)
	var nf *models.MarketNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected MarketNotFoundError, got %v", err)
	}
}

package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"GridPulse/internal/catalog"
	"GridPulse/internal/domain/repository"
	"GridPulse/internal/usecase"
	applogger "GridPulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	l, err := applogger.New(&applogger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	cat, err := catalog.New()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	clock := repository.FixedClock{Instant: time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)}
	svc := usecase.NewMarketData(clock, cat, repository.NoopMetrics{})

	e := echo.New()
	NewMarketsHandler(l, svc, nil, clock).RegisterRoutes(e)
	return e
}

func doGet(t *testing.T, e *echo.Echo, target string) envelope {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected http status %d", rec.Code)
	}
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return env
}

func TestCatalogEndpoint(t *testing.T) {
	e := newTestServer(t)
	env := doGet(t, e, "/api/markets/catalog")
	if env.Status != http.StatusOK {
		t.Fatalf("expected envelope status 200, got %d", env.Status)
	}
	var data struct {
		Rows  []map[string]interface{} `json:"rows"`
		Total int64                    `json:"total"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.Total != 5 || len(data.Rows) != 5 {
		t.Fatalf("expected 5 markets, got total=%d rows=%d", data.Total, len(data.Rows))
	}
}

func TestOverviewEndpoint(t *testing.T) {
	e := newTestServer(t)
	env := doGet(t, e, "/api/markets/overview")
	if env.Status != http.StatusOK {
		t.Fatalf("expected envelope status 200, got %d", env.Status)
	}
	var rows []map[string]interface{}
	if err := json.Unmarshal(env.Data, &rows); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("expected 5 overviews, got %d", len(rows))
	}
}

func TestSnapshotEndpointDefaults(t *testing.T) {
	e := newTestServer(t)
	env := doGet(t, e, "/api/markets/NEISO/snapshot")
	if env.Status != http.StatusOK {
		t.Fatalf("expected envelope status 200, got %d", env.Status)
	}
	var snap struct {
		Overview struct {
			Code string `json:"code"`
		} `json:"overview"`
		PriceSeries []json.RawMessage `json:"priceSeries"`
		Forecast    []json.RawMessage `json:"forecast"`
	}
	if err := json.Unmarshal(env.Data, &snap); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if snap.Overview.Code != "NEISO" {
		t.Fatalf("expected NEISO, got %s", snap.Overview.Code)
	}
	// Defaults: 24h/15m history, 12h/60m forecast.
	if len(snap.PriceSeries) != 97 {
		t.Fatalf("expected 97 history points, got %d", len(snap.PriceSeries))
	}
	if len(snap.Forecast) != 12 {
		t.Fatalf("expected 12 forecast points, got %d", len(snap.Forecast))
	}
}

func TestSnapshotEndpointUnknownMarket(t *testing.T) {
	e := newTestServer(t)
	env := doGet(t, e, "/api/markets/XXX/snapshot")
	if env.Status != http.StatusNotFound {
		t.Fatalf("expected envelope status 404, got %d", env.Status)
	}
}

func TestSnapshotEndpointValidation(t *testing.T) {
	e := newTestServer(t)
	env := doGet(t, e, "/api/markets/NEISO/snapshot?historyResolutionMinutes=4")
	if env.Status != http.StatusBadRequest {
		t.Fatalf("expected envelope status 400, got %d", env.Status)
	}
	var verrs []struct {
		Field string `json:"field"`
	}
	if err := json.Unmarshal(env.Data, &verrs); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(verrs) == 0 || verrs[0].Field != "historyResolutionMinutes" {
		t.Fatalf("expected validation error naming the query field, got %v", verrs)
	}
}

func TestSnapshotEndpointNotDivisible(t *testing.T) {
	e := newTestServer(t)
	env := doGet(t, e, "/api/markets/NEISO/snapshot?historyResolutionMinutes=35")
	if env.Status != http.StatusBadRequest {
		t.Fatalf("expected envelope status 400, got %d", env.Status)
	}
}

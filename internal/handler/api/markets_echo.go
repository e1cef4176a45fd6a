package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"GridPulse/internal/domain/models"
	"GridPulse/internal/domain/repository"
	icache "GridPulse/internal/service/cache"
	"GridPulse/internal/service/metrics"
	"GridPulse/internal/service/ratelimit"
	"GridPulse/internal/stream"
	"GridPulse/internal/usecase"
	xhttp "GridPulse/pkg/http"
	xlogger "GridPulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

// Overview responses change only when the synthesizer's minute bucket does,
// so rendered bytes can be reused briefly.
const overviewCacheTTL = 15 * time.Second

// MarketsHandler exposes the market intelligence API over Echo.
type MarketsHandler struct {
	logger *xlogger.Logger
	svc    *usecase.MarketData
	hub    *stream.Hub
	cache  icache.BytesCache
	clock  repository.Clock
	rl     *ratelimit.Limiter
}

func NewMarketsHandler(logger *xlogger.Logger, svc *usecase.MarketData, hub *stream.Hub, clock repository.Clock) *MarketsHandler {
	metrics.Register()
	return &MarketsHandler{logger: logger, svc: svc, hub: hub, clock: clock, rl: ratelimit.New()}
}

// SetCache injects a response-byte cache for the overview endpoint.
func (h *MarketsHandler) SetCache(c icache.BytesCache) { h.cache = c }

func (h *MarketsHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/markets")
	g.GET("/catalog", h.Catalog)
	g.GET("/overview", h.Overview)
	g.GET("/:marketCode/snapshot", h.Snapshot)
	if h.hub != nil {
		e.GET("/ws/markets", h.hub.HandleWS)
	}
}

func (h *MarketsHandler) Catalog(c echo.Context) error {
	defer h.observe("catalog", time.Now())
	rows := h.svc.Catalog()
	return xhttp.ListResponse(c, rows, int64(len(rows)))
}

func (h *MarketsHandler) Overview(c echo.Context) error {
	defer h.observe("overview", time.Now())

	// Cache key embeds the clock's minute bucket: a hit can never cross a
	// generation boundary.
	cacheKey := fmt.Sprintf("overview:%d", h.clock.Now().Unix()/60)
	if h.cache != nil {
		if b, ok, err := h.cache.GetBytes(cacheKey); err != nil {
			h.logger.Warn("overview cache_get_error", xlogger.Error(err))
		} else if ok {
			return xhttp.SuccessResponse(c, json.RawMessage(b))
		}
	}

	rows, err := h.svc.Overviews()
	if err != nil {
		metrics.EndpointErrors.WithLabelValues("overview").Inc()
		h.logger.Error("overview usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}

	if h.cache != nil {
		if b, err := json.Marshal(rows); err == nil {
			if err := h.cache.SetBytes(cacheKey, b, overviewCacheTTL); err != nil {
				h.logger.Warn("overview cache_set_error", xlogger.Error(err))
			}
		}
	}
	return xhttp.SuccessResponse(c, rows)
}

func (h *MarketsHandler) Snapshot(c echo.Context) error {
	defer h.observe("snapshot", time.Now())

	req := &models.SnapshotRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	if !h.rl.Allow(c.RealIP()+":snapshot", 10, 5) {
		h.logger.Warn("snapshot rate_limited", xlogger.String("remote", c.RealIP()))
		return xhttp.DataResponse(c, 429, "rate limited")
	}

	snap, err := h.svc.Snapshot(
		req.MarketCode,
		req.HistoryHours,
		req.HistoryResolutionMinutes,
		req.ForecastHours,
		req.ForecastResolutionMinutes,
	)
	if err != nil {
		metrics.EndpointErrors.WithLabelValues("snapshot").Inc()
		return xhttp.AppErrorResponse(c, translateDomainError(err))
	}
	return xhttp.SuccessResponse(c, snap)
}

func (h *MarketsHandler) observe(endpoint string, start time.Time) {
	metrics.EndpointLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}

// translateDomainError maps domain error types onto transport errors. The
// core has no notion of HTTP status; the mapping lives here.
func translateDomainError(err error) error {
	var nf *models.MarketNotFoundError
	if errors.As(err, &nf) {
		return xhttp.NotFoundError(err.Error()).WithParam("code", nf.Code).WithError(err)
	}
	var ip *models.InvalidParameterError
	if errors.As(err, &ip) {
		return xhttp.BadRequestError(ip.Field, err.Error()).WithParam("constraint", ip.Constraint).WithError(err)
	}
	return xhttp.InternalError("snapshot generation failed").WithError(err)
}

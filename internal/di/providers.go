package di

import (
	"fmt"
	"strings"

	"GridPulse/internal/catalog"
	"GridPulse/internal/domain/models"
	"GridPulse/internal/domain/repository"
	"GridPulse/internal/handler/api"
	icache "GridPulse/internal/service/cache"
	"GridPulse/internal/service/sim"
	"GridPulse/internal/stream"
	"GridPulse/internal/usecase"
	"GridPulse/pkg/config"
	xhttp "GridPulse/pkg/http"
	applogger "GridPulse/pkg/logger"
	"GridPulse/pkg/metrics"
	"GridPulse/pkg/server"
)

// ProvideLogger creates the structured logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideClock supplies the wall-clock time source.
func ProvideClock() repository.Clock {
	return repository.SystemClock{}
}

// ProvideCatalog builds the market catalog with resolved timezones.
func ProvideCatalog() (*catalog.Catalog, error) {
	cat, err := catalog.New()
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	return cat, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideMarketData creates the market data use case.
func ProvideMarketData(clock repository.Clock, cat *catalog.Catalog, m repository.Metrics) *usecase.MarketData {
	return usecase.NewMarketData(clock, cat, m)
}

// ProvideCache selects the response cache backend; nil disables caching.
func ProvideCache(cfg *config.Config) icache.BytesCache {
	switch cfg.Cache.Backend {
	case "redis":
		return icache.NewRedisCache(icache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		})
	case "memory":
		return icache.NewTTLCache()
	default: // none
		return nil
	}
}

// ProvideSimulator creates the random-walk simulator for the stream.
func ProvideSimulator(cfg *config.Config) *sim.Simulator {
	simCfg := sim.Config{PriceVolatility: cfg.Sim.PriceVolatility}
	if len(cfg.Sim.BasePrices) > 0 {
		simCfg.BasePrices = make(map[models.EnergyType]float64, len(cfg.Sim.BasePrices))
		for name, base := range cfg.Sim.BasePrices {
			simCfg.BasePrices[models.EnergyType(strings.ToUpper(name))] = base
		}
	}
	return sim.New(simCfg)
}

// ProvideHub creates the WebSocket hub.
func ProvideHub(l *applogger.Logger) *stream.Hub {
	return stream.NewHub(l)
}

// ProvideBroadcaster creates the streaming loop; nil when streaming is off.
func ProvideBroadcaster(cfg *config.Config, hub *stream.Hub, simulator *sim.Simulator, l *applogger.Logger) *stream.Broadcaster {
	if !cfg.Stream.Enabled {
		return nil
	}
	return stream.NewBroadcaster(hub, simulator, cfg.Stream.UpdateInterval, l)
}

// ProvideHandler creates the Echo route handler for the market API.
func ProvideHandler(
	l *applogger.Logger,
	svc *usecase.MarketData,
	hub *stream.Hub,
	clock repository.Clock,
	cache icache.BytesCache,
) xhttp.Handler {
	h := api.NewMarketsHandler(l, svc, hub, clock)
	if cache != nil {
		h.SetCache(cache)
	}
	return h
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	l *applogger.Logger,
	handler xhttp.Handler,
	hub *stream.Hub,
	broadcaster *stream.Broadcaster,
) *server.App {
	return server.New(cfg, l, handler, hub, broadcaster)
}

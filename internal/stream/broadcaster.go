package stream

import (
	"context"
	"time"

	"GridPulse/internal/service/sim"
	applogger "GridPulse/pkg/logger"
)

const (
	// Topics match what the dashboard subscribes to.
	TopicEnergyPrices = "energy-prices"
	TopicMarketStats  = "market-stats"
)

// Broadcaster drives the legacy simulator on a fixed cadence and pushes the
// resulting ticks to the hub. Stats are offset by half an interval to spread
// the load.
type Broadcaster struct {
	hub      *Hub
	sim      *sim.Simulator
	interval time.Duration
	logger   *applogger.Logger
	cancel   context.CancelFunc
	done     chan struct{}
}

func NewBroadcaster(hub *Hub, simulator *sim.Simulator, interval time.Duration, l *applogger.Logger) *Broadcaster {
	if interval <= 0 {
		interval = time.Second
	}
	return &Broadcaster{hub: hub, sim: simulator, interval: interval, logger: l}
}

// Start launches the broadcast loops until Stop or context cancellation.
func (b *Broadcaster) Start(ctx context.Context) {
	ctx, b.cancel = context.WithCancel(ctx)
	b.done = make(chan struct{})
	if b.logger != nil {
		b.logger.Info("streaming started", applogger.Duration("interval_ms", b.interval))
	}

	go func() {
		defer close(b.done)

		prices := time.NewTicker(b.interval)
		defer prices.Stop()

		// Half-interval offset before the stats loop starts.
		statsDelay := time.NewTimer(b.interval / 2)
		defer statsDelay.Stop()
		var stats *time.Ticker
		var statsC <-chan time.Time

		for {
			select {
			case <-ctx.Done():
				if stats != nil {
					stats.Stop()
				}
				return
			case <-prices.C:
				b.hub.Broadcast(TopicEnergyPrices, b.sim.NextPrices())
			case <-statsDelay.C:
				stats = time.NewTicker(b.interval)
				statsC = stats.C
				b.hub.Broadcast(TopicMarketStats, b.sim.Stats())
			case <-statsC:
				b.hub.Broadcast(TopicMarketStats, b.sim.Stats())
			}
		}
	}()
}

// Stop halts the broadcast loops and waits for them to finish.
func (b *Broadcaster) Stop() {
	if b.cancel != nil {
		b.cancel()
	}
	if b.done != nil {
		<-b.done
	}
	if b.logger != nil {
		b.logger.Info("streaming stopped")
	}
}

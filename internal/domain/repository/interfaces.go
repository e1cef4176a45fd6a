package repository

import "time"

// Clock supplies the current instant. Injected so every snapshot is a pure
// function of (market, clock reading, requested durations) and reproducible
// in tests. Read it exactly once per logical request.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant. Test helper.
type FixedClock struct {
	Instant time.Time
}

func (c FixedClock) Now() time.Time { return c.Instant }

// Metrics records domain-level measurements.
type Metrics interface {
	RecordSnapshot(market string)
	RecordLastPrice(market string, price float64)
	RecordLatency(op string, seconds float64)
	RecordError(kind string)
}

// NoopMetrics discards all measurements. Test helper.
type NoopMetrics struct{}

func (NoopMetrics) RecordSnapshot(string)           {}
func (NoopMetrics) RecordLastPrice(string, float64) {}
func (NoopMetrics) RecordLatency(string, float64)   {}
func (NoopMetrics) RecordError(string)              {}

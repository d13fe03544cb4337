// Package application holds the info module use cases.
package application

import "time"

// LatencySource reports the gateway heartbeat round trip.
type LatencySource interface {
	HeartbeatLatency() time.Duration
}

// PingResult is the measured latency.
type PingResult struct {
	Latency time.Duration
}

// Milliseconds returns the latency rounded to whole milliseconds.
func (r PingResult) Milliseconds() int64 {
	return r.Latency.Round(time.Millisecond).Milliseconds()
}

// PingInteractor handles the ping use case.
type PingInteractor struct {
	source LatencySource
}

// NewPingInteractor creates a new PingInteractor.
func NewPingInteractor(source LatencySource) *PingInteractor {
	return &PingInteractor{source: source}
}

// Execute reads the current latency.
func (p *PingInteractor) Execute() PingResult {
	return PingResult{Latency: p.source.HeartbeatLatency()}
}

package handler

import "sync/atomic"

// Stats tracks sink statistics
type Stats struct {
	processed atomic.Uint64
	failed    atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementProcessed atomically increments the processed counter
func (s *Stats) IncrementProcessed() {
	s.processed.Add(1)
}

// IncrementFailed atomically increments the failed write counter
func (s *Stats) IncrementFailed() {
	s.failed.Add(1)
}

// GetProcessed returns the processed count
func (s *Stats) GetProcessed() uint64 {
	return s.processed.Load()
}

// GetFailed returns the failed write count
func (s *Stats) GetFailed() uint64 {
	return s.failed.Load()
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	s.processed.Store(0)
	s.failed.Store(0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	ProcessedTotal uint64
	FailedTotal    uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		ProcessedTotal: s.GetProcessed(),
		FailedTotal:    s.GetFailed(),
	}
}

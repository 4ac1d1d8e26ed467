// internal/pkg/metrics/metrics.go
package metrics

import (
	"sync"
	"time"
)

// Service tracks in-process request and error counters. It is an explicit
// injected dependency with a defined lifecycle: constructed at startup,
// cleaned up on a timer, stopped at shutdown.
type Service struct {
	mu sync.Mutex

	startedAt     time.Time
	totalRequests int64
	totalErrors   int64
	statusCounts  map[int]int64
	latencySum    time.Duration

	windowStart    time.Time
	windowRequests int64
	windowErrors   int64

	stop chan struct{}
	once sync.Once
}

// Snapshot is a point-in-time view of the counters
type Snapshot struct {
	UptimeSeconds   float64       `json:"uptimeSeconds"`
	TotalRequests   int64         `json:"totalRequests"`
	TotalErrors     int64         `json:"totalErrors"`
	StatusCounts    map[int]int64 `json:"statusCounts"`
	AvgLatencyMs    float64       `json:"avgLatencyMs"`
	WindowStart     time.Time     `json:"windowStart"`
	WindowRequests  int64         `json:"windowRequests"`
	WindowErrors    int64         `json:"windowErrors"`
}

// NewService creates a metrics service
func NewService() *Service {
	now := time.Now().UTC()
	return &Service{
		startedAt:    now,
		windowStart:  now,
		statusCounts: make(map[int]int64),
		stop:         make(chan struct{}),
	}
}

// Record registers one handled request
func (s *Service) Record(status int, latency time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.totalRequests++
	s.windowRequests++
	s.statusCounts[status]++
	s.latencySum += latency

	if status >= 500 {
		s.totalErrors++
		s.windowErrors++
	}
}

// Snapshot returns the current counters
func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[int]int64, len(s.statusCounts))
	for k, v := range s.statusCounts {
		counts[k] = v
	}

	var avgLatency float64
	if s.totalRequests > 0 {
		avgLatency = float64(s.latencySum.Milliseconds()) / float64(s.totalRequests)
	}

	return Snapshot{
		UptimeSeconds:  time.Since(s.startedAt).Seconds(),
		TotalRequests:  s.totalRequests,
		TotalErrors:    s.totalErrors,
		StatusCounts:   counts,
		AvgLatencyMs:   avgLatency,
		WindowStart:    s.windowStart,
		WindowRequests: s.windowRequests,
		WindowErrors:   s.windowErrors,
	}
}

// StartCleanup resets the rolling window on the given interval until Stop
// is called.
func (s *Service) StartCleanup(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.mu.Lock()
				s.windowStart = time.Now().UTC()
				s.windowRequests = 0
				s.windowErrors = 0
				s.mu.Unlock()
			case <-s.stop:
				return
			}
		}
	}()
}

// Stop halts the cleanup loop
func (s *Service) Stop() {
	s.once.Do(func() { close(s.stop) })
}

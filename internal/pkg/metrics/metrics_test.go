// internal/pkg/metrics/metrics_test.go
package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecordAndSnapshot(t *testing.T) {
	svc := NewService()
	defer svc.Stop()

	svc.Record(200, 10*time.Millisecond)
	svc.Record(404, 20*time.Millisecond)
	svc.Record(500, 30*time.Millisecond)

	snap := svc.Snapshot()

	assert.Equal(t, int64(3), snap.TotalRequests)
	assert.Equal(t, int64(1), snap.TotalErrors)
	assert.Equal(t, int64(1), snap.StatusCounts[200])
	assert.Equal(t, int64(1), snap.StatusCounts[404])
	assert.Equal(t, int64(1), snap.StatusCounts[500])
	assert.InDelta(t, 20.0, snap.AvgLatencyMs, 0.01)
}

func TestClientErrorsAreNotCounted(t *testing.T) {
	svc := NewService()
	defer svc.Stop()

	svc.Record(400, time.Millisecond)
	svc.Record(429, time.Millisecond)

	assert.Equal(t, int64(0), svc.Snapshot().TotalErrors)
}

func TestRecordIsConcurrencySafe(t *testing.T) {
	svc := NewService()
	defer svc.Stop()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				svc.Record(200, time.Millisecond)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(5000), svc.Snapshot().TotalRequests)
}

func TestStopIsIdempotent(t *testing.T) {
	svc := NewService()
	svc.StartCleanup(time.Minute)

	svc.Stop()
	svc.Stop()
}

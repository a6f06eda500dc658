package fetcher

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunAllPreservesInputOrder(t *testing.T) {
	tasks := make([]func() (int, error), 20)
	for i := range tasks {
		i := i
		tasks[i] = func() (int, error) {
			// Reverse the natural completion order.
			time.Sleep(time.Duration(len(tasks)-i) * time.Millisecond)
			return i * 10, nil
		}
	}

	results := RunAll(context.Background(), tasks, 20)
	require.Len(t, results, 20)
	for i, v := range results {
		assert.Equal(t, i*10, v)
	}
}

func TestRunAllFailureLeavesZeroSlot(t *testing.T) {
	tasks := []func() (string, error){
		func() (string, error) { return "a", nil },
		func() (string, error) { return "", errors.New("boom") },
		func() (string, error) { return "c", nil },
	}

	results := RunAll(context.Background(), tasks, 2)
	assert.Equal(t, []string{"a", "", "c"}, results)
}

func TestRunAllBoundsConcurrency(t *testing.T) {
	const concurrency = 3
	var inFlight, peak atomic.Int32
	var mu sync.Mutex

	tasks := make([]func() (int, error), 12)
	for i := range tasks {
		tasks[i] = func() (int, error) {
			n := inFlight.Add(1)
			mu.Lock()
			if n > peak.Load() {
				peak.Store(n)
			}
			mu.Unlock()
			time.Sleep(20 * time.Millisecond)
			inFlight.Add(-1)
			return 1, nil
		}
	}

	start := time.Now()
	RunAll(context.Background(), tasks, concurrency)
	elapsed := time.Since(start)

	assert.LessOrEqual(t, peak.Load(), int32(concurrency))
	// 12 tasks at 20ms and concurrency 3 need ~4 waves, far less than serial.
	assert.Less(t, elapsed, 12*20*time.Millisecond)
	assert.GreaterOrEqual(t, elapsed, 4*20*time.Millisecond)
}

func TestRunAllEmptyAndClampedConcurrency(t *testing.T) {
	assert.Empty(t, RunAll[int](context.Background(), nil, 5))

	tasks := []func() (int, error){func() (int, error) { return 9, nil }}
	assert.Equal(t, []int{9}, RunAll(context.Background(), tasks, 0))
}

func TestCircuitOpensAtThreshold(t *testing.T) {
	f := New(WithFailureThreshold(3), WithCooldown(time.Minute))
	now := time.Now()
	f.now = func() time.Time { return now }

	f.RecordFailure()
	f.RecordFailure()
	assert.False(t, f.ShouldSkip(), "below threshold")

	f.RecordFailure()
	assert.True(t, f.ShouldSkip(), "at threshold within cooldown")
}

func TestCircuitClosesAfterCooldown(t *testing.T) {
	f := New(WithFailureThreshold(2), WithCooldown(30*time.Second))
	now := time.Now()
	f.now = func() time.Time { return now }

	f.RecordFailure()
	f.RecordFailure()
	require.True(t, f.ShouldSkip())

	// Cooldown elapses: full traffic resumes, no half-open probe.
	now = now.Add(31 * time.Second)
	assert.False(t, f.ShouldSkip())

	// Counter was never reset, so one fresh failure re-opens immediately.
	f.RecordFailure()
	assert.True(t, f.ShouldSkip())
}

func TestSuccessDoesNotCoolCircuit(t *testing.T) {
	f := New(WithFailureThreshold(2), WithCooldown(time.Minute))
	now := time.Now()
	f.now = func() time.Time { return now }

	f.RecordFailure()
	f.RecordFailure()
	f.RecordSuccess(10 * time.Millisecond)
	assert.True(t, f.ShouldSkip(), "success must not reset the breaker")

	f.Reset()
	assert.False(t, f.ShouldSkip())
	assert.Equal(t, 0, f.Metrics().FailureCount)
}

func TestMetricsRollingWindow(t *testing.T) {
	f := New(WithMaxSamples(4))

	for i := 1; i <= 3; i++ {
		f.RecordSuccess(time.Duration(i*10) * time.Millisecond)
	}
	m := f.Metrics()
	assert.Equal(t, 3, m.TotalSamples)
	assert.InDelta(t, 20.0, m.AvgLatencyMs, 0.01)

	// Overflow the ring: oldest samples are overwritten.
	for i := 0; i < 4; i++ {
		f.RecordSuccess(100 * time.Millisecond)
	}
	m = f.Metrics()
	assert.Equal(t, 4, m.TotalSamples)
	assert.InDelta(t, 100.0, m.AvgLatencyMs, 0.01)
	assert.False(t, m.CircuitOpen)
}

func TestMetricsSnapshotUnderConcurrency(t *testing.T) {
	f := New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if (i+j)%5 == 0 {
					f.RecordFailure()
				} else {
					f.RecordSuccess(time.Duration(j) * time.Millisecond)
				}
				_ = f.Metrics()
				_ = f.ShouldSkip()
			}
		}(i)
	}
	wg.Wait()

	m := f.Metrics()
	assert.Equal(t, 80, m.FailureCount)
	assert.Equal(t, DefaultMaxSamples, m.TotalSamples)
}

func ExampleRunAll() {
	tasks := []func() (string, error){
		func() (string, error) { return "first", nil },
		func() (string, error) { return "second", nil },
	}
	results := RunAll(context.Background(), tasks, 2)
	fmt.Println(results[0], results[1])
	// Output: first second
}

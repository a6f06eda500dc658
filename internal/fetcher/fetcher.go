// Package fetcher bounds concurrent upstream calls, records rolling latency
// samples, and refuses new calls while the circuit breaker is open.
package fetcher

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

const (
	// DefaultMaxSamples is the size of the rolling latency window.
	DefaultMaxSamples = 100

	// DefaultFailureThreshold opens the circuit after this many recorded
	// failures inside the cooldown window.
	DefaultFailureThreshold = 5

	// DefaultCooldown is how long the circuit stays open after the most
	// recent failure.
	DefaultCooldown = 30 * time.Second
)

// Metrics is a read-only snapshot of fetcher state, used for observability
// only, never for control flow.
type Metrics struct {
	AvgLatencyMs float64 `json:"avg_latency_ms"`
	TotalSamples int     `json:"total_samples"`
	FailureCount int     `json:"failure_count"`
	CircuitOpen  bool    `json:"circuit_open"`
}

// Fetcher tracks upstream call health. The failure counter only grows; the
// circuit closes implicitly once the last failure falls outside the cooldown
// window (there is no half-open probe state), and a single new failure
// while the counter is at or above the threshold re-opens it.
type Fetcher struct {
	mu            sync.Mutex
	latencies     []time.Duration // ring buffer, newest overwrites oldest
	next          int
	filled        bool
	failureCount  int
	lastFailureAt time.Time
	threshold     int
	cooldown      time.Duration
	maxSamples    int
	now           func() time.Time
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFailureThreshold sets the consecutive-failure count that opens the circuit.
func WithFailureThreshold(n int) Option {
	return func(f *Fetcher) {
		if n > 0 {
			f.threshold = n
		}
	}
}

// WithCooldown sets how long the circuit stays open after the last failure.
func WithCooldown(d time.Duration) Option {
	return func(f *Fetcher) {
		if d > 0 {
			f.cooldown = d
		}
	}
}

// WithMaxSamples sets the rolling latency window size.
func WithMaxSamples(n int) Option {
	return func(f *Fetcher) {
		if n > 0 {
			f.maxSamples = n
		}
	}
}

// New creates a Fetcher with default breaker and sampling settings.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		threshold:  DefaultFailureThreshold,
		cooldown:   DefaultCooldown,
		maxSamples: DefaultMaxSamples,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.latencies = make([]time.Duration, f.maxSamples)
	return f
}

// RecordSuccess adds a latency sample to the rolling window. It does not
// touch the failure counter; only cooldown expiry cools the breaker.
func (f *Fetcher) RecordSuccess(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.latencies[f.next] = d
	f.next++
	if f.next == f.maxSamples {
		f.next = 0
		f.filled = true
	}
}

// RecordFailure increments the failure counter and stamps the failure time.
func (f *Fetcher) RecordFailure() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failureCount++
	f.lastFailureAt = f.now()
}

// ShouldSkip reports whether the circuit is open: the failure count has
// reached the threshold and the last failure is still within the cooldown
// window.
func (f *Fetcher) ShouldSkip() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.circuitOpenLocked()
}

func (f *Fetcher) circuitOpenLocked() bool {
	return f.failureCount >= f.threshold &&
		!f.lastFailureAt.IsZero() &&
		f.now().Sub(f.lastFailureAt) < f.cooldown
}

// Reset clears the failure counter and timestamp. Test hook only; production
// recovery relies on cooldown expiry.
func (f *Fetcher) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failureCount = 0
	f.lastFailureAt = time.Time{}
}

// Metrics returns a snapshot of latency and breaker state.
func (f *Fetcher) Metrics() Metrics {
	f.mu.Lock()
	defer f.mu.Unlock()

	count := f.next
	if f.filled {
		count = f.maxSamples
	}
	var total time.Duration
	for i := 0; i < count; i++ {
		total += f.latencies[i]
	}
	var avg float64
	if count > 0 {
		avg = float64(total.Milliseconds()) / float64(count)
	}

	return Metrics{
		AvgLatencyMs: avg,
		TotalSamples: count,
		FailureCount: f.failureCount,
		CircuitOpen:  f.circuitOpenLocked(),
	}
}

// RunAll executes tasks with at most concurrency in flight simultaneously.
// Workers pull from a shared index cursor, so tail latency is the slowest
// single task rather than the slowest per-chunk sum. The result slice is
// index-aligned with tasks regardless of completion order; a task error
// leaves the zero value in its slot and never aborts the batch. A cancelled
// context stops workers from picking up further tasks but does not interrupt
// tasks already running.
func RunAll[T any](ctx context.Context, tasks []func() (T, error), concurrency int) []T {
	results := make([]T, len(tasks))
	if len(tasks) == 0 {
		return results
	}
	if concurrency < 1 {
		concurrency = 1
	}
	if concurrency > len(tasks) {
		concurrency = len(tasks)
	}

	var cursor atomic.Int64
	var wg sync.WaitGroup
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				i := int(cursor.Add(1)) - 1
				if i >= len(tasks) {
					return
				}
				select {
				case <-ctx.Done():
					return
				default:
				}
				if v, err := tasks[i](); err == nil {
					results[i] = v
				}
			}
		}()
	}
	wg.Wait()
	return results
}

package readthrough

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/facebookgo/clock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type failingBackend struct {
	getErr error
	setErr error
	sets   int
}

func (f *failingBackend) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, f.getErr
}

func (f *failingBackend) Set(context.Context, string, []byte, time.Duration) error {
	f.sets++
	return f.setErr
}

func newTestCache(t *testing.T) (*Cache, *clock.Mock, *MemoryBackend) {
	t.Helper()
	mock := clock.NewMock()
	backend := NewMemoryBackend(mock)
	return New("test", backend, WithClock(mock)), mock, backend
}

func countingCompute(calls *int, value []item) func(context.Context) ([]item, error) {
	return func(context.Context) ([]item, error) {
		*calls++
		return value, nil
	}
}

func TestGetOrCompute_HitWithinTTL(t *testing.T) {
	c, _, _ := newTestCache(t)
	ctx := context.Background()

	calls := 0
	compute := countingCompute(&calls, []item{{ID: 1, Name: "Shoes"}})

	first, err := GetOrCompute(ctx, c, "all_categories_sorted", 3600*time.Second, compute)
	require.NoError(t, err)
	second, err := GetOrCompute(ctx, c, "all_categories_sorted", 3600*time.Second, compute)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, []item{{ID: 1, Name: "Shoes"}}, first)
	assert.Equal(t, first, second)
}

func TestGetOrCompute_Expiry(t *testing.T) {
	testCases := []struct {
		name          string
		advance       time.Duration
		expectedCalls int
	}{
		{name: "just_before_expiry", advance: 899 * time.Second, expectedCalls: 1},
		{name: "at_expiry", advance: 900 * time.Second, expectedCalls: 2},
		{name: "past_expiry", advance: time.Hour, expectedCalls: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, mock, _ := newTestCache(t)
			ctx := context.Background()

			calls := 0
			compute := countingCompute(&calls, []item{{ID: 7}})

			_, err := GetOrCompute(ctx, c, "latest_5_products", 900*time.Second, compute)
			require.NoError(t, err)

			mock.Add(tc.advance)

			_, err = GetOrCompute(ctx, c, "latest_5_products", 900*time.Second, compute)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedCalls, calls)
		})
	}
}

func TestGetOrCompute_RecomputeOverwritesEntry(t *testing.T) {
	c, mock, _ := newTestCache(t)
	ctx := context.Background()

	version := 0
	compute := func(context.Context) (int, error) {
		version++
		return version, nil
	}

	v, err := GetOrCompute(ctx, c, "k", time.Minute, compute)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	mock.Add(2 * time.Minute)
	v, err = GetOrCompute(ctx, c, "k", time.Minute, compute)
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	mock.Add(30 * time.Second)
	v, err = GetOrCompute(ctx, c, "k", time.Minute, compute)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestGetOrCompute_NonPositiveTTLNeverCaches(t *testing.T) {
	for _, ttl := range []time.Duration{0, -time.Second} {
		t.Run(ttl.String(), func(t *testing.T) {
			c, _, backend := newTestCache(t)
			ctx := context.Background()

			calls := 0
			compute := countingCompute(&calls, []item{{ID: 1}})

			for i := 0; i < 3; i++ {
				_, err := GetOrCompute(ctx, c, "k", ttl, compute)
				require.NoError(t, err)
			}

			assert.Equal(t, 3, calls)
			assert.Equal(t, 0, backend.Len())
		})
	}
}

func TestGetOrCompute_ComputeErrorNotCached(t *testing.T) {
	c, _, backend := newTestCache(t)
	ctx := context.Background()

	boom := errors.New("database down")
	calls := 0
	failing := func(context.Context) ([]item, error) {
		calls++
		return nil, boom
	}

	_, err := GetOrCompute(ctx, c, "k", time.Hour, failing)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, backend.Len())

	value, err := GetOrCompute(ctx, c, "k", time.Hour, countingCompute(&calls, []item{{ID: 2}}))
	require.NoError(t, err)
	assert.Equal(t, []item{{ID: 2}}, value)
	assert.Equal(t, 2, calls)
}

func TestGetOrCompute_BackendFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("get_error_propagates", func(t *testing.T) {
		backend := &failingBackend{getErr: errors.New("connection refused")}
		c := New("test", backend)

		calls := 0
		_, err := GetOrCompute(ctx, c, "k", time.Hour, countingCompute(&calls, nil))

		assert.ErrorIs(t, err, backend.getErr)
		assert.Equal(t, 0, calls)
	})

	t.Run("set_error_propagates", func(t *testing.T) {
		backend := &failingBackend{setErr: errors.New("read only replica")}
		c := New("test", backend)

		calls := 0
		_, err := GetOrCompute(ctx, c, "k", time.Hour, countingCompute(&calls, []item{{ID: 1}}))

		assert.ErrorIs(t, err, backend.setErr)
		assert.Equal(t, 1, calls)
		assert.Equal(t, 1, backend.sets)
	})
}

func TestGetOrCompute_CorruptEntryIsMiss(t *testing.T) {
	c, _, backend := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, backend.Set(ctx, "k", []byte("{not json"), time.Hour))

	calls := 0
	value, err := GetOrCompute(ctx, c, "k", time.Hour, countingCompute(&calls, []item{{ID: 3}}))
	require.NoError(t, err)
	assert.Equal(t, []item{{ID: 3}}, value)
	assert.Equal(t, 1, calls)

	_, err = GetOrCompute(ctx, c, "k", time.Hour, countingCompute(&calls, nil))
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestGetOrCompute_ConcurrentMissesComputeOnce(t *testing.T) {
	mock := clock.NewMock()
	metrics := NewMetrics(prometheus.NewRegistry())
	c := New("test", NewMemoryBackend(mock), WithClock(mock), WithMetrics(metrics))
	ctx := context.Background()

	var calls atomic.Int32
	release := make(chan struct{})
	compute := func(context.Context) ([]item, error) {
		calls.Add(1)
		<-release
		return []item{{ID: 9}}, nil
	}

	const workers = 16
	var started, done sync.WaitGroup
	started.Add(workers)
	done.Add(workers)

	results := make([][]item, workers)
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer done.Done()
			started.Done()
			results[i], errs[i] = GetOrCompute(ctx, c, "k", time.Hour, compute)
		}(i)
	}

	started.Wait()
	close(release)
	done.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, []item{{ID: 9}}, results[i])
	}
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.requests.WithLabelValues("test", resultMiss)))
	assert.Equal(t, float64(workers-1), testutil.ToFloat64(metrics.requests.WithLabelValues("test", resultHit)))
}

func TestGetOrCompute_FlightOutlivesCanceledCaller(t *testing.T) {
	c, _, _ := newTestCache(t)

	ctx, cancel := context.WithCancel(context.Background())
	entered := make(chan struct{})
	release := make(chan struct{})
	compute := func(ctx context.Context) ([]item, error) {
		close(entered)
		<-release
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return []item{{ID: 4}}, nil
	}

	type result struct {
		value []item
		err   error
	}
	out := make(chan result, 1)
	go func() {
		value, err := GetOrCompute(ctx, c, "k", time.Hour, compute)
		out <- result{value, err}
	}()

	<-entered
	cancel()
	close(release)

	res := <-out
	require.NoError(t, res.err)
	assert.Equal(t, []item{{ID: 4}}, res.value)

	calls := 0
	value, err := GetOrCompute(context.Background(), c, "k", time.Hour, countingCompute(&calls, nil))
	require.NoError(t, err)
	assert.Equal(t, []item{{ID: 4}}, value)
	assert.Equal(t, 0, calls)
}

// racingBackend reports a miss on the next Get, as if another flight stored
// the entry right after the caller looked it up.
type racingBackend struct {
	*MemoryBackend
	missNext bool
}

func (r *racingBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if r.missNext {
		r.missNext = false
		return nil, false, nil
	}
	return r.MemoryBackend.Get(ctx, key)
}

func TestGetOrCompute_EntryStoredBeforeFlightCountsAsHit(t *testing.T) {
	mock := clock.NewMock()
	metrics := NewMetrics(prometheus.NewRegistry())
	backend := &racingBackend{MemoryBackend: NewMemoryBackend(mock)}
	c := New("test", backend, WithClock(mock), WithMetrics(metrics))
	ctx := context.Background()

	calls := 0
	_, err := GetOrCompute(ctx, c, "k", time.Hour, countingCompute(&calls, []item{{ID: 1}}))
	require.NoError(t, err)

	backend.missNext = true
	value, err := GetOrCompute(ctx, c, "k", time.Hour, countingCompute(&calls, []item{{ID: 2}}))
	require.NoError(t, err)

	assert.Equal(t, []item{{ID: 1}}, value)
	assert.Equal(t, 1, calls)
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.requests.WithLabelValues("test", resultMiss)))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.requests.WithLabelValues("test", resultHit)))
}

func TestGetOrCompute_Metrics(t *testing.T) {
	mock := clock.NewMock()
	registry := prometheus.NewRegistry()
	metrics := NewMetrics(registry)
	c := New("categories", NewMemoryBackend(mock), WithClock(mock), WithMetrics(metrics))
	ctx := context.Background()

	calls := 0
	compute := countingCompute(&calls, []item{{ID: 1}})

	for i := 0; i < 3; i++ {
		_, err := GetOrCompute(ctx, c, "k", time.Hour, compute)
		require.NoError(t, err)
	}
	_, err := GetOrCompute(ctx, c, "k", 0, compute)
	require.NoError(t, err)

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.requests.WithLabelValues("categories", resultMiss)))
	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.requests.WithLabelValues("categories", resultHit)))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.requests.WithLabelValues("categories", resultBypass)))
}

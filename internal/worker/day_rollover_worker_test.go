package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/degenfarm/internal/event"
	"github.com/osse101/degenfarm/internal/testing/leaktest"
)

// MockReconciler for testing
type MockReconciler struct {
	mock.Mock
}

func (m *MockReconciler) ReconcileAll(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockBus for testing
type MockBus struct {
	mock.Mock
}

func (m *MockBus) Publish(ctx context.Context, e event.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockBus) Subscribe(eventType event.Type, handler event.Handler) {
	m.Called(eventType, handler)
}

func TestTimeUntilNextRollover(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*60*60)
	tests := []struct {
		name string
		now  time.Time
		want time.Duration
	}{
		{"early morning", time.Date(2026, 2, 2, 1, 0, 0, 0, loc), 23 * time.Hour},
		{"one minute to midnight", time.Date(2026, 2, 2, 23, 59, 0, 0, loc), time.Minute},
		{"exactly midnight waits a full day", time.Date(2026, 2, 2, 0, 0, 0, 0, loc), 24 * time.Hour},
		{"instant given in another zone", time.Date(2026, 2, 2, 16, 30, 0, 0, time.UTC), 30 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, timeUntilNextRollover(tt.now, loc))
		})
	}
}

func TestDayRolloverWorker_RunNow(t *testing.T) {
	rec := new(MockReconciler)
	bus := new(MockBus)
	rec.On("ReconcileAll", mock.Anything).Return(3, nil)
	bus.On("Publish", mock.Anything, mock.MatchedBy(func(e event.Event) bool {
		p, ok := e.Payload.(event.DayRolloverPayloadV1)
		return e.Type == event.DayRolloverRan && ok && p.Reconciled == 3
	})).Return(nil)

	w := NewDayRolloverWorker(rec, bus, time.UTC)
	n, err := w.RunNow(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, n)
	rec.AssertExpectations(t)
	bus.AssertExpectations(t)
}

func TestDayRolloverWorker_RunNowFailure(t *testing.T) {
	rec := new(MockReconciler)
	bus := new(MockBus)
	rec.On("ReconcileAll", mock.Anything).Return(0, errors.New("boom"))

	w := NewDayRolloverWorker(rec, bus, time.UTC)
	_, err := w.RunNow(context.Background())

	assert.Error(t, err)
	bus.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestDayRolloverWorker_NilBus(t *testing.T) {
	rec := new(MockReconciler)
	rec.On("ReconcileAll", mock.Anything).Return(1, nil)

	n, err := NewDayRolloverWorker(rec, nil, nil).RunNow(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestDayRolloverWorker_StartShutdown(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)
	rec := new(MockReconciler)
	w := NewDayRolloverWorker(rec, nil, time.UTC)
	w.Start()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.NoError(t, w.Shutdown(ctx))
	assert.NoError(t, w.Shutdown(ctx), "second shutdown is a no-op")
	rec.AssertNotCalled(t, "ReconcileAll", mock.Anything)
	checker.Check(0)
}

func TestDayRolloverWorker_FiresAtMidnight(t *testing.T) {
	rec := new(MockReconciler)
	done := make(chan struct{})
	rec.On("ReconcileAll", mock.Anything).Return(2, nil).Run(func(mock.Arguments) {
		close(done)
	}).Once()

	w := NewDayRolloverWorker(rec, nil, time.UTC)
	// 50ms before midnight on the first schedule, then well past it.
	start := time.Now()
	w.now = func() time.Time {
		if time.Since(start) < 40*time.Millisecond {
			return time.Date(2026, 2, 2, 23, 59, 59, 950_000_000, time.UTC).Add(time.Since(start))
		}
		return time.Date(2026, 2, 3, 0, 0, 0, 10_000_000, time.UTC).Add(time.Since(start))
	}
	w.Start()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("rollover did not fire")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, w.Shutdown(ctx))
	rec.AssertExpectations(t)
}

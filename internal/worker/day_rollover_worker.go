package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/degenfarm/internal/event"
	"github.com/osse101/degenfarm/internal/logger"
)

// Reconciler brings every loaded player up to the current calendar day
type Reconciler interface {
	ReconcileAll(ctx context.Context) (int, error)
}

// DayRolloverWorker runs streak reconciliation at local midnight so loaded
// sessions see a new day without waiting for their next action.
type DayRolloverWorker struct {
	reconciler Reconciler
	bus        event.Bus
	loc        *time.Location
	now        func() time.Time

	timer    *time.Timer
	shutdown chan struct{}
	wg       sync.WaitGroup
	mu       sync.Mutex
}

// NewDayRolloverWorker creates a worker that fires at midnight in loc.
// bus may be nil.
func NewDayRolloverWorker(reconciler Reconciler, bus event.Bus, loc *time.Location) *DayRolloverWorker {
	if loc == nil {
		loc = time.Local
	}
	return &DayRolloverWorker{
		reconciler: reconciler,
		bus:        bus,
		loc:        loc,
		now:        time.Now,
		shutdown:   make(chan struct{}),
	}
}

// Start schedules the first rollover
func (w *DayRolloverWorker) Start() {
	w.scheduleNext()
}

func (w *DayRolloverWorker) scheduleNext() {
	w.mu.Lock()
	defer w.mu.Unlock()

	select {
	case <-w.shutdown:
		return
	default:
	}

	duration := timeUntilNextRollover(w.now(), w.loc)
	log := logger.FromContext(context.Background())

	if w.timer != nil {
		w.timer.Stop()
	}

	// Long waits are split so timer drift across suspend is corrected before midnight.
	if duration > RolloverStandbyThreshold {
		wait := duration - RolloverApproachLead
		w.timer = time.AfterFunc(wait, w.scheduleNext)
		log.Info(LogMsgRolloverStandby, "next_check_at", w.now().Add(wait))
		return
	}

	w.timer = time.AfterFunc(duration, func() {
		select {
		case <-w.shutdown:
			return
		default:
		}

		// Fired early: reschedule for the remainder.
		rem := timeUntilNextRollover(w.now(), w.loc)
		if rem > RolloverJitterTolerance && rem < 23*time.Hour {
			w.scheduleNext()
			return
		}

		w.execute()
		w.scheduleNext()
	})
	log.Info(LogMsgRolloverScheduled, "next_rollover_at", w.now().Add(duration))
}

// RunNow triggers a rollover immediately, outside the schedule
func (w *DayRolloverWorker) RunNow(ctx context.Context) (int, error) {
	logger.FromContext(ctx).Info(LogMsgRolloverManualTrigger)
	return w.reconcile(ctx)
}

func (w *DayRolloverWorker) execute() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		_, _ = w.reconcile(context.Background())
	}()
}

func (w *DayRolloverWorker) reconcile(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRolloverStarting)

	n, err := w.reconciler.ReconcileAll(ctx)
	if err != nil {
		log.Error(LogMsgRolloverFailed, "error", err)
		return n, err
	}
	log.Info(LogMsgRolloverCompleted, "players_reconciled", n)

	if w.bus != nil {
		if err := w.bus.Publish(ctx, event.NewDayRolloverEvent(w.now(), n)); err != nil {
			log.Warn(LogMsgRolloverPublishFailed, "error", err)
		}
	}
	return n, nil
}

// Shutdown cancels the pending timer and waits for an in-flight rollover
func (w *DayRolloverWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRolloverShuttingDown)

	w.mu.Lock()
	select {
	case <-w.shutdown:
	default:
		close(w.shutdown)
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgRolloverShutdownComplete)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgRolloverShutdownTimeout)
		return ctx.Err()
	}
}

// timeUntilNextRollover returns the duration from now until the next 00:00 in loc
func timeUntilNextRollover(now time.Time, loc *time.Location) time.Duration {
	local := now.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	if !next.After(local) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(local)
}

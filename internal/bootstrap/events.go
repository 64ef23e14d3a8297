package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/degenfarm/internal/event"
	"github.com/osse101/degenfarm/internal/logger"
	"github.com/osse101/degenfarm/internal/metrics"
)

// InitializeEventSystem creates the in-process event bus and registers the
// metrics collector and the event log on it.
func InitializeEventSystem() *event.MemoryBus {
	bus := event.NewMemoryBus()

	metrics.NewEventMetricsCollector().Register(bus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	for _, t := range event.AllTypes() {
		bus.Subscribe(t, logEvent)
	}

	slog.Info(LogMsgEventSystemInitialized, "event_types", len(event.AllTypes()))
	return bus
}

// logEvent writes every farm event to the structured log. Rejections and
// collaborator failures are warnings, the rest are debug noise.
func logEvent(ctx context.Context, evt event.Event) error {
	level := slog.LevelDebug
	switch evt.Type {
	case event.StorageDegraded, event.LeaderboardFailed:
		level = slog.LevelWarn
	case event.DayRolloverRan, event.PlayerRegistered:
		level = slog.LevelInfo
	}

	logger.FromContext(ctx).Log(ctx, level, LogMsgFarmEvent,
		"type", evt.Type,
		"version", evt.Version,
		"payload", evt.Payload)
	return nil
}

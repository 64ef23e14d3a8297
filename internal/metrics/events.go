package metrics

import (
	"context"

	"github.com/osse101/degenfarm/internal/domain"
	"github.com/osse101/degenfarm/internal/event"
	"github.com/osse101/degenfarm/internal/logger"
)

// EventMetricsCollector subscribes to farm events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all farm events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, t := range event.AllTypes() {
		bus.Subscribe(t, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.HarvestCollected:
		p, err := event.DecodePayload[event.HarvestCollectedPayloadV1](evt.Payload)
		if err != nil {
			return e.unexpected(ctx, evt, err)
		}
		HarvestsCollected.WithLabelValues(p.CharacterID).Inc()
		SeedsGained.Add(domain.Seeds(p.Gained).Float())

	case event.UpgradePurchased:
		p, err := event.DecodePayload[event.UpgradePurchasedPayloadV1](evt.Payload)
		if err != nil {
			return e.unexpected(ctx, evt, err)
		}
		UpgradesPurchased.WithLabelValues(p.UpgradeID).Inc()
		SeedsSpent.Add(float64(p.Cost))

	case event.ActionRejected:
		p, err := event.DecodePayload[event.ActionRejectedPayloadV1](evt.Payload)
		if err != nil {
			return e.unexpected(ctx, evt, err)
		}
		ActionsRejected.WithLabelValues(p.Action, p.Reason).Inc()

	case event.StreakBroken:
		StreaksBroken.Inc()

	case event.DayRolloverRan:
		DayRollovers.Inc()

	case event.LeaderboardFailed:
		LeaderboardSyncFailures.Inc()
	}

	return nil
}

func (e *EventMetricsCollector) unexpected(ctx context.Context, evt event.Event, err error) error {
	logger.FromContext(ctx).Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
	return nil
}

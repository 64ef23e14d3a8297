package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"
)

// EventSchemaVersion is stamped on every event built by this package.
const EventSchemaVersion = "1.0"

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version  string                 `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type                   `json:"type"`
	Payload  interface{}            `json:"payload"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// Farm event types
const (
	HarvestCollected  Type = "farm.harvest_collected"
	UpgradePurchased  Type = "farm.upgrade_purchased"
	ActionRejected    Type = "farm.action_rejected"
	PlayerRegistered  Type = "farm.player_registered"
	StreakBroken      Type = "farm.streak_broken"
	DayRolloverRan    Type = "farm.day_rollover"
	StorageDegraded   Type = "farm.storage_degraded"
	LeaderboardFailed Type = "farm.leaderboard_sync_failed"
)

// AllTypes lists every farm event type
func AllTypes() []Type {
	return []Type{
		HarvestCollected,
		UpgradePurchased,
		ActionRejected,
		PlayerRegistered,
		StreakBroken,
		DayRolloverRan,
		StorageDegraded,
		LeaderboardFailed,
	}
}

// HarvestCollectedPayloadV1 is the typed payload for harvest events
type HarvestCollectedPayloadV1 struct {
	Player        string  `json:"player"`
	CharacterID   string  `json:"character_id"`
	Gained        int64   `json:"gained_micro"`
	Multiplier    float64 `json:"multiplier"`
	StreakCount   int     `json:"streak_count"`
	HarvestNumber int     `json:"harvest_number"`
	Timestamp     int64   `json:"timestamp"`
}

// UpgradePurchasedPayloadV1 is the typed payload for purchase events
type UpgradePurchasedPayloadV1 struct {
	Player    string `json:"player"`
	UpgradeID string `json:"upgrade_id"`
	Cost      int64  `json:"cost"`
	Timestamp int64  `json:"timestamp"`
}

// ActionRejectedPayloadV1 is the typed payload for rejected actions
type ActionRejectedPayloadV1 struct {
	Player string `json:"player"`
	Action string `json:"action"`
	Reason string `json:"reason"`
}

// PlayerRegisteredPayloadV1 is the typed payload for registrations
type PlayerRegisteredPayloadV1 struct {
	Player      string `json:"player"`
	CharacterID string `json:"character_id"`
}

// StreakBrokenPayloadV1 is the typed payload for lost streaks
type StreakBrokenPayloadV1 struct {
	Player       string `json:"player"`
	StreakBefore int    `json:"streak_before"`
}

// DayRolloverPayloadV1 is the typed payload for day rollover runs
type DayRolloverPayloadV1 struct {
	RanAt      time.Time `json:"ran_at"`
	Reconciled int       `json:"reconciled"`
}

// FailurePayloadV1 is the typed payload for non-fatal collaborator failures
type FailurePayloadV1 struct {
	Player string `json:"player"`
	Error  string `json:"error"`
}

// NewHarvestCollectedEvent creates a harvest event
func NewHarvestCollectedEvent(p HarvestCollectedPayloadV1) Event {
	return Event{Version: EventSchemaVersion, Type: HarvestCollected, Payload: p}
}

// NewUpgradePurchasedEvent creates a purchase event
func NewUpgradePurchasedEvent(player, upgradeID string, cost int64, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    UpgradePurchased,
		Payload: UpgradePurchasedPayloadV1{
			Player:    player,
			UpgradeID: upgradeID,
			Cost:      cost,
			Timestamp: at.Unix(),
		},
	}
}

// NewActionRejectedEvent creates a rejection event
func NewActionRejectedEvent(player, action, reason string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ActionRejected,
		Payload: ActionRejectedPayloadV1{Player: player, Action: action, Reason: reason},
	}
}

// NewPlayerRegisteredEvent creates a registration event
func NewPlayerRegisteredEvent(player, characterID string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PlayerRegistered,
		Payload: PlayerRegisteredPayloadV1{Player: player, CharacterID: characterID},
	}
}

// NewStreakBrokenEvent creates a streak-lost event
func NewStreakBrokenEvent(player string, before int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    StreakBroken,
		Payload: StreakBrokenPayloadV1{Player: player, StreakBefore: before},
	}
}

// NewDayRolloverEvent creates a day rollover event
func NewDayRolloverEvent(ranAt time.Time, reconciled int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    DayRolloverRan,
		Payload: DayRolloverPayloadV1{RanAt: ranAt, Reconciled: reconciled},
	}
}

// NewFailureEvent creates a storage or leaderboard failure event
func NewFailureEvent(t Type, player string, err error) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    t,
		Payload: FailurePayloadV1{Player: player, Error: err.Error()},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers synchronously
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d handler(s) failed for %s: %w", len(errs), event.Type, errors.Join(errs...))
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// DecodePayload returns the payload as T. Events published in process carry
// T directly; anything else goes through a JSON round trip.
func DecodePayload[T any](input interface{}) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}

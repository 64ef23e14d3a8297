// Package engine orchestrates accrual, streaks, multipliers and upgrades
// over a single PlayerState. Every method is a pure transition: it takes a
// snapshot and returns a new one plus a description of what changed. The
// caller persists and syncs the result.
package engine

import (
	"fmt"
	"time"

	"github.com/osse101/degenfarm/internal/accrual"
	"github.com/osse101/degenfarm/internal/domain"
	"github.com/osse101/degenfarm/internal/multiplier"
	"github.com/osse101/degenfarm/internal/streak"
	"github.com/osse101/degenfarm/internal/upgrade"
)

// Engine applies progression rules. It holds no player state and is safe
// for concurrent use; callers serialize actions per player.
type Engine struct {
	catalog           *upgrade.Catalog
	loc               *time.Location
	baseCapacityHours float64
}

// Option configures an Engine.
type Option func(*Engine)

// WithLocation sets the time zone that defines calendar days for streaks.
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) {
		if loc != nil {
			e.loc = loc
		}
	}
}

// WithBaseCapacityHours caps pending accrual at this many hours of production
// (before storage upgrades). Zero disables the cap.
func WithBaseCapacityHours(hours float64) Option {
	return func(e *Engine) {
		if hours > 0 {
			e.baseCapacityHours = hours
		}
	}
}

// New creates an Engine over the given catalog.
func New(catalog *upgrade.Catalog, opts ...Option) *Engine {
	if catalog == nil {
		catalog = upgrade.DefaultCatalog()
	}
	e := &Engine{
		catalog: catalog,
		loc:     time.Local,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Location returns the calendar time zone.
func (e *Engine) Location() *time.Location {
	return e.loc
}

// Capacity returns the pending-accrual cap for the player and character.
func (e *Engine) Capacity(state domain.PlayerState, character domain.Character) domain.Seeds {
	infinite := character.Ability == domain.AbilityInfiniteCapacityAndDiscount
	return accrual.CapacityFor(character.BaseRatePerHour, e.baseCapacityHours, e.catalog.StorageFactor(state), infinite)
}

// ComputePending returns the seeds waiting to be collected at now. Read-only;
// safe to poll for display at any cadence.
func (e *Engine) ComputePending(state domain.PlayerState, character domain.Character, now time.Time) domain.Seeds {
	return accrual.ComputePending(now, state.LastCollectionAt, character.BaseRatePerHour, e.Capacity(state, character))
}

// CurrentBonus returns the multiplier a collection at now would apply.
// It projects the streak transition exactly as Collect does.
func (e *Engine) CurrentBonus(state domain.PlayerState, character domain.Character, now time.Time) multiplier.Breakdown {
	projected, _ := streak.Advance(state, streak.Today(now, e.loc))
	return multiplier.Resolve(character, projected.StreakCount, state.HarvestCount)
}

// CharacterSlots returns how many farmers the player's upgrades allow.
func (e *Engine) CharacterSlots(state domain.PlayerState) int {
	return e.catalog.CharacterSlots(state)
}

// StreakState reports the streak state as of now's calendar day.
func (e *Engine) StreakState(state domain.PlayerState, now time.Time) streak.State {
	current, _ := streak.Reconcile(state, streak.Today(now, e.loc))
	return streak.StateOf(current)
}

// CollectResult describes a completed collection.
type CollectResult struct {
	CollectedAt   time.Time            `json:"collected_at"`
	Pending       domain.Seeds         `json:"pending"`
	Multiplier    multiplier.Breakdown `json:"multiplier"`
	Gained        domain.Seeds         `json:"gained"`
	BalanceAfter  domain.Seeds         `json:"balance_after"`
	StreakBefore  int                  `json:"streak_before"`
	StreakAfter   int                  `json:"streak_after"`
	StreakBroken  bool                 `json:"streak_broken"`
	HarvestNumber int                  `json:"harvest_number"` // 1-indexed lifetime count including this one
}

// Collect converts pending accrual into balance and advances the streak and
// harvest counters. now is used for both the pending amount and the commit.
func (e *Engine) Collect(state domain.PlayerState, character domain.Character, now time.Time) (domain.PlayerState, CollectResult) {
	pending := e.ComputePending(state, character, now)
	harvestBefore := state.HarvestCount

	next, tr := streak.Advance(state.Clone(), streak.Today(now, e.loc))
	mult := multiplier.Resolve(character, next.StreakCount, harvestBefore)
	gained := pending.Scale(mult.Total)

	next.SeedsTotal += gained
	next.HarvestCount = harvestBefore + 1
	// Clock skew: never move the accrual origin backwards.
	if now.After(state.LastCollectionAt) {
		next.LastCollectionAt = now
	}

	return next, CollectResult{
		CollectedAt:   now,
		Pending:       pending,
		Multiplier:    mult,
		Gained:        gained,
		BalanceAfter:  next.SeedsTotal,
		StreakBefore:  tr.Before,
		StreakAfter:   tr.After,
		StreakBroken:  tr.Broken,
		HarvestNumber: next.HarvestCount,
	}
}

// PurchaseResult describes a completed purchase.
type PurchaseResult struct {
	UpgradeID    string       `json:"upgrade_id"`
	Cost         int64        `json:"cost"`
	BalanceAfter domain.Seeds `json:"balance_after"`
}

// PurchaseUpgrade buys upgradeID for the player. Any rejection returns the
// input state unchanged and an error wrapping domain.ErrValidationRejected.
func (e *Engine) PurchaseUpgrade(state domain.PlayerState, character domain.Character, upgradeID string) (domain.PlayerState, PurchaseResult, error) {
	u, ok := e.catalog.Get(upgradeID)
	if !ok {
		return state, PurchaseResult{}, fmt.Errorf("%w: %s", domain.ErrUpgradeNotFound, upgradeID)
	}

	next, cost, err := upgrade.Purchase(u, state, character)
	if err != nil {
		return state, PurchaseResult{}, err
	}

	return next, PurchaseResult{
		UpgradeID:    u.ID,
		Cost:         cost,
		BalanceAfter: next.SeedsTotal,
	}, nil
}

// Reconcile updates streak state for calendar days that passed without a
// collection. Run it when a snapshot is loaded and at day rollover.
func (e *Engine) Reconcile(state domain.PlayerState, now time.Time) (domain.PlayerState, bool) {
	return streak.Reconcile(state, streak.Today(now, e.loc))
}

// Listing is an upgrade with its price and status for one player.
type Listing struct {
	domain.Upgrade
	EffectiveCost int64                `json:"effective_cost"`
	Status        domain.UpgradeStatus `json:"status"`
}

// Listings returns the catalog annotated for the player.
func (e *Engine) Listings(state domain.PlayerState, character domain.Character) []Listing {
	all := e.catalog.All()
	out := make([]Listing, 0, len(all))
	for _, u := range all {
		out = append(out, Listing{
			Upgrade:       u,
			EffectiveCost: upgrade.EffectiveCost(u, character),
			Status:        upgrade.StatusOf(u, state, character),
		})
	}
	return out
}

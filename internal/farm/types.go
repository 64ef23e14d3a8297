package farm

import (
	"time"

	"github.com/osse101/degenfarm/internal/domain"
	"github.com/osse101/degenfarm/internal/engine"
	"github.com/osse101/degenfarm/internal/multiplier"
	"github.com/osse101/degenfarm/internal/streak"
)

// FarmView is a read-only snapshot of a player's farm at one instant.
type FarmView struct {
	Username       string               `json:"username"`
	Character      domain.Character     `json:"character"`
	Slots          int                  `json:"character_slots"`
	StreakState    streak.State         `json:"streak_state"`
	Balance        float64              `json:"balance"`
	Pending        float64              `json:"pending"`
	Capacity       *float64             `json:"capacity,omitempty"` // nil when unbounded
	FullAt         *time.Time           `json:"full_at,omitempty"`
	Bonus          multiplier.Breakdown `json:"bonus"`
	StreakCount    int                  `json:"streak_count"`
	CollectedToday bool                 `json:"collected_today"`
	HarvestCount   int                  `json:"harvest_count"`
	Purchased      []string             `json:"purchased"`
	AsOf           time.Time            `json:"as_of"`
	Notices        []string             `json:"notices,omitempty"`
}

// RegisterResult is returned for a new player.
type RegisterResult struct {
	Username  string           `json:"username"`
	Character domain.Character `json:"character"`
	CreatedAt time.Time        `json:"created_at"`
	Notices   []string         `json:"notices,omitempty"`
}

// CollectResult describes a collection in whole-seed units.
type CollectResult struct {
	Username      string               `json:"username"`
	Pending       float64              `json:"pending"`
	Gained        float64              `json:"gained"`
	Balance       float64              `json:"balance"`
	Multiplier    multiplier.Breakdown `json:"multiplier"`
	StreakBefore  int                  `json:"streak_before"`
	StreakAfter   int                  `json:"streak_after"`
	StreakBroken  bool                 `json:"streak_broken"`
	HarvestNumber int                  `json:"harvest_number"`
	CollectedAt   time.Time            `json:"collected_at"`
	Notices       []string             `json:"notices,omitempty"`
}

// PurchaseResult describes a completed purchase.
type PurchaseResult struct {
	Username  string   `json:"username"`
	UpgradeID string   `json:"upgrade_id"`
	Cost      int64    `json:"cost"`
	Balance   float64  `json:"balance"`
	Notices   []string `json:"notices,omitempty"`
}

// UpgradesView lists the catalog for one player.
type UpgradesView struct {
	Username string           `json:"username"`
	Balance  float64          `json:"balance"`
	Upgrades []engine.Listing `json:"upgrades"`
	Notices  []string         `json:"notices,omitempty"`
}

func newCollectResult(username string, r engine.CollectResult) *CollectResult {
	return &CollectResult{
		Username:      username,
		Pending:       r.Pending.Float(),
		Gained:        r.Gained.Float(),
		Balance:       r.BalanceAfter.Float(),
		Multiplier:    r.Multiplier,
		StreakBefore:  r.StreakBefore,
		StreakAfter:   r.StreakAfter,
		StreakBroken:  r.StreakBroken,
		HarvestNumber: r.HarvestNumber,
		CollectedAt:   r.CollectedAt,
	}
}

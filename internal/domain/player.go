package domain

import (
	"slices"
	"time"

	"github.com/golang-sql/civil"
)

// PlayerState is the full progression snapshot of one player.
// Only the engine's transition functions produce new values; stores
// read and write whole snapshots.
type PlayerState struct {
	SeedsTotal        Seeds           `json:"seeds_total"`
	LastCollectionAt  time.Time       `json:"last_collection_at"`
	StreakCount       int             `json:"streak_count"`
	LastStreakDate    civil.Date      `json:"last_streak_date"` // zero value means unset
	CollectedToday    bool            `json:"collected_today"`
	HarvestCount      int             `json:"harvest_count"`
	PurchasedUpgrades map[string]bool `json:"purchased_upgrades"`
}

// NewPlayerState returns the first-run state. Accrual starts at now.
func NewPlayerState(now time.Time) PlayerState {
	return PlayerState{
		LastCollectionAt:  now,
		PurchasedUpgrades: map[string]bool{},
	}
}

// HasStreakDate reports whether a streak day has ever been recorded.
func (p PlayerState) HasStreakDate() bool {
	return p.LastStreakDate != (civil.Date{})
}

// Owns reports whether the upgrade id was purchased.
func (p PlayerState) Owns(upgradeID string) bool {
	return p.PurchasedUpgrades[upgradeID]
}

// PurchasedIDs returns the purchased upgrade ids in sorted order.
func (p PlayerState) PurchasedIDs() []string {
	ids := make([]string, 0, len(p.PurchasedUpgrades))
	for id, owned := range p.PurchasedUpgrades {
		if owned {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

// Clone returns a deep copy so the purchase set can be mutated safely.
func (p PlayerState) Clone() PlayerState {
	out := p
	out.PurchasedUpgrades = make(map[string]bool, len(p.PurchasedUpgrades))
	for id, owned := range p.PurchasedUpgrades {
		if owned {
			out.PurchasedUpgrades[id] = true
		}
	}
	return out
}

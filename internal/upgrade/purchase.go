package upgrade

import (
	"fmt"
	"math"

	"github.com/osse101/degenfarm/internal/domain"
)

// DiscountRate is the upgrade discount granted by InfiniteCapacityAndDiscount.
const DiscountRate = 0.20

// discountRateFor returns the character's discount on upgrades.
func discountRateFor(character domain.Character) float64 {
	switch character.Ability {
	case domain.AbilityInfiniteCapacityAndDiscount:
		return DiscountRate
	case domain.AbilityNone, domain.AbilityAlternatingDoubleHarvest, domain.AbilityStreakAmplifier:
		return 0
	default:
		return 0
	}
}

// EffectiveCost returns the whole-seed price after discount, truncated.
func EffectiveCost(u domain.Upgrade, character domain.Character) int64 {
	return int64(math.Floor(float64(u.BaseCost) * (1 - discountRateFor(character))))
}

// Validate checks the purchase preconditions in order: not owned,
// prerequisite owned, balance covers the effective cost.
func Validate(u domain.Upgrade, state domain.PlayerState, character domain.Character) error {
	if state.Owns(u.ID) {
		return fmt.Errorf("%w: %s", domain.ErrUpgradeAlreadyOwned, u.ID)
	}
	if u.HasPrerequisite() && !state.Owns(u.PrerequisiteID) {
		return fmt.Errorf("%w: %s requires %s", domain.ErrUpgradeLocked, u.ID, u.PrerequisiteID)
	}
	cost := domain.WholeSeeds(EffectiveCost(u, character))
	if state.SeedsTotal < cost {
		return fmt.Errorf("%w: %s costs %d, balance %d", domain.ErrInsufficientFunds, u.ID, cost.Floor(), state.SeedsTotal.Floor())
	}
	return nil
}

// Purchase validates and executes a purchase. On failure the input state is
// returned unchanged together with the rejection.
func Purchase(u domain.Upgrade, state domain.PlayerState, character domain.Character) (domain.PlayerState, int64, error) {
	if err := Validate(u, state, character); err != nil {
		return state, 0, err
	}

	cost := EffectiveCost(u, character)
	next := state.Clone()
	next.SeedsTotal -= domain.WholeSeeds(cost)
	next.PurchasedUpgrades[u.ID] = true
	return next, cost, nil
}

// StatusOf reports the listing status of an upgrade for the player.
func StatusOf(u domain.Upgrade, state domain.PlayerState, character domain.Character) domain.UpgradeStatus {
	switch {
	case state.Owns(u.ID):
		return domain.UpgradeStatusOwned
	case u.HasPrerequisite() && !state.Owns(u.PrerequisiteID):
		return domain.UpgradeStatusLocked
	case state.SeedsTotal < domain.WholeSeeds(EffectiveCost(u, character)):
		return domain.UpgradeStatusExpensive
	default:
		return domain.UpgradeStatusAvailable
	}
}

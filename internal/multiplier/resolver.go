// Package multiplier composes the streak bonus with a character ability.
package multiplier

import (
	"github.com/osse101/degenfarm/internal/domain"
	"github.com/osse101/degenfarm/internal/streak"
)

// Streak bonus factors
const (
	NoStreakBonus    = 1.0
	ShortStreakBonus = 1.10
	LongStreakBonus  = 1.25
)

// Ability factors
const (
	DoubleHarvestFactor   = 2.0
	StreakAmplifierFactor = 1.15
	NeutralFactor         = 1.0
)

// Breakdown is a resolved multiplier with its components.
type Breakdown struct {
	StreakBonus   float64 `json:"streak_bonus"`
	AbilityFactor float64 `json:"ability_factor"`
	Total         float64 `json:"total"`
}

// StreakBonus returns the bonus for a streak length.
func StreakBonus(streakCount int) float64 {
	switch {
	case streakCount >= streak.LongStreakDays:
		return LongStreakBonus
	case streakCount >= streak.ShortStreakDays:
		return ShortStreakBonus
	default:
		return NoStreakBonus
	}
}

// AbilityFactor returns the ability's multiplicative effect.
// harvestCountBefore is the lifetime harvest count read before this collection
// is counted, so the 1st, 3rd, 5th... collection doubles.
func AbilityFactor(ability domain.Ability, streakCount, harvestCountBefore int) float64 {
	switch ability {
	case domain.AbilityAlternatingDoubleHarvest:
		if harvestCountBefore%2 == 0 {
			return DoubleHarvestFactor
		}
		return NeutralFactor
	case domain.AbilityStreakAmplifier:
		if streakCount >= streak.ShortStreakDays {
			return StreakAmplifierFactor
		}
		return NeutralFactor
	case domain.AbilityInfiniteCapacityAndDiscount:
		// Its benefit lives in capacity and upgrade pricing.
		return NeutralFactor
	case domain.AbilityNone:
		return NeutralFactor
	default:
		return NeutralFactor
	}
}

// Resolve composes the total multiplier for a collection.
func Resolve(character domain.Character, streakCount, harvestCountBefore int) Breakdown {
	bonus := StreakBonus(streakCount)
	factor := AbilityFactor(character.Ability, streakCount, harvestCountBefore)
	return Breakdown{
		StreakBonus:   bonus,
		AbilityFactor: factor,
		Total:         bonus * factor,
	}
}

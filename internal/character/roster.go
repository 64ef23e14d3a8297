// Package character holds the built-in farmer roster.
package character

import (
	"fmt"

	"github.com/osse101/degenfarm/internal/domain"
)

// Character ids
const (
	IDDegenApe = "degen_ape"
	IDFoxy     = "foxy"
	IDOkayBear = "okay_bear"
	IDMonke    = "monke"
)

var roster = []domain.Character{
	{
		ID:              IDDegenApe,
		Name:            "Degen Ape",
		BaseRatePerHour: 10,
		Ability:         domain.AbilityAlternatingDoubleHarvest,
		Description:     "Double harvest every other collection",
	},
	{
		ID:              IDFoxy,
		Name:            "Foxy",
		BaseRatePerHour: 8,
		Ability:         domain.AbilityStreakAmplifier,
		Description:     "+15% harvest on streak >= 3",
	},
	{
		ID:              IDOkayBear,
		Name:            "Okay Bear",
		BaseRatePerHour: 12,
		Ability:         domain.AbilityInfiniteCapacityAndDiscount,
		Description:     "Never loses harvest to full storage, 20% off upgrades",
	},
	{
		ID:              IDMonke,
		Name:            "Monke",
		BaseRatePerHour: 10,
		Ability:         domain.AbilityNone,
		Description:     "Plain farmer",
	},
}

// All returns the roster in display order.
func All() []domain.Character {
	out := make([]domain.Character, len(roster))
	copy(out, roster)
	return out
}

// Lookup returns the character with the given id.
func Lookup(id string) (domain.Character, error) {
	for _, c := range roster {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Character{}, fmt.Errorf("%w: %q", domain.ErrUnknownCharacter, id)
}

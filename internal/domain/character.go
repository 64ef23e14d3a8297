package domain

import "fmt"

// Ability is the closed set of character modifiers.
type Ability int

const (
	AbilityNone Ability = iota
	AbilityAlternatingDoubleHarvest
	AbilityStreakAmplifier
	AbilityInfiniteCapacityAndDiscount
)

var abilityNames = map[Ability]string{
	AbilityNone:                        "none",
	AbilityAlternatingDoubleHarvest:    "alternating_double_harvest",
	AbilityStreakAmplifier:             "streak_amplifier",
	AbilityInfiniteCapacityAndDiscount: "infinite_capacity_and_discount",
}

// String returns the stable wire name of the ability.
func (a Ability) String() string {
	if name, ok := abilityNames[a]; ok {
		return name
	}
	return fmt.Sprintf("ability(%d)", int(a))
}

// Valid reports whether a is one of the known abilities.
func (a Ability) Valid() bool {
	_, ok := abilityNames[a]
	return ok
}

// MarshalText implements encoding.TextMarshaler.
func (a Ability) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAbility, int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Ability) UnmarshalText(text []byte) error {
	for ability, name := range abilityNames {
		if name == string(text) {
			*a = ability
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownAbility, string(text))
}

// Character is a farmer with a base production rate and one ability.
type Character struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	BaseRatePerHour float64 `json:"base_rate_per_hour"`
	Ability         Ability `json:"ability"`
	Description     string  `json:"description"`
}

// Validate checks the character invariants.
func (c Character) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidCharacter)
	}
	if c.BaseRatePerHour <= 0 {
		return fmt.Errorf("%w: %s has non-positive rate %v", ErrInvalidCharacter, c.ID, c.BaseRatePerHour)
	}
	if !c.Ability.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownAbility, c.ID)
	}
	return nil
}

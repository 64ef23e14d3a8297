package multiplier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/degenfarm/internal/domain"
)

var (
	plain    = domain.Character{ID: "monke", BaseRatePerHour: 10, Ability: domain.AbilityNone}
	ape      = domain.Character{ID: "degen_ape", BaseRatePerHour: 10, Ability: domain.AbilityAlternatingDoubleHarvest}
	fox      = domain.Character{ID: "foxy", BaseRatePerHour: 8, Ability: domain.AbilityStreakAmplifier}
	okayBear = domain.Character{ID: "okay_bear", BaseRatePerHour: 12, Ability: domain.AbilityInfiniteCapacityAndDiscount}
)

func TestStreakBonus(t *testing.T) {
	tests := []struct {
		streak int
		want   float64
	}{
		{0, 1.0},
		{1, 1.0},
		{2, 1.0},
		{3, 1.10},
		{6, 1.10},
		{7, 1.25},
		{100, 1.25},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StreakBonus(tt.streak), "streak=%d", tt.streak)
	}
}

func TestResolve_AlternatingDoubleHarvest(t *testing.T) {
	// 1st, 2nd and 3rd collection in 1-indexed terms
	assert.Equal(t, 2.0, Resolve(ape, 1, 0).Total)
	assert.Equal(t, 1.0, Resolve(ape, 1, 1).Total)
	assert.Equal(t, 2.0, Resolve(ape, 1, 2).Total)
}

func TestResolve_AlternatingDoubleHarvestWithStreak(t *testing.T) {
	b := Resolve(ape, 7, 4)
	assert.Equal(t, LongStreakBonus, b.StreakBonus)
	assert.Equal(t, DoubleHarvestFactor, b.AbilityFactor)
	assert.InDelta(t, 2.5, b.Total, 1e-9)
}

func TestResolve_StreakAmplifier(t *testing.T) {
	assert.Equal(t, 1.0, Resolve(fox, 2, 0).Total)
	assert.InDelta(t, 1.265, Resolve(fox, 3, 0).Total, 1e-9)
	assert.InDelta(t, 1.25*1.15, Resolve(fox, 7, 0).Total, 1e-9)
}

func TestResolve_NeutralAbilities(t *testing.T) {
	for _, c := range []domain.Character{plain, okayBear} {
		t.Run(c.ID, func(t *testing.T) {
			assert.Equal(t, 1.0, Resolve(c, 0, 0).Total)
			assert.Equal(t, 1.10, Resolve(c, 3, 5).Total)
			assert.Equal(t, 1.25, Resolve(c, 8, 1).Total)
			assert.Equal(t, NeutralFactor, Resolve(c, 8, 0).AbilityFactor)
		})
	}
}

func TestResolve_UnknownAbilityIsNeutral(t *testing.T) {
	odd := domain.Character{ID: "odd", BaseRatePerHour: 1, Ability: domain.Ability(42)}
	assert.Equal(t, NeutralFactor, Resolve(odd, 0, 0).AbilityFactor)
}

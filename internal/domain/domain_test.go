package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeeds(t *testing.T) {
	assert.Equal(t, Seeds(1_500_000), SeedsFromFloat(1.5))
	assert.Equal(t, Seeds(0), SeedsFromFloat(-3))
	assert.Equal(t, WholeSeeds(400), SeedsFromFloat(400))
	assert.Equal(t, int64(12), SeedsFromFloat(12.999).Floor())
	assert.Equal(t, "2.5000", SeedsFromFloat(2.5).String())
	assert.Equal(t, WholeSeeds(20), WholeSeeds(10).Scale(2))
	assert.InDelta(t, 12.65, WholeSeeds(10).Scale(1.265).Float(), 1e-5)
}

func TestPlayerState_Clone(t *testing.T) {
	p := NewPlayerState(time.Now())
	p.PurchasedUpgrades["tools1"] = true

	c := p.Clone()
	c.PurchasedUpgrades["tools2"] = true

	assert.False(t, p.Owns("tools2"))
	assert.Equal(t, []string{"tools1", "tools2"}, c.PurchasedIDs())
	assert.False(t, p.HasStreakDate())
}

func TestAbilityText(t *testing.T) {
	data, err := json.Marshal(AbilityStreakAmplifier)
	require.NoError(t, err)
	assert.Equal(t, `"streak_amplifier"`, string(data))

	var a Ability
	require.NoError(t, json.Unmarshal([]byte(`"infinite_capacity_and_discount"`), &a))
	assert.Equal(t, AbilityInfiniteCapacityAndDiscount, a)

	assert.ErrorIs(t, json.Unmarshal([]byte(`"laser_eyes"`), &a), ErrUnknownAbility)
}

func TestCharacterValidate(t *testing.T) {
	assert.NoError(t, Character{ID: "x", BaseRatePerHour: 1}.Validate())
	assert.ErrorIs(t, Character{ID: "x"}.Validate(), ErrInvalidCharacter)
	assert.ErrorIs(t, Character{BaseRatePerHour: 1}.Validate(), ErrInvalidCharacter)
	assert.ErrorIs(t, Character{ID: "x", BaseRatePerHour: 1, Ability: Ability(9)}.Validate(), ErrUnknownAbility)
}

func TestReasonOf(t *testing.T) {
	tests := []struct {
		err  error
		want Reason
	}{
		{nil, ReasonNone},
		{fmt.Errorf("buy tools2: %w", ErrUpgradeLocked), ReasonUpgradeLocked},
		{ErrInsufficientFunds, ReasonInsufficientFunds},
		{fmt.Errorf("%w: disk full", ErrStorageUnavailable), ReasonStorageUnavailable},
		{fmt.Errorf("%w: timeout", ErrSyncFailure), ReasonSyncFailure},
		{errors.New("boom"), ReasonUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ReasonOf(tt.err))
	}

	assert.True(t, IsRejection(ErrUsernameTaken))
	assert.False(t, IsRejection(ErrStorageUnavailable))
	assert.Contains(t, ErrInsufficientFunds.Error(), ErrMsgInsufficientFunds)
}

func TestNewLeaderboardEntry(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	p := NewPlayerState(now)
	p.SeedsTotal = SeedsFromFloat(1234.99)
	p.StreakCount = 5

	e := NewLeaderboardEntry("farmer_joe", "foxy", p, now)
	assert.Equal(t, int64(1234), e.TotalSeeds)
	assert.Equal(t, 5, e.StreakCount)
	assert.Equal(t, now, e.UpdatedAt)
}

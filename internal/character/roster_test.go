package character

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/degenfarm/internal/domain"
)

func TestRosterIsValid(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range All() {
		require.NoError(t, c.Validate(), c.ID)
		assert.False(t, seen[c.ID], "duplicate id %s", c.ID)
		seen[c.ID] = true
	}
	assert.Len(t, seen, 4)
}

func TestLookup(t *testing.T) {
	c, err := Lookup(IDOkayBear)
	require.NoError(t, err)
	assert.Equal(t, domain.AbilityInfiniteCapacityAndDiscount, c.Ability)
	assert.Equal(t, 12.0, c.BaseRatePerHour)

	_, err = Lookup("unicorn")
	assert.ErrorIs(t, err, domain.ErrUnknownCharacter)
	assert.True(t, domain.IsRejection(err))
}

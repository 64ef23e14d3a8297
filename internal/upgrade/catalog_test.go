package upgrade

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/degenfarm/internal/domain"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()

	all := c.All()
	require.Len(t, all, 6)
	assert.Equal(t, IDTools1, all[0].ID)

	tools3, ok := c.Get(IDTools3)
	require.True(t, ok)
	assert.Equal(t, int64(8000), tools3.BaseCost)
	assert.Equal(t, IDTools2, tools3.PrerequisiteID)

	slot, ok := c.Get(IDSlot)
	require.True(t, ok)
	assert.False(t, slot.HasPrerequisite())
	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestNewCatalog_Validation(t *testing.T) {
	tests := []struct {
		name     string
		upgrades []domain.Upgrade
		wantErr  error
	}{
		{
			name:     "duplicate id",
			upgrades: []domain.Upgrade{{ID: "a", BaseCost: 1}, {ID: "a", BaseCost: 2}},
			wantErr:  ErrDuplicateUpgrade,
		},
		{
			name:     "missing prerequisite",
			upgrades: []domain.Upgrade{{ID: "a", BaseCost: 1, PrerequisiteID: "ghost"}},
			wantErr:  ErrMissingPrerequisite,
		},
		{
			name:     "non-positive cost",
			upgrades: []domain.Upgrade{{ID: "a", BaseCost: 0}},
			wantErr:  ErrInvalidCost,
		},
		{
			name: "cycle",
			upgrades: []domain.Upgrade{
				{ID: "a", BaseCost: 1, PrerequisiteID: "c"},
				{ID: "b", BaseCost: 1, PrerequisiteID: "a"},
				{ID: "c", BaseCost: 1, PrerequisiteID: "b"},
			},
			wantErr: ErrCycleDetected,
		},
		{
			name:     "self reference",
			upgrades: []domain.Upgrade{{ID: "a", BaseCost: 1, PrerequisiteID: "a"}},
			wantErr:  ErrCycleDetected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.upgrades)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
		})
	}
}

func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "upgrades.json")
	content := `{
  "version": "1.0",
  "upgrades": [
    {"id": "hoe", "name": "Hoe", "kind": "tools", "base_cost": 100, "magnitude": 0.1},
    {"id": "plow", "name": "Plow", "kind": "tools", "base_cost": 400, "prerequisite_id": "hoe", "magnitude": 0.3}
  ]
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	c, err := LoadCatalog(path)
	require.NoError(t, err)
	plow, ok := c.Get("plow")
	require.True(t, ok)
	assert.Equal(t, "hoe", plow.PrerequisiteID)
	assert.Equal(t, domain.UpgradeKindTools, plow.Kind)

	_, err = LoadCatalog(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o600))
	_, err = LoadCatalog(bad)
	assert.ErrorIs(t, err, domain.ErrInvalidCatalog)

	unknownKind := filepath.Join(dir, "kind.json")
	require.NoError(t, os.WriteFile(unknownKind, []byte(`{"upgrades": [{"id": "x", "name": "X", "kind": "magic", "base_cost": 5}]}`), 0o600))
	_, err = LoadCatalog(unknownKind)
	assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
	assert.ErrorContains(t, err, "schema validation failed")
}

func TestStorageFactorAndSlots(t *testing.T) {
	c := DefaultCatalog()
	state := domain.PlayerState{PurchasedUpgrades: map[string]bool{}}

	assert.Equal(t, 1.0, c.StorageFactor(state))
	assert.Equal(t, 1, c.CharacterSlots(state))

	state.PurchasedUpgrades[IDStorage1] = true
	assert.Equal(t, 2.0, c.StorageFactor(state))

	state.PurchasedUpgrades[IDStorage2] = true
	state.PurchasedUpgrades[IDSlot] = true
	assert.Equal(t, 5.0, c.StorageFactor(state))
	assert.Equal(t, 2, c.CharacterSlots(state))
}

// Package upgrade holds the upgrade catalog and validates purchases against it.
package upgrade

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/osse101/degenfarm/internal/domain"
	"github.com/osse101/degenfarm/internal/validation"
)

// Sentinel errors for catalog validation
var (
	ErrDuplicateUpgrade    = errors.New("duplicate upgrade id")
	ErrMissingPrerequisite = errors.New("prerequisite upgrade not found")
	ErrCycleDetected       = errors.New("cycle detected in upgrade prerequisites")
	ErrInvalidCost         = errors.New("upgrade cost must be positive")
)

// Upgrade ids of the built-in catalog
const (
	IDTools1   = "tools1"
	IDTools2   = "tools2"
	IDTools3   = "tools3"
	IDStorage1 = "storage1"
	IDStorage2 = "storage2"
	IDSlot     = "slot"
)

// Catalog is an immutable, validated upgrade list forming a prerequisite forest.
type Catalog struct {
	upgrades []domain.Upgrade
	byID     map[string]domain.Upgrade
}

// catalogFile is the JSON layout accepted by LoadCatalog
type catalogFile struct {
	Version  string           `json:"version"`
	Upgrades []domain.Upgrade `json:"upgrades"`
}

// DefaultCatalog returns the built-in upgrade list.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog([]domain.Upgrade{
		{ID: IDTools1, Name: "Better Tools Lv.1", Description: "+20% production", Kind: domain.UpgradeKindTools, BaseCost: 500, Magnitude: 0.2},
		{ID: IDTools2, Name: "Better Tools Lv.2", Description: "+50% production", Kind: domain.UpgradeKindTools, BaseCost: 2000, Magnitude: 0.5, PrerequisiteID: IDTools1},
		{ID: IDTools3, Name: "Better Tools Lv.3", Description: "+100% production", Kind: domain.UpgradeKindTools, BaseCost: 8000, Magnitude: 1.0, PrerequisiteID: IDTools2},
		{ID: IDStorage1, Name: "Bigger Storage Lv.1", Description: "2x max storage", Kind: domain.UpgradeKindStorage, BaseCost: 300, Magnitude: 2},
		{ID: IDStorage2, Name: "Bigger Storage Lv.2", Description: "5x max storage", Kind: domain.UpgradeKindStorage, BaseCost: 1500, Magnitude: 5, PrerequisiteID: IDStorage1},
		{ID: IDSlot, Name: "New Character Slot", Description: "Add another farmer", Kind: domain.UpgradeKindSlot, BaseCost: 5000},
	})
	if err != nil {
		panic(fmt.Sprintf("built-in upgrade catalog is invalid: %v", err))
	}
	return c
}

// LoadCatalog reads a catalog from a JSON file, checks it against the
// catalog schema and then validates the prerequisite graph.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read upgrade catalog: %w", err)
	}

	if err := validation.ValidateUpgradeCatalog(data); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrInvalidCatalog, path, err)
	}

	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %v", domain.ErrInvalidCatalog, path, err)
	}

	return NewCatalog(file.Upgrades)
}

// NewCatalog validates the upgrade list: unique ids, positive costs,
// prerequisites that exist and no cycles.
func NewCatalog(upgrades []domain.Upgrade) (*Catalog, error) {
	byID := make(map[string]domain.Upgrade, len(upgrades))
	for _, u := range upgrades {
		if u.ID == "" {
			return nil, fmt.Errorf("%w: upgrade with empty id", domain.ErrInvalidCatalog)
		}
		if _, exists := byID[u.ID]; exists {
			return nil, fmt.Errorf("%w: %w: %s", domain.ErrInvalidCatalog, ErrDuplicateUpgrade, u.ID)
		}
		if u.BaseCost <= 0 {
			return nil, fmt.Errorf("%w: %w: %s costs %d", domain.ErrInvalidCatalog, ErrInvalidCost, u.ID, u.BaseCost)
		}
		byID[u.ID] = u
	}

	for _, u := range upgrades {
		if u.HasPrerequisite() {
			if _, ok := byID[u.PrerequisiteID]; !ok {
				return nil, fmt.Errorf("%w: %w: %s requires %s", domain.ErrInvalidCatalog, ErrMissingPrerequisite, u.ID, u.PrerequisiteID)
			}
		}
	}

	// Each upgrade has at most one parent, so walking the chain either
	// reaches a root or revisits a node.
	for _, u := range upgrades {
		seen := map[string]bool{u.ID: true}
		for cur := u; cur.HasPrerequisite(); {
			cur = byID[cur.PrerequisiteID]
			if seen[cur.ID] {
				return nil, fmt.Errorf("%w: %w: via %s", domain.ErrInvalidCatalog, ErrCycleDetected, u.ID)
			}
			seen[cur.ID] = true
		}
	}

	ordered := make([]domain.Upgrade, len(upgrades))
	copy(ordered, upgrades)
	return &Catalog{upgrades: ordered, byID: byID}, nil
}

// Get looks up an upgrade by id.
func (c *Catalog) Get(id string) (domain.Upgrade, bool) {
	u, ok := c.byID[id]
	return u, ok
}

// All returns the upgrades in catalog order.
func (c *Catalog) All() []domain.Upgrade {
	out := make([]domain.Upgrade, len(c.upgrades))
	copy(out, c.upgrades)
	return out
}

// StorageFactor returns the largest capacity factor among owned storage upgrades, or 1.
func (c *Catalog) StorageFactor(state domain.PlayerState) float64 {
	factor := 1.0
	for _, u := range c.upgrades {
		if u.Kind == domain.UpgradeKindStorage && state.Owns(u.ID) && u.Magnitude > factor {
			factor = u.Magnitude
		}
	}
	return factor
}

// CharacterSlots returns how many farmers the player may own.
func (c *Catalog) CharacterSlots(state domain.PlayerState) int {
	slots := 1
	for _, u := range c.upgrades {
		if u.Kind == domain.UpgradeKindSlot && state.Owns(u.ID) {
			slots++
		}
	}
	return slots
}

package domain

// UpgradeKind groups upgrades by the effect they carry.
type UpgradeKind string

const (
	UpgradeKindTools   UpgradeKind = "tools"
	UpgradeKindStorage UpgradeKind = "storage"
	UpgradeKindSlot    UpgradeKind = "slot"
)

// Upgrade is a one-time purchasable unlock.
type Upgrade struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Description    string      `json:"description"`
	Kind           UpgradeKind `json:"kind"`
	BaseCost       int64       `json:"base_cost"`
	PrerequisiteID string      `json:"prerequisite_id,omitempty"`
	Magnitude      float64     `json:"magnitude"` // production bonus (tools) or capacity factor (storage)
}

// HasPrerequisite reports whether the upgrade is gated by another upgrade.
func (u Upgrade) HasPrerequisite() bool {
	return u.PrerequisiteID != ""
}

// UpgradeStatus is the listing status of an upgrade for one player.
type UpgradeStatus string

const (
	UpgradeStatusOwned     UpgradeStatus = "owned"
	UpgradeStatusLocked    UpgradeStatus = "locked"
	UpgradeStatusExpensive UpgradeStatus = "expensive"
	UpgradeStatusAvailable UpgradeStatus = "available"
)

package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Category errors
	ErrMsgStorageUnavailable = "storage unavailable"
	ErrMsgSyncFailure        = "leaderboard sync failed"
	ErrMsgValidationRejected = "validation rejected"

	// Upgrade errors
	ErrMsgInsufficientFunds   = "insufficient funds"
	ErrMsgUpgradeLocked       = "upgrade is locked"
	ErrMsgUpgradeAlreadyOwned = "upgrade already owned"
	ErrMsgUpgradeNotFound     = "upgrade not found"

	// Player errors
	ErrMsgInvalidUsername  = "invalid username"
	ErrMsgUsernameTaken    = "username already taken"
	ErrMsgPlayerNotFound   = "player not found"
	ErrMsgUnknownCharacter = "unknown character"

	// Model errors
	ErrMsgInvalidCharacter = "invalid character"
	ErrMsgUnknownAbility   = "unknown ability"
	ErrMsgInvalidCatalog   = "invalid upgrade catalog"
)

// Category errors. Every failure the core reports falls under one of these.
var (
	ErrStorageUnavailable = errors.New(ErrMsgStorageUnavailable)
	ErrSyncFailure        = errors.New(ErrMsgSyncFailure)
	ErrValidationRejected = errors.New(ErrMsgValidationRejected)
)

// Rejections. Each wraps ErrValidationRejected so callers can test either
// the category or the specific reason with errors.Is.
var (
	ErrInsufficientFunds   = fmt.Errorf("%w: %s", ErrValidationRejected, ErrMsgInsufficientFunds)
	ErrUpgradeLocked       = fmt.Errorf("%w: %s", ErrValidationRejected, ErrMsgUpgradeLocked)
	ErrUpgradeAlreadyOwned = fmt.Errorf("%w: %s", ErrValidationRejected, ErrMsgUpgradeAlreadyOwned)
	ErrUpgradeNotFound     = fmt.Errorf("%w: %s", ErrValidationRejected, ErrMsgUpgradeNotFound)
	ErrInvalidUsername     = fmt.Errorf("%w: %s", ErrValidationRejected, ErrMsgInvalidUsername)
	ErrUsernameTaken       = fmt.Errorf("%w: %s", ErrValidationRejected, ErrMsgUsernameTaken)
	ErrUnknownCharacter    = fmt.Errorf("%w: %s", ErrValidationRejected, ErrMsgUnknownCharacter)
)

// Lookup and model errors
var (
	ErrPlayerNotFound   = errors.New(ErrMsgPlayerNotFound)
	ErrInvalidCharacter = errors.New(ErrMsgInvalidCharacter)
	ErrUnknownAbility   = errors.New(ErrMsgUnknownAbility)
	ErrInvalidCatalog   = errors.New(ErrMsgInvalidCatalog)
)

// Reason is the machine-readable code reported for a rejected action.
type Reason string

const (
	ReasonNone                Reason = ""
	ReasonInsufficientFunds   Reason = "insufficient_funds"
	ReasonUpgradeLocked       Reason = "upgrade_locked"
	ReasonUpgradeAlreadyOwned Reason = "upgrade_already_owned"
	ReasonUpgradeNotFound     Reason = "upgrade_not_found"
	ReasonInvalidUsername     Reason = "invalid_username"
	ReasonUsernameTaken       Reason = "username_taken"
	ReasonUnknownCharacter    Reason = "unknown_character"
	ReasonPlayerNotFound      Reason = "player_not_found"
	ReasonStorageUnavailable  Reason = "storage_unavailable"
	ReasonSyncFailure         Reason = "sync_failure"
	ReasonUnknown             Reason = "unknown"
)

var reasonsByError = []struct {
	err    error
	reason Reason
}{
	{ErrInsufficientFunds, ReasonInsufficientFunds},
	{ErrUpgradeLocked, ReasonUpgradeLocked},
	{ErrUpgradeAlreadyOwned, ReasonUpgradeAlreadyOwned},
	{ErrUpgradeNotFound, ReasonUpgradeNotFound},
	{ErrInvalidUsername, ReasonInvalidUsername},
	{ErrUsernameTaken, ReasonUsernameTaken},
	{ErrUnknownCharacter, ReasonUnknownCharacter},
	{ErrPlayerNotFound, ReasonPlayerNotFound},
	{ErrStorageUnavailable, ReasonStorageUnavailable},
	{ErrSyncFailure, ReasonSyncFailure},
}

// ReasonOf maps an error to its reason code. nil maps to ReasonNone.
func ReasonOf(err error) Reason {
	if err == nil {
		return ReasonNone
	}
	for _, r := range reasonsByError {
		if errors.Is(err, r.err) {
			return r.reason
		}
	}
	return ReasonUnknown
}

// IsRejection reports whether err is a validation rejection (state unchanged, no retry).
func IsRejection(err error) bool {
	return errors.Is(err, ErrValidationRejected)
}

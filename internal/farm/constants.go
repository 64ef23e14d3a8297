package farm

import "time"

// Action names used in rejection events and metrics
const (
	ActionRegister = "register"
	ActionCollect  = "collect"
	ActionPurchase = "purchase"
	ActionView     = "view"
)

// Notices returned alongside successful results
const (
	NoticeStateNotLoaded  = "saved progress could not be loaded; changes are not saved until it can be"
	NoticeLastSaveFailed  = "the last save did not complete; progress will be saved again on the next action"
	NoticeCharacterNotSet = "character could not be saved locally"
	NoticeStateNotSaved   = "initial progress could not be saved"
)

// Log Messages
const (
	LogMsgSessionLoaded    = "Farm session loaded"
	LogMsgStoreFailed      = "State store failure"
	LogMsgPersistDropped   = "Persist job dropped"
	LogMsgSyncDropped      = "Leaderboard sync job dropped"
	LogMsgPublishFailed    = "Event publish failed"
	LogMsgHarvestCollected = "Harvest collected"
	LogMsgUpgradePurchased = "Upgrade purchased"
	LogMsgActionRejected   = "Action rejected"
	LogMsgStreakBroken     = "Streak broken"
	LogMsgReconciled       = "Sessions reconciled"
	LogMsgSessionRecovered = "Farm session recovered from degraded store"
	LogMsgSessionsEvicted  = "Idle sessions evicted"
)

// DefaultSessionIdleTTL is how long an untouched session stays in memory.
const DefaultSessionIdleTTL = 30 * time.Minute

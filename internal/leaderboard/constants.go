package leaderboard

import "time"

// Cache defaults
const (
	DefaultCacheSize = 16
	DefaultCacheTTL  = 30 * time.Second
)

// Log Messages
const (
	LogMsgPlayerRegistered = "Player registered on leaderboard"
	LogMsgSyncFailed       = "Leaderboard sync failed"
)

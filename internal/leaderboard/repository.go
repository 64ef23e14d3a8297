// Package leaderboard registers players and publishes their progress to the
// shared leaderboard. Sync is best-effort: failures are logged and counted,
// never retried, and never affect local state.
package leaderboard

import (
	"context"

	"github.com/osse101/degenfarm/internal/domain"
)

// Page sizes for the top-N read path
const (
	DefaultLimit = 50
	MaxLimit     = 100
)

// Repository is the remote leaderboard table keyed by username.
// Get returns domain.ErrPlayerNotFound for unknown usernames. Insert returns
// domain.ErrUsernameTaken when the username already exists.
type Repository interface {
	Exists(ctx context.Context, username string) (bool, error)
	Insert(ctx context.Context, entry domain.LeaderboardEntry) error
	Upsert(ctx context.Context, entry domain.LeaderboardEntry) error
	Get(ctx context.Context, username string) (domain.LeaderboardEntry, error)
	Top(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
}

// ClampLimit maps a requested page size into [1, MaxLimit], using
// DefaultLimit for non-positive values.
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	default:
		return limit
	}
}

package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/degenfarm/internal/domain"
	"github.com/osse101/degenfarm/internal/logger"
)

// Service fronts a Repository with validation, sync semantics and a read cache.
type Service struct {
	repo  Repository
	cache *topCache
}

// NewService creates a leaderboard service
func NewService(repo Repository, cacheCfg CacheConfig) *Service {
	if cacheCfg.TTL <= 0 {
		cacheCfg.TTL = DefaultCacheTTL
	}
	return &Service{
		repo:  repo,
		cache: newTopCache(cacheCfg),
	}
}

// Register claims username for a new player using check-then-insert.
// Returns domain.ErrInvalidUsername, domain.ErrUsernameTaken, or an error
// wrapping domain.ErrSyncFailure when the leaderboard cannot be reached.
func (s *Service) Register(ctx context.Context, username, characterID string, now time.Time) (domain.LeaderboardEntry, error) {
	if err := ValidateUsername(username); err != nil {
		return domain.LeaderboardEntry{}, err
	}

	taken, err := s.repo.Exists(ctx, username)
	if err != nil {
		return domain.LeaderboardEntry{}, fmt.Errorf("%w: check username: %v", domain.ErrSyncFailure, err)
	}
	if taken {
		return domain.LeaderboardEntry{}, fmt.Errorf("%w: %s", domain.ErrUsernameTaken, username)
	}

	entry := domain.LeaderboardEntry{
		Username:    username,
		CharacterID: characterID,
		UpdatedAt:   now,
	}
	if err := s.repo.Insert(ctx, entry); err != nil {
		// Lost the race between check and insert.
		if errors.Is(err, domain.ErrUsernameTaken) {
			return domain.LeaderboardEntry{}, err
		}
		return domain.LeaderboardEntry{}, fmt.Errorf("%w: insert player: %v", domain.ErrSyncFailure, err)
	}

	s.cache.Clear()
	logger.FromContext(ctx).Info(LogMsgPlayerRegistered, "username", username, "character_id", characterID)
	return entry, nil
}

// Sync upserts the player's standing. The returned error wraps
// domain.ErrSyncFailure and is informational only: callers log it and move on.
func (s *Service) Sync(ctx context.Context, entry domain.LeaderboardEntry) error {
	if err := s.repo.Upsert(ctx, entry); err != nil {
		logger.FromContext(ctx).Warn(LogMsgSyncFailed, "username", entry.Username, "error", err)
		return fmt.Errorf("%w: %s: %v", domain.ErrSyncFailure, entry.Username, err)
	}
	s.cache.Clear()
	return nil
}

// Lookup returns a player's leaderboard row.
func (s *Service) Lookup(ctx context.Context, username string) (domain.LeaderboardEntry, error) {
	entry, err := s.repo.Get(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrPlayerNotFound) {
			return domain.LeaderboardEntry{}, err
		}
		return domain.LeaderboardEntry{}, fmt.Errorf("%w: lookup %s: %v", domain.ErrSyncFailure, username, err)
	}
	return entry, nil
}

// Top returns the best players by total seeds, descending. limit is clamped
// with ClampLimit. Pages are cached until the next write or TTL expiry.
func (s *Service) Top(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	limit = ClampLimit(limit)
	if entries, ok := s.cache.Get(limit); ok {
		return entries, nil
	}

	entries, err := s.repo.Top(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: read top %d: %v", domain.ErrSyncFailure, limit, err)
	}
	s.cache.Set(limit, entries)
	return entries, nil
}

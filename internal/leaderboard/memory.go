package leaderboard

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/osse101/degenfarm/internal/domain"
)

// MemoryRepository is an in-process Repository used when no database is configured.
type MemoryRepository struct {
	mu      sync.RWMutex
	entries map[string]domain.LeaderboardEntry
}

// NewMemoryRepository creates an empty MemoryRepository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{entries: make(map[string]domain.LeaderboardEntry)}
}

func (m *MemoryRepository) Exists(_ context.Context, username string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.entries[username]
	return ok, nil
}

func (m *MemoryRepository) Insert(_ context.Context, entry domain.LeaderboardEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[entry.Username]; ok {
		return fmt.Errorf("%w: %s", domain.ErrUsernameTaken, entry.Username)
	}
	m.entries[entry.Username] = entry
	return nil
}

func (m *MemoryRepository) Upsert(_ context.Context, entry domain.LeaderboardEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[entry.Username] = entry
	return nil
}

func (m *MemoryRepository) Get(_ context.Context, username string) (domain.LeaderboardEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[username]
	if !ok {
		return domain.LeaderboardEntry{}, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, username)
	}
	return e, nil
}

func (m *MemoryRepository) Top(_ context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	m.mu.RLock()
	out := make([]domain.LeaderboardEntry, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e)
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalSeeds != out[j].TotalSeeds {
			return out[i].TotalSeeds > out[j].TotalSeeds
		}
		return out[i].Username < out[j].Username
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

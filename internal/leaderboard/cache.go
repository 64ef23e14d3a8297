package leaderboard

import (
	"strconv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/degenfarm/internal/domain"
	"github.com/osse101/degenfarm/internal/metrics"
)

// CacheConfig sizes the top-N cache
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// topCache holds top-N pages keyed by limit with time-based expiration.
type topCache struct {
	lru *expirable.LRU[string, []domain.LeaderboardEntry]
}

func newTopCache(cfg CacheConfig) *topCache {
	if cfg.Size <= 0 {
		cfg.Size = DefaultCacheSize
	}
	return &topCache{
		lru: expirable.NewLRU[string, []domain.LeaderboardEntry](cfg.Size, nil, cfg.TTL),
	}
}

func (c *topCache) Get(limit int) ([]domain.LeaderboardEntry, bool) {
	entries, ok := c.lru.Get(strconv.Itoa(limit))
	if ok {
		metrics.LeaderboardCacheLookups.WithLabelValues(metrics.ResultHit).Inc()
	} else {
		metrics.LeaderboardCacheLookups.WithLabelValues(metrics.ResultMiss).Inc()
	}
	return entries, ok
}

func (c *topCache) Set(limit int, entries []domain.LeaderboardEntry) {
	c.lru.Add(strconv.Itoa(limit), entries)
}

// Clear drops every page; any write can reorder the board.
func (c *topCache) Clear() {
	c.lru.Purge()
}

func (c *topCache) Len() int {
	return c.lru.Len()
}

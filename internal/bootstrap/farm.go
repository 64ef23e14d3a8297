package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/degenfarm/internal/config"
	"github.com/osse101/degenfarm/internal/engine"
	"github.com/osse101/degenfarm/internal/event"
	"github.com/osse101/degenfarm/internal/farm"
	"github.com/osse101/degenfarm/internal/leaderboard"
	"github.com/osse101/degenfarm/internal/upgrade"
	"github.com/osse101/degenfarm/internal/worker"
)

// Farm is the assembled application core.
type Farm struct {
	Service  farm.Service
	Jobs     *worker.Pool
	Rollover *worker.DayRolloverWorker
}

// InitializeFarm builds the engine from the configured catalog and rules, and
// wires the farm service to storage, the leaderboard and a started job pool.
// The rollover worker is created but not started.
func InitializeFarm(cfg *config.Config, storage *Storage, bus event.Bus) (*Farm, error) {
	catalog := upgrade.DefaultCatalog()
	if cfg.UpgradeCatalogPath != "" {
		c, err := upgrade.LoadCatalog(cfg.UpgradeCatalogPath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
		}
		catalog = c
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedResolveTimezone, err)
	}

	eng := engine.New(catalog,
		engine.WithLocation(loc),
		engine.WithBaseCapacityHours(cfg.BaseCapacityHours),
	)

	board := leaderboard.NewService(storage.Leaderboard, leaderboard.CacheConfig{
		Size: cfg.LeaderboardCacheSize,
		TTL:  cfg.LeaderboardCacheTTL,
	})

	jobs := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize)
	jobs.Start()

	svc := farm.NewService(eng, storage.State, board, jobs, bus, farm.WithSessionIdleTTL(cfg.SessionIdleTTL))

	slog.Info(LogMsgFarmInitialized,
		"upgrades", len(catalog.All()),
		"timezone", loc.String(),
		"base_capacity_hours", cfg.BaseCapacityHours,
		"workers", cfg.WorkerCount,
		"session_idle_ttl", cfg.SessionIdleTTL)

	return &Farm{
		Service:  svc,
		Jobs:     jobs,
		Rollover: worker.NewDayRolloverWorker(svc, bus, loc),
	}, nil
}

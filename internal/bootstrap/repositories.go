package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/degenfarm/internal/config"
	"github.com/osse101/degenfarm/internal/database"
	"github.com/osse101/degenfarm/internal/database/postgres"
	"github.com/osse101/degenfarm/internal/handler"
	"github.com/osse101/degenfarm/internal/leaderboard"
	"github.com/osse101/degenfarm/internal/state"
)

// Storage holds the persistence backends used by the farm.
type Storage struct {
	State       *state.SQLiteStore
	Leaderboard leaderboard.Repository
	// DBPool is nil when the leaderboard is kept in memory.
	DBPool *pgxpool.Pool
}

// InitializeStorage opens the local state store and the leaderboard
// repository. With DATABASE_URL set the leaderboard lives in Postgres and is
// migrated on startup.
func InitializeStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	if dir := filepath.Dir(cfg.StateDBPath); dir != "." {
		if err := os.MkdirAll(dir, DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateStateDir, err)
		}
	}

	store, err := state.OpenSQLite(cfg.StateDBPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStateStore, err)
	}
	slog.Info(LogMsgStateStoreOpened, "path", cfg.StateDBPath)

	s := &Storage{State: store}

	if !cfg.LeaderboardPersistent() {
		s.Leaderboard = leaderboard.NewMemoryRepository()
		slog.Info(LogMsgLeaderboardMemory)
		return s, nil
	}

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMaxConnIdle, cfg.DBMaxConnLifetime)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDatabase, err)
	}
	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		_ = store.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrateDatabase, err)
	}

	s.DBPool = pool
	s.Leaderboard = postgres.NewLeaderboardRepository(pool)
	slog.Info(LogMsgLeaderboardPostgres, "max_conns", cfg.DBMaxConns)
	return s, nil
}

// ReadinessChecks lists the dependencies /readyz should ping.
func (s *Storage) ReadinessChecks() []handler.NamedPinger {
	checks := []handler.NamedPinger{{Name: ReadinessNameState, Pinger: s.State}}
	if s.DBPool != nil {
		checks = append(checks, handler.NamedPinger{Name: ReadinessNameLeaderboard, Pinger: s.DBPool})
	}
	return checks
}

// Close releases the database pool and the state store.
func (s *Storage) Close() error {
	if s.DBPool != nil {
		s.DBPool.Close()
	}
	if s.State != nil {
		if err := s.State.Close(); err != nil {
			return errors.Join(errors.New(ErrMsgFailedCloseStateStore), err)
		}
	}
	return nil
}

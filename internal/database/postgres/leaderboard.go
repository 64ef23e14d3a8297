package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/degenfarm/internal/domain"
	"github.com/osse101/degenfarm/internal/leaderboard"
)

const (
	queryExists = `SELECT EXISTS(SELECT 1 FROM players WHERE username = $1)`

	queryInsert = `
		INSERT INTO players (username, character_id, total_seeds, streak, updated_at)
		VALUES ($1, $2, $3, $4, $5)`

	queryUpsert = `
		INSERT INTO players (username, character_id, total_seeds, streak, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (username) DO UPDATE SET
			character_id = EXCLUDED.character_id,
			total_seeds  = EXCLUDED.total_seeds,
			streak       = EXCLUDED.streak,
			updated_at   = EXCLUDED.updated_at`

	queryGet = `
		SELECT username, character_id, total_seeds, streak, updated_at
		FROM players WHERE username = $1`

	queryTop = `
		SELECT username, character_id, total_seeds, streak, updated_at
		FROM players
		ORDER BY total_seeds DESC, username ASC
		LIMIT $1`
)

// LeaderboardRepository stores leaderboard rows in the players table.
type LeaderboardRepository struct {
	db *pgxpool.Pool
}

var _ leaderboard.Repository = (*LeaderboardRepository)(nil)

// NewLeaderboardRepository creates a postgres-backed leaderboard repository
func NewLeaderboardRepository(db *pgxpool.Pool) *LeaderboardRepository {
	return &LeaderboardRepository{db: db}
}

func (r *LeaderboardRepository) Exists(ctx context.Context, username string) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, queryExists, username).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToCheckUsername, err)
	}
	return exists, nil
}

func (r *LeaderboardRepository) Insert(ctx context.Context, e domain.LeaderboardEntry) error {
	_, err := r.db.Exec(ctx, queryInsert, e.Username, e.CharacterID, e.TotalSeeds, e.StreakCount, e.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrUsernameTaken, e.Username)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertPlayer, err)
	}
	return nil
}

func (r *LeaderboardRepository) Upsert(ctx context.Context, e domain.LeaderboardEntry) error {
	_, err := r.db.Exec(ctx, queryUpsert, e.Username, e.CharacterID, e.TotalSeeds, e.StreakCount, e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertPlayer, err)
	}
	return nil
}

func (r *LeaderboardRepository) Get(ctx context.Context, username string) (domain.LeaderboardEntry, error) {
	e, err := scanEntry(r.db.QueryRow(ctx, queryGet, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.LeaderboardEntry{}, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, username)
		}
		return domain.LeaderboardEntry{}, fmt.Errorf("%s: %w", ErrMsgFailedToGetPlayer, err)
	}
	return e, nil
}

func (r *LeaderboardRepository) Top(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	rows, err := r.db.Query(ctx, queryTop, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryTopPlayer, err)
	}
	defer rows.Close()

	entries := make([]domain.LeaderboardEntry, 0, limit)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanPlayer, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryTopPlayer, err)
	}
	return entries, nil
}

func scanEntry(row pgx.Row) (domain.LeaderboardEntry, error) {
	var e domain.LeaderboardEntry
	err := row.Scan(&e.Username, &e.CharacterID, &e.TotalSeeds, &e.StreakCount, &e.UpdatedAt)
	return e, err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation
}

// Package state persists PlayerState snapshots in a namespaced key-value store.
package state

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-sql/civil"

	"github.com/osse101/degenfarm/internal/domain"
	"github.com/osse101/degenfarm/internal/logger"
)

// Store is a string key-value store. Get reports found=false for missing keys.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Entry is one key/value write.
type Entry struct {
	Key   string
	Value string
}

// BatchStore is a Store that can apply several writes atomically. Save uses
// it when available.
type BatchStore interface {
	Store
	SetMany(ctx context.Context, entries []Entry) error
}

// Per-player key suffixes
const (
	FieldSeeds          = "seeds"
	FieldLastHarvest    = "lastHarvest"
	FieldStreak         = "streak"
	FieldLastStreakDate = "lastStreakDate"
	FieldCollectedToday = "collectedToday"
	FieldHarvestCount   = "harvestCount"
	FieldPurchased      = "purchased"
	FieldCharacter      = "character"
)

// Key returns the namespaced key for a player's field.
func Key(player, field string) string {
	return player + ":" + field
}

// Load reads a player's snapshot. Missing keys take their defaults (zero
// counters, no purchases, LastCollectionAt = now). When the store fails, Load
// returns the full default state and an error wrapping
// domain.ErrStorageUnavailable; callers may proceed with the defaults.
func Load(ctx context.Context, store Store, player string, now time.Time) (domain.PlayerState, error) {
	p := domain.NewPlayerState(now)

	raw := make(map[string]string, 7)
	for _, field := range []string{
		FieldSeeds, FieldLastHarvest, FieldStreak, FieldLastStreakDate,
		FieldCollectedToday, FieldHarvestCount, FieldPurchased,
	} {
		v, ok, err := store.Get(ctx, Key(player, field))
		if err != nil {
			return domain.NewPlayerState(now), fmt.Errorf("%w: read %s: %v", domain.ErrStorageUnavailable, Key(player, field), err)
		}
		if ok {
			raw[field] = v
		}
	}

	log := logger.FromContext(ctx)
	corrupt := func(field string, err error) {
		log.Warn(LogMsgCorruptValue, "player", player, "field", field, "error", err)
	}

	if v, ok := raw[FieldSeeds]; ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n >= 0 {
			p.SeedsTotal = domain.Seeds(n)
		} else {
			corrupt(FieldSeeds, err)
		}
	}
	if v, ok := raw[FieldLastHarvest]; ok {
		if ts, err := time.Parse(time.RFC3339Nano, v); err == nil {
			p.LastCollectionAt = ts
		} else {
			corrupt(FieldLastHarvest, err)
		}
	}
	if v, ok := raw[FieldStreak]; ok {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			p.StreakCount = n
		} else {
			corrupt(FieldStreak, err)
		}
	}
	if v, ok := raw[FieldLastStreakDate]; ok && v != "" {
		if d, err := civil.ParseDate(v); err == nil {
			p.LastStreakDate = d
		} else {
			corrupt(FieldLastStreakDate, err)
		}
	}
	if v, ok := raw[FieldCollectedToday]; ok {
		if b, err := strconv.ParseBool(v); err == nil {
			p.CollectedToday = b
		} else {
			corrupt(FieldCollectedToday, err)
		}
	}
	if v, ok := raw[FieldHarvestCount]; ok {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			p.HarvestCount = n
		} else {
			corrupt(FieldHarvestCount, err)
		}
	}
	if v, ok := raw[FieldPurchased]; ok {
		var ids []string
		if err := json.Unmarshal([]byte(v), &ids); err == nil {
			for _, id := range ids {
				p.PurchasedUpgrades[id] = true
			}
		} else {
			corrupt(FieldPurchased, err)
		}
	}

	return p, nil
}

// Save writes every field of the snapshot, in one batch when the store
// supports it. Otherwise fields are written one by one and the first failing
// write aborts; the order is chosen so a torn write can only lose progress:
// the accrual origin goes before the balance, and the balance before the
// purchase list. Errors wrap domain.ErrStorageUnavailable.
func Save(ctx context.Context, store Store, player string, p domain.PlayerState) error {
	purchased, err := json.Marshal(p.PurchasedIDs())
	if err != nil {
		return fmt.Errorf("encode purchases: %w", err)
	}

	streakDate := ""
	if p.HasStreakDate() {
		streakDate = p.LastStreakDate.String()
	}

	entries := []Entry{
		{Key(player, FieldLastHarvest), p.LastCollectionAt.Format(time.RFC3339Nano)},
		{Key(player, FieldStreak), strconv.Itoa(p.StreakCount)},
		{Key(player, FieldLastStreakDate), streakDate},
		{Key(player, FieldCollectedToday), strconv.FormatBool(p.CollectedToday)},
		{Key(player, FieldHarvestCount), strconv.Itoa(p.HarvestCount)},
		{Key(player, FieldSeeds), strconv.FormatInt(int64(p.SeedsTotal), 10)},
		{Key(player, FieldPurchased), string(purchased)},
	}

	if batch, ok := store.(BatchStore); ok {
		if err := batch.SetMany(ctx, entries); err != nil {
			return fmt.Errorf("%w: write %s snapshot: %v", domain.ErrStorageUnavailable, player, err)
		}
		return nil
	}
	for _, e := range entries {
		if err := store.Set(ctx, e.Key, e.Value); err != nil {
			return fmt.Errorf("%w: write %s: %v", domain.ErrStorageUnavailable, e.Key, err)
		}
	}
	return nil
}

// LoadCharacter returns the player's chosen character id. found is false
// for players that never registered through this store.
func LoadCharacter(ctx context.Context, store Store, player string) (string, bool, error) {
	id, ok, err := store.Get(ctx, Key(player, FieldCharacter))
	if err != nil {
		return "", false, fmt.Errorf("%w: read %s: %v", domain.ErrStorageUnavailable, Key(player, FieldCharacter), err)
	}
	return id, ok && id != "", nil
}

// SaveCharacter records the player's character id.
func SaveCharacter(ctx context.Context, store Store, player, characterID string) error {
	if err := store.Set(ctx, Key(player, FieldCharacter), characterID); err != nil {
		return fmt.Errorf("%w: write %s: %v", domain.ErrStorageUnavailable, Key(player, FieldCharacter), err)
	}
	return nil
}

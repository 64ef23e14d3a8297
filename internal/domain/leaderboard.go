package domain

import "time"

// LeaderboardEntry is the record synced to the remote leaderboard.
type LeaderboardEntry struct {
	Username    string    `json:"username"`
	CharacterID string    `json:"character_id"`
	TotalSeeds  int64     `json:"total_seeds"`
	StreakCount int       `json:"streak"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewLeaderboardEntry builds the sync record from a player snapshot.
// Total seeds are floored to whole seeds.
func NewLeaderboardEntry(username, characterID string, state PlayerState, now time.Time) LeaderboardEntry {
	return LeaderboardEntry{
		Username:    username,
		CharacterID: characterID,
		TotalSeeds:  state.SeedsTotal.Floor(),
		StreakCount: state.StreakCount,
		UpdatedAt:   now,
	}
}

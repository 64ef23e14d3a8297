// Package streak tracks the daily engagement streak as a calendar-day state machine.
package streak

import (
	"time"

	"github.com/golang-sql/civil"

	"github.com/osse101/degenfarm/internal/domain"
)

// State is the position of a player in the streak state machine.
type State string

const (
	StateNoStreak       State = "no_streak"
	StateStreakActive   State = "streak_active"
	StateHarvestedToday State = "harvested_today"
)

// Thresholds at which the streak starts paying a bonus.
const (
	ShortStreakDays = 3
	LongStreakDays  = 7
)

// StateOf reports which state the snapshot is in.
func StateOf(p domain.PlayerState) State {
	switch {
	case p.CollectedToday:
		return StateHarvestedToday
	case p.StreakCount >= 1:
		return StateStreakActive
	default:
		return StateNoStreak
	}
}

// Today returns the calendar date of now in loc.
func Today(now time.Time, loc *time.Location) civil.Date {
	if loc == nil {
		loc = time.Local
	}
	return civil.DateOf(now.In(loc))
}

// GapDays returns the number of calendar days from the last streak day to today.
func GapDays(p domain.PlayerState, today civil.Date) int {
	return today.DaysSince(p.LastStreakDate)
}

// Transition describes what a collection did to the streak.
type Transition struct {
	Before int
	After  int
	Broken bool // a previous streak of at least one day was lost
}

// Advance applies one collection on today and returns the updated snapshot.
// Re-collecting on the same day leaves the streak unchanged.
func Advance(p domain.PlayerState, today civil.Date) (domain.PlayerState, Transition) {
	tr := Transition{Before: p.StreakCount}

	if !p.HasStreakDate() {
		p.StreakCount = 1
		p.CollectedToday = true
		p.LastStreakDate = today
		tr.After = p.StreakCount
		return p, tr
	}

	gap := GapDays(p, today)
	switch {
	case gap <= 0:
		// Same day, or the clock moved back across midnight. Never regress.
		p.CollectedToday = true
	case gap == 1:
		p.StreakCount++
		p.CollectedToday = true
		p.LastStreakDate = today
	default:
		// Broken: the reset to zero is immediately followed by today's collection.
		tr.Broken = p.StreakCount > 0
		p.StreakCount = 1
		p.CollectedToday = true
		p.LastStreakDate = today
	}

	tr.After = p.StreakCount
	return p, tr
}

// Reconcile brings a loaded snapshot up to date with today without a collection.
// A gap of more than one day breaks the streak; any new day clears CollectedToday.
// The boolean reports whether anything changed.
func Reconcile(p domain.PlayerState, today civil.Date) (domain.PlayerState, bool) {
	if !p.HasStreakDate() {
		return p, false
	}

	gap := GapDays(p, today)
	changed := false
	if gap >= 1 && p.CollectedToday {
		p.CollectedToday = false
		changed = true
	}
	if gap > 1 && p.StreakCount != 0 {
		p.StreakCount = 0
		changed = true
	}
	return p, changed
}

package streak

import (
	"testing"
	"time"

	"github.com/golang-sql/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/degenfarm/internal/domain"
)

var day1 = civil.Date{Year: 2026, Month: time.March, Day: 1}

func TestAdvance_FirstCollection(t *testing.T) {
	p := domain.NewPlayerState(time.Now())
	assert.Equal(t, StateNoStreak, StateOf(p))

	got, tr := Advance(p, day1)

	assert.Equal(t, 1, got.StreakCount)
	assert.True(t, got.CollectedToday)
	assert.Equal(t, day1, got.LastStreakDate)
	assert.Equal(t, Transition{Before: 0, After: 1}, tr)
	assert.Equal(t, StateHarvestedToday, StateOf(got))
}

func TestAdvance_Sequence(t *testing.T) {
	p := domain.NewPlayerState(time.Now())

	p, _ = Advance(p, day1)
	require.Equal(t, 1, p.StreakCount)

	p, _ = Advance(p, day1.AddDays(1))
	require.Equal(t, 2, p.StreakCount)

	// skip day 3, collect on day 4
	p, tr := Advance(p, day1.AddDays(3))
	assert.Equal(t, 1, p.StreakCount, "broken streak restarts at one, not three")
	assert.True(t, tr.Broken)
	assert.Equal(t, 2, tr.Before)
	assert.Equal(t, day1.AddDays(3), p.LastStreakDate)
}

func TestAdvance_SameDayIsIdempotent(t *testing.T) {
	p := domain.NewPlayerState(time.Now())
	p, _ = Advance(p, day1)
	p, _ = Advance(p, day1.AddDays(1))

	again, tr := Advance(p, day1.AddDays(1))
	assert.Equal(t, p, again)
	assert.Equal(t, 2, tr.After)
	assert.False(t, tr.Broken)
}

func TestAdvance_ClockMovedBack(t *testing.T) {
	p := domain.NewPlayerState(time.Now())
	p, _ = Advance(p, day1.AddDays(1))
	p.CollectedToday = false

	got, _ := Advance(p, day1)
	assert.Equal(t, 1, got.StreakCount)
	assert.Equal(t, day1.AddDays(1), got.LastStreakDate, "streak date never moves backwards")
	assert.True(t, got.CollectedToday)
}

func TestAdvance_ReachesBonusThresholds(t *testing.T) {
	p := domain.NewPlayerState(time.Now())
	for i := 0; i < LongStreakDays; i++ {
		p, _ = Advance(p, day1.AddDays(i))
	}
	assert.Equal(t, LongStreakDays, p.StreakCount)
}

func TestReconcile(t *testing.T) {
	collected := func(streakCount int, on civil.Date) domain.PlayerState {
		p := domain.NewPlayerState(time.Now())
		p.StreakCount = streakCount
		p.LastStreakDate = on
		p.CollectedToday = true
		return p
	}

	tests := []struct {
		name        string
		state       domain.PlayerState
		today       civil.Date
		wantStreak  int
		wantToday   bool
		wantChanged bool
		wantState   State
	}{
		{"never collected", domain.NewPlayerState(time.Now()), day1, 0, false, false, StateNoStreak},
		{"same day", collected(4, day1), day1, 4, true, false, StateHarvestedToday},
		{"next day clears flag", collected(4, day1), day1.AddDays(1), 4, false, true, StateStreakActive},
		{"two day gap breaks streak", collected(4, day1), day1.AddDays(2), 0, false, true, StateNoStreak},
		{"long absence", collected(9, day1), day1.AddDays(30), 0, false, true, StateNoStreak},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := Reconcile(tt.state, tt.today)
			assert.Equal(t, tt.wantStreak, got.StreakCount)
			assert.Equal(t, tt.wantToday, got.CollectedToday)
			assert.Equal(t, tt.wantChanged, changed)
			assert.Equal(t, tt.wantState, StateOf(got))
		})
	}
}

func TestReconcile_Idempotent(t *testing.T) {
	p := domain.NewPlayerState(time.Now())
	p, _ = Advance(p, day1)

	once, changed := Reconcile(p, day1.AddDays(5))
	require.True(t, changed)
	twice, changed := Reconcile(once, day1.AddDays(5))
	assert.False(t, changed)
	assert.Equal(t, once, twice)
}

func TestToday_UsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	now := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, civil.Date{Year: 2026, Month: time.March, Day: 1}, Today(now, time.UTC))
	assert.Equal(t, civil.Date{Year: 2026, Month: time.March, Day: 2}, Today(now, loc))
}

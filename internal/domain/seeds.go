package domain

import (
	"math"
	"strconv"
)

// MicroSeedsPerSeed is the fixed-point scale of Seeds.
const MicroSeedsPerSeed = 1_000_000

// Seeds is an amount of the farm resource in integer micro-seeds.
// Fixed point keeps long-running accrual free of float drift.
type Seeds int64

// SeedsFromFloat converts a fractional seed amount, truncating below one micro-seed.
func SeedsFromFloat(v float64) Seeds {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	scaled := v * MicroSeedsPerSeed
	if scaled >= math.MaxInt64 {
		return Seeds(math.MaxInt64)
	}
	return Seeds(scaled)
}

// WholeSeeds converts an integer seed amount (costs, balances in whole seeds).
func WholeSeeds(n int64) Seeds {
	return Seeds(n * MicroSeedsPerSeed)
}

// Float returns the amount in seeds.
func (s Seeds) Float() float64 {
	return float64(s) / MicroSeedsPerSeed
}

// Floor returns the whole-seed part, as shown on the leaderboard.
func (s Seeds) Floor() int64 {
	return int64(s) / MicroSeedsPerSeed
}

// Scale multiplies the amount by a non-negative factor, truncating.
func (s Seeds) Scale(factor float64) Seeds {
	return SeedsFromFloat(s.Float() * factor)
}

// String renders the amount with four decimals, like the pending display.
func (s Seeds) String() string {
	return strconv.FormatFloat(s.Float(), 'f', 4, 64)
}

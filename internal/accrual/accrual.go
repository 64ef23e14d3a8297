// Package accrual converts elapsed wall-clock time into pending seeds.
package accrual

import (
	"math"
	"time"

	"github.com/osse101/degenfarm/internal/domain"
)

// Unbounded is the capacity used when accrual has no storage cap.
const Unbounded = domain.Seeds(math.MaxInt64)

// ComputePending returns the seeds accrued between lastCollectionAt and now
// at ratePerHour, capped at capacity.
// A now earlier than lastCollectionAt (clock skew) yields zero.
func ComputePending(now, lastCollectionAt time.Time, ratePerHour float64, capacity domain.Seeds) domain.Seeds {
	hoursElapsed := now.Sub(lastCollectionAt).Hours()
	if hoursElapsed <= 0 || ratePerHour <= 0 {
		return 0
	}

	pending := domain.SeedsFromFloat(hoursElapsed * ratePerHour)
	if capacity >= 0 && pending > capacity {
		return capacity
	}
	return pending
}

// CapacityFor derives the storage cap for a character.
// infinite short-circuits to Unbounded, as does a zero baseCapacityHours
// (no cap configured). storageFactor below 1 is treated as 1.
func CapacityFor(ratePerHour, baseCapacityHours, storageFactor float64, infinite bool) domain.Seeds {
	if infinite || baseCapacityHours <= 0 {
		return Unbounded
	}
	if storageFactor < 1 {
		storageFactor = 1
	}
	return domain.SeedsFromFloat(baseCapacityHours * ratePerHour * storageFactor)
}

// TimeToFull returns how long until pending reaches capacity, or zero when
// already full. Unbounded capacity returns false.
func TimeToFull(now, lastCollectionAt time.Time, ratePerHour float64, capacity domain.Seeds) (time.Duration, bool) {
	if capacity == Unbounded || ratePerHour <= 0 {
		return 0, false
	}
	hoursToFill := capacity.Float() / ratePerHour
	full := lastCollectionAt.Add(time.Duration(hoursToFill * float64(time.Hour)))
	if !full.After(now) {
		return 0, true
	}
	return full.Sub(now), true
}

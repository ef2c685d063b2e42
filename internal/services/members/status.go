package members

import (
	"time"

	"github.com/fitgym/fgms/internal/dto"
)

// Status derives the membership status from the record and the clock.
// It is the single place the active/expired/inactive rule lives; every
// read path calls it and nothing ever stores the result.
//
// Priority order: a soft-deleted member is inactive no matter what the
// expiry says, then a lapsed expiry means expired, otherwise active.
func Status(isActive bool, expiresAt time.Time, now time.Time) dto.MemberStatus {
	if !isActive {
		return dto.MemberStatusInactive
	}
	if now.After(expiresAt) {
		return dto.MemberStatusExpired
	}
	return dto.MemberStatusActive
}

// CalendarDay strips the time of day, leaving the attendance-log key.
func CalendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

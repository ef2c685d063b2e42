package members

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/fitgym/fgms/internal/dto"
	"github.com/fitgym/fgms/internal/repository"
	svc "github.com/fitgym/fgms/internal/services"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// MarkAttendance records a check-in for the calendar day of at (the
// current time when at is nil). The first mark of a day opens the entry,
// the second closes it, and any further mark is an idempotent no-op.
//
// Expired and inactive members can still be marked; the original system
// allowed it and callers depend on recording a visit regardless of
// membership state.
func (m *Member) MarkAttendance(ctx context.Context, id uuid.UUID, at *time.Time) (*dto.Member, error) {
	exists, err := m.MemberRepo.Exists(ctx, repository.MemberRepositoryFilter{ID: &id})
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, &svc.APIError{
			Status:  http.StatusNotFound,
			Message: "Member not found",
		}
	}

	instant := m.now()
	if at != nil {
		instant = *at
	}
	day := CalendarDay(instant)

	entry, err := m.AttendanceRepo.GetForDay(ctx, id, day)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if err := m.openEntry(ctx, id, day, instant); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	case !entry.CheckOut.Valid:
		// Second mark of the day closes the open entry. A concurrent
		// closer winning the race leaves nothing to do.
		if _, err := m.AttendanceRepo.Close(ctx, id, day, instant); err != nil {
			return nil, err
		}
	default:
		// Already checked in and out today.
	}

	return m.Get(ctx, id)
}

func (m *Member) openEntry(ctx context.Context, id uuid.UUID, day time.Time, instant time.Time) error {
	_, err := m.AttendanceRepo.Create(ctx, &repository.AttendanceEntry{
		MemberID: id,
		Day:      day,
		CheckIn:  instant,
	})
	if err == nil {
		return nil
	}

	// A racing first mark already opened the day; this mark becomes the
	// check-out instead of a duplicate entry.
	if repository.IsUniqueViolation(err) {
		_, err = m.AttendanceRepo.Close(ctx, id, day, instant)
	}
	return err
}

// Attendance returns one member's full log, oldest day first.
func (m *Member) Attendance(ctx context.Context, id uuid.UUID) ([]dto.AttendanceEntry, error) {
	exists, err := m.MemberRepo.Exists(ctx, repository.MemberRepositoryFilter{ID: &id})
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, &svc.APIError{
			Status:  http.StatusNotFound,
			Message: "Member not found",
		}
	}

	entries, err := m.AttendanceRepo.ListByMember(ctx, id)
	if err != nil {
		return nil, err
	}

	return lo.Map(entries, func(entry repository.AttendanceEntry, _ int) dto.AttendanceEntry {
		return mapAttendanceEntry(entry)
	}), nil
}

// AllAttendance flattens the logs of every active member for the
// attendance overview.
func (m *Member) AllAttendance(ctx context.Context) ([]dto.AttendanceRecord, error) {
	rows, err := m.AttendanceRepo.ListAll(ctx, true)
	if err != nil {
		return nil, err
	}

	return lo.Map(rows, func(row repository.AttendanceRow, _ int) dto.AttendanceRecord {
		record := dto.AttendanceRecord{
			MemberID:   row.MemberID,
			MemberName: row.MemberName,
			Date:       row.Day,
			CheckIn:    row.CheckIn,
		}
		if row.CheckOut.Valid {
			record.CheckOut = lo.ToPtr(row.CheckOut.Time)
		}
		return record
	}), nil
}

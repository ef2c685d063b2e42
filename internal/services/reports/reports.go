package reports

import (
	"context"

	"github.com/fitgym/fgms/internal/dto"
	"github.com/fitgym/fgms/internal/repository"
	"github.com/samber/lo"
)

var (
	_ MemberRepository     = (*repository.MemberRepository)(nil)
	_ AttendanceRepository = (*repository.AttendanceRepository)(nil)
)

type MemberRepository interface {
	Count(ctx context.Context, filter repository.MemberRepositoryFilter) (int, error)
}

type AttendanceRepository interface {
	CountByMember(ctx context.Context) ([]repository.AttendanceCountRow, error)
}

type Report struct {
	MemberRepo     MemberRepository
	AttendanceRepo AttendanceRepository
}

func New(memberRepo MemberRepository, attendanceRepo AttendanceRepository) *Report {
	return &Report{
		MemberRepo:     memberRepo,
		AttendanceRepo: attendanceRepo,
	}
}

// Status counts members by the is_active flag. This is the raw
// soft-delete split, not the derived membership status; expired members
// count as active here, matching the original report.
func (r *Report) Status(ctx context.Context) (*dto.StatusReport, error) {
	active, err := r.MemberRepo.Count(ctx, repository.MemberRepositoryFilter{
		IsActive: lo.ToPtr(true),
	})
	if err != nil {
		return nil, err
	}

	inactive, err := r.MemberRepo.Count(ctx, repository.MemberRepositoryFilter{
		IsActive: lo.ToPtr(false),
	})
	if err != nil {
		return nil, err
	}

	return &dto.StatusReport{
		Active:   active,
		Inactive: inactive,
	}, nil
}

// Attendance returns total visits per member, members with no visits
// included.
func (r *Report) Attendance(ctx context.Context) ([]dto.MemberAttendanceCount, error) {
	rows, err := r.AttendanceRepo.CountByMember(ctx)
	if err != nil {
		return nil, err
	}

	return lo.Map(rows, func(row repository.AttendanceCountRow, _ int) dto.MemberAttendanceCount {
		return dto.MemberAttendanceCount{
			MemberID:        row.MemberID,
			Name:            row.MemberName,
			AttendanceCount: row.Visits,
		}
	}), nil
}

package members

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/fitgym/fgms/internal/config"
	"github.com/fitgym/fgms/internal/dto"
	"github.com/fitgym/fgms/internal/repository"
	svc "github.com/fitgym/fgms/internal/services"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

var (
	_ MemberRepository     = (*repository.MemberRepository)(nil)
	_ AttendanceRepository = (*repository.AttendanceRepository)(nil)
)

type MemberRepository interface {
	Get(ctx context.Context, filter repository.MemberRepositoryFilter) (*repository.Member, error)
	Exists(ctx context.Context, filter repository.MemberRepositoryFilter) (bool, error)
	Count(ctx context.Context, filter repository.MemberRepositoryFilter) (int, error)
	List(ctx context.Context, filter repository.MemberRepositoryFilter, opts repository.QueryOptions) ([]repository.Member, error)
	Create(ctx context.Context, member *repository.Member) (*repository.Member, error)
	Update(ctx context.Context, id uuid.UUID, update repository.MemberUpdate) (*repository.Member, error)
}

type AttendanceRepository interface {
	GetForDay(ctx context.Context, memberID uuid.UUID, day time.Time) (*repository.AttendanceEntry, error)
	Create(ctx context.Context, entry *repository.AttendanceEntry) (*repository.AttendanceEntry, error)
	Close(ctx context.Context, memberID uuid.UUID, day time.Time, checkOut time.Time) (bool, error)
	ListByMember(ctx context.Context, memberID uuid.UUID) ([]repository.AttendanceEntry, error)
	ListAll(ctx context.Context, activeOnly bool) ([]repository.AttendanceRow, error)
}

type Member struct {
	Config         *config.Config
	MemberRepo     MemberRepository
	AttendanceRepo AttendanceRepository

	now func() time.Time
}

func New(cfg *config.Config, memberRepo MemberRepository, attendanceRepo AttendanceRepository) *Member {
	return &Member{
		Config:         cfg,
		MemberRepo:     memberRepo,
		AttendanceRepo: attendanceRepo,
		now:            time.Now,
	}
}

func (m *Member) Create(ctx context.Context, input *dto.CreateMemberInput) (*dto.Member, error) {
	phoneExists, err := m.MemberRepo.Exists(ctx, repository.MemberRepositoryFilter{
		Phone: &input.Number,
	})
	if err != nil {
		return nil, err
	}
	if phoneExists {
		return nil, &svc.APIError{
			Status:  http.StatusConflict,
			Message: "A member with this phone number already exists",
		}
	}

	picture := input.Picture
	if picture == "" {
		picture = dto.DefaultPictureURL
	}

	member, err := m.MemberRepo.Create(ctx, &repository.Member{
		Name:       input.Name,
		Phone:      input.Number,
		Membership: input.Membership,
		ExpiresAt:  input.Expiry,
		Picture:    picture,
		JoinedAt:   m.now(),
	})
	if err != nil {
		// Two concurrent creates can both pass the Exists check; the
		// unique index settles it.
		if repository.IsUniqueViolation(err) {
			return nil, &svc.APIError{
				Status:  http.StatusConflict,
				Message: "A member with this phone number already exists",
			}
		}
		return nil, err
	}

	return m.mapRepositoryToDTO(member, nil), nil
}

func (m *Member) Get(ctx context.Context, id uuid.UUID) (*dto.Member, error) {
	member, err := m.MemberRepo.Get(ctx, repository.MemberRepositoryFilter{ID: &id})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &svc.APIError{
				Status:  http.StatusNotFound,
				Message: "Member not found",
			}
		}
		return nil, err
	}

	entries, err := m.AttendanceRepo.ListByMember(ctx, member.ID)
	if err != nil {
		return nil, err
	}

	return m.mapRepositoryToDTO(member, entries), nil
}

func (m *Member) List(ctx context.Context, filters *dto.MemberFilters, opts *dto.QueryOptions) (*dto.MemberList, error) {
	filter := repository.MemberRepositoryFilter{
		IsActive:   filters.IsActive,
		JoinedFrom: filters.JoinedFrom,
		JoinedTo:   filters.JoinedTo,
	}
	if filters.Membership != nil {
		filter.Membership = lo.ToPtr(string(*filters.Membership))
	}

	queryOpts := repository.QueryOptions{Page: opts.Page, Limit: opts.Limit}.Normalize()

	members, err := m.MemberRepo.List(ctx, filter, queryOpts)
	if err != nil {
		return nil, err
	}

	total, err := m.MemberRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &dto.MemberList{
		Members: lo.Map(members, func(member repository.Member, _ int) dto.Member {
			return *m.mapRepositoryToDTO(&member, nil)
		}),
		Pagination: dto.Pagination{
			Total: total,
			Page:  queryOpts.Page,
			Pages: (total + queryOpts.Limit - 1) / queryOpts.Limit,
		},
	}, nil
}

func (m *Member) Update(ctx context.Context, id uuid.UUID, input *dto.UpdateMemberInput) (*dto.Member, error) {
	member, err := m.MemberRepo.Get(ctx, repository.MemberRepositoryFilter{ID: &id})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &svc.APIError{
				Status:  http.StatusNotFound,
				Message: "Member not found",
			}
		}
		return nil, err
	}

	if input.Number != nil && *input.Number != member.Phone {
		phoneExists, err := m.MemberRepo.Exists(ctx, repository.MemberRepositoryFilter{
			Phone: input.Number,
		})
		if err != nil {
			return nil, err
		}
		if phoneExists {
			return nil, &svc.APIError{
				Status:  http.StatusConflict,
				Message: "A member with this phone number already exists",
			}
		}
	}

	updatedMember, err := m.MemberRepo.Update(ctx, id, repository.MemberUpdate{
		Name:       input.Name,
		Phone:      input.Number,
		Membership: input.Membership,
		ExpiresAt:  input.Expiry,
		Picture:    input.Picture,
		IsActive:   input.IsActive,
	})
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, &svc.APIError{
				Status:  http.StatusConflict,
				Message: "A member with this phone number already exists",
			}
		}
		return nil, err
	}

	return m.mapRepositoryToDTO(updatedMember, nil), nil
}

// Deactivate is the soft delete: the record stays, is_active flips off,
// and the derived status becomes inactive on every subsequent read.
func (m *Member) Deactivate(ctx context.Context, id uuid.UUID) error {
	exists, err := m.MemberRepo.Exists(ctx, repository.MemberRepositoryFilter{ID: &id})
	if err != nil {
		return err
	}
	if !exists {
		return &svc.APIError{
			Status:  http.StatusNotFound,
			Message: "Member not found",
		}
	}

	_, err = m.MemberRepo.Update(ctx, id, repository.MemberUpdate{
		IsActive: lo.ToPtr(false),
	})
	return err
}

func (m *Member) mapRepositoryToDTO(member *repository.Member, entries []repository.AttendanceEntry) *dto.Member {
	return &dto.Member{
		ID:         member.ID,
		Name:       member.Name,
		Number:     member.Phone,
		Membership: dto.MembershipType(member.Membership),
		Expiry:     member.ExpiresAt,
		Picture:    member.Picture,
		Joined:     member.JoinedAt,
		IsActive:   member.IsActive,
		Status:     Status(member.IsActive, member.ExpiresAt, m.now()),
		Attendance: lo.Map(entries, func(entry repository.AttendanceEntry, _ int) dto.AttendanceEntry {
			return mapAttendanceEntry(entry)
		}),
	}
}

func mapAttendanceEntry(entry repository.AttendanceEntry) dto.AttendanceEntry {
	mapped := dto.AttendanceEntry{
		Date:    entry.Day,
		CheckIn: entry.CheckIn,
	}
	if entry.CheckOut.Valid {
		mapped.CheckOut = lo.ToPtr(entry.CheckOut.Time)
	}
	return mapped
}

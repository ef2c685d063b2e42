package members

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/fitgym/fgms/internal/config"
	"github.com/fitgym/fgms/internal/repository"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// fakeMemberRepo is an in-memory MemberRepository keeping insertion
// order so list pagination behaves like the real newest-first query.
type fakeMemberRepo struct {
	mu      sync.Mutex
	members []*repository.Member
}

func newFakeMemberRepo() *fakeMemberRepo {
	return &fakeMemberRepo{}
}

func (f *fakeMemberRepo) matches(member *repository.Member, filter repository.MemberRepositoryFilter) bool {
	if filter.ID != nil && member.ID != *filter.ID {
		return false
	}
	if filter.Phone != nil && member.Phone != *filter.Phone {
		return false
	}
	if filter.IsActive != nil && member.IsActive != *filter.IsActive {
		return false
	}
	if filter.Membership != nil && member.Membership != *filter.Membership {
		return false
	}
	if filter.JoinedFrom != nil && member.JoinedAt.Before(*filter.JoinedFrom) {
		return false
	}
	if filter.JoinedTo != nil && member.JoinedAt.After(*filter.JoinedTo) {
		return false
	}
	return true
}

func (f *fakeMemberRepo) filtered(filter repository.MemberRepositoryFilter) []*repository.Member {
	// Newest first, like the real created_at DESC ordering.
	var result []*repository.Member
	for i := len(f.members) - 1; i >= 0; i-- {
		if f.matches(f.members[i], filter) {
			result = append(result, f.members[i])
		}
	}
	return result
}

func (f *fakeMemberRepo) Get(_ context.Context, filter repository.MemberRepositoryFilter) (*repository.Member, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	matches := f.filtered(filter)
	if len(matches) == 0 {
		return nil, sql.ErrNoRows
	}
	member := *matches[0]
	return &member, nil
}

func (f *fakeMemberRepo) Exists(ctx context.Context, filter repository.MemberRepositoryFilter) (bool, error) {
	count, err := f.Count(ctx, filter)
	return count > 0, err
}

func (f *fakeMemberRepo) Count(_ context.Context, filter repository.MemberRepositoryFilter) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.filtered(filter)), nil
}

func (f *fakeMemberRepo) List(_ context.Context, filter repository.MemberRepositoryFilter, opts repository.QueryOptions) ([]repository.Member, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	opts = opts.Normalize()

	matches := f.filtered(filter)
	start := (opts.Page - 1) * opts.Limit
	if start >= len(matches) {
		return []repository.Member{}, nil
	}
	end := start + opts.Limit
	if end > len(matches) {
		end = len(matches)
	}

	page := make([]repository.Member, 0, end-start)
	for _, member := range matches[start:end] {
		page = append(page, *member)
	}
	return page, nil
}

func (f *fakeMemberRepo) Create(_ context.Context, member *repository.Member) (*repository.Member, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.members {
		if existing.Phone == member.Phone {
			return nil, &pq.Error{Code: "23505"}
		}
	}

	created := *member
	created.ID = uuid.New()
	created.IsActive = true
	created.CreatedAt = time.Now()
	f.members = append(f.members, &created)

	result := created
	return &result, nil
}

func (f *fakeMemberRepo) Update(_ context.Context, id uuid.UUID, update repository.MemberUpdate) (*repository.Member, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, member := range f.members {
		if member.ID != id {
			continue
		}
		if update.Phone != nil {
			for _, other := range f.members {
				if other.ID != id && other.Phone == *update.Phone {
					return nil, &pq.Error{Code: "23505"}
				}
			}
			member.Phone = *update.Phone
		}
		if update.Name != nil {
			member.Name = *update.Name
		}
		if update.Membership != nil {
			member.Membership = *update.Membership
		}
		if update.ExpiresAt != nil {
			member.ExpiresAt = *update.ExpiresAt
		}
		if update.Picture != nil {
			member.Picture = *update.Picture
		}
		if update.IsActive != nil {
			member.IsActive = *update.IsActive
		}
		result := *member
		return &result, nil
	}
	return nil, sql.ErrNoRows
}

// fakeAttendanceRepo mirrors the real repository's contract, including
// the unique-violation on a duplicate day and the conditional close.
type fakeAttendanceRepo struct {
	mu      sync.Mutex
	entries []*repository.AttendanceEntry
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{}
}

func (f *fakeAttendanceRepo) find(memberID uuid.UUID, day time.Time) *repository.AttendanceEntry {
	for _, entry := range f.entries {
		if entry.MemberID == memberID && entry.Day.Equal(day) {
			return entry
		}
	}
	return nil
}

func (f *fakeAttendanceRepo) GetForDay(_ context.Context, memberID uuid.UUID, day time.Time) (*repository.AttendanceEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entry := f.find(memberID, day)
	if entry == nil {
		return nil, sql.ErrNoRows
	}
	result := *entry
	return &result, nil
}

func (f *fakeAttendanceRepo) Create(_ context.Context, entry *repository.AttendanceEntry) (*repository.AttendanceEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.find(entry.MemberID, entry.Day) != nil {
		return nil, &pq.Error{Code: "23505"}
	}

	created := *entry
	created.ID = uuid.New()
	created.CreatedAt = time.Now()
	f.entries = append(f.entries, &created)

	result := created
	return &result, nil
}

func (f *fakeAttendanceRepo) Close(_ context.Context, memberID uuid.UUID, day time.Time, checkOut time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entry := f.find(memberID, day)
	if entry == nil || entry.CheckOut.Valid {
		return false, nil
	}
	entry.CheckOut = sql.NullTime{Time: checkOut, Valid: true}
	return true, nil
}

func (f *fakeAttendanceRepo) ListByMember(_ context.Context, memberID uuid.UUID) ([]repository.AttendanceEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := []repository.AttendanceEntry{}
	for _, entry := range f.entries {
		if entry.MemberID == memberID {
			result = append(result, *entry)
		}
	}
	return result, nil
}

func (f *fakeAttendanceRepo) ListAll(_ context.Context, _ bool) ([]repository.AttendanceRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := []repository.AttendanceRow{}
	for _, entry := range f.entries {
		result = append(result, repository.AttendanceRow{
			MemberID: entry.MemberID,
			Day:      entry.Day,
			CheckIn:  entry.CheckIn,
			CheckOut: entry.CheckOut,
		})
	}
	return result, nil
}

func newTestService() (*Member, *fakeMemberRepo, *fakeAttendanceRepo) {
	memberRepo := newFakeMemberRepo()
	attendanceRepo := newFakeAttendanceRepo()
	service := New(&config.Config{}, memberRepo, attendanceRepo)
	return service, memberRepo, attendanceRepo
}

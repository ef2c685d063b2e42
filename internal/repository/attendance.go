package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type AttendanceRepository struct {
	db   *sqlx.DB
	psql sq.StatementBuilderType
}

func NewAttendanceRepository(db *sqlx.DB) *AttendanceRepository {
	return &AttendanceRepository{
		db:   db,
		psql: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (aq *AttendanceRepository) GetForDay(ctx context.Context, memberID uuid.UUID, day time.Time) (*AttendanceEntry, error) {
	query, args, err := aq.psql.Select("*").
		From("attendance").
		Where(sq.Eq{"member_id": memberID}).
		Where(sq.Eq{"day": day}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var entry AttendanceEntry
	if err := aq.db.GetContext(ctx, &entry, query, args...); err != nil {
		return nil, err
	}
	return &entry, nil
}

// Create inserts the day's entry. The unique constraint on
// (member_id, day) rejects a second entry for the same calendar day;
// callers detect that with IsUniqueViolation and fall back to Close.
func (aq *AttendanceRepository) Create(ctx context.Context, entry *AttendanceEntry) (*AttendanceEntry, error) {
	builder := aq.psql.Insert("attendance").
		Columns("member_id", "day", "check_in").
		Values(entry.MemberID, entry.Day, entry.CheckIn).
		Suffix("RETURNING *")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	var createdEntry AttendanceEntry
	err = aq.db.GetContext(ctx, &createdEntry, query, args...)
	return &createdEntry, err
}

// Close stamps the check-out on the day's open entry. The check_out IS
// NULL guard makes the write conditional, so a racing second close is a
// no-op rather than an overwrite. Reports whether a row was closed.
func (aq *AttendanceRepository) Close(ctx context.Context, memberID uuid.UUID, day time.Time, checkOut time.Time) (bool, error) {
	query, args, err := aq.psql.Update("attendance").
		Set("check_out", checkOut).
		Where(sq.Eq{"member_id": memberID}).
		Where(sq.Eq{"day": day}).
		Where("check_out IS NULL").
		ToSql()
	if err != nil {
		return false, err
	}

	result, err := aq.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (aq *AttendanceRepository) ListByMember(ctx context.Context, memberID uuid.UUID) ([]AttendanceEntry, error) {
	query, args, err := aq.psql.Select("*").
		From("attendance").
		Where(sq.Eq{"member_id": memberID}).
		OrderBy("day ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	entries := []AttendanceEntry{}
	if err := aq.db.SelectContext(ctx, &entries, query, args...); err != nil {
		return nil, err
	}
	return entries, nil
}

// ListAll flattens every entry across members, joined with the member
// name. When activeOnly is set, soft-deleted members are skipped.
func (aq *AttendanceRepository) ListAll(ctx context.Context, activeOnly bool) ([]AttendanceRow, error) {
	builder := aq.psql.Select(
		"a.member_id AS member_id",
		"m.name AS member_name",
		"a.day AS day",
		"a.check_in AS check_in",
		"a.check_out AS check_out",
	).
		From("attendance a").
		Join("members m ON m.id = a.member_id").
		OrderBy("a.day ASC, a.check_in ASC")

	if activeOnly {
		builder = builder.Where(sq.Eq{"m.is_active": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows := []AttendanceRow{}
	if err := aq.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	return rows, nil
}

// CountByMember returns the visit count per member, members with no
// visits included.
func (aq *AttendanceRepository) CountByMember(ctx context.Context) ([]AttendanceCountRow, error) {
	query, args, err := aq.psql.Select(
		"m.id AS member_id",
		"m.name AS member_name",
		"COUNT(a.id) AS visits",
	).
		From("members m").
		LeftJoin("attendance a ON a.member_id = m.id").
		GroupBy("m.id", "m.name").
		OrderBy("m.name ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows := []AttendanceCountRow{}
	if err := aq.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	return rows, nil
}

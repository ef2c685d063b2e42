package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type MemberRepository struct {
	db   *sqlx.DB
	psql sq.StatementBuilderType
}

func NewMemberRepository(db *sqlx.DB) *MemberRepository {
	return &MemberRepository{
		db:   db,
		psql: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

type MemberRepositoryFilter struct {
	ID         *uuid.UUID
	Phone      *string
	IsActive   *bool
	Membership *string
	JoinedFrom *time.Time
	JoinedTo   *time.Time
}

func (mq *MemberRepository) buildQuery(filter MemberRepositoryFilter, queryType QueryType) sq.SelectBuilder {
	var builder sq.SelectBuilder
	switch queryType {
	case QueryTypeSelect:
		builder = mq.psql.Select("*").From("members")
	case QueryTypeCount:
		builder = mq.psql.Select("COUNT(*)").From("members")
	}

	if filter.ID != nil {
		builder = builder.Where(sq.Eq{"id": *filter.ID})
	}
	if filter.Phone != nil {
		builder = builder.Where(sq.Eq{"phone": *filter.Phone})
	}
	if filter.IsActive != nil {
		builder = builder.Where(sq.Eq{"is_active": *filter.IsActive})
	}
	if filter.Membership != nil {
		builder = builder.Where(sq.Eq{"membership": *filter.Membership})
	}
	// Joined range is inclusive on whichever bounds are present.
	if filter.JoinedFrom != nil {
		builder = builder.Where(sq.GtOrEq{"joined_at": *filter.JoinedFrom})
	}
	if filter.JoinedTo != nil {
		builder = builder.Where(sq.LtOrEq{"joined_at": *filter.JoinedTo})
	}

	return builder
}

func (mq *MemberRepository) Get(ctx context.Context, filter MemberRepositoryFilter) (*Member, error) {
	query, args, err := mq.buildQuery(filter, QueryTypeSelect).ToSql()
	if err != nil {
		return nil, err
	}

	var member Member
	if err := mq.db.GetContext(ctx, &member, query, args...); err != nil {
		return nil, err
	}
	return &member, nil
}

func (mq *MemberRepository) Exists(ctx context.Context, filter MemberRepositoryFilter) (bool, error) {
	count, err := mq.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (mq *MemberRepository) Count(ctx context.Context, filter MemberRepositoryFilter) (int, error) {
	query, args, err := mq.buildQuery(filter, QueryTypeCount).ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := mq.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, err
	}
	return count, nil
}

// List returns one page of the filtered set, newest members first. The
// total for the same filter comes from Count so callers can derive page
// counts.
func (mq *MemberRepository) List(ctx context.Context, filter MemberRepositoryFilter, opts QueryOptions) ([]Member, error) {
	builder := ApplyPagination(mq.buildQuery(filter, QueryTypeSelect), opts)
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	members := []Member{}
	if err := mq.db.SelectContext(ctx, &members, query, args...); err != nil {
		return nil, err
	}
	return members, nil
}

func (mq *MemberRepository) Create(ctx context.Context, member *Member) (*Member, error) {
	builder := mq.psql.Insert("members").
		Columns("name", "phone", "membership", "expires_at", "picture", "joined_at").
		Values(member.Name, member.Phone, member.Membership, member.ExpiresAt, member.Picture, member.JoinedAt).
		Suffix("RETURNING *")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	var createdMember Member
	err = mq.db.GetContext(ctx, &createdMember, query, args...)
	return &createdMember, err
}

// MemberUpdate is a partial update; nil fields are left untouched.
type MemberUpdate struct {
	Name       *string
	Phone      *string
	Membership *string
	ExpiresAt  *time.Time
	Picture    *string
	IsActive   *bool
}

func (mq *MemberRepository) Update(ctx context.Context, id uuid.UUID, update MemberUpdate) (*Member, error) {
	builder := mq.psql.Update("members").
		Set("updated_at", time.Now())

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Phone != nil {
		builder = builder.Set("phone", *update.Phone)
	}
	if update.Membership != nil {
		builder = builder.Set("membership", *update.Membership)
	}
	if update.ExpiresAt != nil {
		builder = builder.Set("expires_at", *update.ExpiresAt)
	}
	if update.Picture != nil {
		builder = builder.Set("picture", *update.Picture)
	}
	if update.IsActive != nil {
		builder = builder.Set("is_active", *update.IsActive)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING *").
		ToSql()
	if err != nil {
		return nil, err
	}

	var updatedMember Member
	err = mq.db.GetContext(ctx, &updatedMember, query, args...)
	return &updatedMember, err
}

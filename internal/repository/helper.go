package repository

import (
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"
)

type QueryType string

const (
	QueryTypeSelect QueryType = "select"
	QueryTypeCount  QueryType = "count"

	defaultPageSize = 10
	maxPageSize     = 100
)

type QueryOptions struct {
	Page  int
	Limit int
}

// Normalize clamps the options into the supported range so a zero value
// behaves like the first page with the default size.
func (q QueryOptions) Normalize() QueryOptions {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultPageSize
	}
	if q.Limit > maxPageSize {
		q.Limit = maxPageSize
	}
	return q
}

// ApplyPagination orders by creation, newest first, with id as the
// tie-breaker so the order is total. Out-of-range pages simply select an
// empty slice.
func ApplyPagination(builder sq.SelectBuilder, opts QueryOptions) sq.SelectBuilder {
	opts = opts.Normalize()
	return builder.
		OrderBy("created_at DESC, id DESC").
		Limit(uint64(opts.Limit)).
		Offset(uint64((opts.Page - 1) * opts.Limit))
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// failure (SQLSTATE 23505).
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func ToNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}

	return sql.NullTime{Time: *t, Valid: true}
}

func ToNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{Valid: false}
	}

	return sql.NullString{String: *s, Valid: true}
}

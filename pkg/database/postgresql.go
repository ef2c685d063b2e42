package database

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/reflectx"
	_ "github.com/lib/pq"
)

type PostgresDB struct {
	DB         *sqlx.DB
	SqlBuilder sq.StatementBuilderType
}

func New(URL string) (*PostgresDB, func(), error) {
	db, cleanup, err := initDB(URL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	pgDB := &PostgresDB{
		DB:         db,
		SqlBuilder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}

	if err := pgDB.ensureSchema(); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	return pgDB, cleanup, nil
}

func initDB(URL string) (*sqlx.DB, func(), error) {
	db, err := sqlx.Open("postgres", URL)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = db.Close()
	}
	db.Mapper = reflectx.NewMapper("json")

	return db, cleanup, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'admin',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS members (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL,
		phone TEXT NOT NULL UNIQUE,
		membership TEXT NOT NULL,
		expires_at TIMESTAMPTZ NOT NULL,
		picture TEXT NOT NULL DEFAULT '',
		joined_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS idx_members_is_active ON members (is_active)`,
	`CREATE INDEX IF NOT EXISTS idx_members_joined_at ON members (joined_at DESC)`,
	`CREATE TABLE IF NOT EXISTS attendance (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		member_id UUID NOT NULL REFERENCES members (id),
		day DATE NOT NULL,
		check_in TIMESTAMPTZ NOT NULL,
		check_out TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (member_id, day)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_attendance_day ON attendance (day)`,
}

// ensureSchema applies the idempotent DDL on startup. The unique
// constraint on attendance (member_id, day) is what keeps concurrent
// check-ins from producing two entries for the same calendar day.
func (p *PostgresDB) ensureSchema() error {
	for _, stmt := range schema {
		if _, err := p.DB.ExecContext(context.Background(), stmt); err != nil {
			return err
		}
	}
	return nil
}

package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Struct tags are json because the sqlx mapper is keyed on json tags
// (see pkg/database).

type Member struct {
	ID         uuid.UUID    `json:"id"`
	Name       string       `json:"name"`
	Phone      string       `json:"phone"`
	Membership string       `json:"membership"`
	ExpiresAt  time.Time    `json:"expires_at"`
	Picture    string       `json:"picture"`
	JoinedAt   time.Time    `json:"joined_at"`
	IsActive   bool         `json:"is_active"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  sql.NullTime `json:"updated_at"`
}

type AttendanceEntry struct {
	ID        uuid.UUID    `json:"id"`
	MemberID  uuid.UUID    `json:"member_id"`
	Day       time.Time    `json:"day"`
	CheckIn   time.Time    `json:"check_in"`
	CheckOut  sql.NullTime `json:"check_out"`
	CreatedAt time.Time    `json:"created_at"`
}

// AttendanceRow is an attendance entry joined with its member's name,
// used by the flattened all-members listing.
type AttendanceRow struct {
	MemberID   uuid.UUID    `json:"member_id"`
	MemberName string       `json:"member_name"`
	Day        time.Time    `json:"day"`
	CheckIn    time.Time    `json:"check_in"`
	CheckOut   sql.NullTime `json:"check_out"`
}

// AttendanceCountRow is one row of the per-member visit-count report.
type AttendanceCountRow struct {
	MemberID   uuid.UUID `json:"member_id"`
	MemberName string    `json:"member_name"`
	Visits     int       `json:"visits"`
}

type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

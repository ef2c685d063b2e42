package dto

import (
	"time"

	"github.com/google/uuid"
)

type MembershipType string

type MemberStatus string

const (
	MembershipMonthly   MembershipType = "Monthly"
	MembershipQuarterly MembershipType = "Quarterly"
	MembershipYearly    MembershipType = "Yearly"

	MemberStatusActive   MemberStatus = "active"
	MemberStatusExpired  MemberStatus = "expired"
	MemberStatusInactive MemberStatus = "inactive"
)

// DefaultPictureURL is used when a member is created without a picture.
const DefaultPictureURL = "https://img.freepik.com/free-vector/hand-drawn-nft-style-ape-illustration_23-2149622021.jpg?semt=ais_items_boosted&w=740"

type CreateMemberInput struct {
	Name       string    `json:"name" validate:"required"`
	Number     string    `json:"number" validate:"required,len=10,numeric"`
	Membership string    `json:"membership" validate:"required,oneof=Monthly Quarterly Yearly"`
	Expiry     time.Time `json:"expiry" validate:"required,gt"`
	Picture    string    `json:"picture" validate:"omitempty,url"`
}

// UpdateMemberInput carries a partial update; nil fields are untouched.
// Expiry is deliberately not checked against the clock here: a member
// whose membership has lapsed is represented by the derived status, not
// rejected on write.
type UpdateMemberInput struct {
	Name       *string    `json:"name" validate:"omitempty,min=1"`
	Number     *string    `json:"number" validate:"omitempty,len=10,numeric"`
	Membership *string    `json:"membership" validate:"omitempty,oneof=Monthly Quarterly Yearly"`
	Expiry     *time.Time `json:"expiry"`
	Picture    *string    `json:"picture" validate:"omitempty,url"`
	IsActive   *bool      `json:"isActive"`
}

type AttendanceEntry struct {
	Date     time.Time  `json:"date"`
	CheckIn  time.Time  `json:"checkIn"`
	CheckOut *time.Time `json:"checkOut,omitempty"`
}

type Member struct {
	ID         uuid.UUID         `json:"id"`
	Name       string            `json:"name"`
	Number     string            `json:"number"`
	Membership MembershipType    `json:"membership"`
	Expiry     time.Time         `json:"expiry"`
	Picture    string            `json:"picture"`
	Joined     time.Time         `json:"joined"`
	IsActive   bool              `json:"isActive"`
	Status     MemberStatus      `json:"membershipStatus"`
	Attendance []AttendanceEntry `json:"attendance,omitempty"`
}

type MemberFilters struct {
	IsActive   *bool           `json:"is_active,omitempty"`
	Membership *MembershipType `json:"membership,omitempty"`
	JoinedFrom *time.Time      `json:"joined_from,omitempty"`
	JoinedTo   *time.Time      `json:"joined_to,omitempty"`
}

type QueryOptions struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Pages int `json:"pages"`
}

type MemberList struct {
	Members    []Member   `json:"members"`
	Pagination Pagination `json:"pagination"`
}

// AttendanceRecord is one flattened row of the all-members attendance
// listing.
type AttendanceRecord struct {
	MemberID   uuid.UUID  `json:"memberId"`
	MemberName string     `json:"memberName"`
	Date       time.Time  `json:"date"`
	CheckIn    time.Time  `json:"checkIn"`
	CheckOut   *time.Time `json:"checkOut,omitempty"`
}

type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type AuthUser struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

type AuthResponse struct {
	User         *AuthUser `json:"user"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	ExpiresIn    int64     `json:"expires_in"`
}

type StatusReport struct {
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

type MemberAttendanceCount struct {
	MemberID        uuid.UUID `json:"memberId"`
	Name            string    `json:"name"`
	AttendanceCount int       `json:"attendanceCount"`
}

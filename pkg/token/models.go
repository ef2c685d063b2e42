package token

import (
	"time"

	"github.com/google/uuid"
)

const (
	AccessTokenExpirationTime  = time.Minute * 15   // 15 minutes
	RefreshTokenExpirationTime = time.Hour * 24 * 7 // 7 days

	RefreshTokenName = "refresh_token"
	AccessTokenName  = "access_token"
)

type CreateTokenParams struct {
	ID       uuid.UUID
	Email    string
	Role     string
	Duration time.Duration
}

type TokenPairParams struct {
	ID    uuid.UUID
	Email string
	Role  string
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

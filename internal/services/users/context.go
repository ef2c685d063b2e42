package users

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const userContextKey contextKey = "user"

// UserContextValue is the authenticated identity carried on the request
// context, set by the auth middleware after token verification.
type UserContextValue struct {
	ID    uuid.UUID
	Email string
	Role  string
}

func NewContextWithUser(ctx context.Context, user *UserContextValue) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

func FromContext(ctx context.Context) (*UserContextValue, bool) {
	user, ok := ctx.Value(userContextKey).(*UserContextValue)
	return user, ok
}

package auth

import (
	"context"
	"errors"
)

// UserContext is the per-request identity attached by the auth middleware
type UserContext struct {
	UserID string
	Email  string
	Role   Role
}

type contextKey string

const userContextKey contextKey = "user"

// SetUserInContext attaches the user context to a request context
func SetUserInContext(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// GetUserFromContext extracts the user context, if present
func GetUserFromContext(ctx context.Context) (*UserContext, error) {
	user, ok := ctx.Value(userContextKey).(*UserContext)
	if !ok || user == nil {
		return nil, errors.New("no user in context")
	}
	return user, nil
}

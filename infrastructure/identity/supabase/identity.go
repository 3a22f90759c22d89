package supabase

import (
	"context"

	"github.com/supabase-community/supabase-go"
	"go.uber.org/zap"

	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/ports"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/pkg/auth"
	pkgerrors "github.com/Digital-Maples-Labs-Inc/aitasol-sub000/pkg/errors"
)

// IdentityService resolves a session token to a role through the
// Supabase auth API. The role only gates the edit affordance; content
// reads never consult it.
type IdentityService struct {
	client *supabase.Client
	logger *zap.Logger
}

// NewIdentityService creates an identity service over an existing client
func NewIdentityService(client *supabase.Client, logger *zap.Logger) ports.IdentityService {
	return &IdentityService{
		client: client,
		logger: logger,
	}
}

// RoleOf validates the token against Supabase and maps the user's role
// claim. An invalid or expired token resolves to an unauthorized error,
// not to the anonymous role; anonymous is reserved for no token at all.
func (s *IdentityService) RoleOf(ctx context.Context, token string) (auth.Role, error) {
	if token == "" {
		return auth.RoleAnonymous, nil
	}

	// GetUser carries the context inside the underlying HTTP request.
	user, err := s.client.Auth.WithToken(token).GetUser()
	if err != nil {
		s.logger.Debug("token rejected by identity provider", zap.Error(err))
		return auth.RoleAnonymous, pkgerrors.NewUnauthorizedError("invalid session token")
	}

	if role, ok := user.AppMetadata["role"].(string); ok && role != "" {
		return auth.ParseRole(role), nil
	}
	return auth.ParseRole(user.Role), nil
}

package middleware

import (
	"net"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/ports"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/pkg/auth"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/pkg/common"
)

// Authenticate resolves the bearer token to a role and attaches the
// user context to the request. Requests without a token proceed as
// anonymous; the role gates nothing here, individual routes decide.
func Authenticate(identity ports.IdentityService, limiter auth.RateLimiter, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allowed, err := limiter.Allow(r.Context(), clientIP(r))
			if err != nil {
				logger.Warn("rate limiter failure", zap.Error(err))
			}
			if !allowed && err == nil {
				common.RespondError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}

			token := bearerToken(r)
			role, err := identity.RoleOf(r.Context(), token)
			if err != nil {
				common.RespondError(w, http.StatusUnauthorized, "invalid session token")
				return
			}

			ctx := auth.SetUserInContext(r.Context(), &auth.UserContext{Role: role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireEditor rejects requests whose role cannot edit content. Must
// run after Authenticate.
func RequireEditor() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := auth.GetUserFromContext(r.Context())
			if err != nil {
				common.RespondError(w, http.StatusUnauthorized, "authentication required")
				return
			}
			if !user.Role.CanEdit() {
				common.RespondError(w, http.StatusForbidden, "editor role required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		if idx := strings.Index(forwarded, ","); idx > 0 {
			return strings.TrimSpace(forwarded[:idx])
		}
		return strings.TrimSpace(forwarded)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/newsletter-api/internal/domain"
	"github.com/vfg2006/newsletter-api/internal/usecases/authenticating"
	"github.com/vfg2006/newsletter-api/pkg/apiErrors"
	"github.com/vfg2006/newsletter-api/pkg/log"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

// TokenValidator valida o token de sessão do dashboard
type TokenValidator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
}

// RequireAdmin exige um Bearer token de sessão administrativa válido.
// As claims ficam disponíveis no contexto em ContextKeyUser.
func RequireAdmin(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := log.ForContext(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Authorization header is required", nil)
				return
			}

			scheme, tokenString, found := strings.Cut(authHeader, " ")
			tokenString = strings.TrimSpace(tokenString)
			if !found || !strings.EqualFold(scheme, "Bearer") || tokenString == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Bearer token is required", nil)
				return
			}

			claims, err := validator.ValidateToken(tokenString)
			if err != nil {
				var authErr *authenticating.AuthError
				if errors.As(err, &authErr) {
					apiErrors.WriteError(w, authErr.Code, authErr.Details, nil)
					return
				}

				logger.WithError(err).Warn("admin token rejected")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Invalid token", nil)
				return
			}

			if claims.Role != domain.RoleAdmin {
				logger.WithField("request_role", claims.Role).Warn("access denied to admin route")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Admin access required", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext devolve as claims gravadas por RequireAdmin
func ClaimsFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyUser).(*domain.Claims)
	return claims, ok
}

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"cmsselect/internal/domain"
	"cmsselect/internal/domain/models"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultRoles are the backend roles allowed to call the selector API.
var DefaultRoles = []string{"admin", "sysadmin", "author"}

// KeyfuncVerifier implements JWTVerifier on top of a jwt.Keyfunc.
type KeyfuncVerifier struct {
	keyfunc jwt.Keyfunc
	roles   []string
	logger  *slog.Logger
}

// NewJWTVerifier creates a verifier that fetches public keys from a JWKS endpoint.
// keyfunc v3 caches the key set and refreshes it in the background.
func NewJWTVerifier(ctx context.Context, jwksURL string, roles []string, logger *slog.Logger) (*KeyfuncVerifier, error) {
	if jwksURL == "" {
		return nil, errors.New("JWKS URL cannot be empty")
	}

	jwks, err := keyfunc.NewDefaultCtx(ctx, []string{jwksURL})
	if err != nil {
		return nil, fmt.Errorf("failed to create JWKS client: %w", err)
	}

	logger.Info("JWT verifier initialized", "jwks_url", jwksURL)
	return NewKeyfuncVerifier(jwks.Keyfunc, roles, logger), nil
}

// NewKeyfuncVerifier wraps an arbitrary key lookup. Empty roles means DefaultRoles.
func NewKeyfuncVerifier(kf jwt.Keyfunc, roles []string, logger *slog.Logger) *KeyfuncVerifier {
	if len(roles) == 0 {
		roles = DefaultRoles
	}
	return &KeyfuncVerifier{keyfunc: kf, roles: roles, logger: logger}
}

// VerifyToken validates a JWT token and extracts the admin claims.
func (v *KeyfuncVerifier) VerifyToken(tokenString string) (*models.AdminClaims, error) {
	// Prevent algorithm confusion: RS256 or ES256 only.
	token, err := jwt.ParseWithClaims(tokenString, &models.AdminClaims{}, v.keyfunc,
		jwt.WithValidMethods([]string{"RS256", "ES256"}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		v.logger.Debug("token parse failed", "error", err.Error())
		return nil, domain.ErrUnauthorized
	}
	if !token.Valid {
		return nil, domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(*models.AdminClaims)
	if !ok {
		v.logger.Error("failed to extract claims from token")
		return nil, domain.ErrUnauthorized
	}

	if claims.Subject == "" {
		v.logger.Debug("token missing subject claim")
		return nil, domain.ErrUnauthorized
	}

	if !slices.Contains(v.roles, claims.Role) {
		v.logger.Warn("token has invalid role",
			"role", claims.Role,
			"allowed", v.roles,
			"user_id", claims.Subject)
		return nil, domain.ErrForbidden
	}

	return claims, nil
}

// Close is a no-op, keyfunc v3 manages its own refresh goroutine through the
// context passed to NewJWTVerifier.
func (v *KeyfuncVerifier) Close() error {
	v.logger.Info("JWT verifier closed")
	return nil
}

package auth

import "cmsselect/internal/domain/models"

// JWTVerifier verifies the bearer tokens of CMS backend users.
type JWTVerifier interface {
	// VerifyToken validates a JWT token string and returns the parsed claims.
	// Returns an error if the token is invalid, expired, or has an invalid signature.
	VerifyToken(tokenString string) (*models.AdminClaims, error)

	// Close releases any resources held by the verifier.
	Close() error
}

package auth

import "omnidesk/internal/domain/models"

// JWTVerifier defines the interface for JWT token verification.
// This abstraction lets the middleware stay agnostic to how tokens
// are verified (JWKS in production, a stub in tests).
type JWTVerifier interface {
	// VerifyToken validates a JWT token string and returns the parsed claims.
	// Returns an error if the token is invalid, expired, or has an invalid signature.
	VerifyToken(tokenString string) (*models.SupabaseClaims, error)

	// Close releases any resources held by the verifier.
	Close() error
}

package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the claims carried by identity provider access tokens.
type Claims struct {
	UserID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService validates bearer tokens issued by the identity provider.
type TokenService interface {
	// GenerateAccessToken issues a token for userID, used by tooling and tests.
	GenerateAccessToken(userID uuid.UUID) (string, error)

	// ValidateToken checks the signature and expiry and returns the claims.
	ValidateToken(tokenString string) (*Claims, error)
}

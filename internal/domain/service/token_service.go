package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the payload of an issued access token. The token itself is
// the sole carrier of session state; nothing is persisted server-side.
type Claims struct {
	UserID uuid.UUID `json:"userId"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying access
// tokens. A verified token is trusted until its natural expiry; there is
// no revocation list.
type TokenService interface {
	// Issue creates a signed access token for the given user.
	Issue(userID uuid.UUID) (string, error)

	// Verify checks signature and expiry of a token string and returns
	// its claims. Invalid and expired tokens are rejected alike.
	Verify(tokenString string) (*Claims, error)
}

package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type JWTServiceI interface {
	GenerateToken(uid uuid.UUID, ttl time.Duration) (string, error)
	ParseToken(tokenString string) (*JWTClaims, error)
}

// JWTClaims follows the hosted store's access tokens: the user id is the subject.
type JWTClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

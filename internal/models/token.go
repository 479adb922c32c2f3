package models

import "github.com/golang-jwt/jwt/v5"

// TokenClaims are the JWT claims accepted on mutating routes. Tokens are
// issued by the identity collaborator; this service only validates them.
type TokenClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

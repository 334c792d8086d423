// Package auth provides stateless bearer-token identity: HS256-signed tokens
// with a fixed TTL, bcrypt password hashing, and HTTP middleware that
// establishes the caller's user id in the request context.
//
// Tokens are self-contained; verification trusts the signature alone and
// never consults a store. Whether the subject still exists is checked later,
// at permission-resolution time.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the fixed token lifetime. It is not caller-configurable per
// request; a token expires one hour after issuance.
const DefaultTTL = time.Hour

// Claims are the decoded fields inside a verified token.
type Claims struct {
	jwt.RegisteredClaims
	UserID uint `json:"id"`
}

// TokenService issues and verifies signed identity tokens.
// The signing secret is injected at construction and read-only afterwards.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a token service with the given signing secret.
// A non-positive ttl falls back to DefaultTTL.
func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &TokenService{secret: secret, ttl: ttl}
}

// Issue produces a signed token asserting the given user id as subject.
// Two tokens issued for the same subject are independently valid until their
// individual expiries.
func (s *TokenService) Issue(userID uint) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		UserID: userID,
	})
	return token.SignedString(s.secret)
}

// Verify parses and validates a token string. On success it returns the
// claims; on failure it returns ErrTokenMalformed, ErrTokenSignature or
// ErrTokenExpired.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenSignature
		}
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, ErrTokenSignature):
			return nil, ErrTokenSignature
		default:
			return nil, ErrTokenMalformed
		}
	}
	if !token.Valid {
		return nil, ErrTokenMalformed
	}
	return claims, nil
}

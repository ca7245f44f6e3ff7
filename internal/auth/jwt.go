// Package auth issues and validates the bearer tokens the API consumes.
package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/shelftalk/shelftalk/internal/model"
)

// Context keys set by the auth middleware.
const (
	CtxUserIDKey   = "auth.user_id"
	CtxUsernameKey = "auth.username"
	CtxClaimsKey   = "auth.claims"
)

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Manager signs, parses and revokes tokens. Revocation is a jti denylist
// that outlives the process when redis is configured.
type Manager struct {
	secret   []byte
	ttl      time.Duration
	denylist Denylist
}

func NewManager(secret string, ttl time.Duration, denylist Denylist) *Manager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Manager{secret: []byte(secret), ttl: ttl, denylist: denylist}
}

// Issue returns a signed HS256 token for the user.
func (m *Manager) Issue(u *model.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		Username: u.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Parse validates the signature and expiry and returns the claims.
func (m *Manager) Parse(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Revoke denylists the token's jti until its natural expiry.
func (m *Manager) Revoke(ctx context.Context, claims *Claims) error {
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return m.denylist.Revoke(ctx, claims.ID, ttl)
}

// IsRevoked reports whether the token's jti has been denylisted.
func (m *Manager) IsRevoked(ctx context.Context, claims *Claims) (bool, error) {
	return m.denylist.IsRevoked(ctx, claims.ID)
}

package jwtlocal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"medication-tracker/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrSecretEmpty = errors.New("jwt secret is empty")
	ErrTokenEmpty  = errors.New("token is empty")
	ErrInvalid     = errors.New("invalid token")
)

const defaultTTL = 24 * time.Hour

// Manager emite y verifica tokens HS256 firmados con un secreto local.
// Implementa auth.TokenIssuer y auth.AuthVerifier.
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(secret string, ttl time.Duration) (*Manager, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, ErrSecretEmpty
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Manager{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

type sessionClaims struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

func (m *Manager) Issue(claims auth.Claims) (string, time.Time, error) {
	if strings.TrimSpace(claims.UserID) == "" {
		return "", time.Time{}, fmt.Errorf("%w: missing subject", ErrInvalid)
	}

	now := m.now().UTC()
	exp := now.Add(m.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		Email: claims.Email,
		Name:  claims.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, exp, nil
}

func (m *Manager) Verify(_ context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	var sc sessionClaims
	parsed, err := jwt.ParseWithClaims(token, &sc, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if !parsed.Valid {
		return auth.Claims{}, ErrInvalid
	}

	uid := strings.TrimSpace(sc.Subject)
	if uid == "" {
		return auth.Claims{}, fmt.Errorf("%w: missing subject", ErrInvalid)
	}

	return auth.Claims{UserID: uid, Email: sc.Email, Name: sc.Name}, nil
}

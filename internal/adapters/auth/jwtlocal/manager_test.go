package jwtlocal

import (
	"context"
	"errors"
	"testing"
	"time"

	"medication-tracker/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
)

func TestManager_IssueVerify(t *testing.T) {
	m, err := NewManager("s3cret", time.Hour)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	token, exp, err := m.Issue(auth.Claims{UserID: "u1", Email: "a@b.c", Name: "a"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if time.Until(exp) <= 0 {
		t.Fatalf("expected future expiry, got %v", exp)
	}

	c, err := m.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if c.UserID != "u1" || c.Email != "a@b.c" || c.Name != "a" {
		t.Fatalf("unexpected claims: %#v", c)
	}
}

func TestManager_RejectsBadTokens(t *testing.T) {
	if _, err := NewManager("  ", 0); !errors.Is(err, ErrSecretEmpty) {
		t.Fatalf("expected ErrSecretEmpty, got %v", err)
	}

	m, _ := NewManager("s3cret", time.Hour)
	other, _ := NewManager("other", time.Hour)

	token, _, err := other.Issue(auth.Claims{UserID: "u1"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := m.Verify(context.Background(), token); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for foreign signature, got %v", err)
	}

	if _, err := m.Verify(context.Background(), ""); !errors.Is(err, ErrTokenEmpty) {
		t.Fatalf("expected ErrTokenEmpty, got %v", err)
	}

	// token expirado
	past := time.Now().Add(-2 * time.Hour)
	m.now = func() time.Time { return past }
	old, _, _ := m.Issue(auth.Claims{UserID: "u1"})
	m.now = time.Now
	if _, err := m.Verify(context.Background(), old); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for expired token, got %v", err)
	}

	// algoritmo "none"
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "u1"})
	raw, _ := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if _, err := m.Verify(context.Background(), raw); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for unsigned token, got %v", err)
	}
}

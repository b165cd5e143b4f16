package middleware

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"medication-tracker/internal/platform/logger"
	"medication-tracker/internal/ports/auth"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type stubVerifier struct{}

func (stubVerifier) Verify(_ context.Context, token string) (auth.Claims, error) {
	if token == "good" {
		return auth.Claims{UserID: "u1"}, nil
	}
	return auth.Claims{}, errors.New("bad token")
}

func claimsEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, ok := GetClaims(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(c.UserID))
	})
}

func TestAuthContext(t *testing.T) {
	cases := []struct {
		name     string
		verifier auth.AuthVerifier
		header   string
		value    string
		wantCode int
		wantBody string
	}{
		{"dev header", nil, "X-Debug-User-ID", "dev-1", http.StatusOK, "dev-1"},
		{"dev no header", nil, "", "", http.StatusUnauthorized, ""},
		{"bearer ok", stubVerifier{}, "Authorization", "Bearer good", http.StatusOK, "u1"},
		{"bearer bad", stubVerifier{}, "Authorization", "Bearer nope", http.StatusUnauthorized, ""},
		{"debug ignored with verifier", stubVerifier{}, "X-Debug-User-ID", "dev-1", http.StatusUnauthorized, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := AuthContext(tc.verifier, nil)(claimsEcho())
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set(tc.header, tc.value)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tc.wantCode || rec.Body.String() != tc.wantBody {
				t.Fatalf("got %d %q, want %d %q", rec.Code, rec.Body.String(), tc.wantCode, tc.wantBody)
			}
		})
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Debug, Format: logger.FormatText, App: "test", Output: &buf})

	h := chimw.RequestID(RequestLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/medications", nil))

	out := buf.String()
	for _, want := range []string{"level=warn", "msg=http request", "status=418", "path=/medications", "request_id="} {
		if !strings.Contains(out, want) {
			t.Fatalf("log line missing %q: %s", want, out)
		}
	}
}

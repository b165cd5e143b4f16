package middleware

import (
	"context"
	"net/http"
	"strings"

	"medication-tracker/internal/platform/logger"
	"medication-tracker/internal/ports/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// DebugUserHeader solo se respeta sin verifier (desarrollo y tests).
const DebugUserHeader = "X-Debug-User-ID"

// AuthContext resuelve el usuario del request sin cortarlo:
// con verifier usa el Bearer token; sin verifier acepta DebugUserHeader.
// Sin claims el request sigue y cada handler responde 401 si hace falta.
func AuthContext(verifier auth.AuthVerifier, log logger.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.Nop()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if verifier == nil {
				if uid := strings.TrimSpace(r.Header.Get(DebugUserHeader)); uid != "" {
					r = r.WithContext(WithClaims(r.Context(), auth.Claims{UserID: uid}))
				}
				next.ServeHTTP(w, r)
				return
			}

			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := verifier.Verify(r.Context(), token)
			if err != nil {
				log.Debug("token rejected", logger.Fields{"err": err, "path": r.URL.Path})
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

func WithClaims(ctx context.Context, c auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	c, ok := ctx.Value(claimsKey).(auth.Claims)
	return c, ok
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

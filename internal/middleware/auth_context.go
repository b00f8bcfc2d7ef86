package middleware

import (
	"context"
	"net/http"
	"strings"

	"pet-health-record/internal/platform/httpx"
	"pet-health-record/internal/ports/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// AuthContext:
// - Sin header Authorization (o con otro esquema) el request sigue anónimo.
// - Con "Bearer <token>" llama a Verify(); si falla corta con 401.
// - Los handlers/servicios deciden si exigen auth.
func AuthContext(verifier auth.AuthVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if verifier == nil {
				next.ServeHTTP(w, r)
				return
			}

			token, present := bearerToken(r.Header.Get("Authorization"))
			if !present {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := verifier.Verify(r.Context(), token)
			if err != nil {
				httpx.WriteError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	v := ctx.Value(claimsKey)
	if v == nil {
		return auth.Claims{}, false
	}
	c, ok := v.(auth.Claims)
	return c, ok
}

// Caller devuelve los claims como puntero; nil = anónimo.
func Caller(ctx context.Context) *auth.Claims {
	c, ok := GetClaims(ctx)
	if !ok {
		return nil
	}
	return &c
}

// bearerToken: present=false si no es esquema Bearer. "Bearer" sin token
// cuenta como presente (token vacío) y falla en Verify.
func bearerToken(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	if len(parts) != 2 {
		return "", true
	}
	return strings.TrimSpace(parts[1]), true
}

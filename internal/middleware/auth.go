package middleware

import (
	"casino/pkg/resp"
	"casino/pkg/token"
	"context"
	"net/http"
	"strings"
)

type ctxKey struct{}

// WithUserID кладет id пользователя в контекст
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, ctxKey{}, userID)
}

// UserIDFromContext - id пользователя, положенный Auth
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(ctxKey{}).(int64)
	return id, ok
}

// Auth проверяет Bearer токен и кладет id пользователя из jti в контекст
func Auth(secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || raw == "" {
				resp.WriteError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			claims, err := token.VerifyToken(raw, secretKey)
			if err != nil {
				resp.WriteError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			userID, err := token.UserID(claims)
			if err != nil {
				resp.WriteError(w, http.StatusUnauthorized, err.Error())
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

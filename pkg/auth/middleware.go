package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/memomarket/escortd/pkg/utils"
)

type ContextKey string

const OperatorIDKey ContextKey = "operatorID"

// Middleware validates the Bearer token and puts the operator id on the
// request context.
func Middleware(jwtService JWTServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), OperatorIDKey, claims.OperatorID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

package middleware

import (
	"net/http"
	"strings"

	"movie-review/pkg/token"
	"movie-review/pkg/utils"

	"go.uber.org/zap"
)

// Auth validates the bearer token and puts the principal email on the
// request context. Handlers never see the token itself.
func Auth(tokens *token.Service, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			email, err := tokens.Validate(parts[1])
			if err != nil {
				logger.Warn("Invalid or expired token", zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx := utils.SetPrincipalContext(r.Context(), email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

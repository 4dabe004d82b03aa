package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Yj004/retail-dashboard-api/internal/usecases/authenticating"
	"github.com/Yj004/retail-dashboard-api/pkg/apiErrors"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

// openPaths são as rotas acessíveis sem token de acesso.
var openPaths = map[string]bool{
	"/token":       true,
	"/healthcheck": true,
}

// AuthMiddleware exige um bearer token válido em todas as rotas protegidas.
// Cada requisição é validada de forma independente; nenhum estado de sessão
// é mantido no servidor.
func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if openPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authenticated")
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Bearer token is required")
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Could not validate credentials")
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

package handler

import (
	"net/http"
	"strings"

	"github.com/Yj004/retail-dashboard-api/internal/usecases/authenticating"
	"github.com/Yj004/retail-dashboard-api/pkg/apiErrors"
	"github.com/Yj004/retail-dashboard-api/pkg/log"
	"github.com/pkg/errors"
)

type TokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Token emite um token de acesso para a credencial configurada. Aceita
// corpo JSON ou formulário, como o endpoint OAuth2 da variante original.
func Token(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeTokenRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body")
			return
		}

		token, err := service.Login(req.Username, req.Password)
		if err != nil {
			handleLoginError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(TokenResponse{
			AccessToken: token,
			TokenType:   "bearer",
		})
	}
}

func decodeTokenRequest(r *http.Request) (TokenRequest, bool) {
	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "application/json") {
		var req TokenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return TokenRequest{}, false
		}
		return req, true
	}

	if err := r.ParseForm(); err != nil {
		return TokenRequest{}, false
	}

	return TokenRequest{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}, true
}

func handleLoginError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, authenticating.ErrMissingRequiredData):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Username and password are required")

	case errors.Is(err, authenticating.ErrInvalidCredentials):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Incorrect username or password")

	case errors.Is(err, authenticating.ErrUserDisabled):
		apiErrors.WriteError(w, apiErrors.ErrUserDisabled, "Inactive user")

	default:
		log.ForContext(r.Context()).WithError(err).Error("Erro interno ao realizar login")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Internal server error")
	}
}

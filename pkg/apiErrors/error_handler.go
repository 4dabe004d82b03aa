package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro retornados pela API
const (
	// Erros de autenticação (AUTH_xxx)
	ErrInvalidCredentials = "AUTH_001" // Credenciais inválidas
	ErrInvalidToken       = "AUTH_002" // Token inválido
	ErrExpiredToken       = "AUTH_003" // Token expirado
	ErrUserDisabled       = "AUTH_004" // Usuário desativado

	// Erros de validação (VAL_xxx)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrColumnAlreadyExists = "VAL_004" // Coluna já existe no dataset

	// Erros do servidor (SRV_xxx)
	ErrInternalServer  = "SRV_001" // Erro interno do servidor
	ErrDatasetSource   = "SRV_002" // Erro na origem de dados
	ErrExternalService = "SRV_003" // Erro em serviço externo
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:  http.StatusUnauthorized,
	ErrInvalidToken:        http.StatusUnauthorized,
	ErrExpiredToken:        http.StatusUnauthorized,
	ErrUserDisabled:        http.StatusBadRequest,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrColumnAlreadyExists: http.StatusBadRequest,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatasetSource:       http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
}

// APIError é o corpo padronizado de erro. O campo "detail" carrega a
// mensagem legível; "code" identifica o erro para o cliente.
type APIError struct {
	Detail string `json:"detail"`
	Code   string `json:"code,omitempty"`
}

// WriteError escreve o erro padronizado na resposta HTTP
func WriteError(w http.ResponseWriter, code string, detail string) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(APIError{
		Detail: detail,
		Code:   code,
	})
}

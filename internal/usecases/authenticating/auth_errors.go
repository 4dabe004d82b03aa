package authenticating

import "github.com/pkg/errors"

var (
	ErrInvalidCredentials  = errors.New("usuário ou senha incorretos")
	ErrMissingRequiredData = errors.New("usuário e senha são obrigatórios")
	ErrUserDisabled        = errors.New("usuário desativado")
	ErrInvalidToken        = errors.New("token inválido")
	ErrExpiredToken        = errors.New("token expirado")
)

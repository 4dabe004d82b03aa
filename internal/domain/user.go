package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// User é o único usuário configurado do dashboard. Não existe cadastro nem
// banco de usuários: a credencial vem da configuração do processo.
type User struct {
	Username     string `json:"username"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Disabled     bool   `json:"disabled"`
}

// Claims é o payload do token de acesso. O username viaja no subject
// registrado; cada requisição é validada de forma independente e sem estado.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

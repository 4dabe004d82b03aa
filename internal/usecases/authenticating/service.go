package authenticating

import (
	"fmt"
	"time"

	"github.com/Yj004/retail-dashboard-api/internal/config"
	"github.com/Yj004/retail-dashboard-api/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

type Authenticator interface {
	Login(username, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

// Service autentica a credencial única configurada do dashboard e emite
// tokens de acesso de curta duração. Não há banco de usuários nem refresh
// token: expirou, novo login.
type Service struct {
	user      domain.User
	secretKey string
	tokenTTL  time.Duration
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{
		user: domain.User{
			Username:     cfg.Auth.Username,
			PasswordHash: cfg.Auth.PasswordHash,
			Disabled:     cfg.Auth.UserDisabled,
		},
		secretKey: cfg.Auth.SecretKey,
		tokenTTL:  time.Duration(cfg.Auth.TokenExpireMinutes) * time.Minute,
	}
}

// Login verifica a credencial contra o hash bcrypt configurado e retorna um
// token assinado com o username no subject.
func (s *Service) Login(username, password string) (string, error) {
	if username == "" || password == "" {
		return "", ErrMissingRequiredData
	}

	if username != s.user.Username {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	if s.user.Disabled {
		return "", ErrUserDisabled
	}

	return s.generateToken(username)
}

func (s *Service) generateToken(username string) (string, error) {
	claims := domain.Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// ValidateToken confere assinatura e expiração; cada requisição é validada
// isoladamente, sem estado de sessão.
func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid || claims.Subject != s.user.Username {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

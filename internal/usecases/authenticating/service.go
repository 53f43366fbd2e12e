package authenticating

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/site-analytics-api/internal/config"
	"github.com/vfg2006/site-analytics-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// Authenticator concentra a verificação da senha compartilhada e o ciclo de
// vida do token de sessão. Não existe conta de usuário: uma única credencial
// compartilhada, validada de forma stateless a cada requisição.
type Authenticator interface {
	VerifyPassword(candidate string) bool
	LoginWithPassword(candidate string) (string, error)
	CreateSessionToken() (string, error)
	ValidateSessionToken(tokenString string) (*domain.SessionClaims, error)
}

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{cfg: cfg}
}

// VerifyPassword compara a senha candidata com o segredo configurado.
// A comparação não vaza informação de tempo proporcional ao prefixo correto:
// bcrypt quando há hash configurado, subtle.ConstantTimeCompare caso contrário.
// Entrada vazia sempre falha.
func (s *Service) VerifyPassword(candidate string) bool {
	if candidate == "" {
		return false
	}

	if s.cfg.Auth.PasswordHash != "" {
		err := bcrypt.CompareHashAndPassword([]byte(s.cfg.Auth.PasswordHash), []byte(candidate))
		return err == nil
	}

	if s.cfg.Auth.Password == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(s.cfg.Auth.Password), []byte(candidate)) == 1
}

// LoginWithPassword verifica a senha e, em caso de sucesso, emite o token de sessão
func (s *Service) LoginWithPassword(candidate string) (string, error) {
	if candidate == "" {
		return "", ErrMissingPassword
	}

	if !s.VerifyPassword(candidate) {
		return "", ErrInvalidPassword
	}

	token, err := s.CreateSessionToken()
	if err != nil {
		logrus.WithError(err).Error("auth: failed to sign session token")
		return "", errors.Wrap(err, "erro ao gerar token de sessão")
	}

	return token, nil
}

// CreateSessionToken emite um token HS256 carregando apenas a claim
// "authenticated" e a expiração fixa configurada (não deslizante)
func (s *Service) CreateSessionToken() (string, error) {
	now := time.Now()
	claims := domain.SessionClaims{
		Authenticated: true,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.Auth.SessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.SecretKey))
}

// ValidateSessionToken valida assinatura, expiração e a claim de autenticação.
// Os motivos de falha são normalizados em ErrExpiredToken, ErrUnsignedToken e
// ErrMalformedToken; o guard de rotas trata todos como "não autenticado".
func (s *Service) ValidateSessionToken(tokenString string) (*domain.SessionClaims, error) {
	if tokenString == "" {
		return nil, ErrMalformedToken
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&domain.SessionClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(s.cfg.SecretKey), nil
		},
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, classifyTokenError(err)
	}

	claims, ok := token.Claims.(*domain.SessionClaims)
	if !ok || !token.Valid || !claims.Authenticated {
		return nil, ErrMalformedToken
	}

	return claims, nil
}

// classifyTokenError traduz os erros do jwt para a taxonomia da aplicação
func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpiredToken
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrUnsignedToken
	default:
		return ErrMalformedToken
	}
}

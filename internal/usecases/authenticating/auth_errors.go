package authenticating

import (
	"errors"
	"fmt"
)

// Tipos de erros de autenticação personalizados
var (
	// Erros de senha
	ErrMissingPassword = errors.New("senha não informada")
	ErrInvalidPassword = errors.New("senha incorreta")

	// Erros de token de sessão
	ErrExpiredToken   = errors.New("token de sessão expirado")
	ErrMalformedToken = errors.New("token de sessão malformado")
	ErrUnsignedToken  = errors.New("assinatura do token de sessão inválida")
)

// IsSessionError verifica se o erro está relacionado ao token de sessão.
// O guard de rotas trata qualquer um deles como ausência de sessão.
func IsSessionError(err error) bool {
	return errors.Is(err, ErrExpiredToken) ||
		errors.Is(err, ErrMalformedToken) ||
		errors.Is(err, ErrUnsignedToken)
}

// AuthError é um erro com contexto adicional para autenticação
type AuthError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError cria um novo erro de autenticação
func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

package domain

import "github.com/golang-jwt/jwt/v5"

// SessionClaims são as claims do token de sessão do dashboard.
// Não há identidade de usuário: o token carrega apenas a prova de que a
// senha compartilhada foi verificada e o instante de expiração.
type SessionClaims struct {
	Authenticated bool `json:"authenticated"`
	jwt.RegisteredClaims
}

package authenticating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/site-analytics-api/internal/config"
	"golang.org/x/crypto/bcrypt"
)

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{
			Password:   "senha-compartilhada",
			SessionTTL: time.Hour,
		},
		SecretKey: "test-secret-key",
	}
}

func TestVerifyPassword(t *testing.T) {
	service := NewService(newTestConfig())

	tests := []struct {
		name      string
		candidate string
		expected  bool
	}{
		{
			name:      "Senha correta",
			candidate: "senha-compartilhada",
			expected:  true,
		},
		{
			name:      "Senha incorreta",
			candidate: "outra-senha",
			expected:  false,
		},
		{
			name:      "Senha vazia sempre falha",
			candidate: "",
			expected:  false,
		},
		{
			name:      "Prefixo da senha correta não basta",
			candidate: "senha",
			expected:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.VerifyPassword(tt.candidate))
		})
	}
}

func TestVerifyPassword_ComHashBcrypt(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("senha-compartilhada"), bcrypt.MinCost)
	assert.NoError(t, err)

	cfg := newTestConfig()
	cfg.Auth.Password = ""
	cfg.Auth.PasswordHash = string(hash)

	service := NewService(cfg)

	assert.True(t, service.VerifyPassword("senha-compartilhada"))
	assert.False(t, service.VerifyPassword("outra-senha"))
	assert.False(t, service.VerifyPassword(""))
}

func TestVerifyPassword_SemSenhaConfigurada(t *testing.T) {
	cfg := newTestConfig()
	cfg.Auth.Password = ""
	cfg.Auth.PasswordHash = ""

	service := NewService(cfg)

	// Sem credencial configurada nenhuma candidata pode passar
	assert.False(t, service.VerifyPassword("qualquer-coisa"))
	assert.False(t, service.VerifyPassword(""))
}

func TestLoginWithPassword(t *testing.T) {
	service := NewService(newTestConfig())

	t.Run("Senha correta emite token de sessão", func(t *testing.T) {
		token, err := service.LoginWithPassword("senha-compartilhada")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("Senha vazia retorna ErrMissingPassword", func(t *testing.T) {
		_, err := service.LoginWithPassword("")
		assert.ErrorIs(t, err, ErrMissingPassword)
	})

	t.Run("Senha incorreta retorna ErrInvalidPassword", func(t *testing.T) {
		_, err := service.LoginWithPassword("senha-errada")
		assert.ErrorIs(t, err, ErrInvalidPassword)
	})
}

func TestValidateSessionToken(t *testing.T) {
	cfg := newTestConfig()
	service := NewService(cfg)

	t.Run("Token recém-emitido é válido", func(t *testing.T) {
		token, err := service.CreateSessionToken()
		assert.NoError(t, err)

		claims, err := service.ValidateSessionToken(token)
		assert.NoError(t, err)
		assert.True(t, claims.Authenticated)
		assert.NotNil(t, claims.ExpiresAt)

		// Expiração fixa a partir da emissão, dentro do TTL configurado
		assert.WithinDuration(t,
			time.Now().Add(cfg.Auth.SessionTTL),
			claims.ExpiresAt.Time,
			5*time.Second,
		)
	})

	t.Run("Token vazio é malformado", func(t *testing.T) {
		_, err := service.ValidateSessionToken("")
		assert.ErrorIs(t, err, ErrMalformedToken)
	})

	t.Run("Token ilegível é malformado", func(t *testing.T) {
		_, err := service.ValidateSessionToken("nao-e-um-jwt")
		assert.ErrorIs(t, err, ErrMalformedToken)
	})

	t.Run("Token expirado retorna ErrExpiredToken", func(t *testing.T) {
		expiredCfg := newTestConfig()
		expiredCfg.Auth.SessionTTL = -time.Minute

		expiredService := NewService(expiredCfg)

		token, err := expiredService.CreateSessionToken()
		assert.NoError(t, err)

		_, err = expiredService.ValidateSessionToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("Token assinado com outro segredo é rejeitado", func(t *testing.T) {
		foreignCfg := newTestConfig()
		foreignCfg.SecretKey = "outro-segredo"

		foreignService := NewService(foreignCfg)

		token, err := foreignService.CreateSessionToken()
		assert.NoError(t, err)

		_, err = service.ValidateSessionToken(token)
		assert.ErrorIs(t, err, ErrUnsignedToken)
	})

	t.Run("Token adulterado é rejeitado", func(t *testing.T) {
		token, err := service.CreateSessionToken()
		assert.NoError(t, err)

		tampered := token[:len(token)-3] + "abc"
		if tampered == token {
			tampered = token[:len(token)-3] + "abd"
		}

		_, err = service.ValidateSessionToken(tampered)
		assert.Error(t, err)
		assert.True(t, IsSessionError(err))
	})
}

func TestIsSessionError(t *testing.T) {
	assert.True(t, IsSessionError(ErrExpiredToken))
	assert.True(t, IsSessionError(ErrMalformedToken))
	assert.True(t, IsSessionError(ErrUnsignedToken))
	assert.False(t, IsSessionError(ErrInvalidPassword))
	assert.False(t, IsSessionError(nil))
}

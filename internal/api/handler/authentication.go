package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/site-analytics-api/internal/config"
	"github.com/vfg2006/site-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/site-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/site-analytics-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type LoginRequest struct {
	Password string `json:"password"`
}

type LoginResponse struct {
	Success bool `json:"success"`
}

// Login verifica a senha compartilhada e grava o cookie de sessão.
// O cookie transporta o token assinado; httpOnly e secure para que o
// cliente não leia nem transmita a credencial fora de HTTPS.
func Login(cfg *config.Config, service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		// Decodificar o corpo da requisição
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.LoginWithPassword(req.Password)
		if err != nil {
			handleLoginError(w, r, err)
			return
		}

		http.SetCookie(w, sessionCookie(cfg, token, int(cfg.Auth.SessionTTL.Seconds())))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(LoginResponse{Success: true})
	}
}

// Logout limpa o cookie de sessão. A invalidação é apenas no cliente:
// não há estado de sessão no servidor para destruir.
func Logout(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie := sessionCookie(cfg, "", -1)
		http.SetCookie(w, cookie)

		log.ForContext(r.Context()).Info("auth: session cookie cleared")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(LoginResponse{Success: true})
	}
}

func sessionCookie(cfg *config.Config, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     cfg.Auth.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   cfg.Auth.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}

// handleLoginError trata erros específicos de login e retorna a resposta apropriada
func handleLoginError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, authenticating.ErrMissingPassword):
		apiErrors.WriteError(w, apiErrors.ErrMissingPassword, "Senha não informada", nil)

	case errors.Is(err, authenticating.ErrInvalidPassword):
		log.ForContext(r.Context()).Warn("auth: login attempt with wrong password")
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Senha incorreta", nil)

	default:
		logrus.WithError(err).Error("auth: unexpected login failure")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao realizar login", nil)
	}
}

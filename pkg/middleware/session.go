package middleware

import (
	"net/http"
	"strings"

	"github.com/vfg2006/site-analytics-api/internal/config"
	"github.com/vfg2006/site-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/site-analytics-api/pkg/log"
)

// SessionGuard intercepta toda requisição sob o prefixo protegido e exige um
// cookie de sessão válido. Sessão ausente, malformada, adulterada ou expirada
// recebe o mesmo tratamento: redirect para a página de login, sem revelar se
// o caminho existe ou se apenas falta autenticação. O guard roda na borda de
// despacho, antes de qualquer handler protegido.
func SessionGuard(cfg *config.Config, authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasPrefix(r.URL.Path, cfg.Auth.ProtectedPrefix) || r.URL.Path == cfg.Auth.LoginPath {
				next.ServeHTTP(w, r)
				return
			}

			cookie, err := r.Cookie(cfg.Auth.CookieName)
			if err != nil || cookie.Value == "" {
				redirectToLogin(w, r, cfg)
				return
			}

			// A validade é re-derivada do token e do segredo a cada requisição;
			// nada é confiado do estado enviado pelo cliente
			if _, err := authService.ValidateSessionToken(cookie.Value); err != nil {
				log.ForContext(r.Context()).WithError(err).WithField("path", r.URL.Path).
					Debug("session: invalid session cookie, redirecting to login")
				redirectToLogin(w, r, cfg)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func redirectToLogin(w http.ResponseWriter, r *http.Request, cfg *config.Config) {
	http.Redirect(w, r, cfg.Auth.LoginPath, http.StatusFound)
}

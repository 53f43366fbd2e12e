package handler

import (
	"net/http"

	"github.com/vfg2006/site-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/site-analytics-api/internal/config"
	"github.com/vfg2006/site-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/site-analytics-api/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(cfg *config.Config, service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/auth/login",
			Method:  http.MethodPost,
			Handler: Login(cfg, service),
		},
		{
			Path:    "/auth/logout",
			Method:  http.MethodPost,
			Handler: Logout(cfg),
		},
	}
}

// Analytics registra os endpoints de relatório; todos ficam sob o prefixo
// protegido e passam pelo guard de sessão antes de chegar aqui
func Analytics(cfg *config.Config, service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/analytics",
			Method:  http.MethodGet,
			Handler: GetReport(cfg, service),
		},
		{
			Path:    "/analytics/blog",
			Method:  http.MethodGet,
			Handler: GetBlogReport(service),
		},
		{
			Path:    "/analytics/pages",
			Method:  http.MethodGet,
			Handler: GetPagesReport(service),
		},
		{
			Path:    "/analytics/clicks",
			Method:  http.MethodGet,
			Handler: GetClicksReport(service),
		},
	}
}

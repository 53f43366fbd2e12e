package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/site-analytics-api/internal/config"
	"github.com/vfg2006/site-analytics-api/internal/domain"
	"github.com/vfg2006/site-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/site-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/site-analytics-api/pkg/log"
	"github.com/vfg2006/site-analytics-api/pkg/utils"
)

// Resposta 503: relatório indisponível por falha da visão geral ou por
// credenciais ausentes; debug traz apenas flags de presença das credenciais
type reportUnavailableResponse struct {
	Error string          `json:"error"`
	Debug map[string]bool `json:"debug"`
}

// Resposta 500: falha inesperada, com código de incidente para correlação
// nos logs do operador
type reportErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// GetReport monta o relatório completo do dashboard para o período solicitado
func GetReport(cfg *config.Config, service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		period, ok := parsePeriod(w, r)
		if !ok {
			return
		}

		report, err := service.GetReport(period)
		if err != nil {
			writeReportError(w, r, cfg, err)
			return
		}

		logger.WithField("period", string(period)).Info("analytics: report assembled")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("analytics: failed to encode report response")
		}
	})
}

// GetBlogReport retorna os posts do blog mais visualizados no período
func GetBlogReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		period, ok := parsePeriod(w, r)
		if !ok {
			return
		}

		report, err := service.GetBlogReport(period)
		if err != nil {
			writeSectionError(w, r, "blog", err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(report)
	})
}

// GetPagesReport retorna as páginas mais acessadas no período
func GetPagesReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		period, ok := parsePeriod(w, r)
		if !ok {
			return
		}

		report, err := service.GetPagesReport(period)
		if err != nil {
			writeSectionError(w, r, "pages", err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(report)
	})
}

// GetClicksReport retorna a série diária de cliques do período
func GetClicksReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		period, ok := parsePeriod(w, r)
		if !ok {
			return
		}

		report, err := service.GetClicksReport(period)
		if err != nil {
			writeSectionError(w, r, "clicks", err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(report)
	})
}

// parsePeriod valida o token de período da query string; o padrão é 7daysAgo
func parsePeriod(w http.ResponseWriter, r *http.Request) (domain.Period, bool) {
	raw := r.URL.Query().Get("period")
	if raw == "" {
		raw = string(domain.Period7Days)
	}

	period, err := domain.ParsePeriod(raw)
	if err != nil {
		log.ForContext(r.Context()).WithField("period", raw).
			Warn("analytics: unknown period token")

		apiErrors.WriteError(w, apiErrors.ErrUnknownPeriod, "Período de relatório desconhecido: "+raw, nil)
		return "", false
	}

	return period, true
}

// writeReportError mapeia as falhas do relatório completo para a resposta HTTP.
// Visão geral indisponível ou credenciais ausentes → 503 com flags de
// diagnóstico; qualquer outra falha → 500 com código de incidente.
func writeReportError(w http.ResponseWriter, r *http.Request, cfg *config.Config, err error) {
	logger := log.ForContext(r.Context())

	if errors.Is(err, reporting.ErrMissingCredentials) || errors.Is(err, reporting.ErrOverviewUnavailable) {
		logger.WithError(err).Error("analytics: report unavailable")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(reportUnavailableResponse{
			Error: err.Error(),
			Debug: cfg.Analytics.CredentialFlags(),
		})
		return
	}

	incident, idErr := utils.GenerateID()
	if idErr != nil {
		incident = "unknown"
	}

	logger.WithError(err).WithField("incident", incident).
		Error("analytics: unexpected report failure")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(reportErrorResponse{
		Error:   "relatório indisponível",
		Message: err.Error(),
		Code:    apiErrors.ErrInternalServer + "-" + incident,
	})
}

// writeSectionError trata falhas dos relatórios auxiliares (blog, pages, clicks)
func writeSectionError(w http.ResponseWriter, r *http.Request, name string, err error) {
	logger := log.ForContext(r.Context()).WithField("report", name)

	if errors.Is(err, reporting.ErrMissingCredentials) {
		logger.WithError(err).Error("analytics: provider credentials missing")
		apiErrors.WriteError(w, apiErrors.ErrMissingCredentials, err.Error(), nil)
		return
	}

	logger.WithError(err).Error("analytics: auxiliary report failed")
	apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar o provedor de analytics", nil)
}

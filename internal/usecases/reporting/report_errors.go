package reporting

import (
	"errors"
	"fmt"

	"github.com/vfg2006/site-analytics-api/internal/domain"
)

var (
	// ErrMissingCredentials indica que as credenciais do provedor não estão configuradas
	ErrMissingCredentials = errors.New("credenciais do provedor de analytics ausentes")

	// ErrOverviewUnavailable indica a falha catastrófica: sem a visão geral
	// o relatório inteiro é considerado indisponível
	ErrOverviewUnavailable = errors.New("visão geral do relatório indisponível")
)

// ReportError carrega o contexto da seção que causou a falha do relatório
type ReportError struct {
	Err     error
	Section domain.SectionName
	Details string
}

func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func NewReportError(baseErr error, section domain.SectionName, details string) *ReportError {
	return &ReportError{
		Err:     baseErr,
		Section: section,
		Details: details,
	}
}

package reporting

import (
	"github.com/vfg2006/site-analytics-api/internal/domain"
)

// AnalyticsIntegrator define as consultas disponíveis no provedor de analytics.
// Cada método corresponde a uma sub-consulta independente; a visão geral é a
// única que recebe o par de janelas (precisa da comparação período-a-período).
type AnalyticsIntegrator interface {
	OverviewMetrics(pair domain.WindowPair) (*domain.Overview, error)
	TrafficSources(window domain.Window) ([]domain.SourceEntry, error)
	DeviceBreakdown(window domain.Window) ([]domain.DeviceEntry, error)
	GeoBreakdown(window domain.Window) ([]domain.GeoEntry, error)
	SourceMediumBreakdown(window domain.Window) ([]domain.SourceMediumEntry, error)
	CampaignBreakdown(window domain.Window) ([]domain.CampaignEntry, error)
	ActiveUsers() (*domain.RealtimeUsers, error)
	BlogPosts(window domain.Window) ([]domain.BlogPost, error)
	TopPages(window domain.Window) ([]domain.PageEntry, error)
	ClickSeries(window domain.Window) (*domain.ClicksReport, error)
}

// Reporter é a interface consumida pelos handlers de relatório
type Reporter interface {
	// GetReport monta o relatório completo do dashboard para um período
	GetReport(period domain.Period) (*domain.Report, error)

	// GetBlogReport retorna os posts do blog mais visualizados no período
	GetBlogReport(period domain.Period) (*domain.BlogReport, error)

	// GetPagesReport retorna as páginas mais acessadas no período
	GetPagesReport(period domain.Period) (*domain.PagesReport, error)

	// GetClicksReport retorna a série diária de cliques do período
	GetClicksReport(period domain.Period) (*domain.ClicksReport, error)
}

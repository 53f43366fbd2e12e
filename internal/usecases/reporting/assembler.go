package reporting

import (
	"github.com/vfg2006/site-analytics-api/internal/domain"
)

// assemble traduz os desfechos internos das seções na resposta externa do
// relatório. É o único ponto onde sucesso/falha vira dado-ou-vazio: seções
// que falharam entram com coleções vazias e zeros, nunca com chave ausente,
// e o detalhe do erro não vaza para o contrato do cliente.
// Pré-condição: a visão geral assentou com sucesso.
func assemble(outcomes *sectionOutcomes) *domain.Report {
	report := &domain.Report{
		Overview:     *outcomes.overview.value,
		Sources:      make([]domain.SourceEntry, 0),
		Devices:      make([]domain.DeviceEntry, 0),
		Geo:          make([]domain.GeoEntry, 0),
		SourceMedium: make([]domain.SourceMediumEntry, 0),
		Campaigns:    make([]domain.CampaignEntry, 0),
	}

	if !outcomes.sources.failed() && outcomes.sources.value != nil {
		report.Sources = outcomes.sources.value
	}

	if !outcomes.devices.failed() && outcomes.devices.value != nil {
		report.Devices = outcomes.devices.value
	}

	if !outcomes.geo.failed() && outcomes.geo.value != nil {
		report.Geo = outcomes.geo.value
	}

	if !outcomes.realtime.failed() && outcomes.realtime.value != nil {
		report.RealtimeUsers = *outcomes.realtime.value
	}

	if !outcomes.sourceMedium.failed() && outcomes.sourceMedium.value != nil {
		report.SourceMedium = outcomes.sourceMedium.value
	}

	if !outcomes.campaigns.failed() && outcomes.campaigns.value != nil {
		report.Campaigns = outcomes.campaigns.value
	}

	return report
}

package reporting

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/site-analytics-api/internal/config"
	"github.com/vfg2006/site-analytics-api/internal/domain"
)

// Service resolve períodos em janelas concretas e dispara as sub-consultas
// do relatório em paralelo contra o provedor de analytics
type Service struct {
	cfg       *config.Config
	analytics AnalyticsIntegrator
}

func NewService(cfg *config.Config, analytics AnalyticsIntegrator) Reporter {
	return &Service{
		cfg:       cfg,
		analytics: analytics,
	}
}

// outcome registra o desfecho de uma sub-consulta: valor ou erro, nunca os dois
type outcome[T any] struct {
	value T
	err   error
}

func (o outcome[T]) failed() bool {
	return o.err != nil
}

// sectionOutcomes guarda um slot por seção; cada goroutine escreve apenas no
// seu próprio slot, então não há estado mutável compartilhado entre elas
type sectionOutcomes struct {
	overview     outcome[*domain.Overview]
	sources      outcome[[]domain.SourceEntry]
	devices      outcome[[]domain.DeviceEntry]
	geo          outcome[[]domain.GeoEntry]
	realtime     outcome[*domain.RealtimeUsers]
	sourceMedium outcome[[]domain.SourceMediumEntry]
	campaigns    outcome[[]domain.CampaignEntry]
}

// GetReport monta o relatório completo para um período.
// Todas as sub-consultas são aguardadas até o desfecho (sucesso ou falha);
// não há curto-circuito na primeira falha. Seções que falharam (exceto a
// visão geral) entram na resposta com valores vazios.
func (s *Service) GetReport(period domain.Period) (*domain.Report, error) {
	if !s.cfg.Analytics.Configured() {
		return nil, NewReportError(ErrMissingCredentials, domain.SectionOverview, "")
	}

	pair, err := domain.ResolveWindows(period, time.Now())
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"period":         string(period),
		"current_start":  pair.Current.Start.Format(time.DateOnly),
		"current_end":    pair.Current.End.Format(time.DateOnly),
		"previous_start": pair.Previous.Start.Format(time.DateOnly),
		"previous_end":   pair.Previous.End.Format(time.DateOnly),
	}).Info("reporting: building dashboard report")

	outcomes := s.collectSections(pair)

	// Registrar o desfecho de cada seção antes de decidir a resposta
	for section, sectionErr := range outcomes.errorsBySection() {
		if sectionErr != nil {
			logrus.WithError(sectionErr).WithField("section", string(section)).
				Warn("reporting: section query failed")
		}
	}

	// Sem a visão geral o relatório não é renderizável; os demais desfechos
	// são descartados da resposta (já registrados acima)
	if outcomes.overview.failed() {
		return nil, NewReportError(
			ErrOverviewUnavailable,
			domain.SectionOverview,
			outcomes.overview.err.Error(),
		)
	}

	return assemble(outcomes), nil
}

// collectSections dispara uma goroutine por seção e espera todas assentarem
func (s *Service) collectSections(pair domain.WindowPair) *sectionOutcomes {
	outcomes := &sectionOutcomes{}

	wg := sync.WaitGroup{}
	wg.Add(len(domain.ReportSections))

	go func() {
		defer wg.Done()
		outcomes.overview.value, outcomes.overview.err = s.analytics.OverviewMetrics(pair)
	}()

	go func() {
		defer wg.Done()
		outcomes.sources.value, outcomes.sources.err = s.analytics.TrafficSources(pair.Current)
	}()

	go func() {
		defer wg.Done()
		outcomes.devices.value, outcomes.devices.err = s.analytics.DeviceBreakdown(pair.Current)
	}()

	go func() {
		defer wg.Done()
		outcomes.geo.value, outcomes.geo.err = s.analytics.GeoBreakdown(pair.Current)
	}()

	go func() {
		defer wg.Done()
		outcomes.realtime.value, outcomes.realtime.err = s.analytics.ActiveUsers()
	}()

	go func() {
		defer wg.Done()
		outcomes.sourceMedium.value, outcomes.sourceMedium.err = s.analytics.SourceMediumBreakdown(pair.Current)
	}()

	go func() {
		defer wg.Done()
		outcomes.campaigns.value, outcomes.campaigns.err = s.analytics.CampaignBreakdown(pair.Current)
	}()

	wg.Wait()

	return outcomes
}

// errorsBySection expõe os desfechos por nome de seção para registro uniforme
func (o *sectionOutcomes) errorsBySection() map[domain.SectionName]error {
	return map[domain.SectionName]error{
		domain.SectionOverview:      o.overview.err,
		domain.SectionSources:       o.sources.err,
		domain.SectionDevices:       o.devices.err,
		domain.SectionGeo:           o.geo.err,
		domain.SectionRealtimeUsers: o.realtime.err,
		domain.SectionSourceMedium:  o.sourceMedium.err,
		domain.SectionCampaigns:     o.campaigns.err,
	}
}

// GetBlogReport retorna os posts do blog mais visualizados no período
func (s *Service) GetBlogReport(period domain.Period) (*domain.BlogReport, error) {
	window, err := s.resolveCurrentWindow(period)
	if err != nil {
		return nil, err
	}

	posts, err := s.analytics.BlogPosts(window)
	if err != nil {
		logrus.WithError(err).Error("reporting: failed to fetch blog posts")
		return nil, err
	}

	return &domain.BlogReport{Posts: posts}, nil
}

// GetPagesReport retorna as páginas mais acessadas no período
func (s *Service) GetPagesReport(period domain.Period) (*domain.PagesReport, error) {
	window, err := s.resolveCurrentWindow(period)
	if err != nil {
		return nil, err
	}

	pages, err := s.analytics.TopPages(window)
	if err != nil {
		logrus.WithError(err).Error("reporting: failed to fetch top pages")
		return nil, err
	}

	return &domain.PagesReport{Pages: pages}, nil
}

// GetClicksReport retorna a série diária de cliques do período
func (s *Service) GetClicksReport(period domain.Period) (*domain.ClicksReport, error) {
	window, err := s.resolveCurrentWindow(period)
	if err != nil {
		return nil, err
	}

	report, err := s.analytics.ClickSeries(window)
	if err != nil {
		logrus.WithError(err).Error("reporting: failed to fetch click series")
		return nil, err
	}

	return report, nil
}

func (s *Service) resolveCurrentWindow(period domain.Period) (domain.Window, error) {
	if !s.cfg.Analytics.Configured() {
		return domain.Window{}, NewReportError(ErrMissingCredentials, "", "")
	}

	pair, err := domain.ResolveWindows(period, time.Now())
	if err != nil {
		return domain.Window{}, err
	}

	return pair.Current, nil
}

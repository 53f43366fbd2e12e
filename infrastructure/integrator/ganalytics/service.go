package ganalytics

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	gadomain "github.com/vfg2006/site-analytics-api/infrastructure/integrator/ganalytics/domain"
	"github.com/vfg2006/site-analytics-api/infrastructure/integrator/ganalytics/gaclient"
	"github.com/vfg2006/site-analytics-api/internal/config"
	"github.com/vfg2006/site-analytics-api/internal/domain"
)

// Métricas e dimensões da Data API consumidas pelo dashboard
const (
	metricPageViews          = "screenPageViews"
	metricTotalUsers         = "totalUsers"
	metricSessions           = "sessions"
	metricBounceRate         = "bounceRate"
	metricAvgSessionDuration = "averageSessionDuration"
	metricNewUsers           = "newUsers"
	metricActiveUsers        = "activeUsers"
	metricEventCount         = "eventCount"

	dimensionSource       = "sessionSource"
	dimensionDevice       = "deviceCategory"
	dimensionCountry      = "country"
	dimensionSourceMedium = "sessionSourceMedium"
	dimensionCampaign     = "sessionCampaignName"
	dimensionPagePath     = "pagePath"
	dimensionPageTitle    = "pageTitle"
	dimensionDate         = "date"
	dimensionEventName    = "eventName"
)

// GAIntegrator traduz as linhas cruas do provedor nos tipos de domínio do relatório
type GAIntegrator struct {
	cfg    *config.Config
	Client gaclient.Client
}

func New(cfg *config.Config, client gaclient.Client) *GAIntegrator {
	return &GAIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// OverviewMetrics consulta as métricas da visão geral para as duas janelas em
// uma única requisição; o provedor identifica cada janela pela dimensão
// implícita dateRange (date_range_0 = atual, date_range_1 = anterior)
func (s *GAIntegrator) OverviewMetrics(pair domain.WindowPair) (*domain.Overview, error) {
	request := &gadomain.RunReportRequest{
		DateRanges: []gadomain.DateRange{
			dateRange(pair.Current),
			dateRange(pair.Previous),
		},
		Metrics: []gadomain.Metric{
			{Name: metricPageViews},
			{Name: metricTotalUsers},
			{Name: metricSessions},
			{Name: metricBounceRate},
			{Name: metricAvgSessionDuration},
			{Name: metricNewUsers},
		},
	}

	resp, err := s.Client.RunReport(request)
	if err != nil {
		logrus.WithError(err).Error("ganalytics: failed to fetch overview metrics")
		return nil, err
	}

	overview := &domain.Overview{}
	for _, row := range resp.Rows {
		snapshot := snapshotFromRow(row)

		// Com duas janelas, a primeira dimensão da linha identifica a janela
		rangeID := ""
		if len(row.DimensionValues) > 0 {
			rangeID = row.DimensionValues[0].Value
		}

		if rangeID == "date_range_1" {
			overview.Previous = snapshot
		} else {
			overview.Current = snapshot
		}
	}

	overview.Changes = domain.CompareWindows(overview.Current, overview.Previous)

	logrus.WithFields(logrus.Fields{
		"page_views": overview.Current.PageViews,
		"visitors":   overview.Current.Visitors,
	}).Debug("ganalytics: overview metrics retrieved")

	return overview, nil
}

// TrafficSources retorna as principais origens de tráfego da janela atual
func (s *GAIntegrator) TrafficSources(window domain.Window) ([]domain.SourceEntry, error) {
	resp, err := s.runBreakdown(window, dimensionSource)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.SourceEntry, 0, len(resp.Rows))
	for _, row := range resp.Rows {
		entries = append(entries, domain.SourceEntry{
			Source:   dimensionValue(row, 0),
			Sessions: metricAsInt64(row, 0),
			Visitors: metricAsInt64(row, 1),
		})
	}

	return entries, nil
}

// DeviceBreakdown retorna a quebra por categoria de dispositivo
func (s *GAIntegrator) DeviceBreakdown(window domain.Window) ([]domain.DeviceEntry, error) {
	resp, err := s.runBreakdown(window, dimensionDevice)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.DeviceEntry, 0, len(resp.Rows))
	for _, row := range resp.Rows {
		entries = append(entries, domain.DeviceEntry{
			Category: dimensionValue(row, 0),
			Sessions: metricAsInt64(row, 0),
			Visitors: metricAsInt64(row, 1),
		})
	}

	return entries, nil
}

// GeoBreakdown retorna a quebra por país
func (s *GAIntegrator) GeoBreakdown(window domain.Window) ([]domain.GeoEntry, error) {
	resp, err := s.runBreakdown(window, dimensionCountry)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.GeoEntry, 0, len(resp.Rows))
	for _, row := range resp.Rows {
		entries = append(entries, domain.GeoEntry{
			Country:  dimensionValue(row, 0),
			Sessions: metricAsInt64(row, 0),
			Visitors: metricAsInt64(row, 1),
		})
	}

	return entries, nil
}

// SourceMediumBreakdown retorna a quebra combinada origem/mídia
func (s *GAIntegrator) SourceMediumBreakdown(window domain.Window) ([]domain.SourceMediumEntry, error) {
	resp, err := s.runBreakdown(window, dimensionSourceMedium)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.SourceMediumEntry, 0, len(resp.Rows))
	for _, row := range resp.Rows {
		source, medium := splitSourceMedium(dimensionValue(row, 0))
		entries = append(entries, domain.SourceMediumEntry{
			Source:   source,
			Medium:   medium,
			Sessions: metricAsInt64(row, 0),
			Visitors: metricAsInt64(row, 1),
		})
	}

	return entries, nil
}

// CampaignBreakdown retorna a quebra por campanha
func (s *GAIntegrator) CampaignBreakdown(window domain.Window) ([]domain.CampaignEntry, error) {
	resp, err := s.runBreakdown(window, dimensionCampaign)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.CampaignEntry, 0, len(resp.Rows))
	for _, row := range resp.Rows {
		entries = append(entries, domain.CampaignEntry{
			Campaign: dimensionValue(row, 0),
			Sessions: metricAsInt64(row, 0),
			Visitors: metricAsInt64(row, 1),
		})
	}

	return entries, nil
}

// ActiveUsers consulta os usuários ativos neste momento via relatório em tempo real
func (s *GAIntegrator) ActiveUsers() (*domain.RealtimeUsers, error) {
	request := &gadomain.RunRealtimeReportRequest{
		Metrics: []gadomain.Metric{{Name: metricActiveUsers}},
	}

	resp, err := s.Client.RunRealtimeReport(request)
	if err != nil {
		logrus.WithError(err).Error("ganalytics: failed to fetch realtime users")
		return nil, err
	}

	realtime := &domain.RealtimeUsers{}
	if len(resp.Rows) > 0 {
		realtime.ActiveUsers = metricAsInt64(resp.Rows[0], 0)
	}

	return realtime, nil
}

// BlogPosts retorna os posts do blog mais visualizados na janela
func (s *GAIntegrator) BlogPosts(window domain.Window) ([]domain.BlogPost, error) {
	request := &gadomain.RunReportRequest{
		DateRanges: []gadomain.DateRange{dateRange(window)},
		Dimensions: []gadomain.Dimension{
			{Name: dimensionPagePath},
			{Name: dimensionPageTitle},
		},
		Metrics: []gadomain.Metric{{Name: metricPageViews}},
		DimensionFilter: &gadomain.FilterExpression{
			Filter: &gadomain.Filter{
				FieldName: dimensionPagePath,
				StringFilter: &gadomain.StringFilter{
					MatchType: "BEGINS_WITH",
					Value:     s.cfg.Analytics.BlogPathPrefix,
				},
			},
		},
		OrderBys: []gadomain.OrderBy{
			{Metric: &gadomain.MetricOrderBy{MetricName: metricPageViews}, Desc: true},
		},
		Limit: int64(s.cfg.Analytics.RowLimit),
	}

	resp, err := s.Client.RunReport(request)
	if err != nil {
		logrus.WithError(err).Error("ganalytics: failed to fetch blog posts")
		return nil, err
	}

	posts := make([]domain.BlogPost, 0, len(resp.Rows))
	for _, row := range resp.Rows {
		posts = append(posts, domain.BlogPost{
			Path:      dimensionValue(row, 0),
			Title:     dimensionValue(row, 1),
			PageViews: metricAsInt64(row, 0),
		})
	}

	return posts, nil
}

// TopPages retorna as páginas mais acessadas na janela
func (s *GAIntegrator) TopPages(window domain.Window) ([]domain.PageEntry, error) {
	request := &gadomain.RunReportRequest{
		DateRanges: []gadomain.DateRange{dateRange(window)},
		Dimensions: []gadomain.Dimension{{Name: dimensionPagePath}},
		Metrics: []gadomain.Metric{
			{Name: metricPageViews},
			{Name: metricTotalUsers},
		},
		OrderBys: []gadomain.OrderBy{
			{Metric: &gadomain.MetricOrderBy{MetricName: metricPageViews}, Desc: true},
		},
		Limit: int64(s.cfg.Analytics.RowLimit),
	}

	resp, err := s.Client.RunReport(request)
	if err != nil {
		logrus.WithError(err).Error("ganalytics: failed to fetch top pages")
		return nil, err
	}

	pages := make([]domain.PageEntry, 0, len(resp.Rows))
	for _, row := range resp.Rows {
		pages = append(pages, domain.PageEntry{
			Path:      dimensionValue(row, 0),
			PageViews: metricAsInt64(row, 0),
			Visitors:  metricAsInt64(row, 1),
		})
	}

	return pages, nil
}

// ClickSeries retorna a série diária de cliques e o total da janela
func (s *GAIntegrator) ClickSeries(window domain.Window) (*domain.ClicksReport, error) {
	request := &gadomain.RunReportRequest{
		DateRanges: []gadomain.DateRange{dateRange(window)},
		Dimensions: []gadomain.Dimension{{Name: dimensionDate}},
		Metrics:    []gadomain.Metric{{Name: metricEventCount}},
		DimensionFilter: &gadomain.FilterExpression{
			Filter: &gadomain.Filter{
				FieldName: dimensionEventName,
				StringFilter: &gadomain.StringFilter{
					MatchType: "EXACT",
					Value:     s.cfg.Analytics.ClickEventName,
				},
			},
		},
	}

	resp, err := s.Client.RunReport(request)
	if err != nil {
		logrus.WithError(err).Error("ganalytics: failed to fetch click series")
		return nil, err
	}

	report := &domain.ClicksReport{
		DailyClicks: make([]domain.DailyClicks, 0, len(resp.Rows)),
	}

	for _, row := range resp.Rows {
		clicks := metricAsInt64(row, 0)
		report.TotalClicks += clicks
		report.DailyClicks = append(report.DailyClicks, domain.DailyClicks{
			Date:   formatProviderDate(dimensionValue(row, 0)),
			Clicks: clicks,
		})
	}

	// O provedor não garante ordem para a dimensão de data
	sort.Slice(report.DailyClicks, func(i, j int) bool {
		return report.DailyClicks[i].Date < report.DailyClicks[j].Date
	})

	return report, nil
}

// runBreakdown executa a consulta padrão de quebra (sessões e visitantes por dimensão)
func (s *GAIntegrator) runBreakdown(window domain.Window, dimension string) (*gadomain.RunReportResponse, error) {
	request := &gadomain.RunReportRequest{
		DateRanges: []gadomain.DateRange{dateRange(window)},
		Dimensions: []gadomain.Dimension{{Name: dimension}},
		Metrics: []gadomain.Metric{
			{Name: metricSessions},
			{Name: metricTotalUsers},
		},
		OrderBys: []gadomain.OrderBy{
			{Metric: &gadomain.MetricOrderBy{MetricName: metricSessions}, Desc: true},
		},
		Limit: int64(s.cfg.Analytics.RowLimit),
	}

	resp, err := s.Client.RunReport(request)
	if err != nil {
		logrus.WithError(err).WithField("dimension", dimension).Error("ganalytics: breakdown query failed")
		return nil, err
	}

	return resp, nil
}

func dateRange(window domain.Window) gadomain.DateRange {
	return gadomain.DateRange{
		StartDate: window.Start.Format(time.DateOnly),
		EndDate:   window.End.Format(time.DateOnly),
	}
}

// snapshotFromRow converte uma linha da visão geral em MetricSnapshot.
// A ordem dos valores segue a ordem das métricas na requisição.
func snapshotFromRow(row gadomain.Row) domain.MetricSnapshot {
	return domain.MetricSnapshot{
		PageViews:          metricAsInt64(row, 0),
		Visitors:           metricAsInt64(row, 1),
		Sessions:           metricAsInt64(row, 2),
		BounceRate:         metricAsFloat64(row, 3),
		AvgSessionDuration: metricAsFloat64(row, 4),
		NewUsers:           metricAsInt64(row, 5),
	}
}

func dimensionValue(row gadomain.Row, index int) string {
	if index >= len(row.DimensionValues) {
		return ""
	}
	return row.DimensionValues[index].Value
}

func metricAsInt64(row gadomain.Row, index int) int64 {
	if index >= len(row.MetricValues) {
		return 0
	}

	value, err := strconv.ParseInt(row.MetricValues[index].Value, 10, 64)
	if err != nil {
		// O provedor devolve métricas inteiras como float em alguns relatórios
		if f, ferr := strconv.ParseFloat(row.MetricValues[index].Value, 64); ferr == nil {
			return int64(f)
		}
		return 0
	}

	return value
}

func metricAsFloat64(row gadomain.Row, index int) float64 {
	if index >= len(row.MetricValues) {
		return 0
	}

	value, err := strconv.ParseFloat(row.MetricValues[index].Value, 64)
	if err != nil {
		return 0
	}

	return value
}

// splitSourceMedium separa o valor combinado "origem / mídia" do provedor
func splitSourceMedium(combined string) (string, string) {
	parts := strings.SplitN(combined, " / ", 2)
	if len(parts) < 2 {
		return combined, ""
	}
	return parts[0], parts[1]
}

// formatProviderDate converte datas YYYYMMDD do provedor para YYYY-MM-DD
func formatProviderDate(raw string) string {
	parsed, err := time.Parse("20060102", raw)
	if err != nil {
		return raw
	}
	return parsed.Format(time.DateOnly)
}

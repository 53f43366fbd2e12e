package reporting_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/site-analytics-api/internal/config"
	"github.com/vfg2006/site-analytics-api/internal/domain"
	"github.com/vfg2006/site-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/site-analytics-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func newTestConfig() *config.Config {
	return &config.Config{
		Analytics: config.Analytics{
			PropertyID:  "123456789",
			AccessToken: "test-access-token",
			RowLimit:    10,
		},
	}
}

func fullOverview() *domain.Overview {
	current := domain.MetricSnapshot{
		PageViews:          1000,
		Visitors:           500,
		Sessions:           600,
		BounceRate:         40.0,
		AvgSessionDuration: 90.0,
		NewUsers:           120,
	}
	previous := domain.MetricSnapshot{
		PageViews:          800,
		Visitors:           400,
		Sessions:           500,
		BounceRate:         50.0,
		AvgSessionDuration: 80.0,
		NewUsers:           100,
	}

	return &domain.Overview{
		Current:  current,
		Previous: previous,
		Changes:  domain.CompareWindows(current, previous),
	}
}

// expectSections registra as expectativas de todas as sub-consultas; as que o
// teste quer ver falhar são sobrescritas caso a caso
func expectSections(mock *mocks.MockAnalyticsIntegrator) {
	mock.EXPECT().OverviewMetrics(gomock.Any()).Return(fullOverview(), nil).AnyTimes()
	mock.EXPECT().TrafficSources(gomock.Any()).
		Return([]domain.SourceEntry{{Source: "google", Sessions: 300, Visitors: 250}}, nil).AnyTimes()
	mock.EXPECT().DeviceBreakdown(gomock.Any()).
		Return([]domain.DeviceEntry{{Category: "desktop", Sessions: 400, Visitors: 320}}, nil).AnyTimes()
	mock.EXPECT().GeoBreakdown(gomock.Any()).
		Return([]domain.GeoEntry{{Country: "Brazil", Sessions: 500, Visitors: 410}}, nil).AnyTimes()
	mock.EXPECT().ActiveUsers().
		Return(&domain.RealtimeUsers{ActiveUsers: 7}, nil).AnyTimes()
	mock.EXPECT().SourceMediumBreakdown(gomock.Any()).
		Return([]domain.SourceMediumEntry{{Source: "google", Medium: "organic", Sessions: 280, Visitors: 230}}, nil).AnyTimes()
	mock.EXPECT().CampaignBreakdown(gomock.Any()).
		Return([]domain.CampaignEntry{{Campaign: "launch", Sessions: 90, Visitors: 75}}, nil).AnyTimes()
}

func TestGetReport_TodasAsSecoesComSucesso(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalytics := mocks.NewMockAnalyticsIntegrator(ctrl)
	expectSections(mockAnalytics)

	service := reporting.NewService(newTestConfig(), mockAnalytics)

	report, err := service.GetReport(domain.Period7Days)
	assert.NoError(t, err)
	assert.NotNil(t, report)

	assert.Equal(t, int64(1000), report.Overview.Current.PageViews)
	assert.Equal(t, domain.TrendUp, report.Overview.Changes.PageViews.Trend)
	assert.Equal(t, 25.0, report.Overview.Changes.PageViews.Delta)

	assert.Len(t, report.Sources, 1)
	assert.Len(t, report.Devices, 1)
	assert.Len(t, report.Geo, 1)
	assert.Len(t, report.SourceMedium, 1)
	assert.Len(t, report.Campaigns, 1)
	assert.Equal(t, int64(7), report.RealtimeUsers.ActiveUsers)
}

func TestGetReport_FalhaDeSecaoNaoDerrubaORelatorio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalytics := mocks.NewMockAnalyticsIntegrator(ctrl)

	// A consulta de origens de tráfego falha; o restante assenta normalmente
	mockAnalytics.EXPECT().TrafficSources(gomock.Any()).
		Return(nil, errors.New("upstream timeout"))

	mockAnalytics.EXPECT().OverviewMetrics(gomock.Any()).Return(fullOverview(), nil)
	mockAnalytics.EXPECT().DeviceBreakdown(gomock.Any()).
		Return([]domain.DeviceEntry{{Category: "mobile", Sessions: 200, Visitors: 180}}, nil)
	mockAnalytics.EXPECT().GeoBreakdown(gomock.Any()).
		Return([]domain.GeoEntry{{Country: "Brazil", Sessions: 500, Visitors: 410}}, nil)
	mockAnalytics.EXPECT().ActiveUsers().Return(&domain.RealtimeUsers{ActiveUsers: 3}, nil)
	mockAnalytics.EXPECT().SourceMediumBreakdown(gomock.Any()).
		Return([]domain.SourceMediumEntry{}, nil)
	mockAnalytics.EXPECT().CampaignBreakdown(gomock.Any()).
		Return([]domain.CampaignEntry{}, nil)

	service := reporting.NewService(newTestConfig(), mockAnalytics)

	report, err := service.GetReport(domain.Period7Days)
	assert.NoError(t, err)
	assert.NotNil(t, report)

	// A seção que falhou aparece vazia, nunca ausente
	assert.NotNil(t, report.Sources)
	assert.Empty(t, report.Sources)

	// As demais seções mantêm seus dados
	assert.Len(t, report.Devices, 1)
	assert.Len(t, report.Geo, 1)
	assert.Equal(t, int64(3), report.RealtimeUsers.ActiveUsers)
}

func TestGetReport_FalhaDaVisaoGeralEhCatastrofica(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalytics := mocks.NewMockAnalyticsIntegrator(ctrl)

	mockAnalytics.EXPECT().OverviewMetrics(gomock.Any()).
		Return(nil, errors.New("quota exceeded"))

	// As demais seções ainda são consultadas até o fim, mesmo com a visão
	// geral falhando; não há curto-circuito
	mockAnalytics.EXPECT().TrafficSources(gomock.Any()).Return([]domain.SourceEntry{}, nil)
	mockAnalytics.EXPECT().DeviceBreakdown(gomock.Any()).Return([]domain.DeviceEntry{}, nil)
	mockAnalytics.EXPECT().GeoBreakdown(gomock.Any()).Return([]domain.GeoEntry{}, nil)
	mockAnalytics.EXPECT().ActiveUsers().Return(&domain.RealtimeUsers{}, nil)
	mockAnalytics.EXPECT().SourceMediumBreakdown(gomock.Any()).Return([]domain.SourceMediumEntry{}, nil)
	mockAnalytics.EXPECT().CampaignBreakdown(gomock.Any()).Return([]domain.CampaignEntry{}, nil)

	service := reporting.NewService(newTestConfig(), mockAnalytics)

	report, err := service.GetReport(domain.Period7Days)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, reporting.ErrOverviewUnavailable)

	var reportErr *reporting.ReportError
	assert.ErrorAs(t, err, &reportErr)
	assert.Equal(t, domain.SectionOverview, reportErr.Section)
}

func TestGetReport_SemCredenciaisDoProvedor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma chamada ao integrador é esperada
	mockAnalytics := mocks.NewMockAnalyticsIntegrator(ctrl)

	cfg := newTestConfig()
	cfg.Analytics.AccessToken = ""

	service := reporting.NewService(cfg, mockAnalytics)

	report, err := service.GetReport(domain.Period7Days)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, reporting.ErrMissingCredentials)
}

func TestGetReport_PeriodoDesconhecido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalytics := mocks.NewMockAnalyticsIntegrator(ctrl)

	service := reporting.NewService(newTestConfig(), mockAnalytics)

	_, err := service.GetReport(domain.Period("last_week"))
	assert.ErrorIs(t, err, domain.ErrUnknownPeriod)
}

func TestGetBlogReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalytics := mocks.NewMockAnalyticsIntegrator(ctrl)
	mockAnalytics.EXPECT().BlogPosts(gomock.Any()).
		Return([]domain.BlogPost{
			{Path: "/blog/primeiro-post", Title: "Primeiro Post", PageViews: 120},
		}, nil)

	service := reporting.NewService(newTestConfig(), mockAnalytics)

	report, err := service.GetBlogReport(domain.Period30Days)
	assert.NoError(t, err)
	assert.Len(t, report.Posts, 1)
	assert.Equal(t, "/blog/primeiro-post", report.Posts[0].Path)
}

func TestGetBlogReport_SemCredenciais(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalytics := mocks.NewMockAnalyticsIntegrator(ctrl)

	cfg := newTestConfig()
	cfg.Analytics.PropertyID = ""

	service := reporting.NewService(cfg, mockAnalytics)

	_, err := service.GetBlogReport(domain.Period7Days)
	assert.ErrorIs(t, err, reporting.ErrMissingCredentials)
}

func TestGetClicksReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalytics := mocks.NewMockAnalyticsIntegrator(ctrl)
	mockAnalytics.EXPECT().ClickSeries(gomock.Any()).
		Return(&domain.ClicksReport{
			TotalClicks: 42,
			DailyClicks: []domain.DailyClicks{
				{Date: "2025-06-14", Clicks: 20},
				{Date: "2025-06-15", Clicks: 22},
			},
		}, nil)

	service := reporting.NewService(newTestConfig(), mockAnalytics)

	report, err := service.GetClicksReport(domain.Period7Days)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), report.TotalClicks)
	assert.Len(t, report.DailyClicks, 2)
}

func TestGetPagesReport_ErroDoProvedor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalytics := mocks.NewMockAnalyticsIntegrator(ctrl)
	mockAnalytics.EXPECT().TopPages(gomock.Any()).
		Return(nil, errors.New("upstream 500"))

	service := reporting.NewService(newTestConfig(), mockAnalytics)

	report, err := service.GetPagesReport(domain.Period7Days)
	assert.Nil(t, report)
	assert.Error(t, err)
}

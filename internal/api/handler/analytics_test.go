package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/site-analytics-api/internal/api/handler"
	"github.com/vfg2006/site-analytics-api/internal/config"
	"github.com/vfg2006/site-analytics-api/internal/domain"
	"github.com/vfg2006/site-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/site-analytics-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/site-analytics-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func newAnalyticsConfig() *config.Config {
	return &config.Config{
		Analytics: config.Analytics{
			PropertyID:  "123456789",
			AccessToken: "test-access-token",
		},
	}
}

func TestGetReport_Sucesso(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)
	mockReporter.EXPECT().GetReport(domain.Period7Days).
		Return(&domain.Report{
			Sources:      []domain.SourceEntry{},
			Devices:      []domain.DeviceEntry{},
			Geo:          []domain.GeoEntry{},
			SourceMedium: []domain.SourceMediumEntry{},
			Campaigns:    []domain.CampaignEntry{},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/analytics?period=7daysAgo", nil)
	rec := httptest.NewRecorder()

	handler.GetReport(newAnalyticsConfig(), mockReporter).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	// O conjunto de chaves do relatório é fixo, mesmo com seções vazias
	var body map[string]any
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	for _, key := range []string{"overview", "sources", "devices", "geo", "realtimeUsers", "sourceMedium", "campaigns"} {
		assert.Contains(t, body, key)
	}
}

func TestGetReport_PeriodoAusenteUsaPadrao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)
	mockReporter.EXPECT().GetReport(domain.Period7Days).Return(&domain.Report{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/analytics", nil)
	rec := httptest.NewRecorder()

	handler.GetReport(newAnalyticsConfig(), mockReporter).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetReport_PeriodoDesconhecido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// O serviço não chega a ser chamado
	mockReporter := mocks.NewMockReporter(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/analytics?period=last_week", nil)
	rec := httptest.NewRecorder()

	handler.GetReport(newAnalyticsConfig(), mockReporter).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var apiErr apiErrors.APIError
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&apiErr))
	assert.Equal(t, apiErrors.ErrUnknownPeriod, apiErr.Code)
}

func TestGetReport_CredenciaisAusentes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)
	mockReporter.EXPECT().GetReport(domain.Period7Days).
		Return(nil, reporting.NewReportError(reporting.ErrMissingCredentials, domain.SectionOverview, ""))

	cfg := newAnalyticsConfig()
	cfg.Analytics.AccessToken = ""

	req := httptest.NewRequest(http.MethodGet, "/analytics?period=7daysAgo", nil)
	rec := httptest.NewRecorder()

	handler.GetReport(cfg, mockReporter).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	// O payload de diagnóstico traz as flags de presença, nunca os valores
	var body struct {
		Error string          `json:"error"`
		Debug map[string]bool `json:"debug"`
	}
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.True(t, body.Debug["has_property_id"])
	assert.False(t, body.Debug["has_access_token"])
}

func TestGetReport_VisaoGeralIndisponivel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)
	mockReporter.EXPECT().GetReport(domain.Period7Days).
		Return(nil, reporting.NewReportError(reporting.ErrOverviewUnavailable, domain.SectionOverview, "quota exceeded"))

	req := httptest.NewRequest(http.MethodGet, "/analytics?period=7daysAgo", nil)
	rec := httptest.NewRecorder()

	handler.GetReport(newAnalyticsConfig(), mockReporter).ServeHTTP(rec, req)

	// A falha da visão geral é indisponibilidade do relatório, não erro interno
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body struct {
		Error string          `json:"error"`
		Debug map[string]bool `json:"debug"`
	}
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Contains(t, body.Error, "indisponível")
	assert.True(t, body.Debug["has_property_id"])
	assert.True(t, body.Debug["has_access_token"])
}

func TestGetReport_ErroInesperadoRetorna500ComIncidente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)
	mockReporter.EXPECT().GetReport(domain.Period7Days).
		Return(nil, errors.New("falha ao montar resposta"))

	req := httptest.NewRequest(http.MethodGet, "/analytics?period=7daysAgo", nil)
	rec := httptest.NewRecorder()

	handler.GetReport(newAnalyticsConfig(), mockReporter).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Code    string `json:"code"`
	}
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Contains(t, body.Code, apiErrors.ErrInternalServer)
	assert.NotEmpty(t, body.Message)
}

func TestGetBlogReport_Sucesso(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)
	mockReporter.EXPECT().GetBlogReport(domain.Period30Days).
		Return(&domain.BlogReport{
			Posts: []domain.BlogPost{{Path: "/blog/post", Title: "Post", PageViews: 10}},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/analytics/blog?period=30daysAgo", nil)
	rec := httptest.NewRecorder()

	handler.GetBlogReport(mockReporter).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body domain.BlogReport
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Len(t, body.Posts, 1)
}

func TestGetClicksReport_FalhaDoProvedor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)
	mockReporter.EXPECT().GetClicksReport(domain.Period7Days).
		Return(nil, errors.New("upstream 500"))

	req := httptest.NewRequest(http.MethodGet, "/analytics/clicks?period=7daysAgo", nil)
	rec := httptest.NewRecorder()

	handler.GetClicksReport(mockReporter).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var apiErr apiErrors.APIError
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&apiErr))
	assert.Equal(t, apiErrors.ErrExternalService, apiErr.Code)
}

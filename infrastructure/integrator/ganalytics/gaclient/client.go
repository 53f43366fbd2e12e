package gaclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	gadomain "github.com/vfg2006/site-analytics-api/infrastructure/integrator/ganalytics/domain"
	"github.com/vfg2006/site-analytics-api/internal/config"
)

// Client é o contrato de acesso à Google Analytics Data API
type Client interface {
	RunReport(request *gadomain.RunReportRequest) (*gadomain.RunReportResponse, error)
	RunRealtimeReport(request *gadomain.RunRealtimeReportRequest) (*gadomain.RunReportResponse, error)
}

type GAClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &GAClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// RunReport executa uma consulta agregada sobre uma ou duas janelas de datas
func (c *GAClient) RunReport(request *gadomain.RunReportRequest) (*gadomain.RunReportResponse, error) {
	return c.post("runReport", request)
}

// RunRealtimeReport executa a consulta de usuários ativos no momento
func (c *GAClient) RunRealtimeReport(request *gadomain.RunRealtimeReportRequest) (*gadomain.RunReportResponse, error) {
	return c.post("runRealtimeReport", request)
}

func (c *GAClient) post(method string, payload any) (*gadomain.RunReportResponse, error) {
	url := fmt.Sprintf("%s/properties/%s:%s", c.Cfg.Analytics.BaseURL, c.Cfg.Analytics.PropertyID, method)

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar requisição para o provedor")
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		logrus.WithError(err).Error("ganalytics: failed to build provider request")
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.Cfg.Analytics.AccessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).WithField("method", method).Error("ganalytics: provider request failed")
		return nil, errors.Wrap(err, "erro de comunicação com o provedor de analytics")
	}
	defer resp.Body.Close()

	respBody, err := c.handleResponse(method, resp)
	if err != nil {
		return nil, err
	}

	var response gadomain.RunReportResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		logrus.WithError(err).WithField("method", method).Error("ganalytics: failed to decode provider response")
		return nil, errors.Wrap(err, "erro ao decodificar resposta do provedor")
	}

	return &response, nil
}

// handleResponse lê o corpo e converte respostas não-2xx no envelope de erro do provedor
func (c *GAClient) handleResponse(method string, resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler resposta do provedor")
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr gadomain.APIError
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
			logrus.WithFields(logrus.Fields{
				"method":      method,
				"status_code": resp.StatusCode,
				"api_status":  apiErr.Error.Status,
			}).Error("ganalytics: provider returned an error")

			return nil, errors.Errorf(
				"provedor de analytics retornou erro (%s): %s",
				apiErr.Error.Status,
				apiErr.Error.Message,
			)
		}

		return nil, errors.Errorf("provedor de analytics retornou status %d", resp.StatusCode)
	}

	return body, nil
}

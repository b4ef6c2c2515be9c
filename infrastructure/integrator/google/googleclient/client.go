package googleclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/sirupsen/logrus"
	googledomain "github.com/vfg2006/ad-performance-api/infrastructure/integrator/google/domain"
	"github.com/vfg2006/ad-performance-api/internal/config"
	"github.com/vfg2006/ad-performance-api/internal/domain"
)

type Client interface {
	SearchReport(ctx context.Context, customerID, accessToken, query string) ([]googledomain.ReportRow, error)
}

type GoogleAdsClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &GoogleAdsClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}

type searchRequest struct {
	Query     string `json:"query"`
	PageToken string `json:"pageToken,omitempty"`
}

// SearchReport executa uma consulta GAQL no endpoint googleAds:search do cliente,
// seguindo a paginação por token até esgotar os resultados
func (c *GoogleAdsClient) SearchReport(ctx context.Context, customerID, accessToken, query string) ([]googledomain.ReportRow, error) {
	endpoint, err := url.Parse(c.config.Google.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, fmt.Sprintf("/customers/%s/googleAds:search", customerID))

	rows := make([]googledomain.ReportRow, 0)
	pageToken := ""

	for {
		payload, err := json.Marshal(searchRequest{Query: query, PageToken: pageToken})
		if err != nil {
			return nil, fmt.Errorf("erro ao serializar a consulta: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
		if err != nil {
			return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
		}

		req.Header.Set("Authorization", "Bearer "+accessToken)
		req.Header.Set("developer-token", c.config.Google.DeveloperToken)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("erro ao ler a resposta: %w", err)
		}

		if resp.StatusCode != http.StatusOK {
			var apiErr googledomain.APIError
			if jsonErr := json.Unmarshal(body, &apiErr); jsonErr == nil && apiErr.Error.Message != "" {
				logrus.WithFields(logrus.Fields{
					"customer_id": customerID,
					"status":      resp.StatusCode,
					"api_status":  apiErr.Error.Status,
				}).Error("Google Ads API retornou erro")

				if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
					return nil, fmt.Errorf("%s: %w", apiErr.Error.Message, domain.ErrCredentialRevoked)
				}
				return nil, fmt.Errorf("google ads api: %s (%s)", apiErr.Error.Message, apiErr.Error.Status)
			}
			return nil, fmt.Errorf("google ads api: requisição falhou com status %s", resp.Status)
		}

		var response googledomain.SearchResponse
		if err := json.Unmarshal(body, &response); err != nil {
			return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
		}

		rows = append(rows, response.Results...)

		if response.NextPageToken == "" {
			break
		}
		pageToken = response.NextPageToken
	}

	return rows, nil
}

package metaclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ad-performance-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-performance-api/internal/config"
	"github.com/vfg2006/ad-performance-api/internal/domain"
)

type Client interface {
	GetCampaignsByAccountID(ctx context.Context, accountID, accessToken string) ([]metadomain.Campaign, error)
	GetDailyInsights(ctx context.Context, accountID, accessToken string, date time.Time) ([]metadomain.CampaignDailyInsight, error)
	GetDailyBreakdowns(ctx context.Context, accountID, accessToken string, date time.Time, breakdown domain.BreakdownType) ([]metadomain.BreakdownInsight, error)
}

type MetaClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// doGet executa uma requisição GET na Graph API e devolve o corpo da resposta,
// decodificando o envelope de erro quando o status não é 200
func (c *MetaClient) doGet(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	fullURL := endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, errors.Wrap(err, "erro ao fazer a requisição")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logrus.WithError(err).Error("Erro ao ler a resposta")
		return nil, errors.Wrap(err, "erro ao ler a resposta")
	}

	if resp.StatusCode != http.StatusOK {
		var errResp metadomain.ErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
			logrus.WithFields(logrus.Fields{
				"status":     resp.StatusCode,
				"code":       errResp.Error.Code,
				"fbtrace_id": errResp.Error.FBTraceID,
			}).Error("Graph API retornou erro")

			if errResp.Error.IsAuthError() {
				return nil, errors.Wrap(domain.ErrCredentialRevoked, errResp.Error.String())
			}
			return nil, errors.Errorf("graph api: %s", errResp.Error.String())
		}
		return nil, errors.Errorf("graph api: status inesperado %d", resp.StatusCode)
	}

	return body, nil
}

package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/ad-performance-api/infrastructure/integrator/meta/domain"
)

type ResponseDailyInsights struct {
	Data   []metadomain.CampaignDailyInsight `json:"data"`
	Paging metadomain.Paging                 `json:"paging"`
}

// GetDailyInsights busca os insights de um único dia da conta, quebrados por
// campanha, conjunto e anúncio
func (c *MetaClient) GetDailyInsights(ctx context.Context, accountID, accessToken string, date time.Time) ([]metadomain.CampaignDailyInsight, error) {
	baseURL := fmt.Sprintf("%s/act_%s/insights", c.Cfg.Meta.URL, accountID)
	day := date.Format("2006-01-02")

	insights := make([]metadomain.CampaignDailyInsight, 0)
	after := ""

	for {
		params := url.Values{}
		params.Add("fields", "campaign_id,campaign_name,adset_id,ad_id,impressions,clicks,spend,actions,objective")
		params.Add("level", "ad")
		params.Add("time_range", fmt.Sprintf(`{"since":"%s","until":"%s"}`, day, day))
		params.Add("limit", "500")
		params.Add("access_token", accessToken)
		if after != "" {
			params.Add("after", after)
		}

		body, err := c.doGet(ctx, baseURL, params)
		if err != nil {
			return nil, err
		}

		var response ResponseDailyInsights
		if err := json.Unmarshal(body, &response); err != nil {
			return nil, errors.Wrap(err, "erro ao decodificar JSON de insights")
		}

		insights = append(insights, response.Data...)

		if response.Paging.Next == "" || response.Paging.Cursors.After == "" {
			break
		}
		after = response.Paging.Cursors.After
	}

	return insights, nil
}

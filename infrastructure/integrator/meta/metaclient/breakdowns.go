package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/ad-performance-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-performance-api/internal/domain"
)

type ResponseBreakdownInsights struct {
	Data   []metadomain.BreakdownInsight `json:"data"`
	Paging metadomain.Paging             `json:"paging"`
}

// breakdownParam mapeia a dimensão interna para o parâmetro de breakdown da Graph API
var breakdownParam = map[domain.BreakdownType]string{
	domain.BreakdownAge:      "age",
	domain.BreakdownGender:   "gender",
	domain.BreakdownDevice:   "device_platform",
	domain.BreakdownPlatform: "publisher_platform",
	domain.BreakdownRegion:   "region",
}

// GetDailyBreakdowns busca os insights de um dia segmentados pela dimensão pedida
func (c *MetaClient) GetDailyBreakdowns(ctx context.Context, accountID, accessToken string, date time.Time, breakdown domain.BreakdownType) ([]metadomain.BreakdownInsight, error) {
	param, ok := breakdownParam[breakdown]
	if !ok {
		return nil, errors.Errorf("breakdown não suportado: %s", breakdown)
	}

	baseURL := fmt.Sprintf("%s/act_%s/insights", c.Cfg.Meta.URL, accountID)
	day := date.Format("2006-01-02")

	insights := make([]metadomain.BreakdownInsight, 0)
	after := ""

	for {
		params := url.Values{}
		params.Add("fields", "campaign_id,impressions,clicks,spend,actions")
		params.Add("level", "campaign")
		params.Add("breakdowns", param)
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

		var response ResponseBreakdownInsights
		if err := json.Unmarshal(body, &response); err != nil {
			return nil, errors.Wrap(err, "erro ao decodificar JSON de breakdowns")
		}

		insights = append(insights, response.Data...)

		if response.Paging.Next == "" || response.Paging.Cursors.After == "" {
			break
		}
		after = response.Paging.Cursors.After
	}

	return insights, nil
}

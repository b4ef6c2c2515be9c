package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/ad-performance-api/infrastructure/integrator/meta/domain"
)

type ResponseCampaigns struct {
	Data   []metadomain.Campaign `json:"data"`
	Paging metadomain.Paging     `json:"paging"`
}

// GetCampaignsByAccountID busca todas as campanhas da conta, seguindo a
// paginação por cursor da Graph API
func (c *MetaClient) GetCampaignsByAccountID(ctx context.Context, accountID, accessToken string) ([]metadomain.Campaign, error) {
	baseURL := fmt.Sprintf("%s/act_%s/campaigns", c.Cfg.Meta.URL, accountID)

	campaigns := make([]metadomain.Campaign, 0)
	after := ""

	for {
		params := url.Values{}
		params.Add("fields", "id,name,objective,effective_status")
		params.Add("limit", "100")
		params.Add("access_token", accessToken)
		if after != "" {
			params.Add("after", after)
		}

		body, err := c.doGet(ctx, baseURL, params)
		if err != nil {
			return nil, err
		}

		var response ResponseCampaigns
		if err := json.Unmarshal(body, &response); err != nil {
			return nil, errors.Wrap(err, "erro ao decodificar JSON de campanhas")
		}

		campaigns = append(campaigns, response.Data...)

		if response.Paging.Next == "" || response.Paging.Cursors.After == "" {
			break
		}
		after = response.Paging.Cursors.After
	}

	return campaigns, nil
}

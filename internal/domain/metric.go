package domain

import "time"

// BreakdownType é a dimensão pela qual as métricas brutas são segmentadas
type BreakdownType string

const (
	BreakdownAge      BreakdownType = "age"
	BreakdownGender   BreakdownType = "gender"
	BreakdownDevice   BreakdownType = "device"
	BreakdownPlatform BreakdownType = "platform"
	BreakdownRegion   BreakdownType = "region"
)

// KnownBreakdowns lista as dimensões aceitas pela API e pelos adapters
var KnownBreakdowns = []BreakdownType{
	BreakdownAge,
	BreakdownGender,
	BreakdownDevice,
	BreakdownPlatform,
	BreakdownRegion,
}

// ValidBreakdown indica se a dimensão informada é conhecida
func ValidBreakdown(b BreakdownType) bool {
	for _, known := range KnownBreakdowns {
		if b == known {
			return true
		}
	}
	return false
}

// RawMetricRow é o fato imutável de métricas de um dia para uma entidade.
// Escrito apenas pelos adapters (upsert por chave), nunca mutado pelo core.
type RawMetricRow struct {
	ID          string    `json:"id"`
	AccountID   string    `json:"account_id"`
	Provider    Provider  `json:"provider"`
	CampaignID  string    `json:"campaign_id"`
	AdSetID     *string   `json:"ad_set_id,omitempty"`
	AdID        *string   `json:"ad_id,omitempty"`
	Date        time.Time `json:"date"`
	Impressions int       `json:"impressions"`
	Clicks      int       `json:"clicks"`
	Spend       float64   `json:"spend"`
	Conversions int       `json:"conversions"`
	Results     int       `json:"results"`
	Messages    int       `json:"messages"`
}

// BreakdownRow é a variante segmentada de RawMetricRow
type BreakdownRow struct {
	ID             string        `json:"id"`
	AccountID      string        `json:"account_id"`
	Provider       Provider      `json:"provider"`
	CampaignID     string        `json:"campaign_id"`
	Date           time.Time     `json:"date"`
	BreakdownType  BreakdownType `json:"breakdown_type"`
	BreakdownValue string        `json:"breakdown_value"`
	Impressions    int           `json:"impressions"`
	Clicks         int           `json:"clicks"`
	Spend          float64       `json:"spend"`
	Conversions    int           `json:"conversions"`
	Results        int           `json:"results"`
	Messages       int           `json:"messages"`
}

// CampaignStatus é o status de veiculação reportado pela plataforma
type CampaignStatus string

const (
	CampaignStatusActive CampaignStatus = "active"
	CampaignStatusPaused CampaignStatus = "paused"
	CampaignStatusEnded  CampaignStatus = "ended"
)

// Campaign é a entidade estrutural sincronizada antes das métricas.
// No Meta a estrutura precisa existir antes que métricas possam ser atribuídas.
type Campaign struct {
	ID         string         `json:"id"`
	AccountID  string         `json:"account_id"`
	Provider   Provider       `json:"provider"`
	ExternalID string         `json:"external_id"`
	Name       string         `json:"name"`
	Objective  string         `json:"objective,omitempty"`
	Status     CampaignStatus `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// MetricScope define o recorte de agregação: período obrigatório e filtros opcionais
type MetricScope struct {
	StartDate  *time.Time      `json:"start_date"`
	EndDate    *time.Time      `json:"end_date"`
	AccountID  *string         `json:"account_id,omitempty"`
	CampaignID *string         `json:"campaign_id,omitempty"`
	Provider   *Provider       `json:"provider,omitempty"`
	Status     *CampaignStatus `json:"status,omitempty"`
}

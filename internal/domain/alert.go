package domain

import "time"

// AlertMetricType define qual valor agregado a regra observa.
// Métricas daily_* avaliam apenas o dia corrente; total_* avaliam a janela
// de lookback configurada na regra.
type AlertMetricType string

const (
	AlertMetricDailySpend   AlertMetricType = "daily_spend"
	AlertMetricTotalSpend   AlertMetricType = "total_spend"
	AlertMetricDailyResults AlertMetricType = "daily_results"
	AlertMetricCTR          AlertMetricType = "ctr"
	AlertMetricCPC          AlertMetricType = "cpc"
)

// AlertCondition é o operador de comparação contra o threshold
type AlertCondition string

const (
	AlertConditionGreaterThan AlertCondition = "greater_than"
	AlertConditionLessThan    AlertCondition = "less_than"
)

// SpendingAlert é a regra configurada pelo usuário. O escopo (provider, conta,
// campanha) é opcional; quando ausente a regra observa todos os dados do usuário.
type SpendingAlert struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	Name            string          `json:"name"`
	MetricType      AlertMetricType `json:"metric_type"`
	Condition       AlertCondition  `json:"condition"`
	Threshold       float64         `json:"threshold"`
	Provider        *Provider       `json:"provider,omitempty"`
	AccountID       *string         `json:"account_id,omitempty"`
	CampaignID      *string         `json:"campaign_id,omitempty"`
	LookbackDays    int             `json:"lookback_days"`
	IsActive        bool            `json:"is_active"`
	LastTriggeredAt *time.Time      `json:"last_triggered_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Breached avalia a condição da regra contra o valor agregado atual
func (a *SpendingAlert) Breached(value float64) bool {
	switch a.Condition {
	case AlertConditionGreaterThan:
		return value > a.Threshold
	case AlertConditionLessThan:
		return value < a.Threshold
	default:
		return false
	}
}

// AlertTrigger é o registro de runtime de uma violação de threshold.
// Invariante: no máximo um trigger não resolvido por regra.
type AlertTrigger struct {
	ID            string     `json:"id"`
	AlertID       string     `json:"alert_id"`
	CurrentAmount float64    `json:"current_amount"`
	TriggeredAt   time.Time  `json:"triggered_at"`
	ResolvedAt    *time.Time `json:"resolved_at,omitempty"`
}

// Resolved indica se o trigger já foi encerrado
func (t *AlertTrigger) Resolved() bool {
	return t != nil && t.ResolvedAt != nil
}

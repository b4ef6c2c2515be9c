package domain

// AggregatedMetric é o resultado derivado da agregação, nunca persistido.
// Os índices derivados são sempre calculados a partir dos totais já somados
// e valem 0 quando o denominador é 0.
type AggregatedMetric struct {
	Impressions    int     `json:"impressions"`
	Clicks         int     `json:"clicks"`
	Spend          float64 `json:"spend"`
	Conversions    int     `json:"conversions"`
	Results        int     `json:"results"`
	Messages       int     `json:"messages"`
	CTR            float64 `json:"ctr"`
	CPC            float64 `json:"cpc"`
	CostPerResult  float64 `json:"cost_per_result"`
	CostPerMessage float64 `json:"cost_per_message"`
}

// BreakdownGroup é o total agregado de um único valor de dimensão
type BreakdownGroup struct {
	Value   string            `json:"value"`
	Metrics *AggregatedMetric `json:"metrics"`
}

// BreakdownAggregation agrupa os totais por valor de dimensão, ordenados por
// impressões decrescentes. NeedsSync distingue "sem dados" de "dimensão nunca
// sincronizada": vale true quando o recorte tem métricas mas nenhuma linha de breakdown.
type BreakdownAggregation struct {
	Dimension BreakdownType     `json:"dimension"`
	Groups    []*BreakdownGroup `json:"groups"`
	NeedsSync bool              `json:"needs_sync"`
}

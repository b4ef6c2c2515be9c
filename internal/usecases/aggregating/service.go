package aggregating

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-performance-api/infrastructure/repository"
	"github.com/vfg2006/ad-performance-api/internal/domain"
	"github.com/vfg2006/ad-performance-api/pkg/utils"
)

type Service struct {
	metricRepo repository.MetricRepository
}

func NewService(metricRepo repository.MetricRepository) Aggregator {
	return &Service{
		metricRepo: metricRepo,
	}
}

// Aggregate dobra todas as linhas do recorte em um único AggregatedMetric.
// Recorte sem linhas produz um resultado zerado, nunca erro.
func (s *Service) Aggregate(scope *domain.MetricScope) (*domain.AggregatedMetric, error) {
	if err := validateScope(scope); err != nil {
		return nil, err
	}

	rows, err := s.metricRepo.GetByScope(scope)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar métricas do recorte: %w", err)
	}

	return foldRows(rows), nil
}

// AggregateBreakdown agrupa as linhas segmentadas por valor da dimensão e dobra
// cada grupo de forma independente. Os grupos são retornados em ordem decrescente
// de impressões, com desempate estável pela ordem de chegada das linhas.
func (s *Service) AggregateBreakdown(scope *domain.MetricScope, dimension domain.BreakdownType) (*domain.BreakdownAggregation, error) {
	if err := validateScope(scope); err != nil {
		return nil, err
	}

	if !domain.ValidBreakdown(dimension) {
		return nil, fmt.Errorf("dimensão de breakdown desconhecida: %s", dimension)
	}

	breakdownRows, err := s.metricRepo.GetBreakdownsByScope(scope, dimension)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar breakdowns do recorte: %w", err)
	}

	aggregation := &domain.BreakdownAggregation{
		Dimension: dimension,
		Groups:    foldBreakdownGroups(breakdownRows),
	}

	// Recorte com métricas mas sem breakdowns indica que a dimensão nunca foi
	// sincronizada, não que não houve atividade. O chamador usa o sinal para
	// sugerir um resync.
	if len(breakdownRows) == 0 {
		metricRows, err := s.metricRepo.GetByScope(scope)
		if err != nil {
			return nil, fmt.Errorf("erro ao verificar métricas do recorte: %w", err)
		}

		if len(metricRows) > 0 {
			aggregation.NeedsSync = true

			logrus.WithFields(logrus.Fields{
				"dimension":   dimension,
				"metric_rows": len(metricRows),
			}).Debug("Recorte tem métricas mas nenhum breakdown sincronizado")
		}
	}

	return aggregation, nil
}

func validateScope(scope *domain.MetricScope) error {
	if scope == nil || scope.StartDate == nil || scope.EndDate == nil {
		return fmt.Errorf("é necessário informar as datas de início e fim")
	}

	if scope.StartDate.After(*scope.EndDate) {
		return fmt.Errorf("a data de início não pode ser posterior à data de fim")
	}

	return nil
}

// accumulator soma contadores durante a dobra. Os índices derivados só são
// calculados no finalize, a partir dos totais: o CTR do grupo combinado é
// clicks totais sobre impressões totais, nunca a média dos CTRs por linha.
type accumulator struct {
	impressions int
	clicks      int
	spend       float64
	conversions int
	results     int
	messages    int
}

func (a *accumulator) addRow(row *domain.RawMetricRow) {
	if row == nil {
		return
	}

	a.impressions += row.Impressions
	a.clicks += row.Clicks
	a.spend += row.Spend
	a.conversions += row.Conversions
	a.results += row.Results
	a.messages += row.Messages
}

func (a *accumulator) addBreakdownRow(row *domain.BreakdownRow) {
	if row == nil {
		return
	}

	a.impressions += row.Impressions
	a.clicks += row.Clicks
	a.spend += row.Spend
	a.conversions += row.Conversions
	a.results += row.Results
	a.messages += row.Messages
}

// finalize materializa o AggregatedMetric com os índices derivados dos totais.
// Todo índice vale 0 quando o denominador é 0.
func (a *accumulator) finalize() *domain.AggregatedMetric {
	return &domain.AggregatedMetric{
		Impressions:    a.impressions,
		Clicks:         a.clicks,
		Spend:          utils.RoundWithTwoDecimalPlace(a.spend),
		Conversions:    a.conversions,
		Results:        a.results,
		Messages:       a.messages,
		CTR:            utils.SafeRatio(float64(a.clicks), float64(a.impressions)),
		CPC:            utils.SafeRatio(a.spend, float64(a.clicks)),
		CostPerResult:  utils.SafeRatio(a.spend, float64(a.results)),
		CostPerMessage: utils.SafeRatio(a.spend, float64(a.messages)),
	}
}

func foldRows(rows []*domain.RawMetricRow) *domain.AggregatedMetric {
	acc := &accumulator{}
	for _, row := range rows {
		acc.addRow(row)
	}

	return acc.finalize()
}

// foldBreakdownGroups agrupa por breakdown_value com acumulação O(1) por mapa,
// preservando a ordem de chegada para o desempate estável da ordenação final.
func foldBreakdownGroups(rows []*domain.BreakdownRow) []*domain.BreakdownGroup {
	accByValue := make(map[string]*accumulator)
	order := make([]string, 0)

	for _, row := range rows {
		if row == nil {
			continue
		}

		acc, exists := accByValue[row.BreakdownValue]
		if !exists {
			acc = &accumulator{}
			accByValue[row.BreakdownValue] = acc
			order = append(order, row.BreakdownValue)
		}
		acc.addBreakdownRow(row)
	}

	groups := make([]*domain.BreakdownGroup, 0, len(order))
	for _, value := range order {
		groups = append(groups, &domain.BreakdownGroup{
			Value:   value,
			Metrics: accByValue[value].finalize(),
		})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Metrics.Impressions > groups[j].Metrics.Impressions
	})

	return groups
}

package aggregating

import (
	"github.com/vfg2006/ad-performance-api/internal/domain"
)

// Aggregator dobra linhas brutas de métricas em totais e índices derivados para
// um recorte. É agnóstico de granularidade: o chamador escolhe o período que
// define a semântica da agregação (um dia, uma janela, um mês).
type Aggregator interface {
	// Aggregate dobra todas as linhas do recorte em um único total
	Aggregate(scope *domain.MetricScope) (*domain.AggregatedMetric, error)

	// AggregateBreakdown agrupa as linhas segmentadas por valor da dimensão,
	// dobrando cada grupo de forma independente
	AggregateBreakdown(scope *domain.MetricScope, dimension domain.BreakdownType) (*domain.BreakdownAggregation, error)
}

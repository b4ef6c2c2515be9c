package aggregating

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ad-performance-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ad-performance-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func testScope() *domain.MetricScope {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	return &domain.MetricScope{
		StartDate: &start,
		EndDate:   &end,
	}
}

func TestService_Aggregate(t *testing.T) {
	tests := []struct {
		name     string
		scope    *domain.MetricScope
		setup    func(metricRepo *mocks.MockMetricRepository)
		validate func(t *testing.T, result *domain.AggregatedMetric, err error)
	}{
		{
			name:  "Recorte sem linhas - resultado zerado, nunca erro",
			scope: testScope(),
			setup: func(metricRepo *mocks.MockMetricRepository) {
				metricRepo.EXPECT().GetByScope(gomock.Any()).Return([]*domain.RawMetricRow{}, nil)
			},
			validate: func(t *testing.T, result *domain.AggregatedMetric, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 0, result.Impressions)
				assert.Equal(t, 0.0, result.Spend)
				assert.Equal(t, 0.0, result.CTR)
				assert.Equal(t, 0.0, result.CPC)
			},
		},
		{
			name:  "Índices derivados calculados sobre os totais, não como média das linhas",
			scope: testScope(),
			setup: func(metricRepo *mocks.MockMetricRepository) {
				// CTR por linha seria (0.5 + 0.01) / 2 = 0.255;
				// o CTR correto do recorte é 60/10100 ≈ 0.00594
				metricRepo.EXPECT().GetByScope(gomock.Any()).Return([]*domain.RawMetricRow{
					{Impressions: 100, Clicks: 50, Spend: 25.0, Results: 5},
					{Impressions: 10000, Clicks: 10, Spend: 75.0, Results: 5},
				}, nil)
			},
			validate: func(t *testing.T, result *domain.AggregatedMetric, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 10100, result.Impressions)
				assert.Equal(t, 60, result.Clicks)
				assert.Equal(t, 100.0, result.Spend)
				assert.InDelta(t, 60.0/10100.0, result.CTR, 1e-9)
				assert.InDelta(t, 100.0/60.0, result.CPC, 1e-9)
				assert.InDelta(t, 10.0, result.CostPerResult, 1e-9)
			},
		},
		{
			name:  "Denominador zero - índices valem zero em vez de NaN",
			scope: testScope(),
			setup: func(metricRepo *mocks.MockMetricRepository) {
				metricRepo.EXPECT().GetByScope(gomock.Any()).Return([]*domain.RawMetricRow{
					{Impressions: 0, Clicks: 0, Spend: 12.5, Results: 0, Messages: 0},
				}, nil)
			},
			validate: func(t *testing.T, result *domain.AggregatedMetric, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 0.0, result.CTR)
				assert.Equal(t, 0.0, result.CPC)
				assert.Equal(t, 0.0, result.CostPerResult)
				assert.Equal(t, 0.0, result.CostPerMessage)
				assert.Equal(t, 12.5, result.Spend)
			},
		},
		{
			name:  "Spend arredondado para duas casas decimais",
			scope: testScope(),
			setup: func(metricRepo *mocks.MockMetricRepository) {
				metricRepo.EXPECT().GetByScope(gomock.Any()).Return([]*domain.RawMetricRow{
					{Spend: 10.333},
					{Spend: 20.334},
				}, nil)
			},
			validate: func(t *testing.T, result *domain.AggregatedMetric, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 30.67, result.Spend)
			},
		},
		{
			name:  "Recorte sem datas - erro de validação sem consultar o repositório",
			scope: &domain.MetricScope{},
			setup: func(metricRepo *mocks.MockMetricRepository) {},
			validate: func(t *testing.T, result *domain.AggregatedMetric, err error) {
				assert.Error(t, err)
				assert.Nil(t, result)
			},
		},
		{
			name: "Data de início posterior à de fim - erro de validação",
			scope: func() *domain.MetricScope {
				start := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
				end := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
				return &domain.MetricScope{StartDate: &start, EndDate: &end}
			}(),
			setup: func(metricRepo *mocks.MockMetricRepository) {},
			validate: func(t *testing.T, result *domain.AggregatedMetric, err error) {
				assert.Error(t, err)
				assert.Nil(t, result)
			},
		},
		{
			name:  "Erro do repositório é propagado",
			scope: testScope(),
			setup: func(metricRepo *mocks.MockMetricRepository) {
				metricRepo.EXPECT().GetByScope(gomock.Any()).Return(nil, errors.New("conexão recusada"))
			},
			validate: func(t *testing.T, result *domain.AggregatedMetric, err error) {
				assert.Error(t, err)
				assert.Nil(t, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			metricRepo := mocks.NewMockMetricRepository(ctrl)
			tt.setup(metricRepo)

			service := NewService(metricRepo)

			result, err := service.Aggregate(tt.scope)
			tt.validate(t, result, err)
		})
	}
}

func TestService_AggregateBreakdown(t *testing.T) {
	tests := []struct {
		name      string
		dimension domain.BreakdownType
		setup     func(metricRepo *mocks.MockMetricRepository)
		validate  func(t *testing.T, result *domain.BreakdownAggregation, err error)
	}{
		{
			name:      "Grupos dobrados por valor e ordenados por impressões decrescentes",
			dimension: domain.BreakdownAge,
			setup: func(metricRepo *mocks.MockMetricRepository) {
				metricRepo.EXPECT().
					GetBreakdownsByScope(gomock.Any(), domain.BreakdownAge).
					Return([]*domain.BreakdownRow{
						{BreakdownValue: "25-34", Impressions: 500, Clicks: 10, Spend: 20.0},
						{BreakdownValue: "18-24", Impressions: 900, Clicks: 30, Spend: 45.0},
						{BreakdownValue: "25-34", Impressions: 700, Clicks: 20, Spend: 35.0},
						{BreakdownValue: "35-44", Impressions: 100, Clicks: 1, Spend: 5.0},
					}, nil)
			},
			validate: func(t *testing.T, result *domain.BreakdownAggregation, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.BreakdownAge, result.Dimension)
				assert.False(t, result.NeedsSync)
				assert.Len(t, result.Groups, 3)

				// 25-34 soma 1200 impressões e lidera o ranking
				assert.Equal(t, "25-34", result.Groups[0].Value)
				assert.Equal(t, 1200, result.Groups[0].Metrics.Impressions)
				assert.Equal(t, 30, result.Groups[0].Metrics.Clicks)
				assert.Equal(t, 55.0, result.Groups[0].Metrics.Spend)
				assert.InDelta(t, 30.0/1200.0, result.Groups[0].Metrics.CTR, 1e-9)

				assert.Equal(t, "18-24", result.Groups[1].Value)
				assert.Equal(t, 900, result.Groups[1].Metrics.Impressions)

				assert.Equal(t, "35-44", result.Groups[2].Value)
			},
		},
		{
			name:      "Empate de impressões preserva a ordem de chegada das linhas",
			dimension: domain.BreakdownGender,
			setup: func(metricRepo *mocks.MockMetricRepository) {
				metricRepo.EXPECT().
					GetBreakdownsByScope(gomock.Any(), domain.BreakdownGender).
					Return([]*domain.BreakdownRow{
						{BreakdownValue: "female", Impressions: 300},
						{BreakdownValue: "male", Impressions: 300},
					}, nil)
			},
			validate: func(t *testing.T, result *domain.BreakdownAggregation, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "female", result.Groups[0].Value)
				assert.Equal(t, "male", result.Groups[1].Value)
			},
		},
		{
			name:      "Sem breakdowns mas com métricas no recorte - NeedsSync verdadeiro",
			dimension: domain.BreakdownDevice,
			setup: func(metricRepo *mocks.MockMetricRepository) {
				metricRepo.EXPECT().
					GetBreakdownsByScope(gomock.Any(), domain.BreakdownDevice).
					Return([]*domain.BreakdownRow{}, nil)
				metricRepo.EXPECT().
					GetByScope(gomock.Any()).
					Return([]*domain.RawMetricRow{{Impressions: 100}}, nil)
			},
			validate: func(t *testing.T, result *domain.BreakdownAggregation, err error) {
				assert.NoError(t, err)
				assert.True(t, result.NeedsSync)
				assert.Empty(t, result.Groups)
			},
		},
		{
			name:      "Sem breakdowns nem métricas - NeedsSync falso, apenas sem dados",
			dimension: domain.BreakdownDevice,
			setup: func(metricRepo *mocks.MockMetricRepository) {
				metricRepo.EXPECT().
					GetBreakdownsByScope(gomock.Any(), domain.BreakdownDevice).
					Return([]*domain.BreakdownRow{}, nil)
				metricRepo.EXPECT().
					GetByScope(gomock.Any()).
					Return([]*domain.RawMetricRow{}, nil)
			},
			validate: func(t *testing.T, result *domain.BreakdownAggregation, err error) {
				assert.NoError(t, err)
				assert.False(t, result.NeedsSync)
				assert.Empty(t, result.Groups)
			},
		},
		{
			name:      "Dimensão desconhecida - erro sem consultar o repositório",
			dimension: domain.BreakdownType("zodiac_sign"),
			setup:     func(metricRepo *mocks.MockMetricRepository) {},
			validate: func(t *testing.T, result *domain.BreakdownAggregation, err error) {
				assert.Error(t, err)
				assert.Nil(t, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			metricRepo := mocks.NewMockMetricRepository(ctrl)
			tt.setup(metricRepo)

			service := NewService(metricRepo)

			result, err := service.AggregateBreakdown(testScope(), tt.dimension)
			tt.validate(t, result, err)
		})
	}
}

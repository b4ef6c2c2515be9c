package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ad-performance-api/internal/api/handler/router"
	"github.com/vfg2006/ad-performance-api/internal/domain"
	aggmocks "github.com/vfg2006/ad-performance-api/internal/usecases/aggregating/mocks"
	"go.uber.org/mock/gomock"
)

func TestGetAccountInsights(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		setup    func(service *aggmocks.MockAggregator)
		validate func(t *testing.T, resp *httptest.ResponseRecorder)
	}{
		{
			name:  "Datas ausentes - 400 sem consultar o agregador",
			url:   "/v1/accounts/acc-1/insights",
			setup: func(service *aggmocks.MockAggregator) {},
			validate: func(t *testing.T, resp *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, resp.Code)
				assert.Contains(t, resp.Body.String(), "VAL_003")
			},
		},
		{
			name:  "Apenas start_date informado - 400",
			url:   "/v1/accounts/acc-1/insights?start_date=2025-03-01",
			setup: func(service *aggmocks.MockAggregator) {},
			validate: func(t *testing.T, resp *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, resp.Code)
			},
		},
		{
			name:  "Data em formato inválido - 400",
			url:   "/v1/accounts/acc-1/insights?start_date=01/03/2025&end_date=2025-03-31",
			setup: func(service *aggmocks.MockAggregator) {},
			validate: func(t *testing.T, resp *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, resp.Code)
			},
		},
		{
			name: "Período válido - 200 com o recorte montado do path e da query",
			url:  "/v1/accounts/acc-1/insights?start_date=2025-03-01&end_date=2025-03-31&provider=meta",
			setup: func(service *aggmocks.MockAggregator) {
				service.EXPECT().
					Aggregate(gomock.Any()).
					DoAndReturn(func(scope *domain.MetricScope) (*domain.AggregatedMetric, error) {
						assert.Equal(t, "acc-1", *scope.AccountID)
						assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), *scope.StartDate)
						assert.Equal(t, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), *scope.EndDate)
						assert.Equal(t, domain.ProviderMeta, *scope.Provider)
						return &domain.AggregatedMetric{Impressions: 100, Clicks: 4}, nil
					})
			},
			validate: func(t *testing.T, resp *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, resp.Code)
				assert.Contains(t, resp.Body.String(), `"impressions":100`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := aggmocks.NewMockAggregator(ctrl)
			tt.setup(service)

			rt := router.New(router.WithRoutes(Insights(service)...))

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			resp := httptest.NewRecorder()
			rt.ServeHTTP(resp, req)

			tt.validate(t, resp)
		})
	}
}

func TestGetAccountInsightsBreakdown(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		setup    func(service *aggmocks.MockAggregator)
		validate func(t *testing.T, resp *httptest.ResponseRecorder)
	}{
		{
			name:  "Datas ausentes - 400 antes de validar a dimensão",
			url:   "/v1/accounts/acc-1/insights/breakdown?dimension=age",
			setup: func(service *aggmocks.MockAggregator) {},
			validate: func(t *testing.T, resp *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, resp.Code)
			},
		},
		{
			name:  "Dimensão desconhecida - 400",
			url:   "/v1/accounts/acc-1/insights/breakdown?start_date=2025-03-01&end_date=2025-03-31&dimension=zodiac",
			setup: func(service *aggmocks.MockAggregator) {},
			validate: func(t *testing.T, resp *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, resp.Code)
				assert.Contains(t, resp.Body.String(), "VAL_001")
			},
		},
		{
			name: "Dimensão válida - 200 com needs_sync no corpo",
			url:  "/v1/accounts/acc-1/insights/breakdown?start_date=2025-03-01&end_date=2025-03-31&dimension=device",
			setup: func(service *aggmocks.MockAggregator) {
				service.EXPECT().
					AggregateBreakdown(gomock.Any(), domain.BreakdownDevice).
					Return(&domain.BreakdownAggregation{
						Dimension: domain.BreakdownDevice,
						Groups:    []*domain.BreakdownGroup{},
						NeedsSync: true,
					}, nil)
			},
			validate: func(t *testing.T, resp *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, resp.Code)
				assert.Contains(t, resp.Body.String(), `"needs_sync":true`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := aggmocks.NewMockAggregator(ctrl)
			tt.setup(service)

			rt := router.New(router.WithRoutes(Insights(service)...))

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			resp := httptest.NewRecorder()
			rt.ServeHTTP(resp, req)

			tt.validate(t, resp)
		})
	}
}

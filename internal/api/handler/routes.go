package handler

import (
	"net/http"

	"github.com/vfg2006/ad-performance-api/infrastructure/repository"
	"github.com/vfg2006/ad-performance-api/internal/api/handler/router"
	"github.com/vfg2006/ad-performance-api/internal/usecases/aggregating"
	"github.com/vfg2006/ad-performance-api/internal/usecases/syncing"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Sync retorna a rota de disparo manual do motor de sincronização. A rota é
// interna: exige credential de serviço ou o segredo de cron.
func Sync(engine syncing.Scheduler, serviceAuth func(http.Handler) http.Handler) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sync/run",
			Method:      http.MethodPost,
			Handler:     RunSyncSchedules(engine),
			Middlewares: []func(http.Handler) http.Handler{serviceAuth},
		},
	}
}

func Insights(service aggregating.Aggregator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts/:id/insights",
			Method:  http.MethodGet,
			Handler: GetAccountInsights(service),
		},
		{
			Path:    "/v1/accounts/:id/insights/breakdown",
			Method:  http.MethodGet,
			Handler: GetAccountInsightsBreakdown(service),
		},
	}
}

func Alerts(alertRepo repository.AlertRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/alerts/triggers",
			Method:  http.MethodGet,
			Handler: ListAlertTriggers(alertRepo),
		},
	}
}

func CronJobs(services CronJobServices, serviceAuth func(http.Handler) http.Handler) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{serviceAuth},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{serviceAuth},
		},
	}
}

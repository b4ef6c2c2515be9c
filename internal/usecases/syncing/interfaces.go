package syncing

import (
	"context"
	"time"

	"github.com/vfg2006/ad-performance-api/internal/domain"
)

// CampaignSyncResult é o resultado da sincronização estrutural de um adapter
type CampaignSyncResult struct {
	CampaignsSynced int
}

// MetricsSyncResult é o resultado da sincronização de métricas de um adapter
type MetricsSyncResult struct {
	MetricsSynced    int
	BreakdownsSynced int
}

// ProviderSyncAdapter é o conjunto de capacidades que o motor exige de cada
// plataforma. Os internals do adapter (OAuth, paginação, rate limit) ficam do
// outro lado desta interface.
//
// O adapter do Meta separa estrutura de métricas: os IDs de campanha precisam
// existir antes que métricas possam ser atribuídas. O adapter do Google executa
// as duas porções sobre um único pull combinado.
type ProviderSyncAdapter interface {
	SyncCampaigns(ctx context.Context, integration *domain.Integration) (*CampaignSyncResult, error)
	SyncMetrics(ctx context.Context, integration *domain.Integration) (*MetricsSyncResult, error)
}

// Scheduler é o contrato do motor de sincronização exposto para a API e o cron.
// O instante é injetado para permitir testes determinísticos.
type Scheduler interface {
	RunDueSchedules(ctx context.Context, now time.Time) (*domain.RunReport, error)
}

package syncing

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-performance-api/infrastructure/repository"
	"github.com/vfg2006/ad-performance-api/internal/config"
	"github.com/vfg2006/ad-performance-api/internal/domain"
)

// dispatchKey identifica a operação de adapter para (provider, sync type)
type dispatchKey struct {
	provider domain.Provider
	syncType domain.SyncType
}

// dispatchFunc executa as operações do adapter para um agendamento
type dispatchFunc func(ctx context.Context, adapter ProviderSyncAdapter, integration *domain.Integration) (*dispatchResult, error)

type dispatchResult struct {
	campaignsSynced  int
	metricsSynced    int
	breakdownsSynced int
}

// dispatchTable mapeia (provider, sync type) para a operação correspondente.
// O mapeamento é fixo: Meta separa estrutura de métricas, Google sempre executa
// o sync combinado independente do tipo configurado.
var dispatchTable = map[dispatchKey]dispatchFunc{
	{domain.ProviderMeta, domain.SyncTypeCampaigns}:   dispatchCampaigns,
	{domain.ProviderMeta, domain.SyncTypeMetrics}:     dispatchMetrics,
	{domain.ProviderMeta, domain.SyncTypeFull}:        dispatchFull,
	{domain.ProviderGoogle, domain.SyncTypeCampaigns}: dispatchFull,
	{domain.ProviderGoogle, domain.SyncTypeMetrics}:   dispatchFull,
	{domain.ProviderGoogle, domain.SyncTypeFull}:      dispatchFull,
}

func dispatchCampaigns(ctx context.Context, adapter ProviderSyncAdapter, integration *domain.Integration) (*dispatchResult, error) {
	result, err := adapter.SyncCampaigns(ctx, integration)
	if err != nil {
		return nil, err
	}
	return &dispatchResult{campaignsSynced: result.CampaignsSynced}, nil
}

func dispatchMetrics(ctx context.Context, adapter ProviderSyncAdapter, integration *domain.Integration) (*dispatchResult, error) {
	result, err := adapter.SyncMetrics(ctx, integration)
	if err != nil {
		return nil, err
	}
	return &dispatchResult{metricsSynced: result.MetricsSynced, breakdownsSynced: result.BreakdownsSynced}, nil
}

// dispatchFull sincroniza estrutura antes das métricas: as campanhas precisam
// existir para que as métricas sejam atribuídas.
func dispatchFull(ctx context.Context, adapter ProviderSyncAdapter, integration *domain.Integration) (*dispatchResult, error) {
	campaigns, err := adapter.SyncCampaigns(ctx, integration)
	if err != nil {
		return nil, err
	}

	metrics, err := adapter.SyncMetrics(ctx, integration)
	if err != nil {
		return nil, err
	}

	return &dispatchResult{
		campaignsSynced:  campaigns.CampaignsSynced,
		metricsSynced:    metrics.MetricsSynced,
		breakdownsSynced: metrics.BreakdownsSynced,
	}, nil
}

// Service é o SyncScheduler: seleciona agendamentos elegíveis, despacha os
// adapters com isolamento de falhas e atualiza o bookkeeping de cada agendamento.
type Service struct {
	scheduleRepo    repository.SyncScheduleRepository
	integrationRepo repository.IntegrationRepository
	adapters        map[domain.Provider]ProviderSyncAdapter
	maxConcurrent   int
	adapterTimeout  time.Duration
	claimStaleAfter time.Duration
}

func NewService(
	scheduleRepo repository.SyncScheduleRepository,
	integrationRepo repository.IntegrationRepository,
	adapters map[domain.Provider]ProviderSyncAdapter,
	cfg config.SyncScheduler,
) *Service {
	maxConcurrent := cfg.MaxConcurrentJobs
	if maxConcurrent <= 0 {
		maxConcurrent = 5
	}

	adapterTimeout := time.Duration(cfg.AdapterTimeoutSeconds) * time.Second
	if adapterTimeout <= 0 {
		adapterTimeout = 45 * time.Second
	}

	claimStaleAfter := time.Duration(cfg.ClaimStaleMinutes) * time.Minute
	if claimStaleAfter <= 0 {
		claimStaleAfter = 10 * time.Minute
	}

	return &Service{
		scheduleRepo:    scheduleRepo,
		integrationRepo: integrationRepo,
		adapters:        adapters,
		maxConcurrent:   maxConcurrent,
		adapterTimeout:  adapterTimeout,
		claimStaleAfter: claimStaleAfter,
	}
}

// RunDueSchedules executa um ciclo completo: recupera claims abandonados, lista
// os agendamentos elegíveis e despacha cada um de forma independente em um pool
// limitado. Falhas por agendamento viram dados no relatório; apenas a
// impossibilidade de listar os agendamentos é erro fatal.
func (s *Service) RunDueSchedules(ctx context.Context, now time.Time) (*domain.RunReport, error) {
	report := &domain.RunReport{
		StartedAt: now,
		Results:   []*domain.ScheduleResult{},
	}

	released, err := s.scheduleRepo.ReleaseStaleClaims(now.Add(-s.claimStaleAfter))
	if err != nil {
		logrus.WithError(err).Warn("Erro ao recuperar claims abandonados")
	} else if released > 0 {
		logrus.WithField("released", released).Warn("Claims abandonados recuperados")
	}

	due, err := s.scheduleRepo.ListDue(now)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar agendamentos elegíveis: %w", err)
	}

	if len(due) == 0 {
		logrus.Info("Nenhum agendamento elegível para sincronização")
		report.FinishedAt = time.Now()
		return report, nil
	}

	logrus.WithFields(logrus.Fields{
		"due_schedules":  len(due),
		"max_concurrent": s.maxConcurrent,
	}).Info("Iniciando ciclo de sincronização")

	// O relatório mantém a ordem da listagem; cada posição é escrita por uma
	// única goroutine
	results := make([]*domain.ScheduleResult, len(due))
	semaphore := make(chan struct{}, s.maxConcurrent)
	var wg sync.WaitGroup

	for i, schedule := range due {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(idx int, sched *domain.SyncSchedule) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			results[idx] = s.processSchedule(ctx, now, sched)
		}(i, schedule)
	}

	wg.Wait()

	report.Results = results
	report.Processed = len(results)
	report.FinishedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"processed": report.Processed,
		"duration":  report.FinishedAt.Sub(report.StartedAt).String(),
	}).Info("Ciclo de sincronização concluído")

	return report, nil
}

// processSchedule executa o protocolo completo para um agendamento: claim,
// resolução da integração, dispatch e finalize. Qualquer falha libera o claim
// sem avançar next_sync_at, deixando o agendamento elegível no próximo tick.
func (s *Service) processSchedule(ctx context.Context, now time.Time, schedule *domain.SyncSchedule) *domain.ScheduleResult {
	result := &domain.ScheduleResult{
		ScheduleID: schedule.ID,
		Provider:   schedule.Provider,
		SyncType:   schedule.SyncType,
	}

	claimed, err := s.scheduleRepo.Claim(schedule.ID, now)
	if err != nil {
		result.Outcome = domain.OutcomeFailed
		result.Detail = fmt.Sprintf("erro ao adquirir claim: %s", err.Error())
		return result
	}

	if !claimed {
		// Outra invocação levou o claim entre a listagem e o update condicional
		result.Outcome = domain.OutcomeSkipped
		result.Detail = domain.SkipReasonClaimLost
		return result
	}

	integration, err := s.integrationRepo.GetActiveByUserAndProvider(schedule.UserID, schedule.Provider)
	if err != nil {
		s.releaseClaim(schedule.ID)
		result.Outcome = domain.OutcomeFailed
		result.Detail = fmt.Sprintf("erro ao resolver integração: %s", err.Error())
		return result
	}

	if !integration.IsActive() {
		// Não é erro: o agendamento permanece elegível e será reavaliado quando
		// o usuário reativar a integração
		s.releaseClaim(schedule.ID)
		result.Outcome = domain.OutcomeSkipped
		result.Detail = domain.SkipReasonNoActiveIntegration

		logrus.WithFields(logrus.Fields{
			"schedule_id": schedule.ID,
			"user_id":     schedule.UserID,
			"provider":    schedule.Provider,
		}).Info("Agendamento pulado: nenhuma integração ativa")
		return result
	}

	adapter, ok := s.adapters[schedule.Provider]
	if !ok {
		s.releaseClaim(schedule.ID)
		result.Outcome = domain.OutcomeFailed
		result.Detail = fmt.Sprintf("nenhum adapter registrado para o provider %s", schedule.Provider)
		return result
	}

	dispatch, ok := dispatchTable[dispatchKey{schedule.Provider, schedule.SyncType}]
	if !ok {
		s.releaseClaim(schedule.ID)
		result.Outcome = domain.OutcomeFailed
		result.Detail = fmt.Sprintf("tipo de sincronização desconhecido: %s", schedule.SyncType)
		return result
	}

	dispatchCtx, cancel := context.WithTimeout(ctx, s.adapterTimeout)
	defer cancel()

	synced, err := dispatch(dispatchCtx, adapter, integration)
	if err != nil {
		s.releaseClaim(schedule.ID)
		result.Outcome = domain.OutcomeFailed
		result.Detail = err.Error()

		logrus.WithError(err).WithFields(logrus.Fields{
			"schedule_id": schedule.ID,
			"provider":    schedule.Provider,
			"sync_type":   schedule.SyncType,
		}).Error("Falha no dispatch do adapter")
		return result
	}

	next := now.Add(schedule.Frequency.Interval())
	if err := s.scheduleRepo.FinalizeSuccess(schedule.ID, now, next); err != nil {
		result.Outcome = domain.OutcomeFailed
		result.Detail = fmt.Sprintf("erro ao gravar bookkeeping de sucesso: %s", err.Error())

		logrus.WithError(err).WithField("schedule_id", schedule.ID).
			Error("Erro ao finalizar agendamento após sucesso do adapter")
		return result
	}

	result.Outcome = domain.OutcomeSuccess
	result.CampaignsSynced = synced.campaignsSynced
	result.MetricsSynced = synced.metricsSynced
	result.BreakdownsSynced = synced.breakdownsSynced

	logrus.WithFields(logrus.Fields{
		"schedule_id":       schedule.ID,
		"provider":          schedule.Provider,
		"sync_type":         schedule.SyncType,
		"campaigns_synced":  synced.campaignsSynced,
		"metrics_synced":    synced.metricsSynced,
		"breakdowns_synced": synced.breakdownsSynced,
		"next_sync_at":      next.Format(time.RFC3339),
	}).Info("Agendamento sincronizado com sucesso")

	return result
}

func (s *Service) releaseClaim(scheduleID string) {
	if err := s.scheduleRepo.ReleaseClaim(scheduleID); err != nil {
		// O claim preso será recuperado pelo sweep de claims abandonados
		logrus.WithError(err).WithField("schedule_id", scheduleID).
			Error("Erro ao liberar claim do agendamento")
	}
}

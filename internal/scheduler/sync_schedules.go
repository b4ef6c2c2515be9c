package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-performance-api/internal/config"
	"github.com/vfg2006/ad-performance-api/internal/domain"
	"github.com/vfg2006/ad-performance-api/internal/usecases/syncing"
)

// SyncScheduleConfig representa a configuração do agendador de sincronizações
type SyncScheduleConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// SyncScheduleService gerencia o tick periódico que despacha os agendamentos vencidos
type SyncScheduleService struct {
	scheduler           *gocron.Scheduler
	config              SyncScheduleConfig
	engine              syncing.Scheduler
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastReport          *domain.RunReport
}

// NewSyncScheduleService cria uma nova instância do serviço de sincronização
func NewSyncScheduleService(engine syncing.Scheduler, appConfig *config.Config) *SyncScheduleService {
	syncConfig := SyncScheduleConfig{
		CronSchedule:      appConfig.SyncScheduler.CronSchedule,
		MaxConcurrentJobs: appConfig.SyncScheduler.MaxConcurrentJobs,
		SyncEnabled:       appConfig.SyncScheduler.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronizações carregada")

	return &SyncScheduleService{
		scheduler:   scheduler,
		config:      syncConfig,
		engine:      engine,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *SyncScheduleService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de agendamentos desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronizações")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runDueSchedules(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar o tick de sincronização: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronizações")
		s.scheduler.Stop()
	}()

	return nil
}

// runDueSchedules executa um tick: delega ao motor a seleção e o despacho dos
// agendamentos vencidos. Ticks sobrepostos são ignorados.
func (s *SyncScheduleService) runDueSchedules(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Tick de sincronização já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando tick de sincronização de agendamentos")

	report, err := s.engine.RunDueSchedules(ctx, startTime)
	if err != nil {
		logrus.WithError(err).Error("Erro ao executar o tick de sincronização")
		return
	}

	s.lastReport = report

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":  duration.String(),
		"processed": report.Processed,
		"succeeded": report.CountByOutcome(domain.OutcomeSuccess),
		"skipped":   report.CountByOutcome(domain.OutcomeSkipped),
		"failed":    report.CountByOutcome(domain.OutcomeFailed),
	}).Info("Tick de sincronização concluído")

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente um tick de sincronização
func (s *SyncScheduleService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Tick de sincronização já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando tick manual de sincronização")
	go s.runDueSchedules(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *SyncScheduleService) GetStatus() map[string]any {
	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}

	if s.lastReport != nil {
		status["last_report"] = map[string]any{
			"processed": s.lastReport.Processed,
			"succeeded": s.lastReport.CountByOutcome(domain.OutcomeSuccess),
			"skipped":   s.lastReport.CountByOutcome(domain.OutcomeSkipped),
			"failed":    s.lastReport.CountByOutcome(domain.OutcomeFailed),
		}
	}

	return status
}

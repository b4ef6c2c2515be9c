package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-performance-api/internal/config"
	"github.com/vfg2006/ad-performance-api/internal/usecases/alerting"
)

// AlertEvaluationConfig representa a configuração do agendador de avaliação de alertas
type AlertEvaluationConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// AlertEvaluationService gerencia o tick periódico que avalia as regras de alerta
type AlertEvaluationService struct {
	scheduler           *gocron.Scheduler
	config              AlertEvaluationConfig
	evaluator           alerting.Evaluator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewAlertEvaluationService cria uma nova instância do serviço de avaliação de alertas
func NewAlertEvaluationService(evaluator alerting.Evaluator, appConfig *config.Config) *AlertEvaluationService {
	alertConfig := AlertEvaluationConfig{
		CronSchedule: appConfig.AlertSync.CronSchedule,
		SyncEnabled:  appConfig.AlertSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": alertConfig.CronSchedule,
		"sync_enabled":  alertConfig.SyncEnabled,
	}).Info("Configuração do agendador de avaliação de alertas carregada")

	return &AlertEvaluationService{
		scheduler:   scheduler,
		config:      alertConfig,
		evaluator:   evaluator,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *AlertEvaluationService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Avaliação de alertas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de avaliação de alertas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.evaluateRules(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar a avaliação de alertas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de avaliação de alertas")
		s.scheduler.Stop()
	}()

	return nil
}

// evaluateRules executa uma passada de avaliação sobre todas as regras ativas
func (s *AlertEvaluationService) evaluateRules(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Avaliação de alertas já em andamento, ignorando")
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

	logrus.Info("Iniciando avaliação de regras de alerta")

	if err := s.evaluator.EvaluateRules(ctx, startTime); err != nil {
		logrus.WithError(err).Error("Erro ao avaliar regras de alerta")
		return
	}

	duration := time.Since(startTime)
	logrus.WithField("duration", duration.String()).Info("Avaliação de regras de alerta concluída")

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente uma avaliação de alertas
func (s *AlertEvaluationService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Avaliação de alertas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando avaliação manual de alertas")
	go s.evaluateRules(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *AlertEvaluationService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}

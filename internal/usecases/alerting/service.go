package alerting

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-performance-api/infrastructure/repository"
	"github.com/vfg2006/ad-performance-api/internal/domain"
	"github.com/vfg2006/ad-performance-api/internal/usecases/aggregating"
	"github.com/vfg2006/ad-performance-api/pkg/utils"
)

// defaultLookbackDays é a janela para métricas total_* quando a regra não define
const defaultLookbackDays = 30

// Service é o AlertEvaluator: máquina de estados por regra, único escritor dos
// trigger records. Lê métricas exclusivamente através do Aggregator.
type Service struct {
	alertRepo  repository.AlertRepository
	aggregator aggregating.Aggregator
	notifier   Notifier
}

func NewService(
	alertRepo repository.AlertRepository,
	aggregator aggregating.Aggregator,
	notifier Notifier,
) Evaluator {
	return &Service{
		alertRepo:  alertRepo,
		aggregator: aggregator,
		notifier:   notifier,
	}
}

// EvaluateRules avalia todas as regras ativas. Falha em uma regra não impede a
// avaliação das demais; apenas a impossibilidade de listar as regras é fatal.
func (s *Service) EvaluateRules(ctx context.Context, now time.Time) error {
	rules, err := s.alertRepo.ListActiveRules()
	if err != nil {
		return fmt.Errorf("erro ao listar regras de alerta ativas: %w", err)
	}

	if len(rules) == 0 {
		logrus.Debug("Nenhuma regra de alerta ativa para avaliar")
		return nil
	}

	logrus.WithField("rules", len(rules)).Info("Iniciando avaliação de alertas")

	for _, rule := range rules {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := s.evaluateRule(rule, now); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"alert_id":    rule.ID,
				"metric_type": rule.MetricType,
			}).Error("Erro ao avaliar regra de alerta")
		}
	}

	return nil
}

// evaluateRule aplica a transição de estado de uma única regra:
// não-violado → violado cria exatamente um trigger e notifica;
// violado → violado atualiza apenas o valor corrente, sem re-notificar;
// violado → resolvido encerra o trigger aberto.
func (s *Service) evaluateRule(rule *domain.SpendingAlert, now time.Time) error {
	value, err := s.currentValue(rule, now)
	if err != nil {
		return fmt.Errorf("erro ao agregar valor da regra: %w", err)
	}

	openTrigger, err := s.alertRepo.GetOpenTrigger(rule.ID)
	if err != nil {
		return fmt.Errorf("erro ao buscar trigger aberto: %w", err)
	}

	breached := rule.Breached(value)

	switch {
	case breached && openTrigger == nil:
		return s.openTrigger(rule, value, now)

	case breached && openTrigger != nil:
		if err := s.alertRepo.UpdateTriggerAmount(openTrigger.ID, value); err != nil {
			return fmt.Errorf("erro ao atualizar valor do trigger: %w", err)
		}

		logrus.WithFields(logrus.Fields{
			"alert_id":       rule.ID,
			"trigger_id":     openTrigger.ID,
			"current_amount": value,
		}).Debug("Regra segue violada, valor do trigger atualizado")

	case !breached && openTrigger != nil:
		if err := s.alertRepo.ResolveTrigger(openTrigger.ID, now); err != nil {
			return fmt.Errorf("erro ao resolver trigger: %w", err)
		}

		logrus.WithFields(logrus.Fields{
			"alert_id":   rule.ID,
			"trigger_id": openTrigger.ID,
		}).Info("Alerta resolvido: condição não é mais verdadeira")
	}

	return nil
}

// openTrigger cria o trigger da primeira violação. O índice único parcial do
// storage fecha a janela de corrida do check-before-create: se outra avaliação
// criou o trigger primeiro, a criação degrada para atualização de valor.
func (s *Service) openTrigger(rule *domain.SpendingAlert, value float64, now time.Time) error {
	trigger := &domain.AlertTrigger{
		AlertID:       rule.ID,
		CurrentAmount: value,
		TriggeredAt:   now,
	}

	if err := s.alertRepo.CreateTrigger(trigger); err != nil {
		if err == repository.ErrDuplicateOpenTrigger {
			existing, lookupErr := s.alertRepo.GetOpenTrigger(rule.ID)
			if lookupErr != nil || existing == nil {
				return fmt.Errorf("trigger duplicado sem trigger aberto encontrado: %w", err)
			}
			return s.alertRepo.UpdateTriggerAmount(existing.ID, value)
		}
		return fmt.Errorf("erro ao criar trigger: %w", err)
	}

	if err := s.alertRepo.UpdateLastTriggeredAt(rule.ID, now); err != nil {
		logrus.WithError(err).WithField("alert_id", rule.ID).
			Warn("Erro ao atualizar last_triggered_at da regra")
	}

	logrus.WithFields(logrus.Fields{
		"alert_id":       rule.ID,
		"metric_type":    rule.MetricType,
		"threshold":      rule.Threshold,
		"current_amount": value,
	}).Info("Alerta disparado")

	// Fire-and-forget: falha de notificação não desfaz o trigger
	message := fmt.Sprintf(
		"Alerta %q disparado: %s %s %.2f (valor atual: %.2f)",
		rule.Name, rule.MetricType, conditionLabel(rule.Condition), rule.Threshold, value,
	)
	if err := s.notifier.Notify(rule.UserID, rule.ID, message); err != nil {
		logrus.WithError(err).WithField("alert_id", rule.ID).
			Warn("Erro ao enviar notificação do alerta")
	}

	return nil
}

// currentValue agrega o valor observado pela regra. Métricas daily_* avaliam
// apenas o dia corrente; as demais avaliam a janela de lookback da regra.
// A granularidade é sempre explícita aqui: o Aggregator não a conhece.
func (s *Service) currentValue(rule *domain.SpendingAlert, now time.Time) (float64, error) {
	var startDate time.Time
	endDate := utils.TruncateToDay(now)

	switch rule.MetricType {
	case domain.AlertMetricDailySpend, domain.AlertMetricDailyResults:
		startDate = endDate
	default:
		lookback := rule.LookbackDays
		if lookback <= 0 {
			lookback = defaultLookbackDays
		}
		startDate = endDate.AddDate(0, 0, -lookback+1)
	}

	scope := &domain.MetricScope{
		StartDate:  &startDate,
		EndDate:    &endDate,
		AccountID:  rule.AccountID,
		CampaignID: rule.CampaignID,
		Provider:   rule.Provider,
	}

	aggregated, err := s.aggregator.Aggregate(scope)
	if err != nil {
		return 0, err
	}

	switch rule.MetricType {
	case domain.AlertMetricDailySpend, domain.AlertMetricTotalSpend:
		return aggregated.Spend, nil
	case domain.AlertMetricDailyResults:
		return float64(aggregated.Results), nil
	case domain.AlertMetricCTR:
		return aggregated.CTR, nil
	case domain.AlertMetricCPC:
		return aggregated.CPC, nil
	default:
		return 0, fmt.Errorf("tipo de métrica de alerta desconhecido: %s", rule.MetricType)
	}
}

func conditionLabel(condition domain.AlertCondition) string {
	if condition == domain.AlertConditionLessThan {
		return "abaixo de"
	}
	return "acima de"
}

package alerting

import (
	"context"
	"time"
)

// Notifier é o sink de notificações consumido pelo avaliador. Fire-and-forget:
// falhas de notificação são logadas e nunca revertem o trigger record.
type Notifier interface {
	Notify(userID, alertID, message string) error
}

// Evaluator avalia as regras de alerta contra os valores agregados atuais
type Evaluator interface {
	EvaluateRules(ctx context.Context, now time.Time) error
}

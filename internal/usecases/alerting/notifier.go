package alerting

import (
	"github.com/sirupsen/logrus"
)

// LogNotifier é o sink padrão quando nenhum canal de notificação externo está
// configurado: registra a notificação no log estruturado.
type LogNotifier struct{}

func NewLogNotifier() Notifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Notify(userID, alertID, message string) error {
	logrus.WithFields(logrus.Fields{
		"user_id":  userID,
		"alert_id": alertID,
	}).Info(message)

	return nil
}

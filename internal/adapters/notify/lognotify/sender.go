package lognotify

import (
	"context"

	"github.com/irma-m/cartilla/internal/platform/logger"
	"github.com/irma-m/cartilla/internal/ports/notify"
)

// Sender entrega las notificaciones por el logger del proceso: es la alerta
// local por defecto cuando no hay webhook configurado.
type Sender struct {
	log logger.Logger
}

func New(log logger.Logger) *Sender {
	return &Sender{log: log.With(map[string]any{"component": "notify"})}
}

func (s *Sender) Send(ctx context.Context, n notify.Notification) error {
	s.log.Info(n.Title, map[string]any{
		"body":    n.Body,
		"trigger": n.TriggerAt.Format("2006-01-02"),
	})
	return nil
}

package reminders

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/irma-m/cartilla/internal/platform/logger"
	"github.com/irma-m/cartilla/internal/ports/notify"
)

// Service es el programador de recordatorios: pide el permiso de
// notificaciones una sola vez y arma una notificación local por fecha de
// vencimiento. Satisface el Notifier del módulo de registros.
type Service struct {
	registry Registry
	perms    notify.PermissionSource
	log      logger.Logger

	mu      sync.Mutex
	granted bool
}

func NewService(registry Registry, perms notify.PermissionSource, log logger.Logger) *Service {
	return &Service{
		registry: registry,
		perms:    perms,
		log:      log,
	}
}

// Schedule arma un recordatorio para la medianoche de la fecha dada.
// Sin permiso devuelve scheduled=false (skipped): no es un error y nunca
// bloquea el guardado del registro que lo pidió.
func (s *Service) Schedule(ctx context.Context, title, body string, trigger time.Time) (string, bool, error) {
	granted, err := s.permissionGranted(ctx)
	if err != nil {
		return "", false, err
	}
	if !granted {
		return "", false, nil
	}

	rem := Reminder{
		ID:        uuid.NewString(),
		Title:     title,
		Body:      body,
		TriggerAt: trigger,
	}
	if err := s.registry.Add(ctx, rem); err != nil {
		return "", false, err
	}

	s.log.Debug("reminder scheduled", map[string]any{
		"handle": rem.ID, "trigger": rem.TriggerAt.Format("2006-01-02"),
	})
	return rem.ID, true, nil
}

// Cancel retira un recordatorio armado. Handle ausente es un no-op.
func (s *Service) Cancel(ctx context.Context, handle string) error {
	return s.registry.Remove(ctx, handle)
}

// TakeDue entrega los recordatorios vencidos al despachador.
func (s *Service) TakeDue(ctx context.Context, now time.Time) ([]Reminder, error) {
	return s.registry.TakeDue(ctx, now)
}

// Pending devuelve los recordatorios armados aún no disparados.
func (s *Service) Pending(ctx context.Context) ([]Reminder, error) {
	return s.registry.List(ctx)
}

// permissionGranted cachea el permiso una vez otorgado; tras una negativa se
// vuelve a pedir en el próximo Schedule (el host decide si re-pregunta).
func (s *Service) permissionGranted(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.granted {
		return true, nil
	}

	status, err := s.perms.Request(ctx)
	if err != nil {
		return false, err
	}
	if status != notify.PermissionGranted {
		return false, nil
	}
	s.granted = true
	return true, nil
}

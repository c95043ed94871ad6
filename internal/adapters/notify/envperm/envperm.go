package envperm

import (
	"context"

	"github.com/irma-m/cartilla/internal/ports/notify"
)

// Source resuelve el permiso de notificaciones desde la configuración
// (NOTIFY_PERMISSION). Es el análogo de la política de permisos del host:
// un proceso local no tiene a quién preguntarle en runtime.
type Source struct {
	granted bool
}

func New(granted bool) *Source {
	return &Source{granted: granted}
}

// Request es idempotente: devuelve siempre el mismo estado configurado.
func (s *Source) Request(ctx context.Context) (notify.PermissionStatus, error) {
	if s.granted {
		return notify.PermissionGranted, nil
	}
	return notify.PermissionDenied, nil
}

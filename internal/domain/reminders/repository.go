package reminders

import (
	"context"
	"time"
)

// Registry guarda los recordatorios armados.
type Registry interface {
	Add(ctx context.Context, rem Reminder) error

	// Remove es un no-op si el id no existe.
	Remove(ctx context.Context, id string) error

	// TakeDue quita y devuelve los recordatorios con TriggerAt <= now,
	// ordenados por fecha de disparo.
	TakeDue(ctx context.Context, now time.Time) ([]Reminder, error)

	List(ctx context.Context) ([]Reminder, error)
}

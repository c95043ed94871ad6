package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/irma-m/cartilla/internal/domain/reminders"
)

type reminderRegistry struct {
	mu   sync.Mutex
	byID map[string]reminders.Reminder
}

// NewReminderRegistry crea el registro en memoria de recordatorios armados.
// Vive con el proceso, igual que las notificaciones locales del host.
func NewReminderRegistry() reminders.Registry {
	return &reminderRegistry{
		byID: make(map[string]reminders.Reminder),
	}
}

func (r *reminderRegistry) Add(ctx context.Context, rem reminders.Reminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rem.ID == "" {
		return errors.New("reminder id required")
	}
	r.byID[rem.ID] = rem
	return nil
}

func (r *reminderRegistry) Remove(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byID, id)
	return nil
}

func (r *reminderRegistry) TakeDue(ctx context.Context, now time.Time) ([]reminders.Reminder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]reminders.Reminder, 0)
	for id, rem := range r.byID {
		if rem.TriggerAt.After(now) {
			continue
		}
		out = append(out, rem)
		delete(r.byID, id)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].TriggerAt.Before(out[j].TriggerAt)
	})
	return out, nil
}

func (r *reminderRegistry) List(ctx context.Context) ([]reminders.Reminder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]reminders.Reminder, 0, len(r.byID))
	for _, rem := range r.byID {
		out = append(out, rem)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].TriggerAt.Before(out[j].TriggerAt)
	})
	return out, nil
}

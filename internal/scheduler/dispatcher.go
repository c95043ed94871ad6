package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/irma-m/cartilla/internal/domain/reminders"
	"github.com/irma-m/cartilla/internal/platform/logger"
	"github.com/irma-m/cartilla/internal/ports/notify"
)

const dispatchTimeout = 30 * time.Second

// Dispatcher revisa periódicamente los recordatorios armados y entrega los
// vencidos a través del Sender configurado.
type Dispatcher struct {
	cron   *cron.Cron
	svc    *reminders.Service
	sender notify.Sender
	every  string
	log    logger.Logger
	now    func() time.Time
}

// New crea el despachador. every es una expresión cron estándar de 5 campos
// o una forma @every (ej. "@every 1m").
func New(svc *reminders.Service, sender notify.Sender, every string, log logger.Logger) *Dispatcher {
	return &Dispatcher{
		cron:   cron.New(),
		svc:    svc,
		sender: sender,
		every:  every,
		log:    log,
		now:    time.Now,
	}
}

func (d *Dispatcher) Start() error {
	if _, err := d.cron.AddFunc(d.every, d.dispatchDue); err != nil {
		return err
	}
	d.cron.Start()
	d.log.Info("reminder dispatcher started", map[string]any{"every": d.every})
	return nil
}

func (d *Dispatcher) Stop() {
	d.cron.Stop()
	d.log.Info("reminder dispatcher stopped", nil)
}

func (d *Dispatcher) dispatchDue() {
	ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
	defer cancel()

	due, err := d.svc.TakeDue(ctx, d.now())
	if err != nil {
		d.log.Error("take due reminders failed", map[string]any{"error": err.Error()})
		return
	}

	for _, rem := range due {
		n := notify.Notification{
			Title:     rem.Title,
			Body:      rem.Body,
			TriggerAt: rem.TriggerAt,
		}
		if err := d.sender.Send(ctx, n); err != nil {
			// Entrega best-effort: un recordatorio perdido no es fatal.
			d.log.Error("send notification failed", map[string]any{
				"handle": rem.ID, "error": err.Error(),
			})
			continue
		}
		d.log.Info("notification delivered", map[string]any{
			"handle": rem.ID, "title": rem.Title,
		})
	}
}

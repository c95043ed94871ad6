package reminders

import "time"

// Reminder es una notificación local armada, pendiente de disparo.
// El ID es el handle que guarda el registro dueño para poder retirarla.
type Reminder struct {
	ID    string
	Title string
	Body  string

	TriggerAt time.Time
}

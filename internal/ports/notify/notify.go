package notify

import (
	"context"
	"time"
)

// Notification es lo que cruza el borde hacia el servicio de notificaciones
// de la plataforma: título, cuerpo y fecha de disparo (solo fecha; la hora
// exacta queda sin especificar).
type Notification struct {
	Title     string
	Body      string
	TriggerAt time.Time
}

// PermissionStatus es el resultado de pedir permiso de notificaciones.
type PermissionStatus string

const (
	PermissionGranted PermissionStatus = "granted"
	PermissionDenied  PermissionStatus = "denied"
)

// PermissionSource pide al host el permiso de notificaciones.
// Request es idempotente: si ya fue otorgado devuelve granted sin re-prompt;
// tras una negativa, re-pedir puede o no volver a preguntar según el host.
type PermissionSource interface {
	Request(ctx context.Context) (PermissionStatus, error)
}

// Sender entrega una notificación ya vencida al usuario.
type Sender interface {
	Send(ctx context.Context, n Notification) error
}

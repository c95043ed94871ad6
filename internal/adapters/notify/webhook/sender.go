package webhook

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/irma-m/cartilla/internal/platform/httpclient"
	"github.com/irma-m/cartilla/internal/ports/notify"
)

// Sender entrega las notificaciones haciendo POST JSON a un endpoint externo
// (NOTIFY_WEBHOOK_URL), por ejemplo un servicio tipo ntfy.
type Sender struct {
	client *httpclient.Client
	url    string
}

func New(url string, timeout time.Duration) (*Sender, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, errors.New("webhook: url required")
	}
	return &Sender{
		client: httpclient.New(timeout),
		url:    url,
	}, nil
}

// NewWithClient permite inyectar el cliente (tests).
func NewWithClient(url string, client *httpclient.Client) *Sender {
	return &Sender{client: client, url: url}
}

type payload struct {
	Title   string `json:"title"`
	Body    string `json:"body"`
	Trigger string `json:"trigger"`
}

func (s *Sender) Send(ctx context.Context, n notify.Notification) error {
	return s.client.DoJSON(ctx, http.MethodPost, s.url, nil, payload{
		Title:   n.Title,
		Body:    n.Body,
		Trigger: n.TriggerAt.Format("2006-01-02"),
	}, nil)
}

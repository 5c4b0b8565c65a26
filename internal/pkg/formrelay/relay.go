// Package formrelay forwards registration submissions to the hosted
// form backend, which handles email delivery. Delivery is best-effort:
// a relay failure is logged and never surfaced to the submitter.
package formrelay

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/ets-hub/etshub-backend/internal/pkg/logger"
)

const requestTimeout = 10 * time.Second

// Relay posts form payloads to the configured relay endpoint.
type Relay struct {
	client   *resty.Client
	endpoint string
}

// New creates a Relay. An empty endpoint disables forwarding.
func New(endpoint string) *Relay {
	return &Relay{
		client:   resty.New().SetTimeout(requestTimeout),
		endpoint: endpoint,
	}
}

// Enabled reports whether an endpoint is configured.
func (r *Relay) Enabled() bool {
	return r.endpoint != ""
}

// Send posts a single form submission. formName tells the backend which
// notification template to use.
func (r *Relay) Send(ctx context.Context, formName string, payload map[string]string) error {
	if !r.Enabled() {
		return nil
	}

	body := map[string]string{"_form": formName}
	for k, v := range payload {
		body[k] = v
	}

	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(r.endpoint)
	if err != nil {
		return fmt.Errorf("form relay request failed: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("form relay returned status %d", resp.StatusCode())
	}
	return nil
}

// SendAsync forwards a submission without blocking the request that
// produced it. Errors are logged only.
func (r *Relay) SendAsync(formName string, payload map[string]string) {
	if !r.Enabled() {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		if err := r.Send(ctx, formName, payload); err != nil {
			logger.Warn().Err(err).Str("form", formName).Msg("Form relay delivery failed")
		}
	}()
}

// Package transport delivers FedEx XML documents over HTTPS.
package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/carrier-gateway/internal/api/metrics"
	"github.com/99minutos/carrier-gateway/internal/carrier/fedex"
	"github.com/99minutos/carrier-gateway/internal/core/domain"
)

const (
	defaultTimeout    = 30 * time.Second
	defaultMaxRetries = 2
	// maxReplyBytes bounds how much of a reply is read into memory.
	maxReplyBytes = 8 << 20
)

// Config selects the endpoints and retry behaviour of an HTTPTransport.
type Config struct {
	LiveURL    string
	TestURL    string
	Timeout    time.Duration
	MaxRetries int
}

// HTTPTransport POSTs request documents to the FedEx XML gateway. Network
// errors and 5xx replies are retried with exponential backoff; FedEx rate,
// track and address validation calls have no side effects.
type HTTPTransport struct {
	client     *http.Client
	liveURL    string
	testURL    string
	maxRetries uint64
	newBackOff func() backoff.BackOff
	log        zerolog.Logger
}

// New returns an HTTPTransport. Empty URLs fall back to the public FedEx
// endpoints.
func New(cfg Config, log zerolog.Logger) *HTTPTransport {
	if cfg.LiveURL == "" {
		cfg.LiveURL = fedex.LiveURL
	}
	if cfg.TestURL == "" {
		cfg.TestURL = fedex.TestURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = defaultMaxRetries
	}

	return &HTTPTransport{
		client:     &http.Client{Timeout: cfg.Timeout},
		liveURL:    cfg.LiveURL,
		testURL:    cfg.TestURL,
		maxRetries: uint64(cfg.MaxRetries),
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 200 * time.Millisecond
			b.MaxInterval = 2 * time.Second
			return b
		},
		log: log,
	}
}

// Send posts request to the live or test endpoint and returns the reply body.
// Every failure wraps domain.ErrTransport.
func (t *HTTPTransport) Send(ctx context.Context, request string, test bool) (string, error) {
	url := t.liveURL
	if test {
		url = t.testURL
	}

	var reply string
	attempt := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(request))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "text/xml; charset=utf-8")
		req.Header.Set("Accept", "text/xml")

		resp, err := t.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxReplyBytes))
		if err != nil {
			return err
		}
		switch {
		case resp.StatusCode >= http.StatusInternalServerError:
			return fmt.Errorf("carrier returned %s", resp.Status)
		case resp.StatusCode >= http.StatusMultipleChoices:
			return backoff.Permanent(fmt.Errorf("carrier returned %s", resp.Status))
		}
		reply = string(body)
		return nil
	}

	notify := func(err error, wait time.Duration) {
		metrics.CarrierRetriesTotal.Inc()
		t.log.Warn().Err(err).Str("url", url).Dur("retry_in", wait).Msg("carrier request failed, retrying")
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(t.newBackOff(), t.maxRetries), ctx)
	if err := backoff.RetryNotify(attempt, policy, notify); err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrTransport, err)
	}
	return reply, nil
}

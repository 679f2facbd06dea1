package trigger

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	otlp_util "github.com/bluexlab/otlp-util-go"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/model"
	"github.com/integrationsandbox/integrationsandbox/pkg/util"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"
)

type Config struct {
	Timeout   int     `yaml:"timeout"`    // Seconds per POST attempt.
	MaxRetry  int     `yaml:"max_retry"`  // Attempts per dispatch.
	RateLimit float64 `yaml:"rate_limit"` // POSTs per second. 0 means unlimited.
	Burst     int     `yaml:"burst"`
}

type HTTPDispatcher struct {
	retry   int
	delay   time.Duration
	timeout time.Duration
	limiter *rate.Limiter
}

type DispatcherOption func(d *HTTPDispatcher)

// WithRetryDelay sets the base delay between attempts.
func WithRetryDelay(delay time.Duration) DispatcherOption {
	return func(d *HTTPDispatcher) {
		d.delay = delay
	}
}

func NewHTTPDispatcher(cfg Config, opts ...DispatcherOption) *HTTPDispatcher {
	d := &HTTPDispatcher{
		retry:   cfg.MaxRetry,
		delay:   100 * time.Millisecond,
		timeout: time.Second * time.Duration(cfg.Timeout),
		limiter: rate.NewLimiter(rate.Inf, 0),
	}
	if d.retry <= 0 {
		d.retry = 1
	}
	if d.timeout <= 0 {
		d.timeout = 10 * time.Second
	}
	if cfg.RateLimit > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		d.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch POSTs the payload as JSON. Any 2xx response is a success. Failing
// attempts are retried; when every attempt fails the error wraps
// model.ErrTargetUnreachable.
func (d *HTTPDispatcher) Dispatch(ctx context.Context, targetURL string, payload any) error {
	ctx, span := otlp_util.Start(ctx, "sandbox_server/trigger/Dispatch",
		trace.WithAttributes(attribute.String("target_url", targetURL)),
	)
	defer span.End()

	body := util.StructToJSON(payload)
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DisableKeepAlives = true
	client := http.Client{Timeout: d.timeout, Transport: transport}

	err := retry.Do(
		func() error {
			if err := d.limiter.Wait(ctx); err != nil {
				return retry.Unrecoverable(err)
			}

			req, err := http.NewRequestWithContext(ctx, http.MethodPost, targetURL, strings.NewReader(body))
			if err != nil {
				return retry.Unrecoverable(fmt.Errorf("create http request: %w", err))
			}
			req.Header.Set("Content-Type", "application/json")

			resp, err := client.Do(req)
			if err != nil {
				logrus.Debugf("send http request: %v", err)
				return err
			}
			defer func() { _ = resp.Body.Close() }()
			if resp.StatusCode/100 != 2 {
				respBody, _ := io.ReadAll(resp.Body)
				logrus.Debugf("%s returned %v: %s", targetURL, resp.StatusCode, string(respBody))
				return fmt.Errorf("unexpected status code: %v", resp.StatusCode)
			}

			return nil
		},
		retry.Attempts(uint(d.retry)),
		retry.Delay(d.delay),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
	)

	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("post to %s: %v: %w", targetURL, err, model.ErrTargetUnreachable)
	}
	return nil
}

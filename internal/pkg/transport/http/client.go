// Package http builds the HTTP client used to talk to block explorers.
// It wraps HashiCorp's retryablehttp.Client and exposes functional options
// for timeouts and retry behavior.
package http

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/gabapcia/txharvest/internal/pkg/logger"

	"github.com/hashicorp/go-retryablehttp"
)

// config holds internal settings for the HTTP client.
type config struct {
	timeout      time.Duration // maximum duration for a single HTTP request
	retryWaitMin time.Duration // minimum delay between retry attempts
	retryWaitMax time.Duration // maximum delay between retry attempts
	retryMax     int           // maximum number of retry attempts
}

// Option defines a functional option for configuring the HTTP client.
type Option func(*config)

// leveledLogger forwards retryablehttp's request and retry logs to the global logger.
type leveledLogger struct{}

// Compile-time assertion that leveledLogger satisfies retryablehttp.LeveledLogger.
var _ retryablehttp.LeveledLogger = leveledLogger{}

func (leveledLogger) Error(msg string, keysAndValues ...any) {
	logger.Error(context.Background(), msg, keysAndValues...)
}

func (leveledLogger) Warn(msg string, keysAndValues ...any) {
	logger.Warn(context.Background(), msg, keysAndValues...)
}

func (leveledLogger) Info(msg string, keysAndValues ...any) {
	logger.Debug(context.Background(), msg, keysAndValues...)
}

func (leveledLogger) Debug(msg string, keysAndValues ...any) {
	logger.Debug(context.Background(), msg, keysAndValues...)
}

// credentialParam matches query parameters carrying explorer credentials, e.g. apikey=XYZ.
var credentialParam = regexp.MustCompile(`(?i)((?:api_?key|token)=)[^&\s"']+`)

// redactedValue replaces credential values in log fields.
const redactedValue = "REDACTED"

// redact masks credentials in v when it renders as text. Other values are returned unchanged.
func redact(v any) any {
	var text string
	switch v := v.(type) {
	case string:
		text = v
	case error:
		text = v.Error()
	case fmt.Stringer:
		text = v.String()
	default:
		return v
	}

	return credentialParam.ReplaceAllString(text, "${1}"+redactedValue)
}

// redactingLogger masks credentials in the message and values of every entry before
// handing it to next. retryablehttp logs request URLs and *url.Error values verbatim.
type redactingLogger struct {
	next retryablehttp.LeveledLogger
}

// Compile-time assertion that redactingLogger satisfies retryablehttp.LeveledLogger.
var _ retryablehttp.LeveledLogger = redactingLogger{}

func (r redactingLogger) Error(msg string, keysAndValues ...any) {
	msg, keysAndValues = r.sanitize(msg, keysAndValues)
	r.next.Error(msg, keysAndValues...)
}

func (r redactingLogger) Warn(msg string, keysAndValues ...any) {
	msg, keysAndValues = r.sanitize(msg, keysAndValues)
	r.next.Warn(msg, keysAndValues...)
}

func (r redactingLogger) Info(msg string, keysAndValues ...any) {
	msg, keysAndValues = r.sanitize(msg, keysAndValues)
	r.next.Info(msg, keysAndValues...)
}

func (r redactingLogger) Debug(msg string, keysAndValues ...any) {
	msg, keysAndValues = r.sanitize(msg, keysAndValues)
	r.next.Debug(msg, keysAndValues...)
}

// sanitize returns a redacted copy of msg and of every value in keysAndValues.
func (redactingLogger) sanitize(msg string, keysAndValues []any) (string, []any) {
	clean := make([]any, len(keysAndValues))
	for i, kv := range keysAndValues {
		if i%2 == 0 {
			clean[i] = kv
			continue
		}
		clean[i] = redact(kv)
	}

	return redact(msg).(string), clean
}

// NewClient creates and returns a retryablehttp.Client configured with
// the provided options. If no options are given, default values are used:
//
//   - timeout:      30 seconds
//   - retryWaitMin: 1 second
//   - retryWaitMax: 5 seconds
//   - retryMax:     0 (a failed request is reported immediately)
func NewClient(opts ...Option) *retryablehttp.Client {
	cfg := config{
		timeout:      30 * time.Second,
		retryWaitMin: 1 * time.Second,
		retryWaitMax: 5 * time.Second,
		retryMax:     0,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	client := retryablehttp.NewClient()
	client.Logger = redactingLogger{next: leveledLogger{}}
	client.HTTPClient.Timeout = cfg.timeout
	client.RetryWaitMin = cfg.retryWaitMin
	client.RetryWaitMax = cfg.retryWaitMax
	client.RetryMax = cfg.retryMax
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	return client
}

// WithTimeout sets the maximum duration allowed for a single HTTP request.
// Default: 30 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithRetryWaitMin sets the minimum delay between retry attempts.
// Default: 1 second.
func WithRetryWaitMin(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMin = d
	}
}

// WithRetryWaitMax sets the maximum delay between retry attempts.
// Default: 5 seconds.
func WithRetryWaitMax(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMax = d
	}
}

// WithRetryMax sets the maximum number of retry attempts for failed requests.
// Default: 0 retries.
func WithRetryMax(n int) Option {
	return func(c *config) {
		c.retryMax = n
	}
}

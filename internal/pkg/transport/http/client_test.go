package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// observedLogger adapts a zap logger writing to an observer core to retryablehttp.LeveledLogger.
type observedLogger struct {
	l *zap.SugaredLogger
}

func (o observedLogger) Error(msg string, kv ...any) { o.l.Errorw(msg, kv...) }
func (o observedLogger) Warn(msg string, kv ...any)  { o.l.Warnw(msg, kv...) }
func (o observedLogger) Info(msg string, kv ...any)  { o.l.Infow(msg, kv...) }
func (o observedLogger) Debug(msg string, kv ...any) { o.l.Debugw(msg, kv...) }

// newObservedLogger returns a redacting logger whose output is recorded in the returned logs.
func newObservedLogger() (redactingLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return redactingLogger{next: observedLogger{l: zap.New(core).Sugar()}}, logs
}

func TestNewClient(t *testing.T) {
	t.Run("uses default configuration when no options are provided", func(t *testing.T) {
		client := NewClient()

		require.NotNil(t, client, "NewClient should return a non-nil client")
		assert.Equal(t, 30*time.Second, client.HTTPClient.Timeout, "default HTTP timeout should be 30s")
		assert.Equal(t, 1*time.Second, client.RetryWaitMin, "default RetryWaitMin should be 1s")
		assert.Equal(t, 5*time.Second, client.RetryWaitMax, "default RetryWaitMax should be 5s")
		assert.Equal(t, 0, client.RetryMax, "default RetryMax should be 0")
		assert.Equal(t, redactingLogger{next: leveledLogger{}}, client.Logger)
	})

	t.Run("applies provided options correctly", func(t *testing.T) {
		client := NewClient(
			WithTimeout(10*time.Second),
			WithRetryWaitMin(200*time.Millisecond),
			WithRetryWaitMax(10*time.Second),
			WithRetryMax(5),
		)

		assert.Equal(t, 10*time.Second, client.HTTPClient.Timeout, "custom HTTP timeout should be applied")
		assert.Equal(t, 200*time.Millisecond, client.RetryWaitMin, "custom RetryWaitMin should be applied")
		assert.Equal(t, 10*time.Second, client.RetryWaitMax, "custom RetryWaitMax should be applied")
		assert.Equal(t, 5, client.RetryMax, "custom RetryMax should be applied")
	})

	t.Run("returns the last response once retries are exhausted", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := NewClient(
			WithRetryMax(1),
			WithRetryWaitMin(time.Millisecond),
			WithRetryWaitMax(time.Millisecond),
		)

		res, err := client.Get(server.URL)
		require.NoError(t, err)
		defer res.Body.Close()

		assert.Equal(t, http.StatusServiceUnavailable, res.StatusCode)
		assert.Equal(t, int32(2), calls.Load(), "one attempt plus one retry")
	})

	t.Run("does not retry by default", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		res, err := NewClient().Get(server.URL)
		require.NoError(t, err)
		defer res.Body.Close()

		assert.Equal(t, int32(1), calls.Load())
	})
}

func TestRedactingLogger(t *testing.T) {
	t.Run("keeps the api key out of failed request logs", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		endpoint := server.URL
		server.Close()

		log, logs := newObservedLogger()
		client := NewClient(WithTimeout(time.Second))
		client.Logger = log

		_, err := client.Get(endpoint + "/api?module=account&action=txlist&apikey=super-secret")
		require.Error(t, err)
		require.NotZero(t, logs.Len())

		var redacted bool
		for _, entry := range logs.All() {
			fields := fmt.Sprint(entry.ContextMap())
			assert.NotContains(t, entry.Message, "super-secret")
			assert.NotContains(t, fields, "super-secret")
			redacted = redacted || strings.Contains(fields, redactedValue)
		}
		assert.True(t, redacted, "at least one entry should carry the masked url")
	})

	t.Run("masks credentials in messages and values but not in keys", func(t *testing.T) {
		log, logs := newObservedLogger()

		log.Warn("retrying GET https://x/api?apikey=abc&module=account",
			"url", "https://x/api?module=account&apikey=abc",
			"error", &url.Error{Op: "Get", URL: "https://x/api?APIKEY=abc", Err: errors.New("timeout")},
			"attempt", 2,
		)

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, "retrying GET https://x/api?apikey=REDACTED&module=account", entry.Message)

		fields := entry.ContextMap()
		assert.Equal(t, "https://x/api?module=account&apikey=REDACTED", fields["url"])
		assert.Equal(t, `Get "https://x/api?APIKEY=REDACTED": timeout`, fields["error"])
		assert.EqualValues(t, 2, fields["attempt"])
	})
}

func TestRedact(t *testing.T) {
	t.Run("leaves values without credentials unchanged", func(t *testing.T) {
		assert.Equal(t, "https://x/api?module=account", redact("https://x/api?module=account"))
		assert.Equal(t, 3, redact(3))
	})

	t.Run("masks stringers", func(t *testing.T) {
		u, err := url.Parse("https://x/api?api_key=abc")
		require.NoError(t, err)
		assert.Equal(t, "https://x/api?api_key=REDACTED", redact(u))
	})
}

func TestOptions(t *testing.T) {
	cfg := &config{}

	WithTimeout(10 * time.Second)(cfg)
	WithRetryWaitMin(500 * time.Millisecond)(cfg)
	WithRetryWaitMax(8 * time.Second)(cfg)
	WithRetryMax(3)(cfg)

	assert.Equal(t, 10*time.Second, cfg.timeout)
	assert.Equal(t, 500*time.Millisecond, cfg.retryWaitMin)
	assert.Equal(t, 8*time.Second, cfg.retryWaitMax)
	assert.Equal(t, 3, cfg.retryMax)
}

package etherscan

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gabapcia/txharvest/internal/harvest"
	transporthttp "github.com/gabapcia/txharvest/internal/pkg/transport/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient points a client at handler with a short HTTP timeout and no retries.
func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	httpClient := transporthttp.NewClient(transporthttp.WithTimeout(2 * time.Second))
	return NewClient(httpClient, srv.URL+"/api", "test-key", opts...)
}

func TestNewClient(t *testing.T) {
	t.Run("assigns every field", func(t *testing.T) {
		httpClient := transporthttp.NewClient()
		c := NewClient(httpClient, "https://api.etherscan.io/v2/api", "key", WithChainID("1"))

		assert.Equal(t, "https://api.etherscan.io/v2/api", c.baseURL)
		assert.Equal(t, "key", c.apiKey)
		assert.Equal(t, "1", c.chainID)
		assert.Same(t, httpClient, c.httpClient)

		var _ harvest.TransactionFetcher = c
	})
}

func TestClient_FetchTransactions(t *testing.T) {
	t.Run("requests the normal transaction list with the full block range", func(t *testing.T) {
		body := `{"status":"1","message":"OK","result":[{"hash":"0x1"}]}`
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			assert.Equal(t, "/api", r.URL.Path)
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "account", q.Get("module"))
			assert.Equal(t, "txlist", q.Get("action"))
			assert.Equal(t, "0xABC", q.Get("address"))
			assert.Equal(t, "0", q.Get("startblock"))
			assert.Equal(t, "99999999", q.Get("endblock"))
			assert.Equal(t, "asc", q.Get("sort"))
			assert.Equal(t, "test-key", q.Get("apikey"))
			assert.False(t, q.Has("chainid"))

			w.Write([]byte(body))
		})

		doc, err := c.FetchTransactions(t.Context(), harvest.KindNormal, "0xABC")
		require.NoError(t, err)
		assert.JSONEq(t, body, string(doc))
	})

	t.Run("requests the internal transaction list", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "txlistinternal", r.URL.Query().Get("action"))
			w.Write([]byte(`{"status":"1","message":"OK","result":[]}`))
		})

		_, err := c.FetchTransactions(t.Context(), harvest.KindInternal, "0xABC")
		assert.NoError(t, err)
	})

	t.Run("sends the chain id when configured", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "8453", r.URL.Query().Get("chainid"))
			w.Write([]byte(`{"status":"1","message":"OK","result":[]}`))
		}, WithChainID("8453"))

		_, err := c.FetchTransactions(t.Context(), harvest.KindNormal, "0xABC")
		assert.NoError(t, err)
	})

	t.Run("accepts an empty list reported with status 0", func(t *testing.T) {
		body := `{"status":"0","message":"No transactions found","result":[]}`
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		})

		doc, err := c.FetchTransactions(t.Context(), harvest.KindNormal, "0xABC")
		require.NoError(t, err)
		assert.JSONEq(t, body, string(doc))
	})

	t.Run("accepts a document without result", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"1"}`))
		})

		_, err := c.FetchTransactions(t.Context(), harvest.KindNormal, "0xABC")
		assert.NoError(t, err)
	})

	t.Run("returns a provider error when result is a message", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"0","message":"NOTOK","result":"Invalid API Key"}`))
		})

		doc, err := c.FetchTransactions(t.Context(), harvest.KindNormal, "0xABC")
		assert.Nil(t, doc)
		assert.ErrorIs(t, err, ErrProviderReturnedError)
		assert.Contains(t, err.Error(), "Invalid API Key")
	})

	t.Run("returns an unexpected status error on non-2xx responses", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		doc, err := c.FetchTransactions(t.Context(), harvest.KindNormal, "0xABC")
		assert.Nil(t, doc)
		assert.ErrorIs(t, err, ErrUnexpectedStatus)
		assert.Contains(t, err.Error(), "502")
	})

	t.Run("sends a single request when retries are disabled", func(t *testing.T) {
		var calls atomic.Int32
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		_, err := c.FetchTransactions(t.Context(), harvest.KindNormal, "0xABC")
		assert.ErrorIs(t, err, ErrUnexpectedStatus)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("returns an error on a body that is not JSON", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html>rate limited</html>`))
		})

		doc, err := c.FetchTransactions(t.Context(), harvest.KindNormal, "0xABC")
		assert.Nil(t, doc)
		assert.Error(t, err)
	})

	t.Run("returns a malformed response error on a null body", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("null\n"))
		})

		doc, err := c.FetchTransactions(t.Context(), harvest.KindNormal, "0xABC")
		assert.Nil(t, doc)
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("does not leak the api key on transport errors", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()

		c := NewClient(transporthttp.NewClient(transporthttp.WithTimeout(time.Second)), srv.URL, "super-secret")

		_, err := c.FetchTransactions(t.Context(), harvest.KindNormal, "0xABC")
		require.Error(t, err)
		assert.NotContains(t, err.Error(), "super-secret")
	})

	t.Run("returns the context error when canceled", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"result":[]}`))
		})

		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		_, err := c.FetchTransactions(ctx, harvest.KindNormal, "0xABC")
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("rejects unknown transaction kinds", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected")
		})

		_, err := c.FetchTransactions(t.Context(), harvest.TransactionKind("erc20"), "0xABC")
		assert.ErrorIs(t, err, ErrUnsupportedKind)
	})
}

func TestEnvelope_Err(t *testing.T) {
	t.Run("falls back to the message when result is not a string", func(t *testing.T) {
		err := envelope{Message: "NOTOK", Result: []byte(`{"code":1}`)}.Err()
		assert.ErrorIs(t, err, ErrProviderReturnedError)
		assert.Contains(t, err.Error(), "NOTOK")
	})

	t.Run("accepts a null result", func(t *testing.T) {
		assert.NoError(t, envelope{Result: []byte("null")}.Err())
	})
}

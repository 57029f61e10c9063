// Package etherscan implements harvest.TransactionFetcher for Etherscan-compatible
// block explorer APIs (Etherscan, its V2 multichain endpoint, BscScan, Blockscout).
package etherscan

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/gabapcia/txharvest/internal/harvest"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	// fullRangeStartBlock and fullRangeEndBlock request the complete history of an address.
	fullRangeStartBlock = "0"
	fullRangeEndBlock   = "99999999"

	// ascendingOrder sorts transactions from the oldest to the newest.
	ascendingOrder = "asc"
)

var (
	// ErrUnexpectedStatus is returned when the explorer answers with a non-2xx HTTP status.
	ErrUnexpectedStatus = errors.New("unexpected explorer response status")

	// ErrProviderReturnedError is returned when the explorer reports an error in the
	// response envelope instead of a transaction list.
	ErrProviderReturnedError = errors.New("explorer returned an error")

	// ErrUnsupportedKind is returned for transaction kinds with no explorer action.
	ErrUnsupportedKind = errors.New("unsupported transaction kind")

	// ErrMalformedResponse is returned when the body is valid JSON but not a response object.
	ErrMalformedResponse = errors.New("malformed explorer response")
)

// actions maps each transaction kind to the explorer "account" module action listing it.
var actions = map[harvest.TransactionKind]string{
	harvest.KindNormal:   "txlist",
	harvest.KindInternal: "txlistinternal",
}

// envelope is the common Etherscan response shape. Result stays raw because it is
// a JSON array on success and a plain string (e.g. "Invalid API Key") on failure.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

// Err returns an error when the envelope carries an error message instead of a list.
func (e envelope) Err() error {
	result := bytes.TrimSpace(e.Result)
	if len(result) == 0 || result[0] == '[' || bytes.Equal(result, []byte("null")) {
		return nil
	}

	var msg string
	if err := json.Unmarshal(result, &msg); err != nil || msg == "" {
		msg = e.Message
	}

	return fmt.Errorf("%w: %s", ErrProviderReturnedError, msg)
}

// client queries an explorer API for the transaction lists of an address.
type client struct {
	baseURL    string                // explorer API endpoint, e.g. https://api.etherscan.io/v2/api
	apiKey     string                // explorer credential
	chainID    string                // optional chainid parameter of multichain endpoints
	httpClient *retryablehttp.Client // transport with the configured timeout and retries
}

// Compile-time assertion that client implements harvest.TransactionFetcher.
var _ harvest.TransactionFetcher = (*client)(nil)

// requestURL builds the query listing the transactions of kind for address.
func (c *client) requestURL(kind harvest.TransactionKind, address string) (string, error) {
	action, ok := actions[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedKind, kind)
	}

	query := url.Values{}
	if c.chainID != "" {
		query.Set("chainid", c.chainID)
	}
	query.Set("module", "account")
	query.Set("action", action)
	query.Set("address", address)
	query.Set("startblock", fullRangeStartBlock)
	query.Set("endblock", fullRangeEndBlock)
	query.Set("sort", ascendingOrder)
	query.Set("apikey", c.apiKey)

	return c.baseURL + "?" + query.Encode(), nil
}

// FetchTransactions requests the full, ascending transaction list of the given kind
// for address and returns the response body unmodified.
//
// It returns an error if the request cannot be sent, the status is not 2xx, the body
// is not a JSON object, or the explorer reports an error in place of the list. Errors
// never include the request URL, which carries the API key.
func (c *client) FetchTransactions(ctx context.Context, kind harvest.TransactionKind, address string) (json.RawMessage, error) {
	endpoint, err := c.requestURL(kind, address)
	if err != nil {
		return nil, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}

		return nil, fmt.Errorf("requesting %s transactions: %w", kind, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if bytes.Equal(bytes.TrimSpace(body), []byte("null")) {
		return nil, fmt.Errorf("decoding %s transactions: %w", kind, ErrMalformedResponse)
	}

	var data envelope
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("decoding %s transactions: %w", kind, err)
	}

	if err := data.Err(); err != nil {
		return nil, err
	}

	return json.RawMessage(body), nil
}

// config holds optional explorer parameters.
type config struct {
	chainID string
}

// Option customizes the explorer client.
type Option func(*config)

// WithChainID adds the chainid parameter required by multichain endpoints
// such as https://api.etherscan.io/v2/api.
func WithChainID(id string) Option {
	return func(c *config) {
		c.chainID = id
	}
}

// NewClient creates an explorer client for the API at baseURL, authenticated with apiKey
// and sending requests through httpClient.
func NewClient(httpClient *retryablehttp.Client, baseURL, apiKey string, opts ...Option) *client {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		chainID:    cfg.chainID,
		httpClient: httpClient,
	}
}

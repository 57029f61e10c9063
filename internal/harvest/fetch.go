package harvest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/txharvest/internal/pkg/logger"
)

var (
	// ErrCacheMiss is returned by ResponseCache.Load when no entry exists for the key.
	ErrCacheMiss = errors.New("cache entry not found")

	// ErrCorruptCacheEntry is returned by ResponseCache.Load when an entry exists
	// but does not hold valid JSON.
	ErrCorruptCacheEntry = errors.New("corrupt cache entry")
)

// ErrUnreadableResponse is returned when an upstream document is valid JSON but not an object.
var ErrUnreadableResponse = errors.New("unreadable response document")

// TransactionFetcher retrieves one transaction list from the upstream explorer.
type TransactionFetcher interface {
	// FetchTransactions performs a single request for the given kind and address
	// and returns the raw response document.
	//
	// Any error means the fetch failed: network errors, non-success HTTP status,
	// undecodable bodies and explorer error envelopes are all reported this way.
	FetchTransactions(ctx context.Context, kind TransactionKind, address string) (json.RawMessage, error)
}

// CacheKey identifies one cached upstream response.
type CacheKey struct {
	Address string
	Kind    TransactionKind
}

// cacheSuffixes names the cache entry of each kind.
var cacheSuffixes = map[TransactionKind]string{
	KindNormal:   "txs",
	KindInternal: "internal",
}

// Name returns the storage-independent entry name for the key,
// e.g. "0xabc_txs" for normal and "0xabc_internal" for internal transactions.
func (k CacheKey) Name() string {
	suffix, ok := cacheSuffixes[k.Kind]
	if !ok {
		suffix = k.Kind.String()
	}

	return k.Address + "_" + suffix
}

// ResponseCache stores raw upstream responses per wallet and kind.
//
// Entries are written once and trusted forever: the harvester never refreshes,
// expires or invalidates them.
type ResponseCache interface {
	// Load returns the cached document for key, or ErrCacheMiss if there is none.
	// Any other error means the entry exists but cannot be used.
	Load(ctx context.Context, key CacheKey) (json.RawMessage, error)

	// Store persists the document for key exactly as received.
	Store(ctx context.Context, key CacheKey, doc json.RawMessage) error
}

// FetchStatus describes where the records of a FetchResult came from.
type FetchStatus string

const (
	// FetchStatusCached means the records were read from an existing cache entry.
	FetchStatusCached FetchStatus = "cached"

	// FetchStatusFetched means the records were fetched upstream and cached.
	FetchStatusFetched FetchStatus = "fetched"

	// FetchStatusFailed means the upstream fetch failed and the records are empty.
	FetchStatusFailed FetchStatus = "failed"
)

// FetchResult is the outcome of one cached fetch.
//
// A failed fetch and a wallet without transactions both carry empty Records;
// Status tells them apart.
type FetchResult struct {
	Kind    TransactionKind
	Status  FetchStatus
	Records []TransactionRecord
	Err     error // set only when Status is FetchStatusFailed
}

// failedFetch builds the empty result returned when a fetch degrades.
func failedFetch(kind TransactionKind, err error) FetchResult {
	return FetchResult{
		Kind:    kind,
		Status:  FetchStatusFailed,
		Records: make([]TransactionRecord, 0),
		Err:     err,
	}
}

// fetch returns the records of one kind for one wallet, reading through the cache.
//
// Behavior:
//   - Cache hit: the cached document is used as-is. If it cannot be read or parsed the
//     error is returned and the run must stop.
//   - Cache miss: the explorer is called. Every failure is logged and degraded to an
//     empty FetchStatusFailed result; nothing is cached in that case.
//   - Successful fetch: the document is cached verbatim, the throttle is awaited and
//     the records are returned.
//
// The returned error is non-nil only for unusable cache entries and context cancellation.
func (s *service) fetch(ctx context.Context, kind TransactionKind, address string) (FetchResult, error) {
	key := CacheKey{Address: address, Kind: kind}

	doc, err := s.cache.Load(ctx, key)
	switch {
	case err == nil:
		records, err := readRecords(ctx, kind, doc)
		if err != nil {
			return FetchResult{}, fmt.Errorf("reading cached %s transactions of %s: %w", kind, address, err)
		}

		return FetchResult{Kind: kind, Status: FetchStatusCached, Records: records}, nil
	case !errors.Is(err, ErrCacheMiss):
		return FetchResult{}, fmt.Errorf("loading cached %s transactions of %s: %w", kind, address, err)
	}

	doc, err = s.fetcher.FetchTransactions(ctx, kind, address)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return FetchResult{}, ctxErr
		}

		logger.Error(ctx, "failed to fetch transactions", "transaction.kind", kind, "error", err)
		return failedFetch(kind, err), nil
	}

	records, err := readRecords(ctx, kind, doc)
	if err != nil {
		logger.Error(ctx, "failed to read fetched transactions", "transaction.kind", kind, "error", err)
		return failedFetch(kind, err), nil
	}

	if err := s.cache.Store(ctx, key, doc); err != nil {
		logger.Error(ctx, "failed to cache fetched transactions", "transaction.kind", kind, "error", err)
		return failedFetch(kind, err), nil
	}

	if err := s.throttle.Wait(ctx); err != nil {
		return FetchResult{}, err
	}

	return FetchResult{Kind: kind, Status: FetchStatusFetched, Records: records}, nil
}

// readRecords extracts the transaction records from a response document,
// warning when the explorer placed something other than a list in "result".
func readRecords(ctx context.Context, kind TransactionKind, doc json.RawMessage) ([]TransactionRecord, error) {
	records, ok, err := extractRecords(doc)
	if err != nil {
		return nil, errors.Join(ErrUnreadableResponse, err)
	}

	if !ok {
		logger.Warn(ctx, "response result is not a transaction list, using an empty list", "transaction.kind", kind)
	}

	return records, nil
}

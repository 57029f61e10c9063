package harvest

import (
	"bytes"
	"encoding/json"
	"errors"
)

// TransactionKind identifies which explorer transaction list a record came from.
type TransactionKind string

const (
	// KindNormal covers transactions directly submitted by or to the wallet.
	KindNormal TransactionKind = "normal"

	// KindInternal covers value transfers generated as a side effect of contract execution.
	KindInternal TransactionKind = "internal"
)

// TransactionKinds lists every kind fetched per wallet, in fetch order.
var TransactionKinds = []TransactionKind{KindNormal, KindInternal}

// String returns the kind name as used in the output document.
func (k TransactionKind) String() string {
	return string(k)
}

// TransactionRecord is one transaction object exactly as returned by the upstream API.
// Its fields are never inspected.
type TransactionRecord = json.RawMessage

// WalletTransactions groups every record fetched for a single wallet by kind.
type WalletTransactions struct {
	Normal   []TransactionRecord `json:"normal"`
	Internal []TransactionRecord `json:"internal"`
}

// newWalletTransactions returns a WalletTransactions whose lists marshal as empty JSON arrays.
func newWalletTransactions() WalletTransactions {
	return WalletTransactions{
		Normal:   make([]TransactionRecord, 0),
		Internal: make([]TransactionRecord, 0),
	}
}

// set assigns the records of the given kind.
func (w *WalletTransactions) set(kind TransactionKind, records []TransactionRecord) {
	if records == nil {
		records = make([]TransactionRecord, 0)
	}

	switch kind {
	case KindNormal:
		w.Normal = records
	case KindInternal:
		w.Internal = records
	}
}

// errNullDocument is returned for a document that is the JSON literal null.
var errNullDocument = errors.New("document is null")

// responseDocument is the part of an explorer response the harvester reads.
// Everything else in the document is kept only in the cache.
type responseDocument struct {
	Result json.RawMessage `json:"result"`
}

// extractRecords returns the elements of the document's "result" array.
//
// A document without "result" yields no records. A "result" that is not an array
// (explorers put error strings there) also yields no records, and ok is false so the
// caller can report it.
func extractRecords(doc json.RawMessage) (records []TransactionRecord, ok bool, err error) {
	if bytes.Equal(bytes.TrimSpace(doc), []byte("null")) {
		return nil, false, errNullDocument
	}

	var envelope responseDocument
	if err := json.Unmarshal(doc, &envelope); err != nil {
		return nil, false, err
	}

	result := bytes.TrimSpace(envelope.Result)
	if len(result) == 0 || bytes.Equal(result, []byte("null")) {
		return make([]TransactionRecord, 0), true, nil
	}

	if result[0] != '[' {
		return make([]TransactionRecord, 0), false, nil
	}

	if err := json.Unmarshal(result, &records); err != nil {
		return nil, false, err
	}

	if records == nil {
		records = make([]TransactionRecord, 0)
	}

	return records, true, nil
}

package filesystem

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gabapcia/txharvest/internal/harvest"
	"github.com/gabapcia/txharvest/internal/pkg/logger"
)

// walletColumn is the CSV header naming the wallet address column.
const walletColumn = "wallet_id"

// utf8BOM may prefix the first header cell.
const utf8BOM = "\ufeff"

// ErrMissingWalletColumn is returned when the CSV header has no wallet_id column.
var ErrMissingWalletColumn = errors.New("missing " + walletColumn + " column")

// walletFile reads wallet addresses from a CSV file.
type walletFile struct {
	path string
}

// Compile-time assertion that walletFile implements harvest.WalletSource.
var _ harvest.WalletSource = (*walletFile)(nil)

// LoadWallets returns the wallet_id column of every row, in file order.
//
// The column may be at any position and other columns are ignored. Cells are
// returned as written, except that rows with a blank wallet_id are skipped.
func (w *walletFile) LoadWallets(ctx context.Context) ([]string, error) {
	f, err := os.Open(w.path)
	if err != nil {
		return nil, fmt.Errorf("opening wallet list: %w", err)
	}
	defer f.Close()

	return readWallets(ctx, f)
}

// readWallets parses a wallet list from r.
func readWallets(ctx context.Context, r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrMissingWalletColumn
		}

		return nil, fmt.Errorf("reading wallet list header: %w", err)
	}

	column := -1
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}

		if strings.TrimSpace(name) == walletColumn {
			column = i
			break
		}
	}

	if column < 0 {
		return nil, ErrMissingWalletColumn
	}

	wallets := make([]string, 0)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading wallet list: %w", err)
		}

		line, _ := reader.FieldPos(0)
		if column >= len(record) || strings.TrimSpace(record[column]) == "" {
			logger.Warn(ctx, "skipping row without wallet address", "csv.line", line)
			continue
		}

		wallets = append(wallets, record[column])
	}

	return wallets, nil
}

// NewWalletFile returns a wallet source reading the CSV file at path.
func NewWalletFile(path string) *walletFile {
	return &walletFile{path: path}
}

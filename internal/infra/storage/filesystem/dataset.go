package filesystem

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/gabapcia/txharvest/internal/harvest"
	"github.com/gabapcia/txharvest/internal/pkg/logger"
)

const (
	// datasetIndent is the per-level indentation of the output document.
	datasetIndent = "  "

	datasetFilePerm os.FileMode = 0o644
)

// datasetFile writes the aggregated dataset as a pretty-printed JSON document.
type datasetFile struct {
	path string
}

// Compile-time assertion that datasetFile implements harvest.DatasetWriter.
var _ harvest.DatasetWriter = (*datasetFile)(nil)

// WriteDataset replaces the output file with the serialized dataset.
// The previous file stays untouched if serialization or writing fails.
func (d *datasetFile) WriteDataset(ctx context.Context, dataset *harvest.Dataset) error {
	data, err := json.MarshalIndent(dataset, "", datasetIndent)
	if err != nil {
		return fmt.Errorf("encoding dataset: %w", err)
	}

	if err := writeFileAtomic(d.path, data, datasetFilePerm); err != nil {
		return err
	}

	logger.Info(ctx, "dataset written", "output.path", d.path, "wallets", dataset.Len())
	return nil
}

// NewDatasetWriter returns a writer producing the JSON document at path.
func NewDatasetWriter(path string) *datasetFile {
	return &datasetFile{path: path}
}

// Package filesystem stores harvest inputs and outputs on the local disk: the CSV
// wallet list, the per-wallet response cache and the aggregated dataset.
package filesystem

import (
	"os"

	"github.com/google/renameio/v2"
)

// writeFileAtomic replaces path with data so readers never observe a partially
// written file. The temporary file lives next to path and is removed on failure.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	return renameio.WriteFile(path, data, perm)
}

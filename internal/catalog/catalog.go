package catalog

import (
	"context"

	"github.com/MohitMaulekhi/wkc/internal/model"
)

// Loader defines the interface for loading product seed files.
type Loader interface {
	// Load reads a gzipped JSON-lines product seed file and returns the
	// decoded products. Malformed documents are skipped, not fatal.
	Load(ctx context.Context, source string) ([]model.Product, error)
}

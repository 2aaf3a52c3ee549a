package catalog

import (
	"bufio"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/MohitMaulekhi/wkc/internal/model"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for reading gzipped seed files from disk.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based product seed loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "seed-loader").Logger(),
	}
}

// Load reads a gzipped product seed file. The file is expected to contain
// one JSON product document per line.
func (l *fileLoader) Load(ctx context.Context, source string) ([]model.Product, error) {
	l.logger.Info().Str("file", source).Msg("loading product seed file")

	file, err := os.Open(source)
	if err != nil {
		l.logger.Error().Err(err).Str("file", source).Msg("failed to open seed file")
		return nil, fmt.Errorf("failed to open seed file %s: %w", source, err)
	}
	defer file.Close()

	products, err := decodeProducts(ctx, file, l.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", source, err)
	}

	l.logger.Info().
		Str("file", source).
		Int("products_loaded", len(products)).
		Msg("product seed file loaded successfully")

	return products, nil
}

// decodeProducts reads gzipped JSON-lines product documents from r.
// Documents that fail validation are logged and skipped so one bad line
// cannot block a whole seed run.
func decodeProducts(ctx context.Context, r io.Reader, logger zerolog.Logger) ([]model.Product, error) {
	gzipReader, err := gzip.NewReader(r)
	if err != nil {
		logger.Error().Err(err).Msg("failed to create gzip reader")
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzipReader.Close()

	scanner := bufio.NewScanner(gzipReader)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var products []model.Product
	lineNo := 0
	skipped := 0
	for scanner.Scan() {
		lineNo++

		// Check context cancellation periodically
		if lineNo%10_000 == 0 {
			select {
			case <-ctx.Done():
				logger.Warn().Msg("product seed loading cancelled")
				return nil, ctx.Err()
			default:
			}
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var p model.Product
		if err := json.Unmarshal([]byte(line), &p); err != nil {
			logger.Warn().Err(err).Int("line", lineNo).Msg("skipping malformed product document")
			skipped++
			continue
		}

		if err := validateProduct(&p); err != nil {
			logger.Warn().Err(err).Int("line", lineNo).Str("product_id", p.ID).Msg("skipping invalid product document")
			skipped++
			continue
		}

		products = append(products, p)
	}

	if err := scanner.Err(); err != nil {
		logger.Error().Err(err).Msg("error reading seed data")
		return nil, fmt.Errorf("error reading seed data: %w", err)
	}

	if skipped > 0 {
		logger.Warn().Int("skipped", skipped).Msg("some product documents were rejected")
	}

	return products, nil
}

// validateProduct enforces the product schema at the storage boundary.
// Loosely-shaped documents are rejected here rather than defaulted deep in
// business logic.
func validateProduct(p *model.Product) error {
	switch {
	case p.ID == "":
		return fmt.Errorf("product id is required")
	case p.OwnerID == "":
		return fmt.Errorf("owner id is required")
	case p.OwnerType != model.OwnerSeller && p.OwnerType != model.OwnerWalmart:
		return fmt.Errorf("invalid owner type: %q", p.OwnerType)
	case p.Name == "":
		return fmt.Errorf("product name is required")
	case p.Category == "":
		return fmt.Errorf("product category is required")
	case p.SKU == "":
		return fmt.Errorf("product sku is required")
	case p.Price.IsNegative():
		return fmt.Errorf("product price must not be negative")
	case p.Quantity < 0:
		return fmt.Errorf("product quantity must not be negative")
	}

	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	return nil
}

package catalog

import (
	"context"
	"fmt"

	"github.com/MohitMaulekhi/wkc/internal/repository"

	"github.com/rs/zerolog"
)

// Seeder loads product seed files and applies them to the catalogue store.
type Seeder struct {
	loader   Loader
	products repository.ProductRepository
	logger   zerolog.Logger
}

// NewSeeder creates a Seeder backed by the given loader and product store.
func NewSeeder(loader Loader, products repository.ProductRepository, logger zerolog.Logger) *Seeder {
	return &Seeder{
		loader:   loader,
		products: products,
		logger:   logger.With().Str("component", "seeder").Logger(),
	}
}

// Seed loads products from source and upserts each into the store. Applying
// the same seed file twice is safe; existing listings are replaced.
func (s *Seeder) Seed(ctx context.Context, source string) (int, error) {
	products, err := s.loader.Load(ctx, source)
	if err != nil {
		return 0, fmt.Errorf("failed to load product seed: %w", err)
	}

	applied := 0
	for i := range products {
		if err := s.products.Upsert(ctx, &products[i]); err != nil {
			s.logger.Error().
				Err(err).
				Str("product_id", products[i].ID).
				Msg("failed to upsert seed product")
			return applied, fmt.Errorf("failed to upsert product %s: %w", products[i].ID, err)
		}
		applied++
	}

	s.logger.Info().
		Str("source", source).
		Int("products_applied", applied).
		Msg("product seed applied")

	return applied, nil
}

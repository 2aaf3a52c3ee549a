package repository

import (
	"context"
	"fmt"

	"github.com/MohitMaulekhi/wkc/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

const productColumns = `id, owner_id, owner_type, company_name, name, description, category, sku, price, quantity, image_url, created_at`

func scanProduct(row pgx.Row, p *model.Product) error {
	return row.Scan(
		&p.ID,
		&p.OwnerID,
		&p.OwnerType,
		&p.CompanyName,
		&p.Name,
		&p.Description,
		&p.Category,
		&p.SKU,
		&p.Price,
		&p.Quantity,
		&p.ImageURL,
		&p.CreatedAt,
	)
}

// GetAll retrieves products matching the filter with pagination support.
func (r *productRepository) GetAll(ctx context.Context, filter model.ProductFilter, limit, offset int) ([]model.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE ($1 = '' OR category = $1)
		  AND ($2 = '' OR owner_id = $2)
		ORDER BY name
		LIMIT $3 OFFSET $4
	`

	rows, err := r.pool.Query(ctx, query, filter.Category, filter.OwnerID, limit, offset)
	if err != nil {
		r.logger.Error().Err(err).
			Int("limit", limit).
			Int("offset", offset).
			Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := scanProduct(rows, &p); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *productRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE id = $1
	`

	var p model.Product
	err := scanProduct(r.pool.QueryRow(ctx, query, id), &p)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return &p, nil
}

// Upsert inserts a product or replaces an existing one.
func (r *productRepository) Upsert(ctx context.Context, product *model.Product) error {
	query := `
		INSERT INTO products (id, owner_id, owner_type, company_name, name, description, category, sku, price, quantity, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			owner_id = EXCLUDED.owner_id,
			owner_type = EXCLUDED.owner_type,
			company_name = EXCLUDED.company_name,
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			category = EXCLUDED.category,
			sku = EXCLUDED.sku,
			price = EXCLUDED.price,
			quantity = EXCLUDED.quantity,
			image_url = EXCLUDED.image_url
	`

	_, err := r.pool.Exec(ctx, query,
		product.ID,
		product.OwnerID,
		product.OwnerType,
		product.CompanyName,
		product.Name,
		product.Description,
		product.Category,
		product.SKU,
		product.Price,
		product.Quantity,
		product.ImageURL,
		product.CreatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", product.ID).Msg("failed to upsert product")
		return fmt.Errorf("failed to upsert product: %w", err)
	}

	return nil
}

// DecrementStock conditionally subtracts quantity from a product's stock
// within the provided transaction. The WHERE clause carries the stock check
// so concurrent checkouts cannot drive quantity below zero.
func (r *productRepository) DecrementStock(ctx context.Context, tx pgx.Tx, productID string, quantity int) (bool, error) {
	query := `
		UPDATE products
		SET quantity = quantity - $2
		WHERE id = $1 AND quantity >= $2
	`

	tag, err := tx.Exec(ctx, query, productID, quantity)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("product_id", productID).
			Int("quantity", quantity).
			Msg("failed to decrement stock")
		return false, fmt.Errorf("failed to decrement stock: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

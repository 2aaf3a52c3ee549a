package repository

import (
	"context"
	"fmt"

	"github.com/MohitMaulekhi/wkc/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// cartRepository implements the CartRepository interface using PostgreSQL.
type cartRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCartRepository creates a new PostgreSQL-backed cart repository.
func NewCartRepository(pool *pgxpool.Pool, logger zerolog.Logger) CartRepository {
	return &cartRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "cart").Logger(),
	}
}

const cartLineColumns = `id, buyer_id, product_id, product_name, product_image, product_sku, seller_id, seller_company, quantity, unit_price, total_price, added_at`

func scanCartLine(row pgx.Row, line *model.CartLine) error {
	return row.Scan(
		&line.ID,
		&line.BuyerID,
		&line.ProductID,
		&line.ProductName,
		&line.ProductImage,
		&line.ProductSKU,
		&line.SellerID,
		&line.SellerCompany,
		&line.Quantity,
		&line.UnitPrice,
		&line.TotalPrice,
		&line.AddedAt,
	)
}

// Insert creates a new cart line.
func (r *cartRepository) Insert(ctx context.Context, line *model.CartLine) error {
	query := `
		INSERT INTO cart_lines (id, buyer_id, product_id, product_name, product_image, product_sku, seller_id, seller_company, quantity, unit_price, total_price, added_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.pool.Exec(ctx, query,
		line.ID,
		line.BuyerID,
		line.ProductID,
		line.ProductName,
		line.ProductImage,
		line.ProductSKU,
		line.SellerID,
		line.SellerCompany,
		line.Quantity,
		line.UnitPrice,
		line.TotalPrice,
		line.AddedAt,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("line_id", line.ID.String()).
			Str("buyer_id", line.BuyerID).
			Msg("failed to insert cart line")
		return fmt.Errorf("failed to insert cart line: %w", err)
	}

	r.logger.Debug().
		Str("line_id", line.ID.String()).
		Str("product_id", line.ProductID).
		Msg("cart line inserted")

	return nil
}

// ListByBuyer retrieves all cart lines owned by the buyer.
func (r *cartRepository) ListByBuyer(ctx context.Context, buyerID string) ([]model.CartLine, error) {
	query := `
		SELECT ` + cartLineColumns + `
		FROM cart_lines
		WHERE buyer_id = $1
		ORDER BY added_at
	`

	rows, err := r.pool.Query(ctx, query, buyerID)
	if err != nil {
		r.logger.Error().Err(err).Str("buyer_id", buyerID).Msg("failed to query cart lines")
		return nil, fmt.Errorf("failed to query cart lines: %w", err)
	}
	defer rows.Close()

	return collectCartLines(r.logger, rows)
}

// GetByIDs retrieves the buyer's cart lines with the given ids.
func (r *cartRepository) GetByIDs(ctx context.Context, buyerID string, ids []uuid.UUID) ([]model.CartLine, error) {
	if len(ids) == 0 {
		return []model.CartLine{}, nil
	}

	query := `
		SELECT ` + cartLineColumns + `
		FROM cart_lines
		WHERE buyer_id = $1 AND id = ANY($2)
		ORDER BY added_at
	`

	rows, err := r.pool.Query(ctx, query, buyerID, ids)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("buyer_id", buyerID).
			Int("count", len(ids)).
			Msg("failed to query cart lines by IDs")
		return nil, fmt.Errorf("failed to query cart lines by IDs: %w", err)
	}
	defer rows.Close()

	return collectCartLines(r.logger, rows)
}

// UpdateQuantity sets a line's quantity and recomputed total price.
func (r *cartRepository) UpdateQuantity(ctx context.Context, buyerID string, id uuid.UUID, quantity int, totalPrice decimal.Decimal) (bool, error) {
	query := `
		UPDATE cart_lines
		SET quantity = $3, total_price = $4
		WHERE id = $1 AND buyer_id = $2
	`

	tag, err := r.pool.Exec(ctx, query, id, buyerID, quantity, totalPrice)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("line_id", id.String()).
			Int("quantity", quantity).
			Msg("failed to update cart line quantity")
		return false, fmt.Errorf("failed to update cart line quantity: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

// Delete removes a cart line. Deleting a missing line is a no-op success.
func (r *cartRepository) Delete(ctx context.Context, buyerID string, id uuid.UUID) error {
	query := `
		DELETE FROM cart_lines
		WHERE id = $1 AND buyer_id = $2
	`

	_, err := r.pool.Exec(ctx, query, id, buyerID)
	if err != nil {
		r.logger.Error().Err(err).Str("line_id", id.String()).Msg("failed to delete cart line")
		return fmt.Errorf("failed to delete cart line: %w", err)
	}

	return nil
}

// DeleteByIDs removes the buyer's cart lines with the given ids within the
// provided transaction.
func (r *cartRepository) DeleteByIDs(ctx context.Context, tx pgx.Tx, buyerID string, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query := `
		DELETE FROM cart_lines
		WHERE buyer_id = $1 AND id = ANY($2)
	`

	tag, err := tx.Exec(ctx, query, buyerID, ids)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("buyer_id", buyerID).
			Int("count", len(ids)).
			Msg("failed to delete cart lines")
		return 0, fmt.Errorf("failed to delete cart lines: %w", err)
	}

	r.logger.Debug().
		Str("buyer_id", buyerID).
		Int64("deleted", tag.RowsAffected()).
		Msg("cart lines deleted")

	return tag.RowsAffected(), nil
}

// collectCartLines drains rows into cart lines.
func collectCartLines(logger zerolog.Logger, rows pgx.Rows) ([]model.CartLine, error) {
	var lines []model.CartLine
	for rows.Next() {
		var line model.CartLine
		if err := scanCartLine(rows, &line); err != nil {
			logger.Error().Err(err).Msg("failed to scan cart line row")
			return nil, fmt.Errorf("failed to scan cart line: %w", err)
		}
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("error iterating cart line rows")
		return nil, fmt.Errorf("error iterating cart lines: %w", err)
	}

	return lines, nil
}

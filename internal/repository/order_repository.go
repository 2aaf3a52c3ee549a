package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/MohitMaulekhi/wkc/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// orderRepository implements the OrderRepository interface using PostgreSQL.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

const orderColumns = `id, buyer_id, buyer_name, buyer_email, seller_id, seller_company, product_id, product_name, product_image, product_sku, quantity, unit_price, total_amount, status, created_at, updated_at`

func scanOrder(row pgx.Row, o *model.Order) error {
	return row.Scan(
		&o.ID,
		&o.BuyerID,
		&o.BuyerName,
		&o.BuyerEmail,
		&o.SellerID,
		&o.SellerCompany,
		&o.ProductID,
		&o.ProductName,
		&o.ProductImage,
		&o.ProductSKU,
		&o.Quantity,
		&o.UnitPrice,
		&o.TotalAmount,
		&o.Status,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
}

// BeginTx starts a new database transaction.
func (r *orderRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// CreateOrders inserts the given orders within the provided transaction.
func (r *orderRepository) CreateOrders(ctx context.Context, tx pgx.Tx, orders []model.Order) error {
	if len(orders) == 0 {
		return nil
	}

	query := `
		INSERT INTO orders (id, buyer_id, buyer_name, buyer_email, seller_id, seller_company, product_id, product_name, product_image, product_sku, quantity, unit_price, total_amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	batch := &pgx.Batch{}
	for _, o := range orders {
		batch.Queue(query,
			o.ID,
			o.BuyerID,
			o.BuyerName,
			o.BuyerEmail,
			o.SellerID,
			o.SellerCompany,
			o.ProductID,
			o.ProductName,
			o.ProductImage,
			o.ProductSKU,
			o.Quantity,
			o.UnitPrice,
			o.TotalAmount,
			o.Status,
			o.CreatedAt,
			o.UpdatedAt,
		)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < len(orders); i++ {
		_, err := results.Exec()
		if err != nil {
			r.logger.Error().
				Err(err).
				Str("order_id", orders[i].ID.String()).
				Str("product_id", orders[i].ProductID).
				Msg("failed to create order")
			return fmt.Errorf("failed to create order: %w", err)
		}
	}

	r.logger.Debug().
		Int("count", len(orders)).
		Msg("orders created successfully")

	return nil
}

// GetByID retrieves an order by its ID.
func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1
	`

	var o model.Order
	err := scanOrder(r.pool.QueryRow(ctx, query, id), &o)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("order_id", id.String()).Msg("order not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to query order")
		return nil, fmt.Errorf("failed to query order: %w", err)
	}

	return &o, nil
}

// GetByBuyer retrieves all orders placed by the buyer, newest first.
func (r *orderRepository) GetByBuyer(ctx context.Context, buyerID string) ([]model.Order, error) {
	return r.getByParty(ctx, "buyer_id", buyerID)
}

// GetBySeller retrieves all orders against the seller, newest first.
func (r *orderRepository) GetBySeller(ctx context.Context, sellerID string) ([]model.Order, error) {
	return r.getByParty(ctx, "seller_id", sellerID)
}

func (r *orderRepository) getByParty(ctx context.Context, column, partyID string) ([]model.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE ` + column + ` = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, partyID)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str(column, partyID).
			Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		var o model.Order
		if err := scanOrder(rows, &o); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order row")
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order rows")
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	return orders, nil
}

// UpdateStatus moves an order between statuses in a single conditional
// write. The expected current status rides in the WHERE clause, so a
// concurrent transition on the same order makes one of the two writes
// affect zero rows instead of silently overwriting.
func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to model.OrderStatus, at time.Time) (bool, error) {
	query := `
		UPDATE orders
		SET status = $3, updated_at = $4
		WHERE id = $1 AND status = $2
	`

	tag, err := r.pool.Exec(ctx, query, id, from, to, at)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", id.String()).
			Str("from", string(from)).
			Str("to", string(to)).
			Msg("failed to update order status")
		return false, fmt.Errorf("failed to update order status: %w", err)
	}

	updated := tag.RowsAffected() == 1
	if updated {
		r.logger.Debug().
			Str("order_id", id.String()).
			Str("from", string(from)).
			Str("to", string(to)).
			Msg("order status updated")
	}

	return updated, nil
}

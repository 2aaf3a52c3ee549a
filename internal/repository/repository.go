package repository

import (
	"context"
	"time"

	"github.com/MohitMaulekhi/wkc/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ProductRepository defines the interface for catalogue data access.
// The order core never writes product fields other than the stock decrement
// used by reserved checkouts; listings are maintained elsewhere.
type ProductRepository interface {
	// GetAll retrieves products matching the filter with pagination support.
	GetAll(ctx context.Context, filter model.ProductFilter, limit, offset int) ([]model.Product, error)

	// GetByID retrieves a single product by its ID. Returns nil when the
	// product does not exist.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// Upsert inserts a product or replaces an existing one. Used by the
	// seed loader.
	Upsert(ctx context.Context, product *model.Product) error

	// DecrementStock conditionally subtracts quantity from a product's
	// stock within the provided transaction. Returns false when the product
	// is missing or has insufficient stock; the row is left unchanged.
	DecrementStock(ctx context.Context, tx pgx.Tx, productID string, quantity int) (bool, error)
}

// CartRepository defines the interface for cart line data access. Every
// mutating operation is scoped by buyer so one buyer can never touch
// another's lines.
type CartRepository interface {
	// Insert creates a new cart line. Lines are never merged; adding the
	// same product twice yields two rows.
	Insert(ctx context.Context, line *model.CartLine) error

	// ListByBuyer retrieves all cart lines owned by the buyer.
	ListByBuyer(ctx context.Context, buyerID string) ([]model.CartLine, error)

	// GetByIDs retrieves the buyer's cart lines with the given ids. Lines
	// not owned by the buyer are absent from the result.
	GetByIDs(ctx context.Context, buyerID string, ids []uuid.UUID) ([]model.CartLine, error)

	// UpdateQuantity sets a line's quantity and recomputed total price.
	// Returns false when the line does not exist for this buyer.
	UpdateQuantity(ctx context.Context, buyerID string, id uuid.UUID, quantity int, totalPrice decimal.Decimal) (bool, error)

	// Delete removes a cart line. Deleting a missing line is a no-op.
	Delete(ctx context.Context, buyerID string, id uuid.UUID) error

	// DeleteByIDs removes the buyer's cart lines with the given ids within
	// the provided transaction. Returns the number of rows removed.
	DeleteByIDs(ctx context.Context, tx pgx.Tx, buyerID string, ids []uuid.UUID) (int64, error)
}

// OrderRepository defines the interface for the order ledger. Orders are
// append-only: nothing besides status and updated_at is written after
// creation, and rows are never deleted.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrders inserts the given orders within the provided transaction.
	CreateOrders(ctx context.Context, tx pgx.Tx, orders []model.Order) error

	// GetByID retrieves an order by its ID. Returns nil when the order does
	// not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// GetByBuyer retrieves all orders placed by the buyer, newest first.
	GetByBuyer(ctx context.Context, buyerID string) ([]model.Order, error)

	// GetBySeller retrieves all orders against the seller, newest first.
	GetBySeller(ctx context.Context, sellerID string) ([]model.Order, error)

	// UpdateStatus moves an order from one status to another in a single
	// conditional write. Returns false when the order is missing or its
	// current status does not match from.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to model.OrderStatus, at time.Time) (bool, error)
}

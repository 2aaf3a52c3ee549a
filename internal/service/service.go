package service

import (
	"context"

	"github.com/MohitMaulekhi/wkc/internal/model"

	"github.com/google/uuid"
)

// ProductService defines read-only catalogue operations.
type ProductService interface {
	// GetAll retrieves products matching the filter with pagination.
	GetAll(ctx context.Context, filter model.ProductFilter, limit, offset int) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)
}

// CartService defines operations on a buyer's cart lines.
type CartService interface {
	// AddLine snapshots a product into a new cart line for the buyer.
	AddLine(ctx context.Context, buyer model.Identity, req *model.AddLineRequest) (*model.CartLine, error)

	// UpdateQuantity changes a line's quantity and recomputes its total.
	UpdateQuantity(ctx context.Context, buyerID string, lineID uuid.UUID, quantity int) (*model.CartLine, error)

	// RemoveLine deletes a cart line. Removing a missing line succeeds.
	RemoveLine(ctx context.Context, buyerID string, lineID uuid.UUID) error

	// ListLines retrieves all of the buyer's cart lines.
	ListLines(ctx context.Context, buyerID string) ([]model.CartLine, error)
}

// CheckoutService converts selected cart lines into orders.
type CheckoutService interface {
	// Checkout creates one pending order per selected cart line and removes
	// the converted lines, atomically.
	Checkout(ctx context.Context, buyer model.Identity, lineIDs []uuid.UUID) ([]uuid.UUID, error)
}

// OrderService defines order queries and the seller-driven status lifecycle.
type OrderService interface {
	// ApplyEvent advances an order's status along the legal transition
	// graph on behalf of its seller.
	ApplyEvent(ctx context.Context, seller model.Identity, orderID uuid.UUID, event model.StatusEvent) (*model.Order, error)

	// GetByID retrieves an order visible to the acting party (its buyer or
	// its seller).
	GetByID(ctx context.Context, actor model.Identity, orderID uuid.UUID) (*model.Order, error)

	// ListForBuyer retrieves the buyer's orders, newest first.
	ListForBuyer(ctx context.Context, buyerID string) ([]model.Order, error)

	// ListForSeller retrieves the seller's orders, newest first.
	ListForSeller(ctx context.Context, sellerID string) ([]model.Order, error)
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MohitMaulekhi/wkc/internal/model"
	"github.com/MohitMaulekhi/wkc/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// checkoutService implements CheckoutService.
type checkoutService struct {
	orderRepo    repository.OrderRepository
	cartRepo     repository.CartRepository
	productRepo  repository.ProductRepository
	reserveStock bool
	logger       zerolog.Logger
}

// NewCheckoutService creates a new checkout service. When reserveStock is
// true, checkouts conditionally decrement product stock inside the same
// transaction that creates the orders.
func NewCheckoutService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	reserveStock bool,
	logger zerolog.Logger,
) CheckoutService {
	return &checkoutService{
		orderRepo:    orderRepo,
		cartRepo:     cartRepo,
		productRepo:  productRepo,
		reserveStock: reserveStock,
		logger:       logger.With().Str("service", "checkout").Logger(),
	}
}

// Checkout converts the buyer's selected cart lines into orders: one pending
// order per line, copying the line's snapshot fields by value. Order
// creation and cart-line deletion happen in a single transaction, so either
// every selected line becomes exactly one order and leaves the cart, or
// nothing changes. A cart line is never deleted without its order committing.
func (s *checkoutService) Checkout(ctx context.Context, buyer model.Identity, lineIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(lineIDs) == 0 {
		return nil, model.ErrEmptySelection
	}

	// Drop duplicate ids while preserving selection order.
	seen := make(map[uuid.UUID]struct{}, len(lineIDs))
	ids := make([]uuid.UUID, 0, len(lineIDs))
	for _, id := range lineIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	lines, err := s.cartRepo.GetByIDs(ctx, buyer.ID, ids)
	if err != nil {
		s.logger.Error().Err(err).Str("buyer_id", buyer.ID).Msg("failed to load selected cart lines")
		return nil, fmt.Errorf("checkout failed: %w", err)
	}
	if len(lines) != len(ids) {
		s.logger.Warn().
			Str("buyer_id", buyer.ID).
			Int("requested", len(ids)).
			Int("found", len(lines)).
			Msg("checkout selection includes unknown cart lines")
		return nil, model.ErrLineNotFound
	}

	now := time.Now().UTC()
	orders := make([]model.Order, len(lines))
	orderIDs := make([]uuid.UUID, len(lines))
	for i, line := range lines {
		quantity := decimal.NewFromInt(int64(line.Quantity))
		orders[i] = model.Order{
			ID:            uuid.New(),
			BuyerID:       buyer.ID,
			BuyerName:     buyer.DisplayName(),
			BuyerEmail:    buyer.Email,
			SellerID:      line.SellerID,
			SellerCompany: line.SellerCompany,
			ProductID:     line.ProductID,
			ProductName:   line.ProductName,
			ProductImage:  line.ProductImage,
			ProductSKU:    line.ProductSKU,
			Quantity:      line.Quantity,
			UnitPrice:     line.UnitPrice,
			TotalAmount:   line.UnitPrice.Mul(quantity),
			Status:        model.StatusPending,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		orderIDs[i] = orders[i].ID
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin checkout transaction")
		return nil, fmt.Errorf("checkout failed: %w", err)
	}

	// Roll back everything staged so far on any error; committed is only
	// reached with orders written and lines removed.
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback checkout transaction")
			}
			s.logger.Error().
				Err(err).
				Str("buyer_id", buyer.ID).
				Strs("order_ids", uuidStrings(orderIDs)).
				Strs("line_ids", uuidStrings(ids)).
				Msg("checkout aborted, cart lines remain")
		}
	}()

	if s.reserveStock {
		for _, line := range lines {
			var ok bool
			ok, err = s.productRepo.DecrementStock(ctx, tx, line.ProductID, line.Quantity)
			if err != nil {
				return nil, fmt.Errorf("checkout failed: %w", err)
			}
			if !ok {
				s.logger.Warn().
					Str("buyer_id", buyer.ID).
					Str("product_id", line.ProductID).
					Int("quantity", line.Quantity).
					Msg("insufficient stock at checkout")
				err = model.ErrInsufficientStock
				return nil, err
			}
		}
	}

	if err = s.orderRepo.CreateOrders(ctx, tx, orders); err != nil {
		return nil, fmt.Errorf("checkout failed: %w", err)
	}

	var deleted int64
	deleted, err = s.cartRepo.DeleteByIDs(ctx, tx, buyer.ID, ids)
	if err != nil {
		return nil, fmt.Errorf("checkout failed: %w", err)
	}
	if deleted != int64(len(ids)) {
		// A selected line vanished after the initial read, most likely a
		// concurrent checkout of the same selection. Committing would
		// double-order it.
		err = model.ErrLineNotFound
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Msg("failed to commit checkout transaction")
		return nil, fmt.Errorf("checkout failed: %w", err)
	}

	s.logger.Info().
		Str("buyer_id", buyer.ID).
		Int("order_count", len(orders)).
		Strs("order_ids", uuidStrings(orderIDs)).
		Msg("checkout completed")

	return orderIDs, nil
}

// uuidStrings renders ids for structured logging.
func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

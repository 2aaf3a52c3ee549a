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

// cartService implements CartService.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "cart").Logger(),
	}
}

// AddLine snapshots a product into a new cart line for the buyer.
//
// The stock check is point-in-time: stock is read once and not reserved, so
// a concurrent buyer can pass the same check for the same last unit. Each
// call inserts an independent line even when the buyer already has the
// product in their cart; lines are deliberately not merged.
func (s *cartService) AddLine(ctx context.Context, buyer model.Identity, req *model.AddLineRequest) (*model.CartLine, error) {
	if req == nil || req.ProductID == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "Product ID is required")
	}
	if req.Quantity < 1 {
		s.logger.Warn().
			Str("product_id", req.ProductID).
			Int("quantity", req.Quantity).
			Msg("invalid quantity")
		return nil, model.ErrInvalidQuantity
	}

	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", req.ProductID).Msg("failed to load product")
		return nil, fmt.Errorf("failed to add cart line: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}

	if req.Quantity > product.Quantity {
		s.logger.Warn().
			Str("product_id", req.ProductID).
			Int("requested", req.Quantity).
			Int("available", product.Quantity).
			Msg("not enough stock for cart line")
		return nil, model.ErrInsufficientStock
	}

	quantity := decimal.NewFromInt(int64(req.Quantity))
	line := &model.CartLine{
		ID:            uuid.New(),
		BuyerID:       buyer.ID,
		ProductID:     product.ID,
		ProductName:   product.Name,
		ProductImage:  product.ImageURL,
		ProductSKU:    product.SKU,
		SellerID:      product.OwnerID,
		SellerCompany: product.CompanyName,
		Quantity:      req.Quantity,
		UnitPrice:     product.Price,
		TotalPrice:    product.Price.Mul(quantity),
		AddedAt:       time.Now().UTC(),
	}

	if err := s.cartRepo.Insert(ctx, line); err != nil {
		s.logger.Error().
			Err(err).
			Str("buyer_id", buyer.ID).
			Str("product_id", product.ID).
			Msg("failed to insert cart line")
		return nil, fmt.Errorf("failed to add cart line: %w", err)
	}

	s.logger.Info().
		Str("line_id", line.ID.String()).
		Str("buyer_id", buyer.ID).
		Str("product_id", product.ID).
		Int("quantity", req.Quantity).
		Msg("cart line added")

	return line, nil
}

// UpdateQuantity changes a line's quantity and recomputes its total price.
// The unit price snapshot is kept; live stock is not re-checked.
func (s *cartService) UpdateQuantity(ctx context.Context, buyerID string, lineID uuid.UUID, quantity int) (*model.CartLine, error) {
	if quantity < 1 {
		s.logger.Warn().
			Str("line_id", lineID.String()).
			Int("quantity", quantity).
			Msg("invalid quantity")
		return nil, model.ErrInvalidQuantity
	}

	lines, err := s.cartRepo.GetByIDs(ctx, buyerID, []uuid.UUID{lineID})
	if err != nil {
		s.logger.Error().Err(err).Str("line_id", lineID.String()).Msg("failed to load cart line")
		return nil, fmt.Errorf("failed to update cart line: %w", err)
	}
	if len(lines) == 0 {
		return nil, model.ErrLineNotFound
	}

	line := lines[0]
	line.Quantity = quantity
	line.TotalPrice = line.UnitPrice.Mul(decimal.NewFromInt(int64(quantity)))

	updated, err := s.cartRepo.UpdateQuantity(ctx, buyerID, lineID, quantity, line.TotalPrice)
	if err != nil {
		s.logger.Error().Err(err).Str("line_id", lineID.String()).Msg("failed to update cart line")
		return nil, fmt.Errorf("failed to update cart line: %w", err)
	}
	if !updated {
		return nil, model.ErrLineNotFound
	}

	s.logger.Debug().
		Str("line_id", lineID.String()).
		Int("quantity", quantity).
		Str("total_price", line.TotalPrice.String()).
		Msg("cart line quantity updated")

	return &line, nil
}

// RemoveLine deletes a cart line. Removing a missing line is a no-op success.
func (s *cartService) RemoveLine(ctx context.Context, buyerID string, lineID uuid.UUID) error {
	if err := s.cartRepo.Delete(ctx, buyerID, lineID); err != nil {
		s.logger.Error().Err(err).Str("line_id", lineID.String()).Msg("failed to remove cart line")
		return fmt.Errorf("failed to remove cart line: %w", err)
	}

	s.logger.Debug().
		Str("line_id", lineID.String()).
		Str("buyer_id", buyerID).
		Msg("cart line removed")

	return nil
}

// ListLines retrieves all of the buyer's cart lines.
func (s *cartService) ListLines(ctx context.Context, buyerID string) ([]model.CartLine, error) {
	lines, err := s.cartRepo.ListByBuyer(ctx, buyerID)
	if err != nil {
		s.logger.Error().Err(err).Str("buyer_id", buyerID).Msg("failed to list cart lines")
		return nil, fmt.Errorf("failed to list cart lines: %w", err)
	}

	return lines, nil
}

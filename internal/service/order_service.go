package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MohitMaulekhi/wkc/internal/model"
	"github.com/MohitMaulekhi/wkc/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo repository.OrderRepository
	logger    zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo repository.OrderRepository, logger zerolog.Logger) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		logger:    logger.With().Str("service", "order").Logger(),
	}
}

// ApplyEvent advances an order's status along the legal transition graph.
// Only the order's seller may transition it. The current status is re-read
// here and carried into a conditional write, so two sessions racing on the
// same order cannot both win; the loser sees INVALID_TRANSITION.
func (s *orderService) ApplyEvent(ctx context.Context, seller model.Identity, orderID uuid.UUID, event model.StatusEvent) (*model.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", orderID.String()).Msg("failed to load order")
		return nil, fmt.Errorf("failed to apply order event: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	if order.SellerID != seller.ID {
		s.logger.Warn().
			Str("order_id", orderID.String()).
			Str("seller_id", seller.ID).
			Msg("status change attempted by non-owning seller")
		return nil, model.ErrForbidden
	}

	next, err := model.NextStatus(order.Status, event)
	if err != nil {
		s.logger.Warn().
			Str("order_id", orderID.String()).
			Str("status", string(order.Status)).
			Str("event", string(event)).
			Msg("illegal status transition")
		return nil, err
	}

	now := time.Now().UTC()
	updated, err := s.orderRepo.UpdateStatus(ctx, orderID, order.Status, next, now)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", orderID.String()).Msg("failed to update order status")
		return nil, fmt.Errorf("failed to apply order event: %w", err)
	}
	if !updated {
		// The status moved between our read and the conditional write.
		s.logger.Warn().
			Str("order_id", orderID.String()).
			Str("expected", string(order.Status)).
			Msg("order status changed concurrently")
		return nil, model.ErrInvalidTransition
	}

	order.Status = next
	order.UpdatedAt = now

	s.logger.Info().
		Str("order_id", orderID.String()).
		Str("event", string(event)).
		Str("status", string(next)).
		Msg("order status updated")

	return order, nil
}

// GetByID retrieves an order for one of its two parties. Anyone else gets
// not-found rather than a confirmation that the order exists.
func (s *orderService) GetByID(ctx context.Context, actor model.Identity, orderID uuid.UUID) (*model.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", orderID.String()).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	if order.BuyerID != actor.ID && order.SellerID != actor.ID {
		s.logger.Warn().
			Str("order_id", orderID.String()).
			Str("actor_id", actor.ID).
			Msg("order access attempted by non-party")
		return nil, model.ErrOrderNotFound
	}

	return order, nil
}

// ListForBuyer retrieves the buyer's orders, newest first.
func (s *orderService) ListForBuyer(ctx context.Context, buyerID string) ([]model.Order, error) {
	orders, err := s.orderRepo.GetByBuyer(ctx, buyerID)
	if err != nil {
		s.logger.Error().Err(err).Str("buyer_id", buyerID).Msg("failed to list buyer orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// ListForSeller retrieves the seller's orders, newest first.
func (s *orderService) ListForSeller(ctx context.Context, sellerID string) ([]model.Order, error) {
	orders, err := s.orderRepo.GetBySeller(ctx, sellerID)
	if err != nil {
		s.logger.Error().Err(err).Str("seller_id", sellerID).Msg("failed to list seller orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

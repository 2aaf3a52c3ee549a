package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MohitMaulekhi/wkc/internal/middleware"
	"github.com/MohitMaulekhi/wkc/internal/model"
	"github.com/MohitMaulekhi/wkc/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// List handles GET /api/orders requests. Sellers see the orders placed
// against them; buyers see the orders they placed.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required", h.logger)
		return
	}

	var (
		orders []model.Order
		err    error
	)
	if ident.UserType == model.RoleSeller {
		orders, err = h.service.ListForSeller(r.Context(), ident.ID)
	} else {
		orders, err = h.service.ListForBuyer(r.Context(), ident.ID)
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve orders", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

// GetByID handles GET /api/orders/{id} requests.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required", h.logger)
		return
	}

	orderID, ok := h.orderIDFromPath(w, r.URL.Path)
	if !ok {
		return
	}

	order, err := h.service.GetByID(r.Context(), ident, orderID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// UpdateStatus handles POST /api/orders/{id}/status requests.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required", h.logger)
		return
	}

	if ident.UserType != model.RoleSeller {
		writeError(w, http.StatusForbidden, "only sellers may change order status", h.logger)
		return
	}

	path := strings.TrimSuffix(r.URL.Path, "/status")
	orderID, ok := h.orderIDFromPath(w, path)
	if !ok {
		return
	}

	var req model.StatusEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	if req.Event == "" {
		writeError(w, http.StatusBadRequest, "event is required", h.logger)
		return
	}

	order, err := h.service.ApplyEvent(r.Context(), ident, orderID, req.Event)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// orderIDFromPath extracts the order id from /api/orders/{id}.
func (h *OrderHandler) orderIDFromPath(w http.ResponseWriter, path string) (uuid.UUID, bool) {
	idStr := strings.TrimPrefix(path, "/api/orders/")
	if idStr == "" || strings.Contains(idStr, "/") {
		writeError(w, http.StatusBadRequest, "order ID is required", h.logger)
		return uuid.Nil, false
	}

	orderID, err := uuid.Parse(idStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order ID format", h.logger)
		return uuid.Nil, false
	}

	return orderID, true
}

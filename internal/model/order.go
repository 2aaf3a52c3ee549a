package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of a placed order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusShipped   OrderStatus = "shipped"
	StatusDelivered OrderStatus = "delivered"
	StatusDeclined  OrderStatus = "declined"
)

// StatusEvent is a seller-initiated action on an order.
type StatusEvent string

const (
	EventConfirm StatusEvent = "confirm"
	EventDecline StatusEvent = "decline"
	EventShip    StatusEvent = "ship"
	EventDeliver StatusEvent = "deliver"
)

// transitions is the complete legal state graph. Anything not listed here
// is rejected; there is no unconfirm or return path.
var transitions = map[OrderStatus]map[StatusEvent]OrderStatus{
	StatusPending: {
		EventConfirm: StatusConfirmed,
		EventDecline: StatusDeclined,
	},
	StatusConfirmed: {
		EventShip: StatusShipped,
	},
	StatusShipped: {
		EventDeliver: StatusDelivered,
	},
}

// NextStatus resolves the status an order moves to when event is applied in
// state from. Returns ErrInvalidTransition for every pair outside the graph.
func NextStatus(from OrderStatus, event StatusEvent) (OrderStatus, error) {
	if next, ok := transitions[from][event]; ok {
		return next, nil
	}
	return "", ErrInvalidTransition
}

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusDeclined:
		return true
	}
	return false
}

// Terminal reports whether no further transitions exist from s.
func (s OrderStatus) Terminal() bool {
	return len(transitions[s]) == 0
}

// Order is the durable record of a single product line committed for
// purchase. Everything except status and updatedAt is immutable after
// creation; cancellation is the declined status, never a deletion.
type Order struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	BuyerID       string          `json:"buyerId" db:"buyer_id"`
	BuyerName     string          `json:"buyerName" db:"buyer_name"`
	BuyerEmail    string          `json:"buyerEmail" db:"buyer_email"`
	SellerID      string          `json:"sellerId" db:"seller_id"`
	SellerCompany string          `json:"sellerCompany" db:"seller_company"`
	ProductID     string          `json:"productId" db:"product_id"`
	ProductName   string          `json:"productName" db:"product_name"`
	ProductImage  string          `json:"productImage,omitempty" db:"product_image"`
	ProductSKU    string          `json:"productSku,omitempty" db:"product_sku"`
	Quantity      int             `json:"quantity" db:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice" db:"unit_price"`
	TotalAmount   decimal.Decimal `json:"totalAmount" db:"total_amount"`
	Status        OrderStatus     `json:"status" db:"status"`
	CreatedAt     time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time       `json:"updatedAt" db:"updated_at"`
}

// CheckoutRequest is the payload for converting selected cart lines into orders.
type CheckoutRequest struct {
	LineIDs []uuid.UUID `json:"lineIds"`
}

// CheckoutResponse lists the orders created by a checkout.
type CheckoutResponse struct {
	OrderIDs []uuid.UUID `json:"orderIds"`
}

// StatusEventRequest is the payload for advancing an order's status.
type StatusEventRequest struct {
	Event StatusEvent `json:"event"`
}

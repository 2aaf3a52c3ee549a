package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartLine represents one buyer's pending intent to order a quantity of one
// product. Product fields are snapshots taken at add time; the unit price is
// deliberately not re-validated against the live catalogue afterwards.
type CartLine struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	BuyerID       string          `json:"buyerId" db:"buyer_id"`
	ProductID     string          `json:"productId" db:"product_id"`
	ProductName   string          `json:"productName" db:"product_name"`
	ProductImage  string          `json:"productImage,omitempty" db:"product_image"`
	ProductSKU    string          `json:"productSku,omitempty" db:"product_sku"`
	SellerID      string          `json:"sellerId" db:"seller_id"`
	SellerCompany string          `json:"sellerCompany" db:"seller_company"`
	Quantity      int             `json:"quantity" db:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice" db:"unit_price"`
	TotalPrice    decimal.Decimal `json:"totalPrice" db:"total_price"`
	AddedAt       time.Time       `json:"addedAt" db:"added_at"`
}

// AddLineRequest is the payload for adding a product to a cart.
type AddLineRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// UpdateQuantityRequest is the payload for changing a cart line's quantity.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// SelectionTotal sums unitPrice * quantity over the given lines.
func SelectionTotal(lines []CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

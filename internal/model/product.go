package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OwnerType identifies which kind of account owns a product listing.
type OwnerType string

const (
	OwnerSeller  OwnerType = "seller"
	OwnerWalmart OwnerType = "walmart"
)

// Product represents a sellable item in the catalogue with its available stock.
type Product struct {
	ID          string          `json:"id" db:"id"`
	OwnerID     string          `json:"ownerId" db:"owner_id"`
	OwnerType   OwnerType       `json:"ownerType" db:"owner_type"`
	CompanyName string          `json:"companyName" db:"company_name"`
	Name        string          `json:"name" db:"name"`
	Description string          `json:"description" db:"description"`
	Category    string          `json:"category" db:"category"`
	SKU         string          `json:"sku" db:"sku"`
	Price       decimal.Decimal `json:"price" db:"price"`
	Quantity    int             `json:"quantity" db:"quantity"`
	ImageURL    string          `json:"imageUrl,omitempty" db:"image_url"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
}

// ProductFilter narrows catalogue listings. Zero values mean no filter.
type ProductFilter struct {
	Category string
	OwnerID  string
}

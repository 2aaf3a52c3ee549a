package repository

import (
	"context"
	"testing"
	"time"

	"github.com/MohitMaulekhi/wkc/internal/database"
	"github.com/MohitMaulekhi/wkc/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB creates a PostgreSQL testcontainer, applies the schema and
// returns a connection pool with the decimal codec registered.
func setupTestDB(t *testing.T) (*pgxpool.Pool, func()) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := database.NewPoolFromURL(ctx, connStr)
	require.NoError(t, err)

	require.NoError(t, database.EnsureSchema(ctx, pool, zerolog.Nop()))

	cleanup := func() {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
	}

	return pool, cleanup
}

// fixtureProduct builds a product row for seeding.
func fixtureProduct(id, ownerID, category string, price float64, quantity int) model.Product {
	return model.Product{
		ID:          id,
		OwnerID:     ownerID,
		OwnerType:   model.OwnerSeller,
		CompanyName: "Acme Supplies",
		Name:        "Widget " + id,
		Description: "A widget",
		Category:    category,
		SKU:         "SKU-" + id,
		Price:       decimal.NewFromFloat(price),
		Quantity:    quantity,
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}
}

// seedProducts inserts test products through the repository's upsert path.
func seedProducts(t *testing.T, pool *pgxpool.Pool, products []model.Product) {
	ctx := context.Background()
	repo := NewProductRepository(pool, zerolog.Nop())
	for i := range products {
		require.NoError(t, repo.Upsert(ctx, &products[i]))
	}
}

// fixtureCartLine builds a cart line row for seeding.
func fixtureCartLine(buyerID, productID string, quantity int, unitPrice float64) model.CartLine {
	price := decimal.NewFromFloat(unitPrice)
	return model.CartLine{
		ID:            uuid.New(),
		BuyerID:       buyerID,
		ProductID:     productID,
		ProductName:   "Widget " + productID,
		ProductSKU:    "SKU-" + productID,
		SellerID:      "seller-1",
		SellerCompany: "Acme Supplies",
		Quantity:      quantity,
		UnitPrice:     price,
		TotalPrice:    price.Mul(decimal.NewFromInt(int64(quantity))),
		AddedAt:       time.Now().UTC().Truncate(time.Microsecond),
	}
}

// fixtureOrder builds an order row for seeding.
func fixtureOrder(buyerID, sellerID string, status model.OrderStatus) model.Order {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return model.Order{
		ID:            uuid.New(),
		BuyerID:       buyerID,
		BuyerName:     "Priya Sharma",
		BuyerEmail:    "priya@example.com",
		SellerID:      sellerID,
		SellerCompany: "Acme Supplies",
		ProductID:     "p1",
		ProductName:   "Widget p1",
		Quantity:      2,
		UnitPrice:     decimal.NewFromFloat(10.00),
		TotalAmount:   decimal.NewFromFloat(20.00),
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

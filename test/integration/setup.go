package integration

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/MohitMaulekhi/wkc/internal/database"
	"github.com/MohitMaulekhi/wkc/internal/handler"
	"github.com/MohitMaulekhi/wkc/internal/model"
	"github.com/MohitMaulekhi/wkc/internal/repository"
	"github.com/MohitMaulekhi/wkc/internal/router"
	"github.com/MohitMaulekhi/wkc/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container, applies the schema and
// returns a connection pool with the decimal codec registered.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "failed to start postgres container")

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "failed to get connection string")

	pool, err := database.NewPoolFromURL(ctx, connStr)
	require.NoError(t, err, "failed to create connection pool")

	require.NoError(t, database.EnsureSchema(ctx, pool, zerolog.Nop()))

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// NewTestServer wires the full HTTP stack against the test database, the
// same way the API binary does. Stock reservation at checkout is enabled.
func NewTestServer(testDB *TestDB) http.Handler {
	logger := zerolog.Nop()

	productRepo := repository.NewProductRepository(testDB.Pool, logger)
	cartRepo := repository.NewCartRepository(testDB.Pool, logger)
	orderRepo := repository.NewOrderRepository(testDB.Pool, logger)

	productService := service.NewProductService(productRepo, logger)
	cartService := service.NewCartService(cartRepo, productRepo, logger)
	checkoutService := service.NewCheckoutService(orderRepo, cartRepo, productRepo, true, logger)
	orderService := service.NewOrderService(orderRepo, logger)

	productHandler := handler.NewProductHandler(productService, logger)
	cartHandler := handler.NewCartHandler(cartService, logger)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)

	return router.New(productHandler, cartHandler, checkoutHandler, orderHandler, logger)
}

// testBuyer is the identity most scenarios shop as.
var testBuyer = model.Identity{
	ID:          "buyer-1",
	UserType:    model.RoleWalmart,
	FirstName:   "Priya",
	LastName:    "Sharma",
	Email:       "priya@example.com",
	CompanyName: "Walmart",
}

// testSeller owns the seeded seller products.
var testSeller = model.Identity{
	ID:          "seller-1",
	UserType:    model.RoleSeller,
	FirstName:   "Arun",
	LastName:    "Patel",
	Email:       "arun@example.com",
	CompanyName: "Acme Supplies",
}

// setIdentityHeaders stamps the gateway identity headers onto a request.
func setIdentityHeaders(r *http.Request, ident model.Identity) {
	r.Header.Set("X-User-Id", ident.ID)
	r.Header.Set("X-User-Role", string(ident.UserType))
	r.Header.Set("X-User-Email", ident.Email)
	r.Header.Set("X-User-First-Name", ident.FirstName)
	r.Header.Set("X-User-Last-Name", ident.LastName)
	r.Header.Set("X-User-Company", ident.CompanyName)
}

// SeedProducts inserts a fixed catalogue through the repository's upsert path.
func SeedProducts(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()
	repo := repository.NewProductRepository(pool, zerolog.Nop())

	now := time.Now().UTC().Truncate(time.Microsecond)
	products := []model.Product{
		{ID: "P001", OwnerID: "seller-1", OwnerType: model.OwnerSeller, CompanyName: "Acme Supplies", Name: "Steel Bolt Pack", Category: "Hardware", SKU: "SKU-P001", Price: decimal.NewFromFloat(10.00), Quantity: 20, CreatedAt: now},
		{ID: "P002", OwnerID: "seller-1", OwnerType: model.OwnerSeller, CompanyName: "Acme Supplies", Name: "Torque Wrench", Category: "Tools", SKU: "SKU-P002", Price: decimal.NewFromFloat(20.00), Quantity: 5, CreatedAt: now},
		{ID: "P003", OwnerID: "seller-2", OwnerType: model.OwnerSeller, CompanyName: "Bolt & Co", Name: "Hex Key Set", Category: "Tools", SKU: "SKU-P003", Price: decimal.NewFromFloat(30.00), Quantity: 8, CreatedAt: now},
		{ID: "P004", OwnerID: "walmart-1", OwnerType: model.OwnerWalmart, CompanyName: "Walmart", Name: "Store Brand Tape", Category: "Office", SKU: "SKU-P004", Price: decimal.NewFromFloat(5.00), Quantity: 100, CreatedAt: now},
		{ID: "P005", OwnerID: "seller-1", OwnerType: model.OwnerSeller, CompanyName: "Acme Supplies", Name: "Single Gasket", Category: "Hardware", SKU: "SKU-P005", Price: decimal.NewFromFloat(2.50), Quantity: 1, CreatedAt: now},
	}

	for i := range products {
		require.NoError(t, repo.Upsert(ctx, &products[i]), "failed to seed product %s", products[i].ID)
	}
}

// CleanupDB clears all data from the test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"orders", "cart_lines", "products"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}

package repository

import (
	"context"
	"testing"

	"github.com/MohitMaulekhi/wkc/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository_GetAll(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	logger := zerolog.Nop()
	repo := NewProductRepository(pool, logger)

	testProducts := []model.Product{
		fixtureProduct("P001", "seller-1", "hardware", 10.00, 5),
		fixtureProduct("P002", "seller-1", "grocery", 20.00, 5),
		fixtureProduct("P003", "seller-2", "hardware", 30.00, 5),
		fixtureProduct("P004", "seller-2", "electronics", 40.00, 5),
		fixtureProduct("P005", "seller-3", "grocery", 50.00, 5),
	}
	seedProducts(t, pool, testProducts)

	tests := []struct {
		name     string
		filter   model.ProductFilter
		limit    int
		offset   int
		expected int
	}{
		{
			name:     "Get all products",
			limit:    10,
			offset:   0,
			expected: 5,
		},
		{
			name:     "Get first page",
			limit:    2,
			offset:   0,
			expected: 2,
		},
		{
			name:     "Get last page",
			limit:    2,
			offset:   4,
			expected: 1,
		},
		{
			name:     "Offset beyond results",
			limit:    10,
			offset:   10,
			expected: 0,
		},
		{
			name:     "Filter by category",
			filter:   model.ProductFilter{Category: "hardware"},
			limit:    10,
			offset:   0,
			expected: 2,
		},
		{
			name:     "Filter by owner",
			filter:   model.ProductFilter{OwnerID: "seller-2"},
			limit:    10,
			offset:   0,
			expected: 2,
		},
		{
			name:     "Filter by category and owner",
			filter:   model.ProductFilter{Category: "hardware", OwnerID: "seller-2"},
			limit:    10,
			offset:   0,
			expected: 1,
		},
		{
			name:     "Filter matches nothing",
			filter:   model.ProductFilter{Category: "toys"},
			limit:    10,
			offset:   0,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()

			products, err := repo.GetAll(ctx, tt.filter, tt.limit, tt.offset)

			require.NoError(t, err)
			assert.Len(t, products, tt.expected)

			// Verify products are ordered by name
			for i := 1; i < len(products); i++ {
				assert.LessOrEqual(t, products[i-1].Name, products[i].Name)
			}
		})
	}
}

func TestProductRepository_GetByID(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	logger := zerolog.Nop()
	repo := NewProductRepository(pool, logger)

	testProduct := fixtureProduct("P001", "seller-1", "hardware", 99.99, 7)
	seedProducts(t, pool, []model.Product{testProduct})

	t.Run("Product exists", func(t *testing.T) {
		ctx := context.Background()

		product, err := repo.GetByID(ctx, "P001")

		require.NoError(t, err)
		require.NotNil(t, product)
		assert.Equal(t, testProduct.ID, product.ID)
		assert.Equal(t, testProduct.OwnerID, product.OwnerID)
		assert.Equal(t, testProduct.OwnerType, product.OwnerType)
		assert.Equal(t, testProduct.Name, product.Name)
		assert.Equal(t, testProduct.SKU, product.SKU)
		assert.True(t, product.Price.Equal(testProduct.Price), "price %s", product.Price)
		assert.Equal(t, testProduct.Quantity, product.Quantity)
	})

	t.Run("Product does not exist", func(t *testing.T) {
		ctx := context.Background()

		product, err := repo.GetByID(ctx, "P999")

		require.NoError(t, err)
		assert.Nil(t, product)
	})
}

func TestProductRepository_Upsert_ReplacesExisting(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	logger := zerolog.Nop()
	repo := NewProductRepository(pool, logger)

	ctx := context.Background()

	original := fixtureProduct("P001", "seller-1", "hardware", 10.00, 5)
	require.NoError(t, repo.Upsert(ctx, &original))

	updated := original
	updated.Name = "Widget P001 v2"
	updated.Price = decimal.NewFromFloat(12.50)
	updated.Quantity = 8
	require.NoError(t, repo.Upsert(ctx, &updated))

	product, err := repo.GetByID(ctx, "P001")
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, "Widget P001 v2", product.Name)
	assert.True(t, product.Price.Equal(decimal.NewFromFloat(12.50)))
	assert.Equal(t, 8, product.Quantity)
}

func TestProductRepository_DecrementStock(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	logger := zerolog.Nop()
	repo := NewProductRepository(pool, logger)

	ctx := context.Background()

	seedProducts(t, pool, []model.Product{fixtureProduct("P001", "seller-1", "hardware", 10.00, 5)})

	t.Run("Sufficient stock", func(t *testing.T) {
		tx, err := pool.Begin(ctx)
		require.NoError(t, err)
		defer tx.Rollback(ctx)

		ok, err := repo.DecrementStock(ctx, tx, "P001", 3)

		require.NoError(t, err)
		assert.True(t, ok)
		require.NoError(t, tx.Commit(ctx))

		product, err := repo.GetByID(ctx, "P001")
		require.NoError(t, err)
		assert.Equal(t, 2, product.Quantity)
	})

	t.Run("Insufficient stock leaves row unchanged", func(t *testing.T) {
		tx, err := pool.Begin(ctx)
		require.NoError(t, err)
		defer tx.Rollback(ctx)

		ok, err := repo.DecrementStock(ctx, tx, "P001", 3)

		require.NoError(t, err)
		assert.False(t, ok)
		require.NoError(t, tx.Commit(ctx))

		product, err := repo.GetByID(ctx, "P001")
		require.NoError(t, err)
		assert.Equal(t, 2, product.Quantity)
	})

	t.Run("Unknown product", func(t *testing.T) {
		tx, err := pool.Begin(ctx)
		require.NoError(t, err)
		defer tx.Rollback(ctx)

		ok, err := repo.DecrementStock(ctx, tx, "P999", 1)

		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestProductRepository_ErrorPaths(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	logger := zerolog.Nop()
	repo := NewProductRepository(pool, logger)

	seedProducts(t, pool, []model.Product{fixtureProduct("P001", "seller-1", "hardware", 10.00, 5)})

	// Close the pool to simulate database errors
	pool.Close()

	t.Run("GetAll with closed pool", func(t *testing.T) {
		ctx := context.Background()
		products, err := repo.GetAll(ctx, model.ProductFilter{}, 10, 0)

		require.Error(t, err)
		assert.Nil(t, products)
	})

	t.Run("GetByID with closed pool", func(t *testing.T) {
		ctx := context.Background()
		product, err := repo.GetByID(ctx, "P001")

		require.Error(t, err)
		assert.Nil(t, product)
	})

	t.Run("Upsert with closed pool", func(t *testing.T) {
		ctx := context.Background()
		p := fixtureProduct("P002", "seller-1", "hardware", 10.00, 5)
		err := repo.Upsert(ctx, &p)

		require.Error(t, err)
	})
}

package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/MohitMaulekhi/wkc/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// stubLoader is a function-backed Loader for fallback tests.
type stubLoader struct {
	loadFunc func(ctx context.Context, source string) ([]model.Product, error)
}

func (s *stubLoader) Load(ctx context.Context, source string) ([]model.Product, error) {
	if s.loadFunc != nil {
		return s.loadFunc(ctx, source)
	}
	return nil, errors.New("not implemented")
}

func TestFallbackLoader_S3Success(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	s3Products := []model.Product{seedProduct("s3-p1")}
	s3Loader := &stubLoader{
		loadFunc: func(ctx context.Context, source string) ([]model.Product, error) {
			assert.Equal(t, "seed/products.gz", source)
			return s3Products, nil
		},
	}

	fileLoader := &stubLoader{
		loadFunc: func(ctx context.Context, source string) ([]model.Product, error) {
			t.Error("file loader should not be called when S3 succeeds")
			return nil, errors.New("should not be called")
		},
	}

	fallback := NewFallbackLoader(s3Loader, fileLoader, true, logger)

	products, err := fallback.Load(ctx, "seed/products.gz")
	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "s3-p1", products[0].ID)
}

func TestFallbackLoader_S3FailsFallsBackToLocal(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	s3Loader := &stubLoader{
		loadFunc: func(ctx context.Context, source string) ([]model.Product, error) {
			return nil, errors.New("S3 connection failed")
		},
	}

	localProducts := []model.Product{seedProduct("local-p1")}
	fileLoader := &stubLoader{
		loadFunc: func(ctx context.Context, source string) ([]model.Product, error) {
			assert.Equal(t, "seed/products.gz", source)
			return localProducts, nil
		},
	}

	fallback := NewFallbackLoader(s3Loader, fileLoader, true, logger)

	products, err := fallback.Load(ctx, "seed/products.gz")
	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "local-p1", products[0].ID)
}

func TestFallbackLoader_S3Disabled(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	s3Loader := &stubLoader{
		loadFunc: func(ctx context.Context, source string) ([]model.Product, error) {
			t.Error("S3 loader should not be called when S3 is disabled")
			return nil, errors.New("should not be called")
		},
	}

	localProducts := []model.Product{seedProduct("local-p2")}
	fileLoader := &stubLoader{
		loadFunc: func(ctx context.Context, source string) ([]model.Product, error) {
			return localProducts, nil
		},
	}

	fallback := NewFallbackLoader(s3Loader, fileLoader, false, logger)

	products, err := fallback.Load(ctx, "seed/products.gz")
	assert.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestFallbackLoader_S3LoaderNil(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	localProducts := []model.Product{seedProduct("local-p3")}
	fileLoader := &stubLoader{
		loadFunc: func(ctx context.Context, source string) ([]model.Product, error) {
			return localProducts, nil
		},
	}

	fallback := NewFallbackLoader(nil, fileLoader, true, logger)

	products, err := fallback.Load(ctx, "seed/products.gz")
	assert.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestFallbackLoader_BothFail(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	s3Loader := &stubLoader{
		loadFunc: func(ctx context.Context, source string) ([]model.Product, error) {
			return nil, errors.New("S3 error")
		},
	}

	fileLoader := &stubLoader{
		loadFunc: func(ctx context.Context, source string) ([]model.Product, error) {
			return nil, errors.New("file not found")
		},
	}

	fallback := NewFallbackLoader(s3Loader, fileLoader, true, logger)

	products, err := fallback.Load(ctx, "seed/products.gz")
	assert.Error(t, err)
	assert.Nil(t, products)
	assert.Contains(t, err.Error(), "file not found")
}

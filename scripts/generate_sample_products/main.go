package main

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/MohitMaulekhi/wkc/internal/model"

	"github.com/shopspring/decimal"
)

// generateSampleProducts creates a gzipped seed file the catalogue loader
// can ingest on startup, one JSON document per line.
func main() {
	dataDir := "data/products"

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	now := time.Now().UTC()

	products := []model.Product{
		{
			ID:          "hw-bolt-m8",
			OwnerID:     "seller-acme",
			OwnerType:   model.OwnerSeller,
			CompanyName: "Acme Supplies",
			Name:        "M8 Steel Bolt Pack",
			Description: "Pack of 50 zinc-plated M8 bolts",
			Category:    "Hardware",
			SKU:         "ACME-HW-0001",
			Price:       decimal.RequireFromString("9.99"),
			Quantity:    250,
			CreatedAt:   now,
		},
		{
			ID:          "tl-wrench-tq",
			OwnerID:     "seller-acme",
			OwnerType:   model.OwnerSeller,
			CompanyName: "Acme Supplies",
			Name:        "Torque Wrench 1/2in",
			Description: "Click-type torque wrench, 10-150 ft-lb",
			Category:    "Tools",
			SKU:         "ACME-TL-0002",
			Price:       decimal.RequireFromString("42.50"),
			Quantity:    35,
			CreatedAt:   now,
		},
		{
			ID:          "tl-hexkey-set",
			OwnerID:     "seller-boltco",
			OwnerType:   model.OwnerSeller,
			CompanyName: "Bolt & Co",
			Name:        "Hex Key Set",
			Description: "9-piece metric hex key set with holder",
			Category:    "Tools",
			SKU:         "BOLT-TL-0101",
			Price:       decimal.RequireFromString("12.00"),
			Quantity:    80,
			CreatedAt:   now,
		},
		{
			ID:          "of-tape-clear",
			OwnerID:     "walmart-main",
			OwnerType:   model.OwnerWalmart,
			CompanyName: "Walmart",
			Name:        "Clear Packing Tape",
			Description: "48mm x 50m clear packing tape, 6 rolls",
			Category:    "Office",
			SKU:         "WM-OF-2001",
			Price:       decimal.RequireFromString("7.25"),
			Quantity:    500,
			CreatedAt:   now,
		},
		{
			ID:          "of-labels-a4",
			OwnerID:     "walmart-main",
			OwnerType:   model.OwnerWalmart,
			CompanyName: "Walmart",
			Name:        "A4 Shipping Labels",
			Description: "Self-adhesive shipping labels, 100 sheets",
			Category:    "Office",
			SKU:         "WM-OF-2002",
			Price:       decimal.RequireFromString("14.80"),
			Quantity:    120,
			CreatedAt:   now,
		},
	}

	filePath := filepath.Join(dataDir, "products.json.gz")
	if err := createProductFile(filePath, products); err != nil {
		log.Fatalf("Failed to create %s: %v", filePath, err)
	}

	fmt.Printf("Created %s with %d products\n", filePath, len(products))
	fmt.Println("\nPoint the loader at it with:")
	fmt.Println("  SEED_ENABLED=true SEED_SOURCE=" + filePath)
}

func createProductFile(filePath string, products []model.Product) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	gzWriter := gzip.NewWriter(file)
	defer gzWriter.Close()

	encoder := json.NewEncoder(gzWriter)
	for _, p := range products {
		if err := encoder.Encode(p); err != nil {
			return fmt.Errorf("failed to encode product %s: %w", p.ID, err)
		}
	}

	return nil
}

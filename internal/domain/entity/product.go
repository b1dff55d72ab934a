package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product catálogo de productos de la cadena (lado relacional).
type Product struct {
	ID            int
	Name          string
	SKU           string
	Barcode       string
	RetailPrice   decimal.Decimal
	DiscountPrice *decimal.Decimal
	MinStockLevel int
	ReorderPoint  int
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

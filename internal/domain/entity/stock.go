package entity

import "time"

// StockRecord representa las existencias de un producto en una tienda.
// Invariante: QuantityInStock nunca es negativo; toda mutación pasa por el
// ajuste atómico del ledger (nunca read-modify-write).
type StockRecord struct {
	StoreID         int
	ProductID       int
	QuantityInStock int
	LastRestockDate time.Time
	UpdatedAt       time.Time

	// Campos denormalizados para listados (JOIN con stores/products).
	StoreName   string
	ProductName string
	SKU         string
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpdateInventoryRequest ajuste manual de existencias (positivo entrada, negativo salida).
type UpdateInventoryRequest struct {
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes"`
}

// TransferRequest transferencia de existencias entre tiendas.
type TransferRequest struct {
	SourceStoreID int `json:"sourceStoreId"`
	TargetStoreID int `json:"targetStoreId"`
	ProductID     int `json:"productId"`
	Quantity      int `json:"quantity"`
}

// AvailabilityDTO respuesta de consulta de disponibilidad.
type AvailabilityDTO struct {
	Available       bool   `json:"available"`
	QuantityInStock int    `json:"quantityInStock"`
	StoreID         int    `json:"storeId"`
	ProductID       int    `json:"productId"`
	StoreName       string `json:"storeName,omitempty"`
	ProductName     string `json:"productName,omitempty"`
	SKU             string `json:"sku,omitempty"`
}

// AdjustResultDTO resultado de un ajuste del ledger.
type AdjustResultDTO struct {
	StoreID         int `json:"storeId"`
	ProductID       int `json:"productId"`
	QuantityInStock int `json:"quantityInStock"`
}

// InventoryItemDTO existencias de un producto en una tienda para listados.
type InventoryItemDTO struct {
	StoreID         int       `json:"storeId"`
	StoreName       string    `json:"storeName"`
	ProductID       int       `json:"productId"`
	ProductName     string    `json:"productName"`
	SKU             string    `json:"sku"`
	QuantityInStock int       `json:"quantityInStock"`
	LastRestockDate time.Time `json:"lastRestockDate"`
}

// LowStockItemDTO producto bajo su punto de reorden.
type LowStockItemDTO struct {
	StoreID         int             `json:"storeId"`
	StoreName       string          `json:"storeName"`
	ProductID       int             `json:"productId"`
	ProductName     string          `json:"productName"`
	SKU             string          `json:"sku"`
	RetailPrice     decimal.Decimal `json:"retailPrice"`
	QuantityInStock int             `json:"quantityInStock"`
	MinStockLevel   int             `json:"minStockLevel"`
	ReorderPoint    int             `json:"reorderPoint"`
	StockStatus     string          `json:"stockStatus"`
}

// StockTransactionDTO entrada del log de transacciones para listados.
type StockTransactionDTO struct {
	ID              string    `json:"transactionId"`
	StoreID         int       `json:"storeId"`
	StoreName       string    `json:"storeName"`
	ProductID       int       `json:"productId"`
	ProductName     string    `json:"productName"`
	SKU             string    `json:"sku"`
	TransactionType string    `json:"transactionType"`
	Quantity        int       `json:"quantity"`
	TransactionDate time.Time `json:"transactionDate"`
	SourceStoreID   *int      `json:"sourceStoreId,omitempty"`
	SourceStoreName string    `json:"sourceStoreName,omitempty"`
	Notes           string    `json:"notes,omitempty"`
}

// TransferResultDTO resultado de una transferencia entre tiendas.
type TransferResultDTO struct {
	SourceStoreID  int `json:"sourceStoreId"`
	TargetStoreID  int `json:"targetStoreId"`
	ProductID      int `json:"productId"`
	Quantity       int `json:"quantity"`
	SourceQuantity int `json:"sourceQuantityInStock"`
	TargetQuantity int `json:"targetQuantityInStock"`
}

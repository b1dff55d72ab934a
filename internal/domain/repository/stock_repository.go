package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Reservas-api/internal/domain/entity"
)

// LowStockItem resultado crudo del repositorio para un producto bajo mínimos.
type LowStockItem struct {
	StoreID         int
	StoreName       string
	ProductID       int
	ProductName     string
	SKU             string
	RetailPrice     decimal.Decimal
	QuantityInStock int
	MinStockLevel   int
	ReorderPoint    int
	StockStatus     string // Critical, Low, OK (calculado en la consulta)
}

// StockRepository define el puerto del ledger de existencias por tienda+producto.
// ApplyDelta es el único punto de mutación compartido y debe ser atómico a nivel
// de almacenamiento: el check de suficiencia y el decremento ocurren en una sola
// operación condicional, nunca como read-then-write.
type StockRepository interface {
	// Get devuelve nil, nil si el par (tienda, producto) no tiene registro.
	Get(ctx context.Context, storeID, productID int) (*entity.StockRecord, error)

	// ApplyDelta suma delta (con signo) a quantity_in_stock y devuelve la nueva
	// cantidad. Si el delta violaría quantity_in_stock >= 0, o si es negativo y
	// no existe registro, devuelve domain.ErrInsufficientStock sin mutar nada.
	// Un delta positivo sobre un par inexistente crea el registro (upsert atómico).
	ApplyDelta(ctx context.Context, storeID, productID, delta int) (int, error)

	ListAll(ctx context.Context, limit int) ([]*entity.StockRecord, error)
	ListByStore(ctx context.Context, storeID int) ([]*entity.StockRecord, error)
	ListByProduct(ctx context.Context, productID int) ([]*entity.StockRecord, error)
	ListLowStock(ctx context.Context) ([]LowStockItem, error)
}

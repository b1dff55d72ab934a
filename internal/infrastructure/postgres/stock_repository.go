package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Reservas-api/internal/domain"
	"github.com/jhoicas/Reservas-api/internal/domain/entity"
	"github.com/jhoicas/Reservas-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador del ledger. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el registro de existencias de un producto en una tienda.
func (r *StockRepo) Get(ctx context.Context, storeID, productID int) (*entity.StockRecord, error) {
	query := `
		SELECT store_id, product_id, quantity_in_stock, last_restock_date, updated_at
		FROM store_inventory WHERE store_id = $1 AND product_id = $2`
	var s entity.StockRecord
	err := r.q.QueryRow(ctx, query, storeID, productID).Scan(
		&s.StoreID, &s.ProductID, &s.QuantityInStock, &s.LastRestockDate, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// ApplyDelta suma delta a la cantidad con un UPDATE condicional: el WHERE exige
// quantity_in_stock + delta >= 0, de modo que el check de suficiencia y el
// decremento son una sola operación atómica en la fila. Sin fila afectada:
//   - delta negativo -> ErrInsufficientStock (no hay registro o no alcanza)
//   - delta positivo -> primer toque del par; upsert atómico vía ON CONFLICT,
//     que serializa inserciones concurrentes sobre el índice único.
func (r *StockRepo) ApplyDelta(ctx context.Context, storeID, productID, delta int) (int, error) {
	update := `
		UPDATE store_inventory
		SET quantity_in_stock = quantity_in_stock + $3,
		    last_restock_date = CASE WHEN $3 > 0 THEN now() ELSE last_restock_date END,
		    updated_at = now()
		WHERE store_id = $1 AND product_id = $2 AND quantity_in_stock + $3 >= 0
		RETURNING quantity_in_stock`
	var newQty int
	err := r.q.QueryRow(ctx, update, storeID, productID, delta).Scan(&newQty)
	if err == nil {
		return newQty, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("apply stock delta: %w", err)
	}

	if delta < 0 {
		return 0, domain.ErrInsufficientStock
	}

	upsert := `
		INSERT INTO store_inventory (store_id, product_id, quantity_in_stock, stock_date, last_restock_date, updated_at)
		VALUES ($1, $2, $3, now(), now(), now())
		ON CONFLICT (store_id, product_id)
		DO UPDATE SET quantity_in_stock = store_inventory.quantity_in_stock + EXCLUDED.quantity_in_stock,
		              last_restock_date = now(),
		              updated_at = now()
		RETURNING quantity_in_stock`
	if err := r.q.QueryRow(ctx, upsert, storeID, productID, delta).Scan(&newQty); err != nil {
		return 0, fmt.Errorf("upsert stock: %w", err)
	}
	return newQty, nil
}

// ListAll lista existencias de todas las tiendas con datos de tienda y producto.
func (r *StockRepo) ListAll(ctx context.Context, limit int) ([]*entity.StockRecord, error) {
	query := `
		SELECT i.store_id, s.name, i.product_id, p.name, p.sku,
		       i.quantity_in_stock, i.last_restock_date, i.updated_at
		FROM store_inventory i
		JOIN stores s ON s.id = i.store_id
		JOIN products p ON p.id = i.product_id
		WHERE p.is_active
		ORDER BY s.name, p.name
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	return scanStockRows(rows)
}

// ListByStore lista las existencias de una tienda.
func (r *StockRepo) ListByStore(ctx context.Context, storeID int) ([]*entity.StockRecord, error) {
	query := `
		SELECT i.store_id, s.name, i.product_id, p.name, p.sku,
		       i.quantity_in_stock, i.last_restock_date, i.updated_at
		FROM store_inventory i
		JOIN stores s ON s.id = i.store_id
		JOIN products p ON p.id = i.product_id
		WHERE i.store_id = $1 AND p.is_active
		ORDER BY p.name`
	rows, err := r.q.Query(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("list store inventory: %w", err)
	}
	defer rows.Close()
	return scanStockRows(rows)
}

// ListByProduct lista las existencias de un producto en todas las tiendas.
func (r *StockRepo) ListByProduct(ctx context.Context, productID int) ([]*entity.StockRecord, error) {
	query := `
		SELECT i.store_id, s.name, i.product_id, p.name, p.sku,
		       i.quantity_in_stock, i.last_restock_date, i.updated_at
		FROM store_inventory i
		JOIN stores s ON s.id = i.store_id
		JOIN products p ON p.id = i.product_id
		WHERE i.product_id = $1
		ORDER BY s.name`
	rows, err := r.q.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("list product inventory: %w", err)
	}
	defer rows.Close()
	return scanStockRows(rows)
}

func scanStockRows(rows pgx.Rows) ([]*entity.StockRecord, error) {
	var list []*entity.StockRecord
	for rows.Next() {
		var s entity.StockRecord
		if err := rows.Scan(&s.StoreID, &s.StoreName, &s.ProductID, &s.ProductName, &s.SKU,
			&s.QuantityInStock, &s.LastRestockDate, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock record: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// ListLowStock devuelve los productos en o por debajo de su punto de reorden,
// con el estado calculado en la consulta (Critical si está bajo el mínimo).
func (r *StockRepo) ListLowStock(ctx context.Context) ([]repository.LowStockItem, error) {
	query := `
		SELECT i.store_id, s.name, i.product_id, p.name, p.sku, p.retail_price,
		       i.quantity_in_stock, p.min_stock_level, p.reorder_point,
		       CASE
		         WHEN i.quantity_in_stock <= p.min_stock_level THEN 'Critical'
		         WHEN i.quantity_in_stock <= p.reorder_point THEN 'Low'
		         ELSE 'OK'
		       END AS stock_status
		FROM store_inventory i
		JOIN stores s ON s.id = i.store_id
		JOIN products p ON p.id = i.product_id
		WHERE i.quantity_in_stock <= p.reorder_point AND p.is_active
		ORDER BY stock_status, s.name, p.name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()

	var items []repository.LowStockItem
	for rows.Next() {
		var item repository.LowStockItem
		if err := rows.Scan(&item.StoreID, &item.StoreName, &item.ProductID, &item.ProductName,
			&item.SKU, &item.RetailPrice, &item.QuantityInStock,
			&item.MinStockLevel, &item.ReorderPoint, &item.StockStatus); err != nil {
			return nil, fmt.Errorf("scan low stock item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

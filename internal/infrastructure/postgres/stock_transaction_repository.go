package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/Reservas-api/internal/domain/entity"
	"github.com/jhoicas/Reservas-api/internal/domain/repository"
)

var _ repository.StockTransactionRepository = (*StockTransactionRepo)(nil)

// StockTransactionRepo implementación del log de transacciones sobre PostgreSQL (usable con pool o tx).
type StockTransactionRepo struct {
	q Querier
}

// NewStockTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockTransactionRepository(q Querier) *StockTransactionRepo {
	return &StockTransactionRepo{q: q}
}

// Create persiste una transacción del ledger. Append-only: no hay Update ni Delete.
func (r *StockTransactionRepo) Create(ctx context.Context, t *entity.StockTransaction) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	query := `
		INSERT INTO inventory_transactions (id, store_id, product_id, transaction_type, quantity, transaction_date, source_store_id, notes, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	createdBy := (*string)(nil)
	if t.CreatedBy != "" {
		createdBy = &t.CreatedBy
	}
	_, err := r.q.Exec(ctx, query,
		t.ID, t.StoreID, t.ProductID, t.Type, t.Quantity,
		t.TransactionDate, t.SourceStoreID, t.Notes, createdBy,
	)
	if err != nil {
		return fmt.Errorf("create stock transaction: %w", err)
	}
	return nil
}

// ListByStore lista las transacciones de una tienda, más recientes primero.
func (r *StockTransactionRepo) ListByStore(ctx context.Context, storeID, limit int) ([]*entity.StockTransaction, error) {
	query := `
		SELECT t.id, t.store_id, s.name, t.product_id, p.name, p.sku,
		       t.transaction_type, t.quantity, t.transaction_date,
		       t.source_store_id, ss.name, t.notes
		FROM inventory_transactions t
		JOIN stores s ON s.id = t.store_id
		JOIN products p ON p.id = t.product_id
		LEFT JOIN stores ss ON ss.id = t.source_store_id
		WHERE t.store_id = $1
		ORDER BY t.transaction_date DESC
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, storeID, limit)
	if err != nil {
		return nil, fmt.Errorf("list stock transactions: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockTransaction
	for rows.Next() {
		var t entity.StockTransaction
		var sourceName *string
		if err := rows.Scan(&t.ID, &t.StoreID, &t.StoreName, &t.ProductID, &t.ProductName, &t.SKU,
			&t.Type, &t.Quantity, &t.TransactionDate,
			&t.SourceStoreID, &sourceName, &t.Notes); err != nil {
			return nil, fmt.Errorf("scan stock transaction: %w", err)
		}
		if sourceName != nil {
			t.SourceStoreName = *sourceName
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

package repository

import (
	"context"

	"github.com/jhoicas/Reservas-api/internal/domain/entity"
)

// StockTransactionRepository define el puerto del log append-only del ledger.
// Las transacciones se escriben una vez y nunca se actualizan ni borran.
type StockTransactionRepository interface {
	Create(ctx context.Context, tx *entity.StockTransaction) error
	ListByStore(ctx context.Context, storeID, limit int) ([]*entity.StockTransaction, error)
}

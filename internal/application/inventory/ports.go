package inventory

import (
	"context"

	"github.com/jhoicas/Reservas-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el cambio de cantidad y la
// entrada del log se confirmen o descarten juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		txLogRepo repository.StockTransactionRepository,
	) error) error
}

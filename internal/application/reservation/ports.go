package reservation

import (
	"context"

	"github.com/jhoicas/Reservas-api/internal/application/inventory"
	"github.com/jhoicas/Reservas-api/internal/domain/entity"
)

// StockLedger es la vista del ledger de existencias que necesita el motor de
// reservas: consultar disponibilidad y aplicar ajustes con su entrada de log.
// Lo satisface *inventory.UseCase.
type StockLedger interface {
	CheckAvailability(ctx context.Context, storeID, productID int) (inventory.Availability, error)
	Adjust(ctx context.Context, in inventory.AdjustInput) (int, error)
}

// TicketGenerator genera el ticket imprimible de una reserva.
// Lo implementa pdf.MarotoTicketGenerator.
type TicketGenerator interface {
	GenerateTicketPDF(ctx context.Context, r *entity.Reservation) ([]byte, error)
}

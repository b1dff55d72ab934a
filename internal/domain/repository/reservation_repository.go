package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Reservas-api/internal/domain/entity"
)

// ReservationRepository define el puerto de persistencia de reservas (documento).
//
// UpdateStatus es la pieza de concurrencia optimista del motor: la transición
// solo se aplica si el estado actual está en fromStatuses (update condicional).
// Dos llamadas concurrentes sobre la misma reserva no pueden ganar ambas.
type ReservationRepository interface {
	// Insert persiste una reserva nueva. Devuelve domain.ErrDuplicate si el
	// confirmation_code ya existe (índice único).
	Insert(ctx context.Context, r *entity.Reservation) error

	// GetByCode busca por código de confirmación (insensible a mayúsculas;
	// los códigos se guardan en mayúsculas). Devuelve nil, nil si no existe.
	GetByCode(ctx context.Context, code string) (*entity.Reservation, error)

	// UpdateStatus aplica la transición condicional y agrega la entrada al
	// historial en una sola operación. Devuelve false si el documento no
	// estaba en ninguno de los estados de partida (carrera perdida o estado
	// terminal), sin mutar nada.
	UpdateStatus(ctx context.Context, id string, fromStatuses []string, toStatus string, entry entity.StatusEntry) (bool, error)

	// AppendHistory agrega una entrada de historial sin cambiar el estado.
	// Se usa para dejar rastro de compensaciones de stock pendientes.
	AppendHistory(ctx context.Context, id string, entry entity.StatusEntry) error

	// ListActive lista reservas PENDING/CONFIRMED paginadas, opcionalmente
	// filtradas por tienda (storeID 0 = todas). Devuelve también el total.
	ListActive(ctx context.Context, storeID, page, limit int) ([]*entity.Reservation, int64, error)

	// ListByCustomer lista todas las reservas de un cliente relacional.
	ListByCustomer(ctx context.Context, sqlCustomerID int) ([]*entity.Reservation, error)

	// FindExpiredPending devuelve las reservas PENDING con expiry_date anterior
	// a now (candidatas del barrido de expiración).
	FindExpiredPending(ctx context.Context, now time.Time) ([]*entity.Reservation, error)
}

// CustomerRepository define el puerto de persistencia de clientes (documento),
// con unicidad sobre sql_customer_id.
type CustomerRepository interface {
	// GetBySQLCustomerID devuelve nil, nil si no existe.
	GetBySQLCustomerID(ctx context.Context, sqlCustomerID int) (*entity.Customer, error)

	// Save inserta o actualiza por sql_customer_id.
	Save(ctx context.Context, c *entity.Customer) error
}

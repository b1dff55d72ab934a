package reservation

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Reservas-api/internal/domain/entity"
)

// SweepExpired expira las reservas PENDING cuya fecha de expiración ya pasó y
// devuelve cuántas transicionó. Es idempotente: cada reserva transiciona una
// sola vez gracias al update condicional, así que ejecutarlo dos veces seguidas
// (o desde dos instancias a la vez) no duplica compensaciones.
func (uc *UseCase) SweepExpired(ctx context.Context) (int, error) {
	now := time.Now()
	candidates, err := uc.reservationRepo.FindExpiredPending(ctx, now)
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, r := range candidates {
		if uc.expireOne(ctx, r, now) {
			expired++
		}
	}
	if expired > 0 {
		uc.log.Info().Int("expired", expired).Msg("barrido de expiración completado")
	}
	return expired, nil
}

// expireOne intenta la transición PENDING→EXPIRED de una reserva concreta.
// Solo si gana la transición devuelve el stock apartado: un confirm, cancel u
// otro barrido concurrente que llegó antes ya se encargó (o evitó) la
// compensación.
func (uc *UseCase) expireOne(ctx context.Context, r *entity.Reservation, now time.Time) bool {
	ok, err := uc.reservationRepo.UpdateStatus(ctx, r.ID,
		[]string{entity.ReservationStatusPending},
		entity.ReservationStatusExpired,
		entity.StatusEntry{Status: entity.ReservationStatusExpired, Date: now, Comment: "Reserva expirada"})
	if err != nil {
		uc.log.Error().Err(err).Str("reservation_id", r.ID).Msg("transición a EXPIRED fallida")
		return false
	}
	if !ok {
		return false
	}

	uc.compensate(ctx, r, fmt.Sprintf("Devolución por expiración de reserva %s", r.ConfirmationCode))
	return true
}

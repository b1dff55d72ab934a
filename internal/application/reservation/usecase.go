package reservation

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Reservas-api/internal/application/dto"
	"github.com/jhoicas/Reservas-api/internal/application/inventory"
	"github.com/jhoicas/Reservas-api/internal/domain"
	"github.com/jhoicas/Reservas-api/internal/domain/entity"
	"github.com/jhoicas/Reservas-api/internal/domain/repository"
	"github.com/jhoicas/Reservas-api/pkg/logger"
)

const (
	defaultCancelReason = "Cancelled by customer"
	maxCodeAttempts     = 5
)

// UseCase es el motor de ciclo de vida de reservas. Orquesta el apartado de
// stock en el ledger relacional y el documento de reserva en MongoDB.
//
// Orden de creación: primero se descuenta el stock (apartado) y después se
// persiste el documento; si la persistencia falla, se compensa el apartado con
// un Return. Así nunca existe una reserva visible sin su stock apartado.
type UseCase struct {
	reservationRepo repository.ReservationRepository
	customerRepo    repository.CustomerRepository
	productRepo     repository.ProductRepository
	storeRepo       repository.StoreRepository
	ledger          StockLedger
	holdFor         time.Duration
	log             *logger.Logger
}

// NewUseCase construye el motor de reservas. holdFor es la ventana de
// expiración de una reserva PENDING desde su creación.
func NewUseCase(
	reservationRepo repository.ReservationRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	storeRepo repository.StoreRepository,
	ledger StockLedger,
	holdFor time.Duration,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		customerRepo:    customerRepo,
		productRepo:     productRepo,
		storeRepo:       storeRepo,
		ledger:          ledger,
		holdFor:         holdFor,
		log:             log,
	}
}

// Create crea una reserva PENDING apartando stock de forma atómica.
func (uc *UseCase) Create(ctx context.Context, req dto.CreateReservationRequest) (*dto.ReservationCreatedDTO, error) {
	if req.StoreID <= 0 || req.ProductID <= 0 || req.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	store, err := uc.storeRepo.GetByID(ctx, req.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	product, err := uc.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	// Pre-chequeo barato para rechazar pronto; la garantía real la da el
	// decremento condicional del ledger.
	avail, err := uc.ledger.CheckAvailability(ctx, req.StoreID, req.ProductID)
	if err != nil {
		return nil, err
	}
	if avail.QuantityInStock < req.Quantity {
		return nil, domain.ErrInsufficientStock
	}

	uc.touchCustomer(ctx, req.CustomerInfo)

	// Apartado: el decremento y su entrada de log quedan en la misma tx SQL.
	if _, err := uc.ledger.Adjust(ctx, inventory.AdjustInput{
		StoreID:   req.StoreID,
		ProductID: req.ProductID,
		Delta:     -req.Quantity,
		Type:      entity.TransactionTypeSale,
		Notes:     "Apartado por reserva",
	}); err != nil {
		return nil, err
	}

	unitPrice := product.RetailPrice
	if product.DiscountPrice != nil {
		unitPrice = *product.DiscountPrice
	}

	now := time.Now()
	r := &entity.Reservation{
		ID:              uuid.NewString(),
		StoreID:         store.ID,
		StoreName:       store.Name,
		ProductID:       product.ID,
		ProductName:     product.Name,
		ProductSKU:      product.SKU,
		Quantity:        req.Quantity,
		UnitPrice:       unitPrice.InexactFloat64(),
		Status:          entity.ReservationStatusPending,
		ReservationDate: now,
		ExpiryDate:      now.Add(uc.holdFor),
		Notes:           req.Notes,
		StatusHistory: []entity.StatusEntry{
			{Status: entity.ReservationStatusPending, Date: now, Comment: "Reserva creada"},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if ci := req.CustomerInfo; ci != nil {
		if ci.SQLCustomerID > 0 {
			id := ci.SQLCustomerID
			r.SQLCustomerID = &id
		}
		r.CustomerName = ci.Name
		r.CustomerEmail = ci.Email
		r.CustomerPhone = ci.Phone
	}

	// El código de confirmación es único; ante colisión se regenera y se
	// reintenta la inserción.
	var inserted bool
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		r.ConfirmationCode = generateConfirmationCode()
		err = uc.reservationRepo.Insert(ctx, r)
		if err == nil {
			inserted = true
			break
		}
		if !errors.Is(err, domain.ErrDuplicate) {
			break
		}
	}
	if !inserted {
		// Compensación del apartado: la reserva nunca llegó a existir.
		if _, compErr := uc.ledger.Adjust(ctx, inventory.AdjustInput{
			StoreID:   req.StoreID,
			ProductID: req.ProductID,
			Delta:     req.Quantity,
			Type:      entity.TransactionTypeReturn,
			Notes:     "Devolución por fallo al crear la reserva",
		}); compErr != nil {
			uc.log.Error().Err(compErr).
				Int("store_id", req.StoreID).
				Int("product_id", req.ProductID).
				Int("quantity", req.Quantity).
				Msg("compensación de stock fallida tras error de inserción")
		}
		if err == nil {
			err = domain.ErrDuplicate
		}
		return nil, err
	}

	uc.log.Info().
		Str("reservation_id", r.ID).
		Str("confirmation_code", r.ConfirmationCode).
		Int("store_id", r.StoreID).
		Int("product_id", r.ProductID).
		Int("quantity", r.Quantity).
		Msg("reserva creada")

	return &dto.ReservationCreatedDTO{
		ReservationID:    r.ID,
		ConfirmationCode: r.ConfirmationCode,
		Status:           r.Status,
		StoreName:        r.StoreName,
		ProductName:      r.ProductName,
		Quantity:         r.Quantity,
		UnitPrice:        r.UnitPrice,
		TotalPrice:       r.UnitPrice * float64(r.Quantity),
		ExpiryDate:       r.ExpiryDate,
	}, nil
}

// Confirm pasa una reserva PENDING a CONFIRMED. Si la reserva ya superó su
// fecha de expiración, la expira en ese momento (con su compensación de stock)
// y devuelve domain.ErrReservationExpired.
func (uc *UseCase) Confirm(ctx context.Context, code string) (*dto.ReservationStatusDTO, error) {
	r, err := uc.getByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if r.Status != entity.ReservationStatusPending {
		return nil, domain.ErrInvalidTransition
	}

	now := time.Now()
	if r.IsExpired(now) {
		uc.expireOne(ctx, r, now)
		return nil, domain.ErrReservationExpired
	}

	ok, err := uc.reservationRepo.UpdateStatus(ctx, r.ID,
		[]string{entity.ReservationStatusPending},
		entity.ReservationStatusConfirmed,
		entity.StatusEntry{Status: entity.ReservationStatusConfirmed, Date: now, Comment: "Reserva confirmada"})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidTransition
	}

	uc.log.Info().Str("confirmation_code", r.ConfirmationCode).Msg("reserva confirmada")
	return statusDTO(r, entity.ReservationStatusConfirmed), nil
}

// Cancel pasa una reserva PENDING o CONFIRMED a CANCELLED y devuelve el stock
// apartado al ledger (exactamente una compensación por reserva).
func (uc *UseCase) Cancel(ctx context.Context, code, reason string) (*dto.ReservationStatusDTO, error) {
	r, err := uc.getByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if reason == "" {
		reason = defaultCancelReason
	}

	ok, err := uc.reservationRepo.UpdateStatus(ctx, r.ID,
		[]string{entity.ReservationStatusPending, entity.ReservationStatusConfirmed},
		entity.ReservationStatusCancelled,
		entity.StatusEntry{Status: entity.ReservationStatusCancelled, Date: time.Now(), Comment: reason})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidTransition
	}

	// Solo quien gana la transición compensa: el update condicional garantiza
	// un único ganador aunque cancel y barrido corran a la vez.
	uc.compensate(ctx, r, fmt.Sprintf("Devolución por cancelación de reserva %s", r.ConfirmationCode))

	uc.log.Info().
		Str("confirmation_code", r.ConfirmationCode).
		Str("reason", reason).
		Msg("reserva cancelada")
	return statusDTO(r, entity.ReservationStatusCancelled), nil
}

// Complete pasa una reserva PENDING o CONFIRMED a COMPLETED (recogida en
// tienda, posible sin confirmación previa). No toca el ledger: el decremento
// del apartado queda como venta definitiva.
func (uc *UseCase) Complete(ctx context.Context, code string) (*dto.ReservationStatusDTO, error) {
	r, err := uc.getByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	ok, err := uc.reservationRepo.UpdateStatus(ctx, r.ID,
		[]string{entity.ReservationStatusPending, entity.ReservationStatusConfirmed},
		entity.ReservationStatusCompleted,
		entity.StatusEntry{Status: entity.ReservationStatusCompleted, Date: time.Now(), Comment: "Reserva completada"})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidTransition
	}

	uc.log.Info().Str("confirmation_code", r.ConfirmationCode).Msg("reserva completada")
	return statusDTO(r, entity.ReservationStatusCompleted), nil
}

// GetByCode devuelve la reserva completa, con su historial.
func (uc *UseCase) GetByCode(ctx context.Context, code string) (*entity.Reservation, error) {
	return uc.getByCode(ctx, code)
}

// ListActive lista reservas PENDING/CONFIRMED paginadas. Ejecuta antes un
// barrido de expiración para no listar reservas ya vencidas como activas.
func (uc *UseCase) ListActive(ctx context.Context, storeID, page, limit int) (*dto.ActiveReservationsDTO, error) {
	if _, err := uc.SweepExpired(ctx); err != nil {
		uc.log.Warn().Err(err).Msg("barrido de expiración fallido antes de listar activas")
	}
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	list, total, err := uc.reservationRepo.ListActive(ctx, storeID, page, limit)
	if err != nil {
		return nil, err
	}
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return &dto.ActiveReservationsDTO{
		Reservations: list,
		Pagination:   dto.Pagination{Page: page, Limit: limit, Total: total, Pages: pages},
	}, nil
}

// ListByCustomer lista todas las reservas de un cliente relacional, barriendo
// antes las expiradas.
func (uc *UseCase) ListByCustomer(ctx context.Context, sqlCustomerID int) ([]*entity.Reservation, error) {
	if sqlCustomerID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.SweepExpired(ctx); err != nil {
		uc.log.Warn().Err(err).Msg("barrido de expiración fallido antes de listar por cliente")
	}
	return uc.reservationRepo.ListByCustomer(ctx, sqlCustomerID)
}

func (uc *UseCase) getByCode(ctx context.Context, code string) (*entity.Reservation, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domain.ErrInvalidInput
	}
	r, err := uc.reservationRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	return r, nil
}

// touchCustomer crea o refresca el documento de cliente la primera vez que una
// reserva referencia su id relacional. Es best-effort: la reserva puede ser
// anónima y un fallo aquí no debe perder la venta.
func (uc *UseCase) touchCustomer(ctx context.Context, ci *dto.CustomerInfoRequest) {
	if ci == nil || ci.SQLCustomerID <= 0 {
		return
	}
	now := time.Now()
	existing, err := uc.customerRepo.GetBySQLCustomerID(ctx, ci.SQLCustomerID)
	if err != nil {
		uc.log.Warn().Err(err).Int("sql_customer_id", ci.SQLCustomerID).Msg("lectura de cliente fallida")
		return
	}

	c := existing
	if c == nil {
		c = &entity.Customer{
			ID:            uuid.NewString(),
			SQLCustomerID: ci.SQLCustomerID,
			CreatedAt:     now,
		}
	}
	first, last := splitName(ci.Name)
	if first != "" {
		c.FirstName = first
		c.LastName = last
	}
	if ci.Email != "" {
		c.Email = ci.Email
	}
	if ci.Phone != "" {
		c.Phone = ci.Phone
	}
	c.LastActivity = now
	c.UpdatedAt = now

	if err := uc.customerRepo.Save(ctx, c); err != nil {
		uc.log.Warn().Err(err).Int("sql_customer_id", ci.SQLCustomerID).Msg("upsert de cliente fallido")
	}
}

// compensate devuelve al ledger el stock apartado por la reserva. Si la
// devolución falla, deja rastro en el historial para reconciliación manual.
func (uc *UseCase) compensate(ctx context.Context, r *entity.Reservation, notes string) {
	if _, err := uc.ledger.Adjust(ctx, inventory.AdjustInput{
		StoreID:   r.StoreID,
		ProductID: r.ProductID,
		Delta:     r.Quantity,
		Type:      entity.TransactionTypeReturn,
		Notes:     notes,
	}); err != nil {
		uc.log.Error().Err(err).
			Str("reservation_id", r.ID).
			Int("store_id", r.StoreID).
			Int("product_id", r.ProductID).
			Int("quantity", r.Quantity).
			Msg("compensación de stock fallida")
		entry := entity.StatusEntry{
			Status:  r.Status,
			Date:    time.Now(),
			Comment: "Compensación de stock pendiente: " + err.Error(),
		}
		if histErr := uc.reservationRepo.AppendHistory(ctx, r.ID, entry); histErr != nil {
			uc.log.Error().Err(histErr).Str("reservation_id", r.ID).Msg("no se pudo registrar la compensación pendiente")
		}
	}
}

// splitName separa el nombre libre del cliente por el primer espacio: el
// primer token es el nombre y el resto los apellidos.
func splitName(full string) (first, last string) {
	full = strings.TrimSpace(full)
	if full == "" {
		return "", ""
	}
	if i := strings.IndexByte(full, ' '); i >= 0 {
		return full[:i], strings.TrimSpace(full[i+1:])
	}
	return full, ""
}

func statusDTO(r *entity.Reservation, status string) *dto.ReservationStatusDTO {
	return &dto.ReservationStatusDTO{
		ReservationID:    r.ID,
		ConfirmationCode: r.ConfirmationCode,
		Status:           status,
		StoreName:        r.StoreName,
		ProductName:      r.ProductName,
		Quantity:         r.Quantity,
	}
}

// generateConfirmationCode produce un código de 6 caracteres hex en mayúsculas.
// La unicidad la garantiza el índice único de MongoDB, no el generador.
func generateConfirmationCode() string {
	b := make([]byte, 3)
	if _, err := rand.Read(b); err != nil {
		// rand.Read no falla en la práctica; uuid como último recurso.
		return strings.ToUpper(uuid.NewString()[:6])
	}
	return strings.ToUpper(hex.EncodeToString(b))
}

package reservation_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Reservas-api/internal/application/dto"
	"github.com/jhoicas/Reservas-api/internal/application/inventory"
	"github.com/jhoicas/Reservas-api/internal/application/reservation"
	"github.com/jhoicas/Reservas-api/internal/domain"
	"github.com/jhoicas/Reservas-api/internal/domain/entity"
	"github.com/jhoicas/Reservas-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
//
// fakeLedger replica la semántica del ledger real: un ajuste negativo que
// dejaría la cantidad bajo cero falla con ErrInsufficientStock sin mutar.
// fakeReservationRepo replica la concurrencia optimista de UpdateStatus: la
// transición solo gana si el estado actual está en fromStatuses.
// ──────────────────────────────────────────────────────────────────────────────

type ledgerPair struct{ store, product int }

type fakeLedger struct {
	mu      sync.Mutex
	qty     map[ledgerPair]int
	adjusts []inventory.AdjustInput
	// failAdjustType fuerza error en los ajustes de ese tipo (p.ej. Return).
	failAdjustType string
}

func (f *fakeLedger) CheckAvailability(_ context.Context, storeID, productID int) (inventory.Availability, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	q := f.qty[ledgerPair{storeID, productID}]
	return inventory.Availability{Available: q > 0, QuantityInStock: q}, nil
}

func (f *fakeLedger) Adjust(_ context.Context, in inventory.AdjustInput) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAdjustType != "" && in.Type == f.failAdjustType {
		return 0, errors.New("conexión al ledger perdida")
	}
	p := ledgerPair{in.StoreID, in.ProductID}
	if in.Delta < 0 && f.qty[p]+in.Delta < 0 {
		return 0, domain.ErrInsufficientStock
	}
	f.qty[p] += in.Delta
	f.adjusts = append(f.adjusts, in)
	return f.qty[p], nil
}

// countAdjusts cuenta los ajustes registrados de un tipo.
func (f *fakeLedger) countAdjusts(txType string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, a := range f.adjusts {
		if a.Type == txType {
			n++
		}
	}
	return n
}

type fakeReservationRepo struct {
	mu   sync.Mutex
	docs map[string]*entity.Reservation // por id

	// duplicateFirstN fuerza ErrDuplicate en las primeras N inserciones.
	duplicateFirstN int
	// insertErr fuerza un error permanente de inserción.
	insertErr error
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{docs: make(map[string]*entity.Reservation)}
}

func (f *fakeReservationRepo) Insert(_ context.Context, r *entity.Reservation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return f.insertErr
	}
	if f.duplicateFirstN > 0 {
		f.duplicateFirstN--
		return domain.ErrDuplicate
	}
	for _, existing := range f.docs {
		if existing.ConfirmationCode == strings.ToUpper(r.ConfirmationCode) {
			return domain.ErrDuplicate
		}
	}
	cp := *r
	cp.ConfirmationCode = strings.ToUpper(r.ConfirmationCode)
	f.docs[cp.ID] = &cp
	return nil
}

func (f *fakeReservationRepo) GetByCode(_ context.Context, code string) (*entity.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, r := range f.docs {
		if r.ConfirmationCode == code {
			cp := *r
			cp.StatusHistory = append([]entity.StatusEntry(nil), r.StatusHistory...)
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeReservationRepo) UpdateStatus(_ context.Context, id string, fromStatuses []string, toStatus string, entry entity.StatusEntry) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.docs[id]
	if !ok {
		return false, nil
	}
	matched := false
	for _, s := range fromStatuses {
		if r.Status == s {
			matched = true
			break
		}
	}
	if !matched {
		return false, nil
	}
	r.Status = toStatus
	r.StatusHistory = append(r.StatusHistory, entry)
	r.UpdatedAt = entry.Date
	return true, nil
}

func (f *fakeReservationRepo) AppendHistory(_ context.Context, id string, entry entity.StatusEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.docs[id]
	if !ok {
		return domain.ErrNotFound
	}
	r.StatusHistory = append(r.StatusHistory, entry)
	return nil
}

func (f *fakeReservationRepo) ListActive(_ context.Context, storeID, page, limit int) ([]*entity.Reservation, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Reservation
	for _, r := range f.docs {
		if r.Status != entity.ReservationStatusPending && r.Status != entity.ReservationStatusConfirmed {
			continue
		}
		if storeID > 0 && r.StoreID != storeID {
			continue
		}
		cp := *r
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}

func (f *fakeReservationRepo) ListByCustomer(_ context.Context, sqlCustomerID int) ([]*entity.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Reservation
	for _, r := range f.docs {
		if r.SQLCustomerID != nil && *r.SQLCustomerID == sqlCustomerID {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) FindExpiredPending(_ context.Context, now time.Time) ([]*entity.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Reservation
	for _, r := range f.docs {
		if r.Status == entity.ReservationStatusPending && r.ExpiryDate.Before(now) {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

// statusOf lee el estado actual almacenado (no la copia del caller).
func (f *fakeReservationRepo) statusOf(t *testing.T, code string) string {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.docs {
		if r.ConfirmationCode == strings.ToUpper(code) {
			return r.Status
		}
	}
	t.Fatalf("reserva %s no encontrada", code)
	return ""
}

type fakeCustomerRepo struct {
	mu        sync.Mutex
	customers map[int]*entity.Customer
}

func (f *fakeCustomerRepo) GetBySQLCustomerID(_ context.Context, id int) (*entity.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.customers[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCustomerRepo) Save(_ context.Context, c *entity.Customer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *c
	f.customers[c.SQLCustomerID] = &cp
	return nil
}

type fakeProductRepo struct{ product *entity.Product }

func (f *fakeProductRepo) GetByID(_ context.Context, id int) (*entity.Product, error) {
	if f.product != nil && f.product.ID == id {
		cp := *f.product
		return &cp, nil
	}
	return nil, nil
}

type fakeStoreRepo struct{ store *entity.Store }

func (f *fakeStoreRepo) GetByID(_ context.Context, id int) (*entity.Store, error) {
	if f.store != nil && f.store.ID == id {
		cp := *f.store
		return &cp, nil
	}
	return nil, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	testStoreID   = 1
	testProductID = 10
)

type engine struct {
	uc        *reservation.UseCase
	ledger    *fakeLedger
	repo      *fakeReservationRepo
	customers *fakeCustomerRepo
}

func newTestEngine(stockQty int) *engine {
	ledger := &fakeLedger{qty: map[ledgerPair]int{{testStoreID, testProductID}: stockQty}}
	repo := newFakeReservationRepo()
	customers := &fakeCustomerRepo{customers: make(map[int]*entity.Customer)}
	products := &fakeProductRepo{product: &entity.Product{
		ID: testProductID, Name: "Zapatilla Urban Runner", SKU: "SKU-URB-10",
		RetailPrice: decimal.NewFromInt(50), IsActive: true,
	}}
	stores := &fakeStoreRepo{store: &entity.Store{ID: testStoreID, Name: "Tienda Centro"}}
	log := logger.New(logger.Config{Env: "development", Level: "error"})

	uc := reservation.NewUseCase(repo, customers, products, stores, ledger, 24*time.Hour, log)
	return &engine{uc: uc, ledger: ledger, repo: repo, customers: customers}
}

func (e *engine) stock() int {
	e.ledger.mu.Lock()
	defer e.ledger.mu.Unlock()
	return e.ledger.qty[ledgerPair{testStoreID, testProductID}]
}

func (e *engine) create(t *testing.T, qty int) *dto.ReservationCreatedDTO {
	t.Helper()
	out, err := e.uc.Create(context.Background(), dto.CreateReservationRequest{
		StoreID: testStoreID, ProductID: testProductID, Quantity: qty,
	})
	require.NoError(t, err)
	return out
}

// seedPending inserta directamente una reserva con expiración en el pasado,
// emulando una reserva creada hace tiempo (el stock ya está descontado).
func (e *engine) seedPending(t *testing.T, qty int, expiry time.Time) string {
	t.Helper()
	code := strings.ToUpper(uuid.NewString()[:6])
	now := time.Now()
	err := e.repo.Insert(context.Background(), &entity.Reservation{
		ID:               uuid.NewString(),
		StoreID:          testStoreID,
		StoreName:        "Tienda Centro",
		ProductID:        testProductID,
		ProductName:      "Zapatilla Urban Runner",
		Quantity:         qty,
		ConfirmationCode: code,
		Status:           entity.ReservationStatusPending,
		ReservationDate:  now.Add(-48 * time.Hour),
		ExpiryDate:       expiry,
		StatusHistory: []entity.StatusEntry{
			{Status: entity.ReservationStatusPending, Date: now.Add(-48 * time.Hour), Comment: "Reserva creada"},
		},
	})
	require.NoError(t, err)
	return code
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

// Escenario feliz: crear descuenta stock, deja la reserva PENDING y genera un
// código de 6 caracteres en mayúsculas.
func TestCreate_DescuentaStockYQuedaPendiente(t *testing.T) {
	e := newTestEngine(10)

	out := e.create(t, 4)

	assert.Equal(t, entity.ReservationStatusPending, out.Status)
	assert.Len(t, out.ConfirmationCode, 6)
	assert.Equal(t, out.ConfirmationCode, strings.ToUpper(out.ConfirmationCode))
	assert.Equal(t, 6, e.stock(), "el stock debe quedar en 6")
	assert.Equal(t, 200.0, out.TotalPrice, "4 unidades a 50")
	assert.Equal(t, 1, e.ledger.countAdjusts(entity.TransactionTypeSale))
}

// Sin stock suficiente la creación falla sin dejar rastro: ni reserva ni
// cambio en el ledger.
func TestCreate_StockInsuficiente_NoDejaRastro(t *testing.T) {
	e := newTestEngine(2)

	_, err := e.uc.Create(context.Background(), dto.CreateReservationRequest{
		StoreID: testStoreID, ProductID: testProductID, Quantity: 4,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 2, e.stock())
	assert.Empty(t, e.repo.docs)
}

func TestCreate_TiendaInexistente_NotFound(t *testing.T) {
	e := newTestEngine(10)
	_, err := e.uc.Create(context.Background(), dto.CreateReservationRequest{
		StoreID: 99, ProductID: testProductID, Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 10, e.stock())
}

func TestCreate_CantidadNoPositiva_Invalida(t *testing.T) {
	e := newTestEngine(10)
	for _, qty := range []int{0, -2} {
		_, err := e.uc.Create(context.Background(), dto.CreateReservationRequest{
			StoreID: testStoreID, ProductID: testProductID, Quantity: qty,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

// Colisión de código de confirmación: se regenera y reintenta sin duplicar el
// descuento de stock.
func TestCreate_CodigoDuplicado_ReintentaConOtroCodigo(t *testing.T) {
	e := newTestEngine(10)
	e.repo.duplicateFirstN = 2

	out := e.create(t, 3)

	assert.Len(t, out.ConfirmationCode, 6)
	assert.Equal(t, 7, e.stock())
	assert.Equal(t, 1, e.ledger.countAdjusts(entity.TransactionTypeSale),
		"el apartado debe aplicarse una sola vez aunque la inserción se reintente")
}

// Si la persistencia del documento falla definitivamente, el apartado se
// compensa con un Return y el stock vuelve a su valor original.
func TestCreate_FalloDePersistencia_CompensaElApartado(t *testing.T) {
	e := newTestEngine(10)
	e.repo.insertErr = errors.New("mongo no disponible")

	_, err := e.uc.Create(context.Background(), dto.CreateReservationRequest{
		StoreID: testStoreID, ProductID: testProductID, Quantity: 4,
	})
	require.Error(t, err)

	assert.Equal(t, 10, e.stock(), "el stock debe volver a 10 tras la compensación")
	assert.Equal(t, 1, e.ledger.countAdjusts(entity.TransactionTypeSale))
	assert.Equal(t, 1, e.ledger.countAdjusts(entity.TransactionTypeReturn))
}

// La primera reserva con un id de cliente nuevo crea su documento de cliente.
func TestCreate_PrimerContactoCreaCliente(t *testing.T) {
	e := newTestEngine(10)

	_, err := e.uc.Create(context.Background(), dto.CreateReservationRequest{
		StoreID: testStoreID, ProductID: testProductID, Quantity: 1,
		CustomerInfo: &dto.CustomerInfoRequest{
			SQLCustomerID: 77, Name: "Ana Gómez", Email: "ana@example.com",
		},
	})
	require.NoError(t, err)

	c := e.customers.customers[77]
	require.NotNil(t, c, "debe existir el documento de cliente")
	assert.Equal(t, "Ana", c.FirstName)
	assert.Equal(t, "Gómez", c.LastName)
	assert.Equal(t, "ana@example.com", c.Email)
}

// Nombres sin apellido o con espacios sobrantes: el primer token va a FirstName
// y el resto (ya recortado) a LastName.
func TestCreate_NombreDeUnaSolaPalabra(t *testing.T) {
	e := newTestEngine(10)

	_, err := e.uc.Create(context.Background(), dto.CreateReservationRequest{
		StoreID: testStoreID, ProductID: testProductID, Quantity: 1,
		CustomerInfo: &dto.CustomerInfoRequest{
			SQLCustomerID: 78, Name: "  Madonna  ", Email: "m@example.com",
		},
	})
	require.NoError(t, err)

	c := e.customers.customers[78]
	require.NotNil(t, c, "debe existir el documento de cliente")
	assert.Equal(t, "Madonna", c.FirstName)
	assert.Empty(t, c.LastName)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo de vida: confirm / complete / cancel
// ──────────────────────────────────────────────────────────────────────────────

// Escenario completo de venta: create → confirm → complete. El stock descuenta
// una vez en create y no se toca más.
func TestCicloCompleto_CreateConfirmComplete(t *testing.T) {
	e := newTestEngine(10)
	out := e.create(t, 4)

	confirmed, err := e.uc.Confirm(context.Background(), out.ConfirmationCode)
	require.NoError(t, err)
	assert.Equal(t, entity.ReservationStatusConfirmed, confirmed.Status)

	completed, err := e.uc.Complete(context.Background(), out.ConfirmationCode)
	require.NoError(t, err)
	assert.Equal(t, entity.ReservationStatusCompleted, completed.Status)

	assert.Equal(t, 6, e.stock(), "el descuento de create queda como venta definitiva")
	assert.Equal(t, 0, e.ledger.countAdjusts(entity.TransactionTypeReturn))
}

// La recogida puede ocurrir sin confirmación previa: PENDING → COMPLETED.
func TestComplete_DesdePendiente(t *testing.T) {
	e := newTestEngine(10)
	out := e.create(t, 2)

	completed, err := e.uc.Complete(context.Background(), out.ConfirmationCode)
	require.NoError(t, err)
	assert.Equal(t, entity.ReservationStatusCompleted, completed.Status)
	assert.Equal(t, 8, e.stock())
}

// Cancelar devuelve el stock y usa el motivo por defecto si no se indica.
func TestCancel_DevuelveStockConMotivoPorDefecto(t *testing.T) {
	e := newTestEngine(10)
	out := e.create(t, 4)

	cancelled, err := e.uc.Cancel(context.Background(), out.ConfirmationCode, "")
	require.NoError(t, err)
	assert.Equal(t, entity.ReservationStatusCancelled, cancelled.Status)
	assert.Equal(t, 10, e.stock(), "el stock apartado debe volver íntegro")

	r, err := e.uc.GetByCode(context.Background(), out.ConfirmationCode)
	require.NoError(t, err)
	last := r.StatusHistory[len(r.StatusHistory)-1]
	assert.Equal(t, "Cancelled by customer", last.Comment)
}

func TestCancel_ConMotivoExplicito(t *testing.T) {
	e := newTestEngine(10)
	out := e.create(t, 2)

	_, err := e.uc.Cancel(context.Background(), out.ConfirmationCode, "Cliente cambió de opinión")
	require.NoError(t, err)

	r, err := e.uc.GetByCode(context.Background(), out.ConfirmationCode)
	require.NoError(t, err)
	last := r.StatusHistory[len(r.StatusHistory)-1]
	assert.Equal(t, "Cliente cambió de opinión", last.Comment)
}

// También se puede cancelar una reserva ya confirmada.
func TestCancel_DesdeConfirmada_DevuelveStock(t *testing.T) {
	e := newTestEngine(10)
	out := e.create(t, 3)

	_, err := e.uc.Confirm(context.Background(), out.ConfirmationCode)
	require.NoError(t, err)
	_, err = e.uc.Cancel(context.Background(), out.ConfirmationCode, "")
	require.NoError(t, err)

	assert.Equal(t, 10, e.stock())
}

// Inmutabilidad terminal: sobre una reserva CANCELLED ninguna transición
// adicional procede y el stock no se devuelve dos veces.
func TestEstadoTerminal_RechazaTransicionesYNoDuplicaDevolucion(t *testing.T) {
	e := newTestEngine(10)
	out := e.create(t, 4)
	code := out.ConfirmationCode

	_, err := e.uc.Cancel(context.Background(), code, "")
	require.NoError(t, err)

	_, err = e.uc.Cancel(context.Background(), code, "")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "segunda cancelación debe fallar")
	_, err = e.uc.Confirm(context.Background(), code)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	_, err = e.uc.Complete(context.Background(), code)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	assert.Equal(t, 10, e.stock(), "la devolución debe aplicarse exactamente una vez")
	assert.Equal(t, 1, e.ledger.countAdjusts(entity.TransactionTypeReturn))
}

func TestConfirm_CodigoDesconocido_NotFound(t *testing.T) {
	e := newTestEngine(10)
	_, err := e.uc.Confirm(context.Background(), "ZZZZZZ")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El código es insensible a mayúsculas al consultar.
func TestGetByCode_InsensibleAMayusculas(t *testing.T) {
	e := newTestEngine(10)
	out := e.create(t, 1)

	r, err := e.uc.GetByCode(context.Background(), strings.ToLower(out.ConfirmationCode))
	require.NoError(t, err)
	assert.Equal(t, out.ReservationID, r.ID)
	assert.Equal(t, out.ConfirmationCode, r.ConfirmationCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Expiración
// ──────────────────────────────────────────────────────────────────────────────

// Confirmar una reserva vencida la expira en el acto, devuelve el stock y
// responde con el error de expiración.
func TestConfirm_Vencida_ExpiraYDevuelveStock(t *testing.T) {
	e := newTestEngine(6) // 6 en stock; la sembrada ya descontó sus 4 antes
	code := e.seedPending(t, 4, time.Now().Add(-time.Hour))

	_, err := e.uc.Confirm(context.Background(), code)
	assert.ErrorIs(t, err, domain.ErrReservationExpired)

	assert.Equal(t, entity.ReservationStatusExpired, e.repo.statusOf(t, code))
	assert.Equal(t, 10, e.stock(), "las 4 unidades apartadas deben volver")
}

// El barrido expira todas las PENDING vencidas con exactamente una devolución
// por reserva, y un segundo barrido no hace nada (idempotencia).
func TestSweep_ExpiraVencidasUnaSolaVez(t *testing.T) {
	e := newTestEngine(4)
	e.seedPending(t, 2, time.Now().Add(-2*time.Hour))
	e.seedPending(t, 3, time.Now().Add(-time.Minute))
	activeCode := e.seedPending(t, 1, time.Now().Add(time.Hour))

	n, err := e.uc.SweepExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n, "solo las dos vencidas")
	assert.Equal(t, 9, e.stock(), "4 + 2 + 3 devueltas")
	assert.Equal(t, entity.ReservationStatusPending, e.repo.statusOf(t, activeCode))

	n, err = e.uc.SweepExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n, "el segundo barrido no debe encontrar nada")
	assert.Equal(t, 9, e.stock())
	assert.Equal(t, 2, e.ledger.countAdjusts(entity.TransactionTypeReturn))
}

// Si la devolución falla, la reserva queda EXPIRED pero con una marca en el
// historial para reconciliación manual.
func TestSweep_CompensacionFallida_DejaMarcaEnHistorial(t *testing.T) {
	e := newTestEngine(6)
	code := e.seedPending(t, 4, time.Now().Add(-time.Hour))
	e.ledger.failAdjustType = entity.TransactionTypeReturn

	n, err := e.uc.SweepExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	r, err := e.uc.GetByCode(context.Background(), code)
	require.NoError(t, err)
	assert.Equal(t, entity.ReservationStatusExpired, r.Status)
	last := r.StatusHistory[len(r.StatusHistory)-1]
	assert.Contains(t, last.Comment, "Compensación de stock pendiente")
	assert.Equal(t, 6, e.stock(), "el stock no cambió porque la devolución falló")
}

// ──────────────────────────────────────────────────────────────────────────────
// Listados
// ──────────────────────────────────────────────────────────────────────────────

// Listar activas barre primero: una PENDING vencida no aparece como activa y
// su stock vuelve al ledger.
func TestListActive_BarreVencidasAntesDeListar(t *testing.T) {
	e := newTestEngine(10)
	expired := e.seedPending(t, 2, time.Now().Add(-time.Hour))
	active := e.create(t, 3)

	out, err := e.uc.ListActive(context.Background(), 0, 1, 20)
	require.NoError(t, err)

	require.Len(t, out.Reservations, 1)
	assert.Equal(t, active.ConfirmationCode, out.Reservations[0].ConfirmationCode)
	assert.Equal(t, entity.ReservationStatusExpired, e.repo.statusOf(t, expired))
	assert.Equal(t, 9, e.stock(), "10 - 3 apartadas + 2 devueltas")
}

func TestListByCustomer_FiltraPorCliente(t *testing.T) {
	e := newTestEngine(10)
	_, err := e.uc.Create(context.Background(), dto.CreateReservationRequest{
		StoreID: testStoreID, ProductID: testProductID, Quantity: 1,
		CustomerInfo: &dto.CustomerInfoRequest{SQLCustomerID: 42, Name: "Luis Mora"},
	})
	require.NoError(t, err)
	e.create(t, 1) // anónima

	list, err := e.uc.ListByCustomer(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].SQLCustomerID)
	assert.Equal(t, 42, *list[0].SQLCustomerID)
}

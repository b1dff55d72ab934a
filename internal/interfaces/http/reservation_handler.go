package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Reservas-api/internal/application/dto"
	"github.com/jhoicas/Reservas-api/internal/application/reservation"
)

// ReservationHandler maneja las peticiones HTTP del ciclo de vida de reservas.
type ReservationHandler struct {
	uc      *reservation.UseCase
	tickets reservation.TicketGenerator
}

// NewReservationHandler construye el handler.
func NewReservationHandler(uc *reservation.UseCase, tickets reservation.TicketGenerator) *ReservationHandler {
	return &ReservationHandler{uc: uc, tickets: tickets}
}

// Create godoc
// @Summary      Crear reserva
// @Description  Aparta stock de forma atómica y crea la reserva PENDING con su código de confirmación.
// @Tags         reservation
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReservationRequest  true  "storeId, productId, quantity, notes?, customerInfo?"
// @Success      201   {object}  dto.APIResponse
// @Failure      400   {object}  dto.APIResponse
// @Failure      404   {object}  dto.APIResponse
// @Router       /api/reservation [post]
func (h *ReservationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReservationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("reserva creada", out))
}

// GetByCode godoc
// @Summary      Consultar reserva por código
// @Tags         reservation
// @Produce      json
// @Param        code  path  string  true  "Código de confirmación"
// @Success      200   {object}  dto.APIResponse
// @Failure      404   {object}  dto.APIResponse
// @Router       /api/reservation/{code} [get]
func (h *ReservationHandler) GetByCode(c *fiber.Ctx) error {
	r, err := h.uc.GetByCode(c.Context(), c.Params("code"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("", r))
}

// Confirm godoc
// @Summary      Confirmar reserva
// @Description  PENDING→CONFIRMED. Si la reserva ya expiró, la expira (devolviendo el stock) y responde 400.
// @Tags         reservation
// @Produce      json
// @Param        code  path  string  true  "Código de confirmación"
// @Success      200   {object}  dto.APIResponse
// @Failure      400   {object}  dto.APIResponse
// @Failure      404   {object}  dto.APIResponse
// @Router       /api/reservation/{code}/confirm [put]
func (h *ReservationHandler) Confirm(c *fiber.Ctx) error {
	out, err := h.uc.Confirm(c.Context(), c.Params("code"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("reserva confirmada", out))
}

// Cancel godoc
// @Summary      Cancelar reserva
// @Description  PENDING/CONFIRMED→CANCELLED y devuelve el stock apartado al inventario.
// @Tags         reservation
// @Accept       json
// @Produce      json
// @Param        code  path  string                        true   "Código de confirmación"
// @Param        body  body  dto.CancelReservationRequest  false  "reason?"
// @Success      200   {object}  dto.APIResponse
// @Failure      400   {object}  dto.APIResponse
// @Failure      404   {object}  dto.APIResponse
// @Router       /api/reservation/{code}/cancel [put]
func (h *ReservationHandler) Cancel(c *fiber.Ctx) error {
	var in dto.CancelReservationRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
	}
	out, err := h.uc.Cancel(c.Context(), c.Params("code"), in.Reason)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("reserva cancelada", out))
}

// Complete godoc
// @Summary      Completar reserva (recogida en tienda)
// @Description  PENDING/CONFIRMED→COMPLETED. El stock apartado queda como venta definitiva.
// @Tags         reservation
// @Produce      json
// @Param        code  path  string  true  "Código de confirmación"
// @Success      200   {object}  dto.APIResponse
// @Failure      400   {object}  dto.APIResponse
// @Failure      404   {object}  dto.APIResponse
// @Router       /api/reservation/{code}/complete [put]
func (h *ReservationHandler) Complete(c *fiber.Ctx) error {
	out, err := h.uc.Complete(c.Context(), c.Params("code"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("reserva completada", out))
}

// ListActive godoc
// @Summary      Listar reservas activas
// @Description  Reservas PENDING/CONFIRMED paginadas, con barrido de expiración previo.
// @Tags         reservation
// @Produce      json
// @Param        page     query  int  false  "Página (1 por defecto)"
// @Param        limit    query  int  false  "Tamaño de página (20 por defecto, máx 100)"
// @Param        storeId  query  int  false  "Filtrar por tienda"
// @Success      200  {object}  dto.APIResponse
// @Router       /api/reservation/active [get]
func (h *ReservationHandler) ListActive(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	storeID := c.QueryInt("storeId", 0)

	out, err := h.uc.ListActive(c.Context(), storeID, page, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("", out))
}

// ListByCustomer godoc
// @Summary      Listar reservas de un cliente
// @Tags         reservation
// @Produce      json
// @Param        customerId  path  int  true  "Id relacional del cliente"
// @Success      200  {object}  dto.APIResponse
// @Failure      400  {object}  dto.APIResponse
// @Router       /api/reservation/customer/{customerId} [get]
func (h *ReservationHandler) ListByCustomer(c *fiber.Ctx) error {
	customerID, err := c.ParamsInt("customerId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", "customerId inválido"))
	}
	out, err := h.uc.ListByCustomer(c.Context(), customerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("", fiber.Map{"reservations": out, "total": len(out)}))
}

// Ticket godoc
// @Summary      Ticket PDF de la reserva
// @Description  Genera el ticket imprimible con el código de confirmación y su QR.
// @Tags         reservation
// @Produce      application/pdf
// @Param        code  path  string  true  "Código de confirmación"
// @Success      200   {file}    binary
// @Failure      404   {object}  dto.APIResponse
// @Router       /api/reservation/{code}/ticket [get]
func (h *ReservationHandler) Ticket(c *fiber.Ctx) error {
	r, err := h.uc.GetByCode(c.Context(), c.Params("code"))
	if err != nil {
		return respondError(c, err)
	}
	pdfBytes, err := h.tickets.GenerateTicketPDF(c.Context(), r)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="reserva-`+r.ConfirmationCode+`.pdf"`)
	return c.Send(pdfBytes)
}

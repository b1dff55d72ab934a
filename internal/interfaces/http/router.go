package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Reservas-api/internal/application/auth"
	"github.com/jhoicas/Reservas-api/internal/application/inventory"
	"github.com/jhoicas/Reservas-api/internal/application/reservation"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ReservationUC *reservation.UseCase
	InventoryUC   *inventory.UseCase
	AuthUC        *auth.UseCase
	Tickets       reservation.TicketGenerator
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Reservas (público: las usa el cliente final)
	// Las rutas fijas van antes de /:code para que Fiber no las capture como código.
	reservations := api.Group("/reservation")
	reservationHandler := NewReservationHandler(deps.ReservationUC, deps.Tickets)
	reservations.Post("/", reservationHandler.Create)
	reservations.Get("/active", reservationHandler.ListActive)
	reservations.Get("/customer/:customerId", reservationHandler.ListByCustomer)
	reservations.Get("/:code", reservationHandler.GetByCode)
	reservations.Get("/:code/ticket", reservationHandler.Ticket)
	reservations.Put("/:code/confirm", reservationHandler.Confirm)
	reservations.Put("/:code/cancel", reservationHandler.Cancel)
	reservations.Put("/:code/complete", reservationHandler.Complete)

	// Inventario: lecturas públicas, mutaciones con Bearer Token
	inv := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inv.Get("/", inventoryHandler.List)
	inv.Get("/low-stock", inventoryHandler.LowStock)
	inv.Get("/stores/:storeId", inventoryHandler.ByStore)
	inv.Get("/products/:productId", inventoryHandler.ByProduct)
	inv.Get("/availability/:storeId/:productId", inventoryHandler.Availability)
	inv.Get("/transactions/:storeId", inventoryHandler.Transactions)

	protected := inv.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Put("/update/:storeId/:productId", inventoryHandler.Update)
	protected.Post("/transfer", inventoryHandler.Transfer)
}

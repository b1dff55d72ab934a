package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Reservas-api/internal/application/auth"
	"github.com/jhoicas/Reservas-api/internal/application/inventory"
	"github.com/jhoicas/Reservas-api/internal/application/reservation"
	"github.com/jhoicas/Reservas-api/internal/infrastructure/mongodb"
	infrapdf "github.com/jhoicas/Reservas-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Reservas-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Reservas-api/internal/interfaces/http"
	"github.com/jhoicas/Reservas-api/pkg/config"
	"github.com/jhoicas/Reservas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Service: "reservas-api",
		Env:     cfg.App.Env,
		Level:   "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	mongoDB, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a MongoDB")
	}
	defer func() {
		if err := mongodb.Disconnect(context.Background(), mongoDB); err != nil {
			log.Error().Err(err).Msg("desconexión de MongoDB")
		}
	}()

	// Lado relacional: ledger de existencias
	stockRepo := postgres.NewStockRepository(pool)
	stockTxRepo := postgres.NewStockTransactionRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	storeRepo := postgres.NewStoreRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Lado documental: reservas y clientes
	reservationRepo := mongodb.NewReservationRepository(mongoDB)
	customerRepo := mongodb.NewCustomerRepository(mongoDB)
	if err := reservationRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("índices de reservas")
	}
	if err := customerRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("índices de clientes")
	}

	inventoryUC := inventory.NewUseCase(txRunner, stockRepo, stockTxRepo, log)
	reservationUC := reservation.NewUseCase(
		reservationRepo, customerRepo, productRepo, storeRepo,
		inventoryUC,
		time.Duration(cfg.Reservation.HoldHours)*time.Hour,
		log,
	)
	authUC := auth.NewUseCase(userRepo, cfg.JWT, log)
	ticketGenerator := infrapdf.NewMarotoTicketGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Reservas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ReservationUC: reservationUC,
		InventoryUC:   inventoryUC,
		AuthUC:        authUC,
		Tickets:       ticketGenerator,
		JWTSecret:     cfg.JWT.Secret,
	})

	// Barrido periódico de expiración además del barrido perezoso en listados.
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-sweepCtx.Done():
				return
			case <-ticker.C:
				if _, err := reservationUC.SweepExpired(sweepCtx); err != nil {
					log.Error().Err(err).Msg("barrido de expiración")
				}
			}
		}
	}()

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stopSweep()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

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
	"github.com/jhoicas/Restaurante-api/internal/application/usersync"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
	"github.com/jhoicas/Restaurante-api/internal/infrastructure/authgate"
	"github.com/jhoicas/Restaurante-api/internal/infrastructure/memstore"
	"github.com/jhoicas/Restaurante-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Restaurante-api/internal/interfaces/http"
	"github.com/jhoicas/Restaurante-api/pkg/config"
	"github.com/jhoicas/Restaurante-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Proveedor de identidad: API admin remoto si está configurado; si no,
	// el almacén en memoria (modo desarrollo).
	var identityStore repository.IdentityStore
	if cfg.AuthGate.Enabled() {
		identityStore = authgate.NewClient(cfg.AuthGate.BaseURL, cfg.AuthGate.APIKey, cfg.AuthGate.Timeout)
		log.Info().Str("base_url", cfg.AuthGate.BaseURL).Msg("proveedor de identidad remoto")
	} else {
		identityStore = memstore.NewIdentityStore()
		log.Warn().Msg("proveedor de identidad en memoria (solo desarrollo)")
	}

	// Almacén de perfiles: PostgreSQL si está configurado; si no, memoria.
	var profileStore repository.ProfileStore
	if cfg.DB.Enabled() {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		profileStore = postgres.NewProfileRepository(pool)
	} else {
		profileStore = memstore.NewProfileStore()
		log.Warn().Msg("almacén de perfiles en memoria (solo desarrollo)")
	}

	syncUC := usersync.NewSyncUseCase(identityStore, profileStore, log)
	auditUC := usersync.NewAuditUseCase(identityStore, profileStore, cfg.Sync.ListPageSize)
	migrateUC := usersync.NewMigrateUseCase(identityStore, profileStore, cfg.Sync.ListPageSize, log)

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
		Title:    "Restaurante Users API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SyncUC:    syncUC,
		AuditUC:   auditUC,
		MigrateUC: migrateUC,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Restaurante-api/internal/application/usersync"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SyncUC    *usersync.SyncUseCase
	AuditUC   *usersync.AuditUseCase
	MigrateUC *usersync.MigrateUseCase
	JWTSecret string
}

// Router registra las rutas de la API. Toda la gestión de usuarios y las
// herramientas de sincronización requieren Bearer Token con rol ADMIN.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	adminOnly := []fiber.Handler{
		AuthMiddleware(deps.JWTSecret),
		RequireRole(entity.RoleAdmin.String()),
	}

	// Users (protegido, solo ADMIN)
	users := api.Group("/users", adminOnly...)
	userHandler := NewUserHandler(deps.SyncUC)
	users.Post("/", userHandler.Create)
	users.Get("/roles/check", userHandler.CheckRole)
	users.Patch("/:id", userHandler.Update)
	users.Post("/:id/disable", userHandler.Disable)
	users.Post("/:id/enable", userHandler.Enable)

	// Herramientas de sincronización (protegido, solo ADMIN)
	admin := api.Group("/admin/sync", adminOnly...)
	adminHandler := NewAdminHandler(deps.AuditUC, deps.MigrateUC)
	admin.Post("/audit", adminHandler.AuditSync)
	admin.Post("/migrate", adminHandler.Migrate)
}

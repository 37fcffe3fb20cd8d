package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/usersync"
)

// AdminHandler expone la auditoría de sincronización y el backfill de
// perfiles (protegido, solo ADMIN). Ambas operaciones barren los dos
// almacenes completos y se disparan bajo demanda.
type AdminHandler struct {
	audit   *usersync.AuditUseCase
	migrate *usersync.MigrateUseCase
}

// NewAdminHandler construye el handler.
func NewAdminHandler(audit *usersync.AuditUseCase, migrate *usersync.MigrateUseCase) *AdminHandler {
	return &AdminHandler{audit: audit, migrate: migrate}
}

// AuditSync godoc
// @Summary      Auditar la sincronización entre ambos almacenes
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AuditReport
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/admin/sync/audit [post]
func (h *AdminHandler) AuditSync(c *fiber.Ctx) error {
	report, err := h.audit.AuditSync(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "AUDIT_FAILED", Message: err.Error()})
	}
	return c.JSON(report)
}

// Migrate godoc
// @Summary      Backfill de perfiles faltantes desde el proveedor de identidad
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MigrationResult
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/admin/sync/migrate [post]
func (h *AdminHandler) Migrate(c *fiber.Ctx) error {
	result, err := h.migrate.MigrateToProfileStore(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "MIGRATION_FAILED", Message: err.Error()})
	}
	return c.JSON(result)
}

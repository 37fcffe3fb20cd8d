package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/usersync"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// UserHandler maneja las operaciones de gestión de usuarios (protegido,
// solo ADMIN). Cada operación delega en el motor de sincronización de doble
// almacén.
type UserHandler struct {
	uc *usersync.SyncUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usersync.SyncUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Create godoc
// @Summary      Crear usuario
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "email, password, name, role"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" || in.Name == "" || in.Role == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email, password, name y role son requeridos"})
	}
	if len(in.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "password debe tener al menos 8 caracteres"})
	}
	out, err := h.uc.CreateUser(c.UserContext(), in)
	if err != nil {
		return syncErrorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar nombre y/o rol de un usuario
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "UID del usuario"
// @Param        body  body  dto.UpdateUserRequest  true  "name y/o role"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/users/{id} [patch]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	uid := c.Params("id")
	if uid == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	// Validación del llamador: el motor no exige campos, el contrato HTTP sí.
	if in.Name == nil && in.Role == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: domain.ErrEmptyUpdate.Error()})
	}
	out, err := h.uc.UpdateUser(c.UserContext(), uid, in)
	if err != nil {
		return syncErrorResponse(c, err)
	}
	return c.JSON(out)
}

// Disable godoc
// @Summary      Deshabilitar usuario
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "UID del usuario"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id}/disable [post]
func (h *UserHandler) Disable(c *fiber.Ctx) error {
	return h.setDisabled(c, true)
}

// Enable godoc
// @Summary      Habilitar usuario
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "UID del usuario"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id}/enable [post]
func (h *UserHandler) Enable(c *fiber.Ctx) error {
	return h.setDisabled(c, false)
}

func (h *UserHandler) setDisabled(c *fiber.Ctx, disabled bool) error {
	uid := c.Params("id")
	if uid == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var out *dto.UserResponse
	var err error
	if disabled {
		out, err = h.uc.DisableUser(c.UserContext(), uid)
	} else {
		out, err = h.uc.EnableUser(c.UserContext(), uid)
	}
	if err != nil {
		return syncErrorResponse(c, err)
	}
	return c.JSON(out)
}

// CheckRole godoc
// @Summary      Normalizar un rol
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        role  query  string  true  "rol a normalizar"
// @Success      200   {object}  dto.RoleCheckResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/users/roles/check [get]
func (h *UserHandler) CheckRole(c *fiber.Ctx) error {
	input := c.Query("role")
	role, err := entity.ParseRole(input)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ROLE", Message: err.Error()})
	}
	return c.JSON(dto.RoleCheckResponse{Input: input, Role: role.String()})
}

// syncErrorResponse mapea los errores tipados del motor a HTTP. Los fallos
// de escritura (primaria o secundaria) se exponen como 502: el problema está
// en un almacén externo, no en la petición.
func syncErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidRole):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ROLE", Message: err.Error()})
	case errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
	case errors.Is(err, domain.ErrPrimaryWrite):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "PRIMARY_WRITE_FAILED", Message: err.Error()})
	case errors.Is(err, domain.ErrSecondaryWrite):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "SECONDARY_WRITE_FAILED", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

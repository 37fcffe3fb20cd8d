package dto

import "time"

// CreateUserRequest entrada para crear un usuario (el password lo custodia el
// proveedor de identidad; nunca se persiste en el almacén de perfiles).
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Role     string `json:"role" validate:"required"`
}

// UpdateUserRequest actualización parcial: nil = no tocar. Al menos uno de
// los dos campos debe venir presente (validación del handler).
type UpdateUserRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=200"`
	Role *string `json:"role"`
}

// UserResponse salida de un usuario (la vista del almacén de perfiles).
type UserResponse struct {
	UID       string    `json:"uid"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RoleCheckResponse salida de la normalización de un rol.
type RoleCheckResponse struct {
	Input string `json:"input"`
	Role  string `json:"role"`
}

package entity

import (
	"fmt"
	"strings"

	"github.com/jhoicas/Restaurante-api/internal/domain"
)

// Role es el rol de un usuario dentro de la plataforma. La forma canónica
// es MAYÚSCULAS; cualquier otra forma almacenada es un defecto de datos.
type Role string

// Roles válidos del sistema (enum cerrado).
const (
	RoleAdmin   Role = "ADMIN"
	RoleKitchen Role = "KITCHEN"
	RoleWaiter  Role = "WAITER"
)

// DefaultRole se asigna cuando un principal no trae claim de rol (migración
// y auto-reparación de perfiles).
const DefaultRole = RoleWaiter

// ParseRole normaliza una cadena arbitraria a un Role canónico. Acepta
// cualquier casing; rechaza valores fuera del enum. Es pura e idempotente:
// ParseRole(string(r)) == r para todo rol válido r.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(s)) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleKitchen:
		return RoleKitchen, nil
	case RoleWaiter:
		return RoleWaiter, nil
	default:
		return "", fmt.Errorf("%w: rol %q no reconocido (permitidos: ADMIN, KITCHEN, WAITER)", domain.ErrInvalidRole, s)
	}
}

// String implementa fmt.Stringer.
func (r Role) String() string { return string(r) }

// EqualsClaim compara el rol con un claim crudo sin distinguir mayúsculas.
// Tolerancia deliberada para datos legacy; los valores crudos se reportan
// tal cual en la auditoría.
func (r Role) EqualsClaim(claim string) bool {
	return strings.EqualFold(string(r), claim)
}

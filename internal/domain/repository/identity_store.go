package repository

import (
	"context"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// IdentityStore define el puerto hacia el proveedor de identidad (DIP):
// autenticación, claim de rol y bandera enable/disable. Los métodos Get
// devuelven (nil, nil) cuando el principal no existe.
type IdentityStore interface {
	// CreatePrincipal crea el principal; el proveedor asigna el ID.
	CreatePrincipal(ctx context.Context, in entity.NewPrincipal) (*entity.Principal, error)
	GetPrincipal(ctx context.Context, id string) (*entity.Principal, error)
	UpdatePrincipal(ctx context.Context, id string, patch entity.PrincipalPatch) error
	// SetRoleClaim escribe el claim de rol tal cual; la normalización es
	// responsabilidad del llamador.
	SetRoleClaim(ctx context.Context, id, claim string) error
	DeletePrincipal(ctx context.Context, id string) error
	// ListPrincipals devuelve una única página de hasta pageSize principales.
	// Techo de escalabilidad asumido: los registros más allá de la página
	// quedan fuera del barrido (auditoría y migración).
	ListPrincipals(ctx context.Context, pageSize int) ([]entity.Principal, error)
}

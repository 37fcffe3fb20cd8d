package repository

import (
	"context"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// ProfileStore define el puerto hacia el almacén de documentos que guarda el
// perfil desnormalizado consumido por el resto de la plataforma. Get devuelve
// (nil, nil) cuando el perfil no existe.
type ProfileStore interface {
	Get(ctx context.Context, uid string) (*entity.ProfileRecord, error)
	// Set escribe el perfil completo; el almacén estampa CreatedAt/UpdatedAt.
	Set(ctx context.Context, rec *entity.ProfileRecord) error
	// Update aplica solo los campos presentes del patch más UpdatedAt.
	Update(ctx context.Context, uid string, patch entity.ProfilePatch) error
	ScanAll(ctx context.Context) ([]entity.ProfileRecord, error)
}

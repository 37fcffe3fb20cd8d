package usersync

import (
	"context"
	"fmt"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
	"github.com/jhoicas/Restaurante-api/pkg/logger"
)

// MigrateUseCase backfill de una pasada: crea en el almacén de perfiles los
// registros que faltan a partir del proveedor de identidad, normalizando los
// claims de rol en el camino. Idempotente: los uid que ya tienen perfil se
// saltan completos, así que reejecutar tras un fallo parcial solo procesa el
// resto.
type MigrateUseCase struct {
	identity repository.IdentityStore
	profiles repository.ProfileStore
	pageSize int
	log      *logger.Logger
}

// NewMigrateUseCase construye el migrador con el mismo techo de página que
// la auditoría.
func NewMigrateUseCase(identity repository.IdentityStore, profiles repository.ProfileStore, pageSize int, log *logger.Logger) *MigrateUseCase {
	return &MigrateUseCase{identity: identity, profiles: profiles, pageSize: pageSize, log: log}
}

// MigrateToProfileStore recorre la población del proveedor de identidad y
// repara los perfiles faltantes. Continúa ante errores: cada fallo se anota
// como "{uid}: {mensaje}" y se sigue con el siguiente; Migrated solo cuenta
// éxitos.
func (uc *MigrateUseCase) MigrateToProfileStore(ctx context.Context) (*dto.MigrationResult, error) {
	principals, err := uc.identity.ListPrincipals(ctx, uc.pageSize)
	if err != nil {
		return nil, err
	}

	result := &dto.MigrationResult{Errors: []string{}}
	for _, p := range principals {
		if err := uc.migrateOne(ctx, p); err != nil {
			if err == errAlreadyMigrated {
				continue
			}
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", p.ID, err))
			continue
		}
		result.Migrated++
	}

	uc.log.Info().
		Int("migrados", result.Migrated).
		Int("errores", len(result.Errors)).
		Msg("backfill hacia el almacén de perfiles terminado")
	return result, nil
}

// errAlreadyMigrated marca internamente los uid que ya tienen perfil.
var errAlreadyMigrated = fmt.Errorf("ya migrado")

func (uc *MigrateUseCase) migrateOne(ctx context.Context, p entity.Principal) error {
	rec, err := uc.profiles.Get(ctx, p.ID)
	if err != nil {
		return fmt.Errorf("leer perfil: %w", err)
	}
	if rec != nil {
		return errAlreadyMigrated
	}

	// Claim ausente o irreconocible cae al rol por defecto; si la forma
	// canónica difiere de lo almacenado, se corrige el claim en el proveedor.
	role := roleFromClaim(p.RoleClaim)
	if p.RoleClaim != role.String() {
		if err := uc.identity.SetRoleClaim(ctx, p.ID, role.String()); err != nil {
			return fmt.Errorf("normalizar claim de rol: %w", err)
		}
	}

	err = uc.profiles.Set(ctx, &entity.ProfileRecord{
		UID:    p.ID,
		Email:  p.Email,
		Name:   p.DisplayName,
		Role:   role,
		Status: entity.StatusFromDisabled(p.Disabled),
	})
	if err != nil {
		return fmt.Errorf("crear perfil: %w", err)
	}
	return nil
}

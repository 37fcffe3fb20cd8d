package usersync

import (
	"context"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
	"github.com/jhoicas/Restaurante-api/pkg/logger"
)

// SyncUseCase mantiene una misma identidad lógica en dos almacenes sin
// transacción compartida: proveedor de identidad (primario) y almacén de
// perfiles (secundario). Cada operación es una secuencia de dos pasos con
// compensación del primario si el secundario falla. No serializa escrituras
// concurrentes sobre el mismo uid; la deriva resultante la detecta la
// auditoría.
type SyncUseCase struct {
	identity repository.IdentityStore
	profiles repository.ProfileStore
	log      *logger.Logger
}

// NewSyncUseCase construye el motor con ambos puertos inyectados.
func NewSyncUseCase(identity repository.IdentityStore, profiles repository.ProfileStore, log *logger.Logger) *SyncUseCase {
	return &SyncUseCase{identity: identity, profiles: profiles, log: log}
}

// CreateUser crea el principal en el proveedor de identidad, le asigna el
// claim de rol y crea el perfil. Si cualquier paso posterior al primero
// falla, el principal recién creado se elimina (compensación) y se propaga
// el error original. La validación del rol ocurre antes de tocar cualquier
// almacén.
func (uc *SyncUseCase) CreateUser(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	role, err := entity.ParseRole(in.Role)
	if err != nil {
		return nil, err
	}

	var principal *entity.Principal
	var rec *entity.ProfileRecord

	sg := &saga{op: "createUser", log: uc.log, steps: []sagaStep{
		{
			name: "crear principal",
			run: func(ctx context.Context) error {
				p, err := uc.identity.CreatePrincipal(ctx, entity.NewPrincipal{
					Email:       in.Email,
					Password:    in.Password,
					DisplayName: in.Name,
					Disabled:    false,
				})
				if err != nil {
					return err
				}
				principal = p
				return nil
			},
			compensate: func(ctx context.Context) error {
				return uc.identity.DeletePrincipal(ctx, principal.ID)
			},
		},
		{
			name: "asignar claim de rol",
			run: func(ctx context.Context) error {
				return uc.identity.SetRoleClaim(ctx, principal.ID, role.String())
			},
		},
		{
			name: "crear perfil",
			run: func(ctx context.Context) error {
				rec = &entity.ProfileRecord{
					UID:    principal.ID,
					Email:  in.Email,
					Name:   in.Name,
					Role:   role,
					Status: entity.StatusActive,
				}
				return uc.profiles.Set(ctx, rec)
			},
		},
	}}

	if err := sg.execute(ctx); err != nil {
		return nil, err
	}
	return toUserResponse(rec), nil
}

// UpdateUser aplica name y/o role a ambos almacenes. Requiere que el
// principal exista. Si el perfil no existe en el almacén secundario se
// auto-repara creándolo desde la vista actual del proveedor de identidad.
// Si el paso secundario falla se restauran displayName y claim previos.
func (uc *SyncUseCase) UpdateUser(ctx context.Context, uid string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	var role *entity.Role
	if in.Role != nil {
		r, err := entity.ParseRole(*in.Role)
		if err != nil {
			return nil, err
		}
		role = &r
	}

	principal, err := uc.identity.GetPrincipal(ctx, uid)
	if err != nil {
		return nil, err
	}
	if principal == nil {
		return nil, domain.ErrUserNotFound
	}

	// Valores previos para el deshacer del paso primario.
	prevName := principal.DisplayName
	prevClaim := principal.RoleClaim

	sg := &saga{op: "updateUser", log: uc.log, steps: []sagaStep{
		{
			name: "actualizar identidad",
			run: func(ctx context.Context) error {
				if in.Name != nil {
					if err := uc.identity.UpdatePrincipal(ctx, uid, entity.PrincipalPatch{DisplayName: in.Name}); err != nil {
						return err
					}
				}
				if role != nil {
					return uc.identity.SetRoleClaim(ctx, uid, role.String())
				}
				return nil
			},
			compensate: func(ctx context.Context) error {
				if in.Name != nil {
					if err := uc.identity.UpdatePrincipal(ctx, uid, entity.PrincipalPatch{DisplayName: &prevName}); err != nil {
						return err
					}
				}
				if role != nil {
					return uc.identity.SetRoleClaim(ctx, uid, prevClaim)
				}
				return nil
			},
		},
		{
			name: "actualizar perfil",
			run: func(ctx context.Context) error {
				rec, err := uc.profiles.Get(ctx, uid)
				if err != nil {
					return err
				}
				if rec == nil {
					return uc.autoHeal(ctx, principal, in.Name, role, entity.StatusFromDisabled(principal.Disabled))
				}
				return uc.profiles.Update(ctx, uid, entity.ProfilePatch{Name: in.Name, Role: role})
			},
		},
	}}

	if err := sg.execute(ctx); err != nil {
		return nil, err
	}
	return uc.currentProfile(ctx, uid)
}

// DisableUser marca el usuario como deshabilitado en ambos almacenes.
func (uc *SyncUseCase) DisableUser(ctx context.Context, uid string) (*dto.UserResponse, error) {
	return uc.setDisabled(ctx, uid, true)
}

// EnableUser revierte un DisableUser; el resto del estado queda intacto.
func (uc *SyncUseCase) EnableUser(ctx context.Context, uid string) (*dto.UserResponse, error) {
	return uc.setDisabled(ctx, uid, false)
}

// setDisabled escritura doble de la bandera disabled / estado del perfil,
// con la misma forma de saga que el resto de operaciones.
func (uc *SyncUseCase) setDisabled(ctx context.Context, uid string, disabled bool) (*dto.UserResponse, error) {
	principal, err := uc.identity.GetPrincipal(ctx, uid)
	if err != nil {
		return nil, err
	}
	if principal == nil {
		return nil, domain.ErrUserNotFound
	}

	prevDisabled := principal.Disabled
	status := entity.StatusFromDisabled(disabled)
	op := "disableUser"
	if !disabled {
		op = "enableUser"
	}

	sg := &saga{op: op, log: uc.log, steps: []sagaStep{
		{
			name: "actualizar bandera disabled",
			run: func(ctx context.Context) error {
				return uc.identity.UpdatePrincipal(ctx, uid, entity.PrincipalPatch{Disabled: &disabled})
			},
			compensate: func(ctx context.Context) error {
				return uc.identity.UpdatePrincipal(ctx, uid, entity.PrincipalPatch{Disabled: &prevDisabled})
			},
		},
		{
			name: "actualizar estado del perfil",
			run: func(ctx context.Context) error {
				rec, err := uc.profiles.Get(ctx, uid)
				if err != nil {
					return err
				}
				if rec == nil {
					// Perfil ausente: se siembra con el estado destino.
					return uc.autoHeal(ctx, principal, nil, nil, status)
				}
				return uc.profiles.Update(ctx, uid, entity.ProfilePatch{Status: &status})
			},
		},
	}}

	if err := sg.execute(ctx); err != nil {
		return nil, err
	}
	return uc.currentProfile(ctx, uid)
}

// autoHeal crea el perfil faltante a partir de la vista actual del proveedor
// de identidad, con los campos entrantes como prioridad: name dado o
// displayName actual, role dado o claim actual (WAITER si no parsea).
func (uc *SyncUseCase) autoHeal(ctx context.Context, principal *entity.Principal, name *string, role *entity.Role, status string) error {
	recName := principal.DisplayName
	if name != nil {
		recName = *name
	}
	recRole := roleFromClaim(principal.RoleClaim)
	if role != nil {
		recRole = *role
	}
	return uc.profiles.Set(ctx, &entity.ProfileRecord{
		UID:    principal.ID,
		Email:  principal.Email,
		Name:   recName,
		Role:   recRole,
		Status: status,
	})
}

func (uc *SyncUseCase) currentProfile(ctx context.Context, uid string) (*dto.UserResponse, error) {
	rec, err := uc.profiles.Get(ctx, uid)
	if err != nil {
		return nil, err
	}
	return toUserResponse(rec), nil
}

// roleFromClaim normaliza un claim crudo; ante claim vacío o irreconocible
// cae al rol por defecto.
func roleFromClaim(claim string) entity.Role {
	r, err := entity.ParseRole(claim)
	if err != nil {
		return entity.DefaultRole
	}
	return r
}

func toUserResponse(rec *entity.ProfileRecord) *dto.UserResponse {
	if rec == nil {
		return nil
	}
	return &dto.UserResponse{
		UID:       rec.UID,
		Email:     rec.Email,
		Name:      rec.Name,
		Role:      rec.Role.String(),
		Status:    rec.Status,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

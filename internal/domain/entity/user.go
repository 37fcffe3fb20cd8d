package entity

import "time"

// Estados del perfil en el almacén de documentos.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Principal es la vista del usuario según el proveedor de identidad:
// autenticación, claim de rol y bandera de deshabilitado.
type Principal struct {
	ID          string // asignado por el proveedor, opaco y estable
	Email       string
	DisplayName string
	RoleClaim   string // claim crudo; se espera un Role canónico pero no se garantiza
	Disabled    bool
}

// NewPrincipal atributos para crear un principal (el proveedor asigna el ID).
type NewPrincipal struct {
	Email       string
	Password    string
	DisplayName string
	Disabled    bool
}

// PrincipalPatch actualización parcial de un principal; nil = no tocar.
type PrincipalPatch struct {
	DisplayName *string
	Disabled    *bool
}

// ProfileRecord es la vista del usuario según el almacén de documentos:
// el perfil desnormalizado que consume el resto de la plataforma.
type ProfileRecord struct {
	UID       string // debe coincidir con Principal.ID
	Email     string
	Name      string
	Role      Role
	Status    string // active | inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProfilePatch actualización parcial de un perfil; nil = no tocar.
// UpdatedAt lo estampa el almacén en cada Update.
type ProfilePatch struct {
	Name   *string
	Role   *Role
	Status *string
}

// StatusFromDisabled deriva el estado del perfil a partir de la bandera
// del proveedor de identidad (disabled == status "inactive").
func StatusFromDisabled(disabled bool) string {
	if disabled {
		return StatusInactive
	}
	return StatusActive
}

// DisabledFromStatus es la inversa de StatusFromDisabled.
func DisabledFromStatus(status string) bool {
	return status == StatusInactive
}

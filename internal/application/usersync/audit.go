package usersync

import (
	"context"
	"strconv"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// Campos comparados por la auditoría.
const (
	fieldName   = "name"
	fieldRole   = "role"
	fieldStatus = "status"
)

// AuditUseCase compara ambos almacenes completos y reporta la deriva:
// registros presentes en un solo lado y discrepancias de campo en los uid
// compartidos. Es de solo lectura; nunca muta ni repara.
type AuditUseCase struct {
	identity repository.IdentityStore
	profiles repository.ProfileStore
	pageSize int
}

// NewAuditUseCase construye el auditor. pageSize acota el barrido del
// proveedor de identidad (una sola página).
func NewAuditUseCase(identity repository.IdentityStore, profiles repository.ProfileStore, pageSize int) *AuditUseCase {
	return &AuditUseCase{identity: identity, profiles: profiles, pageSize: pageSize}
}

// AuditSync carga la población de ambos almacenes en mapas por uid y calcula
// las tres clases de divergencia. El informe se construye fresco en cada
// llamada; IsConsistent se calcula de las colecciones, no se declara.
func (uc *AuditUseCase) AuditSync(ctx context.Context) (*dto.AuditReport, error) {
	principals, err := uc.identity.ListPrincipals(ctx, uc.pageSize)
	if err != nil {
		return nil, err
	}
	records, err := uc.profiles.ScanAll(ctx)
	if err != nil {
		return nil, err
	}

	byUID := make(map[string]entity.ProfileRecord, len(records))
	for _, rec := range records {
		byUID[rec.UID] = rec
	}
	identityUIDs := make(map[string]struct{}, len(principals))

	report := &dto.AuditReport{
		MissingInProfileStore:  []dto.MissingRecord{},
		MissingInIdentityStore: []dto.MissingRecord{},
		Inconsistencies:        []dto.Inconsistency{},
	}

	for _, p := range principals {
		identityUIDs[p.ID] = struct{}{}
		rec, ok := byUID[p.ID]
		if !ok {
			report.MissingInProfileStore = append(report.MissingInProfileStore, dto.MissingRecord{
				UID: p.ID, Email: p.Email, Name: p.DisplayName,
			})
			continue
		}
		report.Inconsistencies = append(report.Inconsistencies, comparePair(p, rec)...)
	}

	for _, rec := range records {
		if _, ok := identityUIDs[rec.UID]; !ok {
			report.MissingInIdentityStore = append(report.MissingInIdentityStore, dto.MissingRecord{
				UID: rec.UID, Email: rec.Email, Name: rec.Name,
			})
		}
	}

	report.Summary = dto.AuditSummary{
		TotalIdentity:          len(principals),
		TotalProfile:           len(records),
		MissingInProfileCount:  len(report.MissingInProfileStore),
		MissingInIdentityCount: len(report.MissingInIdentityStore),
		InconsistencyCount:     len(report.Inconsistencies),
		IsConsistent: len(report.MissingInProfileStore) == 0 &&
			len(report.MissingInIdentityStore) == 0 &&
			len(report.Inconsistencies) == 0,
	}
	return report, nil
}

// comparePair discrepancias de campo para un uid presente en ambos lados.
// name se compara exacto; role sin distinguir mayúsculas (tolerancia a datos
// legacy); disabled contra status == "inactive". Se reportan los valores
// crudos almacenados, sin normalizar.
func comparePair(p entity.Principal, rec entity.ProfileRecord) []dto.Inconsistency {
	var out []dto.Inconsistency
	if p.DisplayName != rec.Name {
		out = append(out, dto.Inconsistency{
			UID: p.ID, Field: fieldName,
			IdentityValue: p.DisplayName, ProfileValue: rec.Name,
		})
	}
	if !rec.Role.EqualsClaim(p.RoleClaim) {
		out = append(out, dto.Inconsistency{
			UID: p.ID, Field: fieldRole,
			IdentityValue: p.RoleClaim, ProfileValue: string(rec.Role),
		})
	}
	if p.Disabled != entity.DisabledFromStatus(rec.Status) {
		out = append(out, dto.Inconsistency{
			UID: p.ID, Field: fieldStatus,
			IdentityValue: strconv.FormatBool(p.Disabled), ProfileValue: rec.Status,
		})
	}
	return out
}

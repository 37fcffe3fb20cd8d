package dto

// MissingRecord identifica un usuario presente en un solo almacén.
type MissingRecord struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Inconsistency una discrepancia de campo entre ambos almacenes para un uid
// presente en los dos. Los valores se reportan tal cual fueron almacenados,
// sin normalizar.
type Inconsistency struct {
	UID           string `json:"uid"`
	Field         string `json:"field"`
	IdentityValue string `json:"identity_value"`
	ProfileValue  string `json:"profile_value"`
}

// AuditSummary totales del informe. IsConsistent se calcula: true solo si
// las tres colecciones están vacías.
type AuditSummary struct {
	TotalIdentity          int  `json:"total_identity"`
	TotalProfile           int  `json:"total_profile"`
	MissingInProfileCount  int  `json:"missing_in_profile_count"`
	MissingInIdentityCount int  `json:"missing_in_identity_count"`
	InconsistencyCount     int  `json:"inconsistency_count"`
	IsConsistent           bool `json:"is_consistent"`
}

// AuditReport resultado de una auditoría de sincronización. Se construye
// fresco en cada llamada y no se persiste.
type AuditReport struct {
	MissingInProfileStore  []MissingRecord `json:"missing_in_profile_store"`
	MissingInIdentityStore []MissingRecord `json:"missing_in_identity_store"`
	Inconsistencies        []Inconsistency `json:"inconsistencies"`
	Summary                AuditSummary    `json:"summary"`
}

// MigrationResult resultado del backfill hacia el almacén de perfiles.
// Errors acumula "{uid}: {mensaje}" por cada principal que falló; el barrido
// continúa con el siguiente.
type MigrationResult struct {
	Migrated int      `json:"migrated"`
	Errors   []string `json:"errors"`
}

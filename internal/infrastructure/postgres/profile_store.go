package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var _ repository.ProfileStore = (*ProfileRepo)(nil)

// ProfileRepo implementación del puerto ProfileStore sobre PostgreSQL
// (tabla user_profiles). Los timestamps los estampa la base con now().
type ProfileRepo struct {
	pool *pgxpool.Pool
}

// NewProfileRepository construye el adaptador de persistencia de perfiles.
func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool}
}

// Get obtiene un perfil por uid; (nil, nil) si no existe.
func (r *ProfileRepo) Get(ctx context.Context, uid string) (*entity.ProfileRecord, error) {
	query := `
		SELECT uid, email, name, role, status, created_at, updated_at
		FROM user_profiles WHERE uid = $1`
	var rec entity.ProfileRecord
	err := r.pool.QueryRow(ctx, query, uid).Scan(
		&rec.UID, &rec.Email, &rec.Name, &rec.Role, &rec.Status,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile by uid: %w", err)
	}
	return &rec, nil
}

// Set escribe el perfil completo (upsert); conserva created_at en reescritura
// y devuelve los timestamps estampados en el registro recibido.
func (r *ProfileRepo) Set(ctx context.Context, rec *entity.ProfileRecord) error {
	query := `
		INSERT INTO user_profiles (uid, email, name, role, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())
		ON CONFLICT (uid) DO UPDATE
		SET email = EXCLUDED.email, name = EXCLUDED.name, role = EXCLUDED.role,
		    status = EXCLUDED.status, updated_at = now()
		RETURNING created_at, updated_at`
	err := r.pool.QueryRow(ctx, query,
		rec.UID, rec.Email, rec.Name, string(rec.Role), rec.Status,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("set profile: %w", err)
	}
	return nil
}

// Update aplica solo los campos presentes del patch más updated_at.
func (r *ProfileRepo) Update(ctx context.Context, uid string, patch entity.ProfilePatch) error {
	sets := []string{"updated_at = now()"}
	args := []any{uid}
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Role != nil {
		add("role", string(*patch.Role))
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}

	query := fmt.Sprintf(`UPDATE user_profiles SET %s WHERE uid = $1`, strings.Join(sets, ", "))
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("perfil %s no existe", uid)
	}
	return nil
}

// ScanAll devuelve la colección completa de perfiles.
func (r *ProfileRepo) ScanAll(ctx context.Context) ([]entity.ProfileRecord, error) {
	query := `
		SELECT uid, email, name, role, status, created_at, updated_at
		FROM user_profiles ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("scan profiles: %w", err)
	}
	defer rows.Close()
	var list []entity.ProfileRecord
	for rows.Next() {
		var rec entity.ProfileRecord
		if err := rows.Scan(&rec.UID, &rec.Email, &rec.Name, &rec.Role, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

package memstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// Verificar en tiempo de compilación que ProfileStore implementa el puerto.
var _ repository.ProfileStore = (*ProfileStore)(nil)

// ProfileStore almacén de perfiles en memoria para desarrollo y tests.
// Estampa CreatedAt/UpdatedAt como lo haría el almacén real. Seguro para uso
// concurrente.
type ProfileStore struct {
	mu    sync.RWMutex
	byUID map[string]entity.ProfileRecord
	order []string
	now   func() time.Time
}

// NewProfileStore construye el almacén vacío.
func NewProfileStore() *ProfileStore {
	return &ProfileStore{byUID: make(map[string]entity.ProfileRecord), now: time.Now}
}

// Get devuelve (nil, nil) si el uid no tiene perfil.
func (s *ProfileStore) Get(_ context.Context, uid string) (*entity.ProfileRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.byUID[uid]
	if !ok {
		return nil, nil
	}
	out := rec
	return &out, nil
}

// Set escribe el perfil completo y estampa los timestamps en el registro
// recibido. Sobre un uid existente conserva CreatedAt.
func (s *ProfileStore) Set(_ context.Context, rec *entity.ProfileRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	if prev, ok := s.byUID[rec.UID]; ok {
		rec.CreatedAt = prev.CreatedAt
	} else {
		rec.CreatedAt = now
		s.order = append(s.order, rec.UID)
	}
	rec.UpdatedAt = now
	s.byUID[rec.UID] = *rec
	return nil
}

// Update aplica solo los campos presentes del patch más UpdatedAt.
func (s *ProfileStore) Update(_ context.Context, uid string, patch entity.ProfilePatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.byUID[uid]
	if !ok {
		return fmt.Errorf("perfil %s no existe", uid)
	}
	if patch.Name != nil {
		rec.Name = *patch.Name
	}
	if patch.Role != nil {
		rec.Role = *patch.Role
	}
	if patch.Status != nil {
		rec.Status = *patch.Status
	}
	rec.UpdatedAt = s.now()
	s.byUID[uid] = rec
	return nil
}

// ScanAll devuelve la colección completa en orden de creación.
func (s *ProfileStore) ScanAll(_ context.Context) ([]entity.ProfileRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.ProfileRecord, 0, len(s.order))
	for _, uid := range s.order {
		out = append(out, s.byUID[uid])
	}
	return out, nil
}

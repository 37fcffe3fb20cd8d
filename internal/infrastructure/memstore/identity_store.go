package memstore

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// Verificar en tiempo de compilación que IdentityStore implementa el puerto.
var _ repository.IdentityStore = (*IdentityStore)(nil)

// ErrEmailTaken el proveedor rechaza emails duplicados.
var ErrEmailTaken = errors.New("el email ya está registrado en el proveedor de identidad")

// IdentityStore proveedor de identidad en memoria para desarrollo y tests.
// Asigna IDs con uuid y guarda el password como hash bcrypt, igual que haría
// un proveedor real. Seguro para uso concurrente.
type IdentityStore struct {
	mu    sync.RWMutex
	byID  map[string]*account
	order []string // orden de creación, para listados estables
}

type account struct {
	principal    entity.Principal
	passwordHash []byte
}

// NewIdentityStore construye el proveedor vacío.
func NewIdentityStore() *IdentityStore {
	return &IdentityStore{byID: make(map[string]*account)}
}

// CreatePrincipal registra el principal y asigna un ID nuevo.
func (s *IdentityStore) CreatePrincipal(_ context.Context, in entity.NewPrincipal) (*entity.Principal, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashear password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, acc := range s.byID {
		if acc.principal.Email == in.Email {
			return nil, ErrEmailTaken
		}
	}
	p := entity.Principal{
		ID:          uuid.NewString(),
		Email:       in.Email,
		DisplayName: in.DisplayName,
		Disabled:    in.Disabled,
	}
	s.byID[p.ID] = &account{principal: p, passwordHash: hash}
	s.order = append(s.order, p.ID)
	out := p
	return &out, nil
}

// GetPrincipal devuelve (nil, nil) si el ID no existe.
func (s *IdentityStore) GetPrincipal(_ context.Context, id string) (*entity.Principal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	acc, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	out := acc.principal
	return &out, nil
}

// UpdatePrincipal aplica el patch; error si el principal no existe.
func (s *IdentityStore) UpdatePrincipal(_ context.Context, id string, patch entity.PrincipalPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("principal %s no existe", id)
	}
	if patch.DisplayName != nil {
		acc.principal.DisplayName = *patch.DisplayName
	}
	if patch.Disabled != nil {
		acc.principal.Disabled = *patch.Disabled
	}
	return nil
}

// SetRoleClaim escribe el claim tal cual llega.
func (s *IdentityStore) SetRoleClaim(_ context.Context, id, claim string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("principal %s no existe", id)
	}
	acc.principal.RoleClaim = claim
	return nil
}

// DeletePrincipal elimina el principal; borrar un ID inexistente no es error.
func (s *IdentityStore) DeletePrincipal(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return nil
	}
	delete(s.byID, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// ListPrincipals devuelve una sola página en orden de creación.
func (s *IdentityStore) ListPrincipals(_ context.Context, pageSize int) ([]entity.Principal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Principal, 0, len(s.order))
	for _, id := range s.order {
		if len(out) >= pageSize {
			break
		}
		out = append(out, s.byID[id].principal)
	}
	return out, nil
}

// VerifyPassword comprueba las credenciales contra el hash almacenado; útil
// para el modo desarrollo, donde no hay proveedor remoto que autentique.
func (s *IdentityStore) VerifyPassword(_ context.Context, email, password string) (*entity.Principal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, acc := range s.byID {
		if acc.principal.Email == email {
			if err := bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(password)); err != nil {
				return nil, fmt.Errorf("credenciales inválidas")
			}
			out := acc.principal
			return &out, nil
		}
	}
	return nil, fmt.Errorf("credenciales inválidas")
}

package memstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/infrastructure/memstore"
)

func TestIdentityStore_RechazaEmailDuplicado(t *testing.T) {
	s := memstore.NewIdentityStore()
	ctx := context.Background()

	_, err := s.CreatePrincipal(ctx, entity.NewPrincipal{Email: "ana@resto.com", Password: "secreta-123"})
	require.NoError(t, err)

	_, err = s.CreatePrincipal(ctx, entity.NewPrincipal{Email: "ana@resto.com", Password: "otra-clave-9"})
	assert.ErrorIs(t, err, memstore.ErrEmailTaken)
}

func TestIdentityStore_VerifyPassword(t *testing.T) {
	s := memstore.NewIdentityStore()
	ctx := context.Background()

	created, err := s.CreatePrincipal(ctx, entity.NewPrincipal{Email: "ana@resto.com", Password: "secreta-123"})
	require.NoError(t, err)

	p, err := s.VerifyPassword(ctx, "ana@resto.com", "secreta-123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, p.ID)

	_, err = s.VerifyPassword(ctx, "ana@resto.com", "incorrecta")
	assert.Error(t, err, "password equivocado no debe autenticar")
	_, err = s.VerifyPassword(ctx, "nadie@resto.com", "secreta-123")
	assert.Error(t, err, "email desconocido no debe autenticar")
}

func TestIdentityStore_ListRespetaElTechoDePagina(t *testing.T) {
	s := memstore.NewIdentityStore()
	ctx := context.Background()
	for _, email := range []string{"a@resto.com", "b@resto.com", "c@resto.com"} {
		_, err := s.CreatePrincipal(ctx, entity.NewPrincipal{Email: email, Password: "secreta-123"})
		require.NoError(t, err)
	}

	page, err := s.ListPrincipals(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, page, 2, "lo que queda fuera de la página no se lista")

	all, err := s.ListPrincipals(ctx, 100)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "a@resto.com", all[0].Email, "el listado conserva el orden de creación")
}

func TestProfileStore_SetConservaCreatedAt(t *testing.T) {
	s := memstore.NewProfileStore()
	ctx := context.Background()

	rec := &entity.ProfileRecord{UID: "u1", Email: "a@resto.com", Name: "A", Role: entity.RoleWaiter, Status: entity.StatusActive}
	require.NoError(t, s.Set(ctx, rec))
	require.False(t, rec.CreatedAt.IsZero(), "Set debe estampar CreatedAt")
	created := rec.CreatedAt

	rewrite := &entity.ProfileRecord{UID: "u1", Email: "a@resto.com", Name: "A2", Role: entity.RoleWaiter, Status: entity.StatusActive}
	require.NoError(t, s.Set(ctx, rewrite))
	assert.Equal(t, created, rewrite.CreatedAt, "reescribir no debe cambiar CreatedAt")

	got, err := s.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "A2", got.Name)
}

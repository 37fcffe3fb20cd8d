package usersync_test

import (
	"context"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
	"github.com/jhoicas/Restaurante-api/internal/infrastructure/memstore"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de test: envuelven los almacenes en memoria e inyectan fallos por
// método. Un campo de error en nil delega en el almacén real.
// ──────────────────────────────────────────────────────────────────────────────

type flakyIdentity struct {
	*memstore.IdentityStore
	failCreate   error
	failUpdate   error
	failSetClaim error
	failDelete   error

	deleteCalls   int
	setClaimCalls int
}

var _ repository.IdentityStore = (*flakyIdentity)(nil)

func (f *flakyIdentity) CreatePrincipal(ctx context.Context, in entity.NewPrincipal) (*entity.Principal, error) {
	if f.failCreate != nil {
		return nil, f.failCreate
	}
	return f.IdentityStore.CreatePrincipal(ctx, in)
}

func (f *flakyIdentity) UpdatePrincipal(ctx context.Context, id string, patch entity.PrincipalPatch) error {
	if f.failUpdate != nil {
		return f.failUpdate
	}
	return f.IdentityStore.UpdatePrincipal(ctx, id, patch)
}

func (f *flakyIdentity) SetRoleClaim(ctx context.Context, id, claim string) error {
	f.setClaimCalls++
	if f.failSetClaim != nil {
		return f.failSetClaim
	}
	return f.IdentityStore.SetRoleClaim(ctx, id, claim)
}

func (f *flakyIdentity) DeletePrincipal(ctx context.Context, id string) error {
	f.deleteCalls++
	if f.failDelete != nil {
		return f.failDelete
	}
	return f.IdentityStore.DeletePrincipal(ctx, id)
}

type flakyProfiles struct {
	*memstore.ProfileStore
	failSet    error
	failUpdate error
	failGet    error

	setCalls int
}

var _ repository.ProfileStore = (*flakyProfiles)(nil)

func (f *flakyProfiles) Get(ctx context.Context, uid string) (*entity.ProfileRecord, error) {
	if f.failGet != nil {
		return nil, f.failGet
	}
	return f.ProfileStore.Get(ctx, uid)
}

func (f *flakyProfiles) Set(ctx context.Context, rec *entity.ProfileRecord) error {
	f.setCalls++
	if f.failSet != nil {
		return f.failSet
	}
	return f.ProfileStore.Set(ctx, rec)
}

func (f *flakyProfiles) Update(ctx context.Context, uid string, patch entity.ProfilePatch) error {
	if f.failUpdate != nil {
		return f.failUpdate
	}
	return f.ProfileStore.Update(ctx, uid, patch)
}

package entity_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

func TestParseRole_NormalizaCasing(t *testing.T) {
	cases := []struct {
		input string
		want  entity.Role
	}{
		{"ADMIN", entity.RoleAdmin},
		{"admin", entity.RoleAdmin},
		{"Admin", entity.RoleAdmin},
		{"kitchen", entity.RoleKitchen},
		{"KITCHEN", entity.RoleKitchen},
		{"KiTcHeN", entity.RoleKitchen},
		{"waiter", entity.RoleWaiter},
		{"WAITER", entity.RoleWaiter},
	}
	for _, tc := range cases {
		got, err := entity.ParseRole(tc.input)
		require.NoError(t, err, "el rol %q debe normalizar sin error", tc.input)
		assert.Equal(t, tc.want, got, "forma canónica de %q", tc.input)
	}
}

func TestParseRole_RechazaValoresFueraDelEnum(t *testing.T) {
	for _, input := range []string{"", "chef", "ADMINISTRATOR", "wait er", "  waiter  ", "cocina", "null"} {
		_, err := entity.ParseRole(input)
		require.Error(t, err, "el valor %q no debe aceptarse", input)
		assert.True(t, errors.Is(err, domain.ErrInvalidRole),
			"el error de %q debe envolver ErrInvalidRole", input)
	}
}

// ParseRole debe ser idempotente: normalizar una forma canónica la deja igual.
func TestParseRole_Idempotente(t *testing.T) {
	for _, input := range []string{"admin", "Kitchen", "WAITER"} {
		first, err := entity.ParseRole(input)
		require.NoError(t, err)
		second, err := entity.ParseRole(first.String())
		require.NoError(t, err)
		assert.Equal(t, first, second, "ParseRole(ParseRole(%q)) debe ser estable", input)
	}
}

func TestRole_EqualsClaim(t *testing.T) {
	assert.True(t, entity.RoleKitchen.EqualsClaim("kitchen"), "comparación sin distinguir mayúsculas")
	assert.True(t, entity.RoleKitchen.EqualsClaim("KITCHEN"))
	assert.False(t, entity.RoleKitchen.EqualsClaim("waiter"))
	assert.False(t, entity.RoleKitchen.EqualsClaim(""))
}

func TestStatusFromDisabled(t *testing.T) {
	assert.Equal(t, entity.StatusInactive, entity.StatusFromDisabled(true))
	assert.Equal(t, entity.StatusActive, entity.StatusFromDisabled(false))
	assert.True(t, entity.DisabledFromStatus(entity.StatusInactive))
	assert.False(t, entity.DisabledFromStatus(entity.StatusActive))
}

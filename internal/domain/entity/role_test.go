package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/gestion-pyme/internal/domain/entity"
)

func TestParseRole(t *testing.T) {
	cases := map[string]entity.Role{
		"admin":          entity.RoleAdmin,
		"  Contabilidad": entity.RoleContabilidad,
		"RRHH":           entity.RoleRRHH,
		"Supervisór":     entity.RoleSupervisor,
	}
	for in, want := range cases {
		got, ok := entity.ParseRole(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := entity.ParseRole("gerente")
	assert.False(t, ok)
	_, ok = entity.ParseRole("")
	assert.False(t, ok)
}

func TestNormalizeRole_CaeAAdmin(t *testing.T) {
	assert.Equal(t, entity.RoleAdmin, entity.NormalizeRole("gerente"))
	assert.Equal(t, entity.RoleAdmin, entity.NormalizeRole(""))
	assert.Equal(t, entity.RoleRRHH, entity.NormalizeRole("rrhh"))
}

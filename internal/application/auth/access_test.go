package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/farmabol/farmacia-api/internal/application/auth"
	"github.com/farmabol/farmacia-api/internal/domain/entity"
)

func userWith(role string, modules ...string) *entity.User {
	return &entity.User{
		ID:             "u-1",
		Username:       "test",
		Role:           role,
		AllowedModules: modules,
		Active:         true,
	}
}

// Tabla completa de decisiones de acceso por módulo.
func TestCanAccess_Reglas(t *testing.T) {
	admin := userWith(entity.RoleAdmin)
	cashier := userWith(entity.RoleCashier, entity.ModuleSales)
	pharmacist := userWith(entity.RolePharmacist, entity.ModuleInventory, entity.ModuleHistory)

	cases := []struct {
		name         string
		user         *entity.User
		moduleID     string
		requiredRole string
		want         bool
	}{
		{"sin usuario autenticado", nil, entity.ModuleSales, "", false},
		{"sin usuario ni siquiera dashboard", nil, entity.ModuleDashboard, "", false},
		{"dashboard accesible para cualquier autenticado", cashier, entity.ModuleDashboard, "", true},
		{"dashboard incluso con rol requerido distinto", cashier, entity.ModuleDashboard, entity.RoleAdmin, true},
		{"admin accede a todo sin módulos asignados", admin, entity.ModuleUsers, "", true},
		{"admin ignora requiredRole", admin, entity.ModuleConfig, entity.RolePharmacist, true},
		{"cajero con módulo ventas asignado", cashier, entity.ModuleSales, "", true},
		{"cajero sin módulo inventario", cashier, entity.ModuleInventory, "", false},
		{"rol requerido no coincide aunque tenga el módulo", cashier, entity.ModuleSales, entity.RolePharmacist, false},
		{"rol requerido coincide y tiene el módulo", pharmacist, entity.ModuleInventory, entity.RolePharmacist, true},
		{"rol requerido coincide pero sin el módulo", pharmacist, entity.ModuleUsers, entity.RolePharmacist, false},
		{"farmacéutico con historial asignado", pharmacist, entity.ModuleHistory, "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := auth.CanAccess(tc.user, tc.moduleID, tc.requiredRole)
			assert.Equal(t, tc.want, got)
		})
	}
}

// La lista de módulos permitidos vacía solo deja pasar al dashboard.
func TestCanAccess_SinModulosAsignados(t *testing.T) {
	u := userWith(entity.RoleCashier)
	assert.True(t, auth.CanAccess(u, entity.ModuleDashboard, ""))
	for _, m := range entity.AllModules {
		assert.False(t, auth.CanAccess(u, m, ""), "módulo %s no debería ser accesible", m)
	}
}

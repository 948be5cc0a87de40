package auth

import "github.com/farmabol/farmacia-api/internal/domain/entity"

// CanAccess es la única puerta de autorización por módulo. Toda restricción de
// menú o de acción ("solo ADMIN elimina productos", "Usuarios exige ADMIN") se
// reduce a este predicado o a una igualdad de rol explícita.
//
// Reglas, en orden:
//  1. Sin usuario autenticado → false.
//  2. dashboard es accesible para cualquier usuario autenticado.
//  3. ADMIN accede a todo, ignorando requiredRole y AllowedModules.
//  4. Si requiredRole está definido y el rol no coincide → false.
//  5. En el resto de casos, true si moduleID ∈ AllowedModules.
func CanAccess(user *entity.User, moduleID, requiredRole string) bool {
	if user == nil {
		return false
	}
	if moduleID == entity.ModuleDashboard {
		return true
	}
	if user.Role == entity.RoleAdmin {
		return true
	}
	if requiredRole != "" && user.Role != requiredRole {
		return false
	}
	for _, m := range user.AllowedModules {
		if m == moduleID {
			return true
		}
	}
	return false
}

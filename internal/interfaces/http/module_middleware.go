package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/farmabol/farmacia-api/internal/application/auth"
	"github.com/farmabol/farmacia-api/internal/application/dto"
	"github.com/farmabol/farmacia-api/internal/domain/entity"
)

// userLookup es el contrato mínimo que necesita el middleware para cargar el
// usuario del token. Lo implementa el UserRepository; el uso de interfaz evita
// acoplar el middleware a la capa de persistencia.
type userLookup interface {
	GetByID(id string) (*entity.User, error)
}

// RequireModule devuelve un middleware Fiber que verifica el acceso del usuario
// autenticado a un módulo mediante auth.CanAccess. Debe usarse DESPUÉS de
// AuthMiddleware (necesita LocalUserID).
//
// El usuario se recarga de la BD en cada petición: una desactivación o un
// cambio de módulos permitidos surte efecto sin esperar a que venza el token.
//
// Comportamiento:
//   - 401 Unauthorized → sin user_id en el contexto o usuario ya inexistente.
//   - 403 Forbidden    → usuario inactivo o sin acceso al módulo.
//   - 503 Service Unavailable → fallo de infraestructura al consultar la BD.
func RequireModule(moduleID, requiredRole string, users userLookup) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "user_id no encontrado en el token",
			})
		}

		user, err := users.GetByID(userID)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "ACCESS_CHECK_FAILED",
				Message: "no se pudo verificar el acceso, intente más tarde",
			})
		}
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "usuario no encontrado",
			})
		}
		if !user.Active {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "USER_INACTIVE",
				Message: "usuario desactivado",
			})
		}
		if !auth.CanAccess(user, moduleID, requiredRole) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "MODULE_FORBIDDEN",
				Message: "sin acceso al módulo '" + moduleID + "'",
			})
		}

		return c.Next()
	}
}

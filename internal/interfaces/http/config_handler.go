package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/farmabol/farmacia-api/internal/application/dto"
	"github.com/farmabol/farmacia-api/internal/application/usecase"
	"github.com/farmabol/farmacia-api/internal/domain"
)

// ConfigHandler maneja la configuración de la farmacia (lectura para todos
// los autenticados, escritura solo ADMIN vía middleware).
type ConfigHandler struct {
	uc *usecase.ConfigUseCase
}

// NewConfigHandler construye el handler.
func NewConfigHandler(uc *usecase.ConfigUseCase) *ConfigHandler {
	return &ConfigHandler{uc: uc}
}

// Get godoc
// @Summary      Obtener configuración de la farmacia
// @Tags         config
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PharmacyConfigResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/config [get]
func (h *ConfigHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get()
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "configuración no registrada todavía"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar configuración de la farmacia
// @Description  Crea o reemplaza la fila única de configuración. Solo ADMIN.
// @Tags         config
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PharmacyConfigRequest  true  "Datos de la farmacia"
// @Success      200   {object}  dto.PharmacyConfigResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/config [put]
func (h *ConfigHandler) Update(c *fiber.Ctx) error {
	var in dto.PharmacyConfigRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

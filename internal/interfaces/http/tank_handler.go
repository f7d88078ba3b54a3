package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/grifosol/grifo-api/internal/application/catalog"
	"github.com/grifosol/grifo-api/internal/application/dto"
)

// TankHandler expone el dato de referencia de tanques (protegido).
type TankHandler struct {
	uc *catalog.UseCase
}

// NewTankHandler construye el handler de tanques.
func NewTankHandler(uc *catalog.UseCase) *TankHandler {
	return &TankHandler{uc: uc}
}

// List godoc
// @Summary      Listar tanques con su stock vigente
// @Tags         tanks
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TankResponse
// @Router       /api/tanks [get]
func (h *TankHandler) List(c *fiber.Ctx) error {
	tanks, err := h.uc.ListTanks(c.Context())
	if err != nil {
		return domainError(c, err)
	}
	out := make([]dto.TankResponse, 0, len(tanks))
	for _, t := range tanks {
		out = append(out, dto.FromTank(t))
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener tanque
// @Tags         tanks
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del tanque"
// @Success      200  {object}  dto.TankResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tanks/{id} [get]
func (h *TankHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	tank, err := h.uc.GetTank(c.Context(), id)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.FromTank(tank))
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/grifosol/grifo-api/internal/application/catalog"
	"github.com/grifosol/grifo-api/internal/application/dto"
)

// PaymentMethodHandler expone el dato de referencia de métodos de pago (protegido).
type PaymentMethodHandler struct {
	uc *catalog.UseCase
}

// NewPaymentMethodHandler construye el handler de métodos de pago.
func NewPaymentMethodHandler(uc *catalog.UseCase) *PaymentMethodHandler {
	return &PaymentMethodHandler{uc: uc}
}

// List godoc
// @Summary      Listar métodos de pago activos
// @Tags         payment-methods
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PaymentMethodResponse
// @Router       /api/payment-methods [get]
func (h *PaymentMethodHandler) List(c *fiber.Ctx) error {
	methods, err := h.uc.ListPaymentMethods(c.Context())
	if err != nil {
		return domainError(c, err)
	}
	out := make([]dto.PaymentMethodResponse, 0, len(methods))
	for _, m := range methods {
		out = append(out, dto.FromPaymentMethod(m))
	}
	return c.JSON(out)
}

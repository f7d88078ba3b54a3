package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/grifosol/grifo-api/internal/application/dto"
	"github.com/grifosol/grifo-api/internal/application/payments"
)

// PaymentHandler expone las consultas del libro de pagos (protegido).
type PaymentHandler struct {
	uc *payments.UseCase
}

// NewPaymentHandler construye el handler de pagos.
func NewPaymentHandler(uc *payments.UseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// List godoc
// @Summary      Listar pagos
// @Description  Sin filtros lista los más recientes; con payment_method_id filtra por método; con from/to filtra por rango de fechas.
// @Tags         payments
// @Security     Bearer
// @Produce      json
// @Param        payment_method_id  query  int     false  "filtrar por método"
// @Param        from               query  string  false  "YYYY-MM-DD"
// @Param        to                 query  string  false  "YYYY-MM-DD (inclusivo)"
// @Param        limit              query  int     false  "máximo de resultados (default 25, tope 100)"
// @Success      200  {array}  dto.PaymentResponse
// @Router       /api/payments [get]
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	if raw := c.Query("payment_method_id"); raw != "" {
		methodID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "payment_method_id inválido"})
		}
		list, err := h.uc.FindByMethod(c.Context(), methodID)
		if err != nil {
			return domainError(c, err)
		}
		return c.JSON(dto.FromPayments(list))
	}
	if from, to := c.Query("from"), c.Query("to"); from != "" || to != "" {
		list, err := h.uc.FindByDateRange(c.Context(), from, to)
		if err != nil {
			return domainError(c, err)
		}
		return c.JSON(dto.FromPayments(list))
	}
	list, err := h.uc.FindRecent(c.Context(), c.QueryInt("limit"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.FromPayments(list))
}

// Conciliation godoc
// @Summary      Conciliación diaria por método de pago
// @Tags         payments
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  false  "YYYY-MM-DD (default: hoy)"
// @Success      200  {array}  dto.ConciliationRow
// @Router       /api/payments/conciliation [get]
func (h *PaymentHandler) Conciliation(c *fiber.Ctx) error {
	rows, err := h.uc.Conciliation(c.Context(), c.Query("date"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(rows)
}

// GetByID godoc
// @Summary      Obtener pago
// @Tags         payments
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del pago"
// @Success      200  {object}  dto.PaymentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/payments/{id} [get]
func (h *PaymentHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	payment, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.FromPayment(payment))
}

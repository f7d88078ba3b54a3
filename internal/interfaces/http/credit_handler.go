package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/grifosol/grifo-api/internal/application/credits"
	"github.com/grifosol/grifo-api/internal/application/dto"
)

// CreditHandler maneja las peticiones HTTP del libro de créditos (protegido).
type CreditHandler struct {
	uc *credits.UseCase
}

// NewCreditHandler construye el handler de créditos.
func NewCreditHandler(uc *credits.UseCase) *CreditHandler {
	return &CreditHandler{uc: uc}
}

// List godoc
// @Summary      Listar créditos
// @Tags         credits
// @Security     Bearer
// @Produce      json
// @Param        client_id  query  int     false  "filtrar por cliente"
// @Param        status     query  string  false  "pending | paid"
// @Success      200  {array}  dto.CreditResponse
// @Router       /api/credits [get]
func (h *CreditHandler) List(c *fiber.Ctx) error {
	var clientID *int64
	if raw := c.Query("client_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "client_id inválido"})
		}
		clientID = &id
	}
	list, err := h.uc.FindAll(c.Context(), clientID, c.Query("status"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.FromCredits(list))
}

// Dashboard godoc
// @Summary      Tablero de créditos
// @Tags         credits
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CreditsDashboardResponse
// @Router       /api/credits/dashboard [get]
func (h *CreditHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Overdue godoc
// @Summary      Créditos vencidos
// @Tags         credits
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CreditResponse
// @Router       /api/credits/overdue [get]
func (h *CreditHandler) Overdue(c *fiber.Ctx) error {
	list, err := h.uc.GetOverdue(c.Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.FromCredits(list))
}

// GetByID godoc
// @Summary      Obtener crédito
// @Tags         credits
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del crédito"
// @Success      200  {object}  dto.CreditResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/credits/{id} [get]
func (h *CreditHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	credit, err := h.uc.FindOne(c.Context(), id)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.FromCredit(credit))
}

// AddPayment godoc
// @Summary      Abonar a un crédito
// @Description  Registra el abono y actualiza el saldo en una sola transacción; rechaza abonos que excedan el saldo.
// @Tags         credits
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                          true  "ID del crédito"
// @Param        body  body  dto.AddCreditPaymentRequest  true  "amount, payment_method_id, reference"
// @Success      200   {object}  dto.CreditResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/credits/{id}/payments [post]
func (h *CreditHandler) AddPayment(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.AddCreditPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.UserID == nil {
		userID := GetUserID(c)
		if userID != 0 {
			in.UserID = &userID
		}
	}
	credit, err := h.uc.AddPayment(c.Context(), id, in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.FromCredit(credit))
}

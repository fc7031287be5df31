package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/application/inventory"
)

// InventoryHandler maneja el registro de transacciones de stock.
type InventoryHandler struct {
	registerUC *inventory.RegisterTransactionUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(registerUC *inventory.RegisterTransactionUseCase) *InventoryHandler {
	return &InventoryHandler{registerUC: registerUC}
}

// RegisterTransaction godoc
// @Summary      Registrar transacción de stock
// @Description  Aplica una entrada (IN) o salida (OUT) sobre la cantidad del artículo y la deja en el historial
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterTransactionRequest  true  "Transacción"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "stock insuficiente"
// @Router       /api/inventory/transactions [post]
func (h *InventoryHandler) RegisterTransaction(c *fiber.Ctx) error {
	var in dto.RegisterTransactionRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.registerUC.RegisterTransaction(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

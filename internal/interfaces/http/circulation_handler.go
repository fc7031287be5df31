package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-ledger/internal/application/circulation"
	"github.com/tu-usuario/stock-ledger/internal/application/dto"
)

// CirculationHandler maneja emisión y devolución de préstamos.
type CirculationHandler struct {
	uc *circulation.CirculationUseCase
}

// NewCirculationHandler construye el handler.
func NewCirculationHandler(uc *circulation.CirculationUseCase) *CirculationHandler {
	return &CirculationHandler{uc: uc}
}

// Issue godoc
// @Summary      Emitir préstamo
// @Description  available→borrowed; vencimiento = hoy + días de préstamo configurados
// @Tags         circulation
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IssueBookRequest  true  "Libro y miembro"
// @Success      201   {object}  dto.BorrowRecordResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "miembro inactivo, tope alcanzado o libro no disponible"
// @Router       /api/circulation/issue [post]
func (h *CirculationHandler) Issue(c *fiber.Ctx) error {
	var in dto.IssueBookRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.IssueBook(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Return godoc
// @Summary      Devolver préstamo
// @Description  borrowed→available; multa = max(0, días de retraso) * multa diaria
// @Tags         circulation
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReturnBookRequest  true  "Registro a cerrar"
// @Success      200   {object}  dto.BorrowRecordResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "ya devuelto"
// @Router       /api/circulation/return [post]
func (h *CirculationHandler) Return(c *fiber.Ctx) error {
	var in dto.ReturnBookRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.ReturnBook(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListLoans godoc
// @Summary      Listar préstamos vigentes
// @Tags         circulation
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {array}  dto.BorrowRecordResponse
// @Router       /api/circulation/loans [get]
func (h *CirculationHandler) ListLoans(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListLoans(c.UserContext(), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Overdue godoc
// @Summary      Préstamos vencidos
// @Description  Incluye días de retraso y multa acumulada a hoy (informativa; se persiste al devolver)
// @Tags         circulation
// @Produce      json
// @Success      200  {array}  dto.OverdueLoanResponse
// @Router       /api/circulation/overdue [get]
func (h *CirculationHandler) Overdue(c *fiber.Ctx) error {
	out, err := h.uc.Overdue(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

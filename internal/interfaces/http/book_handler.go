package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-ledger/internal/application/circulation"
	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/application/usecase"
)

// BookHandler maneja las peticiones HTTP para el catálogo de libros.
type BookHandler struct {
	uc            *usecase.BookUseCase
	circulationUC *circulation.CirculationUseCase
}

// NewBookHandler construye el handler.
func NewBookHandler(uc *usecase.BookUseCase, circulationUC *circulation.CirculationUseCase) *BookHandler {
	return &BookHandler{uc: uc, circulationUC: circulationUC}
}

// Create godoc
// @Summary      Crear libro
// @Description  El libro nace en estado available; el ISBN debe ser único
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBookRequest  true  "Datos del libro"
// @Success      201   {object}  dto.BookResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/books [post]
func (h *BookHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBookRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener libro por ID
// @Tags         books
// @Produce      json
// @Param        id   path  string  true  "ID del libro"
// @Success      200  {object}  dto.BookResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/books/{id} [get]
func (h *BookHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar libros
// @Tags         books
// @Produce      json
// @Param        q       query  string  false  "Busca en título, autor e ISBN"
// @Param        status  query  string  false  "available | borrowed | reserved | maintenance"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.BookListResponse
// @Router       /api/books [get]
func (h *BookHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.UserContext(), c.Query("q"), c.Query("status"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar libro
// @Description  Status e ISBN no son editables por esta vía
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del libro"
// @Param        body  body  dto.UpdateBookRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.BookResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/books/{id} [put]
func (h *BookHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBookRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ChangeStatus godoc
// @Summary      Transición administrativa de estado
// @Description  Reserva, mantenimiento o vuelta a disponible; borrowed queda reservado a la circulación
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del libro"
// @Param        body  body  dto.ChangeBookStatusRequest  true  "Estado destino"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "transición ilegal"
// @Router       /api/books/{id}/status [post]
func (h *BookHandler) ChangeStatus(c *fiber.Ctx) error {
	var in dto.ChangeBookStatusRequest
	if !parseBody(c, &in) {
		return nil
	}
	if err := h.circulationUC.ChangeBookStatus(c.UserContext(), c.Params("id"), in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "estado actualizado"})
}

// Delete godoc
// @Summary      Eliminar libro
// @Description  Falla con 409 si está prestado o tiene historial de préstamos
// @Tags         books
// @Produce      json
// @Param        id   path  string  true  "ID del libro"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/books/{id} [delete]
func (h *BookHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "libro eliminado"})
}

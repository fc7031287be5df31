package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/application/usecase"
)

// ItemHandler maneja las peticiones HTTP para artículos de inventario.
type ItemHandler struct {
	uc *usecase.ItemUseCase
}

// NewItemHandler construye el handler.
func NewItemHandler(uc *usecase.ItemUseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// Create godoc
// @Summary      Crear artículo
// @Description  Crea un artículo; initial_quantity > 0 registra una transacción IN "Stock inicial"
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "Datos del artículo"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
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
// @Summary      Obtener artículo por ID
// @Tags         items
// @Produce      json
// @Param        id   path  string  true  "ID del artículo"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [get]
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar artículos
// @Tags         items
// @Produce      json
// @Param        q       query  string  false  "Busca en nombre y descripción"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.ItemListResponse
// @Router       /api/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.UserContext(), c.Query("q"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar artículo
// @Description  Quantity no es editable: cambia solo por transacciones
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del artículo"
// @Param        body  body  dto.UpdateItemRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{id} [put]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar artículo
// @Description  Falla con 409 si el artículo tiene transacciones asociadas
// @Tags         items
// @Produce      json
// @Param        id   path  string  true  "ID del artículo"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [delete]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "artículo eliminado"})
}

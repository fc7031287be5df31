package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/application/usecase"
)

// MemberHandler maneja las peticiones HTTP para miembros.
type MemberHandler struct {
	uc *usecase.MemberUseCase
}

// NewMemberHandler construye el handler.
func NewMemberHandler(uc *usecase.MemberUseCase) *MemberHandler {
	return &MemberHandler{uc: uc}
}

// Create godoc
// @Summary      Crear miembro
// @Description  El miembro nace activo; el email debe ser único
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMemberRequest  true  "Datos del miembro"
// @Success      201   {object}  dto.MemberResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/members [post]
func (h *MemberHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMemberRequest
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
// @Summary      Obtener miembro por ID
// @Tags         members
// @Produce      json
// @Param        id   path  string  true  "ID del miembro"
// @Success      200  {object}  dto.MemberResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/members/{id} [get]
func (h *MemberHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar miembros
// @Tags         members
// @Produce      json
// @Param        q       query  string  false  "Busca en nombre y email"
// @Param        status  query  string  false  "active | inactive"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.MemberListResponse
// @Router       /api/members [get]
func (h *MemberHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.UserContext(), c.Query("q"), c.Query("status"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar miembro
// @Description  Desactivar no cierra préstamos vigentes; solo impide nuevos
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del miembro"
// @Param        body  body  dto.UpdateMemberRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.MemberResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/members/{id} [put]
func (h *MemberHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMemberRequest
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
// @Summary      Eliminar miembro
// @Description  Falla con 409 si tiene préstamos vigentes o historial
// @Tags         members
// @Produce      json
// @Param        id   path  string  true  "ID del miembro"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/members/{id} [delete]
func (h *MemberHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "miembro eliminado"})
}

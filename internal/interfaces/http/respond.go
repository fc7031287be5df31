package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/domain"
)

var validate = validator.New()

// parseBody decodifica y valida el body. Devuelve false si ya respondió 400.
func parseBody(c *fiber.Ctx, out any) bool {
	if err := c.BodyParser(out); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		return false
	}
	if err := validate.Struct(out); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		return false
	}
	return true
}

// respondError traduce los errores de dominio a códigos HTTP.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidMovement):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_MOVEMENT", Message: err.Error()})
	case errors.Is(err, domain.ErrIllegalTransition):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ILLEGAL_TRANSITION", Message: err.Error()})
	case errors.Is(err, domain.ErrReferencedEntity):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "REFERENCED_ENTITY", Message: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// pageParams lee limit/offset con los topes habituales.
func pageParams(c *fiber.Ctx) (int, int) {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

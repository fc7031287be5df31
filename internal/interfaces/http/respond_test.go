package http

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/stock-ledger/internal/domain"
)

// TestRespondError_MapeoDeCodigos verifica el contrato de errores de la API:
// cada error de dominio tiene un código HTTP estable.
func TestRespondError_MapeoDeCodigos(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"no encontrado", domain.ErrNotFound, fiber.StatusNotFound},
		{"entrada inválida", domain.ErrInvalidInput, fiber.StatusBadRequest},
		{"duplicado", domain.ErrDuplicate, fiber.StatusConflict},
		{"stock insuficiente", domain.ErrInsufficientStock, fiber.StatusConflict},
		{"movimiento no permitido", domain.ErrInvalidMovement, fiber.StatusConflict},
		{"transición ilegal", domain.ErrIllegalTransition, fiber.StatusConflict},
		{"entidad referenciada", domain.ErrReferencedEntity, fiber.StatusConflict},
		{"conflicto", domain.ErrConflict, fiber.StatusConflict},
		{"error interno", assert.AnError, fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/x", func(c *fiber.Ctx) error {
				return respondError(c, tc.err)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}

func TestDateRange(t *testing.T) {
	app := fiber.New()
	app.Get("/r", func(c *fiber.Ctx) error {
		start, end, ok := dateRange(c)
		if !ok {
			return nil
		}
		return c.JSON(fiber.Map{"start": start, "end": end})
	})

	// Fechas simples: el fin cubre el día completo.
	resp, err := app.Test(httptest.NewRequest("GET", "/r?start=2026-01-01&end=2026-01-31", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// RFC3339 también se acepta.
	resp, err = app.Test(httptest.NewRequest("GET", "/r?start=2026-01-01T00:00:00Z&end=2026-01-31T23:59:59Z", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Formato inválido: 400.
	resp, err = app.Test(httptest.NewRequest("GET", "/r?start=ayer&end=2026-01-31", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Faltante: 400.
	resp, err = app.Test(httptest.NewRequest("GET", "/r?end=2026-01-31", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

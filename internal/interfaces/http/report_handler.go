package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/application/report"
)

// ReportHandler maneja las consultas de solo lectura y la exportación.
type ReportHandler struct {
	uc *report.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Dashboard godoc
// @Summary      Tablero
// @Description  Agregados de inventario y circulación más las últimas transacciones
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Artículos con stock bajo
// @Description  quantity <= min_stock, cantidad ascendente
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.LowStockResponse
// @Router       /api/reports/low-stock [get]
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.LowStock(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Transactions godoc
// @Summary      Transacciones por rango de fechas
// @Tags         reports
// @Produce      json
// @Param        start    query  string  true   "Inicio (RFC3339 o 2006-01-02)"
// @Param        end      query  string  true   "Fin (RFC3339 o 2006-01-02)"
// @Param        item_id  query  string  false  "Filtrar por artículo"
// @Param        limit    query  int     false  "Límite"  default(20)
// @Param        offset   query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.TransactionListResponse
// @Failure      400  {object}  dto.ErrorResponse  "rango inválido"
// @Router       /api/reports/transactions [get]
func (h *ReportHandler) Transactions(c *fiber.Ctx) error {
	start, end, ok := dateRange(c)
	if !ok {
		return nil
	}
	limit, offset := pageParams(c)
	out, err := h.uc.TransactionsBetween(c.UserContext(), start, end, c.Query("item_id"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ExportTransactions godoc
// @Summary      Exportar transacciones a CSV
// @Tags         reports
// @Produce      text/csv
// @Param        start  query  string  true  "Inicio (RFC3339 o 2006-01-02)"
// @Param        end    query  string  true  "Fin (RFC3339 o 2006-01-02)"
// @Success      200  {string}  string  "CSV"
// @Failure      400  {object}  dto.ErrorResponse  "rango inválido"
// @Router       /api/reports/transactions.csv [get]
func (h *ReportHandler) ExportTransactions(c *fiber.Ctx) error {
	start, end, ok := dateRange(c)
	if !ok {
		return nil
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="transacciones.csv"`)
	if err := h.uc.ExportTransactionsCSV(c.UserContext(), c.Response().BodyWriter(), start, end); err != nil {
		return respondError(c, err)
	}
	return nil
}

// dateRange parsea start/end. Acepta RFC3339 y fecha simple; el fin con fecha
// simple cubre el día completo. Devuelve false si ya respondió 400.
func dateRange(c *fiber.Ctx) (time.Time, time.Time, bool) {
	start, _, err := parseDate(c.Query("start"))
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: "start inválido"})
		return time.Time{}, time.Time{}, false
	}
	end, endDateOnly, err := parseDate(c.Query("end"))
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: "end inválido"})
		return time.Time{}, time.Time{}, false
	}
	if endDateOnly {
		end = end.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return start, end, true
}

func parseDate(s string) (time.Time, bool, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, false, nil
	}
	t, err := time.Parse("2006-01-02", s)
	return t, true, err
}

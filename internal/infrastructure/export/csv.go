// Package export serializa reportes a formatos descargables.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stock-ledger/internal/application/report"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var _ report.Exporter = (*CSVExporter)(nil)

// CSVExporter escribe transacciones como CSV. Los montos van en dos columnas:
// el valor crudo (para re-importar) y el formateado con separadores de miles
// según la localización configurada (para hojas de cálculo).
type CSVExporter struct {
	printer *message.Printer
}

// NewCSVExporter construye el exportador. tag vacío usa español latinoamericano.
func NewCSVExporter(tag language.Tag) *CSVExporter {
	if tag == (language.Tag{}) {
		tag = language.LatinAmericanSpanish
	}
	return &CSVExporter{printer: message.NewPrinter(tag)}
}

var csvHeader = []string{
	"id", "fecha", "articulo", "tipo", "cantidad",
	"precio_unitario", "total", "total_formateado", "referencia", "notas",
}

// TransactionsCSV escribe las filas como CSV con cabecera.
func (e *CSVExporter) TransactionsCSV(w io.Writer, rows []*repository.TransactionWithItem) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.ID,
			row.CreatedAt.Format(time.RFC3339),
			row.ItemName,
			row.Type,
			fmt.Sprintf("%d", row.Quantity),
			row.UnitPrice.String(),
			row.TotalAmount.String(),
			e.formatAmount(row.TotalAmount),
			row.Reference,
			row.Notes,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func (e *CSVExporter) formatAmount(d decimal.Decimal) string {
	f, _ := d.Float64()
	return e.printer.Sprint(number.Decimal(f,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

package report

import (
	"io"

	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
)

// Exporter serializa un rango de transacciones a un formato descargable.
type Exporter interface {
	// TransactionsCSV escribe las filas como CSV con cabecera.
	TransactionsCSV(w io.Writer, rows []*repository.TransactionWithItem) error
}

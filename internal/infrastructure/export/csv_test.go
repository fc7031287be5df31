package export_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
	"github.com/tu-usuario/stock-ledger/internal/infrastructure/export"
	"golang.org/x/text/language"
)

func TestTransactionsCSV(t *testing.T) {
	exporter := export.NewCSVExporter(language.Tag{})
	created := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	rows := []*repository.TransactionWithItem{
		{
			StockTransaction: entity.StockTransaction{
				ID: "tx-1", ItemID: "item-1", Type: entity.TransactionTypeIN, Quantity: 5,
				UnitPrice:   decimal.RequireFromString("1500.50"),
				TotalAmount: decimal.RequireFromString("7502.50"),
				Reference:   "OC-001", CreatedAt: created,
			},
			ItemName: "Tornillo 3/8",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, exporter.TransactionsCSV(&buf, rows))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2, "cabecera + una fila")

	header := records[0]
	assert.Equal(t, "id", header[0])
	assert.Equal(t, "total_formateado", header[7])

	row := records[1]
	assert.Equal(t, "tx-1", row[0])
	assert.Equal(t, "2026-03-15T10:30:00Z", row[1])
	assert.Equal(t, "Tornillo 3/8", row[2])
	assert.Equal(t, "IN", row[3])
	assert.Equal(t, "5", row[4])
	assert.Equal(t, "1500.5", row[5], "el valor crudo preserva la representación decimal")
	assert.Equal(t, "7502.5", row[6])
	assert.NotEmpty(t, row[7], "el monto formateado existe para hojas de cálculo")
	assert.Equal(t, "OC-001", row[8])
}

func TestTransactionsCSV_SinFilas(t *testing.T) {
	exporter := export.NewCSVExporter(language.Spanish)

	var buf bytes.Buffer
	require.NoError(t, exporter.TransactionsCSV(&buf, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1, "solo la cabecera")
}

package report_test

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/stock-ledger/internal/application/report"
	"github.com/tu-usuario/stock-ledger/internal/domain"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
)

type fakeReportRepo struct {
	lowStock []*entity.Item
	stats    repository.DashboardStats
}

func (r *fakeReportRepo) LowStockItems(_ context.Context) ([]*entity.Item, error) {
	return r.lowStock, nil
}

func (r *fakeReportRepo) DashboardStats(_ context.Context) (*repository.DashboardStats, error) {
	cp := r.stats
	return &cp, nil
}

type fakeTxRepo struct {
	rows []*repository.TransactionWithItem
}

func (r *fakeTxRepo) Create(_ context.Context, _ *entity.StockTransaction) error { return nil }

func (r *fakeTxRepo) GetByID(_ context.Context, _ string) (*entity.StockTransaction, error) {
	return nil, nil
}

func (r *fakeTxRepo) ListBetween(_ context.Context, start, end time.Time, itemID string, _, _ int) ([]*repository.TransactionWithItem, error) {
	var out []*repository.TransactionWithItem
	for _, row := range r.rows {
		if row.CreatedAt.Before(start) || row.CreatedAt.After(end) {
			continue
		}
		if itemID != "" && row.ItemID != itemID {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

func (r *fakeTxRepo) ListRecent(_ context.Context, n int) ([]*repository.TransactionWithItem, error) {
	if len(r.rows) > n {
		return r.rows[:n], nil
	}
	return r.rows, nil
}

func (r *fakeTxRepo) CountByItem(_ context.Context, _ string) (int64, error) { return 0, nil }

type fakeExporter struct {
	rows []*repository.TransactionWithItem
}

func (e *fakeExporter) TransactionsCSV(w io.Writer, rows []*repository.TransactionWithItem) error {
	e.rows = rows
	_, err := w.Write([]byte("id,item\n"))
	return err
}

func txRow(id, itemID string, createdAt time.Time) *repository.TransactionWithItem {
	return &repository.TransactionWithItem{
		StockTransaction: entity.StockTransaction{
			ID: id, ItemID: itemID, Type: entity.TransactionTypeIN, Quantity: 1,
			UnitPrice: decimal.NewFromInt(100), TotalAmount: decimal.NewFromInt(100),
			CreatedAt: createdAt,
		},
		ItemName: "Tornillo",
	}
}

func TestTransactionsBetween_RangoInvalido(t *testing.T) {
	uc := report.NewReportUseCase(&fakeReportRepo{}, &fakeTxRepo{}, &fakeExporter{})
	now := time.Now()

	cases := []struct {
		name       string
		start, end time.Time
	}{
		{"rango invertido", now, now.Add(-24 * time.Hour)},
		{"inicio cero", time.Time{}, now},
		{"fin cero", now, time.Time{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.TransactionsBetween(context.Background(), tc.start, tc.end, "", 20, 0)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestTransactionsBetween_FiltraPorRangoYArticulo(t *testing.T) {
	now := time.Now()
	txRepo := &fakeTxRepo{rows: []*repository.TransactionWithItem{
		txRow("tx-1", "item-1", now.Add(-48*time.Hour)),
		txRow("tx-2", "item-1", now.Add(-12*time.Hour)),
		txRow("tx-3", "item-2", now.Add(-12*time.Hour)),
	}}
	uc := report.NewReportUseCase(&fakeReportRepo{}, txRepo, &fakeExporter{})

	resp, err := uc.TransactionsBetween(context.Background(), now.Add(-24*time.Hour), now, "item-1", 20, 0)
	require.NoError(t, err)
	require.Len(t, resp.Transactions, 1)
	assert.Equal(t, "tx-2", resp.Transactions[0].ID)
	assert.Equal(t, "Tornillo", resp.Transactions[0].ItemName)
}

func TestDashboard_AgregadosYRecientes(t *testing.T) {
	now := time.Now()
	reportRepo := &fakeReportRepo{stats: repository.DashboardStats{
		TotalItems:    12,
		TotalValue:    decimal.NewFromInt(350000),
		LowStockCount: 3,
		OpenLoans:     7,
		OverdueLoans:  2,
	}}
	txRepo := &fakeTxRepo{rows: []*repository.TransactionWithItem{txRow("tx-1", "item-1", now)}}
	uc := report.NewReportUseCase(reportRepo, txRepo, &fakeExporter{})

	resp, err := uc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), resp.TotalItems)
	assert.True(t, resp.TotalValue.Equal(decimal.NewFromInt(350000)))
	assert.Equal(t, int64(2), resp.OverdueLoans)
	assert.Len(t, resp.RecentTransactions, 1)
}

func TestLowStock_MarcaLasFilas(t *testing.T) {
	reportRepo := &fakeReportRepo{lowStock: []*entity.Item{
		{ID: "item-1", Name: "Tornillo", Quantity: 2, MinStock: 5, UnitPrice: decimal.NewFromInt(1500)},
	}}
	uc := report.NewReportUseCase(reportRepo, &fakeTxRepo{}, &fakeExporter{})

	resp, err := uc.LowStock(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Items, 1)
	assert.True(t, resp.Items[0].LowStock)
}

func TestExportTransactionsCSV(t *testing.T) {
	now := time.Now()
	txRepo := &fakeTxRepo{rows: []*repository.TransactionWithItem{txRow("tx-1", "item-1", now.Add(-time.Hour))}}
	exporter := &fakeExporter{}
	uc := report.NewReportUseCase(&fakeReportRepo{}, txRepo, exporter)

	var buf bytes.Buffer
	err := uc.ExportTransactionsCSV(context.Background(), &buf, now.Add(-24*time.Hour), now)
	require.NoError(t, err)
	assert.Len(t, exporter.rows, 1, "el exportador recibe las filas del rango")
	assert.NotEmpty(t, buf.String())

	// El rango inválido se rechaza antes de tocar el exportador.
	err = uc.ExportTransactionsCSV(context.Background(), &buf, now, now.Add(-time.Hour))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

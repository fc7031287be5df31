package report

import (
	"context"
	"io"
	"time"

	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/domain"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
)

const recentTransactions = 10

// ReportUseCase consultas de solo lectura: tablero, stock bajo,
// transacciones por rango y exportación CSV.
type ReportUseCase struct {
	reportRepo repository.ReportRepository
	txRepo     repository.StockTransactionRepository
	exporter   Exporter
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	reportRepo repository.ReportRepository,
	txRepo repository.StockTransactionRepository,
	exporter Exporter,
) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo, txRepo: txRepo, exporter: exporter}
}

// Dashboard devuelve los agregados del tablero y las últimas transacciones.
func (uc *ReportUseCase) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	stats, err := uc.reportRepo.DashboardStats(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := uc.txRepo.ListRecent(ctx, recentTransactions)
	if err != nil {
		return nil, err
	}
	out := &dto.DashboardResponse{
		TotalItems:         stats.TotalItems,
		TotalValue:         stats.TotalValue,
		LowStockCount:      stats.LowStockCount,
		OpenLoans:          stats.OpenLoans,
		OverdueLoans:       stats.OverdueLoans,
		RecentTransactions: make([]dto.TransactionResponse, 0, len(recent)),
	}
	for _, row := range recent {
		out.RecentTransactions = append(out.RecentTransactions, toTransactionResponse(row))
	}
	return out, nil
}

// LowStock devuelve los artículos con cantidad en o bajo su umbral mínimo.
func (uc *ReportUseCase) LowStock(ctx context.Context) (*dto.LowStockResponse, error) {
	items, err := uc.reportRepo.LowStockItems(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.LowStockResponse{Total: len(items), Items: make([]dto.ItemResponse, 0, len(items))}
	for _, item := range items {
		out.Items = append(out.Items, dto.ItemResponse{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Category:    item.Category,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			MinStock:    item.MinStock,
			LowStock:    true,
			CreatedAt:   item.CreatedAt,
			UpdatedAt:   item.UpdatedAt,
		})
	}
	return out, nil
}

// TransactionsBetween lista transacciones en [start, end], opcionalmente
// filtradas por artículo. Un rango invertido o con fechas cero es inválido.
func (uc *ReportUseCase) TransactionsBetween(ctx context.Context, start, end time.Time, itemID string, limit, offset int) (*dto.TransactionListResponse, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}
	rows, err := uc.txRepo.ListBetween(ctx, start, end, itemID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.TransactionListResponse{
		Transactions: make([]dto.TransactionResponse, 0, len(rows)),
		Total:        len(rows),
		Limit:        limit,
		Offset:       offset,
	}
	for _, row := range rows {
		out.Transactions = append(out.Transactions, toTransactionResponse(row))
	}
	return out, nil
}

// ExportTransactionsCSV escribe en w el CSV de las transacciones del rango.
func (uc *ReportUseCase) ExportTransactionsCSV(ctx context.Context, w io.Writer, start, end time.Time) error {
	if err := validateRange(start, end); err != nil {
		return err
	}
	rows, err := uc.txRepo.ListBetween(ctx, start, end, "", 0, 0)
	if err != nil {
		return err
	}
	return uc.exporter.TransactionsCSV(w, rows)
}

func validateRange(start, end time.Time) error {
	if start.IsZero() || end.IsZero() || start.After(end) {
		return domain.ErrInvalidInput
	}
	return nil
}

func toTransactionResponse(row *repository.TransactionWithItem) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:          row.ID,
		ItemID:      row.ItemID,
		ItemName:    row.ItemName,
		Type:        row.Type,
		Quantity:    row.Quantity,
		UnitPrice:   row.UnitPrice,
		TotalAmount: row.TotalAmount,
		Reference:   row.Reference,
		Notes:       row.Notes,
		CreatedAt:   row.CreatedAt,
	}
}

package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/stock-ledger/internal/domain"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpen_Idempotente(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	// Reabrir aplica esquema y pragmas de nuevo sin error.
	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	var version int
	require.NoError(t, s2.db.QueryRow("PRAGMA user_version").Scan(&version))
	assert.Equal(t, currentSchemaVersion, version)
}

func TestItemRepo_Roundtrip(t *testing.T) {
	s := openTestStore(t)
	repo := NewItemRepository(s.DB())
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	item := &entity.Item{
		ID: "item-1", Name: "Tornillo 3/8", Category: "Ferretería",
		Quantity: 10, UnitPrice: decimal.RequireFromString("1500.50"), MinStock: 5,
		CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, repo.Create(ctx, item))

	got, err := repo.GetByID(ctx, "item-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, item.Name, got.Name)
	assert.True(t, got.UnitPrice.Equal(item.UnitPrice), "el precio hace round-trip como TEXT")

	// Inexistente: (nil, nil), no error.
	got, err = repo.GetByID(ctx, "no-existe")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.UpdateQuantity(ctx, "item-1", 3, now))
	got, _ = repo.GetByID(ctx, "item-1")
	assert.Equal(t, int64(3), got.Quantity)
}

func TestBookRepo_ISBNUnico(t *testing.T) {
	s := openTestStore(t)
	repo := NewBookRepository(s.DB())
	ctx := context.Background()
	now := time.Now()

	book := &entity.Book{
		ID: "book-1", Title: "Rayuela", Author: "J. Cortázar", ISBN: "978-8437604572",
		Status: entity.BookStatusAvailable, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, repo.Create(ctx, book))

	dup := *book
	dup.ID = "book-2"
	err := repo.Create(ctx, &dup)
	assert.ErrorIs(t, err, domain.ErrDuplicate, "el UNIQUE de isbn se traduce a ErrDuplicate")
}

func TestTxRunner_RollbackSinEfectos(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Now()

	itemRepo := NewItemRepository(s.DB())
	require.NoError(t, itemRepo.Create(ctx, &entity.Item{
		ID: "item-1", Name: "Tornillo", Quantity: 10,
		UnitPrice: decimal.NewFromInt(100), CreatedAt: now, UpdatedAt: now,
	}))

	runner := NewTxRunner(s.DB())
	sentinel := domain.ErrInsufficientStock
	err := runner.Run(ctx, func(ir repository.ItemRepository, tr repository.StockTransactionRepository) error {
		if err := ir.UpdateQuantity(ctx, "item-1", 0, now); err != nil {
			return err
		}
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	// El rollback descarta la escritura dentro de la tx.
	item, err := itemRepo.GetByID(ctx, "item-1")
	require.NoError(t, err)
	assert.Equal(t, int64(10), item.Quantity)
}

func TestBorrowRecordRepo_CloseUnaSolaVez(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Now()

	bookRepo := NewBookRepository(s.DB())
	memberRepo := NewMemberRepository(s.DB())
	borrowRepo := NewBorrowRecordRepository(s.DB())

	require.NoError(t, bookRepo.Create(ctx, &entity.Book{
		ID: "book-1", Title: "Rayuela", Author: "J. Cortázar", ISBN: "x",
		Status: entity.BookStatusBorrowed, CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, memberRepo.Create(ctx, &entity.Member{
		ID: "m-1", Name: "Ana", Email: "ana@example.com",
		Status: entity.MemberStatusActive, JoinedAt: now, CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, borrowRepo.Create(ctx, &entity.BorrowRecord{
		ID: "rec-1", BookID: "book-1", MemberID: "m-1",
		BorrowDate: now, DueDate: now.AddDate(0, 0, 14),
		LateFee: decimal.Zero, Status: entity.BorrowStatusOpen, CreatedAt: now,
	}))

	fee := decimal.RequireFromString("1.50")
	require.NoError(t, borrowRepo.Close(ctx, "rec-1", now, fee))

	rec, err := borrowRepo.GetByID(ctx, "rec-1")
	require.NoError(t, err)
	assert.Equal(t, entity.BorrowStatusReturned, rec.Status)
	require.NotNil(t, rec.ReturnDate)
	assert.True(t, rec.LateFee.Equal(fee))

	// El segundo cierre no encuentra préstamo vigente.
	err = borrowRepo.Close(ctx, "rec-1", now, decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReportRepo_LowStockYDashboard(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Now()

	itemRepo := NewItemRepository(s.DB())
	require.NoError(t, itemRepo.Create(ctx, &entity.Item{
		ID: "item-1", Name: "Tornillo", Quantity: 2, MinStock: 5,
		UnitPrice: decimal.NewFromInt(100), CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, itemRepo.Create(ctx, &entity.Item{
		ID: "item-2", Name: "Tuerca", Quantity: 50, MinStock: 5,
		UnitPrice: decimal.NewFromInt(10), CreatedAt: now, UpdatedAt: now,
	}))
	// En el umbral exacto también cuenta como stock bajo.
	require.NoError(t, itemRepo.Create(ctx, &entity.Item{
		ID: "item-3", Name: "Arandela", Quantity: 5, MinStock: 5,
		UnitPrice: decimal.NewFromInt(5), CreatedAt: now, UpdatedAt: now,
	}))

	reportRepo := NewReportRepository(s.DB())
	low, err := reportRepo.LowStockItems(ctx)
	require.NoError(t, err)
	require.Len(t, low, 2)
	assert.Equal(t, "item-1", low[0].ID, "ordenado por cantidad ascendente")

	stats, err := reportRepo.DashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalItems)
	assert.Equal(t, int64(2), stats.LowStockCount)
	// 2*100 + 50*10 + 5*5 = 725
	assert.True(t, stats.TotalValue.Equal(decimal.NewFromInt(725)), "obtuvo %s", stats.TotalValue)
}

package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/application/inventory"
	"github.com/tu-usuario/stock-ledger/internal/application/usecase"
	"github.com/tu-usuario/stock-ledger/internal/domain"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria (solo lo que ejercitan estos tests)
// ──────────────────────────────────────────────────────────────────────────────

type fakeItemRepo struct {
	items map[string]*entity.Item
}

func newFakeItemRepo() *fakeItemRepo { return &fakeItemRepo{items: make(map[string]*entity.Item)} }

func (r *fakeItemRepo) Create(_ context.Context, item *entity.Item) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeItemRepo) GetByID(_ context.Context, id string) (*entity.Item, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

func (r *fakeItemRepo) List(_ context.Context, _ repository.ItemFilter) ([]*entity.Item, error) {
	out := make([]*entity.Item, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}
	return out, nil
}

func (r *fakeItemRepo) Update(_ context.Context, item *entity.Item) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeItemRepo) UpdateQuantity(_ context.Context, id string, qty int64, updatedAt time.Time) error {
	item, ok := r.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	item.Quantity = qty
	item.UpdatedAt = updatedAt
	return nil
}

func (r *fakeItemRepo) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

type fakeTxRepo struct {
	txs []*entity.StockTransaction
}

func (r *fakeTxRepo) Create(_ context.Context, tx *entity.StockTransaction) error {
	cp := *tx
	r.txs = append(r.txs, &cp)
	return nil
}

func (r *fakeTxRepo) GetByID(_ context.Context, _ string) (*entity.StockTransaction, error) {
	return nil, nil
}

func (r *fakeTxRepo) ListBetween(_ context.Context, _, _ time.Time, _ string, _, _ int) ([]*repository.TransactionWithItem, error) {
	return nil, nil
}

func (r *fakeTxRepo) ListRecent(_ context.Context, _ int) ([]*repository.TransactionWithItem, error) {
	return nil, nil
}

func (r *fakeTxRepo) CountByItem(_ context.Context, itemID string) (int64, error) {
	var n int64
	for _, tx := range r.txs {
		if tx.ItemID == itemID {
			n++
		}
	}
	return n, nil
}

type fakeInventoryRunner struct {
	itemRepo *fakeItemRepo
	txRepo   *fakeTxRepo
}

func (r *fakeInventoryRunner) Run(ctx context.Context, fn func(
	repository.ItemRepository, repository.StockTransactionRepository,
) error) error {
	return fn(r.itemRepo, r.txRepo)
}

type fakeBookRepo struct {
	books map[string]*entity.Book
}

func newFakeBookRepo() *fakeBookRepo { return &fakeBookRepo{books: make(map[string]*entity.Book)} }

func (r *fakeBookRepo) Create(_ context.Context, b *entity.Book) error {
	cp := *b
	r.books[b.ID] = &cp
	return nil
}

func (r *fakeBookRepo) GetByID(_ context.Context, id string) (*entity.Book, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookRepo) GetByISBN(_ context.Context, isbn string) (*entity.Book, error) {
	for _, b := range r.books {
		if b.ISBN == isbn {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeBookRepo) List(_ context.Context, _ repository.BookFilter) ([]*entity.Book, error) {
	return nil, nil
}

func (r *fakeBookRepo) Update(_ context.Context, b *entity.Book) error {
	cp := *b
	r.books[b.ID] = &cp
	return nil
}

func (r *fakeBookRepo) UpdateStatus(_ context.Context, id, status string, updatedAt time.Time) error {
	b, ok := r.books[id]
	if !ok {
		return domain.ErrNotFound
	}
	b.Status = status
	b.UpdatedAt = updatedAt
	return nil
}

func (r *fakeBookRepo) Delete(_ context.Context, id string) error {
	delete(r.books, id)
	return nil
}

func (r *fakeBookRepo) CountByCategory(_ context.Context, category string) (int64, error) {
	var n int64
	for _, b := range r.books {
		if b.Category == category {
			n++
		}
	}
	return n, nil
}

type fakeMemberRepo struct {
	members map[string]*entity.Member
}

func newFakeMemberRepo() *fakeMemberRepo {
	return &fakeMemberRepo{members: make(map[string]*entity.Member)}
}

func (r *fakeMemberRepo) Create(_ context.Context, m *entity.Member) error {
	cp := *m
	r.members[m.ID] = &cp
	return nil
}

func (r *fakeMemberRepo) GetByID(_ context.Context, id string) (*entity.Member, error) {
	m, ok := r.members[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMemberRepo) GetByEmail(_ context.Context, email string) (*entity.Member, error) {
	for _, m := range r.members {
		if m.Email == email {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeMemberRepo) List(_ context.Context, _ repository.MemberFilter) ([]*entity.Member, error) {
	return nil, nil
}

func (r *fakeMemberRepo) Update(_ context.Context, m *entity.Member) error {
	cp := *m
	r.members[m.ID] = &cp
	return nil
}

func (r *fakeMemberRepo) Delete(_ context.Context, id string) error {
	delete(r.members, id)
	return nil
}

// fakeBorrowRepo solo implementa los conteos que usan los guards de borrado.
type fakeBorrowRepo struct {
	records []*entity.BorrowRecord
}

func (r *fakeBorrowRepo) Create(_ context.Context, rec *entity.BorrowRecord) error {
	cp := *rec
	r.records = append(r.records, &cp)
	return nil
}

func (r *fakeBorrowRepo) GetByID(_ context.Context, _ string) (*entity.BorrowRecord, error) {
	return nil, nil
}

func (r *fakeBorrowRepo) GetOpenByBook(_ context.Context, _ string) (*entity.BorrowRecord, error) {
	return nil, nil
}

func (r *fakeBorrowRepo) CountOpenByMember(_ context.Context, memberID string) (int, error) {
	n := 0
	for _, rec := range r.records {
		if rec.MemberID == memberID && rec.Status == entity.BorrowStatusOpen {
			n++
		}
	}
	return n, nil
}

func (r *fakeBorrowRepo) Close(_ context.Context, _ string, _ time.Time, _ decimal.Decimal) error {
	return nil
}

func (r *fakeBorrowRepo) ListOpen(_ context.Context, _, _ int) ([]*entity.BorrowRecord, error) {
	return nil, nil
}

func (r *fakeBorrowRepo) ListOverdue(_ context.Context, _ time.Time) ([]*repository.OverdueLoan, error) {
	return nil, nil
}

func (r *fakeBorrowRepo) CountByBook(_ context.Context, bookID string) (int64, error) {
	var n int64
	for _, rec := range r.records {
		if rec.BookID == bookID {
			n++
		}
	}
	return n, nil
}

func (r *fakeBorrowRepo) CountByMember(_ context.Context, memberID string) (int64, error) {
	var n int64
	for _, rec := range r.records {
		if rec.MemberID == memberID {
			n++
		}
	}
	return n, nil
}

type fakeCategoryRepo struct {
	categories map[string]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[string]*entity.Category)}
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) GetByName(_ context.Context, name string) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id string) error {
	delete(r.categories, id)
	return nil
}

func newItemUseCase() (*usecase.ItemUseCase, *fakeItemRepo, *fakeTxRepo) {
	itemRepo := newFakeItemRepo()
	txRepo := &fakeTxRepo{}
	runner := &fakeInventoryRunner{itemRepo: itemRepo, txRepo: txRepo}
	registerUC := inventory.NewRegisterTransactionUseCase(runner)
	return usecase.NewItemUseCase(itemRepo, txRepo, runner, registerUC), itemRepo, txRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Items
// ──────────────────────────────────────────────────────────────────────────────

func TestItemCreate_ConStockInicial(t *testing.T) {
	uc, itemRepo, txRepo := newItemUseCase()

	resp, err := uc.Create(context.Background(), dto.CreateItemRequest{
		Name:            "Tornillo 3/8",
		UnitPrice:       decimal.NewFromInt(1500),
		MinStock:        5,
		InitialQuantity: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(20), resp.Quantity)

	// El stock inicial queda como transacción IN en el historial.
	require.Len(t, txRepo.txs, 1)
	assert.Equal(t, entity.TransactionTypeIN, txRepo.txs[0].Type)
	assert.Equal(t, int64(20), txRepo.txs[0].Quantity)
	assert.Equal(t, "Stock inicial", txRepo.txs[0].Notes)

	item, _ := itemRepo.GetByID(context.Background(), resp.ID)
	assert.Equal(t, int64(20), item.Quantity)
}

func TestItemCreate_SinStockInicial(t *testing.T) {
	uc, _, txRepo := newItemUseCase()

	resp, err := uc.Create(context.Background(), dto.CreateItemRequest{
		Name:      "Tuerca 3/8",
		UnitPrice: decimal.NewFromInt(800),
	})
	require.NoError(t, err)
	assert.Zero(t, resp.Quantity)
	assert.Empty(t, txRepo.txs, "sin stock inicial no hay transacción")
}

func TestItemUpdate_NoTocaCantidad(t *testing.T) {
	uc, itemRepo, _ := newItemUseCase()
	itemRepo.items["item-1"] = &entity.Item{ID: "item-1", Name: "Tornillo", Quantity: 42, UnitPrice: decimal.NewFromInt(1500)}

	nuevo := "Tornillo hexagonal"
	resp, err := uc.Update(context.Background(), "item-1", dto.UpdateItemRequest{Name: &nuevo})
	require.NoError(t, err)
	assert.Equal(t, nuevo, resp.Name)
	assert.Equal(t, int64(42), resp.Quantity, "la cantidad solo cambia por transacciones")
}

func TestItemDelete_ConHistorialRechazado(t *testing.T) {
	uc, itemRepo, txRepo := newItemUseCase()
	itemRepo.items["item-1"] = &entity.Item{ID: "item-1", Name: "Tornillo"}
	txRepo.txs = append(txRepo.txs, &entity.StockTransaction{ID: "tx-1", ItemID: "item-1", Type: "IN", Quantity: 1})

	err := uc.Delete(context.Background(), "item-1")
	assert.ErrorIs(t, err, domain.ErrReferencedEntity)

	// Sigue existiendo.
	item, _ := itemRepo.GetByID(context.Background(), "item-1")
	assert.NotNil(t, item)
}

func TestItemDelete_SinHistorial(t *testing.T) {
	uc, itemRepo, _ := newItemUseCase()
	itemRepo.items["item-1"] = &entity.Item{ID: "item-1", Name: "Tornillo"}

	require.NoError(t, uc.Delete(context.Background(), "item-1"))
	item, _ := itemRepo.GetByID(context.Background(), "item-1")
	assert.Nil(t, item)
}

// ──────────────────────────────────────────────────────────────────────────────
// Books
// ──────────────────────────────────────────────────────────────────────────────

func TestBookCreate_ISBNDuplicado(t *testing.T) {
	bookRepo := newFakeBookRepo()
	uc := usecase.NewBookUseCase(bookRepo, &fakeBorrowRepo{})

	first, err := uc.Create(context.Background(), dto.CreateBookRequest{Title: "Rayuela", Author: "J. Cortázar", ISBN: "978-8437604572"})
	require.NoError(t, err)
	assert.Equal(t, entity.BookStatusAvailable, first.Status, "el libro nace disponible")

	_, err = uc.Create(context.Background(), dto.CreateBookRequest{Title: "Rayuela (2a ed.)", Author: "J. Cortázar", ISBN: "978-8437604572"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestBookDelete_Guards(t *testing.T) {
	bookRepo := newFakeBookRepo()
	borrowRepo := &fakeBorrowRepo{}
	uc := usecase.NewBookUseCase(bookRepo, borrowRepo)

	// Prestado: conflicto.
	bookRepo.books["book-1"] = &entity.Book{ID: "book-1", Status: entity.BookStatusBorrowed}
	assert.ErrorIs(t, uc.Delete(context.Background(), "book-1"), domain.ErrConflict)

	// Con historial: entidad referenciada.
	bookRepo.books["book-2"] = &entity.Book{ID: "book-2", Status: entity.BookStatusAvailable}
	borrowRepo.records = append(borrowRepo.records, &entity.BorrowRecord{ID: "rec-1", BookID: "book-2", Status: entity.BorrowStatusReturned})
	assert.ErrorIs(t, uc.Delete(context.Background(), "book-2"), domain.ErrReferencedEntity)

	// Sin historial: se borra.
	bookRepo.books["book-3"] = &entity.Book{ID: "book-3", Status: entity.BookStatusAvailable}
	assert.NoError(t, uc.Delete(context.Background(), "book-3"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Members
// ──────────────────────────────────────────────────────────────────────────────

func TestMemberCreate_EmailDuplicado(t *testing.T) {
	memberRepo := newFakeMemberRepo()
	uc := usecase.NewMemberUseCase(memberRepo, &fakeBorrowRepo{})

	first, err := uc.Create(context.Background(), dto.CreateMemberRequest{Name: "Ana Pérez", Email: "ana@example.com"})
	require.NoError(t, err)
	assert.Equal(t, entity.MemberStatusActive, first.Status, "el miembro nace activo")

	_, err = uc.Create(context.Background(), dto.CreateMemberRequest{Name: "Ana P.", Email: "ana@example.com"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestMemberDelete_Guards(t *testing.T) {
	memberRepo := newFakeMemberRepo()
	borrowRepo := &fakeBorrowRepo{}
	uc := usecase.NewMemberUseCase(memberRepo, borrowRepo)

	// Con préstamo vigente: conflicto.
	memberRepo.members["m-1"] = &entity.Member{ID: "m-1", Status: entity.MemberStatusActive}
	borrowRepo.records = append(borrowRepo.records, &entity.BorrowRecord{ID: "rec-1", MemberID: "m-1", Status: entity.BorrowStatusOpen})
	assert.ErrorIs(t, uc.Delete(context.Background(), "m-1"), domain.ErrConflict)

	// Con historial cerrado: entidad referenciada.
	memberRepo.members["m-2"] = &entity.Member{ID: "m-2", Status: entity.MemberStatusActive}
	borrowRepo.records = append(borrowRepo.records, &entity.BorrowRecord{ID: "rec-2", MemberID: "m-2", Status: entity.BorrowStatusReturned})
	assert.ErrorIs(t, uc.Delete(context.Background(), "m-2"), domain.ErrReferencedEntity)

	// Sin historial: se borra.
	memberRepo.members["m-3"] = &entity.Member{ID: "m-3", Status: entity.MemberStatusInactive}
	assert.NoError(t, uc.Delete(context.Background(), "m-3"))
}

func TestMemberUpdate_Desactivar(t *testing.T) {
	memberRepo := newFakeMemberRepo()
	uc := usecase.NewMemberUseCase(memberRepo, &fakeBorrowRepo{})
	memberRepo.members["m-1"] = &entity.Member{ID: "m-1", Name: "Ana", Email: "ana@example.com", Status: entity.MemberStatusActive}

	inactive := entity.MemberStatusInactive
	resp, err := uc.Update(context.Background(), "m-1", dto.UpdateMemberRequest{Status: &inactive})
	require.NoError(t, err)
	assert.Equal(t, entity.MemberStatusInactive, resp.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Categories
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoryDelete_Referenciada(t *testing.T) {
	categoryRepo := newFakeCategoryRepo()
	bookRepo := newFakeBookRepo()
	uc := usecase.NewCategoryUseCase(categoryRepo, bookRepo)

	categoryRepo.categories["cat-1"] = &entity.Category{ID: "cat-1", Name: "Novela"}
	bookRepo.books["book-1"] = &entity.Book{ID: "book-1", Category: "Novela"}

	assert.ErrorIs(t, uc.Delete(context.Background(), "cat-1"), domain.ErrReferencedEntity)

	// Sin libros que la referencien, se borra.
	categoryRepo.categories["cat-2"] = &entity.Category{ID: "cat-2", Name: "Ensayo"}
	assert.NoError(t, uc.Delete(context.Background(), "cat-2"))
}

func TestCategoryCreate_NombreDuplicado(t *testing.T) {
	categoryRepo := newFakeCategoryRepo()
	uc := usecase.NewCategoryUseCase(categoryRepo, newFakeBookRepo())

	_, err := uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Novela"})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Novela"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

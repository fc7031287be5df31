package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/domain"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
)

// BookUseCase casos de uso CRUD para libros. El estado de circulación
// se gestiona en el caso de uso de circulación, no aquí.
type BookUseCase struct {
	repo       repository.BookRepository
	borrowRepo repository.BorrowRecordRepository
}

// NewBookUseCase construye el caso de uso.
func NewBookUseCase(repo repository.BookRepository, borrowRepo repository.BorrowRecordRepository) *BookUseCase {
	return &BookUseCase{repo: repo, borrowRepo: borrowRepo}
}

// Create crea un libro en estado available. El ISBN debe ser único.
func (uc *BookUseCase) Create(ctx context.Context, in dto.CreateBookRequest) (*dto.BookResponse, error) {
	if in.Title == "" || in.Author == "" || in.ISBN == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByISBN(ctx, in.ISBN)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	book := &entity.Book{
		ID:        uuid.New().String(),
		Title:     in.Title,
		Author:    in.Author,
		ISBN:      in.ISBN,
		Category:  in.Category,
		Status:    entity.BookStatusAvailable,
		Location:  in.Location,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, book); err != nil {
		return nil, err
	}
	return toBookResponse(book), nil
}

// GetByID obtiene un libro por ID.
func (uc *BookUseCase) GetByID(ctx context.Context, id string) (*dto.BookResponse, error) {
	book, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, domain.ErrNotFound
	}
	return toBookResponse(book), nil
}

// Update actualiza los datos bibliográficos. Status e ISBN no son editables.
func (uc *BookUseCase) Update(ctx context.Context, id string, in dto.UpdateBookRequest) (*dto.BookResponse, error) {
	book, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, domain.ErrNotFound
	}
	if in.Title != nil {
		if *in.Title == "" {
			return nil, domain.ErrInvalidInput
		}
		book.Title = *in.Title
	}
	if in.Author != nil {
		if *in.Author == "" {
			return nil, domain.ErrInvalidInput
		}
		book.Author = *in.Author
	}
	if in.Category != nil {
		book.Category = *in.Category
	}
	if in.Location != nil {
		book.Location = *in.Location
	}
	if in.Notes != nil {
		book.Notes = *in.Notes
	}
	book.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, book); err != nil {
		return nil, err
	}
	return toBookResponse(book), nil
}

// List lista libros con búsqueda, filtro por estado y paginación.
func (uc *BookUseCase) List(ctx context.Context, query, status string, limit, offset int) (*dto.BookListResponse, error) {
	if status != "" && !entity.ValidBookStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.List(ctx, repository.BookFilter{Query: query, Status: status, Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	out := &dto.BookListResponse{Books: make([]dto.BookResponse, 0, len(list)), Limit: limit, Offset: offset}
	for _, book := range list {
		out.Books = append(out.Books, *toBookResponse(book))
	}
	return out, nil
}

// Delete elimina un libro. Falla con ErrConflict si está prestado y con
// ErrReferencedEntity si tiene historial de préstamos.
func (uc *BookUseCase) Delete(ctx context.Context, id string) error {
	book, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if book == nil {
		return domain.ErrNotFound
	}
	if book.Status == entity.BookStatusBorrowed {
		return domain.ErrConflict
	}
	refs, err := uc.borrowRepo.CountByBook(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return domain.ErrReferencedEntity
	}
	return uc.repo.Delete(ctx, id)
}

func toBookResponse(book *entity.Book) *dto.BookResponse {
	return &dto.BookResponse{
		ID:        book.ID,
		Title:     book.Title,
		Author:    book.Author,
		ISBN:      book.ISBN,
		Category:  book.Category,
		Status:    book.Status,
		Location:  book.Location,
		Notes:     book.Notes,
		CreatedAt: book.CreatedAt,
		UpdatedAt: book.UpdatedAt,
	}
}

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

// CategoryUseCase casos de uso CRUD para categorías del catálogo.
type CategoryUseCase struct {
	repo     repository.CategoryRepository
	bookRepo repository.BookRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, bookRepo repository.BookRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, bookRepo: bookRepo}
}

// Create crea una categoría. El nombre debe ser único.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// List lista todas las categorías.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, category := range list {
		out = append(out, *toCategoryResponse(category))
	}
	return out, nil
}

// Delete elimina una categoría. Falla con ErrReferencedEntity si algún
// libro la referencia por nombre.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	refs, err := uc.bookRepo.CountByCategory(ctx, category.Name)
	if err != nil {
		return err
	}
	if refs > 0 {
		return domain.ErrReferencedEntity
	}
	return uc.repo.Delete(ctx, id)
}

func toCategoryResponse(category *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		CreatedAt:   category.CreatedAt,
	}
}

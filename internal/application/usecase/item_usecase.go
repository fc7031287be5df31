package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/application/inventory"
	"github.com/tu-usuario/stock-ledger/internal/domain"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
)

// ItemUseCase casos de uso CRUD para artículos. Quantity se maneja vía transacciones.
type ItemUseCase struct {
	repo       repository.ItemRepository
	txRepo     repository.StockTransactionRepository
	txRunner   inventory.TxRunner
	registerUC *inventory.RegisterTransactionUseCase
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(
	repo repository.ItemRepository,
	txRepo repository.StockTransactionRepository,
	txRunner inventory.TxRunner,
	registerUC *inventory.RegisterTransactionUseCase,
) *ItemUseCase {
	return &ItemUseCase{repo: repo, txRepo: txRepo, txRunner: txRunner, registerUC: registerUC}
}

// Create crea un artículo. Si InitialQuantity > 0 registra además una
// transacción IN "Stock inicial" en la misma transacción de BD.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.Name == "" || in.UnitPrice.IsNegative() || in.MinStock < 0 || in.InitialQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.Item{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Quantity:    0,
		UnitPrice:   in.UnitPrice,
		MinStock:    in.MinStock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		txRepo repository.StockTransactionRepository,
	) error {
		if err := itemRepo.Create(ctx, item); err != nil {
			return err
		}
		if in.InitialQuantity > 0 {
			if err := uc.registerUC.RegisterINInTx(ctx, itemRepo, txRepo, item, in.InitialQuantity, "Stock inicial", now); err != nil {
				return err
			}
			item.Quantity = in.InitialQuantity
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID obtiene un artículo por ID.
func (uc *ItemUseCase) GetByID(ctx context.Context, id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(item), nil
}

// Update actualiza un artículo. No permite modificar Quantity (estado derivado).
func (uc *ItemUseCase) Update(ctx context.Context, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		item.Name = *in.Name
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.UnitPrice != nil {
		if in.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		item.UnitPrice = *in.UnitPrice
	}
	if in.MinStock != nil {
		if *in.MinStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		item.MinStock = *in.MinStock
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// List lista artículos con búsqueda y paginación.
func (uc *ItemUseCase) List(ctx context.Context, query string, limit, offset int) (*dto.ItemListResponse, error) {
	list, err := uc.repo.List(ctx, repository.ItemFilter{Query: query, Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	out := &dto.ItemListResponse{Items: make([]dto.ItemResponse, 0, len(list)), Limit: limit, Offset: offset}
	for _, item := range list {
		out.Items = append(out.Items, *toItemResponse(item))
	}
	return out, nil
}

// Delete elimina un artículo. Falla con ErrReferencedEntity si existe
// cualquier transacción que lo referencie (el historial es inmutable).
func (uc *ItemUseCase) Delete(ctx context.Context, id string) error {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	refs, err := uc.txRepo.CountByItem(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return domain.ErrReferencedEntity
	}
	return uc.repo.Delete(ctx, id)
}

func toItemResponse(item *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Category:    item.Category,
		Quantity:    item.Quantity,
		UnitPrice:   item.UnitPrice,
		MinStock:    item.MinStock,
		LowStock:    item.BelowMinStock(),
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

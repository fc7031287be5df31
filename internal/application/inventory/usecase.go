package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/domain"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/domain/ledger"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
)

// RegisterTransactionUseCase registra transacciones de stock (IN/OUT) de forma
// transaccional: cantidad derivada y registro histórico se escriben juntos o no
// se escribe nada (Commit/Rollback en el TxRunner).
type RegisterTransactionUseCase struct {
	txRunner TxRunner
}

// NewRegisterTransactionUseCase construye el caso de uso.
func NewRegisterTransactionUseCase(txRunner TxRunner) *RegisterTransactionUseCase {
	return &RegisterTransactionUseCase{txRunner: txRunner}
}

// RegisterTransaction valida el evento, aplica el delta sobre la cantidad del
// artículo y persiste la transacción. Rechaza sin efectos cuando el evento
// dejaría la cantidad negativa (ErrInsufficientStock) o es inválido.
func (uc *RegisterTransactionUseCase) RegisterTransaction(ctx context.Context, in dto.RegisterTransactionRequest) (*dto.TransactionResponse, error) {
	if in.ItemID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Type != entity.TransactionTypeIN && in.Type != entity.TransactionTypeOUT {
		return nil, domain.ErrInvalidInput
	}
	if in.UnitPrice != nil && in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var created *entity.StockTransaction

	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		txRepo repository.StockTransactionRepository,
	) error {
		item, err := itemRepo.GetByID(ctx, in.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}

		newQty, err := ledger.ApplyStock(item.Quantity, in.Type, in.Quantity)
		if err != nil {
			return err
		}

		unitPrice := item.UnitPrice
		if in.UnitPrice != nil {
			unitPrice = *in.UnitPrice
		}

		if err := itemRepo.UpdateQuantity(ctx, item.ID, newQty, now); err != nil {
			return err
		}
		created = &entity.StockTransaction{
			ID:          uuid.New().String(),
			ItemID:      item.ID,
			Type:        in.Type,
			Quantity:    in.Quantity,
			UnitPrice:   unitPrice,
			TotalAmount: decimal.NewFromInt(in.Quantity).Mul(unitPrice),
			Reference:   in.Reference,
			Notes:       in.Notes,
			CreatedAt:   now,
		}
		return txRepo.Create(ctx, created)
	})
	if err != nil {
		return nil, err
	}
	return toTransactionResponse(created), nil
}

// RegisterINInTx registra una entrada usando los repositorios del caller (misma
// transacción). Lo usa ItemUseCase para el stock inicial al crear un artículo.
func (uc *RegisterTransactionUseCase) RegisterINInTx(
	ctx context.Context,
	itemRepo repository.ItemRepository,
	txRepo repository.StockTransactionRepository,
	item *entity.Item,
	quantity int64,
	notes string,
	now time.Time,
) error {
	newQty, err := ledger.ApplyStock(item.Quantity, entity.TransactionTypeIN, quantity)
	if err != nil {
		return err
	}
	if err := itemRepo.UpdateQuantity(ctx, item.ID, newQty, now); err != nil {
		return err
	}
	tx := &entity.StockTransaction{
		ID:          uuid.New().String(),
		ItemID:      item.ID,
		Type:        entity.TransactionTypeIN,
		Quantity:    quantity,
		UnitPrice:   item.UnitPrice,
		TotalAmount: decimal.NewFromInt(quantity).Mul(item.UnitPrice),
		Notes:       notes,
		CreatedAt:   now,
	}
	return txRepo.Create(ctx, tx)
}

func toTransactionResponse(tx *entity.StockTransaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:          tx.ID,
		ItemID:      tx.ItemID,
		Type:        tx.Type,
		Quantity:    tx.Quantity,
		UnitPrice:   tx.UnitPrice,
		TotalAmount: tx.TotalAmount,
		Reference:   tx.Reference,
		Notes:       tx.Notes,
		CreatedAt:   tx.CreatedAt,
	}
}

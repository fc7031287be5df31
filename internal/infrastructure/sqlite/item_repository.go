package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tu-usuario/stock-ledger/internal/domain"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre SQLite (usable con db o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de persistencia para artículos. Pasar db o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumns = `id, name, description, category, quantity, unit_price, min_stock, created_at, updated_at`

// Create persiste un nuevo artículo.
func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	query := `
		INSERT INTO items (` + itemColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.q.ExecContext(ctx, query,
		item.ID, item.Name, item.Description, item.Category,
		item.Quantity, item.UnitPrice.String(), item.MinStock,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID. Devuelve (nil, nil) si no existe.
func (r *ItemRepo) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = ?`
	item, err := scanItem(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

// List lista artículos con búsqueda por nombre/descripción y paginación.
func (r *ItemRepo) List(ctx context.Context, filter repository.ItemFilter) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items`
	args := []any{}
	if filter.Query != "" {
		query += ` WHERE name LIKE ? OR description LIKE ?`
		like := "%" + filter.Query + "%"
		args = append(args, like, like)
	}
	query += ` ORDER BY name`
	if filter.Limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var out []*entity.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// Update actualiza los datos editables del artículo (incluida la cantidad derivada).
func (r *ItemRepo) Update(ctx context.Context, item *entity.Item) error {
	query := `
		UPDATE items
		SET name = ?, description = ?, category = ?, quantity = ?, unit_price = ?, min_stock = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.q.ExecContext(ctx, query,
		item.Name, item.Description, item.Category, item.Quantity,
		item.UnitPrice.String(), item.MinStock, item.UpdatedAt, item.ID,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return requireAffected(res, "update item")
}

// UpdateQuantity fija la cantidad derivada. Solo el motor de stock debe llamarlo.
func (r *ItemRepo) UpdateQuantity(ctx context.Context, id string, qty int64, updatedAt time.Time) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE items SET quantity = ?, updated_at = ? WHERE id = ?`,
		qty, updatedAt, id,
	)
	if err != nil {
		return fmt.Errorf("update item quantity: %w", err)
	}
	return requireAffected(res, "update item quantity")
}

// Delete elimina un artículo por ID.
func (r *ItemRepo) Delete(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return requireAffected(res, "delete item")
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*entity.Item, error) {
	var item entity.Item
	var unitPrice string
	if err := row.Scan(
		&item.ID, &item.Name, &item.Description, &item.Category,
		&item.Quantity, &unitPrice, &item.MinStock,
		&item.CreatedAt, &item.UpdatedAt,
	); err != nil {
		return nil, err
	}
	price, err := scanDecimal(unitPrice)
	if err != nil {
		return nil, err
	}
	item.UnitPrice = price
	return &item, nil
}

// requireAffected traduce "cero filas afectadas" a ErrNotFound.
func requireAffected(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

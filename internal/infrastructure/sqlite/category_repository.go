package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tu-usuario/stock-ledger/internal/domain"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre SQLite.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar db o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una categoría. Nombre duplicado devuelve ErrDuplicate.
func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO categories (id, name, description, created_at) VALUES (?, ?, ?, ?)`,
		category.ID, category.Name, category.Description, category.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID. Devuelve (nil, nil) si no existe.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	return r.getBy(ctx, `SELECT id, name, description, created_at FROM categories WHERE id = ?`, id)
}

// GetByName obtiene una categoría por nombre. Devuelve (nil, nil) si no existe.
func (r *CategoryRepo) GetByName(ctx context.Context, name string) (*entity.Category, error) {
	return r.getBy(ctx, `SELECT id, name, description, created_at FROM categories WHERE name = ?`, name)
}

func (r *CategoryRepo) getBy(ctx context.Context, query string, arg any) (*entity.Category, error) {
	var category entity.Category
	err := r.q.QueryRowContext(ctx, query, arg).Scan(
		&category.ID, &category.Name, &category.Description, &category.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &category, nil
}

// List lista todas las categorías ordenadas por nombre.
func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, name, description, created_at FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []*entity.Category
	for rows.Next() {
		var category entity.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Description, &category.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, &category)
	}
	return out, rows.Err()
}

// Delete elimina una categoría por ID.
func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return requireAffected(res, "delete category")
}

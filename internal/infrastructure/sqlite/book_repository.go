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

var _ repository.BookRepository = (*BookRepo)(nil)

// BookRepo implementación del puerto BookRepository sobre SQLite.
type BookRepo struct {
	q Querier
}

// NewBookRepository construye el adaptador. Pasar db o tx (Querier).
func NewBookRepository(q Querier) *BookRepo {
	return &BookRepo{q: q}
}

const bookColumns = `id, title, author, isbn, category, status, location, notes, created_at, updated_at`

// Create persiste un nuevo libro. ISBN duplicado devuelve ErrDuplicate.
func (r *BookRepo) Create(ctx context.Context, book *entity.Book) error {
	query := `
		INSERT INTO books (` + bookColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.q.ExecContext(ctx, query,
		book.ID, book.Title, book.Author, book.ISBN, book.Category,
		book.Status, book.Location, book.Notes, book.CreatedAt, book.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert book: %w", err)
	}
	return nil
}

// GetByID obtiene un libro por ID. Devuelve (nil, nil) si no existe.
func (r *BookRepo) GetByID(ctx context.Context, id string) (*entity.Book, error) {
	return r.getBy(ctx, `SELECT `+bookColumns+` FROM books WHERE id = ?`, id)
}

// GetByISBN obtiene un libro por ISBN. Devuelve (nil, nil) si no existe.
func (r *BookRepo) GetByISBN(ctx context.Context, isbn string) (*entity.Book, error) {
	return r.getBy(ctx, `SELECT `+bookColumns+` FROM books WHERE isbn = ?`, isbn)
}

func (r *BookRepo) getBy(ctx context.Context, query string, arg any) (*entity.Book, error) {
	var book entity.Book
	err := r.q.QueryRowContext(ctx, query, arg).Scan(
		&book.ID, &book.Title, &book.Author, &book.ISBN, &book.Category,
		&book.Status, &book.Location, &book.Notes, &book.CreatedAt, &book.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get book: %w", err)
	}
	return &book, nil
}

// List lista libros con búsqueda en título/autor/ISBN, filtro por estado y paginación.
func (r *BookRepo) List(ctx context.Context, filter repository.BookFilter) ([]*entity.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE 1 = 1`
	args := []any{}
	if filter.Query != "" {
		query += ` AND (title LIKE ? OR author LIKE ? OR isbn LIKE ?)`
		like := "%" + filter.Query + "%"
		args = append(args, like, like, like)
	}
	if filter.Status != "" {
		query += ` AND status = ?`
		args = append(args, filter.Status)
	}
	query += ` ORDER BY title`
	if filter.Limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	var out []*entity.Book
	for rows.Next() {
		var book entity.Book
		if err := rows.Scan(
			&book.ID, &book.Title, &book.Author, &book.ISBN, &book.Category,
			&book.Status, &book.Location, &book.Notes, &book.CreatedAt, &book.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		out = append(out, &book)
	}
	return out, rows.Err()
}

// Update actualiza los datos bibliográficos (no el estado).
func (r *BookRepo) Update(ctx context.Context, book *entity.Book) error {
	query := `
		UPDATE books
		SET title = ?, author = ?, category = ?, location = ?, notes = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.q.ExecContext(ctx, query,
		book.Title, book.Author, book.Category, book.Location, book.Notes,
		book.UpdatedAt, book.ID,
	)
	if err != nil {
		return fmt.Errorf("update book: %w", err)
	}
	return requireAffected(res, "update book")
}

// UpdateStatus fija el estado derivado del libro.
func (r *BookRepo) UpdateStatus(ctx context.Context, id, status string, updatedAt time.Time) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE books SET status = ?, updated_at = ? WHERE id = ?`,
		status, updatedAt, id,
	)
	if err != nil {
		return fmt.Errorf("update book status: %w", err)
	}
	return requireAffected(res, "update book status")
}

// Delete elimina un libro por ID.
func (r *BookRepo) Delete(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM books WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	return requireAffected(res, "delete book")
}

// CountByCategory cuenta libros que referencian una categoría por nombre.
func (r *BookRepo) CountByCategory(ctx context.Context, category string) (int64, error) {
	var n int64
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM books WHERE category = ?`, category,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count books by category: %w", err)
	}
	return n, nil
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
)

var _ repository.BorrowRecordRepository = (*BorrowRecordRepo)(nil)

// BorrowRecordRepo implementación del puerto BorrowRecordRepository sobre SQLite.
// Inserta, consulta y cierra: los registros no se editan ni se borran.
type BorrowRecordRepo struct {
	q Querier
}

// NewBorrowRecordRepository construye el adaptador. Pasar db o tx (Querier).
func NewBorrowRecordRepository(q Querier) *BorrowRecordRepo {
	return &BorrowRecordRepo{q: q}
}

const borrowColumns = `id, book_id, member_id, borrow_date, due_date, return_date, late_fee, status, notes, created_at`

// Create persiste un préstamo.
func (r *BorrowRecordRepo) Create(ctx context.Context, record *entity.BorrowRecord) error {
	query := `
		INSERT INTO borrow_records (` + borrowColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	var returnDate any
	if record.ReturnDate != nil {
		returnDate = *record.ReturnDate
	}
	_, err := r.q.ExecContext(ctx, query,
		record.ID, record.BookID, record.MemberID,
		record.BorrowDate, record.DueDate, returnDate,
		record.LateFee.String(), record.Status, record.Notes, record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert borrow record: %w", err)
	}
	return nil
}

// GetByID obtiene un préstamo por ID. Devuelve (nil, nil) si no existe.
func (r *BorrowRecordRepo) GetByID(ctx context.Context, id string) (*entity.BorrowRecord, error) {
	record, err := scanBorrowRecord(r.q.QueryRowContext(ctx,
		`SELECT `+borrowColumns+` FROM borrow_records WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get borrow record: %w", err)
	}
	return record, nil
}

// GetOpenByBook devuelve el préstamo vigente de un libro, o (nil, nil).
func (r *BorrowRecordRepo) GetOpenByBook(ctx context.Context, bookID string) (*entity.BorrowRecord, error) {
	record, err := scanBorrowRecord(r.q.QueryRowContext(ctx,
		`SELECT `+borrowColumns+` FROM borrow_records WHERE book_id = ? AND status = 'open'`, bookID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get open borrow record: %w", err)
	}
	return record, nil
}

// CountOpenByMember cuenta los préstamos vigentes de un miembro.
func (r *BorrowRecordRepo) CountOpenByMember(ctx context.Context, memberID string) (int, error) {
	var n int
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM borrow_records WHERE member_id = ? AND status = 'open'`, memberID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count open borrow records: %w", err)
	}
	return n, nil
}

// Close fija return_date, late_fee y status=returned. Solo cierra préstamos
// vigentes: cerrar dos veces devuelve ErrNotFound.
func (r *BorrowRecordRepo) Close(ctx context.Context, id string, returnDate time.Time, lateFee decimal.Decimal) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE borrow_records
		SET return_date = ?, late_fee = ?, status = 'returned'
		WHERE id = ? AND status = 'open'`,
		returnDate, lateFee.String(), id,
	)
	if err != nil {
		return fmt.Errorf("close borrow record: %w", err)
	}
	return requireAffected(res, "close borrow record")
}

// ListOpen lista préstamos vigentes, los más próximos a vencer primero.
func (r *BorrowRecordRepo) ListOpen(ctx context.Context, limit, offset int) ([]*entity.BorrowRecord, error) {
	query := `SELECT ` + borrowColumns + ` FROM borrow_records WHERE status = 'open' ORDER BY due_date`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, limit, offset)
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list open borrow records: %w", err)
	}
	defer rows.Close()

	var out []*entity.BorrowRecord
	for rows.Next() {
		record, err := scanBorrowRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan borrow record: %w", err)
		}
		out = append(out, record)
	}
	return out, rows.Err()
}

// ListOverdue lista préstamos vigentes vencidos a la fecha, con libro y miembro.
func (r *BorrowRecordRepo) ListOverdue(ctx context.Context, asOf time.Time) ([]*repository.OverdueLoan, error) {
	query := `
		SELECT r.id, r.book_id, b.title, r.member_id, m.name, r.borrow_date, r.due_date
		FROM borrow_records r
		JOIN books b ON b.id = r.book_id
		JOIN members m ON m.id = r.member_id
		WHERE r.status = 'open' AND r.due_date < ?
		ORDER BY r.due_date`
	rows, err := r.q.QueryContext(ctx, query, asOf)
	if err != nil {
		return nil, fmt.Errorf("list overdue borrow records: %w", err)
	}
	defer rows.Close()

	var out []*repository.OverdueLoan
	for rows.Next() {
		var loan repository.OverdueLoan
		if err := rows.Scan(
			&loan.RecordID, &loan.BookID, &loan.BookTitle,
			&loan.MemberID, &loan.MemberName, &loan.BorrowDate, &loan.DueDate,
		); err != nil {
			return nil, fmt.Errorf("scan overdue loan: %w", err)
		}
		out = append(out, &loan)
	}
	return out, rows.Err()
}

// CountByBook cuenta préstamos (vigentes o cerrados) que referencian un libro.
func (r *BorrowRecordRepo) CountByBook(ctx context.Context, bookID string) (int64, error) {
	return r.countBy(ctx, `SELECT COUNT(*) FROM borrow_records WHERE book_id = ?`, bookID)
}

// CountByMember cuenta préstamos (vigentes o cerrados) que referencian un miembro.
func (r *BorrowRecordRepo) CountByMember(ctx context.Context, memberID string) (int64, error) {
	return r.countBy(ctx, `SELECT COUNT(*) FROM borrow_records WHERE member_id = ?`, memberID)
}

func (r *BorrowRecordRepo) countBy(ctx context.Context, query, arg string) (int64, error) {
	var n int64
	if err := r.q.QueryRowContext(ctx, query, arg).Scan(&n); err != nil {
		return 0, fmt.Errorf("count borrow records: %w", err)
	}
	return n, nil
}

func scanBorrowRecord(row rowScanner) (*entity.BorrowRecord, error) {
	var record entity.BorrowRecord
	var returnDate sql.NullTime
	var lateFee string
	if err := row.Scan(
		&record.ID, &record.BookID, &record.MemberID,
		&record.BorrowDate, &record.DueDate, &returnDate,
		&lateFee, &record.Status, &record.Notes, &record.CreatedAt,
	); err != nil {
		return nil, err
	}
	if returnDate.Valid {
		ret := returnDate.Time
		record.ReturnDate = &ret
	}
	fee, err := scanDecimal(lateFee)
	if err != nil {
		return nil, err
	}
	record.LateFee = fee
	return &record, nil
}

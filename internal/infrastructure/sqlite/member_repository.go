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

var _ repository.MemberRepository = (*MemberRepo)(nil)

// MemberRepo implementación del puerto MemberRepository sobre SQLite.
type MemberRepo struct {
	q Querier
}

// NewMemberRepository construye el adaptador. Pasar db o tx (Querier).
func NewMemberRepository(q Querier) *MemberRepo {
	return &MemberRepo{q: q}
}

const memberColumns = `id, name, email, phone, address, status, joined_at, created_at, updated_at`

// Create persiste un nuevo miembro. Email duplicado devuelve ErrDuplicate.
func (r *MemberRepo) Create(ctx context.Context, member *entity.Member) error {
	query := `
		INSERT INTO members (` + memberColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.q.ExecContext(ctx, query,
		member.ID, member.Name, member.Email, member.Phone, member.Address,
		member.Status, member.JoinedAt, member.CreatedAt, member.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert member: %w", err)
	}
	return nil
}

// GetByID obtiene un miembro por ID. Devuelve (nil, nil) si no existe.
func (r *MemberRepo) GetByID(ctx context.Context, id string) (*entity.Member, error) {
	return r.getBy(ctx, `SELECT `+memberColumns+` FROM members WHERE id = ?`, id)
}

// GetByEmail obtiene un miembro por email. Devuelve (nil, nil) si no existe.
func (r *MemberRepo) GetByEmail(ctx context.Context, email string) (*entity.Member, error) {
	return r.getBy(ctx, `SELECT `+memberColumns+` FROM members WHERE email = ?`, email)
}

func (r *MemberRepo) getBy(ctx context.Context, query string, arg any) (*entity.Member, error) {
	var member entity.Member
	err := r.q.QueryRowContext(ctx, query, arg).Scan(
		&member.ID, &member.Name, &member.Email, &member.Phone, &member.Address,
		&member.Status, &member.JoinedAt, &member.CreatedAt, &member.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get member: %w", err)
	}
	return &member, nil
}

// List lista miembros con búsqueda en nombre/email, filtro por estado y paginación.
func (r *MemberRepo) List(ctx context.Context, filter repository.MemberFilter) ([]*entity.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE 1 = 1`
	args := []any{}
	if filter.Query != "" {
		query += ` AND (name LIKE ? OR email LIKE ?)`
		like := "%" + filter.Query + "%"
		args = append(args, like, like)
	}
	if filter.Status != "" {
		query += ` AND status = ?`
		args = append(args, filter.Status)
	}
	query += ` ORDER BY name`
	if filter.Limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	var out []*entity.Member
	for rows.Next() {
		var member entity.Member
		if err := rows.Scan(
			&member.ID, &member.Name, &member.Email, &member.Phone, &member.Address,
			&member.Status, &member.JoinedAt, &member.CreatedAt, &member.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		out = append(out, &member)
	}
	return out, rows.Err()
}

// Update actualiza un miembro.
func (r *MemberRepo) Update(ctx context.Context, member *entity.Member) error {
	query := `
		UPDATE members
		SET name = ?, email = ?, phone = ?, address = ?, status = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.q.ExecContext(ctx, query,
		member.Name, member.Email, member.Phone, member.Address,
		member.Status, member.UpdatedAt, member.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update member: %w", err)
	}
	return requireAffected(res, "update member")
}

// Delete elimina un miembro por ID.
func (r *MemberRepo) Delete(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM members WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	return requireAffected(res, "delete member")
}

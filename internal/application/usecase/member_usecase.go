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

// MemberUseCase casos de uso CRUD para miembros.
type MemberUseCase struct {
	repo       repository.MemberRepository
	borrowRepo repository.BorrowRecordRepository
}

// NewMemberUseCase construye el caso de uso.
func NewMemberUseCase(repo repository.MemberRepository, borrowRepo repository.BorrowRecordRepository) *MemberUseCase {
	return &MemberUseCase{repo: repo, borrowRepo: borrowRepo}
}

// Create crea un miembro activo. El email debe ser único.
func (uc *MemberUseCase) Create(ctx context.Context, in dto.CreateMemberRequest) (*dto.MemberResponse, error) {
	if in.Name == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	member := &entity.Member{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		Status:    entity.MemberStatusActive,
		JoinedAt:  now,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, member); err != nil {
		return nil, err
	}
	return toMemberResponse(member, 0), nil
}

// GetByID obtiene un miembro por ID, con su número de préstamos vigentes.
func (uc *MemberUseCase) GetByID(ctx context.Context, id string) (*dto.MemberResponse, error) {
	member, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, domain.ErrNotFound
	}
	open, err := uc.borrowRepo.CountOpenByMember(ctx, id)
	if err != nil {
		return nil, err
	}
	return toMemberResponse(member, open), nil
}

// Update actualiza un miembro. Desactivar a un miembro no cierra sus
// préstamos vigentes: solo impide iniciar nuevos.
func (uc *MemberUseCase) Update(ctx context.Context, id string, in dto.UpdateMemberRequest) (*dto.MemberResponse, error) {
	member, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		member.Name = *in.Name
	}
	if in.Email != nil {
		if *in.Email == "" {
			return nil, domain.ErrInvalidInput
		}
		if *in.Email != member.Email {
			existing, err := uc.repo.GetByEmail(ctx, *in.Email)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, domain.ErrDuplicate
			}
		}
		member.Email = *in.Email
	}
	if in.Phone != nil {
		member.Phone = *in.Phone
	}
	if in.Address != nil {
		member.Address = *in.Address
	}
	if in.Status != nil {
		if *in.Status != entity.MemberStatusActive && *in.Status != entity.MemberStatusInactive {
			return nil, domain.ErrInvalidInput
		}
		member.Status = *in.Status
	}
	member.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, member); err != nil {
		return nil, err
	}
	return toMemberResponse(member, 0), nil
}

// List lista miembros con búsqueda, filtro por estado y paginación.
func (uc *MemberUseCase) List(ctx context.Context, query, status string, limit, offset int) (*dto.MemberListResponse, error) {
	if status != "" && status != entity.MemberStatusActive && status != entity.MemberStatusInactive {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.List(ctx, repository.MemberFilter{Query: query, Status: status, Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	out := &dto.MemberListResponse{Members: make([]dto.MemberResponse, 0, len(list)), Limit: limit, Offset: offset}
	for _, member := range list {
		out.Members = append(out.Members, *toMemberResponse(member, 0))
	}
	return out, nil
}

// Delete elimina un miembro. Falla con ErrConflict si tiene préstamos
// vigentes y con ErrReferencedEntity si tiene historial de préstamos.
func (uc *MemberUseCase) Delete(ctx context.Context, id string) error {
	member, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if member == nil {
		return domain.ErrNotFound
	}
	open, err := uc.borrowRepo.CountOpenByMember(ctx, id)
	if err != nil {
		return err
	}
	if open > 0 {
		return domain.ErrConflict
	}
	refs, err := uc.borrowRepo.CountByMember(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return domain.ErrReferencedEntity
	}
	return uc.repo.Delete(ctx, id)
}

func toMemberResponse(member *entity.Member, openLoans int) *dto.MemberResponse {
	return &dto.MemberResponse{
		ID:        member.ID,
		Name:      member.Name,
		Email:     member.Email,
		Phone:     member.Phone,
		Address:   member.Address,
		Status:    member.Status,
		JoinedAt:  member.JoinedAt,
		OpenLoans: openLoans,
	}
}

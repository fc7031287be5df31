package circulation

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
	"github.com/tu-usuario/stock-ledger/pkg/config"
)

// CirculationUseCase gestiona el ciclo de préstamo: emisión, devolución con
// multa y transiciones administrativas del estado del libro. Cada operación
// escribe (libro, préstamo) de forma atómica vía TxRunner.
type CirculationUseCase struct {
	txRunner   TxRunner
	borrowRepo repository.BorrowRecordRepository
	cfg        config.LedgerConfig
}

// NewCirculationUseCase construye el caso de uso.
func NewCirculationUseCase(txRunner TxRunner, borrowRepo repository.BorrowRecordRepository, cfg config.LedgerConfig) *CirculationUseCase {
	return &CirculationUseCase{txRunner: txRunner, borrowRepo: borrowRepo, cfg: cfg}
}

// IssueBook emite un préstamo: available→borrowed, due_date = hoy + LoanDays.
// Rechaza con ErrInvalidMovement si el miembro está inactivo o alcanzó el tope
// de préstamos, y con ErrIllegalTransition si el libro no está disponible.
func (uc *CirculationUseCase) IssueBook(ctx context.Context, in dto.IssueBookRequest) (*dto.BorrowRecordResponse, error) {
	if in.BookID == "" || in.MemberID == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var record *entity.BorrowRecord

	err := uc.txRunner.RunCirculation(ctx, func(
		bookRepo repository.BookRepository,
		memberRepo repository.MemberRepository,
		borrowRepo repository.BorrowRecordRepository,
	) error {
		book, err := bookRepo.GetByID(ctx, in.BookID)
		if err != nil {
			return err
		}
		member, err := memberRepo.GetByID(ctx, in.MemberID)
		if err != nil {
			return err
		}
		if book == nil || member == nil {
			return domain.ErrNotFound
		}

		open, err := borrowRepo.CountOpenByMember(ctx, member.ID)
		if err != nil {
			return err
		}
		if err := ledger.ValidateIssue(book, member, open, uc.cfg.MaxLoans); err != nil {
			return err
		}

		newStatus, err := ledger.Transition(book.Status, entity.BookStatusBorrowed)
		if err != nil {
			return err
		}
		if err := bookRepo.UpdateStatus(ctx, book.ID, newStatus, now); err != nil {
			return err
		}

		record = &entity.BorrowRecord{
			ID:         uuid.New().String(),
			BookID:     book.ID,
			MemberID:   member.ID,
			BorrowDate: now,
			DueDate:    ledger.DueDate(now, uc.cfg.LoanDays),
			LateFee:    decimal.Zero,
			Status:     entity.BorrowStatusOpen,
			Notes:      in.Notes,
			CreatedAt:  now,
		}
		return borrowRepo.Create(ctx, record)
	})
	if err != nil {
		return nil, err
	}
	return toBorrowRecordResponse(record), nil
}

// ReturnBook procesa una devolución: borrowed→available y multa
// max(0, días de retraso) * DailyFine, persistida en el registro (única
// mutación permitida de un evento de movimiento).
func (uc *CirculationUseCase) ReturnBook(ctx context.Context, in dto.ReturnBookRequest) (*dto.BorrowRecordResponse, error) {
	if in.RecordID == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var returned *entity.BorrowRecord

	err := uc.txRunner.RunCirculation(ctx, func(
		bookRepo repository.BookRepository,
		memberRepo repository.MemberRepository,
		borrowRepo repository.BorrowRecordRepository,
	) error {
		record, err := borrowRepo.GetByID(ctx, in.RecordID)
		if err != nil {
			return err
		}
		if record == nil {
			return domain.ErrNotFound
		}
		if !record.Open() {
			return domain.ErrConflict
		}

		book, err := bookRepo.GetByID(ctx, record.BookID)
		if err != nil {
			return err
		}
		if book == nil {
			return domain.ErrNotFound
		}
		newStatus, err := ledger.Transition(book.Status, entity.BookStatusAvailable)
		if err != nil {
			return err
		}

		fee := ledger.LateFee(record.DueDate, now, uc.cfg.DailyFine)
		if err := borrowRepo.Close(ctx, record.ID, now, fee); err != nil {
			return err
		}
		if err := bookRepo.UpdateStatus(ctx, book.ID, newStatus, now); err != nil {
			return err
		}

		ret := now
		returned = record
		returned.ReturnDate = &ret
		returned.LateFee = fee
		returned.Status = entity.BorrowStatusReturned
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toBorrowRecordResponse(returned), nil
}

// ChangeBookStatus aplica una transición administrativa (reserva, mantenimiento,
// vuelta a disponible). El estado borrowed queda reservado a issue/return.
func (uc *CirculationUseCase) ChangeBookStatus(ctx context.Context, bookID string, in dto.ChangeBookStatusRequest) error {
	if bookID == "" || in.Status == "" {
		return domain.ErrInvalidInput
	}
	if in.Status == entity.BookStatusBorrowed {
		return domain.ErrIllegalTransition
	}

	now := time.Now()
	return uc.txRunner.RunCirculation(ctx, func(
		bookRepo repository.BookRepository,
		memberRepo repository.MemberRepository,
		borrowRepo repository.BorrowRecordRepository,
	) error {
		book, err := bookRepo.GetByID(ctx, bookID)
		if err != nil {
			return err
		}
		if book == nil {
			return domain.ErrNotFound
		}
		if book.Status == entity.BookStatusBorrowed {
			return domain.ErrIllegalTransition
		}
		newStatus, err := ledger.Transition(book.Status, in.Status)
		if err != nil {
			return err
		}
		return bookRepo.UpdateStatus(ctx, book.ID, newStatus, now)
	})
}

// ListLoans lista préstamos vigentes (solo lectura).
func (uc *CirculationUseCase) ListLoans(ctx context.Context, limit, offset int) ([]dto.BorrowRecordResponse, error) {
	records, err := uc.borrowRepo.ListOpen(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BorrowRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, *toBorrowRecordResponse(r))
	}
	return out, nil
}

// Overdue devuelve los préstamos vencidos con días de retraso y multa acumulada
// a la fecha (informativa; la multa solo se persiste en la devolución).
func (uc *CirculationUseCase) Overdue(ctx context.Context) ([]dto.OverdueLoanResponse, error) {
	now := time.Now()
	rows, err := uc.borrowRepo.ListOverdue(ctx, now)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OverdueLoanResponse, 0, len(rows))
	for _, r := range rows {
		days := int64(now.Sub(r.DueDate).Hours() / 24)
		out = append(out, dto.OverdueLoanResponse{
			RecordID:    r.RecordID,
			BookID:      r.BookID,
			BookTitle:   r.BookTitle,
			MemberID:    r.MemberID,
			MemberName:  r.MemberName,
			BorrowDate:  r.BorrowDate,
			DueDate:     r.DueDate,
			DaysOverdue: days,
			AccruedFee:  ledger.LateFee(r.DueDate, now, uc.cfg.DailyFine),
		})
	}
	return out, nil
}

func toBorrowRecordResponse(r *entity.BorrowRecord) *dto.BorrowRecordResponse {
	return &dto.BorrowRecordResponse{
		ID:         r.ID,
		BookID:     r.BookID,
		MemberID:   r.MemberID,
		BorrowDate: r.BorrowDate,
		DueDate:    r.DueDate,
		ReturnDate: r.ReturnDate,
		LateFee:    r.LateFee,
		Status:     r.Status,
		Notes:      r.Notes,
	}
}

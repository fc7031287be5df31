package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// IssueBookRequest body para POST /api/circulation/issue.
type IssueBookRequest struct {
	BookID   string `json:"book_id" validate:"required"`
	MemberID string `json:"member_id" validate:"required"`
	Notes    string `json:"notes,omitempty"`
}

// ReturnBookRequest body para POST /api/circulation/return.
type ReturnBookRequest struct {
	RecordID string `json:"record_id" validate:"required"`
}

// BorrowRecordResponse representación de un préstamo en respuestas.
type BorrowRecordResponse struct {
	ID         string          `json:"id"`
	BookID     string          `json:"book_id"`
	MemberID   string          `json:"member_id"`
	BorrowDate time.Time       `json:"borrow_date"`
	DueDate    time.Time       `json:"due_date"`
	ReturnDate *time.Time      `json:"return_date,omitempty"`
	LateFee    decimal.Decimal `json:"late_fee"`
	Status     string          `json:"status"`
	Notes      string          `json:"notes,omitempty"`
}

// OverdueLoanResponse fila del reporte de préstamos vencidos.
type OverdueLoanResponse struct {
	RecordID    string          `json:"record_id"`
	BookID      string          `json:"book_id"`
	BookTitle   string          `json:"book_title"`
	MemberID    string          `json:"member_id"`
	MemberName  string          `json:"member_name"`
	BorrowDate  time.Time       `json:"borrow_date"`
	DueDate     time.Time       `json:"due_date"`
	DaysOverdue int64           `json:"days_overdue"`
	AccruedFee  decimal.Decimal `json:"accrued_fee"`
}

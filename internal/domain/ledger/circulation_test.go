package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/stock-ledger/internal/domain"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/domain/ledger"
)

var fine050 = decimal.RequireFromString("0.50")

func TestTransition_TransicionesLegales(t *testing.T) {
	legales := [][2]string{
		{entity.BookStatusAvailable, entity.BookStatusBorrowed},
		{entity.BookStatusBorrowed, entity.BookStatusAvailable},
		{entity.BookStatusAvailable, entity.BookStatusReserved},
		{entity.BookStatusAvailable, entity.BookStatusMaintenance},
		{entity.BookStatusReserved, entity.BookStatusAvailable},
		{entity.BookStatusMaintenance, entity.BookStatusAvailable},
	}
	for _, par := range legales {
		got, err := ledger.Transition(par[0], par[1])
		require.NoError(t, err, "%s→%s debe ser legal", par[0], par[1])
		assert.Equal(t, par[1], got)
	}
}

func TestTransition_TransicionesIlegales(t *testing.T) {
	ilegales := [][2]string{
		{entity.BookStatusBorrowed, entity.BookStatusReserved},
		{entity.BookStatusBorrowed, entity.BookStatusMaintenance},
		{entity.BookStatusReserved, entity.BookStatusBorrowed},
		{entity.BookStatusMaintenance, entity.BookStatusBorrowed},
		{entity.BookStatusReserved, entity.BookStatusMaintenance},
	}
	for _, par := range ilegales {
		got, err := ledger.Transition(par[0], par[1])
		assert.ErrorIs(t, err, domain.ErrIllegalTransition, "%s→%s", par[0], par[1])
		assert.Equal(t, par[0], got, "el estado no cambia en un rechazo")
	}
}

func TestTransition_EstadoDesconocido(t *testing.T) {
	_, err := ledger.Transition(entity.BookStatusAvailable, "lost")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestValidateIssue cubre las precondiciones del préstamo: miembro inactivo y
// tope de préstamos producen ErrInvalidMovement; libro no disponible produce
// ErrIllegalTransition.
func TestValidateIssue(t *testing.T) {
	libro := &entity.Book{Status: entity.BookStatusAvailable}
	activo := &entity.Member{Status: entity.MemberStatusActive}
	inactivo := &entity.Member{Status: entity.MemberStatusInactive}

	assert.NoError(t, ledger.ValidateIssue(libro, activo, 0, 5))

	// Un miembro inactivo siempre es rechazado, sin importar el resto
	assert.ErrorIs(t, ledger.ValidateIssue(libro, inactivo, 0, 5), domain.ErrInvalidMovement)

	// Tope de préstamos concurrentes (5 en la variante biblioteca)
	assert.ErrorIs(t, ledger.ValidateIssue(libro, activo, 5, 5), domain.ErrInvalidMovement)
	assert.NoError(t, ledger.ValidateIssue(libro, activo, 4, 5))

	// Libro en otro estado
	prestado := &entity.Book{Status: entity.BookStatusBorrowed}
	assert.ErrorIs(t, ledger.ValidateIssue(prestado, activo, 0, 5), domain.ErrIllegalTransition)
}

func TestDueDate_CatorceDias(t *testing.T) {
	borrow := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC), ledger.DueDate(borrow, 14))
}

// TestLateFee cubre los vectores de referencia:
// devolución al vencimiento → 0; +3 días → 1.50; préstamo de 16 días con
// plazo de 14 → 1.00.
func TestLateFee(t *testing.T) {
	due := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		ret    time.Time
		expect string
	}{
		{"en fecha", due, "0"},
		{"antes del vencimiento", due.AddDate(0, 0, -2), "0"},
		{"tres días tarde", due.AddDate(0, 0, 3), "1.50"},
		{"dos días tarde", due.AddDate(0, 0, 2), "1.00"},
		{"fracción de día no cuenta", due.Add(23 * time.Hour), "0"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fee := ledger.LateFee(due, tc.ret, fine050)
			assert.True(t, fee.Equal(decimal.RequireFromString(tc.expect)),
				"esperado %s, obtenido %s", tc.expect, fee)
		})
	}
}

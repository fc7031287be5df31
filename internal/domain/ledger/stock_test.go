package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/stock-ledger/internal/domain"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/domain/ledger"
)

// TestApplyStock_SumaDeMovimientos verifica la propiedad central del ledger:
// para cualquier secuencia de IN/OUT aceptada, la cantidad resultante es
// inicial + sum(IN) - sum(OUT), y ningún evento deja la cantidad negativa.
func TestApplyStock_SumaDeMovimientos(t *testing.T) {
	type mov struct {
		tipo string
		qty  int64
	}
	seq := []mov{
		{entity.TransactionTypeIN, 10},
		{entity.TransactionTypeOUT, 3},
		{entity.TransactionTypeIN, 5},
		{entity.TransactionTypeOUT, 7},
		{entity.TransactionTypeIN, 1},
	}

	var current int64
	var sumIn, sumOut int64
	for _, m := range seq {
		next, err := ledger.ApplyStock(current, m.tipo, m.qty)
		require.NoError(t, err)
		require.GreaterOrEqual(t, next, int64(0), "la cantidad nunca puede ser negativa")
		current = next
		if m.tipo == entity.TransactionTypeIN {
			sumIn += m.qty
		} else {
			sumOut += m.qty
		}
	}
	assert.Equal(t, sumIn-sumOut, current)
}

// TestApplyStock_RechazaStockNegativo reproduce el ejemplo de referencia:
// Item(quantity=10): OUT 7 → 3; OUT 5 → rechazado, la cantidad queda en 3.
func TestApplyStock_RechazaStockNegativo(t *testing.T) {
	q, err := ledger.ApplyStock(10, entity.TransactionTypeOUT, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(3), q)

	q2, err := ledger.ApplyStock(q, entity.TransactionTypeOUT, 5)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(3), q2, "el estado no cambia en un rechazo")
}

func TestApplyStock_EntradasInvalidas(t *testing.T) {
	tests := []struct {
		name string
		tipo string
		qty  int64
	}{
		{"cantidad cero", entity.TransactionTypeIN, 0},
		{"cantidad negativa", entity.TransactionTypeOUT, -4},
		{"tipo desconocido", "ADJUST", 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q, err := ledger.ApplyStock(8, tc.tipo, tc.qty)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Equal(t, int64(8), q)
		})
	}
}

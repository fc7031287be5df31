package sqlite

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
)

// isUniqueViolation verifica si un error es una violación de constraint UNIQUE o PK.
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}

// scanDecimal convierte la representación TEXT de un monto a decimal.
func scanDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse decimal %q: %w", s, err)
	}
	return d, nil
}

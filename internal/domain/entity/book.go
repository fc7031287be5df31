package entity

import "time"

// Estados de un libro (máquina de estados de circulación).
const (
	BookStatusAvailable   = "available"
	BookStatusBorrowed    = "borrowed"
	BookStatusReserved    = "reserved"
	BookStatusMaintenance = "maintenance"
)

// Book representa un libro del catálogo.
// Status es estado derivado: cambia solo por préstamo/devolución o por
// transiciones administrativas (reserva, mantenimiento).
type Book struct {
	ID        string
	Title     string
	Author    string
	ISBN      string
	Category  string
	Status    string
	Location  string // estantería / sala
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidBookStatus indica si s es un estado reconocido.
func ValidBookStatus(s string) bool {
	switch s {
	case BookStatusAvailable, BookStatusBorrowed, BookStatusReserved, BookStatusMaintenance:
		return true
	}
	return false
}

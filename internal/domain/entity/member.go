package entity

import "time"

// Estados de un miembro.
const (
	MemberStatusActive   = "active"
	MemberStatusInactive = "inactive"
)

// Member representa un miembro de la biblioteca (actor de los préstamos).
// Un miembro inactivo no puede iniciar nuevos préstamos.
type Member struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   string
	Status    string
	JoinedAt  time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Active indica si el miembro puede iniciar préstamos.
func (m *Member) Active() bool {
	return m.Status == MemberStatusActive
}

package dto

import "time"

// CreateMemberRequest body para POST /api/members.
type CreateMemberRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// UpdateMemberRequest body para PUT /api/members/:id.
type UpdateMemberRequest struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
	Status  *string `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

// MemberResponse representación de un miembro en respuestas.
type MemberResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Status    string    `json:"status"`
	JoinedAt  time.Time `json:"joined_at"`
	OpenLoans int       `json:"open_loans,omitempty"`
}

// MemberListResponse listado paginado de miembros.
type MemberListResponse struct {
	Members []MemberResponse `json:"members"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
}

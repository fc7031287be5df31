package dto

import "time"

// CreateBookRequest body para POST /api/books. El libro nace en estado available.
type CreateBookRequest struct {
	Title    string `json:"title" validate:"required"`
	Author   string `json:"author" validate:"required"`
	ISBN     string `json:"isbn" validate:"required"`
	Category string `json:"category"`
	Location string `json:"location"`
	Notes    string `json:"notes"`
}

// UpdateBookRequest body para PUT /api/books/:id.
// Status no es editable aquí: cambia por circulación o por transición administrativa.
type UpdateBookRequest struct {
	Title    *string `json:"title,omitempty"`
	Author   *string `json:"author,omitempty"`
	Category *string `json:"category,omitempty"`
	Location *string `json:"location,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

// ChangeBookStatusRequest body para POST /api/books/:id/status (transiciones administrativas).
type ChangeBookStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// BookResponse representación de un libro en respuestas.
type BookResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	ISBN      string    `json:"isbn"`
	Category  string    `json:"category,omitempty"`
	Status    string    `json:"status"`
	Location  string    `json:"location,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookListResponse listado paginado de libros.
type BookListResponse struct {
	Books  []BookResponse `json:"books"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

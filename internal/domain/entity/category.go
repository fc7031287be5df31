package entity

import "time"

// Category representa una categoría del catálogo (libros y artículos la
// referencian por nombre).
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
}

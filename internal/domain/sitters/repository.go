package sitters

import "context"

// Repository guarda los cuidadores contratables. Igual que con los animales,
// las implementaciones devuelven el mismo handle compartido para un id dado.
type Repository interface {
	Create(ctx context.Context, s *Sitter) error
	GetByID(ctx context.Context, id string) (*Sitter, error)
	List(ctx context.Context) ([]*Sitter, error)
}

package zoos

import "context"

// Repository guarda los zoológicos. Devuelve handles compartidos: las
// operaciones del service mutan el mismo *Zoo que está guardado.
type Repository interface {
	Create(ctx context.Context, z *Zoo) error
	GetByID(ctx context.Context, id string) (*Zoo, error)
	List(ctx context.Context) ([]*Zoo, error)
}

package animals

import "context"

// Repository guarda los animales registrados en la instalación.
//
// Las implementaciones devuelven siempre el mismo handle compartido para un id
// dado: la asignación de cuidadores y las colecciones del zoológico dependen de
// ver las mutaciones de los demás.
type Repository interface {
	Create(ctx context.Context, a Animal) error
	GetByID(ctx context.Context, id string) (Animal, error)
	List(ctx context.Context) ([]Animal, error)
}

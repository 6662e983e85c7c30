package sitters

import (
	"errors"

	"zoo-management/internal/domain/animals"
)

// SalaryPerAnimal es la tarifa fija por animal asignado.
const SalaryPerAnimal = 750

// ErrHasAlreadySitter se devuelve al intentar asignar un animal que ya carga
// una referencia de cuidador, incluso cuando esa referencia apunta al mismo
// cuidador que intenta asignarlo.
var ErrHasAlreadySitter = errors.New("animal has already a sitter")

// Sitter es el cuidador. Es el dueño de la relación de asignación: escribe la
// referencia inversa en el animal y mantiene su propia colección. El salario
// nunca se guarda; se deriva de la cantidad asignada en cada lectura.
type Sitter struct {
	id      string
	name    string
	animals []animals.Animal
}

// New crea un cuidador y reclama cada animal inicial que todavía no tenga
// cuidador. Los que ya están reclamados se saltan en silencio: la construcción
// nunca falla por eso, el cuidador simplemente arranca sin esos animales.
func New(id, name string, initial []animals.Animal) *Sitter {
	s := &Sitter{id: id, name: name}
	for _, a := range initial {
		if a.SitterID() != "" {
			continue
		}
		a.SetSitterID(s.id)
		s.animals = append(s.animals, a)
	}
	return s
}

func (s *Sitter) ID() string   { return s.id }
func (s *Sitter) Name() string { return s.name }

// Animals devuelve una copia de la colección asignada, en orden de asignación.
func (s *Sitter) Animals() []animals.Animal {
	out := make([]animals.Animal, len(s.animals))
	copy(out, s.animals)
	return out
}

// Assign asigna el animal a este cuidador. Falla si el animal ya tiene
// cualquier referencia de cuidador: no hay reasignación ni "ya era mío".
// La mutación es sobre el handle compartido, así que todo holder del animal
// (otros cuidadores, zoológicos, el repo) ve la referencia nueva.
func (s *Sitter) Assign(a animals.Animal) error {
	if a.SitterID() != "" {
		return ErrHasAlreadySitter
	}
	a.SetSitterID(s.id)
	s.animals = append(s.animals, a)
	return nil
}

// Salary se recalcula en cada lectura: SalaryPerAnimal por animal asignado.
// Un cuidador sin animales gana 0.
func (s *Sitter) Salary() int {
	return SalaryPerAnimal * len(s.animals)
}

// Snapshot es una copia plana del estado del cuidador para respuestas.
type Snapshot struct {
	ID      string
	Name    string
	Salary  int
	Animals []animals.Snapshot
}

// SnapshotOf captura el estado actual del cuidador.
func SnapshotOf(s *Sitter) Snapshot {
	as := make([]animals.Snapshot, 0, len(s.animals))
	for _, a := range s.animals {
		as = append(as, animals.SnapshotOf(a))
	}
	return Snapshot{ID: s.id, Name: s.name, Salary: s.Salary(), Animals: as}
}

package animals

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("animal not found")
)

// Service registra animales y expone lecturas consistentes de su estado.
type Service struct {
	repo Repository
	mu   *sync.Mutex
}

// NewService crea el service. mu es el mutex de la instalación, compartido con
// los services de cuidadores y zoológicos: toda operación sobre el grafo de
// entidades se serializa con él (las entidades en sí no se sincronizan).
func NewService(repo Repository, mu *sync.Mutex) *Service {
	return &Service{repo: repo, mu: mu}
}

// CreateInput son los datos para registrar un animal.
type CreateInput struct {
	Name             string
	Species          string
	WaterConsumption int
}

// Create registra un animal nuevo de la especie indicada.
func (s *Service) Create(ctx context.Context, in CreateInput) (Snapshot, error) {
	sp, ok := ParseSpecies(in.Species)
	if !ok {
		return Snapshot{}, ErrInvalidInput
	}
	// El consumo cero es válido; el negativo rompería la contabilidad de agua.
	if in.WaterConsumption < 0 {
		return Snapshot{}, ErrInvalidInput
	}
	name := strings.TrimSpace(in.Name)

	id := uuid.NewString()
	var a Animal
	switch sp {
	case SpeciesDog:
		a = NewDog(id, name, in.WaterConsumption)
	case SpeciesCat:
		a = NewCat(id, name, in.WaterConsumption)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Create(ctx, a); err != nil {
		return Snapshot{}, err
	}
	return SnapshotOf(a), nil
}

// GetByID devuelve el estado actual del animal.
func (s *Service) GetByID(ctx context.Context, id string) (Snapshot, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Snapshot{}, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Snapshot{}, ErrNotFound
	}
	return SnapshotOf(a), nil
}

// List devuelve todos los animales registrados, en orden de registro.
func (s *Service) List(ctx context.Context) ([]Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Snapshot, 0, len(items))
	for _, a := range items {
		out = append(out, SnapshotOf(a))
	}
	return out, nil
}

// Speak hace que el animal emita su sonido. No muta nada.
func (s *Service) Speak(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return ErrNotFound
	}
	a.Speak()
	return nil
}

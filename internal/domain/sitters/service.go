package sitters

import (
	"context"
	"errors"
	"strings"
	"sync"

	"zoo-management/internal/domain/animals"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotFound       = errors.New("sitter not found")
	ErrAnimalNotFound = errors.New("animal not found")
)

// Service crea cuidadores y maneja la asignación de animales.
type Service struct {
	repo    Repository
	animals animals.Repository
	mu      *sync.Mutex
}

// NewService crea el service. Necesita el repo de animales para resolver ids a
// handles vivos, y el mutex de la instalación para serializar las mutaciones
// del grafo compartido.
func NewService(repo Repository, animalsRepo animals.Repository, mu *sync.Mutex) *Service {
	return &Service{repo: repo, animals: animalsRepo, mu: mu}
}

// CreateInput son los datos para registrar un cuidador. AnimalIDs es la
// colección inicial a reclamar (los ya reclamados se saltan en silencio).
type CreateInput struct {
	Name      string
	AnimalIDs []string
}

// Create registra un cuidador nuevo, reclamando los animales iniciales
// disponibles. Un id de animal inexistente sí es error; uno ya reclamado no.
func (s *Service) Create(ctx context.Context, in CreateInput) (Snapshot, error) {
	name := strings.TrimSpace(in.Name)

	s.mu.Lock()
	defer s.mu.Unlock()

	initial, err := s.resolveAnimals(ctx, in.AnimalIDs)
	if err != nil {
		return Snapshot{}, err
	}

	st := New(uuid.NewString(), name, initial)
	if err := s.repo.Create(ctx, st); err != nil {
		return Snapshot{}, err
	}
	return SnapshotOf(st), nil
}

// GetByID devuelve el estado actual del cuidador, salario derivado incluido.
func (s *Service) GetByID(ctx context.Context, id string) (Snapshot, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Snapshot{}, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Snapshot{}, ErrNotFound
	}
	return SnapshotOf(st), nil
}

// List devuelve todos los cuidadores registrados, en orden de registro.
func (s *Service) List(ctx context.Context) ([]Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Snapshot, 0, len(items))
	for _, st := range items {
		out = append(out, SnapshotOf(st))
	}
	return out, nil
}

// Assign asigna un animal existente al cuidador. Propaga ErrHasAlreadySitter
// tal cual cuando el animal ya está reclamado.
func (s *Service) Assign(ctx context.Context, sitterID, animalID string) (animals.Snapshot, error) {
	sitterID = strings.TrimSpace(sitterID)
	animalID = strings.TrimSpace(animalID)
	if sitterID == "" || animalID == "" {
		return animals.Snapshot{}, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.repo.GetByID(ctx, sitterID)
	if err != nil {
		return animals.Snapshot{}, ErrNotFound
	}
	a, err := s.animals.GetByID(ctx, animalID)
	if err != nil {
		return animals.Snapshot{}, ErrAnimalNotFound
	}

	if err := st.Assign(a); err != nil {
		return animals.Snapshot{}, err
	}
	return animals.SnapshotOf(a), nil
}

// resolveAnimals pasa de ids a handles vivos. Se llama con el lock tomado.
func (s *Service) resolveAnimals(ctx context.Context, ids []string) ([]animals.Animal, error) {
	out := make([]animals.Animal, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			return nil, ErrInvalidInput
		}
		a, err := s.animals.GetByID(ctx, id)
		if err != nil {
			return nil, ErrAnimalNotFound
		}
		out = append(out, a)
	}
	return out, nil
}

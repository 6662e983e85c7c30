package zoos

import (
	"context"
	"errors"
	"strings"
	"sync"

	"zoo-management/internal/domain/animals"
	"zoo-management/internal/domain/sitters"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotFound       = errors.New("zoo not found")
	ErrAnimalNotFound = errors.New("animal not found")
	ErrSitterNotFound = errors.New("sitter not found")
)

// Service administra los zoológicos. Resuelve ids a handles vivos contra los
// repos de animales y cuidadores y delega las reglas de negocio al agregado.
type Service struct {
	repo    Repository
	animals animals.Repository
	sitters sitters.Repository
	mu      *sync.Mutex
}

// NewService crea el service con el mutex de la instalación.
func NewService(repo Repository, animalsRepo animals.Repository, sittersRepo sitters.Repository, mu *sync.Mutex) *Service {
	return &Service{repo: repo, animals: animalsRepo, sitters: sittersRepo, mu: mu}
}

// CreateInput son los datos para fundar un zoológico. Los animales y
// cuidadores iniciales entran sin pasar por las reglas de admisión ni de
// contratación; solo se descuenta su consumo de agua del límite inicial.
type CreateInput struct {
	Name       string
	WaterLimit int
	Budget     int
	AnimalIDs  []string
	SitterIDs  []string
}

// Create funda un zoológico nuevo.
func (s *Service) Create(ctx context.Context, in CreateInput) (Snapshot, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Snapshot{}, ErrInvalidInput
	}
	// El presupuesto arranca y se mantiene >= 0; un límite de agua negativo
	// tampoco tiene sentido como valor inicial.
	if in.WaterLimit < 0 || in.Budget < 0 {
		return Snapshot{}, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	initialAnimals, err := s.resolveAnimals(ctx, in.AnimalIDs)
	if err != nil {
		return Snapshot{}, err
	}
	initialSitters, err := s.resolveSitters(ctx, in.SitterIDs)
	if err != nil {
		return Snapshot{}, err
	}

	z := New(uuid.NewString(), name, in.WaterLimit, in.Budget, initialAnimals, initialSitters)
	if err := s.repo.Create(ctx, z); err != nil {
		return Snapshot{}, err
	}
	return SnapshotOf(z), nil
}

// GetByID devuelve el estado actual del zoológico.
func (s *Service) GetByID(ctx context.Context, id string) (Snapshot, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Snapshot{}, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	z, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Snapshot{}, ErrNotFound
	}
	return SnapshotOf(z), nil
}

// List devuelve todos los zoológicos, en orden de fundación.
func (s *Service) List(ctx context.Context) ([]Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Snapshot, 0, len(items))
	for _, z := range items {
		out = append(out, SnapshotOf(z))
	}
	return out, nil
}

// AddIncome registra un ingreso y devuelve el presupuesto nuevo.
func (s *Service) AddIncome(ctx context.Context, zooID string, amount int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	z, err := s.getZoo(ctx, zooID)
	if err != nil {
		return 0, err
	}
	return z.AddIncome(amount)
}

// AddExpense registra un gasto y devuelve el presupuesto nuevo.
func (s *Service) AddExpense(ctx context.Context, zooID string, amount int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	z, err := s.getZoo(ctx, zooID)
	if err != nil {
		return 0, err
	}
	return z.AddExpense(amount)
}

// AdmitAnimal admite un animal existente al zoológico y devuelve su estado.
func (s *Service) AdmitAnimal(ctx context.Context, zooID, animalID string) (animals.Snapshot, error) {
	animalID = strings.TrimSpace(animalID)
	if animalID == "" {
		return animals.Snapshot{}, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	z, err := s.getZoo(ctx, zooID)
	if err != nil {
		return animals.Snapshot{}, err
	}
	a, err := s.animals.GetByID(ctx, animalID)
	if err != nil {
		return animals.Snapshot{}, ErrAnimalNotFound
	}

	if err := z.AddAnimal(a); err != nil {
		return animals.Snapshot{}, err
	}
	return animals.SnapshotOf(a), nil
}

// HireSitter contrata un cuidador existente y devuelve su estado.
func (s *Service) HireSitter(ctx context.Context, zooID, sitterID string) (sitters.Snapshot, error) {
	sitterID = strings.TrimSpace(sitterID)
	if sitterID == "" {
		return sitters.Snapshot{}, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	z, err := s.getZoo(ctx, zooID)
	if err != nil {
		return sitters.Snapshot{}, err
	}
	st, err := s.sitters.GetByID(ctx, sitterID)
	if err != nil {
		return sitters.Snapshot{}, ErrSitterNotFound
	}

	if err := z.AddSitter(st); err != nil {
		return sitters.Snapshot{}, err
	}
	return sitters.SnapshotOf(st), nil
}

// IncreaseWater amplía la reserva de agua y devuelve el límite nuevo.
func (s *Service) IncreaseWater(ctx context.Context, zooID string, amount int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	z, err := s.getZoo(ctx, zooID)
	if err != nil {
		return 0, err
	}
	return z.IncreaseWater(amount)
}

// PaySalaries paga la nómina completa y devuelve el presupuesto nuevo.
func (s *Service) PaySalaries(ctx context.Context, zooID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	z, err := s.getZoo(ctx, zooID)
	if err != nil {
		return 0, err
	}
	return z.PaySalaries()
}

// getZoo resuelve el id a un handle vivo. Se llama con el lock tomado.
func (s *Service) getZoo(ctx context.Context, zooID string) (*Zoo, error) {
	zooID = strings.TrimSpace(zooID)
	if zooID == "" {
		return nil, ErrInvalidInput
	}
	z, err := s.repo.GetByID(ctx, zooID)
	if err != nil {
		return nil, ErrNotFound
	}
	return z, nil
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

// resolveSitters pasa de ids a handles vivos. Se llama con el lock tomado.
func (s *Service) resolveSitters(ctx context.Context, ids []string) ([]*sitters.Sitter, error) {
	out := make([]*sitters.Sitter, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			return nil, ErrInvalidInput
		}
		st, err := s.sitters.GetByID(ctx, id)
		if err != nil {
			return nil, ErrSitterNotFound
		}
		out = append(out, st)
	}
	return out, nil
}

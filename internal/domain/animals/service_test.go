package animals

import (
	"context"
	"errors"
	"sync"
	"testing"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	byID  map[string]Animal
	order []string
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Animal{}}
}

func (r *testRepo) Create(ctx context.Context, a Animal) error {
	if a.ID() == "" {
		return errors.New("repo: id required")
	}
	if _, ok := r.byID[a.ID()]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[a.ID()] = a
	r.order = append(r.order, a.ID())
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Animal, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, errRepoNotFound
	}
	return a, nil
}

func (r *testRepo) List(ctx context.Context) ([]Animal, error) {
	out := make([]Animal, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func newTestService() (*Service, *testRepo) {
	repo := newTestRepo()
	var mu sync.Mutex
	return NewService(repo, &mu), repo
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_Dog(t *testing.T) {
	svc, repo := newTestService()

	snap, err := svc.Create(context.Background(), CreateInput{
		Name:             "Karabas",
		Species:          "dog",
		WaterConsumption: 6,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if snap.ID == "" {
		t.Fatalf("expected generated id")
	}
	if snap.Species != SpeciesDog {
		t.Fatalf("expected species dog, got %s", snap.Species)
	}
	if snap.SitterID != "" {
		t.Fatalf("expected new animal without sitter, got %q", snap.SitterID)
	}

	stored, err := repo.GetByID(context.Background(), snap.ID)
	if err != nil {
		t.Fatalf("expected animal stored, got %v", err)
	}
	if stored.Name() != "Karabas" {
		t.Fatalf("expected stored name Karabas, got %s", stored.Name())
	}
}

func TestService_Create_Cat(t *testing.T) {
	svc, _ := newTestService()

	snap, err := svc.Create(context.Background(), CreateInput{
		Name:             "Misha",
		Species:          "cat",
		WaterConsumption: 3,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if snap.Species != SpeciesCat {
		t.Fatalf("expected species cat, got %s", snap.Species)
	}
}

func TestService_Create_RejectsUnknownSpecies(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), CreateInput{
		Name:             "Rex",
		Species:          "hamster",
		WaterConsumption: 1,
	})
	if err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Create_RejectsNegativeConsumption(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), CreateInput{
		Name:             "Rex",
		Species:          "dog",
		WaterConsumption: -1,
	})
	if err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Create_AllowsZeroConsumptionAndEmptyName(t *testing.T) {
	svc, _ := newTestService()

	snap, err := svc.Create(context.Background(), CreateInput{
		Species:          "cat",
		WaterConsumption: 0,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if snap.Name != "" || snap.WaterConsumption != 0 {
		t.Fatalf("expected empty name and zero consumption, got %#v", snap)
	}
}

func TestService_GetByID_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetByID(context.Background(), "nope")
	if err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_List_KeepsRegistrationOrder(t *testing.T) {
	svc, _ := newTestService()

	first, _ := svc.Create(context.Background(), CreateInput{Name: "A", Species: "dog", WaterConsumption: 1})
	second, _ := svc.Create(context.Background(), CreateInput{Name: "B", Species: "cat", WaterConsumption: 2})

	items, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 animals, got %d", len(items))
	}
	if items[0].ID != first.ID || items[1].ID != second.ID {
		t.Fatalf("expected registration order, got %#v", items)
	}
}

func TestService_Speak_UnknownAnimal(t *testing.T) {
	svc, _ := newTestService()

	if err := svc.Speak(context.Background(), "nope"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

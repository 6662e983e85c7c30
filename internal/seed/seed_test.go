package seed_test

import (
	"context"
	"sync"
	"testing"

	"zoo-management/internal/adapters/storage/memory"
	"zoo-management/internal/domain/animals"
	"zoo-management/internal/domain/sitters"
	"zoo-management/internal/domain/zoos"
	"zoo-management/internal/seed"
)

func newTestServices() seed.Services {
	var mu sync.Mutex

	animalRepo := memory.NewAnimalRepo()
	sitterRepo := memory.NewSitterRepo()
	zooRepo := memory.NewZooRepo()

	return seed.Services{
		Animals: animals.NewService(animalRepo, &mu),
		Sitters: sitters.NewService(sitterRepo, animalRepo, &mu),
		Zoos:    zoos.NewService(zooRepo, animalRepo, sitterRepo, &mu),
	}
}

func TestLoadAndApply_Fixture(t *testing.T) {
	f, err := seed.Load("testdata/fixture.yaml")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	svcs := newTestServices()
	if err := seed.Apply(context.Background(), f, svcs); err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}

	items, err := svcs.Animals.List(context.Background())
	if err != nil {
		t.Fatalf("List animals returned error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 seeded animals, got %d", len(items))
	}

	sittersList, err := svcs.Sitters.List(context.Background())
	if err != nil {
		t.Fatalf("List sitters returned error: %v", err)
	}
	if len(sittersList) != 1 {
		t.Fatalf("expected 1 seeded sitter, got %d", len(sittersList))
	}
	if sittersList[0].Salary != 1500 {
		t.Fatalf("expected sitter salary 1500, got %d", sittersList[0].Salary)
	}

	zoosList, err := svcs.Zoos.List(context.Background())
	if err != nil {
		t.Fatalf("List zoos returned error: %v", err)
	}
	if len(zoosList) != 1 {
		t.Fatalf("expected 1 seeded zoo, got %d", len(zoosList))
	}
	z := zoosList[0]
	if z.WaterLimit != 9 {
		t.Fatalf("expected effective water limit 9, got %d", z.WaterLimit)
	}
	if z.Budget != 3000 {
		t.Fatalf("expected budget 3000, got %d", z.Budget)
	}
	if z.TotalSalaries != 1500 {
		t.Fatalf("expected total salaries 1500, got %d", z.TotalSalaries)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := seed.Load("testdata/does-not-exist.yaml"); err == nil {
		t.Fatalf("expected error loading missing file")
	}
}

func TestApply_UnknownKey(t *testing.T) {
	f := seed.Fixture{
		Sitters: []seed.SitterFixture{
			{Key: "ogun", Name: "Ogun", Animals: []string{"ghost"}},
		},
	}

	err := seed.Apply(context.Background(), f, newTestServices())
	if err == nil {
		t.Fatalf("expected error for unknown animal key")
	}
}

func TestApply_DuplicateKey(t *testing.T) {
	f := seed.Fixture{
		Animals: []seed.AnimalFixture{
			{Key: "dup", Name: "A", Species: "dog", WaterConsumption: 1},
			{Key: "dup", Name: "B", Species: "cat", WaterConsumption: 1},
		},
	}

	err := seed.Apply(context.Background(), f, newTestServices())
	if err == nil {
		t.Fatalf("expected error for duplicate key")
	}
}

func TestApply_PropagatesBusinessRules(t *testing.T) {
	// Una especie inválida en el fixture corta el seeding con error.
	f := seed.Fixture{
		Animals: []seed.AnimalFixture{
			{Key: "x", Name: "X", Species: "hamster", WaterConsumption: 1},
		},
	}

	err := seed.Apply(context.Background(), f, newTestServices())
	if err == nil {
		t.Fatalf("expected error for invalid species")
	}
}

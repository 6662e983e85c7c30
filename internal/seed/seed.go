// Package seed carga datos de demo desde un fixture YAML al arrancar.
// Todo entra por los services, así que corre las mismas reglas de negocio que
// la API: un fixture que viola una regla hace fallar el arranque.
package seed

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"zoo-management/internal/domain/animals"
	"zoo-management/internal/domain/sitters"
	"zoo-management/internal/domain/zoos"
)

// Fixture es el archivo completo. Las referencias entre secciones usan keys
// locales al fixture (los ids reales se generan al crear).
type Fixture struct {
	Animals []AnimalFixture `yaml:"animals"`
	Sitters []SitterFixture `yaml:"sitters"`
	Zoos    []ZooFixture    `yaml:"zoos"`
}

type AnimalFixture struct {
	Key              string `yaml:"key"`
	Name             string `yaml:"name"`
	Species          string `yaml:"species"`
	WaterConsumption int    `yaml:"water_consumption"`
}

type SitterFixture struct {
	Key     string   `yaml:"key"`
	Name    string   `yaml:"name"`
	Animals []string `yaml:"animals"` // keys de animales a reclamar
}

type ZooFixture struct {
	Name       string   `yaml:"name"`
	WaterLimit int      `yaml:"water_limit"`
	Budget     int      `yaml:"budget"`
	Animals    []string `yaml:"animals"` // keys de animales iniciales
	Sitters    []string `yaml:"sitters"` // keys de cuidadores iniciales
}

// Services agrupa lo que el seeder necesita para crear entidades.
type Services struct {
	Animals *animals.Service
	Sitters *sitters.Service
	Zoos    *zoos.Service
}

// Load lee y parsea el fixture.
func Load(path string) (Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("read seed file: %w", err)
	}

	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Fixture{}, fmt.Errorf("unmarshal seed file: %w", err)
	}
	return f, nil
}

// Apply crea las entidades en orden de dependencia: animales, cuidadores,
// zoológicos. Devuelve el primer error con la key o el nombre que falló.
func Apply(ctx context.Context, f Fixture, svcs Services) error {
	animalIDs := make(map[string]string, len(f.Animals))
	for _, af := range f.Animals {
		if af.Key == "" {
			return fmt.Errorf("seed animal %q: missing key", af.Name)
		}
		if _, dup := animalIDs[af.Key]; dup {
			return fmt.Errorf("seed animal %q: duplicate key", af.Key)
		}

		snap, err := svcs.Animals.Create(ctx, animals.CreateInput{
			Name:             af.Name,
			Species:          af.Species,
			WaterConsumption: af.WaterConsumption,
		})
		if err != nil {
			return fmt.Errorf("seed animal %q: %w", af.Key, err)
		}
		animalIDs[af.Key] = snap.ID
	}

	sitterIDs := make(map[string]string, len(f.Sitters))
	for _, sf := range f.Sitters {
		if sf.Key == "" {
			return fmt.Errorf("seed sitter %q: missing key", sf.Name)
		}
		if _, dup := sitterIDs[sf.Key]; dup {
			return fmt.Errorf("seed sitter %q: duplicate key", sf.Key)
		}

		ids, err := resolveKeys(animalIDs, sf.Animals)
		if err != nil {
			return fmt.Errorf("seed sitter %q: %w", sf.Key, err)
		}

		snap, err := svcs.Sitters.Create(ctx, sitters.CreateInput{
			Name:      sf.Name,
			AnimalIDs: ids,
		})
		if err != nil {
			return fmt.Errorf("seed sitter %q: %w", sf.Key, err)
		}
		sitterIDs[sf.Key] = snap.ID
	}

	for _, zf := range f.Zoos {
		animalRefs, err := resolveKeys(animalIDs, zf.Animals)
		if err != nil {
			return fmt.Errorf("seed zoo %q: %w", zf.Name, err)
		}
		sitterRefs, err := resolveKeys(sitterIDs, zf.Sitters)
		if err != nil {
			return fmt.Errorf("seed zoo %q: %w", zf.Name, err)
		}

		if _, err := svcs.Zoos.Create(ctx, zoos.CreateInput{
			Name:       zf.Name,
			WaterLimit: zf.WaterLimit,
			Budget:     zf.Budget,
			AnimalIDs:  animalRefs,
			SitterIDs:  sitterRefs,
		}); err != nil {
			return fmt.Errorf("seed zoo %q: %w", zf.Name, err)
		}
	}

	return nil
}

func resolveKeys(index map[string]string, keys []string) ([]string, error) {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		id, ok := index[k]
		if !ok {
			return nil, fmt.Errorf("unknown key %q", k)
		}
		out = append(out, id)
	}
	return out, nil
}

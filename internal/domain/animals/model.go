package animals

// Species define las especies soportadas.
// @Enum dog, cat
type Species string

const (
	SpeciesDog Species = "dog"
	SpeciesCat Species = "cat"
)

// ParseSpecies normaliza una especie recibida desde afuera.
func ParseSpecies(s string) (Species, bool) {
	switch Species(s) {
	case SpeciesDog:
		return SpeciesDog, true
	case SpeciesCat:
		return SpeciesCat, true
	default:
		return "", false
	}
}

// Animal es el conjunto de capacidades de un habitante del zoológico: identidad,
// consumo de agua por admisión, la referencia opcional a su cuidador y su sonido.
// Las variantes concretas (Dog, Cat) solo se distinguen por el sonido que emiten.
type Animal interface {
	ID() string
	Name() string
	Species() Species
	WaterConsumption() int

	// SitterID devuelve el id del cuidador asignado ("" = sin cuidador).
	SitterID() string

	// SetSitterID escribe la referencia al cuidador. Cualquier holder del animal
	// puede escribirla; la consistencia bidireccional (animal <-> colección del
	// cuidador) la mantiene quien asigna, o sea el módulo sitters.
	SetSitterID(id string)

	// Speak emite el sonido fijo de la variante por stdout.
	// Solo efecto: sin retorno y sin cambio de estado.
	Speak()
}

// profile reúne los campos comunes a todas las variantes.
type profile struct {
	id               string
	name             string
	waterConsumption int
	sitterID         string
}

func (p *profile) ID() string            { return p.id }
func (p *profile) Name() string          { return p.name }
func (p *profile) WaterConsumption() int { return p.waterConsumption }
func (p *profile) SitterID() string      { return p.sitterID }
func (p *profile) SetSitterID(id string) { p.sitterID = id }

// Snapshot es una copia plana de los campos de un animal, para armar respuestas
// sin retener el handle vivo (los handles solo se leen bajo el lock de los services).
type Snapshot struct {
	ID               string
	Name             string
	Species          Species
	WaterConsumption int
	SitterID         string
}

// SnapshotOf captura el estado actual del animal.
func SnapshotOf(a Animal) Snapshot {
	return Snapshot{
		ID:               a.ID(),
		Name:             a.Name(),
		Species:          a.Species(),
		WaterConsumption: a.WaterConsumption(),
		SitterID:         a.SitterID(),
	}
}

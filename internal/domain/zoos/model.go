package zoos

import (
	"errors"

	"zoo-management/internal/domain/animals"
	"zoo-management/internal/domain/sitters"
)

// Errores de negocio del zoológico. Conjunto cerrado: cada operación valida su
// propia precondición y devuelve el error puntual de inmediato, sin reintentos
// ni wrapping. El texto es la descripción fija que se muestra al caller.
var (
	ErrIncomeNotPositive  = errors.New("income must be positive")
	ErrExpenseNotPositive = errors.New("expense must be positive")
	ErrNotEnoughBudget    = errors.New("not enough budget")
	ErrSitterExists       = errors.New("sitter already exists in the zoo")
	ErrLimitNotPositive   = errors.New("water amount must be positive")
	ErrNotEnoughWater     = errors.New("not enough water allowance")
)

// Zoo es la raíz del agregado: administra el presupuesto, la reserva de agua y
// las colecciones de animales admitidos y cuidadores contratados. Toda mutación
// pasa por una operación con precondición; si la precondición falla no se toca
// nada (nunca se recorta un monto para "hacerlo entrar").
type Zoo struct {
	id         string
	name       string
	waterLimit int
	budget     int
	animals    []animals.Animal
	sitters    []*sitters.Sitter
}

// New construye el zoológico. La reserva efectiva de agua arranca en waterLimit
// menos el consumo de todos los animales iniciales. El presupuesto y las dos
// colecciones se guardan tal cual: las reglas de admisión y contratación solo
// aplican a las adiciones posteriores, no a lo que viene en la construcción.
func New(id, name string, waterLimit, budget int, initialAnimals []animals.Animal, initialSitters []*sitters.Sitter) *Zoo {
	for _, a := range initialAnimals {
		waterLimit -= a.WaterConsumption()
	}
	return &Zoo{
		id:         id,
		name:       name,
		waterLimit: waterLimit,
		budget:     budget,
		animals:    append([]animals.Animal(nil), initialAnimals...),
		sitters:    append([]*sitters.Sitter(nil), initialSitters...),
	}
}

func (z *Zoo) ID() string      { return z.id }
func (z *Zoo) Name() string    { return z.name }
func (z *Zoo) WaterLimit() int { return z.waterLimit }
func (z *Zoo) Budget() int     { return z.budget }

// Animals devuelve una copia de la colección de admitidos, en orden de admisión.
func (z *Zoo) Animals() []animals.Animal {
	out := make([]animals.Animal, len(z.animals))
	copy(out, z.animals)
	return out
}

// Sitters devuelve una copia de la colección de contratados, en orden de contratación.
func (z *Zoo) Sitters() []*sitters.Sitter {
	out := make([]*sitters.Sitter, len(z.sitters))
	copy(out, z.sitters)
	return out
}

// TotalSalaries es la nómina actual. Se deriva en cada lectura de los handles
// compartidos de los cuidadores, así que refleja animales asignados después de
// la contratación.
func (z *Zoo) TotalSalaries() int {
	total := 0
	for _, s := range z.sitters {
		total += s.Salary()
	}
	return total
}

// AddIncome suma el ingreso al presupuesto y devuelve el presupuesto nuevo.
func (z *Zoo) AddIncome(amount int) (int, error) {
	if amount <= 0 {
		return 0, ErrIncomeNotPositive
	}
	z.budget += amount
	return z.budget, nil
}

// AddExpense descuenta el gasto del presupuesto y devuelve el presupuesto
// nuevo. El gasto tiene que ser positivo y entrar completo en el presupuesto:
// el presupuesto nunca queda negativo.
func (z *Zoo) AddExpense(amount int) (int, error) {
	if amount <= 0 {
		return 0, ErrExpenseNotPositive
	}
	if z.budget < amount {
		return 0, ErrNotEnoughBudget
	}
	z.budget -= amount
	return z.budget, nil
}

// AddAnimal admite al animal si la reserva que quedaría después de admitirlo
// todavía cubre el consumo de otro animal igual. La comparación es exactamente
// waterLimit-consumo >= consumo, más estricta que "alcanza para esta admisión":
// no simplificar a waterLimit >= consumo.
func (z *Zoo) AddAnimal(a animals.Animal) error {
	if z.waterLimit-a.WaterConsumption() < a.WaterConsumption() {
		return ErrNotEnoughWater
	}
	z.animals = append(z.animals, a)
	z.waterLimit -= a.WaterConsumption()
	return nil
}

// AddSitter contrata al cuidador si su id no figura ya entre los contratados y
// la nómina resultante sigue dentro del presupuesto. No descuenta nada: el
// presupuesto recién se toca al pagar salarios.
func (z *Zoo) AddSitter(s *sitters.Sitter) error {
	for _, cur := range z.sitters {
		if cur.ID() == s.ID() {
			return ErrSitterExists
		}
	}
	if z.TotalSalaries()+s.Salary() > z.budget {
		return ErrNotEnoughBudget
	}
	z.sitters = append(z.sitters, s)
	return nil
}

// IncreaseWater amplía la reserva de agua y devuelve el límite nuevo.
func (z *Zoo) IncreaseWater(amount int) (int, error) {
	if amount <= 0 {
		return 0, ErrLimitNotPositive
	}
	z.waterLimit += amount
	return z.waterLimit, nil
}

// PaySalaries paga la nómina completa de una vez y devuelve el presupuesto
// nuevo. Si la nómina no entra en el presupuesto no se paga a nadie: no hay
// pagos parciales.
func (z *Zoo) PaySalaries() (int, error) {
	total := z.TotalSalaries()
	if z.budget < total {
		return 0, ErrNotEnoughBudget
	}
	z.budget -= total
	return z.budget, nil
}

// Snapshot es una copia plana del estado del zoológico para respuestas.
type Snapshot struct {
	ID            string
	Name          string
	WaterLimit    int
	Budget        int
	TotalSalaries int
	Animals       []animals.Snapshot
	Sitters       []sitters.Snapshot
}

// SnapshotOf captura el estado actual del zoológico, nómina derivada incluida.
func SnapshotOf(z *Zoo) Snapshot {
	as := make([]animals.Snapshot, 0, len(z.animals))
	for _, a := range z.animals {
		as = append(as, animals.SnapshotOf(a))
	}
	ss := make([]sitters.Snapshot, 0, len(z.sitters))
	for _, s := range z.sitters {
		ss = append(ss, sitters.SnapshotOf(s))
	}
	return Snapshot{
		ID:            z.id,
		Name:          z.name,
		WaterLimit:    z.waterLimit,
		Budget:        z.budget,
		TotalSalaries: z.TotalSalaries(),
		Animals:       as,
		Sitters:       ss,
	}
}

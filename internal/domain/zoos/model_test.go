package zoos

import (
	"testing"

	"zoo-management/internal/domain/animals"
	"zoo-management/internal/domain/sitters"
)

func TestNew_DiscountsInitialAnimalsFromWaterLimit(t *testing.T) {
	karabas := animals.NewDog("a-1", "Karabas", 6)
	sit1 := sitters.New("s-1", "sit1", []animals.Animal{
		animals.NewDog("a-2", "d1", 1),
		animals.NewDog("a-3", "d2", 1),
	})

	z := New("z-1", "Central", 15, 3000, []animals.Animal{karabas}, []*sitters.Sitter{sit1})

	if z.WaterLimit() != 9 {
		t.Fatalf("expected effective water limit 9, got %d", z.WaterLimit())
	}
	if z.Budget() != 3000 {
		t.Fatalf("expected budget 3000, got %d", z.Budget())
	}
	if z.TotalSalaries() != 1500 {
		t.Fatalf("expected total salaries 1500, got %d", z.TotalSalaries())
	}
	if len(z.Animals()) != 1 || len(z.Sitters()) != 1 {
		t.Fatalf("expected initial collections stored as given")
	}
}

func TestAddIncome_RejectsNonPositive(t *testing.T) {
	z := New("z-1", "Central", 10, 100, nil, nil)

	for _, amount := range []int{0, -1, -500} {
		if _, err := z.AddIncome(amount); err != ErrIncomeNotPositive {
			t.Fatalf("amount %d: expected ErrIncomeNotPositive, got %v", amount, err)
		}
		if z.Budget() != 100 {
			t.Fatalf("amount %d: expected budget unchanged at 100, got %d", amount, z.Budget())
		}
	}
}

func TestAddIncome_AddsToBudget(t *testing.T) {
	z := New("z-1", "Central", 10, 100, nil, nil)

	budget, err := z.AddIncome(250)
	if err != nil {
		t.Fatalf("AddIncome returned error: %v", err)
	}
	if budget != 350 || z.Budget() != 350 {
		t.Fatalf("expected budget 350, got %d", budget)
	}
}

func TestAddExpense_RejectsNonPositive(t *testing.T) {
	z := New("z-1", "Central", 10, 100, nil, nil)

	for _, amount := range []int{0, -1} {
		if _, err := z.AddExpense(amount); err != ErrExpenseNotPositive {
			t.Fatalf("amount %d: expected ErrExpenseNotPositive, got %v", amount, err)
		}
		if z.Budget() != 100 {
			t.Fatalf("amount %d: expected budget unchanged at 100, got %d", amount, z.Budget())
		}
	}
}

func TestAddExpense_RejectsOverBudget(t *testing.T) {
	z := New("z-1", "Central", 10, 100, nil, nil)

	if _, err := z.AddExpense(101); err != ErrNotEnoughBudget {
		t.Fatalf("expected ErrNotEnoughBudget, got %v", err)
	}
	if z.Budget() != 100 {
		t.Fatalf("expected budget unchanged at 100, got %d", z.Budget())
	}
}

func TestAddExpense_AllowsExactBudget(t *testing.T) {
	z := New("z-1", "Central", 10, 100, nil, nil)

	budget, err := z.AddExpense(100)
	if err != nil {
		t.Fatalf("AddExpense returned error: %v", err)
	}
	// El presupuesto puede quedar exactamente en cero, nunca negativo.
	if budget != 0 || z.Budget() != 0 {
		t.Fatalf("expected budget 0, got %d", budget)
	}
}

func TestAddAnimal_RequiresDoubleConsumption(t *testing.T) {
	// Reserva 9 contra consumo 6: después de admitir quedarían 3, y 3 < 6.
	z := New("z-1", "Central", 9, 0, nil, nil)

	err := z.AddAnimal(animals.NewDog("a-1", "Karabas", 6))
	if err != ErrNotEnoughWater {
		t.Fatalf("expected ErrNotEnoughWater, got %v", err)
	}
	if z.WaterLimit() != 9 {
		t.Fatalf("expected water limit unchanged at 9, got %d", z.WaterLimit())
	}
	if len(z.Animals()) != 0 {
		t.Fatalf("expected no admission on failure")
	}
}

func TestAddAnimal_BoundaryExactlyDouble(t *testing.T) {
	// 12 - 6 = 6 >= 6: justo alcanza.
	z := New("z-1", "Central", 12, 0, nil, nil)

	if err := z.AddAnimal(animals.NewDog("a-1", "Karabas", 6)); err != nil {
		t.Fatalf("AddAnimal returned error: %v", err)
	}
	if z.WaterLimit() != 6 {
		t.Fatalf("expected water limit 6 after admission, got %d", z.WaterLimit())
	}
	if len(z.Animals()) != 1 {
		t.Fatalf("expected 1 admitted animal, got %d", len(z.Animals()))
	}
}

func TestAddAnimal_ZeroConsumption(t *testing.T) {
	// 0 - 0 >= 0: un animal sin consumo entra incluso con reserva cero.
	z := New("z-1", "Central", 0, 0, nil, nil)

	if err := z.AddAnimal(animals.NewCat("a-1", "ghost", 0)); err != nil {
		t.Fatalf("AddAnimal returned error: %v", err)
	}
	if z.WaterLimit() != 0 {
		t.Fatalf("expected water limit to stay 0, got %d", z.WaterLimit())
	}
}

func TestAddSitter_WithinBudget_DoesNotTouchBudget(t *testing.T) {
	sit1 := sitters.New("s-1", "sit1", []animals.Animal{
		animals.NewDog("a-1", "d1", 1),
		animals.NewDog("a-2", "d2", 1),
	})
	z := New("z-1", "Central", 10, 3000, nil, []*sitters.Sitter{sit1})

	// 1500 (nómina actual) + 750 (nuevo) = 2250 <= 3000.
	newSitter := sitters.New("s-2", "solo", []animals.Animal{
		animals.NewCat("a-3", "c1", 1),
	})
	if err := z.AddSitter(newSitter); err != nil {
		t.Fatalf("AddSitter returned error: %v", err)
	}
	if z.Budget() != 3000 {
		t.Fatalf("expected budget untouched at 3000, got %d", z.Budget())
	}
	if z.TotalSalaries() != 2250 {
		t.Fatalf("expected total salaries 2250, got %d", z.TotalSalaries())
	}
}

func TestAddSitter_RejectsWhenPayrollExceedsBudget(t *testing.T) {
	z := New("z-1", "Central", 10, 700, nil, nil)

	sit := sitters.New("s-1", "sit1", []animals.Animal{
		animals.NewDog("a-1", "d1", 1),
	})
	// 0 + 750 > 700.
	if err := z.AddSitter(sit); err != ErrNotEnoughBudget {
		t.Fatalf("expected ErrNotEnoughBudget, got %v", err)
	}
	if len(z.Sitters()) != 0 {
		t.Fatalf("expected no hire on failure")
	}
}

func TestAddSitter_RejectsDuplicateID(t *testing.T) {
	z := New("z-1", "Central", 10, 10000, nil, nil)
	sit := sitters.New("s-1", "sit1", nil)

	if err := z.AddSitter(sit); err != nil {
		t.Fatalf("first AddSitter returned error: %v", err)
	}
	if err := z.AddSitter(sit); err != ErrSitterExists {
		t.Fatalf("expected ErrSitterExists, got %v", err)
	}
	// Entre las dos llamadas la colección creció exactamente una vez.
	if len(z.Sitters()) != 1 {
		t.Fatalf("expected 1 hired sitter, got %d", len(z.Sitters()))
	}
}

func TestIncreaseWater_RejectsNonPositive(t *testing.T) {
	z := New("z-1", "Central", 10, 0, nil, nil)

	for _, amount := range []int{0, -3} {
		if _, err := z.IncreaseWater(amount); err != ErrLimitNotPositive {
			t.Fatalf("amount %d: expected ErrLimitNotPositive, got %v", amount, err)
		}
		if z.WaterLimit() != 10 {
			t.Fatalf("amount %d: expected water limit unchanged at 10, got %d", amount, z.WaterLimit())
		}
	}
}

func TestIncreaseWater_AddsToLimit(t *testing.T) {
	z := New("z-1", "Central", 10, 0, nil, nil)

	limit, err := z.IncreaseWater(5)
	if err != nil {
		t.Fatalf("IncreaseWater returned error: %v", err)
	}
	if limit != 15 || z.WaterLimit() != 15 {
		t.Fatalf("expected water limit 15, got %d", limit)
	}
}

func TestPaySalaries_RejectsWhenPayrollExceedsBudget(t *testing.T) {
	sit := sitters.New("s-1", "sit1", []animals.Animal{
		animals.NewDog("a-1", "d1", 1),
		animals.NewDog("a-2", "d2", 1),
	})
	z := New("z-1", "Central", 10, 1000, nil, []*sitters.Sitter{sit})

	// Nómina 1500 > presupuesto 1000: no se paga nada.
	if _, err := z.PaySalaries(); err != ErrNotEnoughBudget {
		t.Fatalf("expected ErrNotEnoughBudget, got %v", err)
	}
	if z.Budget() != 1000 {
		t.Fatalf("expected budget unchanged at 1000, got %d", z.Budget())
	}
}

func TestPaySalaries_DeductsFullPayroll(t *testing.T) {
	sit := sitters.New("s-1", "sit1", []animals.Animal{
		animals.NewDog("a-1", "d1", 1),
		animals.NewDog("a-2", "d2", 1),
	})
	z := New("z-1", "Central", 10, 3000, nil, []*sitters.Sitter{sit})

	budget, err := z.PaySalaries()
	if err != nil {
		t.Fatalf("PaySalaries returned error: %v", err)
	}
	if budget != 1500 || z.Budget() != 1500 {
		t.Fatalf("expected budget 1500 after payroll, got %d", budget)
	}
	// La nómina sigue ahí: pagar no desasigna animales.
	if z.TotalSalaries() != 1500 {
		t.Fatalf("expected total salaries still 1500, got %d", z.TotalSalaries())
	}
}

func TestPaySalaries_NoSitters(t *testing.T) {
	z := New("z-1", "Central", 10, 100, nil, nil)

	budget, err := z.PaySalaries()
	if err != nil {
		t.Fatalf("PaySalaries returned error: %v", err)
	}
	if budget != 100 {
		t.Fatalf("expected budget unchanged at 100, got %d", budget)
	}
}

func TestTotalSalaries_ReflectsAssignmentsAfterHire(t *testing.T) {
	sit := sitters.New("s-1", "sit1", nil)
	z := New("z-1", "Central", 10, 10000, nil, nil)

	if err := z.AddSitter(sit); err != nil {
		t.Fatalf("AddSitter returned error: %v", err)
	}
	if z.TotalSalaries() != 0 {
		t.Fatalf("expected total salaries 0, got %d", z.TotalSalaries())
	}

	// El cuidador es un handle compartido: asignar después de contratar
	// cambia la nómina del zoológico sin pasar por él.
	if err := sit.Assign(animals.NewDog("a-1", "d1", 1)); err != nil {
		t.Fatalf("Assign returned error: %v", err)
	}
	if z.TotalSalaries() != 750 {
		t.Fatalf("expected total salaries 750 after assignment, got %d", z.TotalSalaries())
	}
}

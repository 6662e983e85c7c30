package animals

import "testing"

func TestNewDog_Fields(t *testing.T) {
	d := NewDog("a-1", "Karabas", 6)

	if d.ID() != "a-1" {
		t.Fatalf("expected id a-1, got %s", d.ID())
	}
	if d.Name() != "Karabas" {
		t.Fatalf("expected name Karabas, got %s", d.Name())
	}
	if d.Species() != SpeciesDog {
		t.Fatalf("expected species dog, got %s", d.Species())
	}
	if d.WaterConsumption() != 6 {
		t.Fatalf("expected water consumption 6, got %d", d.WaterConsumption())
	}
	if d.SitterID() != "" {
		t.Fatalf("expected no sitter on a new animal, got %q", d.SitterID())
	}
}

func TestNewCat_Fields(t *testing.T) {
	c := NewCat("a-2", "Misha", 3)

	if c.Species() != SpeciesCat {
		t.Fatalf("expected species cat, got %s", c.Species())
	}
	if c.WaterConsumption() != 3 {
		t.Fatalf("expected water consumption 3, got %d", c.WaterConsumption())
	}
}

func TestSetSitterID_VisibleThroughSharedHandle(t *testing.T) {
	d := NewDog("a-1", "Karabas", 6)

	// Dos referencias al mismo handle: la mutación se ve por ambas.
	var a Animal = d
	a.SetSitterID("s-1")

	if d.SitterID() != "s-1" {
		t.Fatalf("expected sitter s-1 through original handle, got %q", d.SitterID())
	}
}

func TestParseSpecies(t *testing.T) {
	if sp, ok := ParseSpecies("dog"); !ok || sp != SpeciesDog {
		t.Fatalf("expected dog to parse, got %q ok=%v", sp, ok)
	}
	if sp, ok := ParseSpecies("cat"); !ok || sp != SpeciesCat {
		t.Fatalf("expected cat to parse, got %q ok=%v", sp, ok)
	}
	if _, ok := ParseSpecies("hamster"); ok {
		t.Fatalf("expected hamster to be rejected")
	}
	if _, ok := ParseSpecies(""); ok {
		t.Fatalf("expected empty species to be rejected")
	}
}

func TestSnapshotOf_CopiesCurrentState(t *testing.T) {
	d := NewDog("a-1", "Karabas", 6)
	d.SetSitterID("s-1")

	snap := SnapshotOf(d)
	if snap.ID != "a-1" || snap.Name != "Karabas" || snap.Species != SpeciesDog {
		t.Fatalf("unexpected snapshot: %#v", snap)
	}
	if snap.WaterConsumption != 6 || snap.SitterID != "s-1" {
		t.Fatalf("unexpected snapshot: %#v", snap)
	}

	// El snapshot es una copia: cambios posteriores no lo tocan.
	d.SetSitterID("s-2")
	if snap.SitterID != "s-1" {
		t.Fatalf("expected snapshot to keep s-1, got %q", snap.SitterID)
	}
}

func ExampleDog_Speak() {
	d := NewDog("a-1", "Karabas", 6)
	d.Speak()
	// Output: Woof!!
}

func ExampleCat_Speak() {
	c := NewCat("a-2", "Misha", 3)
	c.Speak()
	// Output: Meow!!
}

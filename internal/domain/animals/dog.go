package animals

import "fmt"

const dogSound = "Woof!!"

// Dog es la variante canina.
type Dog struct {
	profile
}

// NewDog crea un perro. El nombre puede quedar vacío; el consumo de agua es el
// costo fijo que el zoológico descuenta de su reserva al admitirlo.
func NewDog(id, name string, waterConsumption int) *Dog {
	return &Dog{profile: profile{id: id, name: name, waterConsumption: waterConsumption}}
}

// Species implementa Animal.
func (d *Dog) Species() Species { return SpeciesDog }

// Speak imprime el sonido de la variante.
func (d *Dog) Speak() { fmt.Println(dogSound) }

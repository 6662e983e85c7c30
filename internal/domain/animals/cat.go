package animals

import "fmt"

const catSound = "Meow!!"

// Cat es la variante felina.
type Cat struct {
	profile
}

// NewCat crea un gato con los mismos campos que cualquier otra variante.
func NewCat(id, name string, waterConsumption int) *Cat {
	return &Cat{profile: profile{id: id, name: name, waterConsumption: waterConsumption}}
}

// Species implementa Animal.
func (c *Cat) Species() Species { return SpeciesCat }

// Speak imprime el sonido de la variante.
func (c *Cat) Speak() { fmt.Println(catSound) }

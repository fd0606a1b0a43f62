// Package bindings holds the functions a host environment calls into.
// They forward to the combat constructors and carry no state of their own.
package bindings

import (
	"fmt"
	"math"

	"github.com/KirkDiggler/rpg-combat/internal/entities/combat"
)

// Host is the environment embedding the library
type Host interface {
	// Alert shows a message to the user
	Alert(message string)
}

// Greet shows a greeting through the host
func Greet(host Host, name string) {
	host.Alert(GreetingFor(name))
}

// GreetingFor returns the greeting shown by Greet
func GreetingFor(name string) string {
	return fmt.Sprintf("Hello, %s!", name)
}

// CreateNewCharacter forwards to combat.NewCharacter
func CreateNewCharacter(name string) *combat.Character {
	return combat.NewCharacter(name)
}

// CreateNewMob forwards to combat.NewMob
func CreateNewMob(name string, level, hp, ap, dp int32) *combat.Character {
	return combat.NewMob(name, level, hp, ap, dp)
}

// Int32 converts a host number to a stat value. Fractions are truncated
// toward zero and values outside the int32 range saturate at its bounds.
// NaN maps to 0.
func Int32(f float64) int32 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	}
	return int32(f)
}

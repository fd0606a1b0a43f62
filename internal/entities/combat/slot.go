// Package combat contains the character and gear model along with the
// attack and equipment rules.
package combat

import "strings"

// GearSlot represents an equip location on a character
type GearSlot string

// Define all available gear slots
const (
	SlotTorso GearSlot = "torso"
	SlotHand  GearSlot = "hand"
	SlotFoot  GearSlot = "foot"
)

// String returns the string representation of the gear slot
func (s GearSlot) String() string {
	return string(s)
}

// IsValid checks if the gear slot is one of the known slots
func (s GearSlot) IsValid() bool {
	switch s {
	case SlotTorso, SlotHand, SlotFoot:
		return true
	default:
		return false
	}
}

// AllGearSlots returns all valid gear slots
func AllGearSlots() []GearSlot {
	return []GearSlot{
		SlotTorso,
		SlotHand,
		SlotFoot,
	}
}

// ParseGearSlot converts a string to a GearSlot, ignoring case and
// surrounding whitespace. Returns false if the string names no slot.
func ParseGearSlot(s string) (GearSlot, bool) {
	slot := GearSlot(strings.ToLower(strings.TrimSpace(s)))
	if slot.IsValid() {
		return slot, true
	}
	return "", false
}

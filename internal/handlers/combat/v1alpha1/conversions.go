package v1alpha1

import (
	combatv1alpha1 "github.com/KirkDiggler/rpg-combat/internal/api/combat/v1alpha1"
	entity "github.com/KirkDiggler/rpg-combat/internal/entities/combat"
)

func convertCharacterToProto(data *entity.CharacterData) *combatv1alpha1.Character {
	if data == nil {
		return nil
	}

	c := &combatv1alpha1.Character{
		ID:    data.ID,
		Name:  data.Name,
		Level: data.Level,
		HP:    data.HP,
		AP:    data.AP,
		DP:    data.DP,
		Exp:   data.Exp,
	}

	// Fixed slot order keeps responses stable
	for _, slot := range entity.AllGearSlots() {
		if g, ok := data.Slots[slot]; ok {
			c.Equipment = append(c.Equipment, convertGearToProto(&g))
		}
	}

	return c
}

func convertGearToProto(data *entity.GearData) *combatv1alpha1.Gear {
	if data == nil {
		return nil
	}

	return &combatv1alpha1.Gear{
		ID:   data.ID,
		Name: data.Name,
		AP:   data.AP,
		DP:   data.DP,
		HP:   data.HP,
		Slot: data.Slot.String(),
	}
}

package combat

// Gear is an equippable item. A Gear value is immutable once built; characters
// keep their own copy when it is equipped.
type Gear struct {
	name string
	ap   *int32
	dp   *int32
	hp   *int32
	slot GearSlot
}

// GearData is the serializable form of Gear
type GearData struct {
	ID   string   `json:"id,omitempty"`
	Name string   `json:"name"`
	AP   *int32   `json:"ap,omitempty"`
	DP   *int32   `json:"dp,omitempty"`
	HP   *int32   `json:"hp,omitempty"`
	Slot GearSlot `json:"slot"`
}

// NewGear creates a piece of gear. A nil delta means the gear does not
// modify that stat. No validation is performed.
func NewGear(name string, ap, dp, hp *int32, slot GearSlot) Gear {
	return Gear{
		name: name,
		ap:   copyDelta(ap),
		dp:   copyDelta(dp),
		hp:   copyDelta(hp),
		slot: slot,
	}
}

// LoadGearFromData rebuilds gear from its serialized form
func LoadGearFromData(data GearData) Gear {
	return NewGear(data.Name, data.AP, data.DP, data.HP, data.Slot)
}

// Mod returns a present stat delta for use with NewGear
func Mod(v int32) *int32 {
	return &v
}

// Name returns the gear name
func (g Gear) Name() string { return g.name }

// Slot returns the slot the gear occupies
func (g Gear) Slot() GearSlot { return g.slot }

// AP returns the attack power delta and whether one is set
func (g Gear) AP() (int32, bool) { return deltaValue(g.ap) }

// DP returns the defense power delta and whether one is set
func (g Gear) DP() (int32, bool) { return deltaValue(g.dp) }

// HP returns the hit point delta and whether one is set
func (g Gear) HP() (int32, bool) { return deltaValue(g.hp) }

// ToData converts the gear to its serializable form
func (g Gear) ToData() GearData {
	return GearData{
		Name: g.name,
		AP:   copyDelta(g.ap),
		DP:   copyDelta(g.dp),
		HP:   copyDelta(g.hp),
		Slot: g.slot,
	}
}

// apDelta, dpDelta and hpDelta read an absent modifier as zero
func (g Gear) apDelta() int32 { return orZero(g.ap) }
func (g Gear) dpDelta() int32 { return orZero(g.dp) }
func (g Gear) hpDelta() int32 { return orZero(g.hp) }

func copyDelta(v *int32) *int32 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func deltaValue(v *int32) (int32, bool) {
	if v == nil {
		return 0, false
	}
	return *v, true
}

func orZero(v *int32) int32 {
	if v == nil {
		return 0
	}
	return *v
}

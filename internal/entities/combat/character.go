package combat

import "log/slog"

// Starting stats for a new player character
const (
	DefaultLevel int32 = 1
	DefaultHP    int32 = 20
	DefaultAP    int32 = 5
	DefaultDP    int32 = 5

	// MinDamage is the least damage an attack can deal
	MinDamage int32 = 1
)

// Character is a combatant with base stats and equipped gear.
// Character is not safe for concurrent use.
type Character struct {
	name  string
	level int32
	hp    int32
	ap    int32
	dp    int32
	exp   *int32
	slots map[GearSlot]Gear
}

// CharacterData is the serializable form of a Character.
// Stats are the current values, equipped gear included.
type CharacterData struct {
	ID    string                `json:"id,omitempty"`
	Name  string                `json:"name"`
	Level int32                 `json:"level"`
	HP    int32                 `json:"hp"`
	AP    int32                 `json:"ap"`
	DP    int32                 `json:"dp"`
	Exp   *int32                `json:"exp,omitempty"`
	Slots map[GearSlot]GearData `json:"slots,omitempty"`
}

// AttackResult describes the outcome of a single attack
type AttackResult struct {
	Damage   int32
	TargetHP int32
	Defeated bool
}

// NewCharacter creates a level 1 player character with starting stats
// and zero experience
func NewCharacter(name string) *Character {
	exp := int32(0)
	return &Character{
		name:  name,
		level: DefaultLevel,
		hp:    DefaultHP,
		ap:    DefaultAP,
		dp:    DefaultDP,
		exp:   &exp,
		slots: make(map[GearSlot]Gear),
	}
}

// NewMob creates a non-player character with the given stats.
// Mobs have no experience value. Stats are taken as-is.
func NewMob(name string, level, hp, ap, dp int32) *Character {
	return &Character{
		name:  name,
		level: level,
		hp:    hp,
		ap:    ap,
		dp:    dp,
		slots: make(map[GearSlot]Gear),
	}
}

// LoadCharacterFromData rebuilds a character from its serialized form.
// Stats are restored exactly; equipped gear is not re-applied.
func LoadCharacterFromData(data *CharacterData) *Character {
	c := &Character{
		name:  data.Name,
		level: data.Level,
		hp:    data.HP,
		ap:    data.AP,
		dp:    data.DP,
		exp:   copyDelta(data.Exp),
		slots: make(map[GearSlot]Gear, len(data.Slots)),
	}
	for slot, gd := range data.Slots {
		c.slots[slot] = LoadGearFromData(gd)
	}
	return c
}

// ToData converts the character to its serializable form
func (c *Character) ToData() *CharacterData {
	data := &CharacterData{
		Name:  c.name,
		Level: c.level,
		HP:    c.hp,
		AP:    c.ap,
		DP:    c.dp,
		Exp:   copyDelta(c.exp),
	}
	if len(c.slots) > 0 {
		data.Slots = make(map[GearSlot]GearData, len(c.slots))
		for slot, g := range c.slots {
			data.Slots[slot] = g.ToData()
		}
	}
	return data
}

// Name returns the character name
func (c *Character) Name() string { return c.name }

// Level returns the character level
func (c *Character) Level() int32 { return c.level }

// GetHP returns the current hit points
func (c *Character) GetHP() int32 { return c.hp }

// AP returns the current attack power
func (c *Character) AP() int32 { return c.ap }

// DP returns the current defense power
func (c *Character) DP() int32 { return c.dp }

// Exp returns the experience value; false for mobs
func (c *Character) Exp() (int32, bool) { return deltaValue(c.exp) }

// IsMob reports whether the character has no experience value
func (c *Character) IsMob() bool { return c.exp == nil }

// IsDefeated reports whether hit points have dropped to zero or below
func (c *Character) IsDefeated() bool { return c.hp <= 0 }

// Equipped returns the gear in the given slot, if any
func (c *Character) Equipped(slot GearSlot) (Gear, bool) {
	g, ok := c.slots[slot]
	return g, ok
}

// EquipItem adds the gear's stat deltas and stores a copy in its slot.
// Gear already in that slot is overwritten without its deltas being
// subtracted, so they stay applied.
func (c *Character) EquipItem(gear Gear) {
	c.ap += gear.apDelta()
	c.dp += gear.dpDelta()
	c.hp += gear.hpDelta()
	c.slots[gear.slot] = gear
}

// RemoveItem unequips the gear in the slot and reverses its stat deltas.
// An empty slot is a no-op.
func (c *Character) RemoveItem(slot GearSlot) (Gear, bool) {
	gear, ok := c.slots[slot]
	if !ok {
		return Gear{}, false
	}
	delete(c.slots, slot)

	c.ap -= gear.apDelta()
	c.dp -= gear.dpDelta()
	c.hp -= gear.hpDelta()

	return gear, true
}

// Attack resolves one attack against target and reports whether the target
// was defeated. The target must be a different character.
func (c *Character) Attack(target *Character) bool {
	return c.ResolveAttack(target).Defeated
}

// ResolveAttack deals damage to target and returns the outcome
func (c *Character) ResolveAttack(target *Character) AttackResult {
	pd := PotentialDamage(c.ap, target.dp)
	target.hp -= pd

	slog.Info("attack resolved",
		"attacker", c.name,
		"defender", target.name,
		"damage", pd,
		"defender_hp", target.hp)

	return AttackResult{
		Damage:   pd,
		TargetHP: target.hp,
		Defeated: target.hp <= 0,
	}
}

// PotentialDamage is the damage an attacker with ap deals to a defender
// with dp. Defense is halved with truncating division and the result is
// never below MinDamage.
func PotentialDamage(ap, dp int32) int32 {
	return max(ap-dp/2, MinDamage)
}

//go:build js && wasm

// Package main exposes the combat functions to a JavaScript host. Each
// exported constructor returns a plain object whose methods forward to an
// in-process combat orchestrator.
package main

import (
	"context"
	"log/slog"
	"os"
	"syscall/js"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-combat/internal/bindings"
	entity "github.com/KirkDiggler/rpg-combat/internal/entities/combat"
	"github.com/KirkDiggler/rpg-combat/internal/errors"
	"github.com/KirkDiggler/rpg-combat/internal/orchestrators/combat"
	"github.com/KirkDiggler/rpg-combat/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-combat/internal/repositories/combatant"
	"github.com/KirkDiggler/rpg-combat/internal/repositories/gear"
)

// jsHost shows alerts through window.alert
type jsHost struct{}

func (jsHost) Alert(message string) {
	js.Global().Call("alert", message)
}

type exports struct {
	svc combat.Service
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	svc, err := combat.NewOrchestrator(&combat.Config{
		CharacterRepo: combatant.NewInMemory(),
		GearRepo:      gear.NewInMemory(),
		IDGenerator:   idgen.NewSequential("id"),
		EventBus:      events.NewBus(),
	})
	if err != nil {
		slog.Error("failed to create combat orchestrator", "error", err)
		os.Exit(1)
	}

	e := &exports{svc: svc}
	global := js.Global()
	global.Set("greet", js.FuncOf(e.greet))
	global.Set("createNewCharacter", js.FuncOf(e.createNewCharacter))
	global.Set("createNewMob", js.FuncOf(e.createNewMob))
	global.Set("createGear", js.FuncOf(e.createGear))

	// Keep the exports alive for the lifetime of the page
	select {}
}

func (e *exports) greet(_ js.Value, args []js.Value) any {
	bindings.Greet(jsHost{}, stringArg(args, 0))
	return nil
}

// createNewCharacter(name)
func (e *exports) createNewCharacter(_ js.Value, args []js.Value) any {
	return e.register(bindings.CreateNewCharacter(stringArg(args, 0)))
}

// createNewMob(name, level, hp, ap, dp)
func (e *exports) createNewMob(_ js.Value, args []js.Value) any {
	return e.register(bindings.CreateNewMob(
		stringArg(args, 0),
		intArg(args, 1),
		intArg(args, 2),
		intArg(args, 3),
		intArg(args, 4),
	))
}

func (e *exports) register(c *entity.Character) any {
	out, err := e.svc.RegisterCharacter(context.Background(), &combat.RegisterCharacterInput{Character: c})
	if err != nil {
		return jsError(err)
	}
	return e.characterObject(out.Character.ID)
}

// createGear(name, slot, {ap, dp, hp})
func (e *exports) createGear(_ js.Value, args []js.Value) any {
	slot, ok := entity.ParseGearSlot(stringArg(args, 1))
	if !ok {
		return jsError(errors.InvalidArgumentf("invalid slot: %q", stringArg(args, 1)))
	}

	mods := js.Undefined()
	if len(args) > 2 {
		mods = args[2]
	}

	out, err := e.svc.CreateGear(context.Background(), &combat.CreateGearInput{
		Name: stringArg(args, 0),
		AP:   modField(mods, "ap"),
		DP:   modField(mods, "dp"),
		HP:   modField(mods, "hp"),
		Slot: slot,
	})
	if err != nil {
		return jsError(err)
	}

	return map[string]any{
		"id":   out.Gear.ID,
		"name": out.Gear.Name,
		"slot": out.Gear.Slot.String(),
	}
}

// characterObject builds the JS view of a character handle
func (e *exports) characterObject(id string) js.Value {
	obj := js.ValueOf(map[string]any{"id": id})

	obj.Set("getHp", js.FuncOf(func(_ js.Value, _ []js.Value) any {
		out, err := e.svc.GetCharacter(context.Background(), &combat.GetCharacterInput{CharacterID: id})
		if err != nil {
			return jsError(err)
		}
		return out.Character.HP
	}))

	obj.Set("equipItem", js.FuncOf(func(_ js.Value, args []js.Value) any {
		_, err := e.svc.EquipItem(context.Background(), &combat.EquipItemInput{
			CharacterID: id,
			GearID:      handleID(args),
		})
		if err != nil {
			return jsError(err)
		}
		return nil
	}))

	obj.Set("removeItem", js.FuncOf(func(_ js.Value, args []js.Value) any {
		slot, ok := entity.ParseGearSlot(stringArg(args, 0))
		if !ok {
			return jsError(errors.InvalidArgumentf("invalid slot: %q", stringArg(args, 0)))
		}
		_, err := e.svc.RemoveItem(context.Background(), &combat.RemoveItemInput{CharacterID: id, Slot: slot})
		if err != nil {
			return jsError(err)
		}
		return nil
	}))

	obj.Set("attack", js.FuncOf(func(_ js.Value, args []js.Value) any {
		out, err := e.svc.Attack(context.Background(), &combat.AttackInput{
			AttackerID: id,
			TargetID:   handleID(args),
		})
		if err != nil {
			return jsError(err)
		}
		return out.Defeated
	}))

	return obj
}

// handleID accepts either a handle object or its id string
func handleID(args []js.Value) string {
	if len(args) == 0 {
		return ""
	}
	if args[0].Type() == js.TypeObject {
		return args[0].Get("id").String()
	}
	return args[0].String()
}

func stringArg(args []js.Value, i int) string {
	if i >= len(args) || args[i].Type() != js.TypeString {
		return ""
	}
	return args[i].String()
}

// intArg reads a number argument; see bindings.Int32 for out of range values
func intArg(args []js.Value, i int) int32 {
	if i >= len(args) || args[i].Type() != js.TypeNumber {
		return 0
	}
	return bindings.Int32(args[i].Float())
}

func modField(mods js.Value, key string) *int32 {
	if mods.Type() != js.TypeObject {
		return nil
	}
	v := mods.Get(key)
	if v.Type() != js.TypeNumber {
		return nil
	}
	return entity.Mod(bindings.Int32(v.Float()))
}

func jsError(err error) js.Value {
	return js.Global().Get("Error").New(err.Error())
}

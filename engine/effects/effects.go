// Package effects implements the turn-effect dispatcher: given a validated
// action, it mutates the session state and produces the narrative response.
// All world/player mutation happens here.
package effects

import (
	"fmt"
	"strings"

	"github.com/merrow/hauntcore/engine/state"
	"github.com/merrow/hauntcore/types"
)

// Roller is the die the say-teleport draws from.
type Roller interface {
	Intn(n int) int
}

// Apply dispatches the action and returns the response lines.
// The action id has already passed validation and the hazard filter.
func Apply(defs *state.Defs, s *types.State, rng Roller, actionID, objectID int, word string) []string {
	act := defs.Action(actionID)

	switch act.Kind {
	case types.KindShowActions:
		return applyShowActions(defs)
	case types.KindInventory:
		return applyInventory(defs, s)
	case types.KindMove:
		return applyMove(defs, s, act.Dir)
	case types.KindTake:
		return applyTake(defs, s, objectID)
	case types.KindDrop:
		return applyDrop(defs, s, objectID)
	case types.KindExamine:
		return applyExamine(defs, s, objectID)
	case types.KindOpen:
		return applyOpen(s, act)
	case types.KindLight:
		return applyLight(s, act)
	case types.KindUnlight:
		s.LightLit = false
		return say(act.Response)
	case types.KindSay:
		return applySay(defs, s, rng, act, word)
	case types.KindChop:
		return applyChop(s, act)
	case types.KindClimb:
		return applyClimb(s, act)
	case types.KindBreak, types.KindUnlock:
		return applyGrant(s, act)
	case types.KindVanquish:
		return applyVanquish(defs, s, act)
	case types.KindScore:
		return say(fmt.Sprintf("Your score is %d.", state.Score(s, defs)))
	case types.KindRespond:
		return say(act.Response)
	}
	return say(act.Response)
}

func applyShowActions(defs *state.Defs) []string {
	verbs := make([]string, 0, len(defs.Actions))
	seen := map[string]bool{}
	for _, act := range defs.Actions {
		// Alternate pairs share a verb; list it once.
		if seen[act.Verb] {
			continue
		}
		seen[act.Verb] = true
		verbs = append(verbs, act.Verb)
	}
	out := []string{"You know the following words:"}
	return append(out, wrapList(verbs, defs.Game.ListWrap)...)
}

func applyInventory(defs *state.Defs, s *types.State) []string {
	if len(s.Inventory) == 0 {
		return say("You are carrying nothing.")
	}
	names := make([]string, 0, len(s.Inventory))
	for _, id := range s.Inventory {
		if obj := defs.Object(id); obj != nil {
			names = append(names, obj.Name)
		}
	}
	out := []string{"You are carrying:"}
	return append(out, wrapList(names, defs.Game.ListWrap)...)
}

func applyMove(defs *state.Defs, s *types.State, dir types.Direction) []string {
	game := defs.Game
	if !s.Rooms[s.Location].Exits[dir] {
		if s.Location == game.Barrier.Room && dir == game.Barrier.Dir {
			return say(game.BarrierText)
		}
		return say("You can't go that way!")
	}

	dest := s.Location + dir.Offset(game.GridWidth)
	if defs.Rooms[dest].Dark && !s.LightLit {
		return say("You need a light to go " + strings.ToUpper(dir.String()))
	}

	s.Location = dest
	out := say("You move " + strings.ToUpper(dir.String()))

	// One-way closure: the first entry into the slam room locks an exit
	// behind the player.
	if dest == game.DoorSlam.Room && !s.Flags["door_slammed"] {
		s.Flags["door_slammed"] = true
		s.Rooms[game.DoorSlam.Room].Exits[game.DoorSlam.Dir] = false
		out = say(game.DoorSlamText)
	}

	return append(out, burnLight(defs, s)...)
}

// burnLight is the fuel accounting shared by all four movement directions.
func burnLight(defs *state.Defs, s *types.State) []string {
	if !s.LightLit {
		return nil
	}
	s.LightFuel--
	if s.LightFuel == defs.Game.FlickerAt {
		return say("Your light is beginning to flicker out...")
	}
	if s.LightFuel <= 0 {
		s.LightFuel = 0
		s.LightLit = false
		return say("Your light went out!")
	}
	return nil
}

func applyTake(defs *state.Defs, s *types.State, objectID int) []string {
	obj := defs.Object(objectID)
	if !obj.Collectible {
		return say(fmt.Sprintf("You can't pick up the %s.", obj.Name))
	}
	if state.IsHidden(s, objectID) || !state.RoomHasObject(s, s.Location, objectID) {
		return say(fmt.Sprintf("There is no %s in this room.", obj.Name))
	}
	state.RemoveFromRoom(s, s.Location, objectID)
	state.AddToInventory(s, objectID)
	return say(fmt.Sprintf("You pick up the %s.", obj.Name))
}

func applyDrop(defs *state.Defs, s *types.State, objectID int) []string {
	obj := defs.Object(objectID)
	if !state.HasItem(s, objectID) {
		return say(fmt.Sprintf("You aren't carrying the %s.", obj.Name))
	}
	if !state.AddToRoom(s, s.Location, objectID) {
		return say(fmt.Sprintf("There is no space to put down\nthe %s here.", obj.Name))
	}
	state.RemoveFromInventory(s, objectID)
	return say(fmt.Sprintf("You drop the %s.", obj.Name))
}

func applyExamine(defs *state.Defs, s *types.State, objectID int) []string {
	obj := defs.Object(objectID)
	if !state.Present(s, objectID) {
		return say(fmt.Sprintf("You can't see any %s here.", obj.Name))
	}
	out := say(obj.Description)
	if obj.Reveals != 0 && state.IsHidden(s, obj.Reveals) {
		state.Reveal(s, obj.Reveals)
		out = append(out, say(obj.RevealText)...)
	}
	return out
}

func applyOpen(s *types.State, act *types.Action) []string {
	if act.Reveal == 0 {
		return say(act.Response)
	}
	if !state.IsHidden(s, act.Reveal) {
		return say(act.AlreadyText)
	}
	state.Reveal(s, act.Reveal)
	return append(say(act.Response), say(act.RevealText)...)
}

func applyLight(s *types.State, act *types.Action) []string {
	if s.LightFuel <= 0 {
		return say("Your candle has burnt out,\nyou can't light it again.")
	}
	if s.LightLit {
		return say(act.AlreadyText)
	}
	s.LightLit = true
	return say(act.Response)
}

func applySay(defs *state.Defs, s *types.State, rng Roller, act *types.Action, word string) []string {
	game := defs.Game
	if word == "" {
		return say("Say what?")
	}
	if word != game.MagicWord {
		return say(fmt.Sprintf(act.Response, word))
	}
	if s.Location == game.Barrier.Room {
		s.Rooms[game.Barrier.Room].Exits[game.Barrier.Dir] = true
		return say(game.MagicText)
	}
	s.Location = game.TeleportRooms[rng.Intn(len(game.TeleportRooms))]
	return say(game.TeleportText)
}

func applyChop(s *types.State, act *types.Action) []string {
	if s.Flags["axed_tree"] {
		return say(act.AlreadyText)
	}
	s.Flags["axed_tree"] = true
	return say(act.Response)
}

func applyClimb(s *types.State, act *types.Action) []string {
	if s.Flags["axed_tree"] {
		return say(act.AlreadyText)
	}
	if s.Flags["up_tree"] {
		s.Flags["up_tree"] = false
		return say(act.DownText)
	}
	s.Flags["up_tree"] = true
	return say(act.Response)
}

// applyGrant handles the one-shot exit-opening puzzles (break wall,
// unlock door). The exit state itself is the idempotence guard.
func applyGrant(s *types.State, act *types.Action) []string {
	grant := act.Grant
	if s.Rooms[grant.Room].Exits[grant.Dir] {
		return say(act.AlreadyText)
	}
	s.Rooms[grant.Room].Exits[grant.Dir] = true
	return say(act.Response)
}

func applyVanquish(defs *state.Defs, s *types.State, act *types.Action) []string {
	obj := defs.Object(act.Object)
	if !state.RemoveFromRoom(s, s.Location, act.Object) {
		return say(fmt.Sprintf("There are no %s in this room...", obj.Name))
	}
	return say(act.Response)
}

// say splits content text on embedded newlines into output lines.
func say(text string) []string {
	return strings.Split(text, "\n")
}

// wrapList formats names into comma-separated lines of at most per
// entries each.
func wrapList(names []string, per int) []string {
	if per <= 0 {
		per = len(names)
	}
	var lines []string
	for len(names) > 0 {
		n := per
		if n > len(names) {
			n = len(names)
		}
		line := strings.Join(names[:n], ", ")
		if len(names) > n {
			line += ","
		}
		lines = append(lines, line)
		names = names[n:]
	}
	return lines
}

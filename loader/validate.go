package loader

import (
	"fmt"
	"os"
	"strings"

	"github.com/merrow/hauntcore/engine/state"
	"github.com/merrow/hauntcore/types"
)

// ValidationError collects all validation errors and warnings.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// Known action kinds.
var validKinds = map[types.ActionKind]bool{
	types.KindShowActions: true,
	types.KindInventory:   true,
	types.KindMove:        true,
	types.KindTake:        true,
	types.KindDrop:        true,
	types.KindExamine:     true,
	types.KindOpen:        true,
	types.KindLight:       true,
	types.KindUnlight:     true,
	types.KindSay:         true,
	types.KindChop:        true,
	types.KindClimb:       true,
	types.KindBreak:       true,
	types.KindUnlock:      true,
	types.KindVanquish:    true,
	types.KindScore:       true,
	types.KindRespond:     true,
}

// validate checks the compiled defs for referential integrity and
// consistency. Content errors surface at load time, not mid-game.
func validate(defs *state.Defs) error {
	ve := &ValidationError{}

	validateGame(defs, ve)
	validateRooms(defs, ve)
	validateObjects(defs, ve)
	validateActions(defs, ve)
	validateHazards(defs, ve)

	for _, w := range ve.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

func validateGame(defs *state.Defs, ve *ValidationError) {
	game := defs.Game

	if game.Title == "" {
		ve.Errors = append(ve.Errors, "Game.title is required")
	}
	if !roomInRange(defs, game.Start) {
		ve.Errors = append(ve.Errors, fmt.Sprintf("start room %d outside the grid", game.Start))
	}
	if game.LightFuel <= 0 {
		ve.Errors = append(ve.Errors, "Game.light_fuel must be positive")
	}
	if game.FlickerAt <= 0 || game.FlickerAt >= game.LightFuel {
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"Game.flicker_at %d must fall between 0 and light_fuel %d", game.FlickerAt, game.LightFuel))
	}
	if game.TreasurePoints <= 0 {
		ve.Errors = append(ve.Errors, "Game.treasure_points must be positive")
	}
	if game.ListWrap <= 0 {
		ve.Warnings = append(ve.Warnings, "Game.list_wrap not set; listings will not wrap")
	}

	for _, g := range []struct {
		key   string
		grant types.ExitGrant
	}{
		{"barrier", game.Barrier},
		{"door_slam", game.DoorSlam},
		{"end_exit", game.EndExit},
	} {
		// The zero value means the feature is unset.
		if g.grant == (types.ExitGrant{}) {
			continue
		}
		if !roomInRange(defs, g.grant.Room) {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"Game.%s room %d outside the grid", g.key, g.grant.Room))
			continue
		}
		if !grantOnGrid(defs, g.grant) {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"Game.%s: %s exit off the grid", g.key, g.grant.Dir))
		}
	}

	if game.MagicWord == "" {
		ve.Warnings = append(ve.Warnings, "Game.magic_word not set; the say action has no effect")
	} else if len(game.TeleportRooms) == 0 {
		ve.Errors = append(ve.Errors, "Game.teleport_rooms must not be empty when magic_word is set")
	}
	for _, id := range game.TeleportRooms {
		if !roomInRange(defs, id) {
			ve.Errors = append(ve.Errors, fmt.Sprintf("teleport room %d outside the grid", id))
		}
	}
}

func validateRooms(defs *state.Defs, ve *ValidationError) {
	gw := defs.Game.GridWidth
	placed := map[int]int{}

	for _, room := range defs.Rooms {
		// Exits never point off the grid edge.
		row, col := room.ID/gw, room.ID%gw
		if room.Exits[types.North] && row == 0 {
			ve.Errors = append(ve.Errors, fmt.Sprintf("room %d: north exit off the grid", room.ID))
		}
		if room.Exits[types.South] && row == gw-1 {
			ve.Errors = append(ve.Errors, fmt.Sprintf("room %d: south exit off the grid", room.ID))
		}
		if room.Exits[types.West] && col == 0 {
			ve.Errors = append(ve.Errors, fmt.Sprintf("room %d: west exit off the grid", room.ID))
		}
		if room.Exits[types.East] && col == gw-1 {
			ve.Errors = append(ve.Errors, fmt.Sprintf("room %d: east exit off the grid", room.ID))
		}

		if len(room.Items) > types.RoomSlots {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"room %d: %d items exceed the %d slots", room.ID, len(room.Items), types.RoomSlots))
		}
		for _, id := range room.Items {
			if defs.Object(id) == nil {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"room %d: item %d not in the object catalog", room.ID, id))
				continue
			}
			if prev, ok := placed[id]; ok {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"object %d placed in both room %d and room %d", id, prev, room.ID))
			}
			placed[id] = room.ID
		}
	}
}

func validateObjects(defs *state.Defs, ve *ValidationError) {
	names := map[string]int{}
	treasures := 0

	for _, obj := range defs.Objects {
		if obj.Name == "" {
			ve.Errors = append(ve.Errors, fmt.Sprintf("object %d: name is required", obj.ID))
		} else if prev, ok := names[obj.Name]; ok {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"objects %d and %d share the name %q", prev, obj.ID, obj.Name))
		} else {
			names[obj.Name] = obj.ID
		}

		if obj.Treasure {
			treasures++
		}

		if obj.Reveals != 0 {
			target := defs.Object(obj.Reveals)
			if target == nil {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"object %d reveals undefined object %d", obj.ID, obj.Reveals))
			} else if !target.Hidden {
				ve.Warnings = append(ve.Warnings, fmt.Sprintf(
					"object %d reveals object %d, which is not hidden", obj.ID, obj.Reveals))
			}
		}
	}

	if treasures == 0 {
		ve.Warnings = append(ve.Warnings, "no treasure objects defined; the end state triggers immediately")
	}
}

func validateActions(defs *state.Defs, ve *ValidationError) {
	verbs := map[string]int{}

	for _, act := range defs.Actions {
		if act.Verb == "" {
			ve.Errors = append(ve.Errors, fmt.Sprintf("action %d: verb is required", act.ID))
		} else if prev, ok := verbs[act.Verb]; ok {
			// Two actions may share a verb only when linked as an
			// alternate pair; resolution picks the first, the alternate
			// redirect reaches the second.
			if !alternateLinked(defs, prev, act.ID) {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"actions %d and %d share the verb %q without an alternate link", prev, act.ID, act.Verb))
			}
		} else {
			verbs[act.Verb] = act.ID
		}

		if !validKinds[act.Kind] {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"action %d (%s): unknown kind %q", act.ID, act.Verb, act.Kind))
		}

		if act.Object > 0 && defs.Object(act.Object) == nil {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"action %d (%s): object %d not in the catalog", act.ID, act.Verb, act.Object))
		}

		if act.Reveal != 0 && defs.Object(act.Reveal) == nil {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"action %d (%s): reveals undefined object %d", act.ID, act.Verb, act.Reveal))
		}

		if len(act.Requires) > 3 {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"action %d (%s): at most 3 required objects, got %d", act.ID, act.Verb, len(act.Requires)))
		}
		for _, req := range act.Requires {
			if defs.Object(req) == nil {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"action %d (%s): required object %d not in the catalog", act.ID, act.Verb, req))
			}
		}

		if act.Room != types.AnyRoom && !roomInRange(defs, act.Room) {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"action %d (%s): room %d outside the grid", act.ID, act.Verb, act.Room))
		}

		if act.Grant != nil {
			if !roomInRange(defs, act.Grant.Room) {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"action %d (%s): grant room %d outside the grid", act.ID, act.Verb, act.Grant.Room))
			} else if !grantOnGrid(defs, *act.Grant) {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"action %d (%s): granted %s exit off the grid", act.ID, act.Verb, act.Grant.Dir))
			}
		}
		if (act.Kind == types.KindBreak || act.Kind == types.KindUnlock) && act.Grant == nil {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"action %d (%s): kind %q needs a grant", act.ID, act.Verb, act.Kind))
		}

		if act.Alternate != nil {
			if defs.Action(act.Alternate.ActionID) == nil {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"action %d (%s): alternate action %d not in the catalog", act.ID, act.Verb, act.Alternate.ActionID))
			}
			if defs.Object(act.Alternate.Object) == nil {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"action %d (%s): alternate object %d not in the catalog", act.ID, act.Verb, act.Alternate.Object))
			}
		}
	}
}

func validateHazards(defs *state.Defs, ve *ValidationError) {
	for _, h := range defs.Hazards {
		if h.Object == 0 && h.Carried == 0 {
			ve.Errors = append(ve.Errors, fmt.Sprintf("hazard %q: needs an object or carried trigger", h.ID))
		}
		if h.Object != 0 && defs.Object(h.Object) == nil {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"hazard %q: object %d not in the catalog", h.ID, h.Object))
		}
		if h.Carried != 0 {
			if defs.Object(h.Carried) == nil {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"hazard %q: carried object %d not in the catalog", h.ID, h.Carried))
			}
			if len(h.Rooms) == 0 {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"hazard %q: a carried trigger needs rooms", h.ID))
			}
		}
		for _, id := range h.Rooms {
			if !roomInRange(defs, id) {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"hazard %q: room %d outside the grid", h.ID, id))
			}
		}
		if len(h.Escape) == 0 {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf(
				"hazard %q: no escape actions; the player cannot get out", h.ID))
		}
		for _, id := range h.Escape {
			if defs.Action(id) == nil {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"hazard %q: escape action %d not in the catalog", h.ID, id))
			}
		}
		if h.Text == "" {
			ve.Errors = append(ve.Errors, fmt.Sprintf("hazard %q: text is required", h.ID))
		}
	}
}

func alternateLinked(defs *state.Defs, a, b int) bool {
	if act := defs.Action(a); act != nil && act.Alternate != nil && act.Alternate.ActionID == b {
		return true
	}
	if act := defs.Action(b); act != nil && act.Alternate != nil && act.Alternate.ActionID == a {
		return true
	}
	return false
}

func roomInRange(defs *state.Defs, id int) bool {
	return id >= 0 && id < len(defs.Rooms)
}

// grantOnGrid reports whether a granted exit leads to a room on the grid.
// Opening an exit across the border would send applyMove out of the room
// array.
func grantOnGrid(defs *state.Defs, g types.ExitGrant) bool {
	gw := defs.Game.GridWidth
	row, col := g.Room/gw, g.Room%gw
	switch g.Dir {
	case types.North:
		return row > 0
	case types.South:
		return row < gw-1
	case types.West:
		return col > 0
	case types.East:
		return col < gw-1
	}
	return false
}

// Package hazard implements the override layer: while a hazard is active
// in the player's room, only its escape actions execute; everything else
// is suppressed for the turn with the hazard narrative.
package hazard

import (
	"github.com/merrow/hauntcore/engine/state"
	"github.com/merrow/hauntcore/types"
)

// Active returns the first hazard triggered by the current room, or nil.
// Hazards are checked in catalog order, once per turn.
func Active(defs *state.Defs, s *types.State) *types.Hazard {
	for i := range defs.Hazards {
		h := &defs.Hazards[i]
		if triggered(h, s) {
			return h
		}
	}
	return nil
}

// Allows reports whether the action is on the hazard's escape whitelist.
func Allows(h *types.Hazard, actionID int) bool {
	for _, id := range h.Escape {
		if id == actionID {
			return true
		}
	}
	return false
}

func triggered(h *types.Hazard, s *types.State) bool {
	if h.Object != 0 && state.RoomHasObject(s, s.Location, h.Object) {
		return true
	}
	if h.Carried != 0 && state.HasItem(s, h.Carried) {
		for _, room := range h.Rooms {
			if room == s.Location {
				return true
			}
		}
	}
	return false
}

// Package state manages the mutable session state layered over the
// immutable catalog: room exits and contents, object visibility,
// inventory, and the light-fuel counter.
package state

import "github.com/merrow/hauntcore/types"

// Defs holds the immutable game catalog produced by the loader.
type Defs struct {
	Game    types.GameDef
	Rooms   []types.Room   // indexed by room id
	Objects []types.Object // indexed by id-1 (catalog ids are 1-based)
	Actions []types.Action // catalog order; index == action id
	Hazards []types.Hazard
}

// Object returns the catalog record for a 1-based object id, or nil.
func (d *Defs) Object(id int) *types.Object {
	if id < 1 || id > len(d.Objects) {
		return nil
	}
	return &d.Objects[id-1]
}

// Action returns the catalog record for an action id, or nil.
func (d *Defs) Action(id int) *types.Action {
	if id < 0 || id >= len(d.Actions) {
		return nil
	}
	return &d.Actions[id]
}

// NewState creates a fresh session from the catalog: pristine room
// exits/contents, pristine object visibility, the player at the gate with
// empty hands and a full candle. Replay discards the old state and calls
// this again; there is no partial reset.
func NewState(defs *Defs) *types.State {
	s := &types.State{
		Location:  defs.Game.Start,
		Inventory: []int{},
		LightFuel: defs.Game.LightFuel,
		Flags:     map[string]bool{},
		Rooms:     make([]types.RoomState, len(defs.Rooms)),
		Hidden:    make([]bool, len(defs.Objects)),
	}
	for i, room := range defs.Rooms {
		rs := types.RoomState{Exits: room.Exits}
		rs.Items = append([]int{}, room.Items...)
		s.Rooms[i] = rs
	}
	for i, obj := range defs.Objects {
		s.Hidden[i] = obj.Hidden
	}
	return s
}

// HasItem reports whether the player carries the given object.
func HasItem(s *types.State, objectID int) bool {
	for _, id := range s.Inventory {
		if id == objectID {
			return true
		}
	}
	return false
}

// IsHidden reports the current visibility of an object.
func IsHidden(s *types.State, objectID int) bool {
	if objectID < 1 || objectID > len(s.Hidden) {
		return false
	}
	return s.Hidden[objectID-1]
}

// Reveal makes a hidden object visible. Reveals are one-way; nothing in
// the game re-hides an object.
func Reveal(s *types.State, objectID int) {
	if objectID >= 1 && objectID <= len(s.Hidden) {
		s.Hidden[objectID-1] = false
	}
}

// RoomHasObject reports whether the object is in the given room's slots.
func RoomHasObject(s *types.State, roomID, objectID int) bool {
	for _, id := range s.Rooms[roomID].Items {
		if id == objectID {
			return true
		}
	}
	return false
}

// RemoveFromRoom takes the object out of the room's slot list.
// Returns false if it wasn't there.
func RemoveFromRoom(s *types.State, roomID, objectID int) bool {
	items := s.Rooms[roomID].Items
	for i, id := range items {
		if id == objectID {
			s.Rooms[roomID].Items = append(items[:i], items[i+1:]...)
			return true
		}
	}
	return false
}

// AddToRoom places the object into the room's first free slot.
// Returns false if all slots are occupied.
func AddToRoom(s *types.State, roomID, objectID int) bool {
	if len(s.Rooms[roomID].Items) >= types.RoomSlots {
		return false
	}
	s.Rooms[roomID].Items = append(s.Rooms[roomID].Items, objectID)
	return true
}

// AddToInventory appends the object and bumps the carried count.
func AddToInventory(s *types.State, objectID int) {
	s.Inventory = append(s.Inventory, objectID)
	s.Carried++
}

// RemoveFromInventory drops the object, shifting later entries left.
// Returns false if it wasn't carried.
func RemoveFromInventory(s *types.State, objectID int) bool {
	for i, id := range s.Inventory {
		if id == objectID {
			s.Inventory = append(s.Inventory[:i], s.Inventory[i+1:]...)
			s.Carried--
			return true
		}
	}
	return false
}

// Present reports whether the object is available to the player: visible
// and either in the current room or carried.
func Present(s *types.State, objectID int) bool {
	if IsHidden(s, objectID) {
		return false
	}
	return RoomHasObject(s, s.Location, objectID) || HasItem(s, objectID)
}

// OpenExits lists the directions with an open exit from the given room.
func OpenExits(s *types.State, roomID int) []types.Direction {
	var dirs []types.Direction
	for d := types.North; d <= types.West; d++ {
		if s.Rooms[roomID].Exits[d] {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// VisibleItems returns the names of the unhidden objects in a room, in
// slot order. Used by the presentation layer for the ITEMS line.
func VisibleItems(s *types.State, defs *Defs, roomID int) []string {
	var names []string
	for _, id := range s.Rooms[roomID].Items {
		if IsHidden(s, id) {
			continue
		}
		if obj := defs.Object(id); obj != nil {
			names = append(names, obj.Name)
		}
	}
	return names
}

// AllTreasuresCarried reports whether every treasure-flagged object is in
// the player's inventory.
func AllTreasuresCarried(s *types.State, defs *Defs) bool {
	for _, obj := range defs.Objects {
		if obj.Treasure && !HasItem(s, obj.ID) {
			return false
		}
	}
	return true
}

// Score recomputes the score from the current inventory: treasures are
// worth the treasure value, everything else the lesser one. The score is
// never accumulated incrementally.
func Score(s *types.State, defs *Defs) int {
	score := 0
	for _, id := range s.Inventory {
		obj := defs.Object(id)
		if obj == nil {
			continue
		}
		if obj.Treasure {
			score += defs.Game.TreasurePoints
		} else {
			score += defs.Game.OtherPoints
		}
	}
	return score
}

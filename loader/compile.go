// Package loader loads Lua game content into Go structs at startup.
// The Lua VM is discarded after loading — zero Lua at runtime.
package loader

import (
	"fmt"
	"sort"

	"github.com/merrow/hauntcore/engine/state"
	"github.com/merrow/hauntcore/types"
	lua "github.com/yuin/gopher-lua"
)

// rawRoom holds a room table before compilation.
type rawRoom struct {
	id    int
	table *lua.LTable
}

// rawObject holds an object table before compilation.
type rawObject struct {
	id    int
	table *lua.LTable
}

// rawAction holds an action table before compilation.
type rawAction struct {
	id    int
	table *lua.LTable
}

// rawHazard holds a hazard table before compilation.
type rawHazard struct {
	id    string
	table *lua.LTable
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	v := tbl.RawGetString(key)
	if s, ok := v.(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getBool returns a bool field from a Lua table, or the default if missing.
func getBool(tbl *lua.LTable, key string, def bool) bool {
	v := tbl.RawGetString(key)
	if b, ok := v.(lua.LBool); ok {
		return bool(b)
	}
	return def
}

// getInt returns an int field from a Lua table, or the default if missing.
func getInt(tbl *lua.LTable, key string, def int) int {
	v := tbl.RawGetString(key)
	if n, ok := v.(lua.LNumber); ok {
		return int(n)
	}
	return def
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	v := tbl.RawGetString(key)
	if t, ok := v.(*lua.LTable); ok {
		return t
	}
	return nil
}

// getIntList returns an integer array field, or nil if missing.
func getIntList(tbl *lua.LTable, key string) []int {
	t := getTable(tbl, key)
	if t == nil {
		return nil
	}
	var out []int
	t.ForEach(func(k, v lua.LValue) {
		if _, ok := k.(lua.LNumber); !ok {
			return
		}
		if n, ok := v.(lua.LNumber); ok {
			out = append(out, int(n))
		}
	})
	return out
}

// getGrant compiles a { room = N, dir = "..." } field, or nil if missing.
func getGrant(tbl *lua.LTable, key string) (*types.ExitGrant, error) {
	t := getTable(tbl, key)
	if t == nil {
		return nil, nil
	}
	dir, ok := types.ParseDirection(getString(t, "dir"))
	if !ok {
		return nil, fmt.Errorf("%s: bad direction %q", key, getString(t, "dir"))
	}
	return &types.ExitGrant{Room: getInt(t, "room", -1), Dir: dir}, nil
}

// compile converts all collected Lua data into a Defs struct.
func compile(coll *collector) (*state.Defs, error) {
	defs := &state.Defs{}

	if coll.game == nil {
		return nil, fmt.Errorf("no Game{} definition found")
	}
	game, err := compileGame(coll.game)
	if err != nil {
		return nil, err
	}
	defs.Game = game

	rooms, err := compileRooms(coll.rooms, game.GridWidth)
	if err != nil {
		return nil, err
	}
	defs.Rooms = rooms

	objects, err := compileObjects(coll.objects)
	if err != nil {
		return nil, err
	}
	defs.Objects = objects

	actions, err := compileActions(coll.actions)
	if err != nil {
		return nil, err
	}
	defs.Actions = actions

	for _, raw := range coll.hazards {
		defs.Hazards = append(defs.Hazards, compileHazard(raw))
	}

	return defs, nil
}

func compileGame(tbl *lua.LTable) (types.GameDef, error) {
	game := types.GameDef{
		Title:  getString(tbl, "title"),
		Author: getString(tbl, "author"),
		Intro:  getString(tbl, "intro"),

		Start:     getInt(tbl, "start", -1),
		GridWidth: getInt(tbl, "grid_width", 0),

		MagicWord:     getString(tbl, "magic_word"),
		BarrierText:   getString(tbl, "barrier_text"),
		MagicText:     getString(tbl, "magic_text"),
		TeleportRooms: getIntList(tbl, "teleport_rooms"),
		TeleportText:  getString(tbl, "teleport_text"),

		DoorSlamText: getString(tbl, "door_slam_text"),

		EndText:      getString(tbl, "end_text"),
		ReminderText: getString(tbl, "reminder_text"),
		WinText:      getString(tbl, "win_text"),

		LightFuel:      getInt(tbl, "light_fuel", 0),
		FlickerAt:      getInt(tbl, "flicker_at", 0),
		TreasurePoints: getInt(tbl, "treasure_points", 0),
		OtherPoints:    getInt(tbl, "other_points", 0),
		ListWrap:       getInt(tbl, "list_wrap", 0),
	}

	for _, g := range []struct {
		key string
		dst *types.ExitGrant
	}{
		{"barrier", &game.Barrier},
		{"door_slam", &game.DoorSlam},
		{"end_exit", &game.EndExit},
	} {
		grant, err := getGrant(tbl, g.key)
		if err != nil {
			return game, fmt.Errorf("game %w", err)
		}
		if grant != nil {
			*g.dst = *grant
		}
	}

	return game, nil
}

func compileRooms(raws []rawRoom, gridWidth int) ([]types.Room, error) {
	if gridWidth <= 0 {
		return nil, fmt.Errorf("game grid_width must be positive")
	}
	rooms := make([]types.Room, gridWidth*gridWidth)
	seen := make([]bool, len(rooms))

	for _, raw := range raws {
		if raw.id < 0 || raw.id >= len(rooms) {
			return nil, fmt.Errorf("room %d outside the %dx%d grid", raw.id, gridWidth, gridWidth)
		}
		if seen[raw.id] {
			return nil, fmt.Errorf("duplicate room %d", raw.id)
		}
		seen[raw.id] = true

		room := types.Room{
			ID:    raw.id,
			Name:  getString(raw.table, "name"),
			Items: getIntList(raw.table, "items"),
			Dark:  getBool(raw.table, "dark", false),
		}
		if exits := getTable(raw.table, "exits"); exits != nil {
			var badExit error
			exits.ForEach(func(_, v lua.LValue) {
				name, ok := v.(lua.LString)
				if !ok {
					return
				}
				dir, ok := types.ParseDirection(string(name))
				if !ok {
					badExit = fmt.Errorf("room %d: bad exit direction %q", raw.id, string(name))
					return
				}
				room.Exits[dir] = true
			})
			if badExit != nil {
				return nil, badExit
			}
		}
		rooms[raw.id] = room
	}

	for id, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("room %d missing from the grid", id)
		}
	}
	return rooms, nil
}

func compileObjects(raws []rawObject) ([]types.Object, error) {
	sort.Slice(raws, func(i, j int) bool { return raws[i].id < raws[j].id })

	objects := make([]types.Object, 0, len(raws))
	for i, raw := range raws {
		if raw.id != i+1 {
			return nil, fmt.Errorf("object ids must run 1..%d without gaps, got %d", len(raws), raw.id)
		}
		objects = append(objects, types.Object{
			ID:          raw.id,
			Name:        getString(raw.table, "name"),
			Description: getString(raw.table, "description"),
			Collectible: getBool(raw.table, "collectible", false),
			Hidden:      getBool(raw.table, "hidden", false),
			Treasure:    getBool(raw.table, "treasure", false),
			Reveals:     getInt(raw.table, "reveals", 0),
			RevealText:  getString(raw.table, "reveal_text"),
		})
	}
	return objects, nil
}

func compileActions(raws []rawAction) ([]types.Action, error) {
	sort.Slice(raws, func(i, j int) bool { return raws[i].id < raws[j].id })

	actions := make([]types.Action, 0, len(raws))
	for i, raw := range raws {
		if raw.id != i {
			return nil, fmt.Errorf("action ids must run 0..%d without gaps, got %d", len(raws)-1, raw.id)
		}
		act, err := compileAction(raw)
		if err != nil {
			return nil, err
		}
		actions = append(actions, act)
	}
	return actions, nil
}

func compileAction(raw rawAction) (types.Action, error) {
	tbl := raw.table
	act := types.Action{
		ID:       raw.id,
		Verb:     getString(tbl, "verb"),
		Object:   getInt(tbl, "object", types.NoObject),
		Requires: getIntList(tbl, "requires"),
		Room:     getInt(tbl, "room", types.AnyRoom),
		Response: getString(tbl, "response"),

		Kind:        types.ActionKind(getString(tbl, "kind")),
		Reveal:      getInt(tbl, "reveal", 0),
		RevealText:  getString(tbl, "reveal_text"),
		AlreadyText: getString(tbl, "already_text"),
		DownText:    getString(tbl, "down_text"),
	}

	if act.Kind == types.KindMove {
		dir, ok := types.ParseDirection(getString(tbl, "dir"))
		if !ok {
			return act, fmt.Errorf("action %d (%s): bad direction %q", raw.id, act.Verb, getString(tbl, "dir"))
		}
		act.Dir = dir
	}

	grant, err := getGrant(tbl, "grant")
	if err != nil {
		return act, fmt.Errorf("action %d (%s): %w", raw.id, act.Verb, err)
	}
	act.Grant = grant

	if alt := getTable(tbl, "alternate"); alt != nil {
		act.Alternate = &types.Alternate{
			ActionID: getInt(alt, "action", -1),
			Object:   getInt(alt, "object", 0),
		}
	}

	return act, nil
}

func compileHazard(raw rawHazard) types.Hazard {
	return types.Hazard{
		ID:      raw.id,
		Object:  getInt(raw.table, "object", 0),
		Carried: getInt(raw.table, "carried", 0),
		Rooms:   getIntList(raw.table, "rooms"),
		Escape:  getIntList(raw.table, "escape"),
		Text:    getString(raw.table, "text"),
	}
}

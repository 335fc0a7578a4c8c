package loader

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/merrow/hauntcore/types"
)

// registerAPI registers all Lua constructors and constants as globals.
func registerAPI(L *lua.LState, coll *collector) {
	// Any — object wildcard for actions that accept any target.
	L.SetGlobal("Any", lua.LNumber(types.AnyObject))

	// Game { title = "...", ... }
	L.SetGlobal("Game", L.NewFunction(func(L *lua.LState) int {
		tbl := L.CheckTable(1)
		coll.game = tbl
		return 0
	}))

	// Room (id) { ... } — curried: Room(id) returns a function that takes a table.
	L.SetGlobal("Room", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckInt(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.rooms = append(coll.rooms, rawRoom{id: id, table: tbl})
			return 0
		}))
		return 1
	}))

	// Object (id) { ... } — curried. Object ids are 1-based.
	L.SetGlobal("Object", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckInt(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.objects = append(coll.objects, rawObject{id: id, table: tbl})
			return 0
		}))
		return 1
	}))

	// Action (id) { ... } — curried. Action ids double as catalog order.
	L.SetGlobal("Action", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckInt(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.actions = append(coll.actions, rawAction{id: id, table: tbl})
			return 0
		}))
		return 1
	}))

	// Hazard "id" { ... } — curried.
	L.SetGlobal("Hazard", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.hazards = append(coll.hazards, rawHazard{id: id, table: tbl})
			return 0
		}))
		return 1
	}))
}

package effects

import (
	"strings"
	"testing"

	"github.com/merrow/hauntcore/engine/state"
	"github.com/merrow/hauntcore/types"
)

// testDefs builds a 2x2 grid: the gate at 3, a dark vault at 1, a cellar
// at 2, and a cold chamber at 0 sealed behind a magic barrier.
func testDefs() *state.Defs {
	return &state.Defs{
		Game: types.GameDef{
			Title:     "Test House",
			Start:     3,
			GridWidth: 2,

			MagicWord:     "xyzzy",
			Barrier:       types.ExitGrant{Room: 0, Dir: types.East},
			BarrierText:   "A magical barrier stops you!",
			MagicText:     "** Magic Occurs! **",
			TeleportRooms: []int{3, 2},
			TeleportText:  "** Whoosh! **",

			DoorSlam:     types.ExitGrant{Room: 0, Dir: types.South},
			DoorSlamText: "The door slams shut behind you!",

			EndExit: types.ExitGrant{Room: 1, Dir: types.West},

			LightFuel:      12,
			FlickerAt:      10,
			TreasurePoints: 10,
			OtherPoints:    1,
			ListWrap:       3,
		},
		Rooms: []types.Room{
			{ID: 0, Name: "cold chamber", Exits: exits(types.South), Items: []int{5, 6, 8, 9}},
			{ID: 1, Name: "vault", Exits: exits(types.South), Items: []int{1}, Dark: true},
			{ID: 2, Name: "cellar", Exits: exits(types.North, types.East), Items: []int{2, 3, 4}},
			{ID: 3, Name: "iron gate", Exits: exits(types.North, types.West)},
		},
		Objects: []types.Object{
			{ID: 1, Name: "gem", Collectible: true, Treasure: true},
			{ID: 2, Name: "coin", Collectible: true, Treasure: true},
			{ID: 3, Name: "candle", Collectible: true},
			{ID: 4, Name: "matches", Collectible: true},
			{ID: 5, Name: "chest", Description: "A heavy iron-bound chest.", Reveals: 6, RevealText: "A key is revealed!"},
			{ID: 6, Name: "key", Collectible: true, Hidden: true},
			{ID: 7, Name: "wall", Description: "It sounds hollow."},
			{ID: 8, Name: "tree", Description: "A lightning-blasted tree."},
			{ID: 9, Name: "bats"},
		},
		Actions: []types.Action{
			{ID: 0, Verb: "help", Kind: types.KindShowActions},
			{ID: 1, Verb: "carrying", Kind: types.KindInventory},
			{ID: 2, Verb: "north", Kind: types.KindMove, Dir: types.North},
			{ID: 3, Verb: "east", Kind: types.KindMove, Dir: types.East},
			{ID: 4, Verb: "south", Kind: types.KindMove, Dir: types.South},
			{ID: 5, Verb: "west", Kind: types.KindMove, Dir: types.West},
			{ID: 6, Verb: "take", Object: types.AnyObject, Kind: types.KindTake},
			{ID: 7, Verb: "drop", Object: types.AnyObject, Kind: types.KindDrop},
			{ID: 8, Verb: "examine", Object: types.AnyObject, Kind: types.KindExamine},
			{
				ID: 9, Verb: "light", Object: 3, Requires: []int{3, 4}, Kind: types.KindLight,
				Response: "It casts a flickering light.", AlreadyText: "The candle is already lit.",
			},
			{ID: 10, Verb: "unlight", Kind: types.KindUnlight, Response: "You snuff out the candle."},
			{ID: 11, Verb: "say", Kind: types.KindSay, Response: "Okay, '%s'. Nothing happens."},
			{
				ID: 12, Verb: "break", Object: 7, Kind: types.KindBreak,
				Grant:    &types.ExitGrant{Room: 1, Dir: types.West},
				Response: "Crash! A hole opens!", AlreadyText: "The hole is big enough already.",
			},
			{
				ID: 13, Verb: "climb", Object: 8, Kind: types.KindClimb,
				Response: "You scramble up the tree.", DownText: "You climb back down.",
				AlreadyText: "You can't climb the splintered stump.",
			},
			{
				ID: 14, Verb: "chop", Object: 8, Kind: types.KindChop,
				Response: "The tree crashes down!", AlreadyText: "The tree is already down.",
			},
			{ID: 15, Verb: "spray", Object: 9, Kind: types.KindVanquish, Response: "Got them!"},
			{ID: 16, Verb: "score", Kind: types.KindScore},
		},
	}
}

func exits(dirs ...types.Direction) [4]bool {
	var e [4]bool
	for _, d := range dirs {
		e[d] = true
	}
	return e
}

// fixedRoller always returns the same draw.
type fixedRoller struct{ n int }

func (r fixedRoller) Intn(int) int { return r.n }

func apply(defs *state.Defs, s *types.State, actionID, objectID int, word string) []string {
	return Apply(defs, s, fixedRoller{}, actionID, objectID, word)
}

func outputContains(output []string, substr string) bool {
	for _, line := range output {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

func TestApply_ShowActionsWraps(t *testing.T) {
	defs := testDefs()
	s := state.NewState(defs)

	out := apply(defs, s, 0, 0, "")
	if out[0] != "You know the following words:" {
		t.Fatalf("header = %q", out[0])
	}
	if !strings.HasPrefix(out[1], "help, carrying, north,") {
		t.Errorf("first listing line = %q", out[1])
	}
	if len(out) < 4 {
		t.Errorf("listing should wrap every 3 entries, got %d lines", len(out))
	}
}

func TestApply_Inventory(t *testing.T) {
	defs := testDefs()
	s := state.NewState(defs)

	out := apply(defs, s, 1, 0, "")
	if !outputContains(out, "You are carrying nothing.") {
		t.Errorf("empty inventory output = %v", out)
	}

	state.AddToInventory(s, 3)
	state.AddToInventory(s, 4)
	out = apply(defs, s, 1, 0, "")
	if !outputContains(out, "candle, matches") {
		t.Errorf("inventory listing = %v", out)
	}
}

func TestApply_MoveAndRefusals(t *testing.T) {
	defs := testDefs()
	s := state.NewState(defs)

	out := apply(defs, s, 5, 0, "")
	if s.Location != 2 || !outputContains(out, "You move WEST") {
		t.Errorf("location = %d output = %v", s.Location, out)
	}

	// Back at the gate: east is the grid edge.
	s.Location = 3
	out = apply(defs, s, 3, 0, "")
	if s.Location != 3 || !outputContains(out, "You can't go that way!") {
		t.Errorf("location = %d output = %v", s.Location, out)
	}
}

func TestApply_MoveBarrierRefusal(t *testing.T) {
	defs := testDefs()
	s := state.NewState(defs)
	s.Location = 0

	out := apply(defs, s, 3, 0, "")
	if s.Location != 0 || !outputContains(out, "A magical barrier stops you!") {
		t.Errorf("location = %d output = %v", s.Location, out)
	}
}

func TestApply_MoveDarkNeedsLight(t *testing.T) {
	defs := testDefs()
	s := state.NewState(defs)

	out := apply(defs, s, 2, 0, "")
	if s.Location != 3 || !outputContains(out, "You need a light to go NORTH") {
		t.Errorf("location = %d output = %v", s.Location, out)
	}

	s.LightLit = true
	apply(defs, s, 2, 0, "")
	if s.Location != 1 {
		t.Errorf("lit move into the vault failed, location = %d", s.Location)
	}
}

func TestApply_MoveBurnsLight(t *testing.T) {
	defs := testDefs()
	s := state.NewState(defs)
	s.LightLit = true

	out := apply(defs, s, 5, 0, "")
	if s.LightFuel != 11 || outputContains(out, "flicker") {
		t.Errorf("fuel = %d output = %v", s.LightFuel, out)
	}

	// 11 -> 10 crosses the flicker threshold exactly once.
	out = apply(defs, s, 3, 0, "")
	if s.LightFuel != 10 || !outputContains(out, "Your light is beginning to flicker out...") {
		t.Errorf("fuel = %d output = %v", s.LightFuel, out)
	}

	s.LightFuel = 1
	out = apply(defs, s, 5, 0, "")
	if s.LightFuel != 0 || s.LightLit || !outputContains(out, "Your light went out!") {
		t.Errorf("fuel = %d lit = %v output = %v", s.LightFuel, s.LightLit, out)
	}

	// Unlit moves don't burn fuel.
	apply(defs, s, 3, 0, "")
	if s.LightFuel != 0 {
		t.Errorf("fuel burned while unlit: %d", s.LightFuel)
	}
}

func TestApply_DoorSlamOnFirstEntry(t *testing.T) {
	defs := testDefs()
	s := state.NewState(defs)
	s.Location = 2

	out := apply(defs, s, 2, 0, "")
	if s.Location != 0 || !outputContains(out, "The door slams shut behind you!") {
		t.Errorf("location = %d output = %v", s.Location, out)
	}
	if s.Rooms[0].Exits[types.South] {
		t.Error("the slam should close the way back")
	}
	if !s.Flags["door_slammed"] {
		t.Error("slam flag not set")
	}
}

func TestApply_TakeRules(t *testing.T) {
	defs := testDefs()
	s := state.NewState(defs)
	s.Location = 0

	out := apply(defs, s, 6, 5, "")
	if !outputContains(out, "You can't pick up the chest.") {
		t.Errorf("scenery take output = %v", out)
	}

	// Hidden objects can't be taken even from the right room.
	out = apply(defs, s, 6, 6, "")
	if !outputContains(out, "There is no key in this room.") {
		t.Errorf("hidden take output = %v", out)
	}

	state.Reveal(s, 6)
	out = apply(defs, s, 6, 6, "")
	if !state.HasItem(s, 6) || !outputContains(out, "You pick up the key.") {
		t.Errorf("revealed take output = %v", out)
	}

	// An object in another room.
	out = apply(defs, s, 6, 1, "")
	if !outputContains(out, "There is no gem in this room.") {
		t.Errorf("absent take output = %v", out)
	}
}

func TestApply_DropRules(t *testing.T) {
	defs := testDefs()
	s := state.NewState(defs)
	s.Location = 3

	out := apply(defs, s, 7, 1, "")
	if !outputContains(out, "You aren't carrying the gem.") {
		t.Errorf("drop not carried output = %v", out)
	}

	state.AddToInventory(s, 1)
	out = apply(defs, s, 7, 1, "")
	if state.HasItem(s, 1) || !state.RoomHasObject(s, 3, 1) {
		t.Errorf("drop failed: %v", out)
	}

	// A full room refuses the drop and keeps the object carried.
	state.AddToInventory(s, 2)
	s.Location = 0
	s.Rooms[0].Items = append(s.Rooms[0].Items, 99)
	out = apply(defs, s, 7, 2, "")
	if !state.HasItem(s, 2) || !outputContains(out, "There is no space") {
		t.Errorf("full-room drop output = %v", out)
	}
}

func TestApply_ExamineRevealsOnce(t *testing.T) {
	defs := testDefs()
	s := state.NewState(defs)
	s.Location = 0

	out := apply(defs, s, 8, 5, "")
	if !outputContains(out, "A heavy iron-bound chest.") || !outputContains(out, "A key is revealed!") {
		t.Errorf("first examine output = %v", out)
	}
	if state.IsHidden(s, 6) {
		t.Error("key should be revealed")
	}

	out = apply(defs, s, 8, 5, "")
	if outputContains(out, "A key is revealed!") {
		t.Errorf("second examine repeated the reveal: %v", out)
	}
}

func TestApply_ExamineAbsent(t *testing.T) {
	defs := testDefs()
	s := state.NewState(defs)

	out := apply(defs, s, 8, 1, "")
	if !outputContains(out, "You can't see any gem here.") {
		t.Errorf("examine absent output = %v", out)
	}
}

func TestApply_LightAndUnlight(t *testing.T) {
	defs := testDefs()
	s := state.NewState(defs)

	out := apply(defs, s, 9, 3, "")
	if !s.LightLit || !outputContains(out, "It casts a flickering light.") {
		t.Errorf("light output = %v", out)
	}

	out = apply(defs, s, 9, 3, "")
	if !outputContains(out, "The candle is already lit.") {
		t.Errorf("relight output = %v", out)
	}

	out = apply(defs, s, 10, 0, "")
	if s.LightLit || !outputContains(out, "You snuff out the candle.") {
		t.Errorf("unlight output = %v", out)
	}

	// Burnt out: the candle never lights again.
	s.LightFuel = 0
	out = apply(defs, s, 9, 3, "")
	if s.LightLit || !outputContains(out, "burnt out") {
		t.Errorf("burnt-out light output = %v", out)
	}
}

func TestApply_Say(t *testing.T) {
	defs := testDefs()
	s := state.NewState(defs)

	out := apply(defs, s, 11, 0, "")
	if !outputContains(out, "Say what?") {
		t.Errorf("empty say output = %v", out)
	}

	out = apply(defs, s, 11, 0, "hello")
	if !outputContains(out, "Okay, 'hello'. Nothing happens.") {
		t.Errorf("plain say output = %v", out)
	}
}

func TestApply_SayMagicAtBarrier(t *testing.T) {
	defs := testDefs()
	s := state.NewState(defs)
	s.Location = 0

	out := apply(defs, s, 11, 0, "xyzzy")
	if !s.Rooms[0].Exits[types.East] || !outputContains(out, "** Magic Occurs! **") {
		t.Errorf("barrier grant output = %v", out)
	}
	if s.Location != 0 {
		t.Errorf("the magic word at the barrier should not move the player, location = %d", s.Location)
	}
}

func TestApply_SayMagicTeleports(t *testing.T) {
	defs := testDefs()
	s := state.NewState(defs)
	s.Location = 3

	out := Apply(defs, s, fixedRoller{n: 1}, 11, 0, "xyzzy")
	if s.Location != 2 || !outputContains(out, "** Whoosh! **") {
		t.Errorf("teleport landed at %d, output = %v", s.Location, out)
	}
}

func TestApply_ClimbTogglesAndChopEnds(t *testing.T) {
	defs := testDefs()
	s := state.NewState(defs)
	s.Location = 0

	out := apply(defs, s, 13, 8, "")
	if !s.Flags["up_tree"] || !outputContains(out, "You scramble up the tree.") {
		t.Errorf("climb up output = %v", out)
	}

	out = apply(defs, s, 13, 8, "")
	if s.Flags["up_tree"] || !outputContains(out, "You climb back down.") {
		t.Errorf("climb down output = %v", out)
	}

	out = apply(defs, s, 14, 8, "")
	if !s.Flags["axed_tree"] || !outputContains(out, "The tree crashes down!") {
		t.Errorf("chop output = %v", out)
	}

	out = apply(defs, s, 14, 8, "")
	if !outputContains(out, "The tree is already down.") {
		t.Errorf("rechop output = %v", out)
	}

	out = apply(defs, s, 13, 8, "")
	if !outputContains(out, "You can't climb the splintered stump.") {
		t.Errorf("climb after chop output = %v", out)
	}
}

func TestApply_BreakGrantsExitOnce(t *testing.T) {
	defs := testDefs()
	s := state.NewState(defs)

	out := apply(defs, s, 12, 7, "")
	if !s.Rooms[1].Exits[types.West] || !outputContains(out, "Crash! A hole opens!") {
		t.Errorf("break output = %v", out)
	}

	out = apply(defs, s, 12, 7, "")
	if !outputContains(out, "The hole is big enough already.") {
		t.Errorf("rebreak output = %v", out)
	}
}

func TestApply_Vanquish(t *testing.T) {
	defs := testDefs()
	s := state.NewState(defs)
	s.Location = 0

	out := apply(defs, s, 15, 9, "")
	if state.RoomHasObject(s, 0, 9) || !outputContains(out, "Got them!") {
		t.Errorf("vanquish output = %v", out)
	}

	out = apply(defs, s, 15, 9, "")
	if !outputContains(out, "There are no bats in this room...") {
		t.Errorf("revanquish output = %v", out)
	}
}

func TestApply_Score(t *testing.T) {
	defs := testDefs()
	s := state.NewState(defs)
	state.AddToInventory(s, 1)
	state.AddToInventory(s, 3)

	out := apply(defs, s, 16, 0, "")
	if !outputContains(out, "Your score is 11.") {
		t.Errorf("score output = %v", out)
	}
}

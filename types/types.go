// Package types defines the shared data structures for the haunted-house
// engine. This package contains only type definitions and trivial
// accessors.
package types

// Direction indexes a room's four exit flags, in catalog order.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

var directionNames = [4]string{"north", "east", "south", "west"}

func (d Direction) String() string {
	if d < North || d > West {
		return "nowhere"
	}
	return directionNames[d]
}

// Offset returns the room-id delta for moving one cell in this direction
// on a grid of the given width.
func (d Direction) Offset(gridWidth int) int {
	switch d {
	case North:
		return -gridWidth
	case East:
		return 1
	case South:
		return gridWidth
	case West:
		return -1
	}
	return 0
}

// ParseDirection maps a lowercase direction name to a Direction.
func ParseDirection(s string) (Direction, bool) {
	for i, name := range directionNames {
		if name == s {
			return Direction(i), true
		}
	}
	return 0, false
}

// Sentinels for Action fields. Object ids are 1-based, so 0 is free to
// mean "no target needed". Room ids start at 0, so "any room" needs -1.
const (
	NoObject  = 0  // action takes no target object
	AnyObject = -1 // action needs a target but doesn't name one
	AnyRoom   = -1 // action works in any room
)

// RoomSlots is the fixed capacity of a room's item list.
const RoomSlots = 5

// Room is the immutable catalog record for one grid cell.
type Room struct {
	ID    int
	Name  string
	Exits [4]bool // indexed by Direction
	Items []int   // object ids initially present, at most RoomSlots
	Dark  bool    // needs a lit candle to enter
}

// Object is the immutable catalog record for a game object.
// IDs are 1-based in the catalog.
type Object struct {
	ID          int
	Name        string
	Description string
	Collectible bool
	Hidden      bool // initial visibility; the mutable copy lives in State
	Treasure    bool

	// Scripted one-time reveal: examining this object unhides another.
	Reveals    int    // object id, 0 = none
	RevealText string // appended to the response on first reveal
}

// ExitGrant describes a room exit opened (or closed) by a scripted effect.
type ExitGrant struct {
	Room int
	Dir  Direction
}

// Alternate redirects a verb to a sibling action when the player names the
// sibling's object ("open drawers" vs "open door"). Resolved once by the
// validator; there is no silent id arithmetic.
type Alternate struct {
	ActionID int
	Object   int
}

// ActionKind selects the dispatcher behavior for an action.
type ActionKind string

const (
	KindShowActions ActionKind = "show_actions"
	KindInventory   ActionKind = "inventory"
	KindMove        ActionKind = "move"
	KindTake        ActionKind = "take"
	KindDrop        ActionKind = "drop"
	KindExamine     ActionKind = "examine"
	KindOpen        ActionKind = "open"
	KindLight       ActionKind = "light"
	KindUnlight     ActionKind = "unlight"
	KindSay         ActionKind = "say"
	KindChop        ActionKind = "chop"
	KindClimb       ActionKind = "climb"
	KindBreak       ActionKind = "break"
	KindUnlock      ActionKind = "unlock"
	KindVanquish    ActionKind = "vanquish"
	KindScore       ActionKind = "score"
	KindRespond     ActionKind = "respond"
)

// Action is the immutable catalog record for a permitted command.
// ID doubles as menu order; the verb listing follows catalog order.
type Action struct {
	ID       int
	Verb     string
	Object   int   // required target: NoObject, AnyObject, or an object id
	Requires []int // inventory object ids needed (0 to 3 entries)
	Room     int   // required room id, or AnyRoom
	Response string

	Kind        ActionKind
	Dir         Direction  // KindMove
	Reveal      int        // KindOpen: object unhidden on first use
	RevealText  string     // appended on first reveal
	Grant       *ExitGrant // KindBreak, KindUnlock: exit opened once
	AlreadyText string     // one-shot guard response on repeat use
	DownText    string     // KindClimb: response when climbing back down
	Alternate   *Alternate
}

// Hazard is a uniform record for the override layer: while one is active,
// only its escape actions run; everything else is suppressed with the
// narrative text.
type Hazard struct {
	ID      string
	Object  int   // trigger: this object is in the current room (0 = unused)
	Carried int   // trigger: player carries this object... (0 = unused)
	Rooms   []int // ...while in one of these rooms
	Escape  []int // action ids that still execute normally
	Text    string
}

// GameDef holds game metadata and the content decisions the engine reads
// as data rather than constants.
type GameDef struct {
	Title  string
	Author string
	Intro  string

	Start     int // starting gate room
	GridWidth int

	MagicWord     string
	Barrier       ExitGrant // exit granted by the magic word
	BarrierText   string    // refusal when walking into the barrier
	MagicText     string    // spoken-word success narrative
	TeleportRooms []int     // allow-list for the random teleport
	TeleportText  string

	DoorSlam     ExitGrant // exit cleared on first entry to DoorSlam.Room
	DoorSlamText string

	EndExit      ExitGrant // exit granted when all treasures are carried
	EndText      string
	ReminderText string // urging the player back to the gate
	WinText      string

	LightFuel      int // starting fuel
	FlickerAt      int // fuel level that appends the flicker warning
	TreasurePoints int
	OtherPoints    int
	ListWrap       int // entries per line in verb/inventory listings
}

// RoomState is the mutable per-session copy of a room's exits and contents.
type RoomState struct {
	Exits [4]bool
	Items []int // object ids present, at most RoomSlots
}

// State is the complete mutable session state, rebuilt wholesale on replay.
type State struct {
	Location  int
	Inventory []int // carried object ids, in pickup order
	Carried   int   // running carried count

	LightFuel int
	LightLit  bool

	Flags map[string]bool // axed_tree, up_tree, door_slammed, one-shot grants

	EndState   bool // all treasures collected (one-way latch)
	GameOver   bool
	FinalScore int

	TurnCount int

	Rooms  []RoomState
	Hidden []bool // per object, indexed by id-1
}

// Result is the output of a single turn.
type Result struct {
	Output   []string
	GameOver bool
}

// RefusalKind classifies why a turn was refused. All refusals are
// narrative, never fatal.
type RefusalKind int

const (
	InvalidCommand RefusalKind = iota
	MissingObject
	WrongObject
	MissingPrerequisite
	WrongLocation
	AlreadyDone
	NothingHere
)

// Refusal is a validation or resolution failure for the current turn only.
type Refusal struct {
	Kind    RefusalKind
	Message string
}

func (r *Refusal) Error() string {
	return r.Message
}

// Package validate checks a resolved action's preconditions against the
// current session state. Validation is read-only: a refusal aborts the
// turn before anything mutates.
package validate

import (
	"fmt"

	"github.com/merrow/hauntcore/engine/state"
	"github.com/merrow/hauntcore/types"
)

// Check runs the four precondition checks in fixed order, short-circuiting
// on the first failure. It returns the effective action id or a Refusal.
// The id differs from the input when an alternate pair redirects the verb
// to its sibling ("open drawers" lands on the drawers action).
func Check(defs *state.Defs, s *types.State, actionID, objectID int) (int, *types.Refusal) {
	act := defs.Action(actionID)

	// 1. Target required but none given.
	if act.Object != types.NoObject && objectID == 0 {
		return 0, &types.Refusal{
			Kind:    types.MissingObject,
			Message: "You need two words for this action.",
		}
	}

	// 2. Alternate redirect, then target match.
	if act.Alternate != nil && objectID == act.Alternate.Object {
		actionID = act.Alternate.ActionID
		act = defs.Action(actionID)
	} else if act.Object > 0 && objectID != act.Object {
		name := "that"
		if obj := defs.Object(objectID); obj != nil {
			name = "the " + obj.Name
		}
		return 0, &types.Refusal{
			Kind:    types.WrongObject,
			Message: fmt.Sprintf("You can't %s %s.", act.Verb, name),
		}
	}

	// 3. Required carried objects.
	for _, req := range act.Requires {
		if !state.HasItem(s, req) {
			return 0, &types.Refusal{
				Kind:    types.MissingPrerequisite,
				Message: "You don't have the required objects\nto complete this action.",
			}
		}
	}

	// 4. Required room.
	if act.Room != types.AnyRoom && act.Room != s.Location {
		return 0, &types.Refusal{
			Kind:    types.WrongLocation,
			Message: "You can't do this here.",
		}
	}

	return actionID, nil
}

// Package resolve maps tokenized commands onto the action and object
// catalogs.
package resolve

import (
	"fmt"

	"github.com/merrow/hauntcore/engine/parser"
	"github.com/merrow/hauntcore/engine/state"
	"github.com/merrow/hauntcore/types"
)

// Result holds the resolved catalog references for one command.
type Result struct {
	ActionID int
	ObjectID int    // 1-based object id, 0 if no second word was given
	Word     string // verbatim spoken word for the say action
}

// UnknownVerbError indicates the verb matched no catalog action.
type UnknownVerbError struct {
	Verb string
}

func (e *UnknownVerbError) Error() string {
	return "This is not a valid command."
}

// UnknownObjectError indicates a second word was given but matched no
// catalog object. Nonsense nouns refuse the turn rather than degrading to
// a one-word command.
type UnknownObjectError struct {
	Name string
}

func (e *UnknownObjectError) Error() string {
	return fmt.Sprintf("You can't see any %s here.", e.Name)
}

// Resolve looks the verb up in catalog order (first match wins; the loader
// rejects duplicate verbs outside alternate pairs) and, unless the action
// is the say action, resolves the optional second word against object
// names by exact match.
func Resolve(defs *state.Defs, cmd parser.Command) (Result, error) {
	var res Result
	res.ActionID = -1

	for _, act := range defs.Actions {
		if act.Verb == cmd.Verb {
			res.ActionID = act.ID
			break
		}
	}
	if res.ActionID == -1 {
		return res, &UnknownVerbError{Verb: cmd.Verb}
	}

	// The say action captures the word verbatim; it is never an object.
	if defs.Actions[res.ActionID].Kind == types.KindSay {
		res.Word = cmd.Arg
		return res, nil
	}

	if cmd.Arg == "" {
		return res, nil
	}
	for _, obj := range defs.Objects {
		if obj.Name == cmd.Arg {
			res.ObjectID = obj.ID
			return res, nil
		}
	}
	return res, &UnknownObjectError{Name: cmd.Arg}
}

// Package engine provides the Step() orchestrator that wires together
// parsing, resolution, validation, the hazard filter, and effects into a
// single turn.
package engine

import (
	"fmt"
	"strings"

	"github.com/merrow/hauntcore/engine/effects"
	"github.com/merrow/hauntcore/engine/hazard"
	"github.com/merrow/hauntcore/engine/parser"
	"github.com/merrow/hauntcore/engine/resolve"
	"github.com/merrow/hauntcore/engine/state"
	"github.com/merrow/hauntcore/engine/validate"
	"github.com/merrow/hauntcore/types"
)

// Engine holds the game definitions and mutable state.
type Engine struct {
	Defs  *state.Defs
	State *types.State
	RNG   *RNG

	seed int64
}

// New creates a new engine from definitions. The seed drives the
// say-teleport draw; a fixed seed replays identically.
func New(defs *state.Defs, seed int64) *Engine {
	return &Engine{
		Defs:  defs,
		State: state.NewState(defs),
		RNG:   NewRNG(seed),
		seed:  seed,
	}
}

// Reset discards the session and rebuilds pristine state from the
// definitions, RNG included.
func (e *Engine) Reset() {
	e.State = state.NewState(e.Defs)
	e.RNG = NewRNG(e.seed)
}

// Step processes one player command and returns the result.
func (e *Engine) Step(input string) types.Result {
	var result types.Result

	// 0. Game over latch: the session accepts no further gameplay commands.
	if e.State.GameOver {
		result.Output = append(result.Output, "The game is over. Use /restart to play again.")
		result.GameOver = true
		return result
	}

	// 1. Parse input.
	cmd := parser.Parse(input)
	if cmd.Verb == "" {
		result.Output = append(result.Output, "What would you like to do?")
		return result
	}

	// 2. Resolve verb and object against the catalogs. Resolution errors
	// are narrative refusals, never fatal.
	res, err := resolve.Resolve(e.Defs, cmd)
	if err != nil {
		result.Output = append(result.Output, lines(err.Error())...)
		e.State.TurnCount++
		return result
	}

	// 3. Validate preconditions. A refusal aborts the turn with nothing
	// mutated.
	actionID, refusal := validate.Check(e.Defs, e.State, res.ActionID, res.ObjectID)
	if refusal != nil {
		result.Output = append(result.Output, lines(refusal.Message)...)
		e.State.TurnCount++
		return result
	}

	// 4. Hazard filter: an active hazard suppresses everything but its
	// escape actions. A suppressed turn still consumes the turn, but the
	// end-state evaluator does not run on it.
	if h := hazard.Active(e.Defs, e.State); h != nil && !hazard.Allows(h, actionID) {
		result.Output = append(result.Output, lines(h.Text)...)
		e.State.TurnCount++
		return result
	}

	// 5. Apply the effect.
	result.Output = append(result.Output, effects.Apply(e.Defs, e.State, e.RNG, actionID, res.ObjectID, res.Word)...)

	// 6. End-state evaluation.
	result.Output = append(result.Output, e.evaluateEndState()...)

	e.State.TurnCount++
	result.GameOver = e.State.GameOver
	return result
}

// evaluateEndState runs after every effective turn. Once all treasures are
// carried at once the end state latches on and stays on: the return exit
// opens and every later turn carries the reminder until the player reaches
// the gate.
func (e *Engine) evaluateEndState() []string {
	s := e.State
	game := e.Defs.Game

	if !s.EndState {
		if !state.AllTreasuresCarried(s, e.Defs) {
			return nil
		}
		s.EndState = true
		s.Rooms[game.EndExit.Room].Exits[game.EndExit.Dir] = true
		return lines(game.EndText)
	}

	if s.Location == game.Start {
		s.GameOver = true
		s.FinalScore = state.Score(s, e.Defs)
		out := lines(game.WinText)
		return append(out, fmt.Sprintf("Your final score is %d.", s.FinalScore))
	}

	return lines(game.ReminderText)
}

// lines splits content text on embedded newlines into output lines.
func lines(text string) []string {
	return strings.Split(text, "\n")
}

// Package cli provides terminal I/O, output formatting, and meta-command
// dispatch for the haunted-house engine.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/merrow/hauntcore/engine"
	"github.com/merrow/hauntcore/engine/state"
	"github.com/merrow/hauntcore/types"
)

// CLI handles terminal interaction with the player.
type CLI struct {
	Engine    *engine.Engine
	Defs      *state.Defs
	In        io.Reader
	Out       io.Writer
	EchoInput bool   // echo each input line after the prompt (for script playback)
	lastCmd   string // for "again"/"g" repeat
}

// New creates a CLI wired to the given engine.
func New(eng *engine.Engine, defs *state.Defs) *CLI {
	return &CLI{
		Engine: eng,
		Defs:   defs,
		In:     os.Stdin,
		Out:    os.Stdout,
	}
}

// Run starts the game loop. It shows the intro, then loops:
// location block → prompt → input → dispatch → output.
func (c *CLI) Run() {
	if c.Defs.Game.Intro != "" {
		c.printLine(c.Defs.Game.Intro)
		c.printLine("")
	}

	scanner := bufio.NewScanner(c.In)
	for {
		c.printLocation()
		c.print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		// Meta-commands start with '/'.
		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return // /quit
			}
			continue
		}

		// "again" / "g" repeats the last game command.
		lower := strings.ToLower(input)
		if lower == "again" || lower == "g" {
			if c.lastCmd == "" {
				c.printLine("Nothing to repeat.")
				continue
			}
			input = c.lastCmd
		} else {
			c.lastCmd = input
		}

		result := c.Engine.Step(input)
		c.printResult(result)
		c.printLine("")
	}
}

// printLocation shows the per-turn status block: where the player is, the
// open exits, and the visible items.
func (c *CLI) printLocation() {
	s := c.Engine.State
	room := c.Defs.Rooms[s.Location]

	c.printLine("Your location: " + room.Name)

	var dirs []string
	for _, d := range state.OpenExits(s, s.Location) {
		dirs = append(dirs, d.String())
	}
	if len(dirs) == 0 {
		c.printLine("Exits: none")
	} else {
		c.printLine("Exits: " + strings.Join(dirs, ", "))
	}

	if items := state.VisibleItems(s, c.Defs, s.Location); len(items) > 0 {
		c.printLine("You can see: " + strings.Join(items, ", "))
	}
}

// handleMeta dispatches meta-commands. Returns true if the game should exit.
func (c *CLI) handleMeta(input string) bool {
	parts := strings.Fields(input)
	cmd := parts[0]

	switch cmd {
	case "/quit", "/exit":
		c.printSystem("Goodbye.")
		return true

	case "/restart":
		c.Engine.Reset()
		c.lastCmd = ""
		c.printSystem("Game restarted.")

	case "/help":
		c.cmdHelp()

	case "/state":
		c.cmdState()

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd))
	}

	return false
}

func (c *CLI) cmdHelp() {
	help := []string{
		"System:",
		"  /restart      — Start over from the iron gate",
		"  /quit         — Exit game",
		"  /help         — Show this help",
		"  /state        — Debug: dump current state",
		"",
		"Game commands are two words at most: a verb, then a",
		"target ('take axe', 'open door', 'say something').",
		"Type 'help' in the game for the full verb list.",
		"  again (g)     — Repeat your last command",
	}
	for _, line := range help {
		c.printLine(line)
	}
}

func (c *CLI) cmdState() {
	s := c.Engine.State
	c.printSystem(fmt.Sprintf("Turn: %d", s.TurnCount))
	c.printSystem(fmt.Sprintf("Location: %d (%s)", s.Location, c.Defs.Rooms[s.Location].Name))
	c.printSystem(fmt.Sprintf("Inventory: %v", s.Inventory))
	c.printSystem(fmt.Sprintf("Light: lit=%v fuel=%d", s.LightLit, s.LightFuel))
	c.printSystem(fmt.Sprintf("Score: %d", state.Score(s, c.Defs)))
	if len(s.Flags) > 0 {
		c.printSystem(fmt.Sprintf("Flags: %v", s.Flags))
	}
	if s.EndState {
		c.printSystem("End state: reached")
	}
}

func (c *CLI) printResult(result types.Result) {
	for _, line := range result.Output {
		c.printLine(line)
	}
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}

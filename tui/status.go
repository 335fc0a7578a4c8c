package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/merrow/hauntcore/engine/state"
)

// renderStatusBar produces a full-width inverted status line showing the
// current room, open exits, the candle, score, and turn count.
func (m Model) renderStatusBar() string {
	s := m.engine.State

	room := m.defs.Rooms[s.Location]

	var dirs []string
	for _, d := range state.OpenExits(s, s.Location) {
		dirs = append(dirs, d.String()[:1])
	}
	exitStr := strings.Join(dirs, ",")
	if exitStr == "" {
		exitStr = "-"
	}

	left := fmt.Sprintf(" %s | Exits: %s", room.Name, exitStr)

	candle := "unlit"
	if s.LightLit {
		candle = fmt.Sprintf("lit (%d)", s.LightFuel)
	}
	right := fmt.Sprintf("Candle: %s | Score: %d | T:%d ",
		candle, state.Score(s, m.defs), s.TurnCount)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}

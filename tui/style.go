package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleNarrative = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleLocation = lipgloss.NewStyle().
			Bold(true)

	styleExits = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleItems = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228"))

	styleMagic = lipgloss.NewStyle().
			Foreground(lipgloss.Color("213")).
			Bold(true)

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))
)

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindNarrative lineKind = iota
	kindLocation
	kindExits
	kindItems
	kindMagic
	kindSystem
	kindError
)

// classifyLine determines what kind of output line this is.
func classifyLine(line string) lineKind {
	switch {
	case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
		return kindSystem
	case strings.HasPrefix(line, "Your location:"):
		return kindLocation
	case strings.HasPrefix(line, "Exits:"):
		return kindExits
	case strings.HasPrefix(line, "You can see:"):
		return kindItems
	case strings.HasPrefix(line, "**"):
		return kindMagic
	case strings.HasPrefix(line, "You can't"),
		strings.HasPrefix(line, "You need"),
		strings.HasPrefix(line, "You don't"),
		strings.HasPrefix(line, "You aren't"),
		strings.HasPrefix(line, "There is no"),
		strings.HasPrefix(line, "There are no"),
		strings.HasPrefix(line, "This is not"):
		return kindError
	default:
		return kindNarrative
	}
}

// renderLineKind applies the style for a given lineKind.
func renderLineKind(line string, kind lineKind) string {
	switch kind {
	case kindLocation:
		return styledLocation(line)
	case kindExits:
		return styleExits.Render(line)
	case kindItems:
		return styleItems.Render(line)
	case kindMagic:
		return styleMagic.Render(line)
	case kindSystem:
		return styleSystem.Render(line)
	case kindError:
		return styleError.Render(line)
	default:
		return styleNarrative.Render(line)
	}
}

// styledLocation renders "Your location: name" with the room name bold.
func styledLocation(line string) string {
	const prefix = "Your location: "
	if !strings.HasPrefix(line, prefix) {
		return styleNarrative.Render(line)
	}
	return styleNarrative.Render(prefix) + styleLocation.Render(line[len(prefix):])
}

// styledSystemMsg renders a system message in gray with brackets.
func styledSystemMsg(text string) string {
	return styleSystem.Render("[" + text + "]")
}

// Package theme defines color themes for the cyros dashboard.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name          string
	Label         string
	Dark          bool
	Background    lipgloss.Color // Main app background
	Surface       lipgloss.Color // Card/panel backgrounds
	SurfaceHover  lipgloss.Color // Selected row, active tab
	SurfaceBright lipgloss.Color // Extra bright surface for emphasis
	Border        lipgloss.Color
	BorderAccent  lipgloss.Color // Focus states
	TextDim       lipgloss.Color // Hints, disabled
	TextMuted     lipgloss.Color // Labels, metadata
	TextPrimary   lipgloss.Color
	Accent        lipgloss.Color
	AccentBright  lipgloss.Color
	Green         lipgloss.Color
	Yellow        lipgloss.Color
	Orange        lipgloss.Color
	Red           lipgloss.Color
	Blue          lipgloss.Color
	Magenta       lipgloss.Color
	Cyan          lipgloss.Color
}

// Midnight is the default dark theme.
var Midnight = Theme{
	Name:          "midnight",
	Label:         "Midnight (dark)",
	Dark:          true,
	Background:    lipgloss.Color("#0F1117"),
	Surface:       lipgloss.Color("#171A23"),
	SurfaceHover:  lipgloss.Color("#222633"),
	SurfaceBright: lipgloss.Color("#2C3142"),
	Border:        lipgloss.Color("#333A4D"),
	BorderAccent:  lipgloss.Color("#5FB3B3"),
	TextDim:       lipgloss.Color("#4E566B"),
	TextMuted:     lipgloss.Color("#8A93A8"),
	TextPrimary:   lipgloss.Color("#E6E9EF"),
	Accent:        lipgloss.Color("#5FB3B3"),
	AccentBright:  lipgloss.Color("#86D1D1"),
	Green:         lipgloss.Color("#98C379"),
	Yellow:        lipgloss.Color("#E5C07B"),
	Orange:        lipgloss.Color("#D19A66"),
	Red:           lipgloss.Color("#E06C75"),
	Blue:          lipgloss.Color("#61AFEF"),
	Magenta:       lipgloss.Color("#C678DD"),
	Cyan:          lipgloss.Color("#56B6C2"),
}

// Paper is a light theme for bright terminals.
var Paper = Theme{
	Name:          "paper",
	Label:         "Paper (light)",
	Dark:          false,
	Background:    lipgloss.Color("#F7F5EF"),
	Surface:       lipgloss.Color("#FFFFFF"),
	SurfaceHover:  lipgloss.Color("#ECE9E0"),
	SurfaceBright: lipgloss.Color("#E0DCD0"),
	Border:        lipgloss.Color("#CFCABD"),
	BorderAccent:  lipgloss.Color("#1F7A7A"),
	TextDim:       lipgloss.Color("#A8A294"),
	TextMuted:     lipgloss.Color("#6B6658"),
	TextPrimary:   lipgloss.Color("#1F1D18"),
	Accent:        lipgloss.Color("#1F7A7A"),
	AccentBright:  lipgloss.Color("#155E5E"),
	Green:         lipgloss.Color("#4E7A27"),
	Yellow:        lipgloss.Color("#9A7400"),
	Orange:        lipgloss.Color("#B5581C"),
	Red:           lipgloss.Color("#B3261E"),
	Blue:          lipgloss.Color("#2A5FA8"),
	Magenta:       lipgloss.Color("#8E3FA0"),
	Cyan:          lipgloss.Color("#1D7F8C"),
}

// Terminal uses ANSI 16 colors only - maximum compatibility.
var Terminal = Theme{
	Name:          "terminal",
	Label:         "Terminal (ANSI 16)",
	Dark:          true,
	Background:    lipgloss.Color("0"),
	Surface:       lipgloss.Color("0"),
	SurfaceHover:  lipgloss.Color("8"),
	SurfaceBright: lipgloss.Color("8"),
	Border:        lipgloss.Color("8"),
	BorderAccent:  lipgloss.Color("6"),
	TextDim:       lipgloss.Color("8"),
	TextMuted:     lipgloss.Color("7"),
	TextPrimary:   lipgloss.Color("15"),
	Accent:        lipgloss.Color("6"),
	AccentBright:  lipgloss.Color("14"),
	Green:         lipgloss.Color("2"),
	Yellow:        lipgloss.Color("3"),
	Orange:        lipgloss.Color("3"),
	Red:           lipgloss.Color("1"),
	Blue:          lipgloss.Color("4"),
	Magenta:       lipgloss.Color("5"),
	Cyan:          lipgloss.Color("6"),
}

// All available themes.
var All = []Theme{Midnight, Paper, Terminal}

// Active is the currently selected theme.
var Active = Midnight

// ByName returns a theme by its name, defaulting to Midnight.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return Midnight
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}

// ToggleDark switches between the dark and light themes and returns the new active name.
func ToggleDark() string {
	if Active.Dark {
		Active = Paper
	} else {
		Active = Midnight
	}
	return Active.Name
}

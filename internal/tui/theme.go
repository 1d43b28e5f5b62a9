package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name        string
	Header      lipgloss.Style
	WeekLabel   lipgloss.Style
	DayName     lipgloss.Style
	DayNumber   lipgloss.Style
	Today       lipgloss.Style
	Weekend     lipgloss.Style
	Gutter      lipgloss.Style
	GutterHour  lipgloss.Style
	Cell        lipgloss.Style
	HourRule    lipgloss.Style
	Selection   lipgloss.Style
	EventText   lipgloss.Style
	EventDimmed lipgloss.Style
	Ghost       lipgloss.Style
	Footer      lipgloss.Style
	Status      lipgloss.Style

	// CategoryColors maps event categories to their block color.
	CategoryColors map[string]lipgloss.Color
	DefaultEvent   lipgloss.Color
}

var Themes = map[string]Theme{
	"default": {
		Name:        "Default",
		Header:      lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		WeekLabel:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		DayName:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Bold(true),
		DayNumber:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Today:       lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Weekend:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Gutter:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		GutterHour:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Cell:        lipgloss.NewStyle(),
		HourRule:    lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
		Selection:   lipgloss.NewStyle().Background(lipgloss.Color("24")),
		EventText:   lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Bold(true),
		EventDimmed: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Ghost:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Italic(true),
		Footer:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		CategoryColors: map[string]lipgloss.Color{
			"news":          lipgloss.Color("33"),
			"entertainment": lipgloss.Color("135"),
			"sports":        lipgloss.Color("35"),
			"documentary":   lipgloss.Color("178"),
			"film":          lipgloss.Color("160"),
		},
		DefaultEvent: lipgloss.Color("244"),
	},
	"dracula": {
		Name:        "Dracula",
		Header:      lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		WeekLabel:   lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		DayName:     lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Bold(true),
		DayNumber:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Today:       lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Weekend:     lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Gutter:      lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		GutterHour:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Cell:        lipgloss.NewStyle(),
		HourRule:    lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
		Selection:   lipgloss.NewStyle().Background(lipgloss.Color("62")),
		EventText:   lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Bold(true),
		EventDimmed: lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Ghost:       lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Italic(true),
		Footer:      lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
		CategoryColors: map[string]lipgloss.Color{
			"news":          lipgloss.Color("117"),
			"entertainment": lipgloss.Color("141"),
			"sports":        lipgloss.Color("120"),
			"documentary":   lipgloss.Color("228"),
			"film":          lipgloss.Color("203"),
		},
		DefaultEvent: lipgloss.Color("103"),
	},
}

// ThemeByName returns the named theme, falling back to default.
func ThemeByName(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["default"]
}

// eventColor resolves the block color for an event: an explicit color
// wins, then the category color, then the theme default.
func (t Theme) eventColor(category, override string) lipgloss.Color {
	if override != "" {
		return lipgloss.Color(override)
	}
	if c, ok := t.CategoryColors[category]; ok {
		return c
	}
	return t.DefaultEvent
}

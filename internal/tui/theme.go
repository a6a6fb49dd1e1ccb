package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name         string
	Base         lipgloss.Style
	Border       lipgloss.Color
	Header       lipgloss.Style
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Text         lipgloss.Style
	Dim          lipgloss.Style
	Accent       lipgloss.Style
	Positive     lipgloss.Style
	Warning      lipgloss.Style
	Danger       lipgloss.Style
	Badge        lipgloss.Style
	BadgeOutline lipgloss.Style
	Card         lipgloss.Style
	Selected     lipgloss.Style
	Completed    lipgloss.Style
	Input        lipgloss.Style
	Help         lipgloss.Style
}

var Themes = map[string]Theme{
	"light": {
		Name:         "Light",
		Base:         lipgloss.NewStyle().Margin(1, 2),
		Border:       lipgloss.Color("61"),
		Header:       lipgloss.NewStyle().Foreground(lipgloss.Color("55")).Bold(true),
		Title:        lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Bold(true),
		Subtitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		Text:         lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
		Dim:          lipgloss.NewStyle().Foreground(lipgloss.Color("247")),
		Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color("92")).Bold(true),
		Positive:     lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Bold(true),
		Warning:      lipgloss.NewStyle().Foreground(lipgloss.Color("166")).Bold(true),
		Danger:       lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true),
		Badge:        lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("92")).Padding(0, 1),
		BadgeOutline: lipgloss.NewStyle().Foreground(lipgloss.Color("92")).Border(lipgloss.NormalBorder()).Padding(0, 1),
		Card:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("61")).Padding(0, 1),
		Selected:     lipgloss.NewStyle().Foreground(lipgloss.Color("92")).Bold(true),
		Completed:    lipgloss.NewStyle().Foreground(lipgloss.Color("247")).Strikethrough(true),
		Input:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("92")).Padding(0, 1),
		Help:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	},
	"dark": {
		Name:         "Dark",
		Base:         lipgloss.NewStyle().Margin(1, 2),
		Border:       lipgloss.Color("99"),
		Header:       lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Bold(true),
		Title:        lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Subtitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
		Text:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Dim:          lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Bold(true),
		Positive:     lipgloss.NewStyle().Foreground(lipgloss.Color("84")).Bold(true),
		Warning:      lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true),
		Danger:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Badge:        lipgloss.NewStyle().Foreground(lipgloss.Color("232")).Background(lipgloss.Color("141")).Padding(0, 1),
		BadgeOutline: lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Border(lipgloss.NormalBorder()).Padding(0, 1),
		Card:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("99")).Padding(0, 1),
		Selected:     lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Completed:    lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Strikethrough(true),
		Input:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("141")).Padding(0, 1),
		Help:         lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	},
}

// CurrentTheme holds the currently active theme.
// We initialize it to light to avoid nil pointer dereferences.
var CurrentTheme = Themes["light"]

// SetTheme activates the named theme. Unknown names are ignored.
func SetTheme(name string) {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
	}
}

// ToggleTheme flips between the light and dark themes.
func ToggleTheme() {
	if CurrentTheme.Name == Themes["light"].Name {
		CurrentTheme = Themes["dark"]
	} else {
		CurrentTheme = Themes["light"]
	}
}

package display

import "github.com/charmbracelet/lipgloss"

// ── Styles ───────────────────────────────────────────────────────

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e4e4e7")).
			Bold(true)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3f3f46")).
			Padding(0, 2)

	focusedCardStyle = cardStyle.
				BorderForeground(lipgloss.Color("#94a3b8"))

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f4f4f5")).
			Bold(true)

	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa")).
			Bold(true).
			MarginTop(1)

	// Toggle pill: green when on, gray when off.
	toggleOnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#052e16")).
			Background(lipgloss.Color("#22c55e")).
			Padding(0, 1)

	toggleOffStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#27272a")).
			Background(lipgloss.Color("#d4d4d8")).
			Padding(0, 1)

	// Chips — soft green for ingredients, soft purple for dietary tags.
	ingredientChip = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#166534")).
			Background(lipgloss.Color("#dcfce7")).
			Padding(0, 1)

	tagChip = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6b21a8")).
		Background(lipgloss.Color("#f3e8ff")).
		Padding(0, 1)

	instructionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#d4d4d8"))

	noteLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8")).
			Bold(true)

	noteValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a")).
			Italic(true)
)

// Toggle labels.
const (
	toggleOn  = "● ON "
	toggleOff = "○ OFF"
)

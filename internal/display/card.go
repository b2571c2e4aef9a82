package display

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/hammamikhairi/recipepick/internal/view"
)

// Section headings.
const (
	headingIngredients  = "Ingredients:"
	headingDietary      = "Dietary Preference:"
	headingInstructions = "Instructions:"
	headingAdditional   = "Additional Information:"
)

// Card widths, in terminal columns, including the border.
const (
	minCardWidth = 32
	maxCardWidth = 88
)

// cardWidth clamps the card to something readable for the terminal width.
func cardWidth(termWidth int) int {
	w := termWidth - 2
	if w > maxCardWidth {
		w = maxCardWidth
	}
	if w < minCardWidth {
		w = minCardWidth
	}
	return w
}

// renderCard draws one recipe card at the given outer width.
func renderCard(c view.Card, focused bool, width int) string {
	style := cardStyle
	if focused {
		style = focusedCardStyle
	}
	// Border (2) plus horizontal padding (4).
	inner := width - style.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}

	var b strings.Builder
	b.WriteString(renderHeaderRow(c, inner))

	b.WriteString("\n")
	b.WriteString(headingStyle.Render(headingIngredients))
	b.WriteString("\n")
	b.WriteString(flowChips(c.Ingredients, ingredientChip, inner))

	b.WriteString("\n")
	b.WriteString(headingStyle.Render(headingDietary))
	b.WriteString("\n")
	b.WriteString(flowChips(c.Tags, tagChip, inner))

	b.WriteString("\n")
	b.WriteString(headingStyle.Render(headingInstructions))
	for _, line := range c.Instructions {
		b.WriteString("\n")
		b.WriteString(instructionStyle.Width(inner).Render(line))
	}

	b.WriteString("\n")
	b.WriteString(headingStyle.Render(headingAdditional))
	for _, n := range c.Notes {
		b.WriteString("\n")
		// Blank values still get their label.
		line := noteLabelStyle.Render(n.Label+":") + " " + noteValueStyle.Render(n.Value)
		b.WriteString(lipgloss.NewStyle().Width(inner).Render(line))
	}

	return style.Width(width - style.GetHorizontalBorderSize()).Render(b.String())
}

// renderHeaderRow puts the recipe name on the left and the toggle pill on
// the right.
func renderHeaderRow(c view.Card, inner int) string {
	pill := toggleOffStyle.Render(toggleOff)
	if c.Selected {
		pill = toggleOnStyle.Render(toggleOn)
	}
	nameWidth := inner - lipgloss.Width(pill) - 1
	if nameWidth < 1 {
		nameWidth = 1
	}
	name := nameStyle.Width(nameWidth).Render(c.Name)
	return lipgloss.JoinHorizontal(lipgloss.Top, name, " ", pill)
}

// flowChips lays chips out left to right, wrapping onto a new line when
// the next chip would overflow width.
func flowChips(items []string, style lipgloss.Style, width int) string {
	if len(items) == 0 {
		return ""
	}
	var (
		lines   []string
		current string
	)
	for _, item := range items {
		chip := style.Render(item)
		switch {
		case current == "":
			current = chip
		case lipgloss.Width(current)+1+lipgloss.Width(chip) > width:
			lines = append(lines, current)
			current = chip
		default:
			current += " " + chip
		}
	}
	lines = append(lines, current)
	return strings.Join(lines, "\n")
}

// ── Render cache ─────────────────────────────────────────────────

// cardKey identifies a rendered card. Recipes are immutable, so the ID
// stands in for the content.
type cardKey struct {
	id       string
	selected bool
	focused  bool
	width    int
}

// cardCache memoizes rendered cards. Safe for concurrent use.
type cardCache struct {
	lru *lru.Cache[cardKey, string]
}

// defaultCacheSize covers a few hundred suggestions in every state.
const defaultCacheSize = 512

func newCardCache(size int) *cardCache {
	if size <= 0 {
		size = defaultCacheSize
	}
	c, _ := lru.New[cardKey, string](size)
	return &cardCache{lru: c}
}

func (c *cardCache) render(card view.Card, focused bool, width int) string {
	k := cardKey{id: card.RecipeID, selected: card.Selected, focused: focused, width: width}
	if s, ok := c.lru.Get(k); ok {
		return s
	}
	s := renderCard(card, focused, width)
	c.lru.Add(k, s)
	return s
}

// Len returns the number of cached cards.
func (c *cardCache) Len() int { return c.lru.Len() }

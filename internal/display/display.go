// Package display provides the recipe picker terminal UI using Bubble Tea.
//
// [Model] is the screen that owns the selection. It keeps the selection
// in a [domain.SelectionStore], builds a fresh [view.List] from the stored
// selection whenever something changes, and draws the resulting cards
// into a scrolling viewport. Toggles flow list → store → next render; the
// model never flips a card's state itself.
package display

import (
	"context"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/recipepick/internal/domain"
	"github.com/hammamikhairi/recipepick/internal/logger"
	"github.com/hammamikhairi/recipepick/internal/view"
)

// defaultHeight is used until the first WindowSizeMsg arrives.
const defaultHeight = 24

// Result is what the user decided when the picker closed.
type Result struct {
	Selected  []string
	Confirmed bool
}

// Option configures the Model.
type Option func(*Model)

// WithWidth fixes the initial render width instead of asking the terminal.
func WithWidth(w int) Option {
	return func(m *Model) {
		m.width = w
	}
}

// WithHeight sets the initial height.
func WithHeight(h int) Option {
	return func(m *Model) {
		m.height = h
	}
}

// WithKeyMap overrides the default key bindings.
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) {
		m.keys = k
	}
}

// WithCacheSize sets how many rendered cards are kept.
func WithCacheSize(n int) Option {
	return func(m *Model) {
		m.cacheSize = n
	}
}

// Model is the Bubble Tea model for the picker.
type Model struct {
	recipes []domain.Recipe
	store   domain.SelectionStore
	log     *logger.Logger

	keys      KeyMap
	help      help.Model
	viewport  viewport.Model
	cache     *cardCache
	cacheSize int

	selected []string // last selection read from the store
	cursor   int
	offsets  []int // first content line of each card

	width  int
	height int

	done      bool
	confirmed bool
}

// New creates the picker for recipes, reading and writing the selection
// through store.
func New(recipes []domain.Recipe, store domain.SelectionStore, log *logger.Logger, opts ...Option) Model {
	m := Model{
		recipes: recipes,
		store:   store,
		log:     log,
		keys:    DefaultKeyMap(),
		height:  defaultHeight,
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.width <= 0 {
		m.width = termWidth()
	}

	m.help = help.New()
	m.help.Width = m.width
	m.cache = newCardCache(m.cacheSize)
	m.viewport = viewport.New(m.width, m.bodyHeight())

	m.reload()
	m.refresh()
	return m
}

// Run starts the Bubble Tea event loop and blocks until the user
// confirms or cancels, or ctx is cancelled.
func Run(ctx context.Context, m Model) (Result, error) {
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	final, err := p.Run()
	if err != nil {
		return Result{}, err
	}
	fm, ok := final.(Model)
	if !ok {
		return Result{}, nil
	}
	return fm.Result(), nil
}

// Result returns the selection and whether the user confirmed it.
func (m Model) Result() Result {
	return Result{
		Selected:  slices.Clone(m.selected),
		Confirmed: m.confirmed,
	}
}

// Cursor returns the index of the focused recipe.
func (m Model) Cursor() int { return m.cursor }

// Selected returns the selection the model last read from its store.
func (m Model) Selected() []string { return slices.Clone(m.selected) }

// ── Bubble Tea ───────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(title)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.log.Info("picker cancelled")
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Confirm):
			m.log.Info("picker confirmed with %d selected", len(m.selected))
			m.done = true
			m.confirmed = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.moveCursor(-1)
		case key.Matches(msg, m.keys.Down):
			m.moveCursor(1)
		case key.Matches(msg, m.keys.Toggle):
			m.toggleFocused()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.viewport.Height = m.bodyHeight()
			m.refresh()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = m.bodyHeight()
		m.refresh()
		return m, nil
	}

	// Mouse wheel and the like go to the viewport.
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(renderHeader(len(m.selected), len(m.recipes)))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// ── Selection ────────────────────────────────────────────────────

// list builds the coordinator for the current recipes and selection, with
// its sink wired to the store.
func (m Model) list() *view.List {
	store, log := m.store, m.log
	prev := m.selected
	return view.NewList(m.recipes, m.selected, func(ids []string) {
		log.Debug("selection %v -> %v", prev, ids)
		if err := store.Save(context.Background(), ids); err != nil {
			log.Error("saving selection: %v", err)
		}
	})
}

func (m *Model) toggleFocused() {
	if len(m.recipes) == 0 {
		return
	}
	card := m.list().Cards()[m.cursor]
	card.Toggle()
	m.log.Debug("toggled %s", card.RecipeID)

	m.reload()
	m.refresh()
}

// reload reads the selection back from the store. On error the previous
// selection is kept.
func (m *Model) reload() {
	ids, err := m.store.Load(context.Background())
	if err != nil {
		m.log.Error("loading selection: %v", err)
		return
	}
	m.selected = ids
}

func (m *Model) moveCursor(delta int) {
	if len(m.recipes) == 0 {
		return
	}
	next := m.cursor + delta
	if next < 0 || next >= len(m.recipes) {
		return
	}
	m.cursor = next
	m.refresh()
}

// ── Layout ───────────────────────────────────────────────────────

// bodyHeight is what is left for the viewport after the header (title
// plus a blank line) and the help bar.
func (m Model) bodyHeight() int {
	h := m.height - 2 - lipgloss.Height(m.help.View(m.keys)) - 1
	if h < 1 {
		h = 1
	}
	return h
}

// refresh re-renders all cards into the viewport and scrolls the focused
// card into view.
func (m *Model) refresh() {
	if len(m.recipes) == 0 {
		m.offsets = nil
		m.viewport.SetContent(emptyStyle.Render("No recipes to show."))
		return
	}

	cards := m.list().Cards()
	width := cardWidth(m.width)

	m.offsets = make([]int, len(cards))
	rendered := make([]string, len(cards))
	line := 0
	for i, c := range cards {
		rendered[i] = m.cache.render(c, i == m.cursor, width)
		m.offsets[i] = line
		line += lipgloss.Height(rendered[i])
	}
	m.viewport.SetContent(strings.Join(rendered, "\n"))
	m.scrollToCursor(line)
}

func (m *Model) scrollToCursor(total int) {
	top := m.offsets[m.cursor]
	bottom := total
	if m.cursor+1 < len(m.offsets) {
		bottom = m.offsets[m.cursor+1]
	}

	switch {
	case top < m.viewport.YOffset:
		m.viewport.SetYOffset(top)
	case bottom > m.viewport.YOffset+m.viewport.Height:
		off := bottom - m.viewport.Height
		if off > top {
			// Taller than the screen: show its start.
			off = top
		}
		m.viewport.SetYOffset(off)
	}
}

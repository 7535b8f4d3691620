package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			PaddingLeft(2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			PaddingLeft(2)

	matchHighlight = lipgloss.NewStyle().
			Background(lipgloss.Color("228")). // yellow
			Foreground(lipgloss.Color("0"))    // black

	currentMatchHighlight = lipgloss.NewStyle().
				Background(lipgloss.Color("196")). // red
				Foreground(lipgloss.Color("15"))   // white
)

// chromeHeight is the number of lines taken by the title and help bar
const chromeHeight = 2

type searchState struct {
	active  bool
	input   textinput.Model
	query   string
	matches []int
	current int
}

// pagerModel shows a single document in a scrollable viewport.
// content may carry terminal styling; search runs over plain, its escape-free text.
type pagerModel struct {
	docID    string
	viewport viewport.Model
	content  string
	plain    string
	ready    bool
	search   searchState
}

// NewPager creates a new pager model showing content under the title docID
func NewPager(docID, content string) *pagerModel {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.PromptStyle = helpStyle
	return &pagerModel{
		docID:   docID,
		content: content,
		plain:   ansi.Strip(content),
		search: searchState{
			input: ti,
		},
	}
}

// Init initializes the pager model
func (m *pagerModel) Init() tea.Cmd {
	return nil
}

// Update handles user input and updates the model state
func (m *pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.search.active {
			return m.updateSearchInput(msg)
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.clearSearch()
		case "g", "home":
			m.viewport.GotoTop()
		case "G", "end":
			m.viewport.GotoBottom()
		case "/":
			m.search.active = true
			m.search.input.Focus()
			return m, textinput.Blink
		case "n":
			m.jumpTo(m.search.current + 1)
		case "N":
			m.jumpTo(m.search.current - 1)
		}

	case tea.WindowSizeMsg:
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-chromeHeight)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - chromeHeight
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *pagerModel) updateSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.search.active = false
		m.search.input.Reset()
		return m, nil
	case tea.KeyEnter:
		m.search.active = false
		m.search.query = m.search.input.Value()
		m.search.input.Reset()
		m.search.matches = findMatches(m.plain, m.search.query)
		m.jumpTo(0)
		return m, nil
	}

	var cmd tea.Cmd
	m.search.input, cmd = m.search.input.Update(msg)
	return m, cmd
}

// View renders the current state of the model
func (m *pagerModel) View() string {
	if !m.ready {
		return "\nInitializing..."
	}

	var footer string
	if m.search.active {
		footer = m.search.input.View()
	} else {
		footer = helpStyle.Render(m.helpText())
	}
	return titleStyle.Render(m.docID) + "\n" + m.viewport.View() + "\n" + footer
}

func (m *pagerModel) helpText() string {
	help := "↑/k up • ↓/j down • g/G top/bottom • / search • q quit"
	if len(m.search.matches) > 0 {
		help += fmt.Sprintf(" • n/N match %d/%d", m.search.current+1, len(m.search.matches))
	} else if m.search.query != "" {
		help += " • no matches"
	}
	return help
}

// jumpTo selects match i, wrapping around, and scrolls it into view
func (m *pagerModel) jumpTo(i int) {
	n := len(m.search.matches)
	if n == 0 {
		m.viewport.SetContent(m.content)
		return
	}
	m.search.current = ((i % n) + n) % n

	// highlighted plain text replaces the styled content until the search is cleared
	m.viewport.SetContent(highlightMatches(m.plain, m.search.matches, len(m.search.query), m.search.current))

	line := lineOf(m.plain, m.search.matches[m.search.current])
	if line < m.viewport.YOffset || line >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(line)
	}
}

func (m *pagerModel) clearSearch() {
	m.search.query = ""
	m.search.matches = nil
	m.search.current = 0
	m.viewport.SetContent(m.content)
}

// findMatches returns the byte offsets of every non-overlapping occurrence of query.
// A query without upper case letters matches case-insensitively.
func findMatches(content, query string) []int {
	if query == "" {
		return nil
	}

	haystack := content
	if !strings.ContainsAny(query, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		lowered := strings.ToLower(content)
		// offsets must stay valid for content
		if len(lowered) == len(content) {
			haystack = lowered
		}
		query = strings.ToLower(query)
	}

	var matches []int
	for pos := 0; pos <= len(haystack)-len(query); {
		i := strings.Index(haystack[pos:], query)
		if i < 0 {
			break
		}
		matches = append(matches, pos+i)
		pos += i + len(query)
	}
	return matches
}

// highlightMatches styles each match of length n, marking match current differently
func highlightMatches(content string, matches []int, n int, current int) string {
	var b strings.Builder
	last := 0
	for i, pos := range matches {
		b.WriteString(content[last:pos])
		style := matchHighlight
		if i == current {
			style = currentMatchHighlight
		}
		b.WriteString(style.Render(content[pos : pos+n]))
		last = pos + n
	}
	b.WriteString(content[last:])
	return b.String()
}

// lineOf returns the zero-based line holding byte offset pos
func lineOf(content string, pos int) int {
	return strings.Count(content[:pos], "\n")
}

// RunPager starts the pager program for a single document
func RunPager(docID, content string) error {
	p := tea.NewProgram(
		NewPager(docID, content),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

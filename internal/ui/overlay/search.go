package overlay

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SearchMsg is emitted on every keystroke; the host moves the cursor to
// the first kingdom whose name or ID contains Query
type SearchMsg struct {
	Query string
}

// SearchOverlay is the find-kingdom bar pinned to the bottom row
type SearchOverlay struct {
	input      textinput.Model
	matchCount int
	styles     *Styles
}

// NewSearchOverlay creates a new search overlay
func NewSearchOverlay() *SearchOverlay {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "find kingdom..."
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 40

	return &SearchOverlay{
		input:  ti,
		styles: New(),
	}
}

// SetMatchCount updates the match count display
func (s *SearchOverlay) SetMatchCount(count int) {
	s.matchCount = count
}

// Query returns the current search text
func (s *SearchOverlay) Query() string {
	return s.input.Value()
}

// Init implements tea.Model
func (s *SearchOverlay) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (s *SearchOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEnter:
			// Enter keeps the cursor on the match
			return s, func() tea.Msg { return CloseOverlayMsg{} }

		case tea.KeyEsc:
			s.input.SetValue("")
			return s, tea.Batch(
				func() tea.Msg { return SearchMsg{Query: ""} },
				func() tea.Msg { return CloseOverlayMsg{} },
			)
		}
	}

	prev := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	if query := s.input.Value(); query != prev {
		return s, tea.Batch(cmd, func() tea.Msg { return SearchMsg{Query: query} })
	}

	return s, cmd
}

// View implements tea.Model
func (s *SearchOverlay) View() string {
	view := s.input.View()

	if s.input.Value() != "" {
		count := "no match"
		if s.matchCount > 0 {
			count = fmt.Sprintf("%d matches", s.matchCount)
		}
		view += s.styles.SearchCount.Render(" (" + count + ")")
	}

	return s.styles.Search.Render(view)
}

// Title implements Overlay; the search bar has none
func (s *SearchOverlay) Title() string {
	return ""
}

// Size implements Overlay: a full-width single line
func (s *SearchOverlay) Size() (width, height int) {
	return 0, 1
}

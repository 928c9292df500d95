package responses

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/persona/internal/router"
	"github.com/abhisek/persona/internal/screen"
	"github.com/abhisek/persona/internal/ui/layout"
	"github.com/abhisek/persona/internal/ui/theme"
)

// ResponsesScreen lists the answers recorded so far, in the order given.
type ResponsesScreen struct {
	responses []string
}

var _ screen.Screen = (*ResponsesScreen)(nil)
var _ screen.KeyHintProvider = (*ResponsesScreen)(nil)

// New creates a ResponsesScreen over a snapshot of the responses.
func New(responses []string) *ResponsesScreen {
	return &ResponsesScreen{responses: responses}
}

func (s *ResponsesScreen) Init() tea.Cmd {
	return nil
}

func (s *ResponsesScreen) Title() string {
	return "Your Responses"
}

func (s *ResponsesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc/R", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *ResponsesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "r" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *ResponsesScreen) View(width, height int) string {
	if len(s.responses) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No answers yet. Pick one on any page to record it."))
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render(fmt.Sprintf("%d recorded", len(s.responses))))
	b.WriteString("\n\n")

	num := lipgloss.NewStyle().Foreground(theme.TextDim)
	for i, r := range s.responses {
		b.WriteString(num.Render(fmt.Sprintf("%2d.", i+1)))
		b.WriteString(" ")
		b.WriteString(theme.Question.Render(r))
		b.WriteString("\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

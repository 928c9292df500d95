package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/persona/internal/ui/components"
	"github.com/abhisek/persona/internal/ui/theme"
)

const (
	maxContentWidth = 72
	maxImageHeight  = 10
	minImageHeight  = 3
)

// View renders the current page: image, question, answer boxes, progress
// and page dots.
func (s *QuizScreen) View(width, height int) string {
	current := s.session.CurrentPage()
	p := s.pages[current]
	q := s.session.Question(current)

	contentWidth := width - 4
	if contentWidth > maxContentWidth {
		contentWidth = maxContentWidth
	}
	if contentWidth < 10 {
		contentWidth = 10
	}

	header := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d of %d", current+1, s.session.Len()))

	question := theme.Question.
		Width(contentWidth).
		Render(q.Text)

	answers := p.answers.View(contentWidth)

	progress := components.NewProgressBar("Answered", s.session.ResponseCount(), s.session.Len(), contentWidth).View()

	dots := lipgloss.NewStyle().
		Width(contentWidth).
		Align(lipgloss.Center).
		Render(s.pager.View())

	// Lines used by everything except the image, including blank spacers.
	fixed := lipgloss.Height(header) + lipgloss.Height(question) + lipgloss.Height(answers) + 5
	imgHeight := height - fixed
	if imgHeight > maxImageHeight {
		imgHeight = maxImageHeight
	}
	if imgHeight < minImageHeight {
		imgHeight = minImageHeight
	}
	// 300x200 frame: each cell is two pixel rows tall and about half as wide.
	imgWidth := imgHeight * 3
	if imgWidth > contentWidth {
		imgWidth = contentWidth
	}

	image := lipgloss.NewStyle().
		Width(contentWidth).
		Align(lipgloss.Center).
		Render(p.image.Render(p.loader.State(), imgWidth, imgHeight))

	content := strings.Join([]string{
		header,
		image,
		"",
		question,
		"",
		answers,
		"",
		progress,
		dots,
	}, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, content)
}

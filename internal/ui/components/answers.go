package components

import (
	"fmt"
	"strconv"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/persona/internal/ui/theme"
)

// AnswerSelectedMsg is emitted when an answer box is tapped.
type AnswerSelectedMsg struct {
	Page   int
	Index  int
	Answer string
}

// AnswerKeyMap defines the bindings used by AnswerList.
type AnswerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
}

// DefaultAnswerKeys is the default AnswerList key map.
var DefaultAnswerKeys = AnswerKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑↓", "Choose"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↑↓", "Choose"),
	),
	Choose: key.NewBinding(
		key.WithKeys("enter", "space"),
		key.WithHelp("Enter", "Select"),
	),
}

// AnswerList shows a question's answers as tappable boxes laid out in two
// columns.
type AnswerList struct {
	Page    int
	Answers []string
	Cursor  int
	Chosen  int
	Keys    AnswerKeyMap
}

// NewAnswerList creates an answer list for the question on page.
func NewAnswerList(page int, answers []string) AnswerList {
	return AnswerList{
		Page:    page,
		Answers: answers,
		Chosen:  -1,
		Keys:    DefaultAnswerKeys,
	}
}

// Update moves the cursor and turns Enter or a digit key into an
// AnswerSelectedMsg.
func (a AnswerList) Update(msg tea.Msg) (AnswerList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(a.Answers) == 0 {
		return a, nil
	}

	switch {
	case key.Matches(kmsg, a.Keys.Up):
		if a.Cursor > 0 {
			a.Cursor--
		}
		return a, nil
	case key.Matches(kmsg, a.Keys.Down):
		if a.Cursor < len(a.Answers)-1 {
			a.Cursor++
		}
		return a, nil
	case key.Matches(kmsg, a.Keys.Choose):
		return a.choose(a.Cursor)
	}

	if n, err := strconv.Atoi(kmsg.String()); err == nil && n >= 1 && n <= len(a.Answers) {
		a.Cursor = n - 1
		return a.choose(n - 1)
	}
	return a, nil
}

func (a AnswerList) choose(i int) (AnswerList, tea.Cmd) {
	a.Chosen = i
	sel := AnswerSelectedMsg{Page: a.Page, Index: i, Answer: a.Answers[i]}
	return a, func() tea.Msg { return sel }
}

// View renders the boxes within width columns.
func (a AnswerList) View(width int) string {
	colWidth := width/2 - 1
	if colWidth < 8 {
		colWidth = 8
	}

	var rows []string
	for i := 0; i < len(a.Answers); i += 2 {
		left := a.box(i, colWidth)
		if i+1 < len(a.Answers) {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, left, " ", a.box(i+1, colWidth)))
		} else {
			rows = append(rows, left)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (a AnswerList) box(i, width int) string {
	style := theme.AnswerBox
	switch {
	case i == a.Cursor:
		style = theme.AnswerBoxSelected
	case i == a.Chosen:
		style = theme.AnswerBoxChosen
	}
	label := fmt.Sprintf("%d  %s", i+1, a.Answers[i])
	return style.Width(width).Render(label)
}

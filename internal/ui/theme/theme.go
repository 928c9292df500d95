package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: soft pastels on a dark card
var (
	Primary   = lipgloss.Color("#EC4899") // Pink
	Secondary = lipgloss.Color("#38BDF8") // Sky
	Accent    = lipgloss.Color("#FBBF24") // Amber
	Success   = lipgloss.Color("#34D399") // Mint
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Question = lipgloss.NewStyle().
			Bold(true).
			Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Answer boxes
var (
	AnswerBox = lipgloss.NewStyle().
			Background(BgCard).
			Foreground(Text).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)

	AnswerBoxSelected = lipgloss.NewStyle().
				Background(BgCard).
				Foreground(Primary).
				Bold(true).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Primary).
				Padding(0, 2)

	AnswerBoxChosen = lipgloss.NewStyle().
			Background(BgCard).
			Foreground(Success).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Success).
			Padding(0, 2)
)

// Progress
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)

package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/persona/internal/ui/theme"
)

const bannerArt = `
 ██████╗ ██╗   ██╗██╗███████╗
██╔═══██╗██║   ██║██║╚══███╔╝
██║   ██║██║   ██║██║  ███╔╝
██║▄▄ ██║██║   ██║██║ ███╔╝
╚██████╔╝╚██████╔╝██║███████╗
 ╚══▀▀═╝  ╚═════╝ ╚═╝╚══════╝`

const bannerCompact = "Q U I Z"

// RenderBanner returns the QUIZ banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 34 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 34 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}

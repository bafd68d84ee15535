package welcome

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordrecog/internal/ui/theme"
)

const bannerText = "WORD RECOGNITION"

// RenderBanner returns the title letter-spaced inside a double border.
// Narrow terminals get the plain title.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	spaced := strings.Join(strings.Split(bannerText, ""), " ")
	if width < lipgloss.Width(spaced)+8 {
		return style.Render(bannerText)
	}
	return style.
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Border).
		Padding(1, 3).
		Render(spaced)
}

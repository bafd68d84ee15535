package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordrecog/internal/router"
	"github.com/abhisek/wordrecog/internal/screen"
	"github.com/abhisek/wordrecog/internal/ui/theme"
)

const tickInterval = 150 * time.Millisecond

var instructions = []string{
	"1. Sign in with your participant ID.",
	"2. Fifteen words appear one at a time. Memorize them.",
	"3. Then thirty words appear, one at a time.",
	"   Press Y or ← if the word was in the list, N or → if it was not.",
	"4. Each word has a short time limit. Answer as quickly as you can.",
}

type tickMsg time.Time

// WelcomeScreen reveals the instructions line by line, then hands over to
// the next screen on any key.
type WelcomeScreen struct {
	next         func() screen.Screen
	revealed     int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that replaces itself with the screen produced by next.
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Done reports whether every instruction line is visible.
func (w *WelcomeScreen) Done() bool {
	return w.revealed >= len(instructions)
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.Done() {
			return w, nil
		}
		w.revealed++
		return w, tick()

	case tea.KeyPressMsg:
		// First key finishes the reveal, the next one moves on.
		if !w.Done() {
			w.revealed = len(instructions)
			return w, nil
		}
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{RenderBanner(width), ""}

	lineStyle := lipgloss.NewStyle().Foreground(theme.Text)
	for _, line := range instructions[:w.revealed] {
		sections = append(sections, lineStyle.Render(line))
	}

	if w.Done() {
		sections = append(sections, "", theme.Hint.Render("press any key to begin"))
	}

	body := lipgloss.NewStyle().Align(lipgloss.Left).Render(strings.Join(sections, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

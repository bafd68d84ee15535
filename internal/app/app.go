package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	exp "github.com/abhisek/wordrecog/internal/experiment"
	"github.com/abhisek/wordrecog/internal/router"
	"github.com/abhisek/wordrecog/internal/screen"
	"github.com/abhisek/wordrecog/internal/screens/experiment"
	"github.com/abhisek/wordrecog/internal/screens/welcome"
	"github.com/abhisek/wordrecog/internal/ui/layout"
)

// Options holds the dependencies for the TUI.
type Options struct {
	Ctx        context.Context
	Controller *exp.Controller
	// SkipWelcome starts directly on the sign-in screen.
	SkipWelcome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	ctx := opts.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	start := func() screen.Screen {
		return experiment.New(ctx, opts.Controller)
	}

	var first screen.Screen
	if opts.SkipWelcome {
		first = start()
	} else {
		first = welcome.New(start)
	}
	return AppModel{router: router.New(first)}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			return m, m.router.Update(screen.ResetMsg{})
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	v.SetContent(m.render())
	return v
}

func (m AppModel) render() string {
	active := m.router.Active()

	var title, status string
	footerHints := []layout.KeyHint{
		{Key: "any key", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
		if hp, ok := active.(screen.KeyHintProvider); ok {
			footerHints = hp.KeyHints()
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	if opts.Controller == nil {
		return fmt.Errorf("app: no experiment controller")
	}
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

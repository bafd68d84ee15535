package experiment

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	exp "github.com/abhisek/wordrecog/internal/experiment"
	"github.com/abhisek/wordrecog/internal/ui/components"
	"github.com/abhisek/wordrecog/internal/ui/theme"
)

func (s *ExperimentScreen) View(width, height int) string {
	var body string
	switch s.ctrl.Phase() {
	case exp.PhaseLogin:
		body = s.renderLogin()
	case exp.PhaseConfirm:
		body = s.renderConfirm()
	case exp.PhaseMemorize:
		body = s.renderMemorize(width)
	case exp.PhaseReady:
		body = s.renderReady()
	case exp.PhaseTest:
		body = s.renderTest(width)
	case exp.PhaseResult:
		body = s.renderResult()
	}

	if s.errMsg != "" && s.ctrl.Phase() != exp.PhaseLogin {
		body += "\n\n" + theme.Incorrect.Render(s.errMsg)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (s *ExperimentScreen) renderLogin() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Enter your participant ID"))
	b.WriteString("\n\n")
	b.WriteString(s.input.View())
	b.WriteString("\n\n")
	if s.errMsg != "" {
		b.WriteString(theme.Incorrect.Render(s.errMsg))
	} else {
		b.WriteString(theme.Hint.Render("One capital letter and three digits"))
	}
	return b.String()
}

func (s *ExperimentScreen) renderConfirm() string {
	sess := s.ctrl.Session()
	rows := []string{
		row("Participant", sess.ParticipantID),
		row("Step", fmt.Sprintf("%d of %d", sess.StepNumber(), exp.Steps)),
		row("Condition", string(sess.Condition())),
		row("Word set", string(sess.TargetSet())),
	}
	card := theme.Card.Render(strings.Join(rows, "\n"))

	return lipgloss.JoinVertical(lipgloss.Center,
		card,
		"",
		theme.Body.Render("You will see 15 words, one at a time. Try to remember them."),
		"",
		s.actionView(),
	)
}

func row(label, value string) string {
	return lipgloss.NewStyle().Foreground(theme.TextDim).Width(14).Render(label) +
		theme.Body.Bold(true).Render(value)
}

func (s *ExperimentScreen) renderMemorize(width int) string {
	if s.ctrl.Stage() == exp.StageAwaitingStart {
		secs := s.ctrl.Timing().DisplayTime.Seconds()
		return lipgloss.JoinVertical(lipgloss.Center,
			theme.Title.Render("Memorization"),
			"",
			theme.Body.Render(fmt.Sprintf("Each word stays on screen for %.1f seconds.", secs)),
			theme.Body.Render("Nothing to press until the list ends."),
			"",
			s.actionView(),
		)
	}

	idx, total := s.ctrl.WordProgress()
	shown := idx + 1
	if shown > total {
		shown = total
	}
	var pct float64
	if total > 0 {
		pct = float64(shown) / float64(total)
	}
	bar := components.NewProgressBar("", pct, fmt.Sprintf("%d/%d", shown, total), barWidth(width))

	return lipgloss.JoinVertical(lipgloss.Center,
		theme.Stimulus.Render(s.ctrl.CurrentWord()),
		"",
		bar.View(),
	)
}

func (s *ExperimentScreen) renderReady() string {
	return lipgloss.JoinVertical(lipgloss.Center,
		theme.Title.Render("Recognition test"),
		"",
		theme.Body.Render("Words will appear one at a time."),
		theme.Body.Render("Was the word in the list you just saw?"),
		"",
		theme.YesKey.Render("Y / ←")+theme.Body.Render("  yes, I saw it      ")+
			theme.NoKey.Render("N / →")+theme.Body.Render("  no, it is new"),
		"",
		theme.Hint.Render("Answer quickly. Unanswered words count as wrong."),
		"",
		s.actionView(),
	)
}

func (s *ExperimentScreen) renderTest(width int) string {
	item, idx, ok := s.ctrl.CurrentTrial()
	if !ok {
		return ""
	}

	answer := s.ctrl.Timing().AnswerTime
	remaining := s.ctrl.Remaining()
	var pct float64
	if answer > 0 {
		pct = float64(remaining) / float64(answer)
	}
	bar := components.NewProgressBar("", pct, fmt.Sprintf("%.1fs", remaining.Seconds()), barWidth(width))
	bar.LowAt = 0.25

	counter := theme.Hint.Render(fmt.Sprintf("Word %d of %d", idx+1, s.ctrl.PoolSize()))

	return lipgloss.JoinVertical(lipgloss.Center,
		counter,
		"",
		theme.Stimulus.Render(item.Word),
		"",
		bar.View(),
		"",
		theme.YesKey.Render("Y / ← yes")+"      "+theme.NoKey.Render("N / → no"),
	)
}

func (s *ExperimentScreen) renderResult() string {
	sum := s.ctrl.Summary()

	score := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render(fmt.Sprintf("%d / %d correct", sum.Correct, sum.Total))
	accuracy := theme.Body.Render(fmt.Sprintf("Accuracy %d%%", sum.AccuracyPercent()))

	breakdown := theme.Card.Render(strings.Join([]string{
		row("Hits", fmt.Sprint(sum.Hits)),
		row("Correct no", fmt.Sprint(sum.CorrectRejections)),
		row("Misses", fmt.Sprint(sum.Misses)),
		row("False alarms", fmt.Sprint(sum.FalseAlarms)),
		row("Timeouts", fmt.Sprint(sum.Timeouts)),
	}, "\n"))

	parts := []string{score, accuracy, "", breakdown}
	if err := s.ctrl.SaveErr(); err != nil {
		parts = append(parts, "", theme.Warning.Render("Warning: results were not saved: "+err.Error()))
	} else if sess := s.ctrl.Session(); sess != nil && sess.Completed {
		parts = append(parts, "", theme.Correct.Render("All steps complete. Thank you for taking part!"))
	}
	parts = append(parts, "", s.actionView())

	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

func (s *ExperimentScreen) actionView() string {
	b, ok := s.action()
	if !ok {
		return ""
	}
	return b.View()
}

func barWidth(width int) int {
	w := width / 2
	if w < 30 {
		w = 30
	}
	if w > 60 {
		w = 60
	}
	return w
}

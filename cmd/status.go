package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/wordrecog/internal/experiment"
)

var statusCmd = &cobra.Command{
	Use:   "status <participant-id>",
	Short: "Show a participant's assignment, progress and per-step accuracy",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		if err := experiment.ValidateParticipantID(id); err != nil {
			return err
		}

		repo, closeDB, err := openRepo()
		if err != nil {
			return err
		}
		defer closeDB()

		ctx := cmd.Context()
		s, err := repo.LoadSession(ctx, id)
		if err != nil {
			return fmt.Errorf("load session: %w", err)
		}
		if s == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "No session for %s.\n", id)
			return nil
		}
		blocks, err := loadAllTrials(ctx, repo, id)
		if err != nil {
			return err
		}

		printStatus(cmd.OutOrStdout(), s, blocks)
		return nil
	},
}

func printStatus(w io.Writer, s *experiment.Session, blocks []stepTrials) {
	progress := fmt.Sprintf("%d of %d steps done", s.CurrentStep, experiment.Steps)
	if s.Completed {
		progress += " (completed)"
	}

	fmt.Fprintf(w, "Participant:  %s\n", s.ParticipantID)
	fmt.Fprintf(w, "Progress:     %s\n", progress)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%-5s  %-9s  %-6s  %-8s  %-8s  %s\n",
		"Step", "Condition", "Set", "Correct", "Accuracy", "Timeouts")
	fmt.Fprintln(w, strings.Repeat("─", 56))

	recorded := make(map[int]experiment.Summary, len(blocks))
	for _, b := range blocks {
		recorded[b.Step] = experiment.Summarize(b.Trials)
	}

	for i := 0; i < experiment.Steps; i++ {
		step := i + 1
		var cond, set string
		if i < len(s.ConditionOrder) {
			cond = string(s.ConditionOrder[i])
		}
		if i < len(s.SetOrder) {
			set = string(s.SetOrder[i])
		}

		sum, ok := recorded[step]
		if !ok {
			fmt.Fprintf(w, "%-5d  %-9s  %-6s  %-8s  %-8s  %s\n", step, cond, set, "-", "-", "-")
			continue
		}
		fmt.Fprintf(w, "%-5d  %-9s  %-6s  %-8s  %-8s  %d\n",
			step, cond, set,
			fmt.Sprintf("%d/%d", sum.Correct, sum.Total),
			fmt.Sprintf("%d%%", sum.AccuracyPercent()),
			sum.Timeouts)
	}
}

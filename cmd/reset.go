package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/wordrecog/internal/experiment"
)

var resetCmd = &cobra.Command{
	Use:   "reset <participant-id>",
	Short: "Delete a participant's assignment and all recorded trials",
	Long: `Delete a participant's assignment and all recorded trials.

Use this to clear unreadable saved data, or to let a participant start over
with a fresh set order. The condition order is derived from the ID and will
be the same again.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		if err := experiment.ValidateParticipantID(id); err != nil {
			return err
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Fprintf(cmd.OutOrStdout(), "Delete all data for %s? [y/N] ", id)
			line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if a := strings.ToLower(strings.TrimSpace(line)); a != "y" && a != "yes" {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}
		}

		repo, closeDB, err := openRepo()
		if err != nil {
			return err
		}
		defer closeDB()

		if err := repo.Forget(cmd.Context(), id); err != nil {
			return err
		}
		logger.Info("participant reset", zap.String("participant", id))
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted data for %s.\n", id)
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}

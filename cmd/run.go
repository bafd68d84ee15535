package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/wordrecog/internal/app"
	"github.com/abhisek/wordrecog/internal/experiment"
	"github.com/abhisek/wordrecog/internal/store"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the experiment (same as running wordrecog with no subcommand)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func init() {
	addRunFlags(runCmd)
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("ephemeral", false, "Keep all data in memory; nothing is written to the database")
	cmd.Flags().Bool("skip-intro", false, "Start on the sign-in screen")
}

// runApp opens the store, builds the controller, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ephemeral, _ := cmd.Flags().GetBool("ephemeral")
	skipIntro, _ := cmd.Flags().GetBool("skip-intro")

	var kv store.KVRepo
	if ephemeral {
		kv = store.NewMemoryKV()
		logger.Warn("ephemeral run; results will not be saved")
	} else {
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()
		kv = st.KVRepo()
	}

	ctrl := experiment.NewController(experiment.Options{
		Repo:   experiment.NewRepo(kv),
		Timing: cfg.Timing,
		Logger: logger,
	})

	logger.Info("starting",
		zap.String("db", dbPath),
		zap.Bool("ephemeral", ephemeral),
		zap.Duration("display_time", cfg.Timing.DisplayTime),
		zap.Duration("answer_time", cfg.Timing.AnswerTime))

	return app.Run(app.Options{
		Ctx:         cmd.Context(),
		Controller:  ctrl,
		SkipWelcome: skipIntro,
	})
}

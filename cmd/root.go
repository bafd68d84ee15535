package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/wordrecog/internal/config"
	"github.com/abhisek/wordrecog/internal/logging"
	"github.com/abhisek/wordrecog/internal/store"
)

// Set by the root command's PersistentPreRunE.
var (
	cfg    config.Config
	dbPath string
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "wordrecog",
	Short: "Word recognition memory experiment",
	Long: `wordrecog runs a three-step word recognition experiment in the terminal.

Participants memorize a list of 15 words, then decide for each of 30 words
whether it was on the list. Assignments and trial data are kept in a local
SQLite database so a participant can continue with the next step later.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides WORDRECOG_DB env var)")
	addRunFlags(rootCmd)

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads configuration, resolves the database path and opens the log.
func setup(cmd *cobra.Command) error {
	c, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = c

	if cmd == versionCmd {
		return nil
	}

	p, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	dbPath = p

	l, err := logging.New(logging.PathFor(cfg.LogPath, dbPath), cfg.Debug)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	logger = l.With(zap.String("command", cmd.Name()))
	return nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then WORDRECOG_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

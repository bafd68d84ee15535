package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/wordrecog/internal/experiment"
)

var exportCmd = &cobra.Command{
	Use:   "export <participant-id>",
	Short: "Write all recorded trials for a participant to stdout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		if err := experiment.ValidateParticipantID(id); err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")
		if format != "csv" && format != "json" {
			return fmt.Errorf("unknown format %q (want csv or json)", format)
		}

		repo, closeDB, err := openRepo()
		if err != nil {
			return err
		}
		defer closeDB()

		blocks, err := loadAllTrials(cmd.Context(), repo, id)
		if err != nil {
			return err
		}
		var trials []experiment.Trial
		for _, b := range blocks {
			trials = append(trials, b.Trials...)
		}

		if format == "json" {
			return writeJSON(cmd.OutOrStdout(), trials)
		}
		return writeCSV(cmd.OutOrStdout(), trials)
	},
}

func init() {
	exportCmd.Flags().String("format", "csv", "Output format: csv or json")
}

var csvHeader = []string{
	"participantId", "condition", "set", "step", "word", "isTarget",
	"response", "isCorrect", "responseTime", "isTimeout", "timestamp", "blockId",
}

func writeCSV(w io.Writer, trials []experiment.Trial) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, t := range trials {
		rec := []string{
			t.ParticipantID,
			string(t.Condition),
			string(t.Set),
			strconv.Itoa(t.Step),
			t.Word,
			strconv.FormatBool(t.IsTarget),
			string(t.Response),
			strconv.FormatBool(t.IsCorrect),
			strconv.FormatInt(t.ResponseTimeMs, 10),
			strconv.FormatBool(t.IsTimeout),
			t.Timestamp.UTC().Format(time.RFC3339Nano),
			t.BlockID,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeJSON(w io.Writer, trials []experiment.Trial) error {
	if trials == nil {
		trials = []experiment.Trial{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(trials)
}

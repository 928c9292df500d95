package cmd

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/persona/internal/journal"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Print answers recorded with --journal",
	RunE:  runJournal,
}

func init() {
	journalCmd.Flags().String("run", "", "Only show answers from this run ID")
}

func runJournal(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Journal.Path == "" {
		return errors.New("no journal configured: pass --journal or set PERSONA_JOURNAL_PATH")
	}

	j, err := journal.Open(cfg.Journal.Path)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer j.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	runID, _ := cmd.Flags().GetString("run")
	events, err := j.Answers(ctx, runID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(events) == 0 {
		fmt.Fprintln(out, "No answers recorded.")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tRUN\tQ\tANSWER\tQUESTION")
	for _, ev := range events {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n",
			ev.RecordedAt.Format("2006-01-02 15:04:05"),
			shortID(ev.RunID),
			ev.Page+1,
			ev.Answer,
			ev.Question,
		)
	}
	return tw.Flush()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

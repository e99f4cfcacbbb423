package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studydrill/drill/internal/bank"
	"github.com/studydrill/drill/internal/ingest"
	"github.com/studydrill/drill/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a question bank from a text or PDF file",
	Long: `Parses numbered questions with answer lines (and optional a)-f) choices)
out of a text or PDF file and replaces the current bank. All practice
progress is cleared: a new bank is new material.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")

		questions, err := ingest.FromFile(args[0])
		if err != nil {
			return err
		}
		if len(questions) == 0 {
			return fmt.Errorf("no questions found in %s", args[0])
		}
		if subject == "" {
			subject = ingest.SubjectFromFilename(args[0])
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		repo := bank.NewRepository(questions, subject)
		sink := store.NewSink(st)
		if err := sink.SaveBank(ctx, repo); err != nil {
			return fmt.Errorf("save bank: %w", err)
		}
		if err := st.StateRepo().SaveProgress(ctx, store.ProgressState{}); err != nil {
			return fmt.Errorf("clear progress: %w", err)
		}

		fmt.Printf("Imported %d questions under %q.\n", len(questions), subject)
		return nil
	},
}

func init() {
	importCmd.Flags().StringP("subject", "s", "", "Subject label (defaults to one derived from the filename)")
}

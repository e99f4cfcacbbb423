package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studydrill/drill/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the question bank and all progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Println("This deletes the imported bank, score, bookmarks, and error history.")
			fmt.Println("Run again with --force to confirm.")
			return nil
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
		if err := st.StateRepo().SaveBank(ctx, store.BankState{}); err != nil {
			return fmt.Errorf("clear bank: %w", err)
		}
		if err := st.StateRepo().SaveProgress(ctx, store.ProgressState{}); err != nil {
			return fmt.Errorf("clear progress: %w", err)
		}

		fmt.Println("All session data cleared.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Skip the confirmation")
}

package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/studydrill/drill/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lifetime answer totals and recent exam results",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

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

		total, correct, err := st.EventRepo().AnswerTotals(ctx)
		if err != nil {
			return fmt.Errorf("answer totals: %w", err)
		}

		fmt.Println("Practice")
		fmt.Println(strings.Repeat("─", 48))
		if total == 0 {
			fmt.Println("No answers recorded yet.")
		} else {
			fmt.Printf("Answered: %d   Correct: %d   Accuracy: %.0f%%\n",
				total, correct, float64(correct)/float64(total)*100)
		}

		exams, err := st.EventRepo().ExamHistory(ctx, limit)
		if err != nil {
			return fmt.Errorf("exam history: %w", err)
		}

		fmt.Println()
		fmt.Println("Exams")
		fmt.Println(strings.Repeat("─", 48))
		if len(exams) == 0 {
			fmt.Println("No exams taken yet.")
			return nil
		}
		fmt.Printf("%-19s  %7s  %9s  %s\n", "When", "Score", "Needed", "Result")
		for _, e := range exams {
			result := "fail"
			if e.Passed {
				result = "pass"
			}
			fmt.Printf("%-19s  %3d/%-3d  %9d  %s\n",
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.CorrectCount, e.Total, e.Threshold, result)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 10, "Number of exams to show")
}

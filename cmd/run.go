package cmd

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/studydrill/drill/internal/app"
	"github.com/studydrill/drill/internal/config"
	"github.com/studydrill/drill/internal/distractor"
	"github.com/studydrill/drill/internal/exam"
	"github.com/studydrill/drill/internal/llm"
	"github.com/studydrill/drill/internal/practice"
	"github.com/studydrill/drill/internal/screens/home"
	"github.com/studydrill/drill/internal/store"
	"github.com/studydrill/drill/internal/tutor"
)

// runApp opens the store, restores the session, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath, err = resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	repo, progress, err := store.LoadSession(ctx, st.StateRepo())
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	sink := store.NewSink(st)
	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), uint64(os.Getpid())))
	gen := distractor.NewWithRand(rng)

	deps := home.Deps{
		Bank:        repo,
		Practice:    practice.NewController(repo, progress, gen, rng, sink),
		Exam:        exam.NewController(repo, gen, rng, sink),
		SearchLimit: cfg.SearchLimit,
		ExamCount:   cfg.Exam.DefaultCount,
		ExamMinutes: cfg.Exam.DefaultMinutes,
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "The tutor will be unavailable.")
	} else {
		deps.Tutor = tutor.NewService(provider, tutor.DefaultConfig())
	}

	return app.Run(app.Options{Home: deps})
}

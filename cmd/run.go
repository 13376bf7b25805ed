package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theboiblazin2026-oss/pocket-academy/internal/app"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/progress"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/store"
)

// runApp opens the store, loads learner state, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	prog := progress.NewStore(context.Background(), st)

	return app.Run(app.Options{
		Progress: prog,
		Config:   cfg,
	})
}

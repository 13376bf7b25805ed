package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/theboiblazin2026-oss/pocket-academy/internal/config"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "pocket-academy",
	Short: "Self-study curriculum tracker",
	Long:  "Pocket Academy — a terminal study companion with gated learning tracks, task checklists, and phase exams.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides POCKET_ACADEMY_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")

	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file named by --config, or the default
// XDG location when the flag is unset.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return config.Default(), err
		}
	}
	return config.Load(path)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then POCKET_ACADEMY_DB env var, then the config file's
// db_path, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if p := os.Getenv("POCKET_ACADEMY_DB"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theboiblazin2026-oss/pocket-academy/internal/curriculum"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/exam"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/gating"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/progress"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-track progress and exam attempt history",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		state := progress.NewStore(context.Background(), st).Snapshot()

		fmt.Println("Tracks")
		fmt.Println(strings.Repeat("─", 60))
		for _, track := range curriculum.Tracks() {
			done, total := gating.TrackProgress(track, state)
			passed := 0
			for _, ps := range gating.Evaluate(track, state) {
				if ps.Passed {
					passed++
				}
			}
			marker := " "
			if track.ID == state.ActiveTrack {
				marker = "*"
			}
			fmt.Printf("%s %-24s  %3d/%3d tasks  %d/%d phases passed\n",
				marker, track.Name, done, total, passed, len(track.Phases))
		}

		if len(state.Attempts) == 0 {
			fmt.Println("\nNo exam attempts yet.")
			return nil
		}

		fmt.Println("\nExam attempts")
		fmt.Println(strings.Repeat("─", 60))
		fmt.Printf("%-19s  %-10s  %-6s  %-6s  %s\n", "When", "Track", "Phase", "Score", "Result")
		for _, a := range state.Attempts {
			result := "fail"
			if a.Score >= exam.PassThreshold {
				result = "pass"
			}
			fmt.Printf("%-19s  %-10s  %-6d  %-6d  %s\n",
				a.At.Local().Format("2006-01-02 15:04:05"), a.Track, a.PhaseID, a.Score, result)
		}
		return nil
	},
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagReset bool

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Show or reset the best score",
	Long: `Print the persisted best score.

Examples:
  tilemerge best
  tilemerge best --reset`,
	Args: cobra.NoArgs,
	RunE: runBest,
}

func init() {
	bestCmd.Flags().BoolVar(&flagReset, "reset", false, "Forget the best score")
}

func runBest(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	logger := newLogger(cmd.ErrOrStderr(), cfg.Log.Level)
	out := cmd.OutOrStdout()

	if flagReset {
		if err := store.ResetBest(); err != nil {
			return err
		}
		logger.Info("best score reset", "db", cfg.Storage.DBPath)
		fmt.Fprintln(out, "Best score reset.")
		return nil
	}

	best, ok, err := store.LoadBest()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(out, "No best score yet.")
		return nil
	}
	fmt.Fprintf(out, "Best: %d\n", best)
	return nil
}

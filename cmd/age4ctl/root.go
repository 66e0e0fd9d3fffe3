package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagForce bool
	flagRun   bool
	flagClean bool
)

var rootCmd = &cobra.Command{
	Use:   "age4ctl",
	Short: "Decode AGE-engine archives, images, and scripts",
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagForce, "force", false, "overwrite outputs that already exist instead of skipping them")
	rootCmd.PersistentFlags().BoolVar(&flagRun, "run", false, "kept for parity with the original tool; decoding here is never resumable mid-file")
	rootCmd.PersistentFlags().BoolVar(&flagClean, "clean", false, "remove prior outputs before running")

	rootCmd.AddCommand(extractCmd, decodeAgfCmd, disasmCmd, cropIconCmd)
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

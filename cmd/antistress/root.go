package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "antistress",
	Short: "Workplace-wellbeing registry and stress prediction log",
	Long: `Antistress maintains a registry of workers, stores their periodic
self-report feature snapshots and logs stress-level classifications
produced by an external predictive model.

  antistress migrate    apply schema migrations
  antistress seed       seed development data
  antistress serve      run the HTTP API`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if os.Getenv("ANTISTRESS_LOG_LEVEL") == "debug" {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}

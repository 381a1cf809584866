package main

import (
	"fmt"

	"antistress/config"
	"antistress/internal/database"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.InitConfig()
		if err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		db, err := database.New(cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		applied, err := db.Migrate()
		if err != nil {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}

		if applied == 0 {
			color.Yellow("schema is up to date")
		} else {
			color.Green("applied %d migration(s)", applied)
		}
		return nil
	},
}

package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/velotrace/zoneval/internal/api"
	"github.com/velotrace/zoneval/internal/config"
	"github.com/velotrace/zoneval/internal/database"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the persisted evaluation results over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("config load failed: %w", err)
		}

		db, err := database.Open(database.Config{Path: cfg.DBPath})
		if err != nil {
			return err
		}
		defer db.Close()

		router := api.SetupRouter(cfg, db)

		log.Printf("Server starting on port %s", cfg.Port)
		return router.Run(cfg.Port)
	},
}

package main

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/velotrace/zoneval/internal/config"
	"github.com/velotrace/zoneval/internal/database"
	"github.com/velotrace/zoneval/internal/models"
	"github.com/velotrace/zoneval/internal/pipeline"
	"github.com/velotrace/zoneval/internal/repository"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the evaluation pipeline and persist the results",
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

		runs := repository.NewRunRepository(db)
		runID, err := runs.CreateRun()
		if err != nil {
			return err
		}

		p, err := pipeline.New(cfg)
		if err != nil {
			return err
		}

		result, err := p.Run()
		if err != nil {
			if markErr := runs.MarkFailed(runID, err.Error()); markErr != nil {
				log.Printf("[Analyze] failed to record run failure: %v", markErr)
			}
			return err
		}

		if err := repository.NewInteractionRepository(db).InsertEvents(runID, result.Events); err != nil {
			return err
		}
		if err := repository.NewGridRepository(db).InsertCells(runID, result.GridCells); err != nil {
			return err
		}

		summary := map[string]interface{}{
			"counts":    result.Counts,
			"densities": result.DensitySummaries,
			"quadrat":   result.Quadrat,
		}
		summaryJSON, _ := json.Marshal(summary)

		if err := runs.MarkCompleted(runID, models.AnalysisRun{
			PointCount:          result.PointCount,
			TrajectoryCount:     result.TrajectoryCount,
			SkippedTrajectories: result.SkippedTrajectories,
			EventCount:          len(result.Events),
			ResultSummary:       string(summaryJSON),
		}); err != nil {
			return err
		}

		log.Printf("[Analyze] run %d completed: %d events, %d grid cells",
			runID, len(result.Events), len(result.GridCells))
		return nil
	},
}

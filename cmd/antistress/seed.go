package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"antistress/internal/app"
	"antistress/internal/database"
	"antistress/internal/models"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed development data through the sanctioned write path",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.New(baselineClassifier())
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}
		defer a.Close()

		return seed(cmd.Context(), a)
	},
}

func seed(ctx context.Context, a *app.App) error {
	workers := []struct {
		key     models.WorkerKey
		history bool
		level   models.StressLevel
	}{
		{
			key:     models.WorkerKey{FirstName: "Anna", LastName: "Ivanova", Surname: "Petrovna"},
			history: true,
			level:   models.StressLevelHigh,
		},
		{
			key:     models.WorkerKey{FirstName: "Olga", LastName: "Smirnova", Surname: "Igorevna"},
			history: false,
			level:   models.StressLevelLow,
		},
		{
			key:     models.WorkerKey{FirstName: "Ivan", LastName: "Petrov", Surname: "Sergeevich"},
			history: false,
			level:   models.StressLevelMedium,
		},
	}

	for _, worker := range workers {
		err := a.WorkerController.RegisterWorker(ctx, worker.key, worker.history)
		if errors.Is(err, database.ErrUniquenessViolation) {
			color.Yellow("worker %s %s already exists", worker.key.FirstName, worker.key.LastName)
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to seed worker: %w", err)
		}

		snapshot := models.Measurements{
			Anxiety:                   10,
			SelfEsteem:                15,
			Depression:                8,
			Headache:                  2,
			BloodPressure:             2,
			SleepQuality:              3,
			BreathingProblem:          1,
			NoiseLevel:                2,
			SocialSupport:             2,
			ExtracurricularActivities: 3,
		}
		if err := a.WorkerController.RecordFeatureSnapshot(ctx, worker.key, time.Now().UTC(), snapshot); err != nil {
			return fmt.Errorf("failed to seed feature snapshot: %w", err)
		}

		if err := a.WorkerController.RecordPrediction(ctx, worker.key, worker.level); err != nil {
			return fmt.Errorf("failed to seed prediction: %w", err)
		}

		color.Green("seeded worker %s %s", worker.key.FirstName, worker.key.LastName)
	}

	return nil
}

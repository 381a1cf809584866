package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"antistress/internal/app"
	"antistress/internal/controllers"
	"antistress/internal/handlers"
	"antistress/internal/models"

	"github.com/fatih/color"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.New(baselineClassifier())
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}
		defer a.Close()

		fiberApp := fiber.New(fiber.Config{
			AppName: "antistress",
		})

		if err := handlers.Router(fiberApp, a); err != nil {
			return fmt.Errorf("failed to set up routes: %w", err)
		}

		go func() {
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit
			color.Yellow("shutting down")
			_ = fiberApp.Shutdown()
		}()

		addr := fmt.Sprintf("%s:%d", a.Config.ServerHost, a.Config.ServerPort)
		color.Green("listening on http://%s", addr)
		return fiberApp.Listen(addr)
	},
}

// baselineClassifier is a stand-in for the external predictive model: it
// scores the normalized measurement sum into three bands.
// TODO: replace with an HTTP client for the model-serving endpoint once it
// is deployed.
func baselineClassifier() controllers.Classifier {
	return controllers.ClassifierFunc(func(_ context.Context, m models.Measurements) (models.StressLevel, error) {
		score := float64(m.Anxiety)/21 +
			float64(30-m.SelfEsteem)/30 +
			float64(m.Depression)/27 +
			float64(m.Headache)/5 +
			float64(m.BloodPressure-1)/2 +
			float64(5-m.SleepQuality)/5 +
			float64(m.BreathingProblem)/5 +
			float64(m.NoiseLevel)/5 +
			float64(3-m.SocialSupport)/3 +
			float64(5-m.ExtracurricularActivities)/5

		switch {
		case score < 10.0/3:
			return models.StressLevelLow, nil
		case score < 20.0/3:
			return models.StressLevelMedium, nil
		default:
			return models.StressLevelHigh, nil
		}
	})
}

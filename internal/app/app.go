package app

import (
	"antistress/config"
	"antistress/internal/controllers"
	"antistress/internal/database"
	"antistress/internal/logger"
	"antistress/internal/repositories"
	"antistress/internal/services"
)

type App struct {
	Database database.DB
	Config   config.Config

	// Services
	TransactionService *services.TransactionService

	// Repositories
	WorkerRepo           repositories.WorkerRepository
	WorkerInfoRepo       repositories.WorkerInfoRepository
	StressPredictionRepo repositories.StressPredictionRepository

	// Controllers
	WorkerController     *controllers.WorkerController
	AssessmentController *controllers.AssessmentController
}

// New builds the application from environment configuration. The classifier
// is the external predictive model; it is injected, never constructed here.
func New(classifier controllers.Classifier) (*App, error) {
	log := logger.New("app").Function("New")

	config, err := config.InitConfig()
	if err != nil {
		return &App{}, log.Err("failed to initialize config", err)
	}

	return NewWithConfig(config, classifier)
}

func NewWithConfig(config config.Config, classifier controllers.Classifier) (*App, error) {
	log := logger.New("app").Function("NewWithConfig")

	db, err := database.New(config)
	if err != nil {
		return &App{}, log.Err("failed to create database", err)
	}

	if _, err := db.Migrate(); err != nil {
		return &App{}, log.Err("failed to migrate database", err)
	}

	// Initialize services
	transactionService := services.NewTransactionService(db)

	// Initialize repositories
	workerRepo := repositories.NewWorker(db)
	workerInfoRepo := repositories.NewWorkerInfo(db)
	stressPredictionRepo := repositories.NewStressPrediction(db)

	// Initialize controllers with repositories and services
	workerController := controllers.NewWorkerController(
		workerRepo,
		workerInfoRepo,
		stressPredictionRepo,
		transactionService,
	)
	assessmentController := controllers.NewAssessmentController(workerController, classifier)

	app := &App{
		Database:             db,
		Config:               config,
		TransactionService:   transactionService,
		WorkerRepo:           workerRepo,
		WorkerInfoRepo:       workerInfoRepo,
		StressPredictionRepo: stressPredictionRepo,
		WorkerController:     workerController,
		AssessmentController: assessmentController,
	}

	if err := app.validate(); err != nil {
		return &App{}, log.Err("failed to validate app", err)
	}

	return app, nil
}

func (a *App) validate() error {
	log := logger.New("app").Function("validate")
	if a.Database.SQL == nil {
		return log.ErrMsg("database is nil")
	}

	if a.Config == (config.Config{}) {
		return log.ErrMsg("config is nil")
	}

	nilChecks := []any{
		a.TransactionService,
		a.WorkerRepo,
		a.WorkerInfoRepo,
		a.StressPredictionRepo,
		a.WorkerController,
		a.AssessmentController,
	}

	for _, check := range nilChecks {
		if check == nil {
			return log.ErrMsg("nil check failed")
		}
	}

	return nil
}

func (a *App) Close() error {
	return a.Database.Close()
}

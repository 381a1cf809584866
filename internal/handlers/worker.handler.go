package handlers

import (
	"errors"
	"fmt"

	"antistress/internal/app"
	"antistress/internal/controllers"
	"antistress/internal/database"
	"antistress/internal/logger"
	. "antistress/internal/models"

	"github.com/gofiber/fiber/v2"
)

// WorkerHandler exposes the four access procedures plus the assessment flow.
// Response messages stay in the source system's locale for compatibility.
type WorkerHandler struct {
	Handler
	controller *controllers.WorkerController
	assessment *controllers.AssessmentController
}

func NewWorkerHandler(app *app.App, router fiber.Router) *WorkerHandler {
	log := logger.New("handlers").File("worker_handler")
	return &WorkerHandler{
		controller: app.WorkerController,
		assessment: app.AssessmentController,
		Handler: Handler{
			log:    log,
			router: router,
		},
	}
}

func (h *WorkerHandler) Register() {
	h.router.Post("/create_worker", h.createWorker)
	h.router.Delete("/delete_worker", h.deleteWorker)
	h.router.Post("/worker_features", h.recordFeatures)
	h.router.Post("/worker_prediction", h.recordPrediction)
	h.router.Post("/worker_stress_level", h.workerStressLevel)
}

// statusForViolation maps the storage violation taxonomy onto HTTP statuses.
func statusForViolation(err error) int {
	switch {
	case errors.Is(err, database.ErrUniquenessViolation):
		return fiber.StatusConflict
	case errors.Is(err, database.ErrReferentialIntegrityViolation):
		return fiber.StatusNotFound
	case errors.Is(err, database.ErrRangeViolation),
		errors.Is(err, database.ErrDomainViolation):
		return fiber.StatusUnprocessableEntity
	}
	return fiber.StatusInternalServerError
}

func (h *WorkerHandler) createWorker(c *fiber.Ctx) error {
	log := h.log.Function("createWorker")

	var request CreateWorkerRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse create worker request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "failed to parse create worker request"})
	}

	if err := h.controller.RegisterWorker(c.Context(), request.WorkerKey, request.MentalHealthHistory); err != nil {
		log.Er("failed to create worker", err)
		return c.Status(statusForViolation(err)).
			JSON(fiber.Map{"message": "Не удалось добавить работника", "error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": fmt.Sprintf("Работник %s %s был успешно добавлен", request.FirstName, request.LastName),
	})
}

func (h *WorkerHandler) deleteWorker(c *fiber.Ctx) error {
	log := h.log.Function("deleteWorker")

	var request DeleteWorkerRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse delete worker request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "failed to parse delete worker request"})
	}

	rowsAffected, err := h.controller.DeregisterWorker(c.Context(), request.WorkerKey)
	if err != nil {
		log.Er("failed to delete worker", err)
		return c.Status(statusForViolation(err)).
			JSON(fiber.Map{"message": "Не удалось удалить работника", "error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Работник %s %s был успешно удален", request.FirstName, request.LastName),
		"deleted": rowsAffected,
	})
}

func (h *WorkerHandler) recordFeatures(c *fiber.Ctx) error {
	log := h.log.Function("recordFeatures")

	var request WorkerFeaturesRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse worker features request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "failed to parse worker features request"})
	}

	infoDate, err := request.InfoTime()
	if err != nil {
		log.Er("failed to parse info date", err, "infoDate", request.InfoDate)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "info_date must use format " + InfoDateLayout})
	}

	if err := h.controller.RecordFeatureSnapshot(c.Context(), request.WorkerKey, infoDate, request.Measurements); err != nil {
		log.Er("failed to record feature snapshot", err)
		return c.Status(statusForViolation(err)).
			JSON(fiber.Map{"message": "Не удалось сохранить показатели работника", "error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Показатели работника были успешно сохранены",
	})
}

// recordPrediction persists a classification produced by an external caller.
// The label is passed through untouched; the store's enum check decides
// whether it belongs to the closed set.
func (h *WorkerHandler) recordPrediction(c *fiber.Ctx) error {
	log := h.log.Function("recordPrediction")

	var request WorkerPredictionRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse worker prediction request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "failed to parse worker prediction request"})
	}

	if err := h.controller.RecordPrediction(c.Context(), request.WorkerKey, StressLevel(request.StressLevel)); err != nil {
		log.Er("failed to record prediction", err)
		return c.Status(statusForViolation(err)).
			JSON(fiber.Map{"message": "Не удалось сохранить прогноз", "error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Прогноз был успешно сохранен",
	})
}

func (h *WorkerHandler) workerStressLevel(c *fiber.Ctx) error {
	log := h.log.Function("workerStressLevel")

	var request WorkerFeaturesRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse worker features request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "failed to parse worker features request"})
	}

	infoDate, err := request.InfoTime()
	if err != nil {
		log.Er("failed to parse info date", err, "infoDate", request.InfoDate)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "info_date must use format " + InfoDateLayout})
	}

	level, err := h.assessment.AssessStressLevel(c.Context(), request.WorkerKey, infoDate, request.Measurements)
	if err != nil {
		log.Er("failed to assess stress level", err)
		return c.Status(statusForViolation(err)).
			JSON(fiber.Map{"message": "Не удалось сохранить прогноз", "error": err.Error()})
	}

	return c.JSON(WorkerPredictionResponse{
		WorkerKey:   request.WorkerKey,
		StressLevel: level.Label(),
	})
}

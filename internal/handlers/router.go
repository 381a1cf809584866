package handlers

import (
	"antistress/internal/app"
	"antistress/internal/handlers/middleware"
	"antistress/internal/logger"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	log    logger.Logger
	router fiber.Router
}

// Router wires the procedure surface. Paths mirror the original service for
// caller compatibility.
func Router(router fiber.Router, app *app.App) error {
	router.Use(middleware.RequestID())

	HealthHandler(router)
	NewWorkerHandler(app, router).Register()

	return nil
}

package handlers

import "github.com/gofiber/fiber/v2"

func HealthHandler(router fiber.Router) {
	router.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Сервер запущен"})
	})
}

package activity

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, collector *Collector, authMiddleware fiber.Handler) {
	r.Get("/records", authMiddleware, func(c *fiber.Ctx) error {
		email, _ := c.Locals("email").(string)
		if email == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing identity")
		}

		timeframe, ok := ParseTimeframe(c.Query("timeframe"))
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "timeframe must be week, month or year")
		}

		records, err := collector.Collect(c.Context(), email, timeframe)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(fiber.Map{"timeframe": timeframe, "records": records})
	})

	r.Post("/log", authMiddleware, func(c *fiber.Ctx) error {
		email, _ := c.Locals("email").(string)
		if email == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing identity")
		}

		var body struct {
			Date      string   `json:"date"`
			Exercises []string `json:"exercises"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}

		rec, err := collector.LogExercises(c.Context(), email, body.Date, body.Exercises)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(rec)
	})
}

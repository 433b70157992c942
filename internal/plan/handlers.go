package plan

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Get("/", authMiddleware, func(c *fiber.Ctx) error {
		email, _ := c.Locals("email").(string)
		if email == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing identity")
		}

		weekly, err := svc.Get(c.Context(), email)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if weekly == nil {
			return fiber.NewError(fiber.StatusNotFound, "no weekly plan")
		}
		return c.JSON(weekly)
	})

	r.Put("/", authMiddleware, func(c *fiber.Ctx) error {
		email, _ := c.Locals("email").(string)
		if email == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing identity")
		}

		var weekly WeeklyPlan
		if err := c.BodyParser(&weekly); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}
		if err := svc.Save(c.Context(), email, weekly); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(weekly)
	})
}

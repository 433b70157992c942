package profile

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Get("/", authMiddleware, func(c *fiber.Ctx) error {
		email, _ := c.Locals("email").(string)
		if email == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing identity")
		}
		return c.JSON(svc.Reconcile(c.Context(), email))
	})

	r.Put("/", authMiddleware, func(c *fiber.Ctx) error {
		email, _ := c.Locals("email").(string)
		if email == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing identity")
		}

		var snapshot Snapshot
		if err := c.BodyParser(&snapshot); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}

		merged, err := svc.Save(c.Context(), email, snapshot)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return c.JSON(merged)
	})
}

package recommend

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Get("/", authMiddleware, func(c *fiber.Ctx) error {
		email, _ := c.Locals("email").(string)
		if email == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing identity")
		}

		entries, err := svc.History(c.Context(), email)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(fiber.Map{"history": entries})
	})

	r.Post("/", authMiddleware, func(c *fiber.Ctx) error {
		email, _ := c.Locals("email").(string)
		if email == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing identity")
		}

		var body struct {
			Text      string `json:"text"`
			Mode      string `json:"mode"`
			AgentType string `json:"agent_type"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}

		entry, err := svc.Append(c.Context(), email, body.Text, body.Mode, body.AgentType)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(entry)
	})
}

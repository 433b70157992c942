package progress

import (
	"time"

	"backend-fitadvisor/internal/activity"
	"backend-fitadvisor/internal/plan"
	"backend-fitadvisor/internal/recommend"

	"github.com/gofiber/fiber/v2"
)

type Service struct {
	collector *activity.Collector
	plans     *plan.Service
	history   *recommend.Service
	now       func() time.Time
}

func NewService(collector *activity.Collector, plans *plan.Service, history *recommend.Service) *Service {
	return &Service{
		collector: collector,
		plans:     plans,
		history:   history,
		now:       time.Now,
	}
}

func (s *Service) Metrics(c *fiber.Ctx, email string, timeframe activity.Timeframe) (Metrics, []activity.ActivityRecord, error) {
	records, err := s.collector.Collect(c.Context(), email, timeframe)
	if err != nil {
		return Metrics{}, nil, err
	}
	historyLen := s.history.HistoryLen(c.Context(), email)
	return ComputeMetrics(records, timeframe, historyLen, s.now()), records, nil
}

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Get("/metrics", authMiddleware, func(c *fiber.Ctx) error {
		email, _ := c.Locals("email").(string)
		if email == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing identity")
		}

		timeframe, ok := activity.ParseTimeframe(c.Query("timeframe"))
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "timeframe must be week, month or year")
		}

		metrics, _, err := svc.Metrics(c, email, timeframe)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(fiber.Map{"timeframe": timeframe, "metrics": metrics})
	})

	r.Get("/charts", authMiddleware, func(c *fiber.Ctx) error {
		email, _ := c.Locals("email").(string)
		if email == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing identity")
		}

		timeframe, ok := activity.ParseTimeframe(c.Query("timeframe"))
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "timeframe must be week, month or year")
		}

		metrics, records, err := svc.Metrics(c, email, timeframe)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		// A missing or unreadable plan falls back to the placeholder
		// distribution inside BuildCharts.
		weekly, _ := svc.plans.Get(c.Context(), email)

		charts := BuildCharts(records, metrics, weekly, timeframe, svc.now())
		return c.JSON(fiber.Map{"timeframe": timeframe, "metrics": metrics, "charts": charts})
	})
}

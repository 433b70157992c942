package server

import (
	"backend-fitadvisor/internal/activity"
	"backend-fitadvisor/internal/auth"
	"backend-fitadvisor/internal/config"
	"backend-fitadvisor/internal/plan"
	"backend-fitadvisor/internal/profile"
	"backend-fitadvisor/internal/progress"
	"backend-fitadvisor/internal/recommend"
	"backend-fitadvisor/internal/store"
	"backend-fitadvisor/internal/stream"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	App    *fiber.App
	Cfg    config.Config
	DB     *pgxpool.Pool
	Redis  *redis.Client
	Store  *store.Store
	Stream *stream.Hub
}

func NewServer(cfg config.Config, db *pgxpool.Pool, redisClient *redis.Client) *Server {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	s := &Server{
		App:    app,
		Cfg:    cfg,
		DB:     db,
		Redis:  redisClient,
		Store:  store.New(redisClient),
		Stream: stream.NewHub(redisClient),
	}

	registerRoutes(s)
	return s
}

func registerRoutes(s *Server) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	jwtMiddleware := auth.JWTMiddleware(s.Cfg.JWTSecret)

	collector := activity.NewCollector(s.Store)
	plans := plan.NewService(s.Store)
	history := recommend.NewService(s.Store, s.Stream)

	auth.RegisterRoutes(s.App.Group("/auth"), auth.NewService(s.Cfg.JWTSecret, s.DB, s.Store))
	activity.RegisterRoutes(s.App.Group("/activity"), collector, jwtMiddleware)
	progress.RegisterRoutes(s.App.Group("/progress"), progress.NewService(collector, plans, history), jwtMiddleware)
	profile.RegisterRoutes(s.App.Group("/profile"), profile.NewService(s.Store, s.Cfg.ProfileServiceURL, s.Cfg.ProfileFetchTimeout), jwtMiddleware)
	plan.RegisterRoutes(s.App.Group("/plan"), plans, jwtMiddleware)
	recommend.RegisterRoutes(s.App.Group("/recommendations"), history, jwtMiddleware)
	stream.RegisterRoutes(s.App.Group("/stream"), s.Stream)
}

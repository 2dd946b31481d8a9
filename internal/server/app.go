package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"alfredoptarigan/hr-toolkit/internal/handlers"
)

const (
	appName    = "HR Toolkit API"
	appVersion = "1.0.0"
)

type Options struct {
	BodyLimit int
	AccessLog bool
	Resume    *handlers.ResumeHandler
	Feedback  *handlers.FeedbackHandler
}

// New builds the fiber app with middleware and all routes registered.
func New(opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               appName,
		ReadTimeout:           60 * time.Second,
		WriteTimeout:          60 * time.Second,
		BodyLimit:             opts.BodyLimit,
		ErrorHandler:          customErrorHandler,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	if opts.AccessLog {
		app.Use(logger.New(logger.Config{
			Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
			TimeFormat: "2006-01-02 15:04:05",
		}))
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/resume/analyze", opts.Resume.HandleAnalyze)
	api.Post("/feedback/analyze", opts.Feedback.HandleAnalyze)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": appName,
			"version": appVersion,
			"endpoints": []string{
				"GET /api/v1/health",
				"POST /api/v1/resume/analyze",
				"POST /api/v1/feedback/analyze",
			},
		})
	})

	return app
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}

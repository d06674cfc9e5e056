package api

import (
	"youthy-chat/docs"
	"youthy-chat/internal/api/handlers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

func SetupRouter(
	chatHandler *handlers.ChatHandler,
	policyHandler *handlers.PolicyHandler,
	healthHandler *handlers.HealthHandler,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(logger.New())

	// Importing docs registers the Swagger spec via init()
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Chat API
	v1 := app.Group("/api/v1")
	v1.Get("/health", healthHandler.Health)

	chat := v1.Group("/chat")
	chat.Post("", chatHandler.Chat)
	chat.Get("/categories", chatHandler.Categories)
	chat.Get("/suggestions", chatHandler.Suggestions)
	chat.Post("/refresh", chatHandler.Refresh)

	// Policy browsing API
	app.Get("/api/policies/:category", policyHandler.ListByCategory)

	return app
}

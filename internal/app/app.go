package app

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"nougat/internal/handlers"
	u "nougat/internal/utils"
)

// ErrorResponse is the JSON envelope for every framework-level failure.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the HTTP status code and a human readable message.
type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// SetupApp creates and configures a new Fiber app instance
func SetupApp(cfg u.Config, rdb *redis.Client) *fiber.App {
	app := fiber.New(fiber.Config{
		Prefork:               cfg.Server.Prefork,
		DisableStartupMessage: true,
		BodyLimit:             cfg.Limits.MaxUploadBytes,
		ErrorHandler:          errorHandler,
	})

	RegisterMiddleware(app, cfg, rdb)
	RegisterRoutes(app, cfg)

	// Ensure all responses, including 404s, return JSON
	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not Found")
	})

	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "Internal Server Error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	}

	u.Warn("Request failed", "path", c.Path(), "status", code, "message", msg)

	return c.Status(code).JSON(ErrorResponse{Error: ErrorBody{Code: code, Message: msg}})
}

// RegisterRoutes mounts the status and extraction handlers.
func RegisterRoutes(app *fiber.App, cfg u.Config) {
	svc := handlers.NewExtractionService(cfg)

	app.Get("/", svc.HandleStatus)
	app.Post("/extract", svc.HandleExtract)
}

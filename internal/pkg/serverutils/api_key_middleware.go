package serverutils

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// ApiKeyMiddleware guards a route group with a static X-API-Key header.
// An empty configured key disables the check (development mode).
func ApiKeyMiddleware(apiKey string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if apiKey == "" {
			return ctx.Next()
		}
		provided := ctx.Get("X-API-Key")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Invalid API key"})
		}
		return ctx.Next()
	}
}

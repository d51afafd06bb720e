package middleware

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"lapak/internal/services"
)

// AuthRequired is a Fiber middleware that gates a route behind a valid
// bearer token. A missing or malformed Authorization header yields 401
// with an empty body; a token that fails verification yields 403 with an
// empty body. On success the decoded seller identity is stored in the
// request locals for downstream handlers.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.SendStatus(fiber.StatusUnauthorized)
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.SendStatus(fiber.StatusUnauthorized)
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			log.Printf("JWT validation failed: %v", err)
			return c.SendStatus(fiber.StatusForbidden)
		}

		// Store claims in Fiber context for subsequent handlers
		c.Locals("seller_id", claims["seller_id"])
		c.Locals("username", claims["username"])

		return c.Next()
	}
}

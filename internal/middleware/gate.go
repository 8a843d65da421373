package middleware

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/vlad-d/RiseOnBack/internal/models"
)

type flowStateReader interface {
	State(ctx context.Context) (*models.AppState, error)
}

// AuthGate guards the post-auth surface with the persisted opaque boolean:
// no token protocol, just the is_authenticated flag the outer flow maintains.
func AuthGate(flow flowStateReader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		state, err := flow.State(c.Context())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to read app state",
			})
		}
		if !state.IsAuthenticated {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Sign in first",
			})
		}
		return c.Next()
	}
}

package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetUserUUID reads the authenticated actor id placed in Locals by the auth
// middleware.
func GetUserUUID(c *fiber.Ctx) (uuid.UUID, error) {
	raw := c.Locals("user_id")
	str, ok := raw.(string)
	if !ok || str == "" {
		return uuid.Nil, errors.New("missing user id in context")
	}
	id, err := uuid.Parse(str)
	if err != nil {
		return uuid.Nil, errors.New("invalid user id in context")
	}
	return id, nil
}

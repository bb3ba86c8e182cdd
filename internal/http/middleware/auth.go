package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// UserIDLocalKey is the key under which Auth stores the authenticated user id.
const UserIDLocalKey = "user_id"

// TokenParser verifies a bearer token and returns the user id it was issued for.
type TokenParser interface {
	Parse(token string) (string, error)
}

// Auth rejects requests without a valid "Authorization: Bearer <token>" header
// with 401 and stores the user id in locals for the handlers.
func Auth(tokens TokenParser) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			return unauthorized(c, "TOKEN_MISSING", "authorization token is required")
		}

		userID, err := tokens.Parse(strings.TrimSpace(token))
		if err != nil {
			return unauthorized(c, "TOKEN_INVALID", "invalid or expired token")
		}

		c.Locals(UserIDLocalKey, userID)
		return c.Next()
	}
}

// UserID returns the id stored by Auth, or "" on unauthenticated routes.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(UserIDLocalKey).(string)
	return id
}

func unauthorized(c *fiber.Ctx, code, message string) error {
	return abort(c, fiber.StatusUnauthorized, code, message)
}

// abort writes the same error envelope as the handlers.
func abort(c *fiber.Ctx, status int, code, message string) error {
	rid, _ := c.Locals(RequestIDLocalKey).(string)
	return c.Status(status).JSON(fiber.Map{
		"request_id": rid,
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// HeaderUserID carries the caller's claimed identity. The value is trusted
// as-is; there is no authentication tier in front of it.
const HeaderUserID = "X-Sharer-User-Id"

const localsUserID = "userID"

// Identity is a Fiber middleware that requires a positive integer
// X-Sharer-User-Id header and stores it in the request context.
func Identity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get(HeaderUserID)
		if raw == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": HeaderUserID + " header is required",
			})
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": HeaderUserID + " header must be a positive integer",
			})
		}
		c.Locals(localsUserID, id)
		return c.Next()
	}
}

// UserID returns the identity stored by Identity.
func UserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(localsUserID).(int64)
	return id
}

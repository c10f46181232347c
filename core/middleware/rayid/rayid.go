package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// HeaderName is the response header carrying the ray id.
	HeaderName = "X-Ray-ID"
	// LocalsKey is the fiber locals key holding the ray id.
	LocalsKey = "ray_id"
)

// New creates a middleware that tags every request with a ray id.
// An incoming X-Ray-ID header is reused so callers can correlate logs.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderName)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalsKey, id)
		c.Set(HeaderName, id)
		return c.Next()
	}
}

// FromCtx returns the ray id of the request, or an empty string.
func FromCtx(c *fiber.Ctx) string {
	if id, ok := c.Locals(LocalsKey).(string); ok {
		return id
	}
	return ""
}

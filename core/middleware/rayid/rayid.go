package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response header carrying the request's RayID.
const HeaderName = "X-Ray-Id"

// New creates a middleware that assigns every request a RayID. An incoming
// X-Ray-Id header is honored so upstream proxies can thread their own IDs
// through; otherwise a fresh UUID is generated. The ID is stored in
// c.Locals("ray_id") for handlers and loggers and echoed in the response.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}

		c.Locals("ray_id", rid)
		c.Set(HeaderName, rid)

		return c.Next()
	}
}

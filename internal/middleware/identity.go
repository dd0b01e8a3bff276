package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sekolahku/user-service/internal/config"
	"github.com/sekolahku/user-service/internal/dto"
)

// IdentityHeader carries the caller id asserted by the API gateway. The
// value is trusted verbatim; token verification happens upstream.
const IdentityHeader = "X-User-ID"

const identityKey = "identity"

// WithIdentity attaches the asserted caller identity to the request. In
// strict deployments a missing header rejects the request before the
// handler runs; otherwise the caller is treated as SYSTEM.
func WithIdentity(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		callerID := c.Get(IdentityHeader)
		if callerID == "" {
			if cfg.StrictIdentity() {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
					Success: false,
					Message: "Unauthorized: User ID is missing",
				})
			}
			callerID = "SYSTEM"
		}
		c.Locals(identityKey, callerID)
		return c.Next()
	}
}

// Identity returns the caller identity attached by WithIdentity, defaulting
// to SYSTEM on routes that skip the middleware.
func Identity(c *fiber.Ctx) string {
	if id, ok := c.Locals(identityKey).(string); ok && id != "" {
		return id
	}
	return "SYSTEM"
}

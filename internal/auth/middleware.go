package auth

import (
	"strings"

	"github.com/buckery/backend/internal/models"
	"github.com/buckery/backend/internal/response"

	"github.com/gofiber/fiber/v2"
)

// TokenKeyFromHeader extracts the opaque key from an
// "Authorization: Token <key>" header. Empty string when absent or malformed.
func TokenKeyFromHeader(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Token" {
		return ""
	}
	return parts[1]
}

func TokenProtected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := TokenKeyFromHeader(c)
		if key == "" {
			return response.Unauthorized(c, "Missing authorization token")
		}

		user, err := UserFromToken(key)
		if err != nil {
			return response.Unauthorized(c, "Invalid token")
		}

		if !user.IsActive {
			return response.AccountDisabled(c)
		}

		c.Locals("user_id", user.ID)
		c.Locals("user", user)
		return c.Next()
	}
}

// TokenOptional resolves the caller when a valid token is presented but lets
// anonymous requests through. Public catalog reads use it to widen results
// for staff.
func TokenOptional() fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := TokenKeyFromHeader(c)
		if key != "" {
			if user, err := UserFromToken(key); err == nil && user.IsActive {
				c.Locals("user_id", user.ID)
				c.Locals("user", user)
			}
		}
		return c.Next()
	}
}

func StaffProtected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := c.Locals("user").(*models.User)
		if !user.HasStaffAccess() {
			return response.Forbidden(c, "Staff access required")
		}
		return c.Next()
	}
}

func AdminProtected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := c.Locals("user").(*models.User)
		if !user.IsSuperuser {
			return response.Forbidden(c, "Admin access required")
		}
		return c.Next()
	}
}

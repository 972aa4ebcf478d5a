package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kirankuma274/feedback-collection-system/internal/apperr"
	"github.com/kirankuma274/feedback-collection-system/internal/models"
)

// AdminMiddleware ensures that only users with the admin role can
// access admin routes. It must run after AuthMiddleware: a request
// with a valid non-admin identity is rejected with 403, never 401.
func AdminMiddleware(c *fiber.Ctx) error {
	user, ok := CurrentUser(c)
	if !ok {
		return apperr.Respond(c, apperr.Unauthenticated("Missing token"))
	}
	if user.Role != models.RoleAdmin {
		return apperr.Respond(c, apperr.Forbidden("Access denied. Admins only."))
	}
	return c.Next()
}

package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/kirankuma274/feedback-collection-system/internal/apperr"
	"github.com/kirankuma274/feedback-collection-system/internal/models"
	"github.com/kirankuma274/feedback-collection-system/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// localUserKey is where the authenticated user is stored on the
// request context for downstream handlers.
const localUserKey = "auth_user"

// AuthMiddleware validates the bearer token and resolves its subject
// to a live user record, which it attaches to the request context.
func AuthMiddleware(users store.UserStore, jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return apperr.Respond(c, apperr.Unauthenticated("Missing token"))
		}

		// Ensure it's a Bearer token
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return apperr.Respond(c, apperr.Unauthenticated("Invalid token format"))
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			return apperr.Respond(c, apperr.Unauthenticated("Invalid or expired token"))
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return apperr.Respond(c, apperr.Unauthenticated("Invalid token claims"))
		}
		subject, ok := claims["user_id"].(string)
		if !ok {
			return apperr.Respond(c, apperr.Unauthenticated("Invalid token payload"))
		}
		userID, err := primitive.ObjectIDFromHex(subject)
		if err != nil {
			return apperr.Respond(c, apperr.Unauthenticated("Invalid token payload"))
		}

		// The token can outlive the account it was issued for.
		user, err := users.FindByID(c.Context(), userID)
		if errors.Is(err, store.ErrNotFound) {
			return apperr.Respond(c, apperr.NotFound("User not found"))
		}
		if err != nil {
			return apperr.Respond(c, apperr.Internal("Failed to resolve user"))
		}

		c.Locals(localUserKey, user)
		return c.Next()
	}
}

// CurrentUser returns the identity attached by AuthMiddleware. The
// second result is false on routes where the middleware did not run.
func CurrentUser(c *fiber.Ctx) (models.User, bool) {
	user, ok := c.Locals(localUserKey).(models.User)
	return user, ok
}

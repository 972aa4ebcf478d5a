package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/kirankuma274/feedback-collection-system/internal/apperr"
)

const (
	// 10 submissions per client per 15 minutes.
	submissionLimit  = 10
	submissionWindow = 15 * time.Minute
)

// SubmissionRateLimit caps feedback submissions per client IP using a
// sliding window. A nil storage uses in-process counters; a distributed
// deployment can pass a shared fiber.Storage instead.
func SubmissionRateLimit(storage fiber.Storage) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:               submissionLimit,
		Expiration:        submissionWindow,
		LimiterMiddleware: limiter.SlidingWindow{},
		Storage:           storage,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return apperr.Respond(c, apperr.RateLimited("Too many feedbacks submitted. Please try again later."))
		},
	})
}

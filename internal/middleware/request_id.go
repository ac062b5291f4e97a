package middleware

import (
	"camonk/pkg/utils"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	RequestIDKey = "X-Request-ID"

	maxRequestIDLength = 128
)

// NewRequestIDMiddleware keeps a caller's X-Request-ID when it is short printable ASCII and
// mints a ULID otherwise. The id is stored in Locals and echoed on the response.
func NewRequestIDMiddleware() fiber.Handler {
	ids := utils.New()

	return func(c *fiber.Ctx) error {
		requestID := c.Get(RequestIDKey)

		if !acceptableRequestID(requestID) {
			generated, err := ids.NewULIDFromTimestamp(time.Now())
			if err != nil {
				generated = "unknown"
			}
			requestID = generated
		}

		c.Locals(RequestIDKey, requestID)
		c.Set(RequestIDKey, requestID)

		return c.Next()
	}
}

func acceptableRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] <= ' ' || id[i] > '~' {
			return false
		}
	}
	return true
}

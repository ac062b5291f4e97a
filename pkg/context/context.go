package context

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

type ctxKey string

const RequestIDKey = "request_id"

const fiberRequestIDKey = "X-Request-ID"

var requestIDCtxKey = ctxKey(RequestIDKey)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDCtxKey, requestID)
}

func GetRequestID(ctx context.Context) string {
	if ctx == nil {
		return "unknown"
	}
	requestID, ok := ctx.Value(requestIDCtxKey).(string)
	if !ok || requestID == "" {
		return "unknown"
	}
	return requestID
}

// FromFiberCtx derives a context from the request's user context, tagged with the
// request id set by the request-id middleware.
func FromFiberCtx(c *fiber.Ctx) context.Context {
	ctx := c.UserContext()

	requestID, ok := c.Locals(fiberRequestIDKey).(string)
	if !ok || requestID == "" {
		requestID = c.Get(fiberRequestIDKey)

		if requestID == "" {
			requestID = "unknown"
		}
	}

	return WithRequestID(ctx, requestID)
}

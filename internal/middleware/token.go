package middleware

import (
	jwtPkg "camonk/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// NewServiceTokenMiddleware guards blog writes on the API server. It is a no-op while
// JWT_SERVICE_TOKEN_SECRET is unset.
func (m *middleware) NewServiceTokenMiddleware(ctx *fiber.Ctx) error {
	if !jwtPkg.ServiceTokenEnabled() {
		return ctx.Next()
	}

	requestID := m.GetRequestID(ctx)

	token, err := jwtPkg.VerifyTokenHeader(ctx, jwtPkg.ServiceTokenSecret)
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"path":       ctx.Path(),
			"client_ip":  ctx.IP(),
			"error":      err.Error(),
		}).Warn("Service token verification failed")
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized, service token invalid or expired",
		})
	}

	if !jwtPkg.HasScope(token, jwtPkg.WriteScope) {
		m.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"path":       ctx.Path(),
		}).Warn("Service token lacks write scope")
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Forbidden, missing " + jwtPkg.WriteScope + " scope",
		})
	}

	return ctx.Next()
}

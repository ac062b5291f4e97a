package config

import (
	"camonk/pkg/handlerUtil"
	"errors"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

func NewFiber(logger *logrus.Logger, appName string) *fiber.App {
	app := fiber.New(
		fiber.Config{
			AppName:           appName,
			BodyLimit:         4 * 1024 * 1024,
			DisableKeepalive:  false,
			StrictRouting:     false,
			CaseSensitive:     true,
			EnablePrintRoutes: false,
			JSONEncoder:       jsoniter.Marshal,
			JSONDecoder:       jsoniter.Unmarshal,
			ErrorHandler: func(c *fiber.Ctx, err error) error {
				code := fiber.StatusInternalServerError
				var fiberErr *fiber.Error
				if errors.As(err, &fiberErr) {
					code = fiberErr.Code
				}
				if code >= fiber.StatusInternalServerError {
					logger.WithFields(logrus.Fields{
						"path":  c.Path(),
						"error": err.Error(),
					}).Error("Unhandled error")
				}
				return c.Status(code).JSON(handlerUtil.ErrorResponse{Error: err.Error()})
			},
		})

	return app
}

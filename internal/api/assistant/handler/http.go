package assistantHandler

import (
	assistantService "camonk/internal/api/assistant/service"
	"camonk/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

type AssistantHandler struct {
	log              *logrus.Logger
	validator        *validator.Validate
	middleware       middleware.Middleware
	assistantService assistantService.IAssistantService
}

func New(
	log *logrus.Logger,
	validator *validator.Validate,
	middleware middleware.Middleware,
	as assistantService.IAssistantService,
) *AssistantHandler {
	return &AssistantHandler{
		log:              log,
		validator:        validator,
		middleware:       middleware,
		assistantService: as,
	}
}

func (h *AssistantHandler) Start(srv fiber.Router) {
	wsMiddleware := func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}

	assistant := srv.Group("/assistant", h.middleware.NewRateLimiter)
	assistant.Post("/magic-write", h.MagicWrite)
	assistant.Use("/ws", wsMiddleware)
	assistant.Get("/ws", websocket.New(h.handleMagicWriteWebSocket))
}

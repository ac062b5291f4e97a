package toolsHandler

import (
	toolsService "camonk/internal/api/tools/service"
	"camonk/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ToolsHandler struct {
	log          *logrus.Logger
	validator    *validator.Validate
	middleware   middleware.Middleware
	toolsService toolsService.IToolsService
}

func New(
	log *logrus.Logger,
	validator *validator.Validate,
	middleware middleware.Middleware,
	ts toolsService.IToolsService,
) *ToolsHandler {
	return &ToolsHandler{
		log:          log,
		validator:    validator,
		middleware:   middleware,
		toolsService: ts,
	}
}

func (h *ToolsHandler) Start(srv fiber.Router) {
	tools := srv.Group("/tools")
	tools.Post("/income-tax", h.CalculateIncomeTax)
}

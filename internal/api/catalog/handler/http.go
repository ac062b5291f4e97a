package catalogHandler

import (
	catalogService "camonk/internal/api/catalog/service"
	"camonk/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CatalogHandler struct {
	log            *logrus.Logger
	middleware     middleware.Middleware
	catalogService catalogService.ICatalogService
}

func New(log *logrus.Logger, middleware middleware.Middleware, cs catalogService.ICatalogService) *CatalogHandler {
	return &CatalogHandler{
		log:            log,
		middleware:     middleware,
		catalogService: cs,
	}
}

func (h *CatalogHandler) Start(srv fiber.Router) {
	catalog := srv.Group("/catalog")
	catalog.Get("/practice-tests", h.GetPracticeTests)
	catalog.Get("/jobs", h.GetJobs)
	catalog.Get("/profile", h.GetProfile)
}

func (h *CatalogHandler) GetPracticeTests(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(h.catalogService.GetPracticeTests())
}

func (h *CatalogHandler) GetJobs(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(h.catalogService.GetJobs())
}

func (h *CatalogHandler) GetProfile(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(h.catalogService.GetProfile())
}

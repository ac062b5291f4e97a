package web

import (
	assistantService "camonk/internal/api/assistant/service"
	blogsService "camonk/internal/api/blog/service"
	catalogService "camonk/internal/api/catalog/service"
	toolsService "camonk/internal/api/tools/service"
	"camonk/internal/middleware"
	"camonk/pkg/utils"
	"html/template"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Handler serves the portal's HTML pages.
type Handler struct {
	log              *logrus.Logger
	validator        *validator.Validate
	middleware       middleware.Middleware
	blogsService     blogsService.IBlogsService
	assistantService assistantService.IAssistantService
	toolsService     toolsService.IToolsService
	catalogService   catalogService.ICatalogService
	templates        map[string]*template.Template
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	bs blogsService.IBlogsService,
	as assistantService.IAssistantService,
	ts toolsService.IToolsService,
	cs catalogService.ICatalogService,
	u utils.IUtils,
) (*Handler, error) {
	templates, err := newTemplateCache(u)
	if err != nil {
		return nil, err
	}

	return &Handler{
		log:              log,
		validator:        validate,
		middleware:       middleware,
		blogsService:     bs,
		assistantService: as,
		toolsService:     ts,
		catalogService:   cs,
		templates:        templates,
	}, nil
}

func (h *Handler) Start(srv fiber.Router) {
	srv.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/blog", fiber.StatusFound)
	})

	srv.Get("/blog", h.BlogPage)
	srv.Get("/blog/new", h.ComposePage)
	srv.Post("/blog/new", h.limitMagicWrite, h.SubmitCompose)

	srv.Get("/tools", h.ToolsPage)
	srv.Get("/practice", h.PracticePage)
	srv.Get("/jobs", h.JobsPage)
	srv.Get("/profile", h.ProfilePage)
}

// limitMagicWrite applies the per-IP limit to form posts that call the text generator.
// Publishing is not limited.
func (h *Handler) limitMagicWrite(c *fiber.Ctx) error {
	if c.Query("action") != "magic-write" {
		return c.Next()
	}
	return h.middleware.NewRateLimiter(c)
}

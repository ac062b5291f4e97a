package blogHandler

import (
	blogsService "camonk/internal/api/blog/service"
	"camonk/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BlogsHandler struct {
	log           *logrus.Logger
	validator     *validator.Validate
	middleware    middleware.Middleware
	blogsService  blogsService.IBlogsService
	protectWrites bool
}

// New builds the JSON blog handler. protectWrites puts creates behind the service token check,
// which the blog API server enables and the portal does not.
func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	bs blogsService.IBlogsService,
	protectWrites bool,
) *BlogsHandler {
	return &BlogsHandler{
		log:           log,
		validator:     validate,
		middleware:    middleware,
		blogsService:  bs,
		protectWrites: protectWrites,
	}
}

func (h *BlogsHandler) Start(srv fiber.Router) {
	blogs := srv.Group("/blogs")

	blogs.Get("", h.GetAllBlogs)
	blogs.Get("/:id", h.GetBlogByID)

	if h.protectWrites {
		blogs.Post("", h.middleware.NewServiceTokenMiddleware, h.CreateBlog)
	} else {
		blogs.Post("", h.CreateBlog)
	}
}

package blogHandler

import (
	"camonk/internal/api/blog"
	contextPkg "camonk/pkg/context"
	"camonk/pkg/handlerUtil"
	"camonk/pkg/log"
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

func (h *BlogsHandler) CreateBlog(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing create blog request")

	var req blogs.CreateBlogRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	blog, err := h.blogsService.CreateBlog(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_blog")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, blogs.NewBlogResponse(blog))
	}
}

func (h *BlogsHandler) GetBlogByID(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get blog by ID request")

	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return errHandler.Handle(ctx, requestID, blogs.ErrInvalidBlogID, ctx.Path(), "get_blog")
	}

	blog, err := h.blogsService.GetBlogByID(c, id)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_blog")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, blogs.NewBlogResponse(blog))
	}
}

func (h *BlogsHandler) GetAllBlogs(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get all blogs request")

	list, err := h.blogsService.GetAllBlogs(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_all_blogs")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, blogs.NewBlogListResponse(list))
	}
}

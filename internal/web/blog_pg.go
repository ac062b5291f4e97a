package web

import (
	"camonk/internal/entity"
	contextPkg "camonk/pkg/context"
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func (h *Handler) BlogPage(c *fiber.Ctx) error {
	c.Set("Accept-CH", ViewportWidthHeader)
	c.Vary(ViewportWidthHeader)

	ctx := contextPkg.FromFiberCtx(c)
	data := h.blogPageData(ctx, c.Query("id"), isDesktop(c))

	return h.render(c, fiber.StatusOK, "blog.html", data)
}

// blogPageData builds both panes. The list is shown newest first; with no usable id a desktop
// viewport selects the newest record, a mobile one leaves the detail pane empty.
func (h *Handler) blogPageData(ctx context.Context, rawID string, desktop bool) TemplateData {
	data := TemplateData{CurrentRoute: "blog"}

	list, err := h.blogsService.GetAllBlogs(ctx)
	if err != nil {
		h.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Warn("Failed to load blog list")
	}
	data.ListError = err != nil && len(list) == 0

	data.Blogs = make([]entity.Blog, 0, len(list))
	for i := len(list) - 1; i >= 0; i-- {
		data.Blogs = append(data.Blogs, list[i])
	}

	selectedID, selected := parseSelectedID(rawID)
	if !selected && desktop && len(list) > 0 {
		selectedID, selected = list[len(list)-1].ID, true
	}
	if !selected {
		return data
	}

	data.SelectedID = selectedID
	blog, err := h.blogsService.GetBlogByID(ctx, selectedID)
	if err != nil {
		h.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"id":         selectedID,
			"error":      err.Error(),
		}).Warn("Failed to load blog detail")
		data.DetailError = true
		return data
	}
	data.Selected = &blog

	return data
}

func parseSelectedID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

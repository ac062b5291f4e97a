package web

import (
	"camonk/internal/api/assistant"
	"camonk/internal/api/blog"
	contextPkg "camonk/pkg/context"
	"camonk/pkg/response"
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	msgFillTitleAndContent = "Please fill in the title and content."
	msgTitleLength         = "Title must be between 3 and 256 characters."
	msgPublishFailed       = "Failed to publish: "
)

func (h *Handler) ComposePage(c *fiber.Ctx) error {
	return h.render(c, fiber.StatusOK, "compose.html", TemplateData{
		CurrentRoute: "compose",
		Form:         ComposeForm{CoverImage: blogs.DefaultCoverImage},
	})
}

// SubmitCompose publishes the form, or with ?action=magic-write fills the content field from the
// text generator and shows the form again.
func (h *Handler) SubmitCompose(c *fiber.Ctx) error {
	form := ComposeForm{
		Title:       c.FormValue("title"),
		Categories:  c.FormValue("categories"),
		Description: c.FormValue("description"),
		CoverImage:  c.FormValue("coverImage"),
		Content:     c.FormValue("content"),
	}

	if c.Query("action") == "magic-write" {
		return h.magicWrite(c, form)
	}

	return h.publish(c, form)
}

func (h *Handler) publish(c *fiber.Ctx, form ComposeForm) error {
	ctx := contextPkg.FromFiberCtx(c)

	if strings.TrimSpace(form.Title) == "" || strings.TrimSpace(form.Content) == "" {
		return h.renderCompose(c, fiber.StatusBadRequest, form, msgFillTitleAndContent)
	}

	req := blogs.CreateBlogRequest{
		Title:       strings.TrimSpace(form.Title),
		Category:    blogs.NormalizeCategories(strings.Split(form.Categories, ",")),
		Description: strings.TrimSpace(form.Description),
		CoverImage:  strings.TrimSpace(form.CoverImage),
		Content:     form.Content,
	}

	if err := h.validator.Struct(req); err != nil {
		return h.renderCompose(c, fiber.StatusBadRequest, form, validationMessage(err))
	}

	blog, err := h.blogsService.CreateBlog(ctx, req)
	if err != nil {
		h.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("Failed to publish blog from form")
		return h.renderCompose(c, response.StatusOf(err), form, msgPublishFailed+err.Error())
	}

	return c.Redirect("/blog?id="+strconv.FormatInt(blog.ID, 10), fiber.StatusSeeOther)
}

func (h *Handler) magicWrite(c *fiber.Ctx, form ComposeForm) error {
	ctx := contextPkg.FromFiberCtx(c)

	content, err := h.assistantService.MagicWrite(ctx, assistant.MagicWriteRequest{
		Title:       form.Title,
		Description: form.Description,
	})
	if err != nil {
		if !errors.Is(err, assistant.ErrTitleRequired) {
			err = assistant.ErrGenerationFailed
		}
		return h.renderCompose(c, response.StatusOf(err), form, err.Error())
	}

	form.Content = content
	return h.renderCompose(c, fiber.StatusOK, form, "")
}

func (h *Handler) renderCompose(c *fiber.Ctx, status int, form ComposeForm, msg string) error {
	return h.render(c, status, "compose.html", TemplateData{
		CurrentRoute: "compose",
		ErrorMsg:     msg,
		Form:         form,
	})
}

func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return msgPublishFailed + err.Error()
	}

	switch fieldErrs[0].Field() {
	case "Title":
		if fieldErrs[0].Tag() == "required" {
			return msgFillTitleAndContent
		}
		return msgTitleLength
	case "Content":
		return msgFillTitleAndContent
	case "CoverImage":
		return "Cover image must be a valid URL."
	case "Description":
		return "Description is too long."
	default:
		return msgPublishFailed + fieldErrs[0].Error()
	}
}

package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"camonk/internal/entity"
	"camonk/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

//go:embed templates
var templateFS embed.FS

var pages = []string{"blog.html", "compose.html", "tools.html", "practice.html", "jobs.html", "profile.html"}

type TemplateData struct {
	CurrentRoute string
	ErrorMsg     string

	Blogs       []entity.Blog
	ListError   bool
	SelectedID  int64
	Selected    *entity.Blog
	DetailError bool

	Form ComposeForm

	IncomeInput string
	Tax         *TaxResult

	PracticeTests []entity.PracticeTest
	Jobs          []entity.Job
	Profile       entity.Profile
}

type ComposeForm struct {
	Title       string
	Categories  string
	Description string
	CoverImage  string
	Content     string
}

type TaxResult struct {
	Income string
	Tax    string
}

func newTemplateCache(u utils.IUtils) (map[string]*template.Template, error) {
	funcs := template.FuncMap{
		"shortDate": func(raw string) string {
			t, err := entity.ParseDate(raw)
			if err != nil {
				return ""
			}
			return t.Format("Jan 2")
		},
		"longDate": func(raw string) string {
			t, err := entity.ParseDate(raw)
			if err != nil {
				return raw
			}
			return t.Format("Jan 2, 2006")
		},
		"rupees": u.FormatRupees,
		"year": func() int {
			return time.Now().Year()
		},
	}

	cache := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		tmpl, err := template.New(page).Funcs(funcs).ParseFS(templateFS,
			"templates/base.html",
			"templates/partials/navbar.html",
			"templates/"+page,
		)
		if err != nil {
			return nil, fmt.Errorf("error parsing template %s: %w", page, err)
		}
		cache[page] = tmpl
	}

	return cache, nil
}

func (h *Handler) render(c *fiber.Ctx, status int, page string, data TemplateData) error {
	t, ok := h.templates[page]
	if !ok {
		return fiber.NewError(fiber.StatusInternalServerError, "Template not found")
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		h.log.WithFields(logrus.Fields{
			"request_id": h.middleware.GetRequestID(c),
			"page":       page,
			"error":      err.Error(),
		}).Error("Error rendering template")
		return fiber.NewError(fiber.StatusInternalServerError, "Error rendering template")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}

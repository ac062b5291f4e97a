package blogs

import (
	"camonk/internal/entity"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// CreateBlogRequest is a new-record payload. ID is optional and only honoured by the
// blog API server; the portal always assigns its own timestamp id.
type CreateBlogRequest struct {
	ID          int64    `json:"id,omitempty" validate:"omitempty,gt=0"`
	Title       string   `json:"title" validate:"required,min=3,max=256"`
	Category    []string `json:"category" validate:"omitempty,dive,required,max=64"`
	Description string   `json:"description" validate:"omitempty,max=1024"`
	Date        string   `json:"date" validate:"omitempty"`
	CoverImage  string   `json:"coverImage" validate:"omitempty,url"`
	Content     string   `json:"content" validate:"required"`
}

type BlogResponse struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Category    []string `json:"category"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	CoverImage  string   `json:"coverImage"`
	Content     string   `json:"content"`
}

func NewBlogResponse(blog entity.Blog) BlogResponse {
	category := blog.Category
	if category == nil {
		category = []string{}
	}
	return BlogResponse{
		ID:          blog.ID,
		Title:       blog.Title,
		Category:    category,
		Description: blog.Description,
		Date:        blog.Date,
		CoverImage:  blog.CoverImage,
		Content:     blog.Content,
	}
}

func NewBlogListResponse(list []entity.Blog) []BlogResponse {
	out := make([]BlogResponse, 0, len(list))
	for _, blog := range list {
		out = append(out, NewBlogResponse(blog))
	}
	return out
}

// NormalizeCategories trims and upper-cases labels, dropping empties and duplicates
// while keeping first-seen order. Labels are NFC-normalised so composed and decomposed
// spellings collapse to one.
func NormalizeCategories(raw []string) []string {
	upper := cases.Upper(language.Und)
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, c := range raw {
		c = upper.String(norm.NFC.String(strings.TrimSpace(c)))
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

package entity

import (
	"fmt"
	"time"
)

// DateLayout matches the ISO-8601 form browsers produce (millisecond precision, Z for UTC).
const DateLayout = "2006-01-02T15:04:05.000Z07:00"

type Blog struct {
	ID          int64    `json:"id" db:"id"`
	Title       string   `json:"title" db:"title"`
	Category    []string `json:"category" db:"category"`
	Description string   `json:"description" db:"description"`
	Date        string   `json:"date" db:"date"`
	CoverImage  string   `json:"coverImage" db:"cover_image"`
	Content     string   `json:"content" db:"content"`
}

func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

// ThumbnailURL is the list-card image, falling back to a placeholder seeded by id.
func (b Blog) ThumbnailURL() string {
	if b.CoverImage != "" {
		return b.CoverImage
	}
	return fmt.Sprintf("https://picsum.photos/seed/%d/200", b.ID)
}

// HeroImageURL is the detail-view image, falling back to a placeholder seeded by id.
func (b Blog) HeroImageURL() string {
	if b.CoverImage != "" {
		return b.CoverImage
	}
	return fmt.Sprintf("https://picsum.photos/seed/%d/1200/600", b.ID)
}

func (b Blog) PrimaryCategory() string {
	if len(b.Category) == 0 || b.Category[0] == "" {
		return "GENERAL"
	}
	return b.Category[0]
}

package blogs

import (
	"camonk/internal/entity"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCategories(t *testing.T) {
	got := NormalizeCategories([]string{" tax ", "", "Gst", "TAX", "  ", "audit"})
	assert.Equal(t, []string{"TAX", "GST", "AUDIT"}, got)

	assert.Empty(t, NormalizeCategories(nil))
}

func TestNewBlogResponseNeverNullCategory(t *testing.T) {
	resp := NewBlogResponse(entity.Blog{ID: 1, Title: "t"})
	assert.NotNil(t, resp.Category)
	assert.Empty(t, resp.Category)
}

func TestSeedBlogs(t *testing.T) {
	at := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	seed := SeedBlogs(at)

	if assert.Len(t, seed, 2) {
		assert.Equal(t, int64(1), seed[0].ID)
		assert.Equal(t, "The Future of Fintech in 2026", seed[0].Title)
		assert.Equal(t, int64(2), seed[1].ID)
		assert.Equal(t, "Essential Skills for Modern CAs", seed[1].Title)
		assert.Equal(t, entity.FormatDate(at), seed[1].Date)
	}
}

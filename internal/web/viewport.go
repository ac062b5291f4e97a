package web

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	DesktopMinWidth     = 1024
	ViewportWidthHeader = "Sec-CH-Viewport-Width"
)

// isDesktop prefers an explicit width (the vw query, then the client hint) and falls back to
// the User-Agent, where anything without "Mobi" counts as desktop.
func isDesktop(c *fiber.Ctx) bool {
	if width, ok := viewportWidth(c); ok {
		return width >= DesktopMinWidth
	}
	return !strings.Contains(c.Get(fiber.HeaderUserAgent), "Mobi")
}

func viewportWidth(c *fiber.Ctx) (float64, bool) {
	for _, raw := range []string{c.Query("vw"), c.Get(ViewportWidthHeader)} {
		if raw == "" {
			continue
		}
		width, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err == nil && width > 0 {
			return width, true
		}
	}
	return 0, false
}

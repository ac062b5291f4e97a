package web

import (
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) ToolsPage(c *fiber.Ctx) error {
	data := TemplateData{CurrentRoute: "tools"}

	raw := c.Query("income")
	if raw == "" {
		return h.render(c, fiber.StatusOK, "tools.html", data)
	}
	data.IncomeInput = raw

	income, err := h.toolsService.ParseIncome(raw)
	if err == nil {
		var tax float64
		tax, err = h.toolsService.CalculateIncomeTax(income)
		if err == nil {
			data.Tax = &TaxResult{
				Income: h.toolsService.FormatRupees(income),
				Tax:    h.toolsService.FormatRupees(tax),
			}
			return h.render(c, fiber.StatusOK, "tools.html", data)
		}
	}

	data.ErrorMsg = err.Error()
	return h.render(c, fiber.StatusBadRequest, "tools.html", data)
}

func (h *Handler) PracticePage(c *fiber.Ctx) error {
	return h.render(c, fiber.StatusOK, "practice.html", TemplateData{
		CurrentRoute:  "practice",
		PracticeTests: h.catalogService.GetPracticeTests(),
		Profile:       h.catalogService.GetProfile(),
	})
}

func (h *Handler) JobsPage(c *fiber.Ctx) error {
	return h.render(c, fiber.StatusOK, "jobs.html", TemplateData{
		CurrentRoute: "jobs",
		Jobs:         h.catalogService.GetJobs(),
	})
}

func (h *Handler) ProfilePage(c *fiber.Ctx) error {
	return h.render(c, fiber.StatusOK, "profile.html", TemplateData{
		CurrentRoute: "profile",
		Profile:      h.catalogService.GetProfile(),
	})
}

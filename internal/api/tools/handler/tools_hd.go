package toolsHandler

import (
	"camonk/internal/api/tools"
	"camonk/pkg/handlerUtil"
	"camonk/pkg/log"

	"github.com/gofiber/fiber/v2"
)

func (h *ToolsHandler) CalculateIncomeTax(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing income tax request")

	var req tools.IncomeTaxRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	tax, err := h.toolsService.CalculateIncomeTax(*req.Income)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "calculate_income_tax")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, tools.IncomeTaxResponse{
		Income:       *req.Income,
		Tax:          tax,
		FormattedTax: h.toolsService.FormatRupees(tax),
	})
}

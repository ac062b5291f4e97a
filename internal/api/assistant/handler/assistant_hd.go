package assistantHandler

import (
	"camonk/internal/api/assistant"
	contextPkg "camonk/pkg/context"
	"camonk/pkg/handlerUtil"
	"camonk/pkg/log"
	"camonk/pkg/response"
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

func (h *AssistantHandler) MagicWrite(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 60*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing magic write request")

	var req assistant.MagicWriteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	content, err := h.assistantService.MagicWrite(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "magic_write")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, assistant.MagicWriteResponse{Content: content})
	}
}

// handleMagicWriteWebSocket reads one MagicWriteRequest per message and answers with a run of
// chunk frames closed by a done frame, or a single error frame.
func (h *AssistantHandler) handleMagicWriteWebSocket(c *websocket.Conn) {
	requestID, _ := c.Locals("X-Request-ID").(string)
	logger := h.log.WithField("request_id", requestID)

	logger.Info("Magic write WebSocket client connected")
	defer logger.Info("Magic write WebSocket client disconnected")

	maxReadTimeout := 5 * time.Minute

	for {
		if err := c.SetReadDeadline(time.Now().Add(maxReadTimeout)); err != nil {
			logger.Errorf("Error setting read deadline: %v", err)
			return
		}

		var req assistant.MagicWriteRequest
		if err := c.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Errorf("Magic write WebSocket error: %v", err)
			}
			return
		}

		ctx, cancel := context.WithTimeout(contextPkg.WithRequestID(context.Background(), requestID), 2*time.Minute)
		var sinkErr error
		err := h.assistantService.StreamMagicWrite(ctx, req, func(chunk string) error {
			if err := c.SetWriteDeadline(time.Now().Add(10 * time.Second)); err != nil {
				sinkErr = err
				return err
			}
			if err := c.WriteJSON(assistant.StreamFrame{Chunk: chunk}); err != nil {
				sinkErr = err
				return err
			}
			return nil
		})
		cancel()

		if sinkErr != nil {
			logger.Errorf("Error writing chunk: %v", sinkErr)
			return
		}

		frame := assistant.StreamFrame{Done: true}
		if err != nil {
			var respErr *response.Error
			if !errors.As(err, &respErr) {
				err = assistant.ErrGenerationFailed
			}
			frame = assistant.StreamFrame{Error: err.Error()}
		}

		if err := c.WriteJSON(frame); err != nil {
			logger.Errorf("Error writing final frame: %v", err)
			return
		}
	}
}

package assistantService

import (
	"camonk/internal/api/assistant"
	contextPkg "camonk/pkg/context"
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

const defaultDescription = "General insights"

func BuildPrompt(title, description string) string {
	if strings.TrimSpace(description) == "" {
		description = defaultDescription
	}
	return fmt.Sprintf(
		"Write a professional blog post for a financial platform called CA Monk.\n"+
			"Title: %s\n"+
			"Description: %s\n"+
			"Requirements: High quality, informative, professional tone, roughly 300 words. "+
			"No Markdown formatting, just plain text with paragraphs.",
		strings.TrimSpace(title), strings.TrimSpace(description),
	)
}

func (s *assistantService) MagicWrite(ctx context.Context, req assistant.MagicWriteRequest) (string, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if strings.TrimSpace(req.Title) == "" {
		return "", assistant.ErrTitleRequired
	}
	if s.generator == nil {
		s.log.WithField("request_id", requestID).Warn("Magic write requested without a configured generator")
		return "", assistant.ErrGenerationFailed
	}

	text, err := s.generator.GenerateText(ctx, BuildPrompt(req.Title, req.Description))
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Magic write generation failed")
		return "", assistant.ErrGenerationFailed
	}

	return strings.TrimSpace(text), nil
}

// StreamMagicWrite passes errors returned by onChunk through unchanged so the caller can tell
// a dropped connection from a generator failure.
func (s *assistantService) StreamMagicWrite(ctx context.Context, req assistant.MagicWriteRequest, onChunk func(chunk string) error) error {
	requestID := contextPkg.GetRequestID(ctx)

	if strings.TrimSpace(req.Title) == "" {
		return assistant.ErrTitleRequired
	}
	if s.generator == nil {
		s.log.WithField("request_id", requestID).Warn("Magic write requested without a configured generator")
		return assistant.ErrGenerationFailed
	}

	var sinkErr error
	err := s.generator.StreamText(ctx, BuildPrompt(req.Title, req.Description), func(chunk string) error {
		if err := onChunk(chunk); err != nil {
			sinkErr = err
			return err
		}
		return nil
	})
	if sinkErr != nil {
		return sinkErr
	}
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Magic write stream failed")
		return assistant.ErrGenerationFailed
	}

	return nil
}

package assistantService

import (
	"camonk/internal/api/assistant"
	"context"

	"github.com/sirupsen/logrus"
)

type IAssistantService interface {
	MagicWrite(ctx context.Context, req assistant.MagicWriteRequest) (string, error)
	StreamMagicWrite(ctx context.Context, req assistant.MagicWriteRequest, onChunk func(chunk string) error) error
}

// TextGenerator is satisfied by both the Gemini and the OpenAI clients.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	StreamText(ctx context.Context, prompt string, onChunk func(chunk string) error) error
}

type assistantService struct {
	log       *logrus.Logger
	generator TextGenerator
}

// NewAssistantService accepts a nil generator; every request then fails with ErrGenerationFailed.
func NewAssistantService(log *logrus.Logger, generator TextGenerator) IAssistantService {
	return &assistantService{
		log:       log,
		generator: generator,
	}
}

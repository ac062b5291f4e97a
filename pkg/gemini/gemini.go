package gemini

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

const DefaultModelName = "gemini-1.5-flash"

var (
	ErrAPIKeyRequired = errors.New("gemini API key is required")
	ErrEmptyResponse  = errors.New("no response from Gemini API")
)

type IGemini interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	StreamText(ctx context.Context, prompt string, onChunk func(chunk string) error) error
	Close() error
}

type geminiClient struct {
	modelName string
	client    *genai.Client
}

func NewGeminiClient() (IGemini, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, ErrAPIKeyRequired
	}

	modelName := os.Getenv("GEMINI_MODEL_NAME")
	if modelName == "" {
		modelName = DefaultModelName
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	return &geminiClient{
		modelName: modelName,
		client:    client,
	}, nil
}

func (g *geminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	model := g.client.GenerativeModel(g.modelName)

	res, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	text := textOf(res)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// StreamText calls onChunk with each piece of text as the model produces it. An error from
// onChunk stops the stream and is returned as is.
func (g *geminiClient) StreamText(ctx context.Context, prompt string, onChunk func(chunk string) error) error {
	model := g.client.GenerativeModel(g.modelName)
	iter := model.GenerateContentStream(ctx, genai.Text(prompt))

	var produced bool
	for {
		res, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return err
		}

		chunk := textOf(res)
		if chunk == "" {
			continue
		}
		produced = true
		if err := onChunk(chunk); err != nil {
			return err
		}
	}

	if !produced {
		return ErrEmptyResponse
	}
	return nil
}

func (g *geminiClient) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

func textOf(res *genai.GenerateContentResponse) string {
	if res == nil || len(res.Candidates) == 0 || res.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range res.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String()
}

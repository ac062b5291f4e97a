package openai

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/sashabaranov/go-openai"
)

var (
	ErrAPIKeyRequired = errors.New("openai API key is required")
	ErrEmptyResponse  = errors.New("no response from OpenAI API")
)

type IChatGPT interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	StreamText(ctx context.Context, prompt string, onChunk func(chunk string) error) error
}

type chatGPTService struct {
	client *openai.Client
	model  string
}

func NewChatGPT() (IChatGPT, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, ErrAPIKeyRequired
	}

	model := os.Getenv("OPENAI_CHAT_MODEL")
	if model == "" {
		model = openai.GPT4oMini
	}

	return &chatGPTService{
		client: openai.NewClient(apiKey),
		model:  model,
	}, nil
}

func (c *chatGPTService) request(prompt string) openai.ChatCompletionRequest {
	return openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.7,
	}
}

func (c *chatGPTService) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, c.request(prompt))
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", ErrEmptyResponse
	}

	return resp.Choices[0].Message.Content, nil
}

func (c *chatGPTService) StreamText(ctx context.Context, prompt string, onChunk func(chunk string) error) error {
	req := c.request(prompt)
	req.Stream = true

	stream, err := c.client.CreateChatCompletionStream(ctx, req)
	if err != nil {
		return err
	}
	defer stream.Close()

	var produced bool
	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		if len(resp.Choices) == 0 || resp.Choices[0].Delta.Content == "" {
			continue
		}
		produced = true
		if err := onChunk(resp.Choices[0].Delta.Content); err != nil {
			return err
		}
	}

	if !produced {
		return ErrEmptyResponse
	}
	return nil
}

// Package llm adapts the OpenAI-compatible chat completions API to the two
// call shapes the translation service needs: plain text and text+image.
package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/shared"
)

// Client is a stateless handle around one chat-completions endpoint and one
// fixed model identifier. It is safe for concurrent use.
type Client struct {
	api       openai.Client
	modelName string
}

func NewClient(api openai.Client, modelName string) *Client {
	return &Client{
		api:       api,
		modelName: modelName,
	}
}

// GenerateText sends the prompt as a single user-role message and returns the
// raw model output.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	return c.complete(ctx, []openai.ChatCompletionMessageParamUnion{
		openai.UserMessage(prompt),
	})
}

// GenerateFromImage sends one user-role message with two parts: the prompt
// text and the image as an inline data URI built from the declared MIME type
// and the raw base64 payload.
func (c *Client) GenerateFromImage(ctx context.Context, prompt, mimeType, imageBase64 string) (string, error) {
	imageData := fmt.Sprintf("data:%s;base64,%s", mimeType, imageBase64)

	return c.complete(ctx, []openai.ChatCompletionMessageParamUnion{
		openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
			openai.TextContentPart(prompt),
			openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
				URL: imageData,
			}),
		}),
	})
}

func (c *Client) complete(ctx context.Context, messages []openai.ChatCompletionMessageParamUnion) (string, error) {
	resp, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    shared.ChatModel(c.modelName),
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

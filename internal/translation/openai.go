package translation

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"codeberg.org/snonux/globalize/internal/language"
)

// OpenAITranslator translates with chat completions
type OpenAITranslator struct {
	client *openai.Client
	model  string
}

// NewOpenAITranslator creates an OpenAI backed translator. baseURL may be
// empty to use the public API.
func NewOpenAITranslator(apiKey, model, baseURL string) (*OpenAITranslator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key not found")
	}
	if model == "" {
		model = openai.GPT4oMini
	}

	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}

	return &OpenAITranslator{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}, nil
}

// Name returns the backend name
func (t *OpenAITranslator) Name() string {
	return "openai"
}

// Languages returns the compact catalog
func (t *OpenAITranslator) Languages() *language.Catalog {
	return language.Compact()
}

// Translate translates text to target
func (t *OpenAITranslator) Translate(ctx context.Context, text, target string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt(text, target, t.Languages()),
			},
		},
		Temperature: 0.3,
	}

	resp, err := t.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", &Error{Backend: t.Name(), Target: target, Err: fmt.Errorf("OpenAI API error: %w", err)}
	}

	if len(resp.Choices) == 0 {
		return "", &Error{Backend: t.Name(), Target: target, Err: fmt.Errorf("no translation returned")}
	}

	translation := strings.TrimSpace(resp.Choices[0].Message.Content)
	if translation == "" {
		return "", &Error{Backend: t.Name(), Target: target, Err: fmt.Errorf("empty translation returned")}
	}
	return translation, nil
}

package translation

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"codeberg.org/snonux/globalize/internal/language"
)

// GeminiTranslator translates with the Gemini generate-content API
type GeminiTranslator struct {
	client *genai.Client
	model  string
}

// NewGeminiTranslator creates a Gemini backed translator
func NewGeminiTranslator(ctx context.Context, apiKey, model string) (*GeminiTranslator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key not found")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiTranslator{client: client, model: model}, nil
}

// Name returns the backend name
func (t *GeminiTranslator) Name() string {
	return "gemini"
}

// Languages returns the compact catalog
func (t *GeminiTranslator) Languages() *language.Catalog {
	return language.Compact()
}

// Translate translates text to target
func (t *GeminiTranslator) Translate(ctx context.Context, text, target string) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.3),
	}

	resp, err := t.client.Models.GenerateContent(ctx, t.model, genai.Text(prompt(text, target, t.Languages())), config)
	if err != nil {
		return "", &Error{Backend: t.Name(), Target: target, Err: fmt.Errorf("Gemini API error: %w", err)}
	}

	translation := strings.TrimSpace(resp.Text())
	if translation == "" {
		return "", &Error{Backend: t.Name(), Target: target, Err: fmt.Errorf("no translation returned")}
	}
	return translation, nil
}

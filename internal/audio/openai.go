package audio

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sashabaranov/go-openai"

	"codeberg.org/snonux/globalize/internal/language"
)

// OpenAIProvider implements Provider interface for OpenAI TTS
type OpenAIProvider struct {
	client *openai.Client
	config *Config
}

// NewOpenAIProvider creates a new OpenAI TTS provider
func NewOpenAIProvider(config *Config) (Provider, error) {
	if config.OpenAIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(config.OpenAIKey)
	if config.OpenAIBaseURL != "" {
		clientConfig.BaseURL = config.OpenAIBaseURL
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

// GenerateAudio generates MP3 audio using OpenAI TTS. The voice detects the
// language from the text; lang only goes into the voice instructions.
func (p *OpenAIProvider) GenerateAudio(ctx context.Context, text, lang string, slow bool) (*Clip, error) {
	speed := p.config.OpenAISpeed
	if speed == 0 {
		speed = 1.0
	}
	if slow {
		speed = p.config.SlowSpeed
		if speed == 0 {
			speed = 0.6
		}
	}

	req := openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(p.config.OpenAIModel),
		Input:          text,
		Voice:          openai.SpeechVoice(p.config.OpenAIVoice),
		Speed:          speed,
		ResponseFormat: openai.SpeechResponseFormatMp3,
	}

	if p.supportsInstructions() {
		req.Instructions = p.instructions(lang, slow)
	}

	fmt.Printf("OpenAI TTS: Using model '%s' with voice '%s' at speed %.2f\n", p.config.OpenAIModel, p.config.OpenAIVoice, speed)

	response, err := p.client.CreateSpeech(ctx, req)
	if err != nil {
		errStr := err.Error()
		if strings.Contains(errStr, "does not have access to model") && p.supportsInstructions() {
			return nil, fmt.Errorf("OpenAI TTS API error: %w\nNote: The %s model requires access. Try using --openai-model tts-1-hd instead", err, p.config.OpenAIModel)
		}
		return nil, fmt.Errorf("OpenAI TTS API error: %w", err)
	}
	defer response.Close()

	data, err := io.ReadAll(response)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio data: %w", err)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("no audio data received from OpenAI")
	}

	return &Clip{
		Data:   data,
		Format: "mp3",
		Lang:   lang,
		Text:   text,
		Slow:   slow,
	}, nil
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// IsAvailable checks if the OpenAI API is accessible
func (p *OpenAIProvider) IsAvailable() error {
	if p.config.OpenAIKey == "" {
		return fmt.Errorf("OpenAI API key not configured")
	}

	// A test call would use credits, so only the key is checked
	return nil
}

func (p *OpenAIProvider) supportsInstructions() bool {
	return p.config.OpenAIModel == "gpt-4o-mini-tts" || p.config.OpenAIModel == "gpt-4o-mini-audio-preview"
}

func (p *OpenAIProvider) instructions(lang string, slow bool) string {
	if p.config.OpenAIInstruction != "" {
		return p.config.OpenAIInstruction
	}
	name := language.DisplayName(lang, nil)
	if slow {
		return fmt.Sprintf("Speak %s. Read each letter separately, slowly and clearly, pausing at every comma.", name)
	}
	return fmt.Sprintf("Speak %s with natural pronunciation.", name)
}

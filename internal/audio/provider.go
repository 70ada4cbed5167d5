package audio

import (
	"context"
	"fmt"
	"time"
)

// Provider defines the interface for text-to-speech providers
type Provider interface {
	// GenerateAudio synthesizes text in lang; slow asks for a reduced speed
	GenerateAudio(ctx context.Context, text, lang string, slow bool) (*Clip, error)

	// Name returns the provider name
	Name() string

	// IsAvailable checks if the provider is properly configured and available
	IsAvailable() error
}

// Config holds common configuration for audio providers
type Config struct {
	Provider string // "google", "openai" or "espeak"
	Fallback string // optional provider tried when Provider fails
	Timeout  time.Duration

	// Google Translate TTS
	GoogleURL string

	// OpenAI-specific settings
	OpenAIKey         string
	OpenAIBaseURL     string
	OpenAIModel       string  // "tts-1", "tts-1-hd", or "gpt-4o-mini-tts"
	OpenAIVoice       string  // "alloy", "ash", "ballad", "coral", "echo", "fable", "onyx", "nova", "sage", "shimmer", "verse"
	OpenAISpeed       float64 // 0.25 to 4.0
	OpenAIInstruction string  // Voice instructions for gpt-4o-mini-tts model

	// SlowSpeed is the OpenAI speed used for spelled words
	SlowSpeed float64

	// espeak-ng words per minute, normal and slow
	ESpeakSpeed     int
	ESpeakSlowSpeed int
}

// DefaultProviderConfig returns default configuration
func DefaultProviderConfig() *Config {
	return &Config{
		Provider:        "google",
		Timeout:         30 * time.Second,
		GoogleURL:       DefaultGoogleTTSURL,
		OpenAIModel:     "gpt-4o-mini-tts",
		OpenAIVoice:     "alloy",
		OpenAISpeed:     1.0,
		SlowSpeed:       0.6,
		ESpeakSpeed:     160,
		ESpeakSlowSpeed: 90,
	}
}

// NewProvider creates the appropriate audio provider based on configuration.
// A fallback provider that cannot be created is reported and left out.
func NewProvider(config *Config) (Provider, error) {
	if config == nil {
		config = DefaultProviderConfig()
	}

	primary, err := newSingleProvider(config.Provider, config)
	if err != nil {
		return nil, err
	}

	if config.Fallback == "" || config.Fallback == config.Provider {
		return primary, nil
	}

	fallback, err := newSingleProvider(config.Fallback, config)
	if err != nil {
		fmt.Printf("Warning: fallback audio provider %s unavailable: %v\n", config.Fallback, err)
		return primary, nil
	}
	return NewProviderWithFallback(primary, fallback), nil
}

func newSingleProvider(name string, config *Config) (Provider, error) {
	switch name {
	case "", "google":
		return NewGoogleProvider(config.GoogleURL, config.Timeout), nil
	case "openai":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		return NewOpenAIProvider(config)
	case "espeak":
		return NewESpeakProvider(config.ESpeakSpeed, config.ESpeakSlowSpeed)
	default:
		return nil, fmt.Errorf("unknown audio provider: %s", name)
	}
}

// Providers lists the supported provider names
func Providers() []string {
	return []string{"google", "openai", "espeak"}
}

// ProviderWithFallback wraps a primary provider with a fallback option
type ProviderWithFallback struct {
	primary  Provider
	fallback Provider
}

// NewProviderWithFallback creates a provider that falls back to secondary if primary fails
func NewProviderWithFallback(primary, fallback Provider) Provider {
	return &ProviderWithFallback{
		primary:  primary,
		fallback: fallback,
	}
}

// GenerateAudio tries primary provider first, falls back to secondary on error
func (p *ProviderWithFallback) GenerateAudio(ctx context.Context, text, lang string, slow bool) (*Clip, error) {
	clip, err := p.primary.GenerateAudio(ctx, text, lang, slow)
	if err != nil {
		fmt.Printf("Primary provider (%s) failed: %v. Falling back to %s\n",
			p.primary.Name(), err, p.fallback.Name())

		return p.fallback.GenerateAudio(ctx, text, lang, slow)
	}
	return clip, nil
}

// Name returns the provider name
func (p *ProviderWithFallback) Name() string {
	return fmt.Sprintf("%s (fallback: %s)", p.primary.Name(), p.fallback.Name())
}

// IsAvailable checks if at least one provider is available
func (p *ProviderWithFallback) IsAvailable() error {
	primaryErr := p.primary.IsAvailable()
	if primaryErr == nil {
		return nil
	}

	fallbackErr := p.fallback.IsAvailable()
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("both providers unavailable: primary=%v, fallback=%v",
		primaryErr, fallbackErr)
}

package translation

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/snonux/globalize/internal/language"
)

// Translator translates text into the language identified by target.
type Translator interface {
	Translate(ctx context.Context, text, target string) (string, error)

	// Name returns the backend name
	Name() string

	// Languages returns the target catalog offered by the backend
	Languages() *language.Catalog
}

// Error is returned for any backend failure: network, unsupported pair,
// rate limiting or an unusable response.
type Error struct {
	Backend string
	Target  string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s translation to %s failed: %v", e.Backend, e.Target, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Config holds the settings of all backends; only the selected one is used.
type Config struct {
	Backend string // "google", "gcloud", "openai" or "gemini"
	Timeout time.Duration

	// google (web endpoint)
	GoogleURL string

	// gcloud (Cloud Translation API)
	GoogleAPIKey string

	// openai
	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string

	// gemini
	GeminiKey   string
	GeminiModel string

	// circuit breaker, disabled when BreakerFailures is zero
	BreakerFailures uint32
	BreakerCooldown time.Duration
}

// DefaultConfig returns the keyless Google web backend without a breaker
func DefaultConfig() *Config {
	return &Config{
		Backend:         "google",
		Timeout:         20 * time.Second,
		GoogleURL:       DefaultGoogleURL,
		OpenAIModel:     "gpt-4o-mini",
		GeminiModel:     "gemini-2.0-flash",
		BreakerCooldown: 30 * time.Second,
	}
}

// New creates the backend named by config.Backend
func New(ctx context.Context, config *Config) (Translator, error) {
	if config == nil {
		config = DefaultConfig()
	}

	var (
		t   Translator
		err error
	)
	switch config.Backend {
	case "", "google":
		t = NewGoogleTranslator(config.GoogleURL, config.Timeout)
	case "gcloud":
		t, err = NewCloudTranslator(ctx, config.GoogleAPIKey)
	case "openai":
		t, err = NewOpenAITranslator(config.OpenAIKey, config.OpenAIModel, config.OpenAIBaseURL)
	case "gemini":
		t, err = NewGeminiTranslator(ctx, config.GeminiKey, config.GeminiModel)
	default:
		return nil, fmt.Errorf("unknown translation backend: %s", config.Backend)
	}
	if err != nil {
		return nil, err
	}

	if config.BreakerFailures > 0 {
		t = NewBreaker(t, config.BreakerFailures, config.BreakerCooldown)
	}
	return t, nil
}

// Backends lists the supported backend names
func Backends() []string {
	return []string{"google", "gcloud", "openai", "gemini"}
}

func prompt(text, target string, catalog *language.Catalog) string {
	return fmt.Sprintf("Translate the following text to %s (language code %q). "+
		"Detect the source language yourself. Respond with only the translation, nothing else.\n\n%s",
		language.DisplayName(target, catalog), target, text)
}

package testutil

import (
	"context"
	"fmt"
	"sync"
	"time"

	"codeberg.org/snonux/globalize/internal/audio"
	"codeberg.org/snonux/globalize/internal/language"
)

// MockTranslator mocks a translation backend. Translations and Errors are
// keyed by target code.
type MockTranslator struct {
	Translations map[string]string
	Errors       map[string]error
	Catalog      *language.Catalog
	Delay        time.Duration // per call, cut short by ctx

	mu    sync.Mutex
	Calls []string
}

// Translate mocks translating text
func (m *MockTranslator) Translate(ctx context.Context, text, target string) (string, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, fmt.Sprintf("Translate: %s (->%s)", text, target))
	m.mu.Unlock()

	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	if err, ok := m.Errors[target]; ok {
		return "", err
	}

	if translation, ok := m.Translations[target]; ok {
		return translation, nil
	}

	// Default mock translation
	return fmt.Sprintf("[%s] %s", target, text), nil
}

// Name returns the backend name
func (m *MockTranslator) Name() string {
	return "mock"
}

// Languages returns Catalog, or the compact catalog when unset
func (m *MockTranslator) Languages() *language.Catalog {
	if m.Catalog != nil {
		return m.Catalog
	}
	return language.Compact()
}

// CallCount returns the number of Translate calls
func (m *MockTranslator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// MockDetector mocks a language detector
type MockDetector struct {
	Code  string
	Err   error
	Calls int
}

// Detect returns Code or Err
func (m *MockDetector) Detect(ctx context.Context, text string) (string, error) {
	m.Calls++
	if m.Err != nil {
		return "", m.Err
	}
	return m.Code, nil
}

// Name returns the engine name
func (m *MockDetector) Name() string {
	return "mock"
}

// MockAudioProvider mocks a speech provider. Errors are keyed by language.
type MockAudioProvider struct {
	Errors map[string]error

	mu    sync.Mutex
	Calls []AudioCall
}

// AudioCall records one GenerateAudio call
type AudioCall struct {
	Text string
	Lang string
	Slow bool
}

// GenerateAudio mocks speech synthesis
func (m *MockAudioProvider) GenerateAudio(ctx context.Context, text, lang string, slow bool) (*audio.Clip, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, AudioCall{Text: text, Lang: lang, Slow: slow})
	m.mu.Unlock()

	if err, ok := m.Errors[lang]; ok {
		return nil, err
	}

	g := TestDataGenerator{}
	return &audio.Clip{Data: g.GenerateAudioData(), Format: "mp3", Lang: lang, Text: text, Slow: slow}, nil
}

// Name returns the provider name
func (m *MockAudioProvider) Name() string {
	return "mock"
}

// IsAvailable always succeeds
func (m *MockAudioProvider) IsAvailable() error {
	return nil
}

// LastCall returns the most recent call
func (m *MockAudioProvider) LastCall() (AudioCall, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Calls) == 0 {
		return AudioCall{}, false
	}
	return m.Calls[len(m.Calls)-1], true
}

// TestDataGenerator generates test data
type TestDataGenerator struct{}

// GenerateParagraph returns a sample paragraph in lang ("en", "de" or "fr")
func (g *TestDataGenerator) GenerateParagraph(lang string) string {
	paragraphs := map[string]string{
		"en": "The quick brown fox jumps over the lazy dog while the cat watches from the window.",
		"de": "Der schnelle braune Fuchs springt über den faulen Hund, während die Katze zusieht.",
		"fr": "Le rapide renard brun saute par-dessus le chien paresseux pendant que le chat regarde.",
	}
	return paragraphs[lang]
}

// GenerateAudioData generates mock audio data
func (g *TestDataGenerator) GenerateAudioData() []byte {
	// Simple mock MP3 header
	return []byte{0xFF, 0xFB, 0x90, 0x00, 0x00, 0x00, 0x00, 0x00}
}

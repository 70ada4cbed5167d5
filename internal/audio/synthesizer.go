package audio

import (
	"context"
	"strings"
)

// Synthesizer is the entry point used by the frontends. Every failure it
// returns is a *GenerationError.
type Synthesizer struct {
	provider Provider
}

// NewSynthesizer creates a synthesizer on top of provider
func NewSynthesizer(provider Provider) *Synthesizer {
	return &Synthesizer{provider: provider}
}

// Provider returns the underlying provider
func (s *Synthesizer) Provider() Provider {
	return s.provider
}

// Synthesize speaks text in lang at normal speed
func (s *Synthesizer) Synthesize(ctx context.Context, text, lang string) (*Clip, error) {
	return s.generate(ctx, text, lang, false)
}

// SynthesizeSpelled speaks word letter by letter ("c, a, t") at reduced
// speed. lang must already be a synthesizer code.
func (s *Synthesizer) SynthesizeSpelled(ctx context.Context, word, lang string) (*Clip, error) {
	word = strings.TrimSpace(word)
	if err := ValidateText(word); err != nil {
		return nil, &GenerationError{Provider: s.provider.Name(), Lang: lang, Err: err}
	}
	return s.generate(ctx, SpellOut(word), lang, true)
}

func (s *Synthesizer) generate(ctx context.Context, text, lang string, slow bool) (*Clip, error) {
	if err := ValidateText(text); err != nil {
		return nil, &GenerationError{Provider: s.provider.Name(), Lang: lang, Err: err}
	}

	clip, err := s.provider.GenerateAudio(ctx, text, lang, slow)
	if err != nil {
		return nil, &GenerationError{Provider: s.provider.Name(), Lang: lang, Err: err}
	}
	if clip == nil || len(clip.Data) == 0 {
		return nil, &GenerationError{Provider: s.provider.Name(), Lang: lang, Err: errNoAudio}
	}
	return clip, nil
}

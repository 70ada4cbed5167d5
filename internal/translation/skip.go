package translation

import (
	"context"
	"fmt"
	"strings"

	"codeberg.org/snonux/globalize/internal/language"
)

// SourceDetector guesses the language of a text sample
type SourceDetector interface {
	Detect(ctx context.Context, text string) (string, error)
}

// SkipSameLanguage detects the source language first and returns the input
// unchanged when it already matches the target. Detection failures fall
// through to the wrapped translator.
type SkipSameLanguage struct {
	Translator
	detector SourceDetector
}

// NewSkipSameLanguage wraps t
func NewSkipSameLanguage(t Translator, detector SourceDetector) *SkipSameLanguage {
	return &SkipSameLanguage{Translator: t, detector: detector}
}

// Translate translates text unless it is already in target
func (s *SkipSameLanguage) Translate(ctx context.Context, text, target string) (string, error) {
	out, _, err := s.translate(ctx, text, target)
	return out, err
}

func (s *SkipSameLanguage) translate(ctx context.Context, text, target string) (string, bool, error) {
	source, err := s.detector.Detect(ctx, text)
	if err != nil {
		fmt.Printf("Warning: source detection failed, translating anyway: %v\n", err)
	} else if sameLanguage(source, target) {
		return text, true, nil
	}

	out, err := s.Translator.Translate(ctx, text, target)
	return out, false, err
}

// sameLanguage compares a detected code with a target. Regional targets such
// as zh-tw never match a bare detected code.
func sameLanguage(source, target string) bool {
	if strings.Contains(target, "-") {
		return strings.EqualFold(source, target)
	}
	return language.SynthesizerCode(strings.ToLower(source)) == language.SynthesizerCode(strings.ToLower(target))
}

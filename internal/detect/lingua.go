package detect

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

// LinguaDetector detects languages with lingua-go. The underlying detector is
// built on first use because loading the language models is expensive.
type LinguaDetector struct {
	minLength   int
	languages   []lingua.Language
	lowAccuracy bool

	once     sync.Once
	detector lingua.LanguageDetector
}

// NewLinguaDetector creates a lingua based detector. Without languages all
// languages known to lingua are candidates.
func NewLinguaDetector(minLength int, languages ...lingua.Language) *LinguaDetector {
	return &LinguaDetector{
		minLength: minLength,
		languages: languages,
	}
}

// Name returns the engine name
func (d *LinguaDetector) Name() string {
	return "lingua"
}

// Detect returns the ISO 639-1 code of the most likely language
func (d *LinguaDetector) Detect(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &Error{Engine: d.Name(), Err: err}
	}
	if tooShort(text, d.minLength) {
		return "", ErrAmbiguous
	}

	d.once.Do(func() { d.build(false) })

	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", ErrAmbiguous
	}

	iso := lang.IsoCode639_1()
	if iso == lingua.UnknownIsoCode639_1 {
		return "", &Error{Engine: d.Name(), Err: fmt.Errorf("no ISO 639-1 code for %s", lang)}
	}
	code, err := iso6391(strings.ToLower(iso.String()))
	if err != nil {
		return "", &Error{Engine: d.Name(), Err: err}
	}
	return code, nil
}

// Warm builds the detector with all language models loaded up front, so the
// first Detect call does no loading. It is a no-op once the detector exists.
func (d *LinguaDetector) Warm() {
	d.once.Do(func() { d.build(true) })
}

func (d *LinguaDetector) build(preload bool) {
	builder := lingua.NewLanguageDetectorBuilder()
	if d.lowAccuracy {
		builder = builder.WithLowAccuracyMode()
	}
	if preload {
		builder = builder.WithPreloadedLanguageModels()
	}
	// lingua needs at least two candidates
	if len(d.languages) > 1 {
		d.detector = builder.FromLanguages(d.languages...).Build()
		return
	}
	d.detector = builder.FromAllLanguages().Build()
}

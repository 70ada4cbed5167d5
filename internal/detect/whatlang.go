package detect

import (
	"context"
	"fmt"

	"github.com/abadojack/whatlanggo"
)

// WhatlangDetector detects languages with whatlanggo. It is lighter than
// lingua but needs longer samples to be reliable.
type WhatlangDetector struct {
	minLength int
}

// NewWhatlangDetector creates a whatlanggo based detector
func NewWhatlangDetector(minLength int) *WhatlangDetector {
	return &WhatlangDetector{minLength: minLength}
}

// Name returns the engine name
func (d *WhatlangDetector) Name() string {
	return "whatlang"
}

// Detect returns the ISO 639-1 code of the most likely language
func (d *WhatlangDetector) Detect(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &Error{Engine: d.Name(), Err: err}
	}
	if tooShort(text, d.minLength) {
		return "", ErrAmbiguous
	}

	info := whatlanggo.Detect(text)
	if info.Script == nil || !info.IsReliable() {
		return "", ErrAmbiguous
	}

	code := info.Lang.Iso6391()
	if code == "" {
		code = info.Lang.Iso6393()
	}
	if code == "" {
		return "", &Error{Engine: d.Name(), Err: fmt.Errorf("no ISO code for %s", info.Lang)}
	}

	mapped, err := iso6391(code)
	if err != nil {
		return "", &Error{Engine: d.Name(), Err: err}
	}
	return mapped, nil
}

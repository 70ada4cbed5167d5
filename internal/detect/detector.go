package detect

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	xlanguage "golang.org/x/text/language"
)

// ErrAmbiguous is returned when the sample is too short or statistically
// ambiguous for a confident guess.
var ErrAmbiguous = errors.New("text too short or ambiguous")

// Error wraps any other detection failure.
type Error struct {
	Engine string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s detection failed: %v", e.Engine, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Detector returns a lower-case ISO 639-1 code for text.
type Detector interface {
	Detect(ctx context.Context, text string) (string, error)
	Name() string
}

// Config selects and tunes the detection engine
type Config struct {
	Engine      string // "lingua" or "whatlang"
	MinLength   int    // shorter trimmed samples are ambiguous
	LowAccuracy bool   // lingua only: smaller models, weaker on short samples
}

// Warmer is implemented by detectors with expensive setup that can run
// ahead of the first Detect call.
type Warmer interface {
	Warm()
}

// DefaultConfig returns the lingua engine with a three-rune minimum
func DefaultConfig() *Config {
	return &Config{
		Engine:    "lingua",
		MinLength: 3,
	}
}

// New creates the detector named by config.Engine
func New(config *Config) (Detector, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Engine {
	case "", "lingua":
		d := NewLinguaDetector(config.MinLength)
		d.lowAccuracy = config.LowAccuracy
		return d, nil
	case "whatlang":
		return NewWhatlangDetector(config.MinLength), nil
	default:
		return nil, fmt.Errorf("unknown detection engine: %s", config.Engine)
	}
}

// tooShort reports whether the trimmed sample has fewer than minRunes runes.
func tooShort(text string, minRunes int) bool {
	return utf8.RuneCountInString(strings.TrimSpace(text)) < minRunes
}

// iso6391 maps an ISO 639-1 or 639-3 code to the shortest code x/text knows.
func iso6391(code string) (string, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	if len(code) == 2 {
		return code, nil
	}
	base, err := xlanguage.ParseBase(code)
	if err != nil {
		return "", fmt.Errorf("unmapped language code %q: %w", code, err)
	}
	return base.String(), nil
}

package translation

import (
	"context"
)

// Source tells how the text of an Outcome was obtained.
type Source int

const (
	// Translated means the backend returned a translation
	Translated Source = iota
	// Original means translation failed and the input text is returned
	Original
	// Skipped means the input was already in the target language
	Skipped
)

func (s Source) String() string {
	switch s {
	case Translated:
		return "translated"
	case Original:
		return "original"
	case Skipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Outcome is the result of a best-effort translation. Err is set when
// Source is Original.
type Outcome struct {
	Text   string
	Source Source
	Err    error
}

// BestEffort translates text to target. On failure it returns the original
// text with Source Original and the error attached instead of failing.
func BestEffort(ctx context.Context, t Translator, text, target string) Outcome {
	var (
		out     string
		skipped bool
		err     error
	)
	if s, ok := t.(*SkipSameLanguage); ok {
		out, skipped, err = s.translate(ctx, text, target)
	} else {
		out, err = t.Translate(ctx, text, target)
	}

	switch {
	case err != nil:
		return Outcome{Text: text, Source: Original, Err: err}
	case skipped:
		return Outcome{Text: out, Source: Skipped}
	default:
		return Outcome{Text: out, Source: Translated}
	}
}

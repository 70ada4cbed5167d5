package audio

import (
	"errors"
	"fmt"
)

// GenerationError reports a failed synthesis for one language.
type GenerationError struct {
	Provider string
	Lang     string
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("audio generation failed for lang='%s' (%s): %v", e.Lang, e.Provider, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

var errNoAudio = errors.New("no audio data received")

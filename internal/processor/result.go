package processor

import (
	"errors"

	"codeberg.org/snonux/globalize/internal/audio"
	"codeberg.org/snonux/globalize/internal/cloud"
)

var (
	// ErrInputEmpty is reported when an action needs text that was not given
	ErrInputEmpty = errors.New("input is empty")

	// ErrUnknownLanguage is reported when a selected name has no code
	ErrUnknownLanguage = errors.New("unknown language selection")
)

// Kind is the severity of a banner
type Kind int

const (
	Success Kind = iota
	Info
	Warning
	Error
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Banner is a one-line message shown inline. Err holds the cause of
// warning and error banners.
type Banner struct {
	Kind    Kind
	Message string
	Err     error
}

// Section is one block of output. Name and Code are set for per-language
// sections; Heading is used otherwise.
type Section struct {
	Heading string
	Name    string
	Code    string
	Text    string
	Audio   *audio.Clip
	Banners []Banner
}

// Title returns the heading shown above the section
func (s Section) Title() string {
	if s.Name != "" {
		return s.Name + " (" + s.Code + ")"
	}
	return s.Heading
}

// Result is what one action produced
type Result struct {
	Action    Action
	RequestID string
	Banners   []Banner
	Sections  []Section
	Figure    *cloud.Figure
}

func (r *Result) add(kind Kind, message string, err error) {
	r.Banners = append(r.Banners, Banner{Kind: kind, Message: message, Err: err})
}

// Failed reports whether any banner, including those of sections, is an error
func (r *Result) Failed() bool {
	for _, b := range r.Banners {
		if b.Kind == Error {
			return true
		}
	}
	for _, s := range r.Sections {
		for _, b := range s.Banners {
			if b.Kind == Error {
				return true
			}
		}
	}
	return false
}

// Clips returns the audio of all sections in order
func (r *Result) Clips() []*audio.Clip {
	var clips []*audio.Clip
	for _, s := range r.Sections {
		if s.Audio != nil {
			clips = append(clips, s.Audio)
		}
	}
	return clips
}

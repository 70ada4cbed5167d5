package processor

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Action names one of the user actions
type Action string

const (
	ActionDetect    Action = "detect"
	ActionTranslate Action = "translate"
	ActionCloud     Action = "cloud"
	ActionRead      Action = "read"
	ActionSpell     Action = "spell"
)

// Actions lists every action in the order they appear on screen
func Actions() []Action {
	return []Action{ActionDetect, ActionTranslate, ActionCloud, ActionRead, ActionSpell}
}

// Context derives the context a runs with. Every action but Translate &
// Read Aloud is bounded by timeout. The read loop is bounded per remote call
// only, so every selected language gets its own attempt.
func (a Action) Context(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if a == ActionRead || timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

// ParseAction validates an action name
func ParseAction(name string) (Action, error) {
	for _, a := range Actions() {
		if string(a) == strings.ToLower(strings.TrimSpace(name)) {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown action: %s", name)
}

// Request carries everything an action reads: the paragraph, the target
// selection, and the word and voice to spell with. Frontends build a new
// one per action.
type Request struct {
	Text      string
	Targets   []string // display names
	SelectAll bool
	Word      string
	Voice     string // display name, English when empty
}

func (r Request) text() string {
	return strings.TrimSpace(r.Text)
}

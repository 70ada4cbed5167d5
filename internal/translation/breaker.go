package translation

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"

	"codeberg.org/snonux/globalize/internal/language"
)

// Breaker wraps a Translator in a circuit breaker. After the configured
// number of consecutive failures calls fail immediately until the cooldown
// has passed. Each call is attempted at most once.
type Breaker struct {
	next Translator
	cb   *gobreaker.CircuitBreaker
}

// NewBreaker wraps next. A zero cooldown uses the gobreaker default.
func NewBreaker(next Translator, failures uint32, cooldown time.Duration) *Breaker {
	if failures == 0 {
		failures = 1
	}
	settings := gobreaker.Settings{
		Name:        next.Name(),
		MaxRequests: 1,
		Timeout:     cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		IsSuccessful: func(err error) bool {
			// cancellation says nothing about the backend
			return err == nil || errors.Is(err, context.Canceled)
		},
	}
	return &Breaker{
		next: next,
		cb:   gobreaker.NewCircuitBreaker(settings),
	}
}

// Name returns the wrapped backend name
func (b *Breaker) Name() string {
	return b.next.Name()
}

// Languages returns the wrapped backend catalog
func (b *Breaker) Languages() *language.Catalog {
	return b.next.Languages()
}

// State returns the breaker state, e.g. "closed" or "open"
func (b *Breaker) State() string {
	return b.cb.State().String()
}

// Translate forwards to the wrapped backend unless the breaker is open
func (b *Breaker) Translate(ctx context.Context, text, target string) (string, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.Translate(ctx, text, target)
	})
	if err != nil {
		var translationErr *Error
		if errors.As(err, &translationErr) {
			return "", err
		}
		return "", &Error{Backend: b.Name(), Target: target, Err: err}
	}
	return result.(string), nil
}

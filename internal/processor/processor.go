package processor

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"codeberg.org/snonux/globalize/internal/audio"
	"codeberg.org/snonux/globalize/internal/cloud"
	"codeberg.org/snonux/globalize/internal/detect"
	"codeberg.org/snonux/globalize/internal/language"
	"codeberg.org/snonux/globalize/internal/translation"
)

// Options tune a Processor
type Options struct {
	// Per remote call limits, zero means no limit beyond the caller's context
	TranslateTimeout time.Duration
	AudioTimeout     time.Duration

	// Log receives one line per step; os.Stdout when nil
	Log io.Writer
}

// stdout writes to os.Stdout as it is at the time of the write, so
// redirecting os.Stdout later also redirects the log
type stdout struct{}

func (stdout) Write(p []byte) (int, error) {
	return os.Stdout.Write(p)
}

// Config describes every component of a Processor
type Config struct {
	Detection        *detect.Config
	Translation      *translation.Config
	Audio            *audio.Config
	Cloud            *cloud.Config
	SkipSameLanguage bool
	Log              io.Writer
}

// DefaultConfig returns the keyless default setup
func DefaultConfig() *Config {
	return &Config{
		Detection:   detect.DefaultConfig(),
		Translation: translation.DefaultConfig(),
		Audio:       audio.DefaultProviderConfig(),
		Cloud:       cloud.DefaultConfig(),
	}
}

// Processor runs user actions against the detection, translation, speech
// and word cloud backends
type Processor struct {
	detector    detect.Detector
	translator  translation.Translator
	synthesizer *audio.Synthesizer
	clouds      *cloud.Builder
	catalog     *language.Catalog
	options     Options
}

// NewProcessor creates a processor from ready components
func NewProcessor(detector detect.Detector, translator translation.Translator, synthesizer *audio.Synthesizer, clouds *cloud.Builder, options *Options) *Processor {
	p := &Processor{
		detector:    detector,
		translator:  translator,
		synthesizer: synthesizer,
		clouds:      clouds,
		catalog:     translator.Languages(),
	}
	if options != nil {
		p.options = *options
	}
	if p.options.Log == nil {
		p.options.Log = stdout{}
	}
	return p
}

// FromConfig builds all components described by config
func FromConfig(ctx context.Context, config *Config) (*Processor, error) {
	if config == nil {
		config = DefaultConfig()
	}
	c := *config
	config = &c

	def := DefaultConfig()
	if config.Detection == nil {
		config.Detection = def.Detection
	}
	if config.Translation == nil {
		config.Translation = def.Translation
	}
	if config.Audio == nil {
		config.Audio = def.Audio
	}
	if config.Cloud == nil {
		config.Cloud = def.Cloud
	}

	detector, err := detect.New(config.Detection)
	if err != nil {
		return nil, fmt.Errorf("failed to create language detector: %w", err)
	}

	translator, err := translation.New(ctx, config.Translation)
	if err != nil {
		return nil, fmt.Errorf("failed to create translator: %w", err)
	}
	if config.SkipSameLanguage {
		translator = translation.NewSkipSameLanguage(translator, detector)
	}

	provider, err := audio.NewProvider(config.Audio)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio provider: %w", err)
	}

	return NewProcessor(
		detector,
		translator,
		audio.NewSynthesizer(provider),
		cloud.NewBuilder(config.Cloud, nil),
		&Options{
			TranslateTimeout: config.Translation.Timeout,
			AudioTimeout:     config.Audio.Timeout,
			Log:              config.Log,
		},
	), nil
}

// Warm runs the detector's expensive setup, if it has any. Frontends call it
// in the background at startup.
func (p *Processor) Warm() {
	w, ok := p.detector.(detect.Warmer)
	if !ok {
		return
	}
	start := time.Now()
	w.Warm()
	fmt.Fprintf(p.options.Log, "[warm] %s detector ready in %s\n", p.detector.Name(), time.Since(start).Round(time.Millisecond))
}

// Catalog returns the languages offered for translation and spelling
func (p *Processor) Catalog() *language.Catalog {
	return p.catalog
}

// Run dispatches action
func (p *Processor) Run(ctx context.Context, action Action, req Request) (*Result, error) {
	switch action {
	case ActionDetect:
		return p.Detect(ctx, req), nil
	case ActionTranslate:
		return p.TranslateToEnglish(ctx, req), nil
	case ActionCloud:
		return p.GenerateCloud(ctx, req), nil
	case ActionRead:
		return p.TranslateAndReadAloud(ctx, req), nil
	case ActionSpell:
		return p.SpellWord(ctx, req), nil
	default:
		return nil, fmt.Errorf("unknown action: %s", action)
	}
}

func (p *Processor) newResult(action Action) *Result {
	return &Result{Action: action, RequestID: uuid.NewString()}
}

func (p *Processor) logf(r *Result, format string, args ...interface{}) {
	fmt.Fprintf(p.options.Log, "[%s %s] %s\n", r.RequestID[:8], r.Action, fmt.Sprintf(format, args...))
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

package cli

import (
	"codeberg.org/snonux/globalize/internal/audio"
	"codeberg.org/snonux/globalize/internal/cloud"
	"codeberg.org/snonux/globalize/internal/detect"
	"codeberg.org/snonux/globalize/internal/translation"
	"codeberg.org/snonux/globalize/internal/web"
)

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	File       string
	NoPlay     bool
	NoAutoPlay bool

	// Web server flags
	Addr       string
	Background string

	// Detection and translation flags
	DetectEngine     string
	Backend          string
	SkipSameLanguage bool
	TranslateModel   string
	GeminiModel      string

	// Speech flags
	AudioProvider     string
	AudioFallback     string
	OpenAIModel       string
	OpenAIVoice       string
	OpenAISpeed       float64
	OpenAIInstruction string
	SlowSpeed         float64

	// Word cloud flags
	StopwordsFile string
	MaxWords      int

	// Per-command flags
	To     []string
	All    bool
	Voice  string
	Output string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	audioDefaults := audio.DefaultProviderConfig()
	translationDefaults := translation.DefaultConfig()

	return &Flags{
		Addr:           web.DefaultConfig().Addr,
		Background:     web.DefaultConfig().Background,
		DetectEngine:   detect.DefaultConfig().Engine,
		Backend:        translationDefaults.Backend,
		TranslateModel: translationDefaults.OpenAIModel,
		GeminiModel:    translationDefaults.GeminiModel,
		AudioProvider:  audioDefaults.Provider,
		OpenAIModel:    audioDefaults.OpenAIModel,
		OpenAIVoice:    audioDefaults.OpenAIVoice,
		OpenAISpeed:    audioDefaults.OpenAISpeed,
		SlowSpeed:      audioDefaults.SlowSpeed,
		MaxWords:       cloud.DefaultConfig().MaxWords,
		Voice:          "English",
		Output:         "cloud.png",
	}
}

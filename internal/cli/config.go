package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"codeberg.org/snonux/globalize/internal/gui"
	"codeberg.org/snonux/globalize/internal/processor"
	"codeberg.org/snonux/globalize/internal/web"
)

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".globalize" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".globalize")
	}

	// Environment variables, GLOBALIZE_AUDIO_PROVIDER overrides audio.provider
	viper.SetEnvPrefix("GLOBALIZE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	return keyFrom("OPENAI_API_KEY", "openai.api_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	return keyFrom("GEMINI_API_KEY", "gemini.api_key")
}

// GetGoogleKey retrieves the Google Cloud API key from environment or config
func GetGoogleKey() string {
	return keyFrom("GOOGLE_API_KEY", "google.api_key")
}

func keyFrom(env, key string) string {
	if v := os.Getenv(env); v != "" {
		return v
	}
	return viper.GetString(key)
}

// ProcessorConfig assembles the processor configuration from viper.
// Unset keys keep the package defaults.
func ProcessorConfig() *processor.Config {
	config := processor.DefaultConfig()

	d := config.Detection
	d.Engine = stringOr("detection.engine", d.Engine)
	d.MinLength = intOr("detection.min_length", d.MinLength)
	d.LowAccuracy = viper.GetBool("detection.low_accuracy")

	t := config.Translation
	t.Backend = stringOr("translation.backend", t.Backend)
	t.Timeout = durationOr("translation.timeout", t.Timeout)
	t.GoogleURL = stringOr("translation.google_url", t.GoogleURL)
	t.GoogleAPIKey = GetGoogleKey()
	t.OpenAIKey = GetOpenAIKey()
	t.OpenAIBaseURL = viper.GetString("openai.base_url")
	t.OpenAIModel = stringOr("translation.openai_model", t.OpenAIModel)
	t.GeminiKey = GetGeminiKey()
	t.GeminiModel = stringOr("translation.gemini_model", t.GeminiModel)
	t.BreakerFailures = uint32(intOr("translation.breaker_failures", int(t.BreakerFailures)))
	t.BreakerCooldown = durationOr("translation.breaker_cooldown", t.BreakerCooldown)
	config.SkipSameLanguage = viper.GetBool("translation.skip_same_language")

	a := config.Audio
	a.Provider = stringOr("audio.provider", a.Provider)
	a.Fallback = stringOr("audio.fallback", a.Fallback)
	a.Timeout = durationOr("audio.timeout", a.Timeout)
	a.OpenAIKey = t.OpenAIKey
	a.OpenAIBaseURL = t.OpenAIBaseURL
	a.OpenAIModel = stringOr("audio.openai_model", a.OpenAIModel)
	a.OpenAIVoice = stringOr("audio.openai_voice", a.OpenAIVoice)
	a.OpenAISpeed = floatOr("audio.openai_speed", a.OpenAISpeed)
	a.OpenAIInstruction = stringOr("audio.openai_instruction", a.OpenAIInstruction)
	a.SlowSpeed = floatOr("audio.slow_speed", a.SlowSpeed)

	c := config.Cloud
	c.StopwordsFile = stringOr("cloud.stopwords_file", c.StopwordsFile)
	c.StopwordsURL = stringOr("cloud.stopwords_url", c.StopwordsURL)
	c.MaxWords = intOr("cloud.max_words", c.MaxWords)

	return config
}

// WebConfig assembles the web server configuration from viper
func WebConfig() *web.Config {
	config := web.DefaultConfig()
	config.Addr = stringOr("server.addr", config.Addr)
	config.Background = stringOr("server.background", config.Background)
	config.ActionTimeout = durationOr("server.action_timeout", config.ActionTimeout)
	return config
}

// GUIConfig assembles the desktop configuration from viper
func GUIConfig() *gui.Config {
	config := gui.DefaultConfig()
	config.ActionTimeout = durationOr("server.action_timeout", config.ActionTimeout)
	if viper.IsSet("gui.auto_play") {
		config.AutoPlay = viper.GetBool("gui.auto_play")
	}
	return config
}

func stringOr(key, def string) string {
	if viper.IsSet(key) && viper.GetString(key) != "" {
		return viper.GetString(key)
	}
	return def
}

func intOr(key string, def int) int {
	if viper.IsSet(key) {
		return viper.GetInt(key)
	}
	return def
}

func floatOr(key string, def float64) float64 {
	if viper.IsSet(key) {
		return viper.GetFloat64(key)
	}
	return def
}

func durationOr(key string, def time.Duration) time.Duration {
	if viper.IsSet(key) {
		return viper.GetDuration(key)
	}
	return def
}

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func TestCreateRootCommand(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	if cmd.Use != "globalize" {
		t.Errorf("Expected Use to be 'globalize', got %s", cmd.Use)
	}
	if !strings.Contains(cmd.Short, "multilingual") {
		t.Errorf("Expected Short description to mention multilingual, got %q", cmd.Short)
	}

	// Persistent flags reach every subcommand
	for _, name := range []string{
		"config", "addr", "background", "detector", "backend", "skip-same-language",
		"translate-model", "gemini-model", "audio-provider", "audio-fallback",
		"openai-model", "openai-voice", "openai-speed", "openai-instruction",
		"slow-speed", "stopwords-file", "max-words",
	} {
		t.Run("flag_"+name, func(t *testing.T) {
			if lookupFlag(cmd, name) == nil {
				t.Errorf("Expected persistent flag %s to exist", name)
			}
		})
	}

	subcommands := map[string][]string{
		"serve":     nil,
		"gui":       {"no-auto-play"},
		"detect":    {"file"},
		"translate": {"file"},
		"read":      {"file", "to", "all", "no-play"},
		"spell":     {"voice", "no-play"},
		"cloud":     {"file", "output"},
		"languages": nil,
		"models":    nil,
	}

	for name, localFlags := range subcommands {
		t.Run("command_"+name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			if err != nil || sub.Name() != name {
				t.Fatalf("subcommand %s not found: %v", name, err)
			}
			for _, f := range localFlags {
				if lookupFlag(sub, f) == nil {
					t.Errorf("Expected %s to have flag --%s", name, f)
				}
			}
		})
	}
}

// lookupFlag finds a local or persistent flag of cmd
func lookupFlag(cmd *cobra.Command, name string) *pflag.Flag {
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag
	}
	return cmd.PersistentFlags().Lookup(name)
}

func TestSpellRequiresWord(t *testing.T) {
	cmd := CreateRootCommand(NewFlags())
	cmd.SetArgs([]string{"spell"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	if err := cmd.Execute(); err == nil {
		t.Error("Expected an error when spell has no word")
	}
}

func TestInitConfig(t *testing.T) {
	tests := []struct {
		name      string
		setupFunc func(t *testing.T) string
		check     func(t *testing.T)
	}{
		{
			name: "with config file",
			setupFunc: func(t *testing.T) string {
				cfgPath := filepath.Join(t.TempDir(), "test-config.yaml")
				content := `translation:
  backend: gemini
audio:
  provider: espeak
cloud:
  max_words: 50
server:
  addr: ":9090"`
				if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
					t.Fatalf("Failed to create test config: %v", err)
				}
				return cfgPath
			},
			check: func(t *testing.T) {
				if got := viper.GetString("translation.backend"); got != "gemini" {
					t.Errorf("translation.backend = %q, want gemini", got)
				}
				if got := viper.GetInt("cloud.max_words"); got != 50 {
					t.Errorf("cloud.max_words = %d, want 50", got)
				}
			},
		},
		{
			name:      "without config file",
			setupFunc: func(t *testing.T) string { return "" },
			check:     func(t *testing.T) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			defer viper.Reset()

			InitConfig(tt.setupFunc(t))
			tt.check(t)

			// Nested keys map onto GLOBALIZE_ variables
			t.Setenv("GLOBALIZE_AUDIO_OPENAI_VOICE", "nova")
			if got := viper.GetString("audio.openai_voice"); got != "nova" {
				t.Errorf("audio.openai_voice = %q, want nova from environment", got)
			}
		})
	}
}

func TestGetKeys(t *testing.T) {
	tests := []struct {
		name      string
		env       string
		configKey string
		get       func() string
	}{
		{"openai", "OPENAI_API_KEY", "openai.api_key", GetOpenAIKey},
		{"gemini", "GEMINI_API_KEY", "gemini.api_key", GetGeminiKey},
		{"google", "GOOGLE_API_KEY", "google.api_key", GetGoogleKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			defer viper.Reset()

			t.Setenv(tt.env, "")
			if got := tt.get(); got != "" {
				t.Errorf("key = %q, want empty when neither set", got)
			}

			viper.Set(tt.configKey, "config-key")
			if got := tt.get(); got != "config-key" {
				t.Errorf("key = %q, want config-key", got)
			}

			t.Setenv(tt.env, "env-key")
			if got := tt.get(); got != "env-key" {
				t.Errorf("key = %q, want env-key to win over config", got)
			}
		})
	}
}

func TestBindFlagsToViper(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	cmd := &cobra.Command{}
	flags := NewFlags()
	setupFlags(cmd, flags)

	cmd.PersistentFlags().Set("backend", "openai")
	cmd.PersistentFlags().Set("openai-model", "tts-1-hd")
	cmd.PersistentFlags().Set("addr", ":9000")

	if got := viper.GetString("translation.backend"); got != "openai" {
		t.Errorf("translation.backend = %s, want openai", got)
	}
	if got := viper.GetString("audio.openai_model"); got != "tts-1-hd" {
		t.Errorf("audio.openai_model = %s, want tts-1-hd", got)
	}
	if got := viper.GetString("server.addr"); got != ":9000" {
		t.Errorf("server.addr = %s, want :9000", got)
	}
}

func TestProcessorConfig(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")

	// Unset keys keep the package defaults
	config := ProcessorConfig()
	if config.Translation.Backend != "google" {
		t.Errorf("Translation.Backend = %q, want google", config.Translation.Backend)
	}
	if config.Audio.OpenAIKey != "sk-test" || config.Translation.OpenAIKey != "sk-test" {
		t.Error("OpenAI key not passed to translation and audio")
	}
	if config.Cloud.MaxWords != 200 {
		t.Errorf("Cloud.MaxWords = %d, want 200", config.Cloud.MaxWords)
	}
	if config.SkipSameLanguage {
		t.Error("SkipSameLanguage should default to false")
	}
	if config.Translation.BreakerFailures != 0 {
		t.Errorf("Translation.BreakerFailures = %d, want 0 (off)", config.Translation.BreakerFailures)
	}
	if config.Detection.LowAccuracy {
		t.Error("Detection.LowAccuracy should default to false")
	}

	viper.Set("detection.engine", "whatlang")
	viper.Set("detection.low_accuracy", true)
	viper.Set("translation.skip_same_language", true)
	viper.Set("translation.timeout", "5s")
	viper.Set("audio.provider", "espeak")
	viper.Set("audio.fallback", "google")
	viper.Set("audio.slow_speed", 0.5)
	viper.Set("cloud.max_words", 25)

	config = ProcessorConfig()
	if config.Detection.Engine != "whatlang" {
		t.Errorf("Detection.Engine = %q, want whatlang", config.Detection.Engine)
	}
	if !config.Detection.LowAccuracy {
		t.Error("Detection.LowAccuracy = false, want true")
	}
	if !config.SkipSameLanguage {
		t.Error("SkipSameLanguage = false, want true")
	}
	if config.Translation.Timeout != 5*time.Second {
		t.Errorf("Translation.Timeout = %v, want 5s", config.Translation.Timeout)
	}
	if config.Audio.Provider != "espeak" || config.Audio.Fallback != "google" {
		t.Errorf("Audio = %s/%s, want espeak/google", config.Audio.Provider, config.Audio.Fallback)
	}
	if config.Audio.SlowSpeed != 0.5 {
		t.Errorf("Audio.SlowSpeed = %v, want 0.5", config.Audio.SlowSpeed)
	}
	if config.Cloud.MaxWords != 25 {
		t.Errorf("Cloud.MaxWords = %d, want 25", config.Cloud.MaxWords)
	}
}

func TestWebAndGUIConfig(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	if got := WebConfig().Addr; got != ":8080" {
		t.Errorf("WebConfig().Addr = %q, want :8080", got)
	}
	if !GUIConfig().AutoPlay {
		t.Error("GUIConfig().AutoPlay should default to true")
	}

	viper.Set("server.addr", "127.0.0.1:3000")
	viper.Set("server.action_timeout", "30s")
	viper.Set("gui.auto_play", false)

	web := WebConfig()
	if web.Addr != "127.0.0.1:3000" || web.ActionTimeout != 30*time.Second {
		t.Errorf("WebConfig() = %+v", web)
	}
	if GUIConfig().AutoPlay {
		t.Error("GUIConfig().AutoPlay = true, want false")
	}
}

package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/globalize/internal"
	"codeberg.org/snonux/globalize/internal/audio"
	"codeberg.org/snonux/globalize/internal/translation"
)

// CreateRootCommand creates the root command and all subcommands. Without
// a subcommand the web server is started.
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "globalize",
		Short: "Small multilingual helper",
		Long: `globalize detects the language of a paragraph, translates it to
English, reads translations aloud, builds word clouds and spells words
letter by letter.

Examples:
  globalize                                  # Start the web app on :8080
  globalize gui                              # Launch the desktop app
  globalize detect "Bonjour tout le monde"   # Detect the language
  globalize read --to German --to Japanese -f text.txt
  globalize spell --voice French bonjour
  echo "some text" | globalize cloud -o cloud.png`,
		Args:          cobra.NoArgs,
		Version:       internal.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), flags)
		},
	}

	setupFlags(rootCmd, flags)

	rootCmd.AddCommand(
		newServeCommand(flags),
		newGUICommand(flags),
		newDetectCommand(flags),
		newTranslateCommand(flags),
		newReadCommand(flags),
		newSpellCommand(flags),
		newCloudCommand(flags),
		newLanguagesCommand(),
		newModelsCommand(),
	)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	pf := cmd.PersistentFlags()

	// Global flags
	pf.StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.globalize.yaml)")

	// Web server flags
	pf.StringVar(&flags.Addr, "addr", flags.Addr, "Web server listen address")
	pf.StringVar(&flags.Background, "background", flags.Background, "Background image of the web page (skipped when missing)")

	// Detection and translation flags
	pf.StringVar(&flags.DetectEngine, "detector", flags.DetectEngine, "Language detection engine: lingua or whatlang")
	pf.StringVar(&flags.Backend, "backend", flags.Backend, "Translation backend: "+strings.Join(translation.Backends(), ", "))
	pf.BoolVar(&flags.SkipSameLanguage, "skip-same-language", false, "Do not translate text already in the target language")
	pf.StringVar(&flags.TranslateModel, "translate-model", flags.TranslateModel, "OpenAI chat model used by the openai backend")
	pf.StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini model used by the gemini backend")

	// Speech flags
	pf.StringVar(&flags.AudioProvider, "audio-provider", flags.AudioProvider, "Speech provider: "+strings.Join(audio.Providers(), ", "))
	pf.StringVar(&flags.AudioFallback, "audio-fallback", "", "Speech provider tried when the first one fails")
	pf.StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI TTS model: tts-1, tts-1-hd, gpt-4o-mini-tts")
	pf.StringVar(&flags.OpenAIVoice, "openai-voice", flags.OpenAIVoice, "OpenAI voice: alloy, ash, ballad, coral, echo, fable, onyx, nova, sage, shimmer, verse")
	pf.Float64Var(&flags.OpenAISpeed, "openai-speed", flags.OpenAISpeed, "OpenAI speech speed (0.25 to 4.0)")
	pf.StringVar(&flags.OpenAIInstruction, "openai-instruction", "", "Voice instructions for gpt-4o-mini-tts model")
	pf.Float64Var(&flags.SlowSpeed, "slow-speed", flags.SlowSpeed, "OpenAI speech speed for spelled words")

	// Word cloud flags
	pf.StringVar(&flags.StopwordsFile, "stopwords-file", "", "Local English stopword list (one word per line)")
	pf.IntVar(&flags.MaxWords, "max-words", flags.MaxWords, "Maximum number of words in a word cloud")

	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	viper.BindPFlag("server.addr", pf.Lookup("addr"))
	viper.BindPFlag("server.background", pf.Lookup("background"))
	viper.BindPFlag("detection.engine", pf.Lookup("detector"))
	viper.BindPFlag("translation.backend", pf.Lookup("backend"))
	viper.BindPFlag("translation.skip_same_language", pf.Lookup("skip-same-language"))
	viper.BindPFlag("translation.openai_model", pf.Lookup("translate-model"))
	viper.BindPFlag("translation.gemini_model", pf.Lookup("gemini-model"))
	viper.BindPFlag("audio.provider", pf.Lookup("audio-provider"))
	viper.BindPFlag("audio.fallback", pf.Lookup("audio-fallback"))
	viper.BindPFlag("audio.openai_model", pf.Lookup("openai-model"))
	viper.BindPFlag("audio.openai_voice", pf.Lookup("openai-voice"))
	viper.BindPFlag("audio.openai_speed", pf.Lookup("openai-speed"))
	viper.BindPFlag("audio.openai_instruction", pf.Lookup("openai-instruction"))
	viper.BindPFlag("audio.slow_speed", pf.Lookup("slow-speed"))
	viper.BindPFlag("cloud.stopwords_file", pf.Lookup("stopwords-file"))
	viper.BindPFlag("cloud.max_words", pf.Lookup("max-words"))
}

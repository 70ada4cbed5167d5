package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/globalize/internal/audio"
	"codeberg.org/snonux/globalize/internal/gui"
	"codeberg.org/snonux/globalize/internal/models"
	"codeberg.org/snonux/globalize/internal/processor"
	"codeberg.org/snonux/globalize/internal/web"
)

func newProcessor(ctx context.Context) (*processor.Processor, error) {
	return processor.FromConfig(ctx, ProcessorConfig())
}

func newServeCommand(flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web app",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), flags)
		},
	}
}

// runServe serves the web app until ctx is cancelled
func runServe(ctx context.Context, flags *Flags) error {
	proc, err := newProcessor(ctx)
	if err != nil {
		return err
	}

	config := WebConfig()
	config.AccessLog = os.Stdout

	server, err := web.NewServer(proc, config)
	if err != nil {
		return fmt.Errorf("failed to create web server: %w", err)
	}

	go proc.Warm()

	errc := make(chan error, 1)
	go func() { errc <- server.Listen() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		fmt.Println("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}

func newGUICommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gui",
		Short: "Launch the desktop app",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			proc, err := newProcessor(cmd.Context())
			if err != nil {
				return err
			}

			config := GUIConfig()
			if flags.NoAutoPlay {
				config.AutoPlay = false
			}
			go proc.Warm()
			gui.New(proc, config).Run()
			return nil
		},
	}
	cmd.Flags().BoolVar(&flags.NoAutoPlay, "no-auto-play", false, "Disable automatic audio playback")
	return cmd
}

func newDetectCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect [text...]",
		Short: "Detect the language of a paragraph",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := ReadText(args, flags.File, stdinIfPiped())
			if err != nil {
				return err
			}
			return runAction(cmd, processor.ActionDetect, processor.Request{Text: text}, true)
		},
	}
	addFileFlag(cmd, flags)
	return cmd
}

func newTranslateCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translate [text...]",
		Short: "Translate a paragraph to English",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := ReadText(args, flags.File, stdinIfPiped())
			if err != nil {
				return err
			}
			return runAction(cmd, processor.ActionTranslate, processor.Request{Text: text}, true)
		},
	}
	addFileFlag(cmd, flags)
	return cmd
}

func newReadCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "read [text...]",
		Short: "Translate a paragraph and read it aloud in each target language",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := ReadText(args, flags.File, stdinIfPiped())
			if err != nil {
				return err
			}
			req := processor.Request{Text: text, Targets: flags.To, SelectAll: flags.All}
			return runAction(cmd, processor.ActionRead, req, !flags.NoPlay)
		},
	}
	addFileFlag(cmd, flags)
	cmd.Flags().StringSliceVar(&flags.To, "to", nil, "Target language names, repeatable (default: English)")
	cmd.Flags().BoolVar(&flags.All, "all", false, "Use every supported language as target")
	cmd.Flags().BoolVar(&flags.NoPlay, "no-play", false, "Do not play the generated audio")
	return cmd
}

func newSpellCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spell <word>",
		Short: "Spell a word aloud letter by letter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := processor.Request{Word: args[0], Voice: flags.Voice}
			return runAction(cmd, processor.ActionSpell, req, !flags.NoPlay)
		},
	}
	cmd.Flags().StringVar(&flags.Voice, "voice", flags.Voice, "Language whose voice spells the word")
	cmd.Flags().BoolVar(&flags.NoPlay, "no-play", false, "Do not play the generated audio")
	return cmd
}

func newCloudCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cloud [text...]",
		Short: "Build an English word cloud of a paragraph",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := ReadText(args, flags.File, stdinIfPiped())
			if err != nil {
				return err
			}

			result, err := execute(cmd, processor.ActionCloud, processor.Request{Text: text})
			if err != nil {
				return err
			}
			if result.Figure == nil {
				if result.Failed() {
					return fmt.Errorf("%s failed", processor.ActionCloud)
				}
				return nil
			}
			if err := os.WriteFile(flags.Output, result.Figure.PNG, 0644); err != nil {
				return fmt.Errorf("failed to write word cloud: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Word cloud saved to: %s\n", flags.Output)
			return nil
		},
	}
	addFileFlag(cmd, flags)
	cmd.Flags().StringVarP(&flags.Output, "output", "o", flags.Output, "PNG file to write")
	return cmd
}

func newLanguagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the languages supported by the translation backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			proc, err := newProcessor(cmd.Context())
			if err != nil {
				return err
			}
			PrintLanguages(cmd.OutOrStdout(), proc.Catalog())
			return nil
		},
	}
}

func newModelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List OpenAI models available for the current API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lister := models.NewLister(GetOpenAIKey(), viper.GetString("openai.base_url"))
			return lister.ListAvailableModels(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

func addFileFlag(cmd *cobra.Command, flags *Flags) {
	cmd.Flags().StringVarP(&flags.File, "file", "f", "", "Read the paragraph from a file")
}

// execute runs action and prints the result
func execute(cmd *cobra.Command, action processor.Action, req processor.Request) (*processor.Result, error) {
	proc, err := newProcessor(cmd.Context())
	if err != nil {
		return nil, err
	}

	result, err := proc.Run(cmd.Context(), action, req)
	if err != nil {
		return nil, err
	}
	PrintResult(cmd.OutOrStdout(), result)
	return result, nil
}

// runAction runs action, prints the result and plays its clips
func runAction(cmd *cobra.Command, action processor.Action, req processor.Request, play bool) error {
	result, err := execute(cmd, action, req)
	if err != nil {
		return err
	}
	if play {
		PlayResult(cmd.Context(), cmd.OutOrStdout(), audio.NewPlayer(), result)
	}
	if result.Failed() {
		return fmt.Errorf("%s failed", action)
	}
	return nil
}

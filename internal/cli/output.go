package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"codeberg.org/snonux/globalize/internal"
	"codeberg.org/snonux/globalize/internal/audio"
	"codeberg.org/snonux/globalize/internal/language"
	"codeberg.org/snonux/globalize/internal/processor"
)

// ReadText returns the paragraph to work on. A file wins over arguments,
// arguments win over stdin.
func ReadText(args []string, file string, stdin io.Reader) (string, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", file, err)
		}
		return string(data), nil
	}

	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	if stdin != nil {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	return "", nil
}

// stdinIfPiped returns os.Stdin unless it is a terminal
func stdinIfPiped() io.Reader {
	info, err := os.Stdin.Stat()
	if err != nil || info.Mode()&os.ModeCharDevice != 0 {
		return nil
	}
	return os.Stdin
}

// PrintResult writes banners and sections as plain text
func PrintResult(w io.Writer, r *processor.Result) {
	for _, b := range r.Banners {
		fmt.Fprintf(w, "%s: %s\n", strings.ToUpper(b.Kind.String()), b.Message)
	}

	for _, s := range r.Sections {
		fmt.Fprintf(w, "\n%s\n", s.Title())
		if s.Text != "" {
			fmt.Fprintln(w, s.Text)
		}
		for _, b := range s.Banners {
			fmt.Fprintf(w, "%s: %s\n", strings.ToUpper(b.Kind.String()), b.Message)
		}
		if s.Audio != nil {
			fmt.Fprintf(w, "[audio: %s, %s]\n", s.Audio.Format, humanSize(len(s.Audio.Data)))
		}
	}

	if r.Figure != nil {
		fmt.Fprintf(w, "\nWord cloud: %dx%d, %d words\n", r.Figure.Width, r.Figure.Height, len(r.Figure.Words))
		top := r.Figure.Words
		if len(top) > 10 {
			top = top[:10]
		}
		for _, wc := range top {
			fmt.Fprintf(w, "  %-20s %d\n", wc.Word, wc.Count)
		}
	}
}

// PlayResult plays the clips of r one after another. Playback problems
// are warnings; the result itself is already printed.
func PlayResult(ctx context.Context, w io.Writer, player *audio.Player, r *processor.Result) {
	for _, s := range r.Sections {
		if s.Audio == nil {
			continue
		}
		if ctx.Err() != nil {
			return
		}

		fmt.Fprintf(w, "Playing: %s\n", internal.Abbreviate(s.Title(), 60))
		if err := player.Play(ctx, s.Audio); err != nil {
			fmt.Fprintf(w, "Warning: %v\n", err)
			if errors.Is(err, audio.ErrNoPlayer) {
				return
			}
		}
	}
}

// PrintLanguages writes one "Name code" line per catalog entry
func PrintLanguages(w io.Writer, catalog *language.Catalog) {
	names := catalog.Names()
	for i, code := range catalog.Codes() {
		fmt.Fprintf(w, "%-28s %s\n", names[i], code)
	}
}

func humanSize(n int) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	return fmt.Sprintf("%.1f KiB", float64(n)/1024)
}

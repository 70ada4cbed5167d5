package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"codeberg.org/snonux/globalize/internal/audio"
	"codeberg.org/snonux/globalize/internal/cloud"
	"codeberg.org/snonux/globalize/internal/language"
	"codeberg.org/snonux/globalize/internal/processor"
)

func TestReadText(t *testing.T) {
	file := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(file, []byte("from file"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		args  []string
		file  string
		stdin string
		want  string
	}{
		{"file wins", []string{"from", "args"}, file, "from stdin", "from file"},
		{"args joined", []string{"from", "args"}, "", "from stdin", "from args"},
		{"stdin", nil, "", "from stdin", "from stdin"},
		{"nothing", nil, "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdin io.Reader
			if tt.stdin != "" {
				stdin = strings.NewReader(tt.stdin)
			}

			got, err := ReadText(tt.args, tt.file, stdin)
			if err != nil {
				t.Fatalf("ReadText() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadText() = %q, want %q", got, tt.want)
			}
		})
	}

	if _, err := ReadText(nil, filepath.Join(t.TempDir(), "missing.txt"), nil); err == nil {
		t.Error("ReadText() with a missing file should fail")
	}
}

func TestPrintResult(t *testing.T) {
	r := &processor.Result{
		Action: processor.ActionRead,
		Banners: []processor.Banner{
			{Kind: processor.Error, Message: "Unknown language selection: Klingon"},
		},
		Sections: []processor.Section{
			{
				Name:  "German",
				Code:  "de",
				Text:  "Hallo Welt",
				Audio: &audio.Clip{Data: make([]byte, 2048), Format: "mp3"},
			},
			{
				Name:    "French",
				Code:    "fr",
				Text:    "Bonjour le monde",
				Banners: []processor.Banner{{Kind: processor.Warning, Message: "Audio generation failed for lang='fr': boom"}},
			},
		},
		Figure: &cloud.Figure{
			Width:  800,
			Height: 400,
			Words:  []cloud.Placement{{Word: "hello", Count: 3}},
		},
	}

	var buf bytes.Buffer
	PrintResult(&buf, r)
	out := buf.String()

	for _, want := range []string{
		"ERROR: Unknown language selection: Klingon",
		"German (de)\nHallo Welt",
		"[audio: mp3, 2.0 KiB]",
		"WARNING: Audio generation failed for lang='fr': boom",
		"Word cloud: 800x400, 1 words",
		"hello",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPlayResultCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &processor.Result{
		Sections: []processor.Section{
			{Name: "German", Code: "de", Audio: &audio.Clip{Data: []byte("x"), Format: "mp3"}},
		},
	}

	var buf bytes.Buffer
	PlayResult(ctx, &buf, audio.NewPlayer(), r)
	if buf.Len() != 0 {
		t.Errorf("PlayResult() with a cancelled context printed %q", buf.String())
	}
}

func TestPrintLanguages(t *testing.T) {
	catalog := language.NewCatalog([]language.Entry{
		{Code: "de", Name: "german"},
		{Code: "zh-tw", Name: "chinese (traditional)"},
	})

	var buf bytes.Buffer
	PrintLanguages(&buf, catalog)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.HasPrefix(lines[0], "German") || !strings.HasSuffix(lines[0], " de") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], " zh-tw") {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestHumanSize(t *testing.T) {
	if got := humanSize(512); got != "512 B" {
		t.Errorf("humanSize(512) = %q", got)
	}
	if got := humanSize(1536); got != "1.5 KiB" {
		t.Errorf("humanSize(1536) = %q", got)
	}
}

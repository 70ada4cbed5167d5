package cloud

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync/atomic"
	"testing"
)

var englishStopwords = []string{"the", "a", "an", "and", "is", "of", "to", "in", "it"}

func TestTokenize(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"The cat sat.", []string{"the", "cat", "sat"}},
		{"the the the ... !!!", []string{"the", "the", "the"}},
		{"R2D2 beeps 42 times", []string{"beeps", "times"}},
		{"Über Straße", []string{"über", "straße"}},
		{"", nil},
	}

	for _, tt := range tests {
		got := Tokenize(tt.text)
		if len(got) == 0 && len(tt.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestFrequencies(t *testing.T) {
	stop := map[string]bool{"the": true}
	got := Frequencies([]string{"the", "dog", "cat", "dog", "the", "ant", "cat", "dog"}, stop)
	want := []WordCount{{"dog", 3}, {"cat", 2}, {"ant", 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Frequencies() = %v, want %v", got, want)
	}
}

func TestBuildRejectsStopwordsAndPunctuation(t *testing.T) {
	b := NewBuilder(DefaultConfig(), StaticStopwords(englishStopwords...))

	for _, text := range []string{"the the the ... !!!", "", "123 456", "?!"} {
		_, err := b.Build(context.Background(), text)

		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("Build(%q) error = %v, want *ValidationError", text, err)
		}
		if verr.Error() != "no valid words" {
			t.Errorf("unexpected message %q", verr.Error())
		}
	}
}

func TestBuildRendersPNG(t *testing.T) {
	b := NewBuilder(DefaultConfig(), StaticStopwords(englishStopwords...))
	text := "Go is a language. The gopher loves the language and the gopher loves Go. Go go go."

	fig, err := b.Build(context.Background(), text)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if !fig.StopwordsLoaded {
		t.Error("expected stopwords to be reported as loaded")
	}

	img, err := png.Decode(bytes.NewReader(fig.PNG))
	if err != nil {
		t.Fatalf("figure is not a PNG: %v", err)
	}
	if bounds := img.Bounds(); bounds.Dx() != 800 || bounds.Dy() != 400 {
		t.Errorf("canvas = %v, want 800x400", bounds)
	}
	if r, g, bl, _ := img.At(0, 0).RGBA(); r != 0xffff || g != 0xffff || bl != 0xffff {
		t.Error("expected white background in the corner")
	}

	if len(fig.Words) == 0 || fig.Words[0].Word != "go" {
		t.Fatalf("expected 'go' to be the top word, got %+v", fig.Words)
	}
	for _, p := range fig.Words {
		if englishStopwords[0] == p.Word {
			t.Errorf("stopword %q was drawn", p.Word)
		}
	}
	if !strings.HasPrefix(fig.DataURI(), "data:image/png;base64,") {
		t.Error("unexpected data URI prefix")
	}
}

func TestBuildMaxWords(t *testing.T) {
	config := DefaultConfig()
	config.MaxWords = 3
	b := NewBuilder(config, StaticStopwords())

	fig, err := b.Build(context.Background(), "alpha beta gamma delta epsilon zeta")
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(fig.Words) > 3 {
		t.Errorf("placed %d words, want at most 3", len(fig.Words))
	}
}

func fixedMeasure(word string, size float64) (float64, float64) {
	return float64(len(word)) * size * 0.6, size
}

func TestLayoutNoOverlap(t *testing.T) {
	var words []WordCount
	for i, w := range strings.Fields("lorem ipsum dolor sit amet consectetur adipiscing elit sed do eiusmod tempor incididunt ut labore et dolore magna aliqua") {
		words = append(words, WordCount{Word: w, Count: 20 - i})
	}

	placed := layout(words, 800, 400, fixedMeasure, rand.New(rand.NewSource(1)))
	if len(placed) == 0 {
		t.Fatal("nothing placed")
	}

	for i, p := range placed {
		if !p.bounds().inside(800, 400) {
			t.Errorf("%q is outside the canvas: %+v", p.Word, p)
		}
		for _, q := range placed[i+1:] {
			if p.bounds().overlaps(q.bounds()) {
				t.Errorf("%q overlaps %q", p.Word, q.Word)
			}
		}
	}

	if placed[0].Word != "lorem" {
		t.Errorf("first placed word = %q, want lorem", placed[0].Word)
	}
	for _, p := range placed[1:] {
		if p.Size > placed[0].Size {
			t.Errorf("%q (%.1f) is larger than the top word (%.1f)", p.Word, p.Size, placed[0].Size)
		}
	}
}

func TestLayoutDropsWordsThatCannotFit(t *testing.T) {
	words := []WordCount{{Word: strings.Repeat("x", 200), Count: 1}}
	if placed := layout(words, 100, 50, fixedMeasure, rand.New(rand.NewSource(1))); len(placed) != 0 {
		t.Errorf("expected oversized word to be dropped, got %+v", placed)
	}
}

func TestStopwordsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stopwords.txt")
	if err := os.WriteFile(path, []byte("# english\nThe\n\nand\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	words, loaded := NewStopwords(path, "", 0).Load(context.Background())
	if !loaded || !words["the"] || !words["and"] || len(words) != 2 {
		t.Errorf("Load() = %v, %v", words, loaded)
	}
}

func TestStopwordsRemoteLoadedOnce(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte("the\nof\n"))
	}))
	defer server.Close()

	s := NewStopwords(filepath.Join(t.TempDir(), "missing.txt"), server.URL, 0)
	for i := 0; i < 3; i++ {
		words, loaded := s.Load(context.Background())
		if !loaded || !words["of"] {
			t.Fatalf("Load() = %v, %v", words, loaded)
		}
	}
	if calls != 1 {
		t.Errorf("remote list fetched %d times, want 1", calls)
	}
}

func TestStopwordsRetryAfterFailedLoad(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("the\n"))
	}))
	defer server.Close()

	s := NewStopwords("", server.URL, 0)
	if _, loaded := s.Load(context.Background()); loaded {
		t.Fatal("first load should fail")
	}
	for i := 0; i < 2; i++ {
		if words, loaded := s.Load(context.Background()); !loaded || !words["the"] {
			t.Fatalf("Load() = %v, %v", words, loaded)
		}
	}
	if calls != 2 {
		t.Errorf("remote list fetched %d times, want 2", calls)
	}
}

func TestStopwordsIgnoreCanceledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("the\n"))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	words, loaded := NewStopwords("", server.URL, 0).Load(ctx)
	if !loaded || !words["the"] {
		t.Errorf("Load() = %v, %v", words, loaded)
	}
}

func TestStopwordsFallbackToEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	b := NewBuilder(DefaultConfig(), NewStopwords("", server.URL, 0))
	fig, err := b.Build(context.Background(), "the cat")
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if fig.StopwordsLoaded {
		t.Error("expected StopwordsLoaded to be false")
	}
	if len(fig.Words) != 2 {
		t.Errorf("expected both words without stopword filtering, got %d", len(fig.Words))
	}
}

package audio

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
	"unicode/utf8"
)

func TestPackageRPC(t *testing.T) {
	tests := []struct {
		slow      bool
		wantSpeed interface{}
	}{
		{false, nil},
		{true, true},
	}

	for _, tt := range tests {
		payload, err := packageRPC("c, a, t", "en", tt.slow)
		if err != nil {
			t.Fatalf("packageRPC() error = %v", err)
		}

		var outer [][][]interface{}
		if err := json.Unmarshal([]byte(payload), &outer); err != nil {
			t.Fatalf("payload is not JSON: %v", err)
		}
		rpc := outer[0][0]
		if rpc[0] != "jQ1olc" || rpc[3] != "generic" || rpc[2] != nil {
			t.Errorf("unexpected envelope %v", rpc)
		}

		var inner []interface{}
		if err := json.Unmarshal([]byte(rpc[1].(string)), &inner); err != nil {
			t.Fatalf("parameter is not JSON: %v", err)
		}
		if inner[0] != "c, a, t" || inner[1] != "en" || inner[2] != tt.wantSpeed || inner[3] != "null" {
			t.Errorf("unexpected parameter %v", inner)
		}
	}
}

func TestParseRPCAudio(t *testing.T) {
	body := ")]}'\n\n104\n[[\"wrb.fr\",\"jQ1olc\",\"[\\\"SUQz\\\"]\",null,null,null,\"generic\"]]\n56\n[[\"di\",30]]\n"

	data, err := parseRPCAudio([]byte(body))
	if err != nil {
		t.Fatalf("parseRPCAudio() error = %v", err)
	}
	if string(data) != "ID3" {
		t.Errorf("decoded %q, want ID3", data)
	}

	if _, err := parseRPCAudio([]byte(")]}'\n[[\"er\",null]]")); err == nil {
		t.Error("expected error when no audio is present")
	}
}

func TestSplitChunks(t *testing.T) {
	long := strings.Repeat("word ", 60)
	chunks := splitChunks(long, 100)
	if len(chunks) < 3 {
		t.Fatalf("expected several chunks, got %d", len(chunks))
	}
	for _, c := range chunks {
		if n := utf8.RuneCountInString(c); n > 100 {
			t.Errorf("chunk of %d runes exceeds limit", n)
		}
	}
	if strings.Join(chunks, " ") != strings.TrimSpace(long) {
		t.Error("chunks do not reassemble the input")
	}

	giant := strings.Repeat("я", 250)
	chunks = splitChunks(giant, 100)
	if len(chunks) != 3 || utf8.RuneCountInString(chunks[2]) != 50 {
		t.Errorf("unexpected split of long word: %d chunks", len(chunks))
	}

	if got := splitChunks("  ", 100); len(got) != 0 {
		t.Errorf("expected no chunks for blank text, got %v", got)
	}
}

func TestGoogleProviderGenerateAudio(t *testing.T) {
	var (
		mu       sync.Mutex
		requests []string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		mu.Lock()
		requests = append(requests, r.PostForm.Get("f.req"))
		mu.Unlock()
		w.Write([]byte(")]}'\n\n[[\"wrb.fr\",\"jQ1olc\",\"[\\\"SUQz\\\"]\",null,null,null,\"generic\"]]\n"))
	}))
	defer server.Close()

	p := NewGoogleProvider(server.URL, time.Second)
	text := strings.Repeat("hello ", 40)

	clip, err := p.GenerateAudio(context.Background(), text, "he", false)
	if err != nil {
		t.Fatalf("GenerateAudio() error = %v", err)
	}
	if len(requests) != 3 {
		t.Fatalf("requests = %d, want 3 chunks", len(requests))
	}
	if string(clip.Data) != "ID3ID3ID3" {
		t.Errorf("clip data = %q", clip.Data)
	}
	if clip.Lang != "he" || clip.Format != "mp3" {
		t.Errorf("unexpected clip metadata %+v", clip)
	}
	if !strings.Contains(requests[0], `\"iw\"`) {
		t.Errorf("expected legacy wire code for Hebrew in %s", requests[0])
	}
}

func TestGoogleProviderUnsupportedLanguage(t *testing.T) {
	p := NewGoogleProvider("http://127.0.0.1:1", time.Second)
	if _, err := p.GenerateAudio(context.Background(), "hello", "xx", false); err == nil {
		t.Error("expected error for unsupported language")
	}
}

func TestGoogleProviderServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	if _, err := NewGoogleProvider(server.URL, time.Second).GenerateAudio(context.Background(), "hello", "en", false); err == nil {
		t.Error("expected error for rate limited response")
	}
}

func TestGoogleLanguages(t *testing.T) {
	codes := GoogleLanguages()
	for i := 1; i < len(codes); i++ {
		if codes[i-1] > codes[i] {
			t.Fatal("codes are not sorted")
		}
	}
	for _, want := range []string{"en", "he", "id", "zh"} {
		if !googleLanguages[want] {
			t.Errorf("expected %s to be supported", want)
		}
	}
}

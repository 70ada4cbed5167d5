package models

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
)

func TestCategorize(t *testing.T) {
	got := Categorize([]string{"whisper-1", "gpt-4o-mini", "tts-1-hd", "dall-e-3", "gpt-4o-mini-tts", "chatgpt-4o-latest", "tts-1"})

	wantSpeech := []string{"gpt-4o-mini-tts", "tts-1", "tts-1-hd"}
	wantChat := []string{"chatgpt-4o-latest", "gpt-4o-mini"}
	if !reflect.DeepEqual(got.Speech, wantSpeech) {
		t.Errorf("Speech = %v, want %v", got.Speech, wantSpeech)
	}
	if !reflect.DeepEqual(got.Chat, wantChat) {
		t.Errorf("Chat = %v, want %v", got.Chat, wantChat)
	}
}

func TestListAvailableModels_NoAPIKey(t *testing.T) {
	lister := NewLister("", "")

	err := lister.ListAvailableModels(context.Background(), &bytes.Buffer{})
	if err == nil {
		t.Fatal("Expected error for missing API key")
	}

	expectedError := "OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .globalize.yaml"
	if err.Error() != expectedError {
		t.Errorf("Expected error '%s', got: %v", expectedError, err)
	}
}

func modelServer(t *testing.T, ids ...string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/models") {
			http.NotFound(w, r)
			return
		}
		var items []string
		for _, id := range ids {
			items = append(items, fmt.Sprintf(`{"id":%q,"object":"model","owned_by":"openai"}`, id))
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"object":"list","data":[%s]}`, strings.Join(items, ","))
	}))
}

func TestListAvailableModels(t *testing.T) {
	server := modelServer(t, "gpt-4o-mini", "tts-1", "dall-e-3")
	defer server.Close()

	var out bytes.Buffer
	if err := NewLister("test-key", server.URL).ListAvailableModels(context.Background(), &out); err != nil {
		t.Fatalf("ListAvailableModels() error = %v", err)
	}

	for _, want := range []string{"Text-to-Speech (TTS) Models:\n  tts-1\n", "Chat/Translation Models:\n  gpt-4o-mini\n"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
	if strings.Contains(out.String(), "dall-e") {
		t.Error("image models should not be listed")
	}
}

func TestListAvailableModels_ManyChatModels(t *testing.T) {
	ids := []string{"gpt-4o", "gpt-4o-mini"}
	for i := 0; i < 10; i++ {
		ids = append(ids, fmt.Sprintf("gpt-3.5-turbo-%02d", i))
	}
	server := modelServer(t, ids...)
	defer server.Close()

	var out bytes.Buffer
	if err := NewLister("test-key", server.URL).ListAvailableModels(context.Background(), &out); err != nil {
		t.Fatalf("ListAvailableModels() error = %v", err)
	}
	if !strings.Contains(out.String(), "... and 10 more models") {
		t.Errorf("expected truncated listing:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "No TTS models found") {
		t.Error("expected TTS placeholder")
	}
}

func TestListAvailableModels_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":{"message":"bad key","type":"invalid_request_error"}}`)
	}))
	defer server.Close()

	if err := NewLister("test-key", server.URL).ListAvailableModels(context.Background(), &bytes.Buffer{}); err == nil {
		t.Error("expected error from failing server")
	}
}

package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"codeberg.org/snonux/globalize/internal/audio"
	"codeberg.org/snonux/globalize/internal/cloud"
	"codeberg.org/snonux/globalize/internal/processor"
	"codeberg.org/snonux/globalize/internal/testutil"
)

func newTestServer(t *testing.T, translator *testutil.MockTranslator, config *Config) *Server {
	t.Helper()

	proc := processor.NewProcessor(
		&testutil.MockDetector{Code: "de"},
		translator,
		audio.NewSynthesizer(&testutil.MockAudioProvider{}),
		cloud.NewBuilder(cloud.DefaultConfig(), cloud.StaticStopwords("the", "is")),
		&processor.Options{Log: io.Discard},
	)

	if config == nil {
		config = DefaultConfig()
		config.Background = ""
	}
	s, err := NewServer(proc, config)
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	return s
}

func do(t *testing.T, s *Server, method, target string, form url.Values) (int, string) {
	t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := s.App().Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp.StatusCode, string(data)
}

func TestIndex(t *testing.T) {
	s := newTestServer(t, &testutil.MockTranslator{}, nil)

	code, body := do(t, s, http.MethodGet, "/", nil)
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	testutil.AssertContains(t, body,
		"Globalize: small multilingual helper",
		`<option value="English" selected>English</option>`,
		`<option value="German" >German</option>`,
		"Detect language",
		"Spell Word Aloud",
	)
	testutil.AssertNotContains(t, body, "background-image", `class="result"`)
}

func TestDetectAction(t *testing.T) {
	s := newTestServer(t, &testutil.MockTranslator{}, nil)

	code, body := do(t, s, http.MethodPost, "/action/detect", url.Values{"text": {"Guten Morgen <b>Welt</b>"}})
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	testutil.AssertContains(t, body,
		`<div class="banner success">Detected: German (de)</div>`,
		"Guten Morgen &lt;b&gt;Welt&lt;/b&gt;",
	)
}

func TestReadAction(t *testing.T) {
	translator := &testutil.MockTranslator{
		Errors: map[string]error{"fr": errors.New("quota exceeded")},
	}
	s := newTestServer(t, translator, nil)

	form := url.Values{"text": {"Hello"}, "targets": {"German", "French"}}
	code, body := do(t, s, http.MethodPost, "/action/read", form)
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	testutil.AssertContains(t, body,
		"<h3>German (de)</h3>",
		"[de] Hello",
		`<audio controls src="data:audio/mpeg;base64,`,
		"<h3>French (fr)</h3>",
		"Translation to French failed: quota exceeded",
		`<option value="French" selected>French</option>`,
	)
	if strings.Count(body, "<audio") != 1 {
		t.Errorf("expected one audio player, got %d", strings.Count(body, "<audio"))
	}
}

func TestReadActionHasNoActionDeadline(t *testing.T) {
	translator := &testutil.MockTranslator{Delay: 30 * time.Millisecond}
	config := DefaultConfig()
	config.Background = ""
	config.ActionTimeout = 50 * time.Millisecond
	s := newTestServer(t, translator, config)

	form := url.Values{"text": {"Hello"}, "targets": {"German", "French", "Spanish", "Italian"}}
	code, body := do(t, s, http.MethodPost, "/action/read", form)
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	testutil.AssertNotContains(t, body, "deadline exceeded")
	if got := strings.Count(body, "<audio"); got != 4 {
		t.Errorf("expected 4 audio players, got %d", got)
	}

	// other actions keep the action-wide deadline
	translator.Delay = 200 * time.Millisecond
	_, body = do(t, s, http.MethodPost, "/action/translate", url.Values{"text": {"Hallo"}})
	testutil.AssertContains(t, body, "Translation failed")
}

func TestSpellAction(t *testing.T) {
	s := newTestServer(t, &testutil.MockTranslator{}, nil)

	_, body := do(t, s, http.MethodPost, "/action/spell", url.Values{"word": {"cat"}, "voice": {"Spanish"}})
	testutil.AssertContains(t, body,
		"Spelling: cat (voice: Spanish / es)",
		"c, a, t",
		`<option value="Spanish" selected>Spanish</option>`,
	)

	_, body = do(t, s, http.MethodPost, "/action/spell", url.Values{"word": {" "}})
	testutil.AssertContains(t, body, `<div class="banner info">Type a word to spell aloud.</div>`)
}

func TestCloudAction(t *testing.T) {
	translator := &testutil.MockTranslator{Translations: map[string]string{"en": "gophers love go"}}
	s := newTestServer(t, translator, nil)

	_, body := do(t, s, http.MethodPost, "/action/cloud", url.Values{"text": {"Gopher lieben Go"}})
	testutil.AssertContains(t, body, `<img class="cloud" alt="word cloud" src="data:image/png;base64,`)
}

func TestToggle(t *testing.T) {
	s := newTestServer(t, &testutil.MockTranslator{}, nil)

	_, body := do(t, s, http.MethodPost, "/toggle", url.Values{"select_all": {"on"}, "text": {"kept"}})
	if strings.Contains(body, `<option value="German" >`) {
		t.Error("select all should select every language")
	}
	testutil.AssertContains(t, body, `<option value="German" selected>`, `<option value="Chinese" selected>`, "kept")

	_, body = do(t, s, http.MethodPost, "/toggle", url.Values{"targets": {"German", "French"}})
	testutil.AssertContains(t, body, `<option value="English" selected>`, `<option value="German" >`)
}

func TestUnknownAction(t *testing.T) {
	s := newTestServer(t, &testutil.MockTranslator{}, nil)

	if code, _ := do(t, s, http.MethodPost, "/action/dance", url.Values{}); code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", code)
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, &testutil.MockTranslator{}, nil)

	code, body := do(t, s, http.MethodGet, "/healthz", nil)
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	var health struct {
		Status    string `json:"status"`
		Languages int    `json:"languages"`
	}
	if err := json.Unmarshal([]byte(body), &health); err != nil {
		t.Fatal(err)
	}
	if health.Status != "ok" || health.Languages != 23 {
		t.Errorf("unexpected health %+v", health)
	}
}

func TestBackground(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	path := filepath.Join(t.TempDir(), "back.png")
	testutil.CreateTestFile(t, path, png)

	config := DefaultConfig()
	config.Background = path
	s := newTestServer(t, &testutil.MockTranslator{}, config)

	_, body := do(t, s, http.MethodGet, "/", nil)
	testutil.AssertContains(t, body, `background-image: url("data:image/png;base64,`)

	config = DefaultConfig()
	config.Background = filepath.Join(t.TempDir(), "missing.jpg")
	s = newTestServer(t, &testutil.MockTranslator{}, config)

	_, body = do(t, s, http.MethodGet, "/", nil)
	testutil.AssertNotContains(t, body, "background-image")
}

func TestAccessLog(t *testing.T) {
	var log bytes.Buffer
	config := DefaultConfig()
	config.Background = ""
	config.AccessLog = &log
	s := newTestServer(t, &testutil.MockTranslator{}, config)

	do(t, s, http.MethodGet, "/healthz", nil)
	if !strings.Contains(log.String(), "/healthz") {
		t.Errorf("expected access log line, got %q", log.String())
	}
}

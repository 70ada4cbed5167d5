package translation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"codeberg.org/snonux/globalize/internal/language"
)

// DefaultGoogleURL is the keyless Google Translate web endpoint
const DefaultGoogleURL = "https://translate.googleapis.com/translate_a/single"

// GoogleTranslator uses the Google Translate web endpoint (client=gtx).
// No API key is needed.
type GoogleTranslator struct {
	url  string
	http *resty.Client
}

// NewGoogleTranslator creates a web endpoint translator. An empty url uses
// DefaultGoogleURL.
func NewGoogleTranslator(url string, timeout time.Duration) *GoogleTranslator {
	if url == "" {
		url = DefaultGoogleURL
	}
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &GoogleTranslator{
		url:  url,
		http: resty.New().SetTimeout(timeout),
	}
}

// Name returns the backend name
func (t *GoogleTranslator) Name() string {
	return "google"
}

// Languages returns the full provider catalog
func (t *GoogleTranslator) Languages() *language.Catalog {
	return language.Full()
}

// Translate translates text to target with source auto-detection
func (t *GoogleTranslator) Translate(ctx context.Context, text, target string) (string, error) {
	resp, err := t.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"client": "gtx",
			"sl":     "auto",
			"tl":     target,
			"dt":     "t",
			"q":      text,
		}).
		Get(t.url)
	if err != nil {
		return "", &Error{Backend: t.Name(), Target: target, Err: err}
	}
	if resp.IsError() {
		return "", &Error{Backend: t.Name(), Target: target, Err: fmt.Errorf("unexpected status %s", resp.Status())}
	}

	body := resp.Body()
	if strings.HasPrefix(strings.TrimSpace(string(body)), "<") {
		return "", &Error{Backend: t.Name(), Target: target, Err: fmt.Errorf("HTML error page returned, possibly rate limited")}
	}

	translation, err := parseGoogleResponse(body)
	if err != nil {
		return "", &Error{Backend: t.Name(), Target: target, Err: err}
	}
	return translation, nil
}

// parseGoogleResponse concatenates the translated segments of a gtx reply:
// [[["segment","source",...],...],...]
func parseGoogleResponse(body []byte) (string, error) {
	var result []interface{}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to parse translation response: %w", err)
	}
	if len(result) == 0 {
		return "", fmt.Errorf("empty translation response")
	}

	segments, ok := result[0].([]interface{})
	if !ok {
		return "", fmt.Errorf("unexpected response format")
	}

	var sb strings.Builder
	for _, segment := range segments {
		parts, ok := segment.([]interface{})
		if !ok || len(parts) == 0 {
			continue
		}
		if s, ok := parts[0].(string); ok {
			sb.WriteString(s)
		}
	}

	if sb.Len() == 0 {
		return "", fmt.Errorf("no translation returned")
	}
	return sb.String(), nil
}

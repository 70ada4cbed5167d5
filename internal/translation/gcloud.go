package translation

import (
	"context"
	"fmt"
	"html"

	"cloud.google.com/go/translate"
	xlanguage "golang.org/x/text/language"
	"google.golang.org/api/option"

	"codeberg.org/snonux/globalize/internal/language"
)

// CloudTranslator uses the Google Cloud Translation API with an API key
type CloudTranslator struct {
	client *translate.Client
}

// NewCloudTranslator creates a Cloud Translation client. Extra client options
// are appended after the API key.
func NewCloudTranslator(ctx context.Context, apiKey string, opts ...option.ClientOption) (*CloudTranslator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Google API key not found")
	}

	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	client, err := translate.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Cloud Translation client: %w", err)
	}
	return &CloudTranslator{client: client}, nil
}

// Name returns the backend name
func (t *CloudTranslator) Name() string {
	return "gcloud"
}

// Languages returns the full provider catalog
func (t *CloudTranslator) Languages() *language.Catalog {
	return language.Full()
}

// Translate translates text to target
func (t *CloudTranslator) Translate(ctx context.Context, text, target string) (string, error) {
	tag, err := xlanguage.Parse(target)
	if err != nil {
		return "", &Error{Backend: t.Name(), Target: target, Err: fmt.Errorf("invalid target %q: %w", target, err)}
	}

	translations, err := t.client.Translate(ctx, []string{text}, tag, &translate.Options{Format: translate.Text})
	if err != nil {
		return "", &Error{Backend: t.Name(), Target: target, Err: err}
	}
	if len(translations) == 0 {
		return "", &Error{Backend: t.Name(), Target: target, Err: fmt.Errorf("no translation returned")}
	}

	return html.UnescapeString(translations[0].Text), nil
}

// Close releases the client connection
func (t *CloudTranslator) Close() error {
	return t.client.Close()
}

package audio

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
)

// DefaultGoogleTTSURL is the Google Translate RPC endpoint that serves speech
const DefaultGoogleTTSURL = "https://translate.google.com/_/TranslateWebserverUi/data/batchexecute"

const (
	googleTTSRPC      = "jQ1olc"
	googleMaxChunkLen = 100
)

// googleLanguages are the synthesizer codes the Google voice accepts
var googleLanguages = map[string]bool{
	"af": true, "am": true, "ar": true, "bg": true, "bn": true, "bs": true, "ca": true,
	"cs": true, "cy": true, "da": true, "de": true, "el": true, "en": true, "es": true,
	"et": true, "eu": true, "fi": true, "fr": true, "gl": true, "gu": true, "ha": true,
	"he": true, "hi": true, "hr": true, "hu": true, "id": true, "is": true, "it": true,
	"ja": true, "jw": true, "km": true, "kn": true, "ko": true, "la": true, "lt": true,
	"lv": true, "ml": true, "mr": true, "ms": true, "my": true, "ne": true, "nl": true,
	"no": true, "pa": true, "pl": true, "pt": true, "ro": true, "ru": true, "si": true,
	"sk": true, "sq": true, "sr": true, "su": true, "sv": true, "sw": true, "ta": true,
	"te": true, "th": true, "tl": true, "tr": true, "uk": true, "ur": true, "vi": true,
	"yue": true, "zh": true,
}

// googleWireCodes maps synthesizer codes to the codes the endpoint expects
var googleWireCodes = map[string]string{
	"he": "iw",
}

var googleAudioRE = regexp.MustCompile(`jQ1olc","\[\\"(.*?)\\"]`)

// GoogleProvider speaks through the Google Translate TTS RPC. No API key is
// needed; long text is sent in chunks of at most 100 characters.
type GoogleProvider struct {
	url  string
	http *resty.Client
}

// NewGoogleProvider creates a Google TTS provider. An empty url uses
// DefaultGoogleTTSURL.
func NewGoogleProvider(url string, timeout time.Duration) *GoogleProvider {
	if url == "" {
		url = DefaultGoogleTTSURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &GoogleProvider{
		url: url,
		http: resty.New().
			SetTimeout(timeout).
			SetHeader("Referer", "http://translate.google.com/").
			SetHeader("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"),
	}
}

// Name returns the provider name
func (p *GoogleProvider) Name() string {
	return "google"
}

// IsAvailable always succeeds; the endpoint needs no configuration
func (p *GoogleProvider) IsAvailable() error {
	return nil
}

// GoogleLanguages returns the supported synthesizer codes, sorted
func GoogleLanguages() []string {
	codes := make([]string, 0, len(googleLanguages))
	for code := range googleLanguages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GenerateAudio synthesizes text as MP3
func (p *GoogleProvider) GenerateAudio(ctx context.Context, text, lang string, slow bool) (*Clip, error) {
	if !googleLanguages[lang] {
		return nil, fmt.Errorf("language not supported: %s", lang)
	}
	wire := lang
	if code, ok := googleWireCodes[lang]; ok {
		wire = code
	}

	var buf bytes.Buffer
	for _, chunk := range splitChunks(text, googleMaxChunkLen) {
		data, err := p.fetchChunk(ctx, chunk, wire, slow)
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	}

	return &Clip{
		Data:   buf.Bytes(),
		Format: "mp3",
		Lang:   lang,
		Text:   text,
		Slow:   slow,
	}, nil
}

func (p *GoogleProvider) fetchChunk(ctx context.Context, text, lang string, slow bool) ([]byte, error) {
	payload, err := packageRPC(text, lang, slow)
	if err != nil {
		return nil, err
	}

	resp, err := p.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{"f.req": payload}).
		Post(p.url)
	if err != nil {
		return nil, fmt.Errorf("Google TTS request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("Google TTS returned %s", resp.Status())
	}

	return parseRPCAudio(resp.Body())
}

// packageRPC builds the f.req form value:
// [[["jQ1olc","[\"text\",\"lang\",true|null,\"null\"]",null,"generic"]]]
func packageRPC(text, lang string, slow bool) (string, error) {
	var speed interface{}
	if slow {
		speed = true
	}
	parameter, err := json.Marshal([]interface{}{text, lang, speed, "null"})
	if err != nil {
		return "", err
	}
	rpc, err := json.Marshal([][][]interface{}{{{googleTTSRPC, string(parameter), nil, "generic"}}})
	if err != nil {
		return "", err
	}
	return string(rpc), nil
}

// parseRPCAudio extracts and decodes the base64 MP3 of a batchexecute reply.
func parseRPCAudio(body []byte) ([]byte, error) {
	for _, line := range strings.Split(string(body), "\n") {
		if !strings.Contains(line, googleTTSRPC) {
			continue
		}
		m := googleAudioRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		data, err := base64.StdEncoding.DecodeString(m[1])
		if err != nil {
			return nil, fmt.Errorf("failed to decode audio: %w", err)
		}
		return data, nil
	}
	return nil, errNoAudio
}

// splitChunks packs whitespace separated words into chunks of at most limit
// runes. Words longer than limit are cut.
func splitChunks(text string, limit int) []string {
	var (
		chunks  []string
		current strings.Builder
	)
	flush := func() {
		if current.Len() > 0 {
			chunks = append(chunks, current.String())
			current.Reset()
		}
	}

	for _, word := range strings.Fields(text) {
		for utf8.RuneCountInString(word) > limit {
			flush()
			runes := []rune(word)
			chunks = append(chunks, string(runes[:limit]))
			word = string(runes[limit:])
		}

		size := utf8.RuneCountInString(current.String())
		if size > 0 && size+1+utf8.RuneCountInString(word) > limit {
			flush()
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(word)
	}
	flush()

	return chunks
}

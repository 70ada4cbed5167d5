package cloud

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultStopwordsURL serves a plain text English stopword list, one word per line
const DefaultStopwordsURL = "https://raw.githubusercontent.com/stopwords-iso/stopwords-en/master/stopwords-en.txt"

// Stopwords is an English stopword set loaded on first use. Sources are
// tried in order: local file, remote list, empty set. A failed load is
// retried on the next call.
type Stopwords struct {
	file string
	url  string
	http *resty.Client

	mu     sync.Mutex
	words  map[string]bool
	loaded bool
}

// NewStopwords creates a lazily loaded stopword set. Either source may be
// empty to skip it.
func NewStopwords(file, url string, timeout time.Duration) *Stopwords {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Stopwords{
		file: file,
		url:  url,
		http: resty.New().SetTimeout(timeout),
	}
}

// StaticStopwords returns an already loaded set containing words
func StaticStopwords(words ...string) *Stopwords {
	s := &Stopwords{words: make(map[string]bool, len(words)), loaded: true}
	for _, w := range words {
		s.words[strings.ToLower(w)] = true
	}
	return s
}

// Load returns the stopword set and whether any source could be read.
// No I/O happens once a load has succeeded. The fetch ignores cancellation
// of ctx and is bounded by the client timeout instead.
func (s *Stopwords) Load(ctx context.Context) (map[string]bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return s.words, true
	}
	words, loaded := s.load(context.WithoutCancel(ctx))
	if loaded {
		s.words, s.loaded = words, true
	}
	return words, loaded
}

func (s *Stopwords) load(ctx context.Context) (map[string]bool, bool) {
	if s.file != "" {
		words, err := readStopwordsFile(s.file)
		if err == nil {
			return words, true
		}
		fmt.Printf("Warning: could not read stopwords from %s: %v\n", s.file, err)
	}

	if s.url != "" {
		words, err := s.fetch(ctx)
		if err == nil {
			return words, true
		}
		fmt.Printf("Warning: could not fetch stopwords: %v\n", err)
	}

	return map[string]bool{}, false
}

func (s *Stopwords) fetch(ctx context.Context) (map[string]bool, error) {
	resp, err := s.http.R().SetContext(ctx).Get(s.url)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("stopwords request returned %s", resp.Status())
	}

	words := parseStopwords(resp.String())
	if len(words) == 0 {
		return nil, fmt.Errorf("empty stopword list at %s", s.url)
	}
	return words, nil
}

func readStopwordsFile(path string) (map[string]bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	words := parseStopwords(string(data))
	if len(words) == 0 {
		return nil, fmt.Errorf("no stopwords in %s", path)
	}
	return words, nil
}

// parseStopwords reads one word per line; blank lines and # comments are skipped
func parseStopwords(list string) map[string]bool {
	words := make(map[string]bool)
	scanner := bufio.NewScanner(strings.NewReader(list))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words[strings.ToLower(line)] = true
	}
	return words
}

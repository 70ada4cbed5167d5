package cloud

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image/color"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// ValidationError is returned when the input yields nothing to draw
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Figure is a rendered word cloud, held in memory only
type Figure struct {
	PNG    []byte
	Width  int
	Height int
	Words  []Placement

	// StopwordsLoaded is false when no stopword source could be read and
	// the cloud was built without filtering stopwords.
	StopwordsLoaded bool
}

// DataURI returns the PNG as a base64 data URI
func (f *Figure) DataURI() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(f.PNG)
}

// Config holds word cloud settings
type Config struct {
	Width         int
	Height        int
	MaxWords      int
	StopwordsFile string
	StopwordsURL  string
	Timeout       time.Duration
	Seed          int64
}

// DefaultConfig returns the default canvas and stopword sources
func DefaultConfig() *Config {
	return &Config{
		Width:        800,
		Height:       400,
		MaxWords:     200,
		StopwordsURL: DefaultStopwordsURL,
		Timeout:      10 * time.Second,
		Seed:         1,
	}
}

// palette holds the word colours, used in turn
var palette = []color.Color{
	color.RGBA{0x44, 0x01, 0x54, 0xff},
	color.RGBA{0x3b, 0x52, 0x8b, 0xff},
	color.RGBA{0x21, 0x90, 0x8d, 0xff},
	color.RGBA{0x5d, 0xc9, 0x63, 0xff},
	color.RGBA{0xc2, 0x7c, 0x0e, 0xff},
}

// Builder renders word clouds. Builds are serialized since font faces
// cannot be shared between goroutines.
type Builder struct {
	config    *Config
	stopwords *Stopwords

	fontOnce sync.Once
	font     *opentype.Font
	fontErr  error

	mu    sync.Mutex // guards faces and builds
	faces map[int]font.Face
}

// NewBuilder creates a builder. A nil stopwords set is created from the
// configured sources.
func NewBuilder(config *Config, stopwords *Stopwords) *Builder {
	if config == nil {
		config = DefaultConfig()
	}
	if stopwords == nil {
		stopwords = NewStopwords(config.StopwordsFile, config.StopwordsURL, config.Timeout)
	}
	return &Builder{
		config:    config,
		stopwords: stopwords,
		faces:     make(map[int]font.Face),
	}
}

// Build lays out and renders the words of text. It fails with a
// *ValidationError when no word survives filtering.
func (b *Builder) Build(ctx context.Context, text string) (*Figure, error) {
	stop, loaded := b.stopwords.Load(ctx)

	words := Frequencies(Tokenize(text), stop)
	if len(words) == 0 {
		return nil, &ValidationError{Reason: "no valid words"}
	}
	if limit := b.config.MaxWords; limit > 0 && len(words) > limit {
		words = words[:limit]
	}

	if _, err := b.parseFont(); err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	rng := rand.New(rand.NewSource(b.config.Seed))
	placed := layout(words, b.config.Width, b.config.Height, b.measure, rng)

	png, err := b.render(placed)
	if err != nil {
		return nil, err
	}

	return &Figure{
		PNG:             png,
		Width:           b.config.Width,
		Height:          b.config.Height,
		Words:           placed,
		StopwordsLoaded: loaded,
	}, nil
}

func (b *Builder) render(placed []Placement) ([]byte, error) {
	dc := gg.NewContext(b.config.Width, b.config.Height)
	dc.SetColor(color.White)
	dc.Clear()

	for i, p := range placed {
		face, err := b.face(p.Size)
		if err != nil {
			return nil, err
		}
		dc.SetFontFace(face)
		dc.SetColor(palette[i%len(palette)])

		if p.Vertical {
			dc.Push()
			dc.RotateAbout(-math.Pi/2, p.X, p.Y)
			dc.DrawStringAnchored(p.Word, p.X, p.Y, 0.5, 0.35)
			dc.Pop()
			continue
		}
		dc.DrawStringAnchored(p.Word, p.X, p.Y, 0.5, 0.35)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode word cloud: %w", err)
	}
	return buf.Bytes(), nil
}

func (b *Builder) measure(word string, size float64) (float64, float64) {
	face, err := b.face(size)
	if err != nil {
		return math.Inf(1), math.Inf(1)
	}
	dc := gg.NewContext(1, 1)
	dc.SetFontFace(face)
	return dc.MeasureString(word)
}

func (b *Builder) parseFont() (*opentype.Font, error) {
	b.fontOnce.Do(func() {
		b.font, b.fontErr = opentype.Parse(goregular.TTF)
		if b.fontErr != nil {
			b.fontErr = fmt.Errorf("failed to parse font: %w", b.fontErr)
		}
	})
	return b.font, b.fontErr
}

// face returns a cached font face, sizes rounded to whole points.
// Callers hold b.mu.
func (b *Builder) face(size float64) (font.Face, error) {
	f, err := b.parseFont()
	if err != nil {
		return nil, err
	}
	points := int(math.Round(size))

	if face, ok := b.faces[points]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(points),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	b.faces[points] = face
	return face, nil
}

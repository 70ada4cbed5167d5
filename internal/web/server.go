package web

import (
	"bytes"
	"context"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"codeberg.org/snonux/globalize/internal"
	"codeberg.org/snonux/globalize/internal/language"
	"codeberg.org/snonux/globalize/internal/processor"
)

//go:embed templates/page.html
var templates embed.FS

// Config holds web server settings
type Config struct {
	Addr          string
	Title         string
	Background    string // image file; skipped when missing
	ActionTimeout time.Duration
	AccessLog     io.Writer // nil disables the access log
}

// DefaultConfig returns the default server settings
func DefaultConfig() *Config {
	return &Config{
		Addr:          ":8080",
		Title:         "Globalize: small multilingual helper",
		Background:    "back.jpg",
		ActionTimeout: 2 * time.Minute,
	}
}

// Server renders the page and runs actions through a processor
type Server struct {
	app        *fiber.App
	proc       *processor.Processor
	config     *Config
	page       *template.Template
	background template.CSS
}

// NewServer creates the server and registers its routes
func NewServer(proc *processor.Processor, config *Config) (*Server, error) {
	if config == nil {
		config = DefaultConfig()
	}

	page, err := template.ParseFS(templates, "templates/page.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}

	s := &Server{
		proc:       proc,
		config:     config,
		page:       page,
		background: loadBackground(config.Background),
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "globalize " + internal.Version,
		DisableStartupMessage: true,
		ReadTimeout:           30 * time.Second,
	})
	s.app.Use(recover.New())
	if config.AccessLog != nil {
		s.app.Use(logger.New(logger.Config{Output: config.AccessLog}))
	}

	s.app.Get("/", s.handleIndex)
	s.app.Get("/healthz", s.handleHealth)
	s.app.Post("/toggle", s.handleToggle)
	s.app.Post("/action/:name", s.handleAction)

	return s, nil
}

// App returns the fiber app, mainly for tests
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves until Shutdown is called
func (s *Server) Listen() error {
	fmt.Printf("Listening on %s\n", s.config.Addr)
	return s.app.Listen(s.config.Addr)
}

// Shutdown stops the server, waiting for running actions up to ctx
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func (s *Server) handleIndex(c *fiber.Ctx) error {
	return s.render(c, formValues{}, nil)
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"version":   internal.Version,
		"languages": s.proc.Catalog().Len(),
	})
}

// handleToggle re-renders the form with the select-all default applied
func (s *Server) handleToggle(c *fiber.Ctx) error {
	form := readForm(c)
	form.Targets = language.DefaultSelection(s.proc.Catalog(), form.SelectAll)
	return s.render(c, form, nil)
}

func (s *Server) handleAction(c *fiber.Ctx) error {
	action, err := processor.ParseAction(c.Params("name"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	form := readForm(c)
	ctx, cancel := action.Context(c.UserContext(), s.config.ActionTimeout)
	defer cancel()

	result, err := s.proc.Run(ctx, action, form.Request)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return s.render(c, form, result)
}

// formValues is the posted form
type formValues struct {
	processor.Request
}

func readForm(c *fiber.Ctx) formValues {
	var f formValues
	f.Text = c.FormValue("text")
	f.Word = c.FormValue("word")
	f.Voice = c.FormValue("voice")
	f.SelectAll = c.FormValue("select_all") != ""
	for _, t := range c.Request().PostArgs().PeekMulti("targets") {
		f.Targets = append(f.Targets, string(t))
	}
	return f
}

type option struct {
	Name     string
	Selected bool
}

type sectionView struct {
	Title   string
	Text    string
	Audio   template.URL
	Banners []bannerView
}

type bannerView struct {
	Kind    string
	Message string
}

type resultView struct {
	RequestID string
	Banners   []bannerView
	Sections  []sectionView
	Figure    template.URL
}

type pageData struct {
	Title      string
	Version    string
	Background template.CSS
	Text       string
	Word       string
	SelectAll  bool
	Languages  []option
	Voices     []option
	Result     *resultView
}

func (s *Server) render(c *fiber.Ctx, form formValues, result *processor.Result) error {
	names := s.proc.Catalog().Names()

	targets := form.Targets
	if len(targets) == 0 {
		targets = language.DefaultSelection(s.proc.Catalog(), form.SelectAll)
	}
	voice := form.Voice
	if voice == "" {
		voice = language.DefaultTarget
	}

	data := pageData{
		Title:      s.config.Title,
		Version:    internal.Version,
		Background: s.background,
		Text:       form.Text,
		Word:       form.Word,
		SelectAll:  form.SelectAll,
		Languages:  options(names, targets...),
		Voices:     options(names, voice),
		Result:     newResultView(result),
	}

	var buf bytes.Buffer
	if err := s.page.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

func options(names []string, selected ...string) []option {
	set := make(map[string]bool, len(selected))
	for _, s := range selected {
		set[strings.ToLower(s)] = true
	}
	out := make([]option, len(names))
	for i, n := range names {
		out[i] = option{Name: n, Selected: set[strings.ToLower(n)]}
	}
	return out
}

func newResultView(r *processor.Result) *resultView {
	if r == nil {
		return nil
	}
	v := &resultView{RequestID: r.RequestID, Banners: bannerViews(r.Banners)}
	for _, s := range r.Sections {
		sv := sectionView{Title: s.Title(), Text: s.Text, Banners: bannerViews(s.Banners)}
		if s.Audio != nil {
			sv.Audio = template.URL(s.Audio.DataURI())
		}
		v.Sections = append(v.Sections, sv)
	}
	if r.Figure != nil {
		v.Figure = template.URL(r.Figure.DataURI())
	}
	return v
}

func bannerViews(bs []processor.Banner) []bannerView {
	out := make([]bannerView, len(bs))
	for i, b := range bs {
		out[i] = bannerView{Kind: b.Kind.String(), Message: b.Message}
	}
	return out
}

// loadBackground embeds an image file as a CSS url(). A missing or
// unreadable file yields no background.
func loadBackground(path string) template.CSS {
	if path == "" {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return ""
	}
	return template.CSS(fmt.Sprintf(`url("data:%s;base64,%s")`, mime, base64.StdEncoding.EncodeToString(data)))
}

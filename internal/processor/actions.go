package processor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"codeberg.org/snonux/globalize/internal/audio"
	"codeberg.org/snonux/globalize/internal/cloud"
	"codeberg.org/snonux/globalize/internal/detect"
	"codeberg.org/snonux/globalize/internal/language"
	"codeberg.org/snonux/globalize/internal/translation"
)

const (
	msgNeedText = "Type or paste a paragraph first."
	msgNeedWord = "Type a word to spell aloud."
)

// Detect names the language of the paragraph
func (p *Processor) Detect(ctx context.Context, req Request) *Result {
	r := p.newResult(ActionDetect)
	text := req.text()
	if text == "" {
		r.add(Info, msgNeedText, ErrInputEmpty)
		return r
	}

	code, err := p.detector.Detect(ctx, text)
	switch {
	case errors.Is(err, detect.ErrAmbiguous):
		p.logf(r, "ambiguous sample (%d runes)", len([]rune(text)))
		r.add(Error, "Language detection failed (text too short or ambiguous).", err)
	case err != nil:
		p.logf(r, "Warning: %v", err)
		r.add(Error, fmt.Sprintf("Language detection error: %v", cause(err)), err)
	default:
		p.logf(r, "detected %s", code)
		r.add(Success, fmt.Sprintf("Detected: %s (%s)", language.DisplayName(code, p.catalog), code), nil)
	}
	return r
}

// TranslateToEnglish translates the paragraph to English
func (p *Processor) TranslateToEnglish(ctx context.Context, req Request) *Result {
	r := p.newResult(ActionTranslate)
	text := req.text()
	if text == "" {
		r.add(Info, msgNeedText, ErrInputEmpty)
		return r
	}

	ctx, cancel := withTimeout(ctx, p.options.TranslateTimeout)
	defer cancel()

	out := translation.BestEffort(ctx, p.translator, text, language.DefaultCode)
	switch out.Source {
	case translation.Original:
		p.logf(r, "Warning: %v", out.Err)
		r.add(Error, fmt.Sprintf("Translation failed: %v", cause(out.Err)), out.Err)
		return r
	case translation.Skipped:
		p.logf(r, "already English")
		r.add(Info, "The text is already in English.", nil)
	default:
		p.logf(r, "translated %d runes", len([]rune(out.Text)))
	}

	r.Sections = append(r.Sections, Section{Heading: "Translated to English:", Text: out.Text})
	return r
}

// GenerateCloud builds a word cloud of the paragraph, translated to
// English when possible
func (p *Processor) GenerateCloud(ctx context.Context, req Request) *Result {
	r := p.newResult(ActionCloud)
	text := req.text()
	if text == "" {
		r.add(Info, msgNeedText, ErrInputEmpty)
		return r
	}

	tctx, cancel := withTimeout(ctx, p.options.TranslateTimeout)
	out := translation.BestEffort(tctx, p.translator, text, language.DefaultCode)
	cancel()
	if out.Source == translation.Original {
		p.logf(r, "Warning: using original text for word cloud: %v", out.Err)
	}

	fig, err := p.clouds.Build(ctx, out.Text)
	if err != nil {
		var verr *cloud.ValidationError
		if errors.As(err, &verr) {
			p.logf(r, "no words left after filtering")
		} else {
			p.logf(r, "Warning: %v", err)
		}
		r.add(Error, fmt.Sprintf("Could not build word cloud: %v", err), err)
		return r
	}

	if !fig.StopwordsLoaded {
		r.add(Info, "Stopword list unavailable, common words are included.", nil)
	}
	p.logf(r, "placed %d words", len(fig.Words))
	r.Figure = fig
	return r
}

// TranslateAndReadAloud translates the paragraph into every selected
// language and synthesizes each translation. A failing language is
// reported in its own section and the loop goes on.
func (p *Processor) TranslateAndReadAloud(ctx context.Context, req Request) *Result {
	r := p.newResult(ActionRead)
	text := req.text()
	if text == "" {
		r.add(Info, msgNeedText, ErrInputEmpty)
		return r
	}

	targets := req.Targets
	if len(targets) == 0 {
		targets = language.DefaultSelection(p.catalog, req.SelectAll)
	}

	entries, unknown := p.catalog.Resolve(targets)
	for _, name := range unknown {
		p.logf(r, "Warning: unknown language %q", name)
		r.add(Error, fmt.Sprintf("Unknown language selection: %s", name), fmt.Errorf("%w: %s", ErrUnknownLanguage, name))
	}

	for _, e := range entries {
		r.Sections = append(r.Sections, p.readAloud(ctx, r, text, e))
	}
	return r
}

func (p *Processor) readAloud(ctx context.Context, r *Result, text string, e language.Entry) Section {
	s := Section{Name: e.Name, Code: e.Code}

	tctx, cancel := withTimeout(ctx, p.options.TranslateTimeout)
	out := translation.BestEffort(tctx, p.translator, text, e.Code)
	cancel()
	if out.Source == translation.Original {
		p.logf(r, "Warning: translation to %s failed: %v", e.Code, out.Err)
		s.Banners = append(s.Banners, Banner{
			Kind:    Error,
			Message: fmt.Sprintf("Translation to %s failed: %v", e.Name, cause(out.Err)),
			Err:     out.Err,
		})
		return s
	}
	s.Text = out.Text

	lang := language.SynthesizerCode(e.Code)
	actx, cancel := withTimeout(ctx, p.options.AudioTimeout)
	defer cancel()

	clip, err := p.synthesizer.Synthesize(actx, out.Text, lang)
	if err != nil {
		p.logf(r, "Warning: %v", err)
		s.Banners = append(s.Banners, Banner{
			Kind:    Warning,
			Message: fmt.Sprintf("Audio generation failed for lang='%s': %v", lang, cause(err)),
			Err:     err,
		})
		return s
	}

	p.logf(r, "%s: %d bytes of audio", e.Code, len(clip.Data))
	s.Audio = clip
	return s
}

// SpellWord reads a single word letter by letter in the selected voice
func (p *Processor) SpellWord(ctx context.Context, req Request) *Result {
	r := p.newResult(ActionSpell)
	word := strings.TrimSpace(req.Word)
	if word == "" {
		r.add(Info, msgNeedWord, ErrInputEmpty)
		return r
	}

	voice := strings.TrimSpace(req.Voice)
	if voice == "" {
		voice = language.DefaultTarget
	}
	code, ok := p.catalog.CodeFor(voice)
	if !ok {
		r.add(Error, fmt.Sprintf("Unknown language selection: %s", voice), fmt.Errorf("%w: %s", ErrUnknownLanguage, voice))
		return r
	}
	name, _ := p.catalog.NameFor(code)

	ctx, cancel := withTimeout(ctx, p.options.AudioTimeout)
	defer cancel()

	clip, err := p.synthesizer.SynthesizeSpelled(ctx, word, language.SynthesizerCode(code))
	if err != nil {
		p.logf(r, "Warning: %v", err)
		r.add(Error, fmt.Sprintf("Could not generate spelling audio: %v", cause(err)), err)
		return r
	}

	p.logf(r, "spelled %q in %s", word, code)
	r.Sections = append(r.Sections, Section{
		Heading: fmt.Sprintf("Spelling: %s (voice: %s / %s)", word, name, code),
		Text:    audio.SpellOut(word),
		Audio:   clip,
	})
	return r
}

// cause strips the package wrappers so banners show what went wrong
// without repeating the action
func cause(err error) error {
	var (
		terr *translation.Error
		gerr *audio.GenerationError
		derr *detect.Error
	)
	switch {
	case errors.As(err, &terr):
		return terr.Err
	case errors.As(err, &gerr):
		return gerr.Err
	case errors.As(err, &derr):
		return derr.Err
	}
	return err
}

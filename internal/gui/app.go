package gui

import (
	"context"
	"fmt"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"codeberg.org/snonux/globalize/internal"
	"codeberg.org/snonux/globalize/internal/language"
	"codeberg.org/snonux/globalize/internal/processor"
)

// Application represents the main GUI application
type Application struct {
	// Fyne components
	app    fyne.App
	window fyne.Window

	// Input widgets
	paragraphInput *CustomMultiLineEntry
	selectAll      *widget.Check
	targets        *widget.CheckGroup
	wordInput      *CustomEntry
	voiceSelect    *widget.Select

	// Action buttons, keyed by action
	buttons map[processor.Action]*ttwidget.Button

	// Output widgets
	results      *fyne.Container
	cloudDisplay *ImageDisplay
	audioPlayer  *AudioPlayer
	logViewer    *LogViewer
	statusLabel  *widget.Label

	proc   *processor.Processor
	config *Config

	// Background processing
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
	busy   bool
}

// Config holds GUI application configuration
type Config struct {
	ActionTimeout time.Duration
	AutoPlay      bool // play the first clip of a result right away
}

// DefaultConfig returns default GUI configuration
func DefaultConfig() *Config {
	return &Config{
		ActionTimeout: 2 * time.Minute,
		AutoPlay:      true,
	}
}

// New creates a new GUI application running actions through proc
func New(proc *processor.Processor, config *Config) *Application {
	if config == nil {
		config = DefaultConfig()
	}

	ctx, cancel := context.WithCancel(context.Background())

	a := &Application{
		app:     app.NewWithID("org.codeberg.snonux.globalize"),
		proc:    proc,
		config:  config,
		ctx:     ctx,
		cancel:  cancel,
		buttons: make(map[processor.Action]*ttwidget.Button),
	}

	a.setupUI()
	return a
}

// setupUI creates the main user interface
func (a *Application) setupUI() {
	a.window = a.app.NewWindow(fmt.Sprintf("Globalize v%s - small multilingual helper", internal.Version))
	a.window.Resize(fyne.NewSize(1100, 800))

	names := a.proc.Catalog().Names()

	// Paragraph input
	a.paragraphInput = NewCustomMultiLineEntry()
	a.paragraphInput.SetPlaceHolder("Enter one paragraph...")
	a.paragraphInput.Wrapping = fyne.TextWrapWord
	a.paragraphInput.SetMinRowsVisible(8)
	a.paragraphInput.SetOnEscape(a.window.Canvas().Unfocus)
	a.paragraphInput.SetOnSubmit(func() { a.run(processor.ActionTranslate) })

	a.addButton(processor.ActionDetect, "Detect language", theme.SearchIcon())
	a.addButton(processor.ActionTranslate, "Translate to English", theme.MailForwardIcon())
	a.addButton(processor.ActionCloud, "Word cloud", theme.ColorPaletteIcon())

	paragraphSection := container.NewBorder(
		widget.NewLabel("Enter one paragraph:"),
		container.NewHBox(
			a.buttons[processor.ActionDetect],
			a.buttons[processor.ActionTranslate],
			a.buttons[processor.ActionCloud],
		),
		nil, nil,
		a.paragraphInput,
	)

	// Target selection
	a.targets = widget.NewCheckGroup(names, nil)
	a.targets.SetSelected(language.DefaultSelection(a.proc.Catalog(), false))
	a.selectAll = widget.NewCheck("Select all languages", func(on bool) {
		a.targets.SetSelected(language.DefaultSelection(a.proc.Catalog(), on))
	})
	a.addButton(processor.ActionRead, "Translate & Read Aloud", theme.MediaPlayIcon())

	targetScroll := container.NewVScroll(a.targets)
	targetScroll.SetMinSize(fyne.NewSize(0, 200))

	readSection := container.NewBorder(
		container.NewVBox(
			widget.NewLabelWithStyle("Translate & read aloud", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			a.selectAll,
		),
		a.buttons[processor.ActionRead],
		nil, nil,
		targetScroll,
	)

	// Spelling
	a.wordInput = NewCustomEntry()
	a.wordInput.SetPlaceHolder("Word to spell (single word recommended)")
	a.wordInput.SetOnEscape(a.window.Canvas().Unfocus)
	a.wordInput.OnSubmitted = func(string) { a.run(processor.ActionSpell) }

	a.voiceSelect = widget.NewSelect(names, nil)
	a.voiceSelect.SetSelected(language.DefaultTarget)
	a.addButton(processor.ActionSpell, "Spell Word Aloud", theme.VolumeUpIcon())

	spellSection := container.NewVBox(
		widget.NewLabelWithStyle("Spell a word aloud", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		a.wordInput,
		container.NewBorder(nil, nil, widget.NewLabel("Voice:"), nil, a.voiceSelect),
		a.buttons[processor.ActionSpell],
	)

	sidebar := container.NewBorder(nil, spellSection, nil, nil, readSection)

	// Output
	a.results = container.NewVBox()
	a.cloudDisplay = NewImageDisplay()
	a.audioPlayer = NewAudioPlayer()
	a.logViewer = NewLogViewer()

	tabs := container.NewAppTabs(
		container.NewTabItem("Results", container.NewVScroll(a.results)),
		container.NewTabItem("Word cloud", a.cloudDisplay),
		container.NewTabItem("Log", a.logViewer),
	)

	helpButton := ttwidget.NewButtonWithIcon("", theme.HelpIcon(), a.onShowHotkeys)

	a.statusLabel = widget.NewLabel("Ready")
	statusSection := container.NewHBox(a.statusLabel, layout.NewSpacer(), helpButton)

	workArea := container.NewVSplit(
		paragraphSection,
		container.NewBorder(nil, a.audioPlayer, nil, nil, tabs),
	)
	workArea.SetOffset(0.35)

	split := container.NewHSplit(workArea, sidebar)
	split.SetOffset(0.68)

	content := container.NewBorder(nil, statusSection, nil, nil, split)

	// Add the tooltip layer to enable tooltips
	a.window.SetContent(fynetooltip.AddWindowToolTipLayer(content, a.window.Canvas()))

	// Now that tooltip layer is created, set all tooltips
	a.setupTooltips()
	helpButton.SetToolTip("Show hotkeys (h)")

	a.window.SetOnClosed(func() {
		a.cancel()
		a.audioPlayer.Clear()
		a.wg.Wait()
		a.logViewer.StopCapture()
	})

	a.setupKeyboardShortcuts()
}

func (a *Application) addButton(action processor.Action, label string, icon fyne.Resource) {
	a.buttons[action] = ttwidget.NewButtonWithIcon(label, icon, func() { a.run(action) })
}

// Run starts the GUI application and blocks until the window is closed
func (a *Application) Run() {
	a.logViewer.StartCapture()
	a.window.ShowAndRun()
}

// request snapshots the widgets into a request
func (a *Application) request() processor.Request {
	return processor.Request{
		Text:      a.paragraphInput.Text,
		Targets:   append([]string(nil), a.targets.Selected...),
		SelectAll: a.selectAll.Checked,
		Word:      a.wordInput.Text,
		Voice:     a.voiceSelect.Selected,
	}
}

// run executes action in the background; one action runs at a time
func (a *Application) run(action processor.Action) {
	a.mu.Lock()
	if a.busy {
		a.mu.Unlock()
		a.updateStatus("Still working, please wait...")
		return
	}
	a.busy = true
	a.mu.Unlock()

	req := a.request()
	a.setButtonsEnabled(false)
	a.updateStatus(fmt.Sprintf("Running %s...", action))

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()

		ctx, cancel := action.Context(a.ctx, a.config.ActionTimeout)
		defer cancel()

		start := time.Now()
		result, err := a.proc.Run(ctx, action, req)

		fyne.Do(func() {
			a.mu.Lock()
			a.busy = false
			a.mu.Unlock()
			a.setButtonsEnabled(true)

			if err != nil {
				a.showError(err)
				return
			}
			a.showResult(result)
			a.updateStatus(fmt.Sprintf("%s finished in %s", action, time.Since(start).Round(time.Millisecond)))
		})
	}()
}

// showResult replaces the output with result
func (a *Application) showResult(r *processor.Result) {
	a.results.Objects = resultObjects(r)
	a.results.Refresh()

	if r.Figure != nil {
		a.cloudDisplay.SetPNG(r.Figure.PNG, fmt.Sprintf("%d words", len(r.Figure.Words)))
	}

	clips, labels := clipsOf(r)
	a.audioPlayer.SetClips(clips, labels)
	if a.config.AutoPlay && len(clips) > 0 {
		a.audioPlayer.Play()
	}
}

func (a *Application) setButtonsEnabled(enabled bool) {
	for _, b := range a.buttons {
		if enabled {
			b.Enable()
		} else {
			b.Disable()
		}
	}
}

func (a *Application) updateStatus(message string) {
	a.statusLabel.SetText(message)
}

func (a *Application) showError(err error) {
	dialog.ShowError(err, a.window)
	a.updateStatus("Error: " + err.Error())
}

// setupTooltips sets up all tooltips after the tooltip layer has been created
func (a *Application) setupTooltips() {
	a.buttons[processor.ActionDetect].SetToolTip("Detect language (d)")
	a.buttons[processor.ActionTranslate].SetToolTip("Translate to English (t, Ctrl+Enter in the paragraph)")
	a.buttons[processor.ActionCloud].SetToolTip("Generate word cloud (c)")
	a.buttons[processor.ActionRead].SetToolTip("Translate & read aloud (r)")
	a.buttons[processor.ActionSpell].SetToolTip("Spell word aloud (s)")
}

func (a *Application) onShowHotkeys() {
	hotkeys := `## Actions
**d** Detect language  
**t** Translate to English  
**c** Generate word cloud  
**r** Translate & read aloud  
**s** Spell word aloud  

## Audio
**p** Play / stop  
**n** Next clip  

## Fields
**Ctrl+Enter** Translate paragraph  
**Enter** Spell word (in word field)  
**Esc** Unfocus field  

## Help
**h** Show hotkeys  
**q** Quit application`

	content := widget.NewRichTextFromMarkdown(hotkeys)
	content.Wrapping = fyne.TextWrapWord

	scroll := container.NewScroll(container.NewPadded(content))
	scroll.SetMinSize(fyne.NewSize(420, 420))

	dialog.NewCustom("Keyboard Shortcuts", "Close", scroll, a.window).Show()
}

func (a *Application) setupKeyboardShortcuts() {
	a.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			a.window.Canvas().Unfocus()
			return
		}

		// Typing into a field must not trigger shortcuts
		focused := a.window.Canvas().Focused()
		if focused == a.paragraphInput || focused == a.wordInput {
			return
		}

		a.handleShortcutKey(ev.Name)
	})
}

// handleShortcutKey handles the actual shortcut action
func (a *Application) handleShortcutKey(key fyne.KeyName) {
	if action, ok := shortcutActions[key]; ok {
		a.run(action)
		return
	}

	switch key {
	case fyne.KeyP:
		a.audioPlayer.Play()
	case fyne.KeyN:
		a.audioPlayer.Next()
	case fyne.KeyH:
		a.onShowHotkeys()
	case fyne.KeyQ:
		a.window.Close()
	}
}

var shortcutActions = map[fyne.KeyName]processor.Action{
	fyne.KeyD: processor.ActionDetect,
	fyne.KeyT: processor.ActionTranslate,
	fyne.KeyC: processor.ActionCloud,
	fyne.KeyR: processor.ActionRead,
	fyne.KeyS: processor.ActionSpell,
}

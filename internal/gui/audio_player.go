package gui

import (
	"context"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"codeberg.org/snonux/globalize/internal/audio"
)

// AudioPlayer is a custom widget playing the clips of the last result
// through a command line player. Clips stay in memory.
type AudioPlayer struct {
	widget.BaseWidget

	container   *fyne.Container
	playButton  *ttwidget.Button
	stopButton  *ttwidget.Button
	nextButton  *ttwidget.Button
	clipSelect  *widget.Select
	statusLabel *widget.Label

	player *audio.Player

	mu      sync.Mutex
	clips   []*audio.Clip
	labels  []string
	current int
	cancel  context.CancelFunc
}

// NewAudioPlayer creates a new audio player widget
func NewAudioPlayer() *AudioPlayer {
	p := &AudioPlayer{player: audio.NewPlayer()}

	// Create controls with tooltips
	p.playButton = ttwidget.NewButton("", p.onPlay)
	p.playButton.Icon = theme.MediaPlayIcon()
	p.playButton.SetToolTip("Play audio (p)")

	p.stopButton = ttwidget.NewButton("", p.onStop)
	p.stopButton.Icon = theme.MediaStopIcon()
	p.stopButton.SetToolTip("Stop audio")

	p.nextButton = ttwidget.NewButton("", p.Next)
	p.nextButton.Icon = theme.MediaSkipNextIcon()
	p.nextButton.SetToolTip("Next clip (n)")

	p.clipSelect = widget.NewSelect(nil, func(label string) {
		p.mu.Lock()
		defer p.mu.Unlock()
		for i, l := range p.labels {
			if l == label {
				p.current = i
			}
		}
	})

	p.statusLabel = widget.NewLabel("No audio loaded")

	// Initially disable controls
	p.setEnabled(false)

	p.container = container.NewHBox(
		p.playButton,
		p.stopButton,
		p.nextButton,
		p.clipSelect,
		layout.NewSpacer(),
		p.statusLabel,
	)

	p.ExtendBaseWidget(p)
	return p
}

// CreateRenderer implements fyne.Widget
func (p *AudioPlayer) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.container)
}

// SetClips loads clips, labelled by labels, replacing the previous ones
func (p *AudioPlayer) SetClips(clips []*audio.Clip, labels []string) {
	p.onStop()

	p.mu.Lock()
	p.clips = clips
	p.labels = labels
	p.current = 0
	p.mu.Unlock()

	if len(clips) == 0 {
		p.Clear()
		return
	}

	p.clipSelect.Options = labels
	p.clipSelect.SetSelected(labels[0])
	p.setEnabled(true)
	p.statusLabel.SetText(fmt.Sprintf("%d clip(s) loaded", len(clips)))
}

// Clear stops playback and drops all clips
func (p *AudioPlayer) Clear() {
	p.onStop()

	p.mu.Lock()
	p.clips = nil
	p.labels = nil
	p.current = 0
	p.mu.Unlock()

	p.clipSelect.Options = nil
	p.clipSelect.ClearSelected()
	p.setEnabled(false)
	p.statusLabel.SetText("No audio loaded")
}

// Play plays the selected clip, or stops it when already playing
func (p *AudioPlayer) Play() {
	if !p.playButton.Disabled() {
		p.onPlay()
	}
}

// Next selects the following clip and plays it
func (p *AudioPlayer) Next() {
	p.mu.Lock()
	if len(p.clips) == 0 {
		p.mu.Unlock()
		return
	}
	next := (p.current + 1) % len(p.clips)
	label := p.labels[next]
	p.mu.Unlock()

	p.onStop()
	p.clipSelect.SetSelected(label)
	p.onPlay()
}

func (p *AudioPlayer) setEnabled(enabled bool) {
	for _, b := range []*ttwidget.Button{p.playButton, p.nextButton} {
		if enabled {
			b.Enable()
		} else {
			b.Disable()
		}
	}
	if enabled {
		p.clipSelect.Enable()
	} else {
		p.clipSelect.Disable()
		p.stopButton.Disable()
	}
}

// onPlay handles play button click
func (p *AudioPlayer) onPlay() {
	p.mu.Lock()
	if p.cancel != nil {
		p.mu.Unlock()
		p.onStop()
		return
	}
	if len(p.clips) == 0 {
		p.mu.Unlock()
		return
	}
	clip := p.clips[p.current]
	label := p.labels[p.current]
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.mu.Unlock()

	p.playButton.SetIcon(theme.MediaPauseIcon())
	p.stopButton.Enable()
	p.statusLabel.SetText("Playing: " + label)

	go func() {
		err := p.player.Play(ctx, clip)
		fyne.Do(func() {
			p.mu.Lock()
			stopped := p.cancel == nil
			p.cancel = nil
			p.mu.Unlock()
			cancel()

			p.playButton.SetIcon(theme.MediaPlayIcon())
			p.stopButton.Disable()
			switch {
			case err != nil:
				p.statusLabel.SetText(fmt.Sprintf("Error: %v", err))
			case !stopped:
				p.statusLabel.SetText("Finished: " + label)
			}
		})
	}()
}

// onStop handles stop button click
func (p *AudioPlayer) onStop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	p.player.Stop()

	p.playButton.SetIcon(theme.MediaPlayIcon())
	p.stopButton.Disable()
	p.statusLabel.SetText("Stopped")
}

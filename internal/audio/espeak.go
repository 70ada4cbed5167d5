package audio

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// ESpeakProvider synthesizes WAV audio offline with espeak-ng, writing the
// sound to stdout instead of a file.
type ESpeakProvider struct {
	speed     int // words per minute
	slowSpeed int
}

// NewESpeakProvider creates a new espeak-ng provider
func NewESpeakProvider(speed, slowSpeed int) (Provider, error) {
	if err := checkESpeakInstalled(); err != nil {
		return nil, err
	}
	return &ESpeakProvider{
		speed:     clampSpeed(speed, 160),
		slowSpeed: clampSpeed(slowSpeed, 90),
	}, nil
}

// GenerateAudio generates WAV audio using espeak-ng
func (p *ESpeakProvider) GenerateAudio(ctx context.Context, text, lang string, slow bool) (*Clip, error) {
	cmd := exec.CommandContext(ctx, "espeak-ng", p.args(text, lang, slow)...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("espeak-ng failed: %w\nOutput: %s", err, stderr.String())
	}

	return &Clip{
		Data:   stdout.Bytes(),
		Format: "wav",
		Lang:   lang,
		Text:   text,
		Slow:   slow,
	}, nil
}

func (p *ESpeakProvider) args(text, lang string, slow bool) []string {
	speed := p.speed
	if slow {
		speed = p.slowSpeed
	}
	return []string{
		"-v", lang,
		"-s", fmt.Sprintf("%d", speed),
		"--stdout",
		text,
	}
}

// Name returns the provider name
func (p *ESpeakProvider) Name() string {
	return "espeak-ng"
}

// IsAvailable checks if espeak-ng is installed
func (p *ESpeakProvider) IsAvailable() error {
	return checkESpeakInstalled()
}

// clampSpeed keeps speed in the range espeak-ng accepts
func clampSpeed(speed, def int) int {
	if speed == 0 {
		return def
	}
	if speed < 80 {
		return 80
	}
	if speed > 450 {
		return 450
	}
	return speed
}

// checkESpeakInstalled verifies that espeak-ng is available on the system
func checkESpeakInstalled() error {
	if _, err := exec.LookPath("espeak-ng"); err != nil {
		return fmt.Errorf("espeak-ng is not installed or not in PATH: %w", err)
	}
	return nil
}

package audio

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"sync"
)

// ErrNoPlayer is returned when no command line player is installed.
var ErrNoPlayer = errors.New("no audio player found. Install mpg123, ffplay or sox")

// playerCandidate is a command that can read a clip from stdin
type playerCandidate struct {
	name    string
	args    []string
	formats []string
}

// Candidates in order of preference. mpg123 first since it handles MP3
// best; aplay only understands WAV.
var playerCandidates = []playerCandidate{
	{"mpg123", []string{"-q", "-"}, []string{"mp3"}},
	{"ffplay", []string{"-nodisp", "-autoexit", "-loglevel", "quiet", "-i", "pipe:0"}, []string{"mp3", "wav"}},
	{"play", []string{"-q", "-t", "FORMAT", "-"}, []string{"mp3", "wav"}},
	{"aplay", []string{"-q", "-"}, []string{"wav"}},
}

// Player plays clips by piping them to a locally installed player, so no
// audio ever touches the disk. One clip plays at a time.
type Player struct {
	lookPath func(string) (string, error)

	mu  sync.Mutex
	cmd *exec.Cmd
}

// NewPlayer creates a player that searches PATH for a player command
func NewPlayer() *Player {
	return &Player{lookPath: exec.LookPath}
}

// Command returns the player command for clip without starting it
func (p *Player) Command(ctx context.Context, clip *Clip) (*exec.Cmd, error) {
	format := clip.Format
	if format == "" {
		format = "mp3"
	}

	for _, c := range playerCandidates {
		if !supports(c.formats, format) {
			continue
		}
		path, err := p.lookPath(c.name)
		if err != nil {
			continue
		}
		args := make([]string, len(c.args))
		for i, a := range c.args {
			if a == "FORMAT" {
				a = format
			}
			args[i] = a
		}
		cmd := exec.CommandContext(ctx, path, args...)
		cmd.Stdin = clip.Reader()
		return cmd, nil
	}
	return nil, ErrNoPlayer
}

// Play plays clip and blocks until playback finishes, fails or is stopped.
// A clip already playing is stopped first.
func (p *Player) Play(ctx context.Context, clip *Clip) error {
	if clip == nil || len(clip.Data) == 0 {
		return fmt.Errorf("no audio loaded")
	}

	cmd, err := p.Command(ctx, clip)
	if err != nil {
		return err
	}

	p.Stop()
	p.mu.Lock()
	if err := cmd.Start(); err != nil {
		p.mu.Unlock()
		return fmt.Errorf("failed to start %s: %w", cmd.Path, err)
	}
	p.cmd = cmd
	p.mu.Unlock()

	err = cmd.Wait()

	p.mu.Lock()
	stopped := p.cmd != cmd
	if !stopped {
		p.cmd = nil
	}
	p.mu.Unlock()

	if err != nil && !stopped && ctx.Err() == nil {
		return fmt.Errorf("playback failed: %w", err)
	}
	return nil
}

// Stop kills the clip currently playing, if any
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cmd != nil && p.cmd.Process != nil {
		p.cmd.Process.Kill()
	}
	p.cmd = nil
}

// Playing reports whether a clip is playing
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cmd != nil
}

func supports(formats []string, format string) bool {
	for _, f := range formats {
		if f == format {
			return true
		}
	}
	return false
}

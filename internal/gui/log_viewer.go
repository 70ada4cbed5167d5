package gui

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const maxLogLines = 500

// LogViewer shows what the processor prints while the window is open.
// Output still reaches the terminal.
type LogViewer struct {
	widget.BaseWidget

	container  *fyne.Container
	logEntry   *widget.Entry
	scrollView *container.Scroll

	mu    sync.Mutex
	lines []string

	capture  sync.WaitGroup
	original *os.File
	pipe     *os.File
}

// NewLogViewer creates a new log viewer widget
func NewLogViewer() *LogViewer {
	v := &LogViewer{}

	v.logEntry = widget.NewMultiLineEntry()
	v.logEntry.Disable()
	v.logEntry.Wrapping = fyne.TextWrapWord
	v.logEntry.TextStyle = fyne.TextStyle{Monospace: true}

	v.scrollView = container.NewScroll(v.logEntry)
	v.scrollView.SetMinSize(fyne.NewSize(0, 180))

	clearButton := widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), v.Clear)

	v.container = container.NewBorder(
		container.NewHBox(widget.NewLabel("Log messages:"), clearButton),
		nil, nil, nil,
		v.scrollView,
	)

	v.ExtendBaseWidget(v)
	return v
}

// CreateRenderer implements fyne.Widget
func (v *LogViewer) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.container)
}

// StartCapture redirects stdout and the log package into the viewer
func (v *LogViewer) StartCapture() {
	if v.pipe != nil {
		return
	}

	r, w, err := os.Pipe()
	if err != nil {
		fmt.Printf("Warning: cannot capture log output: %v\n", err)
		return
	}

	v.original = os.Stdout
	v.pipe = w
	os.Stdout = w
	log.SetOutput(w)

	v.capture.Add(1)
	go func() {
		defer v.capture.Done()
		v.drain(io.TeeReader(r, v.original))
		r.Close()
	}()
}

// drain turns every line read from r into a log message
func (v *LogViewer) drain(r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimRight(scanner.Text(), "\r"); line != "" {
			v.AddMessage(line)
		}
	}
}

// StopCapture restores stdout and waits for buffered output
func (v *LogViewer) StopCapture() {
	if v.pipe == nil {
		return
	}

	os.Stdout = v.original
	log.SetOutput(os.Stderr)
	v.pipe.Close()
	v.capture.Wait()

	v.pipe = nil
	v.original = nil
}

// AddMessage appends a timestamped message
func (v *LogViewer) AddMessage(message string) {
	v.mu.Lock()
	v.lines = appendBounded(v.lines, fmt.Sprintf("[%s] %s", time.Now().Format("15:04:05"), message), maxLogLines)
	text := strings.Join(v.lines, "\n")
	v.mu.Unlock()

	fyne.Do(func() {
		v.logEntry.SetText(text)
		v.scrollView.ScrollToBottom()
	})
}

// Clear clears all log messages
func (v *LogViewer) Clear() {
	v.mu.Lock()
	v.lines = nil
	v.mu.Unlock()

	fyne.Do(func() {
		v.logEntry.SetText("")
	})
}

// appendBounded appends line and drops the oldest lines beyond limit
func appendBounded(lines []string, line string, limit int) []string {
	lines = append(lines, line)
	if len(lines) > limit {
		lines = append(lines[:0], lines[len(lines)-limit:]...)
	}
	return lines
}

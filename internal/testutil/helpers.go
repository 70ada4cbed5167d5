package testutil

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// CreateTestFile creates a test file with content
func CreateTestFile(t *testing.T, path string, content []byte) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory for test file: %v", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}

// AssertContains checks that s contains every substring
func AssertContains(t *testing.T, s string, substrings ...string) {
	t.Helper()

	for _, sub := range substrings {
		if !strings.Contains(s, sub) {
			t.Errorf("Expected %q to contain %q", s, sub)
		}
	}
}

// AssertNotContains checks that s contains none of the substrings
func AssertNotContains(t *testing.T, s string, substrings ...string) {
	t.Helper()

	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			t.Errorf("Expected %q not to contain %q", s, sub)
		}
	}
}

// CaptureOutput captures stdout/stderr during test execution
func CaptureOutput(t *testing.T, f func()) (stdout, stderr string) {
	t.Helper()

	// Save current stdout/stderr
	oldStdout := os.Stdout
	oldStderr := os.Stderr

	// Create pipes
	rOut, wOut, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	rErr, wErr, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	// Drain both pipes while f runs so large output cannot block it
	outC := make(chan string)
	errC := make(chan string)
	go drain(rOut, outC)
	go drain(rErr, errC)

	// Redirect stdout/stderr
	os.Stdout = wOut
	os.Stderr = wErr

	defer func() {
		os.Stdout = oldStdout
		os.Stderr = oldStderr
	}()

	// Run function
	f()

	// Close writers
	wOut.Close()
	wErr.Close()

	return <-outC, <-errC
}

func drain(r *os.File, c chan<- string) {
	var buf bytes.Buffer
	io.Copy(&buf, r)
	r.Close()
	c <- buf.String()
}

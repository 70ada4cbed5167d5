package internal

import "unicode/utf8"

// Version is the application version shown by the CLI and the page footer.
const Version = "0.3.0"

// Abbreviate shortens s to at most n runes for log lines, appending "..."
// when something was cut.
func Abbreviate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

package audio

import "strings"

// SpellOut renders word letter by letter, e.g. "cat" becomes "c, a, t".
// Letters are runes, so non-Latin words spell correctly.
func SpellOut(word string) string {
	runes := []rune(word)
	letters := make([]string, len(runes))
	for i, r := range runes {
		letters[i] = string(r)
	}
	return strings.Join(letters, ", ")
}

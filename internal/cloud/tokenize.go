package cloud

import (
	"sort"
	"strings"
	"unicode"
)

// WordCount is a word and the number of times it occurs
type WordCount struct {
	Word  string
	Count int
}

// Tokenize lower-cases text and splits it into tokens at every rune that is
// neither a letter nor a digit. Only purely alphabetic tokens are returned.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := fields[:0]
	for _, f := range fields {
		if isAlpha(f) {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return s != ""
}

// Frequencies counts tokens not in stop, most frequent first. Ties are
// ordered alphabetically so layouts are reproducible.
func Frequencies(tokens []string, stop map[string]bool) []WordCount {
	counts := make(map[string]int)
	for _, t := range tokens {
		if stop[t] {
			continue
		}
		counts[t]++
	}

	words := make([]WordCount, 0, len(counts))
	for w, c := range counts {
		words = append(words, WordCount{Word: w, Count: c})
	}
	sort.Slice(words, func(i, j int) bool {
		if words[i].Count != words[j].Count {
			return words[i].Count > words[j].Count
		}
		return words[i].Word < words[j].Word
	})
	return words
}

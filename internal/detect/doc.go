// Package detect guesses the natural language of a text sample. Two local
// engines are available: lingua (default) and whatlang.
package detect

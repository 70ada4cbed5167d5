// Package translation translates text into a target language through one of
// several interchangeable backends. The source language is always detected by
// the backend itself. Backends are wrapped in a circuit breaker so a dead
// backend fails fast across a loop of target languages.
package translation

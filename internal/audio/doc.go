// Package audio synthesizes speech into in-memory clips and plays them back.
//
// Clips are never written to disk. Providers turn text into audio bytes
// (Google Translate TTS, OpenAI TTS or a local espeak-ng), and the
// Synthesizer adds validation, the letter-by-letter spelling mode and
// uniform error reporting on top of a provider.
package audio

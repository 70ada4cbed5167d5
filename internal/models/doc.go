// Package models lists the OpenAI models available to an API key, grouped
// into speech models (audio.openai_model) and chat models usable for
// translation (translation.openai_model).
package models

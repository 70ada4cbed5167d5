// Package processor drives the five user actions of globalize: detect the
// language of a paragraph, translate it to English, build a word cloud,
// translate and read it aloud in selected languages, and spell a word
// letter by letter. Every action takes an explicit Request and returns a
// Result of banners, sections and figures; no error escapes an action.
package processor

// Package language maps raw language codes to speech-synthesis codes and
// human-readable names, and holds the language catalogs offered by the
// translation backends together with the target selection model.
package language

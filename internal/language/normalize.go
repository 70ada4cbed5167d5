package language

import (
	"strings"

	xlanguage "golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// DefaultCode is used when no language code is available at all.
const DefaultCode = "en"

// legacyCodes maps deprecated codes still emitted by translation backends to
// the codes the speech backends accept.
var legacyCodes = map[string]string{
	"iw": "he",
	"in": "id",
}

// SynthesizerCode normalizes a raw language code for the speech backend:
// empty becomes "en", region suffixes are dropped and legacy codes remapped.
func SynthesizerCode(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return DefaultCode
	}
	if i := strings.Index(code, "-"); i >= 0 {
		code = code[:i]
	}
	if code == "" {
		return DefaultCode
	}
	if modern, ok := legacyCodes[code]; ok {
		return modern
	}
	return code
}

// DisplayName returns a friendly name for code. Two-letter codes are looked
// up in the ISO 639 tables first, then the backend table is consulted, and
// finally the code itself is returned. table may be nil.
func DisplayName(code string, table *Catalog) string {
	if len(code) == 2 {
		if name := standardName(code); name != "" {
			return name
		}
	}
	if table != nil {
		if name, ok := table.NameFor(code); ok {
			return name
		}
	}
	return code
}

func standardName(code string) string {
	base, err := xlanguage.ParseBase(strings.ToLower(code))
	if err != nil {
		return ""
	}
	tag, err := xlanguage.Compose(base)
	if err != nil {
		return ""
	}
	return display.English.Languages().Name(tag)
}

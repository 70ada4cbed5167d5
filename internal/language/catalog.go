package language

import (
	"strings"

	"golang.org/x/text/cases"
	xlanguage "golang.org/x/text/language"
)

// Entry is a single (code, name) pair of a backend catalog.
type Entry struct {
	Code string
	Name string
}

// Catalog is an ordered set of languages with a name<->code index built once.
type Catalog struct {
	entries []Entry
	byCode  map[string]int
	byName  map[string]int
}

// NewCatalog builds a catalog from entries. Later duplicates of a code or a
// name are ignored so both directions of the index stay one-to-one.
func NewCatalog(entries []Entry) *Catalog {
	c := &Catalog{
		byCode: make(map[string]int, len(entries)),
		byName: make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		code := strings.ToLower(strings.TrimSpace(e.Code))
		nameKey := strings.ToLower(strings.TrimSpace(e.Name))
		if code == "" || nameKey == "" {
			continue
		}
		if _, dup := c.byCode[code]; dup {
			continue
		}
		if _, dup := c.byName[nameKey]; dup {
			continue
		}
		c.byCode[code] = len(c.entries)
		c.byName[nameKey] = len(c.entries)
		c.entries = append(c.entries, Entry{Code: code, Name: strings.TrimSpace(e.Name)})
	}
	return c
}

// Len returns the number of languages in the catalog.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns a copy of the catalog entries in catalog order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Codes returns the catalog codes in catalog order.
func (c *Catalog) Codes() []string {
	out := make([]string, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Code
	}
	return out
}

// Names returns the display names in catalog order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.entries))
	for i, e := range c.entries {
		out[i] = titleCase(e.Name)
	}
	return out
}

// CodeFor resolves a display name (case-insensitive) to its code.
func (c *Catalog) CodeFor(name string) (string, bool) {
	i, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", false
	}
	return c.entries[i].Code, true
}

// NameFor resolves a code to its title-cased display name.
func (c *Catalog) NameFor(code string) (string, bool) {
	i, ok := c.byCode[strings.ToLower(strings.TrimSpace(code))]
	if !ok {
		return "", false
	}
	return titleCase(c.entries[i].Name), true
}

// Contains reports whether code is part of the catalog.
func (c *Catalog) Contains(code string) bool {
	_, ok := c.byCode[strings.ToLower(strings.TrimSpace(code))]
	return ok
}

func titleCase(s string) string {
	// Casers are stateful, so each call gets its own.
	return cases.Title(xlanguage.English).String(s)
}

// Compact returns the 23-language catalog offered by the generic translation
// wrapper and the LLM backends.
func Compact() *Catalog {
	return NewCatalog(compactEntries)
}

// Full returns the complete catalog reported by the Google Translate
// provider. Names are lower-case as the provider reports them.
func Full() *Catalog {
	return NewCatalog(fullEntries)
}

var compactEntries = []Entry{
	{"ar", "Arabic"}, {"bn", "Bengali"}, {"cs", "Czech"}, {"da", "Danish"}, {"de", "German"},
	{"en", "English"}, {"es", "Spanish"}, {"fr", "French"}, {"hi", "Hindi"}, {"it", "Italian"},
	{"ja", "Japanese"}, {"ko", "Korean"}, {"ml", "Malayalam"}, {"mr", "Marathi"}, {"nl", "Dutch"},
	{"pa", "Punjabi"}, {"pt", "Portuguese"}, {"ru", "Russian"}, {"ta", "Tamil"}, {"te", "Telugu"},
	{"tr", "Turkish"}, {"uk", "Ukrainian"}, {"zh", "Chinese"},
}

var fullEntries = []Entry{
	{"af", "afrikaans"}, {"sq", "albanian"}, {"am", "amharic"}, {"ar", "arabic"},
	{"hy", "armenian"}, {"az", "azerbaijani"}, {"eu", "basque"}, {"be", "belarusian"},
	{"bn", "bengali"}, {"bs", "bosnian"}, {"bg", "bulgarian"}, {"ca", "catalan"},
	{"ceb", "cebuano"}, {"ny", "chichewa"}, {"zh-cn", "chinese (simplified)"},
	{"zh-tw", "chinese (traditional)"}, {"co", "corsican"}, {"hr", "croatian"},
	{"cs", "czech"}, {"da", "danish"}, {"nl", "dutch"}, {"en", "english"},
	{"eo", "esperanto"}, {"et", "estonian"}, {"tl", "filipino"}, {"fi", "finnish"},
	{"fr", "french"}, {"fy", "frisian"}, {"gl", "galician"}, {"ka", "georgian"},
	{"de", "german"}, {"el", "greek"}, {"gu", "gujarati"}, {"ht", "haitian creole"},
	{"ha", "hausa"}, {"haw", "hawaiian"}, {"iw", "hebrew"}, {"hi", "hindi"},
	{"hmn", "hmong"}, {"hu", "hungarian"}, {"is", "icelandic"}, {"ig", "igbo"},
	{"id", "indonesian"}, {"ga", "irish"}, {"it", "italian"}, {"ja", "japanese"},
	{"jw", "javanese"}, {"kn", "kannada"}, {"kk", "kazakh"}, {"km", "khmer"},
	{"ko", "korean"}, {"ku", "kurdish (kurmanji)"}, {"ky", "kyrgyz"}, {"lo", "lao"},
	{"la", "latin"}, {"lv", "latvian"}, {"lt", "lithuanian"}, {"lb", "luxembourgish"},
	{"mk", "macedonian"}, {"mg", "malagasy"}, {"ms", "malay"}, {"ml", "malayalam"},
	{"mt", "maltese"}, {"mi", "maori"}, {"mr", "marathi"}, {"mn", "mongolian"},
	{"my", "myanmar (burmese)"}, {"ne", "nepali"}, {"no", "norwegian"}, {"or", "odia"},
	{"ps", "pashto"}, {"fa", "persian"}, {"pl", "polish"}, {"pt", "portuguese"},
	{"pa", "punjabi"}, {"ro", "romanian"}, {"ru", "russian"}, {"sm", "samoan"},
	{"gd", "scots gaelic"}, {"sr", "serbian"}, {"st", "sesotho"}, {"sn", "shona"},
	{"sd", "sindhi"}, {"si", "sinhala"}, {"sk", "slovak"}, {"sl", "slovenian"},
	{"so", "somali"}, {"es", "spanish"}, {"su", "sundanese"}, {"sw", "swahili"},
	{"sv", "swedish"}, {"tg", "tajik"}, {"ta", "tamil"}, {"te", "telugu"},
	{"th", "thai"}, {"tr", "turkish"}, {"uk", "ukrainian"}, {"ur", "urdu"},
	{"ug", "uyghur"}, {"uz", "uzbek"}, {"vi", "vietnamese"}, {"cy", "welsh"},
	{"xh", "xhosa"}, {"yi", "yiddish"}, {"yo", "yoruba"}, {"zu", "zulu"},
}

package language

// DefaultTarget is the language pre-selected when "select all" is off.
const DefaultTarget = "English"

// DefaultSelection returns the names pre-selected in the target multi-select:
// the whole catalog when selectAll is set, English otherwise.
func DefaultSelection(c *Catalog, selectAll bool) []string {
	if selectAll {
		return c.Names()
	}
	return []string{DefaultTarget}
}

// Resolve maps selected display names to catalog entries. Names without a
// backing code are returned separately, in input order.
func (c *Catalog) Resolve(names []string) (entries []Entry, unknown []string) {
	for _, name := range names {
		code, ok := c.CodeFor(name)
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		display, _ := c.NameFor(code)
		entries = append(entries, Entry{Code: code, Name: display})
	}
	return entries, unknown
}

package wiki

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldName reduces a name to its search form: diacritics stripped, lower
// case, and runs of anything other than letters and digits collapsed to a
// single space.
func FoldName(s string) string {
	if stripped, _, err := transform.String(diacriticStripper, s); err == nil {
		s = stripped
	}

	var b strings.Builder
	b.Grow(len(s))
	gap := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if gap && b.Len() > 0 {
				b.WriteByte(' ')
			}
			gap = false
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		gap = true
	}
	return b.String()
}

// Search returns the entities whose folded name contains the folded query,
// in catalog order. An empty query matches nothing.
func (c *Catalog) Search(query string) Tagged {
	q := FoldName(query)
	if q == "" {
		return Tagged{}
	}
	match := func(src Collection) Collection {
		var out Collection
		for _, e := range src {
			if strings.Contains(FoldName(e.Name), q) {
				out = append(out, e)
			}
		}
		return out
	}
	return Tagged{
		Objects: match(c.Objects),
		Items:   match(c.Items),
		NPCs:    match(c.NPCs),
	}
}

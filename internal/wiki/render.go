package wiki

import (
	"html/template"
	"strings"
)

// The render helpers build markup from author-curated data and do not escape
// names or ids.

// RenderImage returns the image tag for e.
func RenderImage(e Entity) template.HTML {
	return template.HTML(`<img src="images/` + e.Image + `.png"/>`)
}

// RenderEntityLink links to e's page. With textOnly the link holds just the
// name; otherwise the image follows the name on its own line, except for
// items whose icon precedes the name.
func RenderEntityLink(e Entity, kind Kind, textOnly bool) template.HTML {
	var b strings.Builder
	b.WriteString(`<a href="`)
	b.WriteString(kind.Page())
	b.WriteString(`?id=`)
	b.WriteString(e.ID)
	b.WriteString(`">`)
	switch {
	case textOnly:
		b.WriteString(e.Name)
	case kind == KindItem:
		b.WriteString(string(RenderImage(e)))
		b.WriteString(e.Name)
	default:
		b.WriteString(e.Name)
		b.WriteString("<br/>")
		b.WriteString(string(RenderImage(e)))
	}
	b.WriteString("</a>")
	return template.HTML(b.String())
}

// RenderTagLink links to the page listing everything tagged tag.
func RenderTagLink(tag string) template.HTML {
	return template.HTML(`<a href="` + KindTag.Page() + `?id=` + tag + `">` + tag + `</a>`)
}

// RenderTagLinks links every tag, separated by ", ".
func RenderTagLinks(tags []string) template.HTML {
	links := make([]string, 0, len(tags))
	for _, tag := range tags {
		links = append(links, string(RenderTagLink(tag)))
	}
	return template.HTML(JoinWithCommaSpace(links))
}

// RenderUnlockListItem renders lock as a list item: the type's prefix, a
// link to the source entity and the type's suffix. The source is looked up in
// the collection of the page the lock type links to.
//
// Older pages wrapped the entity link in a second anchor to the same page.
// Nested anchors are invalid HTML, so only one anchor is emitted: the entity
// link, or a plain link to the source id when the source cannot be found.
func RenderUnlockListItem(c *Catalog, lock Lock) template.HTML {
	page, source := c.LockSource(lock)

	var b strings.Builder
	b.WriteString("<li>")
	if prefix := c.Locks.Prefix[lock.Type]; prefix != "" {
		b.WriteString(prefix)
		b.WriteString(" ")
	}
	if source.IsZero() {
		b.WriteString(`<a href="`)
		b.WriteString(page.Page())
		b.WriteString(`?id=`)
		b.WriteString(lock.SourceID)
		b.WriteString(`">`)
		b.WriteString(lock.SourceID)
		b.WriteString("</a>")
	} else {
		b.WriteString(string(RenderEntityLink(source, page, false)))
	}
	b.WriteString(c.Locks.Suffix[lock.Type])
	if lock.Chance > 0 && lock.Chance < 1 {
		b.WriteString(" (")
		b.WriteString(formatChance(lock.Chance))
		b.WriteString(" chance)")
	}
	b.WriteString("</li>")
	return template.HTML(b.String())
}

// formatChance renders a probability as a whole percentage, e.g. 0.25 as "25%".
func formatChance(p float64) string {
	return strings.TrimPrefix(FormatPercentDelta(1+p), "+")
}

package app

import (
	"html/template"
	"sort"
	"strings"

	"github.com/tidwall/gjson"

	"gamewiki/internal/wiki"
)

// durationFields are record fields holding millisecond durations.
var durationFields = []struct {
	key   string
	label string
}{
	{"gatherTime", "Gather time"},
	{"constructionTime", "Construction time"},
	{"deconstructionTime", "Deconstruction time"},
	{"attackTime", "Attack time"},
	{"respawnTime", "Respawn time"},
	{"time", "Crafting time"},
}

// Property is one labelled value on an entity page. Values come from the
// formatters and are inserted unescaped.
type Property struct {
	Label string
	Value template.HTML
}

type entityPage struct {
	Kind       wiki.Kind
	ID         string
	Title      string
	Found      bool
	Gear       bool
	Image      template.HTML
	Tags       template.HTML
	Unlocks    []template.HTML
	Properties []Property
	Modifiers  []Property
}

func buildEntityPage(c *wiki.Catalog, kind wiki.Kind, id string) entityPage {
	e := c.Find(kind, id)
	page := entityPage{
		Kind:  kind,
		ID:    id,
		Title: e.Name,
		Found: !e.IsZero(),
	}
	if !page.Found {
		return page
	}

	if e.Image != "" {
		page.Image = wiki.RenderImage(e)
	}
	page.Tags = wiki.RenderTagLinks(e.Tags)
	page.Gear = kind == wiki.KindItem && wiki.IsGearItem(e)
	for _, lock := range e.Unlocks {
		page.Unlocks = append(page.Unlocks, wiki.RenderUnlockListItem(c, lock))
	}
	page.Properties = durationProperties(e)
	page.Modifiers = modifierProperties(e)
	return page
}

func durationProperties(e wiki.Entity) []Property {
	if len(e.Raw) == 0 {
		return nil
	}
	var props []Property
	for _, f := range durationFields {
		v := gjson.GetBytes(e.Raw, f.key)
		if v.Type != gjson.Number {
			continue
		}
		if text := wiki.FormatDurationHMS(v.Int()); text != "" {
			props = append(props, Property{Label: f.label, Value: template.HTML(text)})
		}
	}
	return props
}

// modifierProperties renders the record's "modifiers" object, whose values
// are multipliers such as {"speed": 1.25}.
func modifierProperties(e wiki.Entity) []Property {
	if len(e.Raw) == 0 {
		return nil
	}
	var props []Property
	gjson.GetBytes(e.Raw, "modifiers").ForEach(func(k, v gjson.Result) bool {
		if v.Type == gjson.Number {
			props = append(props, Property{Label: k.String(), Value: template.HTML(wiki.FormatPercentDelta(v.Float()))})
		}
		return true
	})
	sort.Slice(props, func(i, j int) bool { return props[i].Label < props[j].Label })
	return props
}

type tagPage struct {
	Tag     string
	Objects []template.HTML
	Items   []template.HTML
	NPCs    []template.HTML
	Count   int
}

func buildTagPage(c *wiki.Catalog, tag string) tagPage {
	tagged := c.WithTag(tag)
	return tagPage{
		Tag:     tag,
		Objects: entityLinks(tagged.Objects, wiki.KindObject),
		Items:   entityLinks(tagged.Items, wiki.KindItem),
		NPCs:    entityLinks(tagged.NPCs, wiki.KindNPC),
		Count:   tagged.Len(),
	}
}

func entityLinks(c wiki.Collection, kind wiki.Kind) []template.HTML {
	links := make([]template.HTML, 0, len(c))
	for _, e := range c {
		links = append(links, wiki.RenderEntityLink(e, kind, false))
	}
	return links
}

type searchPage struct {
	Query   string
	Objects []template.HTML
	Items   []template.HTML
	NPCs    []template.HTML
	Count   int
}

func buildSearchPage(c *wiki.Catalog, query string) searchPage {
	found := c.Search(query)
	return searchPage{
		Query:   query,
		Objects: textLinks(found.Objects, wiki.KindObject),
		Items:   textLinks(found.Items, wiki.KindItem),
		NPCs:    textLinks(found.NPCs, wiki.KindNPC),
		Count:   found.Len(),
	}
}

type homePage struct {
	Objects []template.HTML
	Items   []template.HTML
	NPCs    []template.HTML
	Tags    template.HTML
}

func buildHomePage(c *wiki.Catalog) homePage {
	return homePage{
		Objects: textLinks(c.Objects, wiki.KindObject),
		Items:   textLinks(c.Items, wiki.KindItem),
		NPCs:    textLinks(c.NPCs, wiki.KindNPC),
		Tags:    wiki.RenderTagLinks(c.Tags),
	}
}

func textLinks(c wiki.Collection, kind wiki.Kind) []template.HTML {
	links := make([]template.HTML, 0, len(c))
	for _, e := range c {
		links = append(links, wiki.RenderEntityLink(e, kind, true))
	}
	return links
}

// kindTitle turns a kind into a heading, e.g. "npc" into "NPC".
func kindTitle(k wiki.Kind) string {
	if k == wiki.KindNPC {
		return "NPC"
	}
	s := string(k)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

package catalog

import (
	"encoding/json"
	"log"
	"slices"

	"golang.org/x/text/language"

	"gamewiki/internal/wiki"
)

// Build decodes a dataset into a catalog and sorts every collection by name.
// Undecodable records and repeated ids are logged and skipped; the first
// record with an id wins.
func Build(ds Dataset, locks wiki.LockTables, lang language.Tag) *wiki.Catalog {
	c := &wiki.Catalog{
		Objects: decodeAll(collectionObjects, ds.Objects, lang),
		Items:   decodeAll(collectionItems, ds.Items, lang),
		NPCs:    decodeAll(collectionNPCs, ds.NPCs, lang),
		Tags:    uniqueTags(ds.Tags),
		Locks:   locks,
	}
	return c
}

func decodeAll(name string, records []json.RawMessage, lang language.Tag) wiki.Collection {
	coll := make(wiki.Collection, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for i, raw := range records {
		e, err := Decode(raw)
		if err != nil {
			log.Printf("skip %s record %d: %v", name, i, err)
			continue
		}
		if _, dup := seen[e.ID]; dup {
			log.Printf("skip duplicate %s id %q", name, e.ID)
			continue
		}
		seen[e.ID] = struct{}{}
		coll = append(coll, e)
	}
	wiki.SortCollection(coll, lang)
	return coll
}

func uniqueTags(tags []string) []string {
	out := slices.Clone(tags)
	slices.Sort(out)
	return slices.Compact(out)
}

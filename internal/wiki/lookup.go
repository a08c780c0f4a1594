package wiki

import (
	"strconv"
	"strings"
)

// FindByID returns the first entity in c whose id equals id, or the zero
// Entity when there is none. Ids are compared as strings; a numeric id also
// matches its canonical form, so "07", "7.0" and "7e0" all find id 7.
func FindByID(c Collection, id string) Entity {
	canon, numeric := canonicalNumber(id)
	for _, e := range c {
		if e.ID == id || (numeric && e.ID == canon) {
			return e
		}
	}
	return Entity{}
}

// canonicalNumber returns the form IDString gives a decimal number. Words
// such as "Inf" and hex literals are not treated as numbers.
func canonicalNumber(id string) (string, bool) {
	if id == "" {
		return "", false
	}
	for _, r := range id {
		if !strings.ContainsRune("0123456789+-.eE", r) {
			return "", false
		}
	}
	f, err := strconv.ParseFloat(id, 64)
	if err != nil {
		return "", false
	}
	canon := formatFloatID(f)
	return canon, canon != ""
}

// FindObject looks id up among the catalog's objects.
func (c *Catalog) FindObject(id string) Entity {
	return FindByID(c.Objects, id)
}

// FindItem looks id up among the catalog's items.
func (c *Catalog) FindItem(id string) Entity {
	return FindByID(c.Items, id)
}

// FindNPC looks id up among the catalog's NPCs.
func (c *Catalog) FindNPC(id string) Entity {
	return FindByID(c.NPCs, id)
}

// Collection returns the collection displayed by kind's page. Unknown kinds
// have no collection.
func (c *Catalog) Collection(kind Kind) Collection {
	switch kind {
	case KindObject:
		return c.Objects
	case KindItem:
		return c.Items
	case KindNPC:
		return c.NPCs
	default:
		return nil
	}
}

// Find looks id up in the collection for kind.
func (c *Catalog) Find(kind Kind, id string) Entity {
	return FindByID(c.Collection(kind), id)
}

// LockSource resolves the entity a lock points at. The page comes from the
// lock tables and defaults to the object page; item and NPC pages look in
// their own collection and every other page looks among objects while still
// linking to that page. LoadLockTables only accepts object, item and npc.
func (c *Catalog) LockSource(lock Lock) (Kind, Entity) {
	page := Kind(c.Locks.LinkPage[lock.Type])
	if page == "" {
		page = KindObject
	}
	switch page {
	case KindItem, KindNPC:
		return page, c.Find(page, lock.SourceID)
	default:
		return page, c.FindObject(lock.SourceID)
	}
}

// Tagged groups matching entities by kind, each group in collection order.
type Tagged struct {
	Objects Collection
	Items   Collection
	NPCs    Collection
}

// Len is the number of entities across all groups.
func (t Tagged) Len() int {
	return len(t.Objects) + len(t.Items) + len(t.NPCs)
}

// WithTag returns the entities carrying tag.
func (c *Catalog) WithTag(tag string) Tagged {
	return Tagged{
		Objects: filterTag(c.Objects, tag),
		Items:   filterTag(c.Items, tag),
		NPCs:    filterTag(c.NPCs, tag),
	}
}

func filterTag(c Collection, tag string) Collection {
	var out Collection
	for _, e := range c {
		if e.HasTag(tag) {
			out = append(out, e)
		}
	}
	return out
}

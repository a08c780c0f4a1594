package wiki

import (
	"encoding/json"
	"reflect"
	"testing"
)

func testCatalog() *Catalog {
	return &Catalog{
		Objects: Collection{
			{ID: "anvil", Name: "Anvil", Image: "anvil", Tags: []string{"smithing"}},
			{ID: "forge", Name: "Forge", Image: "forge", Tags: []string{"smithing", "fire"},
				Unlocks: []Lock{{Type: "construction", SourceID: "anvil"}}},
		},
		Items: Collection{
			{ID: "7", Name: "Copper Ore", Image: "copperOre", Tags: []string{"ore"}},
			{ID: "hammer", Name: "Hammer", Image: "hammer", Tags: []string{"smithing"},
				Raw: json.RawMessage(`{"id":"hammer","gearSlot":6}`)},
		},
		NPCs: Collection{
			{ID: "wolf", Name: "Wolf", Image: "wolf"},
		},
		Tags: []string{"fire", "ore", "smithing"},
		Locks: LockTables{
			LinkPage: map[string]string{"item": "item", "construction": "object", "gather": "item"},
			Prefix:   map[string]string{"item": "Acquire", "construction": "Construct", "gather": "Gather"},
			Suffix:   map[string]string{"gather": " from a node"},
		},
	}
}

func TestFindByIDReturnsEveryMember(t *testing.T) {
	c := testCatalog()
	for _, coll := range []Collection{c.Objects, c.Items, c.NPCs} {
		for _, e := range coll {
			if got := FindByID(coll, e.ID); !reflect.DeepEqual(got, e) {
				t.Fatalf("FindByID(%q) = %+v, want %+v", e.ID, got, e)
			}
		}
	}
}

func TestFindByIDMissingIsZero(t *testing.T) {
	got := FindByID(testCatalog().Items, "nonexistent")
	if !got.IsZero() {
		t.Fatalf("FindByID(nonexistent) = %+v, want zero", got)
	}
	if got := FindByID(nil, ""); !got.IsZero() {
		t.Fatalf("FindByID on nil collection = %+v, want zero", got)
	}
}

func TestFindByIDNumericForms(t *testing.T) {
	c := Collection{
		{ID: IDString(json.Number("7")), Name: "seven"},
		{ID: "08", Name: "eight"},
	}

	tests := map[string]string{
		"?id=7":   "seven",
		"?id=07":  "seven",
		"?id=7.0": "seven",
		"?id=7e0": "seven",
		"?id=08":  "eight",
		"?id=8":   "",
		"?id=0x7": "",
		"?id=Inf": "",
		"?id=":    "",
	}
	for query, want := range tests {
		if got := FindByID(c, EntityID(query)); got.Name != want {
			t.Fatalf("FindByID(EntityID(%q)) = %q, want %q", query, got.Name, want)
		}
	}
}

func TestFindByIDFirstMatchWins(t *testing.T) {
	c := Collection{{ID: "a", Name: "first"}, {ID: "a", Name: "second"}}
	if got := FindByID(c, "a"); got.Name != "first" {
		t.Fatalf("FindByID() = %q, want first", got.Name)
	}
}

func TestFindNumericIDAsString(t *testing.T) {
	c := testCatalog()
	if got := c.FindItem(IDString(7)); got.Name != "Copper Ore" {
		t.Fatalf("FindItem(7) = %+v", got)
	}
	if got := c.FindItem(IDString(json.Number("7.0"))); got.Name != "Copper Ore" {
		t.Fatalf("FindItem(7.0) = %+v", got)
	}
}

func TestCatalogFinders(t *testing.T) {
	c := testCatalog()
	if got := c.FindObject("forge"); got.Name != "Forge" {
		t.Fatalf("FindObject(forge) = %+v", got)
	}
	if got := c.FindNPC("wolf"); got.Name != "Wolf" {
		t.Fatalf("FindNPC(wolf) = %+v", got)
	}
	if got := c.FindNPC("forge"); !got.IsZero() {
		t.Fatalf("FindNPC(forge) should not search objects: %+v", got)
	}
	if got := c.Find(KindTag, "ore"); !got.IsZero() {
		t.Fatalf("Find(tag) = %+v, want zero", got)
	}
}

func TestWithTag(t *testing.T) {
	got := testCatalog().WithTag("smithing")
	if got.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", got.Len())
	}
	if len(got.Objects) != 2 || got.Objects[0].ID != "anvil" || got.Objects[1].ID != "forge" {
		t.Fatalf("objects = %+v", got.Objects)
	}
	if len(got.Items) != 1 || got.Items[0].ID != "hammer" {
		t.Fatalf("items = %+v", got.Items)
	}
	if len(got.NPCs) != 0 {
		t.Fatalf("npcs = %+v", got.NPCs)
	}
}

func TestIDString(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"7", "7"},
		{7, "7"},
		{int64(-3), "-3"},
		{7.0, "7"},
		{2.5, "2.5"},
		{json.Number("12"), "12"},
		{json.Number("1e2"), "100"},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := IDString(tt.in); got != tt.want {
			t.Fatalf("IDString(%#v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

package wiki

import (
	"html/template"
	"testing"
)

func TestRenderImage(t *testing.T) {
	got := RenderImage(Entity{Image: "copperOre"})
	if want := template.HTML(`<img src="images/copperOre.png"/>`); got != want {
		t.Fatalf("RenderImage() = %q, want %q", got, want)
	}
}

func TestRenderEntityLink(t *testing.T) {
	forge := Entity{ID: "forge", Name: "Forge", Image: "forge"}
	ore := Entity{ID: "7", Name: "Copper Ore", Image: "copperOre"}

	tests := []struct {
		name     string
		entity   Entity
		kind     Kind
		textOnly bool
		want     template.HTML
	}{
		{"object text", forge, KindObject, true, `<a href="object.html?id=forge">Forge</a>`},
		{"object image", forge, KindObject, false, `<a href="object.html?id=forge">Forge<br/><img src="images/forge.png"/></a>`},
		{"npc image", Entity{ID: "wolf", Name: "Wolf", Image: "wolf"}, KindNPC, false, `<a href="npc.html?id=wolf">Wolf<br/><img src="images/wolf.png"/></a>`},
		{"item image first", ore, KindItem, false, `<a href="item.html?id=7"><img src="images/copperOre.png"/>Copper Ore</a>`},
		{"item text", ore, KindItem, true, `<a href="item.html?id=7">Copper Ore</a>`},
		{"empty record", Entity{}, KindObject, true, `<a href="object.html?id="></a>`},
	}

	for _, tt := range tests {
		if got := RenderEntityLink(tt.entity, tt.kind, tt.textOnly); got != tt.want {
			t.Fatalf("%s: RenderEntityLink() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestRenderEntityLinkDoesNotEscapeNames(t *testing.T) {
	got := RenderEntityLink(Entity{ID: "x", Name: "<b>Bold</b>"}, KindObject, true)
	if want := template.HTML(`<a href="object.html?id=x"><b>Bold</b></a>`); got != want {
		t.Fatalf("RenderEntityLink() = %q, want %q", got, want)
	}
}

func TestRenderTagLinks(t *testing.T) {
	if got, want := RenderTagLink("ore"), template.HTML(`<a href="tag.html?id=ore">ore</a>`); got != want {
		t.Fatalf("RenderTagLink() = %q, want %q", got, want)
	}
	got := RenderTagLinks([]string{"fire", "ore"})
	want := template.HTML(`<a href="tag.html?id=fire">fire</a>, <a href="tag.html?id=ore">ore</a>`)
	if got != want {
		t.Fatalf("RenderTagLinks() = %q, want %q", got, want)
	}
	if got := RenderTagLinks(nil); got != "" {
		t.Fatalf("RenderTagLinks(nil) = %q", got)
	}
}

func TestRenderUnlockListItem(t *testing.T) {
	c := testCatalog()

	tests := []struct {
		name string
		lock Lock
		want template.HTML
	}{
		{
			"item source",
			Lock{Type: "item", SourceID: "7"},
			`<li>Acquire <a href="item.html?id=7"><img src="images/copperOre.png"/>Copper Ore</a></li>`,
		},
		{
			"object source",
			Lock{Type: "construction", SourceID: "anvil"},
			`<li>Construct <a href="object.html?id=anvil">Anvil<br/><img src="images/anvil.png"/></a></li>`,
		},
		{
			"suffix and chance",
			Lock{Type: "gather", SourceID: "7", Chance: 0.25},
			`<li>Gather <a href="item.html?id=7"><img src="images/copperOre.png"/>Copper Ore</a> from a node (25% chance)</li>`,
		},
		{
			"unresolved source",
			Lock{Type: "item", SourceID: "ghost"},
			`<li>Acquire <a href="item.html?id=ghost">ghost</a></li>`,
		},
		{
			"unknown type",
			Lock{Type: "mystery", SourceID: "forge"},
			`<li><a href="object.html?id=forge">Forge<br/><img src="images/forge.png"/></a></li>`,
		},
	}

	for _, tt := range tests {
		if got := RenderUnlockListItem(c, tt.lock); got != tt.want {
			t.Fatalf("%s: RenderUnlockListItem() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

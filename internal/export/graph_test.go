package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamewiki/internal/wiki"
)

func graphCatalog() *wiki.Catalog {
	return &wiki.Catalog{
		Objects: wiki.Collection{
			{ID: "anvil", Name: "Anvil"},
			{ID: "forge", Name: "Forge", Unlocks: []wiki.Lock{
				{Type: "construction", SourceID: "anvil"},
				{Type: "item", SourceID: "7", Chance: 0.5},
				{Type: "item", SourceID: "ghost"},
			}},
		},
		Items: wiki.Collection{
			{ID: "7", Name: "Copper Ore", Unlocks: []wiki.Lock{{Type: "kill", SourceID: "anvil"}}},
		},
		Locks: wiki.LockTables{
			LinkPage: map[string]string{"item": "item", "construction": "object"},
		},
	}
}

func TestUnlockGraph(t *testing.T) {
	g := UnlockGraph(graphCatalog())

	assert.Equal(t, Totals{Nodes: 3, Edges: 3, Unresolved: 1}, g.Totals)
	assert.Equal(t, []Edge{
		{Source: "item:7", Target: "object:forge", Type: "item", Chance: 0.5},
		{Source: "object:anvil", Target: "item:7", Type: "kill"},
		{Source: "object:anvil", Target: "object:forge", Type: "construction"},
	}, g.Edges)

	outbound := map[string]int{}
	for _, n := range g.Nodes {
		outbound[n.Key] = n.Outbound
	}
	assert.Equal(t, map[string]int{"object:anvil": 2, "object:forge": 0, "item:7": 1}, outbound)
}

func TestWriteGraph(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "unlocks.json")

	g, err := WriteGraph(graphCatalog(), path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded Graph
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, g.Totals, decoded.Totals)
	assert.Len(t, decoded.Nodes, 3)
}

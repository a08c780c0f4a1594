package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gamewiki/internal/wiki"
)

// Node is one entity in the unlock graph, keyed "kind:id".
type Node struct {
	Key      string    `json:"key"`
	Kind     wiki.Kind `json:"kind"`
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Outbound int       `json:"outbound"`
}

// Edge points from the entity that grants an unlock to the entity unlocked.
type Edge struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Type   string  `json:"type"`
	Chance float64 `json:"chance,omitempty"`
}

type Totals struct {
	Nodes      int `json:"nodes"`
	Edges      int `json:"edges"`
	Unresolved int `json:"unresolved"`
}

// Graph is a snapshot of the catalog's progression.
type Graph struct {
	GeneratedAt time.Time `json:"generated_at"`
	Totals      Totals    `json:"totals"`
	Nodes       []Node    `json:"nodes"`
	Edges       []Edge    `json:"edges"`
}

func nodeKey(kind wiki.Kind, id string) string {
	return string(kind) + ":" + id
}

// UnlockGraph links every entity to the entities its locks name. Locks whose
// source is missing from the catalog are counted but get no edge.
func UnlockGraph(c *wiki.Catalog) Graph {
	var g Graph
	index := make(map[string]int)

	for _, kind := range []wiki.Kind{wiki.KindObject, wiki.KindItem, wiki.KindNPC} {
		for _, e := range c.Collection(kind) {
			key := nodeKey(kind, e.ID)
			index[key] = len(g.Nodes)
			g.Nodes = append(g.Nodes, Node{Key: key, Kind: kind, ID: e.ID, Name: e.Name})
		}
	}

	for _, kind := range []wiki.Kind{wiki.KindObject, wiki.KindItem, wiki.KindNPC} {
		for _, e := range c.Collection(kind) {
			target := nodeKey(kind, e.ID)
			for _, lock := range e.Unlocks {
				page, source := c.LockSource(lock)
				if source.IsZero() {
					g.Totals.Unresolved++
					continue
				}
				if page != wiki.KindItem && page != wiki.KindNPC {
					page = wiki.KindObject
				}
				key := nodeKey(page, source.ID)
				g.Nodes[index[key]].Outbound++
				g.Edges = append(g.Edges, Edge{Source: key, Target: target, Type: lock.Type, Chance: lock.Chance})
			}
		}
	}

	sort.SliceStable(g.Edges, func(i, j int) bool {
		if g.Edges[i].Source == g.Edges[j].Source {
			return g.Edges[i].Target < g.Edges[j].Target
		}
		return g.Edges[i].Source < g.Edges[j].Source
	})

	g.GeneratedAt = time.Now().UTC()
	g.Totals.Nodes = len(g.Nodes)
	g.Totals.Edges = len(g.Edges)
	return g
}

// WriteGraph writes the unlock graph of c as indented JSON to outPath.
func WriteGraph(c *wiki.Catalog, outPath string) (Graph, error) {
	g := UnlockGraph(c)

	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return Graph{}, err
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return Graph{}, err
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return Graph{}, err
	}
	return g, nil
}

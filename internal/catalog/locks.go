package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"gamewiki/internal/wiki"
)

// DefaultLockTables describe the unlock types the game data uses: crafting a
// recipe, building a construction, acquiring an item and gathering from a
// node.
func DefaultLockTables() wiki.LockTables {
	return wiki.LockTables{
		LinkPage: map[string]string{
			"item":         "item",
			"gather":       "item",
			"recipe":       "item",
			"construction": "object",
		},
		Prefix: map[string]string{
			"item":         "Acquire",
			"gather":       "Gather",
			"recipe":       "Craft",
			"construction": "Construct",
		},
		Suffix: map[string]string{},
	}
}

// LoadLockTables reads lock tables from a YAML file:
//
//	linkPage:
//	  item: item
//	prefix:
//	  item: Acquire
//	suffix:
//	  gather: " from a node"
//
// Types missing from the file keep their default entries. linkPage values
// must be object, item or npc.
func LoadLockTables(path string) (wiki.LockTables, error) {
	tables := DefaultLockTables()
	if path == "" {
		return tables, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return wiki.LockTables{}, fmt.Errorf("read lock tables: %w", err)
	}
	var file wiki.LockTables
	if err := yaml.Unmarshal(b, &file); err != nil {
		return wiki.LockTables{}, fmt.Errorf("parse lock tables %s: %w", path, err)
	}

	for lockType, page := range file.LinkPage {
		switch wiki.Kind(page) {
		case wiki.KindObject, wiki.KindItem, wiki.KindNPC:
		default:
			return wiki.LockTables{}, fmt.Errorf("parse lock tables %s: linkPage %q: unknown page %q", path, lockType, page)
		}
	}

	merge(tables.LinkPage, file.LinkPage)
	merge(tables.Prefix, file.Prefix)
	merge(tables.Suffix, file.Suffix)
	return tables, nil
}

func merge(dst, src map[string]string) {
	for k, v := range src {
		dst[k] = v
	}
}

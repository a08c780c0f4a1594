// Package catalog loads the wiki's static data and publishes it as an
// immutable wiki.Catalog.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
)

// Dataset is the raw content of a source before decoding: one JSON record per
// entity, grouped by collection, plus the tag list.
type Dataset struct {
	Objects []json.RawMessage
	Items   []json.RawMessage
	NPCs    []json.RawMessage
	Tags    []string
}

// Source produces a Dataset.
type Source interface {
	Load(ctx context.Context) (Dataset, error)
}

// ErrUnknownDriver is returned for a data driver name with no Source.
var ErrUnknownDriver = errors.New("catalog: unknown data driver")

// collection names shared by every source.
const (
	collectionObjects = "objects"
	collectionItems   = "items"
	collectionNPCs    = "npcs"
)

func (d *Dataset) add(collection string, raw json.RawMessage) bool {
	switch collection {
	case collectionObjects:
		d.Objects = append(d.Objects, raw)
	case collectionItems:
		d.Items = append(d.Items, raw)
	case collectionNPCs:
		d.NPCs = append(d.NPCs, raw)
	default:
		return false
	}
	return true
}

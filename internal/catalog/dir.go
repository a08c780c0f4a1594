package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DirSource reads objects.json, items.json, npcs.json and tags.json from a
// directory. Each file holds a JSON array; a missing file is an empty
// collection.
type DirSource struct {
	Dir string
}

// Load implements Source.
func (s DirSource) Load(ctx context.Context) (Dataset, error) {
	var ds Dataset
	for _, name := range []string{collectionObjects, collectionItems, collectionNPCs} {
		if err := ctx.Err(); err != nil {
			return Dataset{}, err
		}
		records, err := s.readArray(name + ".json")
		if err != nil {
			return Dataset{}, err
		}
		for _, raw := range records {
			ds.add(name, raw)
		}
	}

	tags, err := s.readArray("tags.json")
	if err != nil {
		return Dataset{}, err
	}
	for _, raw := range tags {
		var tag string
		if err := json.Unmarshal(raw, &tag); err != nil {
			return Dataset{}, fmt.Errorf("decode tags.json: %w", err)
		}
		ds.Tags = append(ds.Tags, tag)
	}
	return ds, nil
}

func (s DirSource) readArray(name string) ([]json.RawMessage, error) {
	path := filepath.Join(s.Dir, name)
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var records []json.RawMessage
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return records, nil
}

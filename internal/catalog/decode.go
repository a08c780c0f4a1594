package catalog

import (
	"encoding/json"
	"errors"

	"github.com/tidwall/gjson"

	"gamewiki/internal/wiki"
)

var errMissingID = errors.New("record has no id")

// Decode turns one raw record into an entity. Numeric ids are normalized to
// their string form. Unlock conditions come from the unlockedBy array, where
// each entry names its type and source id, e.g.
// {"type":"construction","id":"anvil","chance":0.5}.
func Decode(raw json.RawMessage) (wiki.Entity, error) {
	if !gjson.ValidBytes(raw) {
		return wiki.Entity{}, errors.New("record is not valid JSON")
	}
	rec := gjson.ParseBytes(raw)
	if !rec.IsObject() {
		return wiki.Entity{}, errors.New("record is not an object")
	}

	id := resultID(rec.Get("id"))
	if id == "" {
		return wiki.Entity{}, errMissingID
	}

	e := wiki.Entity{
		ID:    id,
		Name:  rec.Get("name").String(),
		Image: rec.Get("image").String(),
		Raw:   append(json.RawMessage(nil), raw...),
	}

	rec.Get("tags").ForEach(func(_, v gjson.Result) bool {
		if tag := v.String(); tag != "" {
			e.Tags = append(e.Tags, tag)
		}
		return true
	})

	rec.Get("unlockedBy").ForEach(func(_, v gjson.Result) bool {
		lock := wiki.Lock{
			Type:     v.Get("type").String(),
			SourceID: resultID(v.Get("id")),
			Chance:   v.Get("chance").Float(),
		}
		if lock.Type != "" && lock.SourceID != "" {
			e.Unlocks = append(e.Unlocks, lock)
		}
		return true
	})

	return e, nil
}

func resultID(r gjson.Result) string {
	switch r.Type {
	case gjson.Number:
		return wiki.IDString(json.Number(r.Raw))
	case gjson.String:
		return r.Str
	default:
		return ""
	}
}

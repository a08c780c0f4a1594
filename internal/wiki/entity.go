package wiki

import (
	"encoding/json"
	"math"
	"strconv"
)

// Kind names an entity collection and the page that displays it.
type Kind string

const (
	KindObject Kind = "object"
	KindItem   Kind = "item"
	KindNPC    Kind = "npc"
	KindTag    Kind = "tag"
)

// Page returns the page file for the kind, e.g. "object.html".
func (k Kind) Page() string {
	return string(k) + ".html"
}

// Entity is a displayable game object, item or NPC record.
type Entity struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Image   string          `json:"image,omitempty"`
	Tags    []string        `json:"tags,omitempty"`
	Unlocks []Lock          `json:"unlockedBy,omitempty"`
	Raw     json.RawMessage `json:"-"`
}

// IsZero reports whether e is the empty record returned by failed lookups.
func (e Entity) IsZero() bool {
	return e.ID == "" && e.Name == "" && e.Image == "" && len(e.Raw) == 0
}

// HasTag reports whether the entity carries tag.
func (e Entity) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Collection is an ordered list of entities sorted by name, then id.
type Collection []Entity

// Lock describes one condition that unlocks an entity.
type Lock struct {
	Type     string  `json:"type"`
	SourceID string  `json:"id"`
	Chance   float64 `json:"chance,omitempty"`
}

// LockTables map a lock type to the page linking its source, and to the text
// placed before and after the link.
type LockTables struct {
	LinkPage map[string]string `yaml:"linkPage" json:"linkPage"`
	Prefix   map[string]string `yaml:"prefix" json:"prefix"`
	Suffix   map[string]string `yaml:"suffix" json:"suffix"`
}

// Catalog holds every collection the wiki renders. It is built once and not
// mutated afterwards; reloads replace the whole value.
type Catalog struct {
	Objects Collection
	Items   Collection
	NPCs    Collection
	Tags    []string
	Locks   LockTables
}

// IDString normalizes an id to the string form used for matching, so that
// the number 7 and the string "7" refer to the same entity.
func IDString(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return id
	case json.Number:
		return numericID(id.String())
	case int:
		return strconv.Itoa(id)
	case int32:
		return strconv.FormatInt(int64(id), 10)
	case int64:
		return strconv.FormatInt(id, 10)
	case uint:
		return strconv.FormatUint(uint64(id), 10)
	case uint32:
		return strconv.FormatUint(uint64(id), 10)
	case uint64:
		return strconv.FormatUint(id, 10)
	case float32:
		return formatFloatID(float64(id))
	case float64:
		return formatFloatID(id)
	case interface{ String() string }:
		return id.String()
	default:
		b, err := json.Marshal(id)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

func numericID(s string) string {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	return formatFloatID(f)
}

func formatFloatID(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return ""
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

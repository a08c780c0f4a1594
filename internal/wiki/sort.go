package wiki

import (
	"slices"
	"sync"

	"github.com/tidwall/gjson"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// NameOrder orders entities by name and then id under a language's collation
// rules. A NameOrder is not safe for concurrent use.
type NameOrder struct {
	col *collate.Collator
}

// NewNameOrder returns an ordering for lang.
func NewNameOrder(lang language.Tag) *NameOrder {
	return &NameOrder{col: collate.New(lang)}
}

// Compare returns -1, 0 or 1.
func (o *NameOrder) Compare(a, b Entity) int {
	if c := o.col.CompareString(a.Name, b.Name); c != 0 {
		return c
	}
	return o.col.CompareString(a.ID, b.ID)
}

var defaultOrder = struct {
	sync.Mutex
	order *NameOrder
}{order: NewNameOrder(language.English)}

// CompareByName compares a and b by name, breaking ties by id, using English
// collation.
func CompareByName(a, b Entity) int {
	defaultOrder.Lock()
	defer defaultOrder.Unlock()
	return defaultOrder.order.Compare(a, b)
}

// SortCollection sorts c in place by name, then id.
func SortCollection(c Collection, lang language.Tag) {
	order := NewNameOrder(lang)
	slices.SortStableFunc(c, order.Compare)
}

// IsGearItem reports whether the item's record has a gearSlot field. The
// field's value does not matter.
func IsGearItem(e Entity) bool {
	if len(e.Raw) == 0 {
		return false
	}
	return gjson.GetBytes(e.Raw, "gearSlot").Exists()
}

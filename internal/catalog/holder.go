package catalog

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
	"golang.org/x/text/language"

	"gamewiki/internal/wiki"
)

// Holder publishes the current catalog. Readers never block; a reload builds
// a fresh catalog and swaps it in.
type Holder struct {
	source Source
	locks  wiki.LockTables
	lang   language.Tag

	current atomic.Pointer[wiki.Catalog]
	group   singleflight.Group
}

// NewHolder returns a holder with an empty catalog. Call Reload to populate it.
func NewHolder(source Source, locks wiki.LockTables, lang language.Tag) *Holder {
	h := &Holder{source: source, locks: locks, lang: lang}
	h.current.Store(&wiki.Catalog{Locks: locks})
	return h
}

// Current returns the published catalog. Callers must not modify it.
func (h *Holder) Current() *wiki.Catalog {
	return h.current.Load()
}

// Reload loads the source and publishes the result. Concurrent calls share a
// single load. On error the previous catalog stays in place.
func (h *Holder) Reload(ctx context.Context) (*wiki.Catalog, error) {
	v, err, _ := h.group.Do("reload", func() (interface{}, error) {
		ds, err := h.source.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
		c := Build(ds, h.locks, h.lang)
		h.current.Store(c)
		return c, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*wiki.Catalog), nil
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"gamewiki/internal/app"
	"gamewiki/internal/catalog"
	"gamewiki/internal/wiki"
)

func newLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "lookup URL",
		Short:   "Print the markup a wiki page URL resolves to",
		Example: "  gamewiki lookup 'object.html?id=forge'\n  gamewiki lookup 'tag.html?id=ore'",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCatalog(cmd.Context(), func(_ app.Config, holder *catalog.Holder) error {
				out, err := lookup(holder.Current(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}
}

// pageKind returns the kind of page a URL such as "object.html?id=7" names.
func pageKind(rawURL string) (wiki.Kind, error) {
	p := rawURL
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	p = p[strings.LastIndex(p, "/")+1:]

	name, ok := strings.CutSuffix(p, ".html")
	if !ok {
		return "", fmt.Errorf("%q is not a wiki page", rawURL)
	}
	switch kind := wiki.Kind(name); kind {
	case wiki.KindObject, wiki.KindItem, wiki.KindNPC, wiki.KindTag:
		return kind, nil
	default:
		return "", fmt.Errorf("unknown page %q", p)
	}
}

func lookup(c *wiki.Catalog, rawURL string) (string, error) {
	kind, err := pageKind(rawURL)
	if err != nil {
		return "", err
	}
	id := wiki.EntityID(rawURL)

	var lines []string
	if kind == wiki.KindTag {
		tagged := c.WithTag(id)
		if tagged.Len() == 0 {
			return "", fmt.Errorf("nothing is tagged %q", id)
		}
		for _, group := range []struct {
			kind wiki.Kind
			coll wiki.Collection
		}{
			{wiki.KindObject, tagged.Objects},
			{wiki.KindItem, tagged.Items},
			{wiki.KindNPC, tagged.NPCs},
		} {
			for _, e := range group.coll {
				lines = append(lines, string(wiki.RenderEntityLink(e, group.kind, true)))
			}
		}
		return strings.Join(lines, "\n"), nil
	}

	e := c.Find(kind, id)
	if e.IsZero() {
		return "", fmt.Errorf("no %s with id %q", kind, id)
	}
	lines = append(lines, string(wiki.RenderEntityLink(e, kind, false)))
	if len(e.Tags) > 0 {
		lines = append(lines, string(wiki.RenderTagLinks(e.Tags)))
	}
	for _, lock := range e.Unlocks {
		lines = append(lines, string(wiki.RenderUnlockListItem(c, lock)))
	}
	return strings.Join(lines, "\n"), nil
}

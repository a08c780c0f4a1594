package main

import (
	"errors"
	"log"

	"github.com/spf13/cobra"

	"gamewiki/internal/app"
	"gamewiki/internal/catalog"
	"gamewiki/internal/export"
)

type exportFlags struct {
	out   string
	graph string
}

func newExportCmd() *cobra.Command {
	var flags exportFlags

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the catalog to a workbook",
		Long:  "Writes the catalog to an xlsx workbook and, with --graph, its unlock graph as JSON.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.out == "" && flags.graph == "" {
				return errors.New("nothing to export: set --out or --graph")
			}
			return withCatalog(cmd.Context(), func(_ app.Config, holder *catalog.Holder) error {
				return runExport(holder, flags)
			})
		},
	}

	cmd.Flags().StringVarP(&flags.out, "out", "o", "catalog.xlsx", "Workbook path")
	cmd.Flags().StringVarP(&flags.graph, "graph", "g", "", "Unlock graph JSON path")

	return cmd
}

func runExport(holder *catalog.Holder, flags exportFlags) error {
	c := holder.Current()

	if flags.out != "" {
		if err := export.WriteWorkbook(c, flags.out); err != nil {
			return err
		}
		log.Printf("wrote workbook to %s (%d objects, %d items, %d npcs)", flags.out, len(c.Objects), len(c.Items), len(c.NPCs))
	}

	if flags.graph != "" {
		g, err := export.WriteGraph(c, flags.graph)
		if err != nil {
			return err
		}
		log.Printf("wrote unlock graph to %s (%d nodes, %d edges, %d unresolved)", flags.graph, g.Totals.Nodes, g.Totals.Edges, g.Totals.Unresolved)
	}
	return nil
}

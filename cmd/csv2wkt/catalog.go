package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pspoerri/planetwkt/internal/projection"
)

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the supported projection catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tKIND\tNAME\tMETHOD\tPARAMS")
			for _, c := range projection.Catalog() {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\n",
					c.ID, c.Kind, c.Name, c.Method, len(c.Parameters))
			}
			return w.Flush()
		},
	}
}

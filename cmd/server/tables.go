package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fairlead/compliance-engine/internal/compliance"
)

func newCatalogCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog [vessel_class]",
		Short: "List the required certificates for a vessel class",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := compliance.NewCatalog()

			classes := catalog.Classes()
			if len(args) == 1 {
				classes = args[:1]
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			for _, class := range classes {
				specs, ok := catalog.Required(class)
				if !ok {
					return fmt.Errorf("unknown vessel class: %s (known: %s)",
						class, strings.Join(catalog.Classes(), ", "))
				}
				fmt.Fprintf(w, "%s\t(%d certificates)\n", class, len(specs))
				for i, spec := range specs {
					fmt.Fprintf(w, "  %2d\t%s\t%s\t%s\n", i+1, spec.Name, spec.Regulation, spec.Validity)
				}
			}
			return w.Flush()
		},
	}
}

func newPortsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ports",
		Short: "List the ports known to the zone tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			atlas := compliance.NewPortAtlas()

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CODE\tNAME\tPSC REGIME\tECA\tEU\tSCRUBBER")
			for _, code := range atlas.KnownPorts() {
				req := atlas.Describe(code)
				eca := "-"
				if req.ECAZone {
					eca = "yes"
				}
				eu := "-"
				if atlas.IsEUPort(code) {
					eu = "yes"
				}
				scrubber := "allowed"
				if !req.ScrubberAllowed {
					scrubber = "banned"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					req.PortCode, req.PortName, req.PSCRegime, eca, eu, scrubber)
			}
			return w.Flush()
		},
	}
}

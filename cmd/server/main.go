package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const (
	serviceName = "compliance-engine"
	version     = "1.0.0"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:   serviceName,
		Short: "Maritime compliance gap-analysis and report-generation engine",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")

	root.AddCommand(newServeCommand())
	root.AddCommand(newReportCommand())
	root.AddCommand(newCatalogCommand())
	root.AddCommand(newPortsCommand())
	root.AddCommand(newVersionCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the service version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s %s\n", serviceName, version)
		},
	}
}

// Package cli implements the wellness command line tool: the same metrics,
// catalog queries, scans and plans the API serves, printed as tab-separated
// text.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"swasthya/internal/catalog"
)

var catalogPath string

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wellness",
		Short:         "wellness computes health metrics and browses Nepalese foods from your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "YAML food catalog (default: built-in foods)")

	rootCmd.AddCommand(newMetricsCmd(), newBurnCmd(), newFoodsCmd(), newScanCmd(), newPlansCmd())
	return rootCmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadCatalog() (*catalog.Catalog, error) {
	if catalogPath == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadYAML(catalogPath)
}
